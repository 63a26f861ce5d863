// Package text provides plain text output without any styling.
//
// Lists (deps, outputs) are printed bare, one line, so build systems can
// capture them directly.
package text

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/meshdeps/pkg/errors"
	"github.com/arthur-debert/meshdeps/pkg/types"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// RenderResult renders any result type as plain text
func (r *Renderer) RenderResult(result interface{}) error {
	var b strings.Builder

	switch v := result.(type) {
	case *types.ListResult:
		fmt.Fprintln(&b, v.Value)
	case *types.ResolveResult:
		writeResolve(&b, v)
	case *types.CatalogResult:
		writeCatalog(&b, v)
	case *types.PathsResult:
		writePaths(&b, v)
	case *types.GenConfigResult:
		writeGenConfig(&b, v)
	default:
		fmt.Fprintf(&b, "%+v\n", result)
	}

	_, err := io.WriteString(r.output, b.String())
	return err
}

func writeResolve(b *strings.Builder, v *types.ResolveResult) {
	fmt.Fprintf(b, "family:        %s (%s)\n", v.Canonical, v.VarName)
	fmt.Fprintf(b, "control files: %s\n", v.ControlFilesPath)
	fmt.Fprintf(b, "mesh names:    %s\n", strings.Join(v.MeshNames, " "))
	fmt.Fprintln(b)
	for _, m := range v.Variants {
		fmt.Fprintf(b, "%s %s\n", m.Type, m.Prefix)
		fmt.Fprintf(b, "  control file: %s\n", m.ControlFile)
		fmt.Fprintf(b, "  input:        %s\n", m.InputName())
		fmt.Fprintf(b, "  output:       %s\n", m.OutputName)
	}
	fmt.Fprintln(b)
	fmt.Fprintf(b, "deps:    %s\n", v.Deps)
	fmt.Fprintf(b, "outputs: %s\n", v.Outputs)
}

func writeCatalog(b *strings.Builder, v *types.CatalogResult) {
	for i, f := range v.Families {
		if i > 0 {
			fmt.Fprintln(b)
		}
		fmt.Fprintf(b, "%s (%s%s)\n", f.VarName, f.Dir, f.Canonical)
		for _, e := range f.Entries {
			fmt.Fprintf(b, "  %s\n", e)
		}
	}
}

func writePaths(b *strings.Builder, v *types.PathsResult) {
	fmt.Fprintf(b, "user:           %s\n", v.User)
	fmt.Fprintf(b, "os:             %s\n", v.OS)
	fmt.Fprintf(b, "mesh generator: %s\n", v.MeshGenerator)
	fmt.Fprintf(b, "solver root:    %s\n", v.SolverRoot)
	fmt.Fprintf(b, "meshes:         %s\n", v.Meshes)
	fmt.Fprintf(b, "cases:          %s\n", v.Cases)
	fmt.Fprintf(b, "control files:  %s\n", v.ControlFiles)
}

func writeGenConfig(b *strings.Builder, v *types.GenConfigResult) {
	if len(v.FilesWritten) == 0 {
		b.WriteString(v.ConfigContent)
		if !strings.HasSuffix(v.ConfigContent, "\n") {
			b.WriteString("\n")
		}
		return
	}
	for _, f := range v.FilesWritten {
		fmt.Fprintf(b, "Wrote %s\n", f)
	}
}

// RenderError renders an error as plain text followed by its details
func (r *Renderer) RenderError(err error) error {
	out := fmt.Sprintf("Error: %v\n", err)
	if details := errors.FormatDetails(err); details != "" {
		out += details
	}
	_, werr := io.WriteString(r.output, out)
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
