// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/arthur-debert/meshdeps/pkg/errors"
	"github.com/arthur-debert/meshdeps/pkg/style"
	"github.com/arthur-debert/meshdeps/pkg/types"
)

// Renderer provides rich terminal output using lipgloss styles
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) (*Renderer, error) {
	return &Renderer{output: w}, nil
}

// RenderResult renders any result type with rich terminal formatting
func (r *Renderer) RenderResult(result interface{}) error {
	var out string

	switch v := result.(type) {
	case *types.ListResult:
		out = style.Label(string(v.Kind)) + listValue(v.Value)
	case *types.ResolveResult:
		out = renderResolve(v)
	case *types.CatalogResult:
		out = renderCatalog(v)
	case *types.PathsResult:
		out = renderPaths(v)
	case *types.GenConfigResult:
		out = renderGenConfig(v)
	default:
		out = fmt.Sprintf("%+v", result)
	}

	_, err := fmt.Fprintln(r.output, out)
	return err
}

func listValue(v string) string {
	if v == "" {
		return style.MutedStyle.Render("(none)")
	}
	return style.NormalStyle.Render(v)
}

func field(label, value string) string {
	return style.Label(label) + value
}

func renderResolve(v *types.ResolveResult) string {
	var sections []string

	sections = append(sections, lipgloss.JoinVertical(lipgloss.Left,
		style.TitleStyle.Render(v.Canonical)+" "+style.MutedStyle.Render(v.VarName),
		field("control files", style.PathStyle.Render(v.ControlFilesPath)),
		field("mesh names", strings.Join(v.MeshNames, " ")),
	))

	for _, m := range v.Variants {
		sections = append(sections, lipgloss.JoinVertical(lipgloss.Left,
			style.TypeStyle.Render(m.Type)+" "+style.CurvingStyle.Render(m.Prefix),
			style.ListItemStyle.Render(field("input", style.GeometryStyle.Render(m.InputName()))),
			style.ListItemStyle.Render(field("output", style.PathStyle.Render(m.OutputName))),
		))
	}

	sections = append(sections, lipgloss.JoinVertical(lipgloss.Left,
		field("deps", listValue(v.Deps)),
		field("outputs", listValue(v.Outputs)),
	))

	return strings.Join(sections, "\n\n")
}

func renderCatalog(v *types.CatalogResult) string {
	blocks := make([]string, 0, len(v.Families))
	for _, f := range v.Families {
		lines := []string{
			style.TitleStyle.Render(f.VarName) + " " + style.PathStyle.Render(f.Dir+f.Canonical),
		}
		for _, e := range f.Entries {
			lines = append(lines, style.ListItemStyle.Render(
				style.TypeStyle.Render(fmt.Sprintf("%-11s", e.Type))+
					style.MutedStyle.Render(fmt.Sprintf("%-27s", e.Prefix))+
					style.Curving(e.Curving),
			))
		}
		blocks = append(blocks, lipgloss.JoinVertical(lipgloss.Left, lines...))
	}
	return strings.Join(blocks, "\n\n")
}

func renderPaths(v *types.PathsResult) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		style.TitleStyle.Render(v.User)+" "+style.MutedStyle.Render(v.OS),
		field("mesh generator", style.PathStyle.Render(v.MeshGenerator)),
		field("solver root", style.PathStyle.Render(v.SolverRoot)),
		field("meshes", style.PathStyle.Render(v.Meshes)),
		field("cases", style.PathStyle.Render(v.Cases)),
		field("control files", style.PathStyle.Render(v.ControlFiles)),
	)
}

func renderGenConfig(v *types.GenConfigResult) string {
	if len(v.FilesWritten) == 0 {
		return strings.TrimRight(v.ConfigContent, "\n")
	}
	lines := make([]string, len(v.FilesWritten))
	for i, f := range v.FilesWritten {
		lines[i] = "Wrote " + style.PathStyle.Render(f)
	}
	return strings.Join(lines, "\n")
}

// RenderError renders an error with its details
func (r *Renderer) RenderError(err error) error {
	out := style.ErrorStyle.Render("Error:") + " " + err.Error()
	if details := errors.FormatDetails(err); details != "" {
		out += "\n" + style.MutedStyle.Render(strings.TrimRight(details, "\n"))
	}
	_, werr := fmt.Fprintln(r.output, out)
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, style.NormalStyle.Render(msg))
	return err
}
