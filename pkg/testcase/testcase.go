package testcase

import (
	"strings"

	"github.com/spf13/afero"

	"github.com/arthur-debert/meshdeps/pkg/catalog"
	"github.com/arthur-debert/meshdeps/pkg/errors"
	"github.com/arthur-debert/meshdeps/pkg/filesystem"
	"github.com/arthur-debert/meshdeps/pkg/logging"
	"github.com/arthur-debert/meshdeps/pkg/mesh"
	"github.com/arthur-debert/meshdeps/pkg/paths"
)

// TestCase is one family of control files and the variants resolved so far
type TestCase struct {
	// Name is the name as requested
	Name      string
	Family    catalog.Family
	Canonical string
	VarName   string
	// Path is the directory holding the family's control files
	Path     string
	Variants []mesh.Variant

	entries  []catalog.Entry
	meshRoot string
}

// New resolves the family of name against p
func New(name string, p paths.Paths) (*TestCase, error) {
	family, err := catalog.ParseFamily(name)
	if err != nil {
		return nil, err
	}

	spec := catalog.Lookup(family)
	return &TestCase{
		Name:      name,
		Family:    family,
		Canonical: spec.Canonical,
		VarName:   spec.VarName,
		Path:      p.ControlFiles() + spec.Dir,
		entries:   spec.Entries,
		meshRoot:  p.Meshes(),
	}, nil
}

// Catalog returns a copy of the family's catalog
func (tc *TestCase) Catalog() []catalog.Entry {
	return append([]catalog.Entry(nil), tc.entries...)
}

// AddMeshTypes selects the entries token asks for and resolves each of them.
// Nothing is appended when any of them fails.
func (tc *TestCase) AddMeshTypes(fsys afero.Fs, token string) error {
	logger := logging.GetLogger("testcase")

	entries, err := catalog.Select(token, tc.entries)
	if err != nil {
		return errors.Wrapf(err, errors.GetErrorCode(err), "cannot resolve mesh %q for %s", token, tc.Canonical).
			WithDetails(errors.GetErrorDetails(err)).
			WithDetail("family", tc.VarName)
	}

	variants := make([]mesh.Variant, 0, len(entries))
	for _, e := range entries {
		v, err := mesh.Derive(fsys, e, tc.Path, tc.Canonical, tc.meshRoot)
		if err != nil {
			return err
		}
		variants = append(variants, v)
	}
	tc.Variants = append(tc.Variants, variants...)

	logger.Info().
		Str("family", tc.VarName).
		Str("token", token).
		Int("variants", len(variants)).
		Msg("Added mesh types")

	return nil
}

// GeoDeps returns the geometry inputs of all variants, space separated. An
// input already contained in the list is not added again.
func (tc *TestCase) GeoDeps() string {
	return accumulate(tc.Variants, func(v mesh.Variant) string { return v.InputName() })
}

// MeshOutputs returns the mesh files of all variants relative to the meshes
// root, space separated and de-duplicated like GeoDeps
func (tc *TestCase) MeshOutputs() string {
	return accumulate(tc.Variants, func(v mesh.Variant) string { return v.OutputName })
}

// MeshOutputsAbs is MeshOutputs with absolute paths
func (tc *TestCase) MeshOutputsAbs() string {
	return accumulate(tc.Variants, func(v mesh.Variant) string { return v.OutputNameAbs })
}

func accumulate(variants []mesh.Variant, field func(mesh.Variant) string) string {
	var acc strings.Builder
	for _, v := range variants {
		item := field(v)
		if strings.Contains(acc.String(), item) {
			continue
		}
		if acc.Len() > 0 {
			acc.WriteByte(' ')
		}
		acc.WriteString(item)
	}
	return acc.String()
}

// Options configures Resolve
type Options struct {
	// Name is the requested family name
	Name string
	// MeshNames are the requested mesh-name tokens, applied in order
	MeshNames []string
	Paths     paths.Paths
	// FS defaults to the OS filesystem
	FS afero.Fs
}

// Resolve builds the family of opts.Name and adds every requested mesh
func Resolve(opts Options) (*TestCase, error) {
	logger := logging.GetLogger("testcase")
	done := logging.LogOperationStart(logger, "resolve")
	defer done()

	if len(opts.MeshNames) == 0 {
		return nil, errors.New(errors.ErrInvalidInput, "no mesh names given").
			WithDetail("family", opts.Name)
	}
	if opts.Paths == nil {
		return nil, errors.New(errors.ErrInternal, "no paths given")
	}

	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	tc, err := New(opts.Name, opts.Paths)
	if err != nil {
		return nil, err
	}

	for _, token := range opts.MeshNames {
		if err := tc.AddMeshTypes(fsys, token); err != nil {
			return nil, err
		}
	}

	logger.Debug().
		Str("family", tc.VarName).
		Str("deps", tc.GeoDeps()).
		Str("outputs", tc.MeshOutputs()).
		Msg("Resolved test case")

	return tc, nil
}
