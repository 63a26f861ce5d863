package testutil

import (
	"testing"

	"github.com/spf13/afero"

	"github.com/arthur-debert/meshdeps/pkg/catalog"
	"github.com/arthur-debert/meshdeps/pkg/config"
	"github.com/arthur-debert/meshdeps/pkg/ctrlfile"
	"github.com/arthur-debert/meshdeps/pkg/paths"
)

// ControlTree is a solver checkout under construction
type ControlTree struct {
	t     *testing.T
	fs    afero.Fs
	paths paths.Paths
}

// NewControlTree creates an empty checkout rooted at solverRoot on fsys,
// using the default layout
func NewControlTree(t *testing.T, fsys afero.Fs, solverRoot string) *ControlTree {
	t.Helper()

	cfg, err := config.Default()
	if err != nil {
		t.Fatalf("Failed to load default config: %v", err)
	}

	p := paths.NewStatic(solverRoot, cfg.Layout)
	if err := fsys.MkdirAll(p.ControlFiles(), 0755); err != nil {
		t.Fatalf("Failed to create %s: %v", p.ControlFiles(), err)
	}

	return &ControlTree{t: t, fs: fsys, paths: p}
}

// FS returns the filesystem the tree lives on
func (c *ControlTree) FS() afero.Fs { return c.fs }

// Paths returns the path set of the checkout
func (c *ControlTree) Paths() paths.Paths { return c.paths }

// FamilyDir is where the control files of f live
func (c *ControlTree) FamilyDir(f catalog.Family) string {
	return c.paths.ControlFiles() + catalog.Lookup(f).Dir
}

// ControlFilePath is where the control file of entry lives in family f
func (c *ControlTree) ControlFilePath(f catalog.Family, entry catalog.Entry) string {
	spec := catalog.Lookup(f)
	return c.FamilyDir(f) + spec.Canonical + entry.VariantPrefix() + entry.Type + ".ctrl"
}

// Add writes the control file of entry in family f and returns its path
func (c *ControlTree) Add(f catalog.Family, entry catalog.Entry, settings ctrlfile.ControlFile) string {
	c.t.Helper()

	path := c.ControlFilePath(f, entry)
	if err := c.fs.MkdirAll(c.FamilyDir(f), 0755); err != nil {
		c.t.Fatalf("Failed to create %s: %v", c.FamilyDir(f), err)
	}
	if err := afero.WriteFile(c.fs, path, []byte(settings.Format()), 0644); err != nil {
		c.t.Fatalf("Failed to write control file %s: %v", path, err)
	}
	return path
}

// AddFamily writes a control file for every catalog entry of f, using
// settings to build each one
func (c *ControlTree) AddFamily(f catalog.Family, settings func(catalog.Entry) ctrlfile.ControlFile) *ControlTree {
	c.t.Helper()

	for _, e := range catalog.Lookup(f).Entries {
		c.Add(f, e, settings(e))
	}
	return c
}

// Settings returns plausible control-file settings for entry: the geometry
// is the entry prefix without its trailing underscore (or "n-Cube"), and
// the input is "<geometry>.geo".
func Settings(pde string, entry catalog.Entry) ctrlfile.ControlFile {
	geometry := "n-Cube"
	if n := len(entry.Prefix); n > 0 {
		geometry = entry.Prefix[:n-1]
	}

	curving := entry.Curving
	if curving == "" {
		curving = "Straight"
	}

	dim := "2"
	switch entry.Type {
	case "TET", "HEX", "WEDGE", "PYR", "MIXED3D_TP", "MIXED3D_HW":
		dim = "3"
	}

	return ctrlfile.ControlFile{
		PDEName:       pde,
		PDESpecifier:  ctrlfile.None,
		Geometry:      geometry,
		InputName:     geometry + ".geo",
		GeomSpecifier: ctrlfile.None,
		MeshCurving:   curving,
		Dimension:     dim,
		MeshLevel:     "0",
	}
}
