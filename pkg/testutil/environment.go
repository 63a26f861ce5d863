package testutil

import (
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/spf13/afero"

	"github.com/arthur-debert/meshdeps/pkg/filesystem"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Control files in memory
	EnvIsolated                  // Control files on disk in a temp directory
)

// TestEnvironment isolates a test from the user's home and XDG directories
// and gives it a solver checkout
type TestEnvironment struct {
	HomeDir    string
	ConfigHome string
	StateHome  string
	SolverRoot string

	Tree *ControlTree
	Type EnvType
}

// NewTestEnvironment creates a new test environment. HOME and the XDG
// directories always point into a temp directory so neither logs nor user
// config leak in or out.
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	tempDir := t.TempDir()
	env := &TestEnvironment{
		HomeDir:    filepath.Join(tempDir, "home"),
		ConfigHome: filepath.Join(tempDir, "home", ".config"),
		StateHome:  filepath.Join(tempDir, "home", ".local", "state"),
		Type:       envType,
	}

	t.Setenv("HOME", env.HomeDir)
	t.Setenv("XDG_CONFIG_HOME", env.ConfigHome)
	t.Setenv("XDG_STATE_HOME", env.StateHome)
	t.Setenv("MESHDEPS_CONFIG", "")
	t.Setenv("MESHDEPS_USER", "")
	xdg.Reload()

	var fsys afero.Fs
	switch envType {
	case EnvIsolated:
		env.SolverRoot = filepath.Join(tempDir, "solver") + "/"
		fsys = afero.NewOsFs()
	default:
		env.SolverRoot = "/virtual/solver/"
		fsys = filesystem.NewMemory()
	}
	env.Tree = NewControlTree(t, fsys, env.SolverRoot)

	return env
}

// FS returns the filesystem control files are read from
func (env *TestEnvironment) FS() afero.Fs {
	return env.Tree.FS()
}
