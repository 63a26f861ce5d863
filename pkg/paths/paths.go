package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/meshdeps/pkg/config"
	"github.com/arthur-debert/meshdeps/pkg/errors"
	"github.com/arthur-debert/meshdeps/pkg/logging"
)

// EnvHome is the standard home directory variable
const EnvHome = "HOME"

// Paths is the resolved set of root directories for one user
type Paths interface {
	User() string
	OS() OSFamily
	MeshGenerator() string
	SolverRoot() string
	Meshes() string
	Cases() string
	ControlFiles() string
}

// Options selects the table entry to resolve
type Options struct {
	// User is the table key. Empty falls back to the configured default user.
	User string
	// OS picks the darwin or default entry
	OS OSFamily
}

type paths struct {
	user          string
	os            OSFamily
	meshGenerator string
	solverRoot    string
	meshes        string
	cases         string
	controlFiles  string
}

// New resolves the path set for a user
func New(cfg *config.Config, opts Options) (Paths, error) {
	logger := logging.GetLogger("paths")

	userName := opts.User
	if userName == "" {
		userName = cfg.DefaultUser
	}

	user, err := cfg.LookupUser(userName)
	if err != nil {
		return nil, err
	}

	platform := user.Default
	if opts.OS == OSDarwin && !user.Darwin.IsZero() {
		platform = user.Darwin
	}
	if platform.IsZero() {
		return nil, errors.Newf(errors.ErrUnrecognizedUser, "user %q has no solver_root for %s", userName, opts.OS).
			WithDetail("user", userName).
			WithDetail("os", opts.OS.String())
	}

	root := asDir(expandHome(platform.SolverRoot))
	p := &paths{
		user:          userName,
		os:            opts.OS,
		meshGenerator: expandHome(platform.Gmsh),
		solverRoot:    root,
		meshes:        root + cfg.Layout.Meshes,
		cases:         root + cfg.Layout.Cases,
	}
	p.controlFiles = p.cases + cfg.Layout.ControlFiles

	logger.Debug().
		Str("user", p.user).
		Str("os", p.os.String()).
		Str("solverRoot", p.solverRoot).
		Str("meshes", p.meshes).
		Str("controlFiles", p.controlFiles).
		Msg("Paths resolved")

	return p, nil
}

// NewStatic builds a path set directly from a solver root, bypassing the
// user table. Tests and tools that already know the checkout use it.
func NewStatic(solverRoot string, layout config.Layout) Paths {
	root := asDir(expandHome(solverRoot))
	p := &paths{
		user:       "",
		os:         DetectOS(),
		solverRoot: root,
		meshes:     root + asDir(layout.Meshes),
		cases:      root + asDir(layout.Cases),
	}
	p.controlFiles = p.cases + asDir(layout.ControlFiles)
	return p
}

func (p *paths) User() string          { return p.user }
func (p *paths) OS() OSFamily          { return p.os }
func (p *paths) MeshGenerator() string { return p.meshGenerator }
func (p *paths) SolverRoot() string    { return p.solverRoot }
func (p *paths) Meshes() string        { return p.meshes }
func (p *paths) Cases() string         { return p.cases }
func (p *paths) ControlFiles() string  { return p.controlFiles }

// asDir makes sure dir ends with a slash
func asDir(dir string) string {
	if dir == "" || strings.HasSuffix(dir, "/") {
		return dir
	}
	return dir + "/"
}

// expandHome expands a leading ~ or ~/ to the home directory
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}
	if path[1] == '/' || path[1] == filepath.Separator {
		trailing := strings.HasSuffix(path, "/")
		expanded := filepath.Join(homeDir, path[2:])
		if trailing {
			expanded += "/"
		}
		return expanded
	}

	// ~otheruser is left alone
	return path
}
