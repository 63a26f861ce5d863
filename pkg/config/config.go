package config

import (
	"sort"

	"github.com/arthur-debert/meshdeps/pkg/errors"
)

// Platform holds the paths of one user on one OS family
type Platform struct {
	// Gmsh is the mesh generator executable
	Gmsh string `koanf:"gmsh" toml:"gmsh"`
	// SolverRoot is the DPG solver checkout; meshes and cases live below it
	SolverRoot string `koanf:"solver_root" toml:"solver_root"`
}

// IsZero reports whether no solver root is configured
func (p Platform) IsZero() bool {
	return p.SolverRoot == ""
}

// User is one entry of the per-user path table
type User struct {
	Darwin  Platform `koanf:"darwin" toml:"darwin"`
	Default Platform `koanf:"default" toml:"default"`
}

// Layout names the directories below the solver root
type Layout struct {
	Meshes       string `koanf:"meshes" toml:"meshes"`
	Cases        string `koanf:"cases" toml:"cases"`
	ControlFiles string `koanf:"control_files" toml:"control_files"`
}

// Config is the main configuration structure
type Config struct {
	DefaultUser string          `koanf:"default_user" toml:"default_user"`
	Layout      Layout          `koanf:"layout" toml:"layout"`
	Users       map[string]User `koanf:"users" toml:"users"`
}

// KnownUsers returns the configured user names, sorted
func (c *Config) KnownUsers() []string {
	names := make([]string, 0, len(c.Users))
	for name := range c.Users {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupUser returns the table entry for name. The match is exact: "pzwan"
// does not select "PZwan".
func (c *Config) LookupUser(name string) (User, error) {
	if name == "" {
		return User{}, errors.New(errors.ErrUnrecognizedUser, "no user given; pass --user, set MESHDEPS_USER or default_user").
			WithDetail("known_users", c.KnownUsers())
	}
	user, ok := c.Users[name]
	if !ok {
		return User{}, errors.Newf(errors.ErrUnrecognizedUser, "add an entry for user %q to the configuration", name).
			WithDetail("user", name).
			WithDetail("known_users", c.KnownUsers())
	}
	return user, nil
}
