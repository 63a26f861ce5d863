// Package config handles configuration management for meshdeps.
//
// Configuration is layered with koanf, lowest priority first:
//
//  1. the embedded defaults (embedded/defaults.toml)
//  2. a user file: an explicit path, $MESHDEPS_CONFIG, or
//     $XDG_CONFIG_HOME/meshdeps/config.toml when it exists
//  3. MESHDEPS_* environment variables, with "__" separating nested keys
//     (MESHDEPS_LAYOUT__MESHES, MESHDEPS_DEFAULT_USER)
//  4. programmatic overrides, usually from command-line flags
//
// The central piece is the per-user path table: each user maps to the mesh
// generator executable and the solver root, with one entry for macOS and one
// for everything else.
package config
