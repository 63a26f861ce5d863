// Package commands provides the command implementations behind the CLI.
//
// Each command is implemented in its own subdirectory:
//   - resolve/   - Resolve, Deps and Outputs
//   - families/  - ListCatalogs
//   - pathset/   - ShowPaths
//   - genconfig/ - GenConfig
//
// This file re-exports the command functions so callers need a single import.
package commands

import (
	"github.com/arthur-debert/meshdeps/pkg/commands/families"
	"github.com/arthur-debert/meshdeps/pkg/commands/genconfig"
	"github.com/arthur-debert/meshdeps/pkg/commands/pathset"
	"github.com/arthur-debert/meshdeps/pkg/commands/resolve"
	"github.com/arthur-debert/meshdeps/pkg/types"
)

// ResolveOptions is shared by Resolve, Deps and Outputs.
type ResolveOptions = resolve.ResolveOptions

// Resolve resolves a test-case family and its mesh variants.
func Resolve(opts ResolveOptions) (*types.ResolveResult, error) {
	return resolve.Resolve(opts)
}

// Deps reports the geometry inputs of a test-case family.
func Deps(opts ResolveOptions) (*types.ListResult, error) {
	return resolve.Deps(opts)
}

// Outputs reports the mesh files of a test-case family.
func Outputs(opts ResolveOptions) (*types.ListResult, error) {
	return resolve.Outputs(opts)
}

// ListCatalogs lists the mesh catalogs of one or all families.
type ListCatalogsOptions = families.ListCatalogsOptions

func ListCatalogs(opts ListCatalogsOptions) (*types.CatalogResult, error) {
	return families.ListCatalogs(opts)
}

// ShowPaths reports a resolved path set.
type ShowPathsOptions = pathset.ShowPathsOptions

func ShowPaths(opts ShowPathsOptions) (*types.PathsResult, error) {
	return pathset.ShowPaths(opts)
}

// GenConfig outputs or writes a configuration file.
type GenConfigOptions = genconfig.GenConfigOptions

func GenConfig(opts GenConfigOptions) (*types.GenConfigResult, error) {
	return genconfig.GenConfig(opts)
}
