package pathset

import (
	"github.com/arthur-debert/meshdeps/pkg/errors"
	"github.com/arthur-debert/meshdeps/pkg/paths"
	"github.com/arthur-debert/meshdeps/pkg/types"
)

// ShowPathsOptions holds options for the paths command
type ShowPathsOptions struct {
	Paths paths.Paths
}

// ShowPaths reports a resolved path set
func ShowPaths(opts ShowPathsOptions) (*types.PathsResult, error) {
	p := opts.Paths
	if p == nil {
		return nil, errors.New(errors.ErrInternal, "no paths given")
	}

	return &types.PathsResult{
		User:          p.User(),
		OS:            p.OS().String(),
		MeshGenerator: p.MeshGenerator(),
		SolverRoot:    p.SolverRoot(),
		Meshes:        p.Meshes(),
		Cases:         p.Cases(),
		ControlFiles:  p.ControlFiles(),
	}, nil
}
