package resolve

import (
	"github.com/spf13/afero"

	"github.com/arthur-debert/meshdeps/pkg/logging"
	"github.com/arthur-debert/meshdeps/pkg/paths"
	"github.com/arthur-debert/meshdeps/pkg/testcase"
	"github.com/arthur-debert/meshdeps/pkg/types"
)

// ResolveOptions holds options for the resolve, deps and outputs commands
type ResolveOptions struct {
	Family     string
	MeshNames  []string
	Paths      paths.Paths
	FileSystem afero.Fs
	// Absolute makes Outputs report absolute paths
	Absolute bool
}

// Resolve resolves a family and reports every variant
func Resolve(opts ResolveOptions) (*types.ResolveResult, error) {
	logger := logging.GetLogger("commands.resolve")
	logger.Debug().
		Str("family", opts.Family).
		Strs("meshNames", opts.MeshNames).
		Msg("Resolving test case")

	tc, err := run(opts)
	if err != nil {
		return nil, err
	}

	return &types.ResolveResult{
		Family:           tc.Name,
		Canonical:        tc.Canonical,
		VarName:          tc.VarName,
		ControlFilesPath: tc.Path,
		MeshNames:        opts.MeshNames,
		Variants:         tc.Variants,
		Deps:             tc.GeoDeps(),
		Outputs:          tc.MeshOutputs(),
		OutputsAbs:       tc.MeshOutputsAbs(),
	}, nil
}

// Deps reports the geometry inputs of a family
func Deps(opts ResolveOptions) (*types.ListResult, error) {
	tc, err := run(opts)
	if err != nil {
		return nil, err
	}

	return &types.ListResult{
		Kind:    types.ListDeps,
		VarName: tc.VarName,
		Value:   tc.GeoDeps(),
	}, nil
}

// Outputs reports the mesh files of a family
func Outputs(opts ResolveOptions) (*types.ListResult, error) {
	tc, err := run(opts)
	if err != nil {
		return nil, err
	}

	value := tc.MeshOutputs()
	if opts.Absolute {
		value = tc.MeshOutputsAbs()
	}

	return &types.ListResult{
		Kind:    types.ListOutputs,
		VarName: tc.VarName,
		Value:   value,
	}, nil
}

func run(opts ResolveOptions) (*testcase.TestCase, error) {
	return testcase.Resolve(testcase.Options{
		Name:      opts.Family,
		MeshNames: opts.MeshNames,
		Paths:     opts.Paths,
		FS:        opts.FileSystem,
	})
}
