package testcase

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/meshdeps/pkg/catalog"
	"github.com/arthur-debert/meshdeps/pkg/ctrlfile"
	"github.com/arthur-debert/meshdeps/pkg/errors"
	"github.com/arthur-debert/meshdeps/pkg/testutil"
)

func eulerEnv(t *testing.T) *testutil.TestEnvironment {
	t.Helper()
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.Tree.AddFamily(catalog.FamilyEulerTest, func(e catalog.Entry) ctrlfile.ControlFile {
		return testutil.Settings("Euler", e)
	})
	return env
}

func TestNew(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)

	tests := []struct {
		name      string
		canonical string
		varName   string
		dir       string
	}{
		{"update_h", "Test_update_h_", "UPDATE_H", "test/update_h/"},
		{"L2_proj_p", "Test_L2_proj_p_", "L2_PROJ_P", "test/L2_proj_p/"},
		{"L2_proj_h", "Test_L2_proj_h_", "L2_PROJ_H", "test/L2_proj_h/"},
		{"linearization", "Test_linearization_", "LINEARIZATION", "test/linearization/"},
		{"Poisson_test", "Test_Poisson_", "POISSON_TEST", "test/Poisson/"},
		{"Euler_test", "Test_Euler_", "EULER_TEST", "test/Euler/"},
		{"NavierStokes_TEST", "Test_NavierStokes_", "NAVIERSTOKES_TEST", "test/NavierStokes/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc, err := New(tt.name, env.Tree.Paths())
			require.NoError(t, err)
			assert.Equal(t, tt.name, tc.Name)
			assert.Equal(t, tt.canonical, tc.Canonical)
			assert.Equal(t, tt.varName, tc.VarName)
			assert.Equal(t, env.SolverRoot+"cases/control_files/"+tt.dir, tc.Path)
			assert.Empty(t, tc.Variants)
			assert.Empty(t, tc.GeoDeps())
			assert.Empty(t, tc.MeshOutputs())
		})
	}
}

func TestNewUnrecognizedFamily(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)

	_, err := New("Burgers", env.Tree.Paths())
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnrecognizedFamily))
}

func TestAddMeshTypesSingle(t *testing.T) {
	env := eulerEnv(t)
	tc, err := New("Euler_test", env.Tree.Paths())
	require.NoError(t, err)

	require.NoError(t, tc.AddMeshTypes(env.FS(), "PeriodicVortexQUAD"))
	require.Len(t, tc.Variants, 1)

	v := tc.Variants[0]
	assert.Equal(t, "QUAD", v.Type)
	assert.Equal(t, "PeriodicVortex_", v.Prefix)
	assert.Equal(t, "PeriodicVortex/Euler/PeriodicVortex2D_QUAD0x.msh", v.OutputName)
	assert.Equal(t, "PeriodicVortex.geo", tc.GeoDeps())
	assert.Equal(t, "PeriodicVortex/Euler/PeriodicVortex2D_QUAD0x.msh", tc.MeshOutputs())
	assert.Equal(t, env.SolverRoot+"meshes/PeriodicVortex/Euler/PeriodicVortex2D_QUAD0x.msh", tc.MeshOutputsAbs())
}

func TestAddMeshTypesAll(t *testing.T) {
	env := eulerEnv(t)
	tc, err := New("Euler_test", env.Tree.Paths())
	require.NoError(t, err)

	require.NoError(t, tc.AddMeshTypes(env.FS(), "all"))
	require.Len(t, tc.Variants, 7)

	spec := catalog.Lookup(catalog.FamilyEulerTest)
	for i, v := range tc.Variants {
		assert.Equal(t, spec.Entries[i].Type, v.Type)
		assert.Equal(t, spec.Entries[i].VariantPrefix(), v.Prefix)
	}

	assert.Equal(t, "SupersonicVortex.geo PeriodicVortex.geo", tc.GeoDeps())
	outputs := strings.Fields(tc.MeshOutputs())
	assert.Len(t, outputs, 7)
	assert.Equal(t, "SupersonicVortex/Euler/SupersonicVortex2D_CurvedMIXED2D0x.msh", outputs[0])
	assert.Equal(t, "SupersonicVortex/Euler/SupersonicVortex2D_ToBeCurvedMIXED2D0x.msh", outputs[1])
}

func TestAddMeshTypesToBeCurvedExclusion(t *testing.T) {
	env := eulerEnv(t)
	tc, err := New("Euler_test", env.Tree.Paths())
	require.NoError(t, err)

	require.NoError(t, tc.AddMeshTypes(env.FS(), "ToBeCurvedMIXED2D"))
	require.Len(t, tc.Variants, 1)
	assert.Equal(t, "SupersonicVortex_ToBeCurved", tc.Variants[0].Prefix)
}

func TestAddMeshTypesNotFound(t *testing.T) {
	env := eulerEnv(t)
	tc, err := New("Euler_test", env.Tree.Paths())
	require.NoError(t, err)

	err = tc.AddMeshTypes(env.FS(), "PYR")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrMeshTypeNotFound))

	details := errors.GetErrorDetails(err)
	assert.Equal(t, "PYR", details["token"])
	assert.Equal(t, "EULER_TEST", details["family"])
	assert.Len(t, details["catalog"], 7)
	assert.Empty(t, tc.Variants)
}

func TestAddMeshTypesMissingControlFile(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	tc, err := New("update_h", env.Tree.Paths())
	require.NoError(t, err)

	err = tc.AddMeshTypes(env.FS(), "all")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrControlFileMissing))
	assert.Empty(t, tc.Variants)
}

func TestAccumulatorsDeduplicate(t *testing.T) {
	env := eulerEnv(t)
	tc, err := New("Euler_test", env.Tree.Paths())
	require.NoError(t, err)

	require.NoError(t, tc.AddMeshTypes(env.FS(), "CurvedMIXED2D"))
	require.NoError(t, tc.AddMeshTypes(env.FS(), "CurvedMIXED2D"))
	require.Len(t, tc.Variants, 2)

	assert.Equal(t, "SupersonicVortex.geo", tc.GeoDeps())
	assert.Equal(t, "SupersonicVortex/Euler/SupersonicVortex2D_CurvedMIXED2D0x.msh", tc.MeshOutputs())
}

func TestResolve(t *testing.T) {
	env := eulerEnv(t)

	tc, err := Resolve(Options{
		Name:      "Euler_test",
		MeshNames: []string{"CurvedMIXED2D", "ToBeCurvedTET", "QUAD"},
		Paths:     env.Tree.Paths(),
		FS:        env.FS(),
	})
	require.NoError(t, err)
	require.Len(t, tc.Variants, 3)
	assert.Equal(t, "MIXED2D", tc.Variants[0].Type)
	assert.Equal(t, "TET", tc.Variants[1].Type)
	assert.Equal(t, "QUAD", tc.Variants[2].Type)
	assert.Equal(t, "SupersonicVortex.geo PeriodicVortex.geo", tc.GeoDeps())
}

func TestResolveErrors(t *testing.T) {
	env := eulerEnv(t)

	_, err := Resolve(Options{Name: "Euler_test", Paths: env.Tree.Paths(), FS: env.FS()})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	_, err = Resolve(Options{Name: "Euler_test", MeshNames: []string{"all"}, FS: env.FS()})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInternal))

	_, err = Resolve(Options{Name: "Euler", MeshNames: []string{"all"}, Paths: env.Tree.Paths(), FS: env.FS()})
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnrecognizedFamily))

	_, err = Resolve(Options{Name: "Euler_test", MeshNames: []string{"all", "PYR"}, Paths: env.Tree.Paths(), FS: env.FS()})
	assert.True(t, errors.IsErrorCode(err, errors.ErrMeshTypeNotFound))
}

func TestCatalogIsCopy(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	tc, err := New("linearization", env.Tree.Paths())
	require.NoError(t, err)

	entries := tc.Catalog()
	entries[0].Type = "CHANGED"
	assert.Equal(t, "MIXED2D", tc.Catalog()[0].Type)
}
