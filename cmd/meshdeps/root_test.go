package meshdeps

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/meshdeps/pkg/catalog"
	"github.com/arthur-debert/meshdeps/pkg/ctrlfile"
	"github.com/arthur-debert/meshdeps/pkg/testutil"
)

const taylorCouetteOutput = "TaylorCouette/NavierStokes/TaylorCouette2D_ToBeCurvedTRI0x.msh"

func setupCLI(t *testing.T) *testutil.TestEnvironment {
	t.Helper()

	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	env.Tree.AddFamily(catalog.FamilyNavierStokesTest, func(e catalog.Entry) ctrlfile.ControlFile {
		return testutil.Settings("NavierStokes", e)
	})
	return env
}

func run(t *testing.T, env *testutil.TestEnvironment, args ...string) (int, string, string) {
	t.Helper()

	full := append([]string{"--solver-root", env.SolverRoot, "--format", "text"}, args...)
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	code := Run(full, stdout, stderr)
	return code, stdout.String(), stderr.String()
}

func TestDepsCommand(t *testing.T) {
	env := setupCLI(t)

	code, stdout, stderr := run(t, env, "deps", "NavierStokes_test", "all")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "TaylorCouette.geo\n", stdout)
}

func TestOutputsCommand(t *testing.T) {
	env := setupCLI(t)

	code, stdout, stderr := run(t, env, "outputs", "NavierStokes_test", "all")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, taylorCouetteOutput+"\n", stdout)

	code, stdout, stderr = run(t, env, "outputs", "--absolute", "NAVIERSTOKES_TEST", "all")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, env.SolverRoot+"meshes/"+taylorCouetteOutput+"\n", stdout)
}

func TestResolveCommandJSON(t *testing.T) {
	env := setupCLI(t)

	code, stdout, stderr := run(t, env, "--format", "json", "resolve", "NavierStokes_test", "ToBeCurvedTRI")
	require.Equal(t, 0, code, stderr)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, "NAVIERSTOKES_TEST", got["var_name"])
	assert.Equal(t, "TaylorCouette.geo", got["deps"])
	assert.Equal(t, taylorCouetteOutput, got["outputs"])
}

func TestResolveCommandText(t *testing.T) {
	env := setupCLI(t)

	code, stdout, stderr := run(t, env, "resolve", "NavierStokes_test", "all")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "family:        Test_NavierStokes_ (NAVIERSTOKES_TEST)")
	assert.Contains(t, stdout, "deps:    TaylorCouette.geo")
	assert.Contains(t, stdout, "outputs: "+taylorCouetteOutput)
}

func TestResolveErrors(t *testing.T) {
	env := setupCLI(t)

	t.Run("unknown family", func(t *testing.T) {
		code, stdout, stderr := run(t, env, "deps", "Burgers", "all")
		assert.Equal(t, 1, code)
		assert.Empty(t, stdout)
		assert.Contains(t, stderr, "Error: [UNRECOGNIZED_FAMILY]")
		assert.Contains(t, stderr, "family: Burgers")
	})

	t.Run("mesh type not in catalog", func(t *testing.T) {
		code, _, stderr := run(t, env, "outputs", "NavierStokes_test", "QUAD")
		assert.Equal(t, 1, code)
		assert.Contains(t, stderr, "MESH_TYPE_NOT_FOUND")
	})

	t.Run("missing control file", func(t *testing.T) {
		code, _, stderr := run(t, env, "deps", "Euler_test", "all")
		assert.Equal(t, 1, code)
		assert.Contains(t, stderr, "CONTROL_FILE_MISSING")
	})

	t.Run("too few arguments", func(t *testing.T) {
		code, _, stderr := run(t, env, "deps", "NavierStokes_test")
		assert.Equal(t, 1, code)
		assert.Contains(t, stderr, "requires at least 2 arg(s)")
	})

	t.Run("unknown os", func(t *testing.T) {
		code, _, stderr := run(t, env, "--os", "beos", "paths")
		assert.Equal(t, 1, code)
		assert.Contains(t, stderr, "Error: [INVALID_INPUT] unknown OS family: beos")
	})

	t.Run("unknown user", func(t *testing.T) {
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		code := Run([]string{"--user", "nobody", "--format", "text", "paths"}, stdout, stderr)
		assert.Equal(t, 1, code)
		assert.Contains(t, stderr.String(), "UNRECOGNIZED_USER")
	})
}

func TestCatalogCommand(t *testing.T) {
	env := setupCLI(t)

	code, stdout, stderr := run(t, env, "catalog", "Euler_test")
	require.Equal(t, 0, code, stderr)
	assert.True(t, strings.HasPrefix(stdout, "EULER_TEST (test/Euler/Test_Euler_)\n"), stdout)
	assert.NotContains(t, stdout, "UPDATE_H")

	code, stdout, _ = run(t, env, "catalog")
	require.Equal(t, 0, code)
	for _, f := range catalog.Families() {
		assert.Contains(t, stdout, catalog.Lookup(f).VarName)
	}
}

func TestPathsCommand(t *testing.T) {
	env := setupCLI(t)

	code, stdout, stderr := run(t, env, "--os", "other", "paths")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "user:           "+LocalUser)
	assert.Contains(t, stdout, "solver root:    "+env.SolverRoot)
	assert.Contains(t, stdout, "control files:  "+env.SolverRoot+"cases/control_files/")
}

func TestPathsCommandConfiguredUser(t *testing.T) {
	testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	code := Run([]string{"--user", "PZwan", "--os", "darwin", "--format", "text", "paths"}, stdout, stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stdout.String(), "mesh generator: /Applications/Gmsh.app/Contents/MacOS/gmsh")
	assert.Contains(t, stdout.String(), "solver root:    /Users/philip/Desktop/DPGSolver/")
}

func TestGenConfigCommand(t *testing.T) {
	env := setupCLI(t)

	code, stdout, stderr := run(t, env, "gen-config")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "[layout]")
	assert.Contains(t, stdout, `# meshes = "meshes/"`)

	target := filepath.Join(env.HomeDir, "meshdeps.toml")
	code, stdout, stderr = run(t, env, "gen-config", "-w", "--output", target)
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "Wrote "+target)

	assert.Contains(t, testutil.ReadFile(t, afero.NewOsFs(), target), "# default_user")
}

func TestGenConfigEffective(t *testing.T) {
	env := setupCLI(t)

	code, stdout, stderr := run(t, env, "gen-config", "--effective")
	require.Equal(t, 0, code, stderr)
	assert.Regexp(t, `default_user = .local.`, stdout)
	assert.Contains(t, stdout, env.SolverRoot)
}

func TestHelpTopics(t *testing.T) {
	env := setupCLI(t)

	code, stdout, _ := run(t, env, "help", "topics")
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "Available help topics:")
	assert.Contains(t, stdout, "  naming")
	assert.Contains(t, stdout, "  --format")

	code, stdout, _ = run(t, env, "help", "naming")
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "Mesh names")
}

func TestVersionCommand(t *testing.T) {
	env := setupCLI(t)

	code, stdout, _ := run(t, env, "version")
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "meshdeps version dev")
}

func TestNoCommand(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	code := Run([]string{}, stdout, stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), MsgErrNoCommand)
}
