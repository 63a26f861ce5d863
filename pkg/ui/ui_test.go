package ui_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/meshdeps/pkg/catalog"
	"github.com/arthur-debert/meshdeps/pkg/ctrlfile"
	"github.com/arthur-debert/meshdeps/pkg/errors"
	"github.com/arthur-debert/meshdeps/pkg/mesh"
	"github.com/arthur-debert/meshdeps/pkg/types"
	"github.com/arthur-debert/meshdeps/pkg/ui"
)

func sampleResolve() *types.ResolveResult {
	settings := ctrlfile.ControlFile{
		PDEName: "Euler", PDESpecifier: "NONE",
		Geometry: "SupersonicVortex", InputName: "geo_input",
		GeomSpecifier: "NONE", MeshCurving: "Curved",
		Dimension: "2", MeshLevel: "0",
	}
	v := mesh.Variant{
		Type:        "TRI",
		Prefix:      "SupersonicVortex_Curved",
		ControlFile: "/s/cases/control_files/test/Euler/Test_Euler_SupersonicVortex_CurvedTRI.ctrl",
		Settings:    settings,
		Naming:      mesh.Names(settings, "TRI", "/s/meshes/"),
	}
	return &types.ResolveResult{
		Family:           "Euler_test",
		Canonical:        "Test_Euler_",
		VarName:          "EULER_TEST",
		ControlFilesPath: "/s/cases/control_files/test/Euler/",
		MeshNames:        []string{"CurvedTRI"},
		Variants:         []mesh.Variant{v},
		Deps:             "geo_input",
		Outputs:          v.OutputName,
		OutputsAbs:       v.OutputNameAbs,
	}
}

func TestNewRenderer(t *testing.T) {
	for _, format := range []ui.Format{ui.FormatAuto, ui.FormatTerminal, ui.FormatText, ui.FormatJSON, ui.FormatYAML} {
		t.Run(format.String(), func(t *testing.T) {
			r, err := ui.NewRenderer(format, &bytes.Buffer{})
			require.NoError(t, err)
			assert.NotNil(t, r)
		})
	}

	_, err := ui.NewRenderer(ui.Format(999), &bytes.Buffer{})
	assert.Error(t, err)
}

func TestTextListIsBare(t *testing.T) {
	buf := &bytes.Buffer{}
	r, err := ui.NewRenderer(ui.FormatText, buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderResult(&types.ListResult{Kind: types.ListDeps, Value: "a.geo b.geo"}))
	assert.Equal(t, "a.geo b.geo\n", buf.String())
}

func TestTextResolve(t *testing.T) {
	buf := &bytes.Buffer{}
	r, err := ui.NewRenderer(ui.FormatText, buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderResult(sampleResolve()))
	out := buf.String()
	assert.Contains(t, out, "family:        Test_Euler_ (EULER_TEST)")
	assert.Contains(t, out, "deps:    geo_input\n")
	assert.Contains(t, out, "outputs: SupersonicVortex/Euler/SupersonicVortex2D_CurvedTRI0x.msh\n")
}

func TestTextCatalog(t *testing.T) {
	buf := &bytes.Buffer{}
	r, err := ui.NewRenderer(ui.FormatText, buf)
	require.NoError(t, err)

	spec := catalog.Lookup(catalog.FamilyNavierStokesTest)
	require.NoError(t, r.RenderResult(&types.CatalogResult{Families: []types.FamilyCatalog{{
		VarName: spec.VarName, Canonical: spec.Canonical, Dir: spec.Dir, Entries: spec.Entries,
	}}}))
	assert.Equal(t, "NAVIERSTOKES_TEST (test/NavierStokes/Test_NavierStokes_)\n  (TRI, 'TaylorCouette_', 'ToBeCurved')\n", buf.String())
}

func TestTextError(t *testing.T) {
	buf := &bytes.Buffer{}
	r, err := ui.NewRenderer(ui.FormatText, buf)
	require.NoError(t, err)

	meshErr := errors.New(errors.ErrMeshTypeNotFound, "did not find the mesh type").
		WithDetail("token", "PYR").
		WithDetail("catalog", []string{"(TRI, '', '')"})
	require.NoError(t, r.RenderError(meshErr))
	assert.Equal(t, "Error: [MESH_TYPE_NOT_FOUND] did not find the mesh type\ncatalog:\n  (TRI, '', '')\ntoken: PYR\n", buf.String())
}

func TestJSONRoundTrip(t *testing.T) {
	buf := &bytes.Buffer{}
	r, err := ui.NewRenderer(ui.FormatJSON, buf)
	require.NoError(t, err)

	want := sampleResolve()
	require.NoError(t, r.RenderResult(want))

	var got types.ResolveResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, *want, got)
}

func TestJSONError(t *testing.T) {
	buf := &bytes.Buffer{}
	r, err := ui.NewRenderer(ui.FormatJSON, buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderError(errors.New(errors.ErrUnrecognizedUser, "unknown user").WithDetail("user", "bob")))

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "UNRECOGNIZED_USER", got["code"])
	assert.Equal(t, map[string]interface{}{"user": "bob"}, got["details"])
}

func TestYAMLRoundTrip(t *testing.T) {
	buf := &bytes.Buffer{}
	r, err := ui.NewRenderer(ui.FormatYAML, buf)
	require.NoError(t, err)

	want := sampleResolve()
	require.NoError(t, r.RenderResult(want))
	assert.Contains(t, buf.String(), "var_name: EULER_TEST")

	var got types.ResolveResult
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, *want, got)
}

func TestTerminalRendering(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	buf := &bytes.Buffer{}
	r, err := ui.NewRenderer(ui.FormatTerminal, buf)
	require.NoError(t, err)

	require.NoError(t, r.RenderResult(sampleResolve()))
	out := buf.String()
	assert.Contains(t, out, "Test_Euler_ EULER_TEST")
	assert.Contains(t, out, "TRI SupersonicVortex_Curved")
	assert.Contains(t, out, "SupersonicVortex/Euler/SupersonicVortex2D_CurvedTRI0x.msh")

	buf.Reset()
	require.NoError(t, r.RenderResult(&types.ListResult{Kind: types.ListOutputs}))
	assert.True(t, strings.HasPrefix(buf.String(), "outputs"))
	assert.Contains(t, buf.String(), "(none)")
}
