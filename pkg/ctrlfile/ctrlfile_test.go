package ctrlfile

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/meshdeps/pkg/errors"
	"github.com/arthur-debert/meshdeps/pkg/filesystem"
)

const supersonicVortex = `% Mesh
PDEName        Euler
PDESpecifier   NONE
Geometry       SupersonicVortex geo_input
GeomSpecifier  NONE
MeshCurving    Curved
Dimension      2
MeshLevel      0

% Solver
Method   DG
PGlobal  2
`

func TestParse(t *testing.T) {
	c, err := Parse(strings.NewReader(supersonicVortex))
	require.NoError(t, err)

	assert.Equal(t, ControlFile{
		PDEName:       "Euler",
		PDESpecifier:  "NONE",
		Geometry:      "SupersonicVortex",
		InputName:     "geo_input",
		GeomSpecifier: "NONE",
		MeshCurving:   "Curved",
		Dimension:     "2",
		MeshLevel:     "0",
	}, c)
	assert.False(t, c.HasPDESpecifier())
	assert.False(t, c.HasGeomSpecifier())
	assert.False(t, c.IsStraight())
}

func TestParseEdgeCases(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  ControlFile
	}{
		{
			name:  "empty",
			input: "",
			want:  ControlFile{},
		},
		{
			name:  "missing values stay empty",
			input: "PDEName\nGeometry Annulus\n",
			want:  ControlFile{Geometry: "Annulus"},
		},
		{
			name:  "comments ignored",
			input: "% PDEName Poisson\n# MeshLevel 3\nPDEName Euler\n",
			want:  ControlFile{PDEName: "Euler"},
		},
		{
			name:  "key must be the first field",
			input: "Comment PDEName Poisson\nPDENameX Navier\n",
			want:  ControlFile{},
		},
		{
			name:  "last occurrence wins",
			input: "MeshLevel 1\nMeshLevel 2\n",
			want:  ControlFile{MeshLevel: "2"},
		},
		{
			name:  "tabs and trailing fields",
			input: "Dimension\t3\textra\nMeshCurving\tStraight\n",
			want:  ControlFile{Dimension: "3", MeshCurving: "Straight"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSpecifiers(t *testing.T) {
	c := ControlFile{PDESpecifier: "Steady", GeomSpecifier: "", MeshCurving: "StraightX"}
	assert.True(t, c.HasPDESpecifier())
	assert.True(t, c.HasGeomSpecifier())
	assert.True(t, c.IsStraight())

	c = ControlFile{PDESpecifier: "NONE_X", MeshCurving: "NotStraight"}
	assert.True(t, c.HasPDESpecifier())
	assert.False(t, c.IsStraight())
}

func TestLoad(t *testing.T) {
	fsys := filesystem.NewMemory()
	path := "/solver/cases/control_files/test/Euler/Test_Euler_SupersonicVortex_CurvedMIXED2D.ctrl"
	require.NoError(t, afero.WriteFile(fsys, path, []byte(supersonicVortex), 0644))

	c, err := Load(fsys, path)
	require.NoError(t, err)
	assert.Equal(t, "SupersonicVortex", c.Geometry)
	assert.Equal(t, "geo_input", c.InputName)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filesystem.NewMemory(), "/nope.ctrl")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrControlFileMissing))
	assert.Equal(t, "/nope.ctrl", errors.GetErrorDetails(err)["path"])
}

func TestLoadDirectory(t *testing.T) {
	fsys := filesystem.NewMemory()
	require.NoError(t, fsys.MkdirAll("/dir.ctrl", 0755))

	_, err := Load(fsys, "/dir.ctrl")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrControlFileRead))
}

func TestFormat(t *testing.T) {
	c, err := Parse(strings.NewReader(supersonicVortex))
	require.NoError(t, err)

	out := c.Format()
	assert.Contains(t, out, "Geometry       SupersonicVortex geo_input\n")

	again, err := Parse(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, c, again)
}

func TestFormatSkipsEmpty(t *testing.T) {
	out := ControlFile{PDEName: "Euler"}.Format()
	assert.Equal(t, "PDEName        Euler\n", out)
}
