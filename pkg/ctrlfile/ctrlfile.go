package ctrlfile

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/spf13/afero"

	"github.com/arthur-debert/meshdeps/pkg/errors"
	"github.com/arthur-debert/meshdeps/pkg/filesystem"
	"github.com/arthur-debert/meshdeps/pkg/logging"
)

// Recognized keys
const (
	KeyPDEName       = "PDEName"
	KeyPDESpecifier  = "PDESpecifier"
	KeyGeometry      = "Geometry"
	KeyGeomSpecifier = "GeomSpecifier"
	KeyMeshCurving   = "MeshCurving"
	KeyDimension     = "Dimension"
	KeyMeshLevel     = "MeshLevel"
)

// None marks an absent PDE or geometry specifier
const None = "NONE"

// ControlFile holds the mesh-related settings of one control file
type ControlFile struct {
	PDEName       string `json:"pde_name" yaml:"pde_name"`
	PDESpecifier  string `json:"pde_specifier" yaml:"pde_specifier"`
	Geometry      string `json:"geometry" yaml:"geometry"`
	InputName     string `json:"input_name" yaml:"input_name"`
	GeomSpecifier string `json:"geom_specifier" yaml:"geom_specifier"`
	MeshCurving   string `json:"mesh_curving" yaml:"mesh_curving"`
	Dimension     string `json:"dimension" yaml:"dimension"`
	MeshLevel     string `json:"mesh_level" yaml:"mesh_level"`
}

// Parse reads a control file from r. Later occurrences of a key win.
func Parse(r io.Reader) (ControlFile, error) {
	var c ControlFile

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || isComment(fields[0]) {
			continue
		}

		key, values := fields[0], fields[1:]
		switch key {
		case KeyPDEName:
			c.PDEName = value(values, 0)
		case KeyPDESpecifier:
			c.PDESpecifier = value(values, 0)
		case KeyGeometry:
			c.Geometry = value(values, 0)
			c.InputName = value(values, 1)
		case KeyGeomSpecifier:
			c.GeomSpecifier = value(values, 0)
		case KeyMeshCurving:
			c.MeshCurving = value(values, 0)
		case KeyDimension:
			c.Dimension = value(values, 0)
		case KeyMeshLevel:
			c.MeshLevel = value(values, 0)
		}
	}
	if err := scanner.Err(); err != nil {
		return ControlFile{}, err
	}

	return c, nil
}

// Load opens path on fsys and parses it
func Load(fsys afero.Fs, path string) (ControlFile, error) {
	logger := logging.GetLogger("ctrlfile")

	f, err := filesystem.Open(fsys, path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return ControlFile{}, errors.Wrap(err, errors.ErrControlFileMissing, "control file does not exist").
				WithDetail("path", path)
		}
		return ControlFile{}, errors.Wrap(err, errors.ErrControlFileRead, "cannot open control file").
			WithDetail("path", path)
	}
	defer func() { _ = f.Close() }()

	c, err := Parse(f)
	if err != nil {
		return ControlFile{}, errors.Wrap(err, errors.ErrControlFileRead, "cannot read control file").
			WithDetail("path", path)
	}

	logger.Debug().
		Str("path", path).
		Str("geometry", c.Geometry).
		Str("pde", c.PDEName).
		Msg("Read control file")

	return c, nil
}

// HasPDESpecifier reports whether the PDE specifier adds a directory level
func (c ControlFile) HasPDESpecifier() bool {
	return c.PDESpecifier != None
}

// HasGeomSpecifier reports whether the geometry specifier adds a directory
// level
func (c ControlFile) HasGeomSpecifier() bool {
	return c.GeomSpecifier != None
}

// IsStraight reports whether the mesh curving is left out of mesh names
func (c ControlFile) IsStraight() bool {
	return strings.HasPrefix(c.MeshCurving, "Straight")
}

// Format renders c in control-file syntax. Empty settings are left out.
func (c ControlFile) Format() string {
	var b strings.Builder
	line := func(key string, values ...string) {
		if values[0] == "" {
			return
		}
		fmt.Fprintf(&b, "%-14s %s\n", key, strings.TrimSpace(strings.Join(values, " ")))
	}

	line(KeyPDEName, c.PDEName)
	line(KeyPDESpecifier, c.PDESpecifier)
	line(KeyGeometry, c.Geometry, c.InputName)
	line(KeyGeomSpecifier, c.GeomSpecifier)
	line(KeyMeshCurving, c.MeshCurving)
	line(KeyDimension, c.Dimension)
	line(KeyMeshLevel, c.MeshLevel)
	return b.String()
}

func isComment(field string) bool {
	return strings.HasPrefix(field, "%") || strings.HasPrefix(field, "#")
}

func value(values []string, i int) string {
	if i < len(values) {
		return values[i]
	}
	return ""
}
