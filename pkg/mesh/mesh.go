package mesh

import (
	"github.com/spf13/afero"

	"github.com/arthur-debert/meshdeps/pkg/catalog"
	"github.com/arthur-debert/meshdeps/pkg/ctrlfile"
	"github.com/arthur-debert/meshdeps/pkg/logging"
)

// CtrlExt is the extension of control files
const CtrlExt = ".ctrl"

// Naming holds the derived output locations of one variant. OutputDir and
// OutputName are relative to the meshes root; OutputDir ends in "/".
type Naming struct {
	OutputDir     string `json:"output_dir" yaml:"output_dir"`
	OutputDirAbs  string `json:"output_dir_abs" yaml:"output_dir_abs"`
	OutputName    string `json:"output_name" yaml:"output_name"`
	OutputNameAbs string `json:"output_name_abs" yaml:"output_name_abs"`
}

// Variant is a catalog entry resolved against its control file. Prefix is the
// catalog prefix followed by the catalog curving.
type Variant struct {
	Naming `yaml:",inline"`

	Type        string               `json:"type" yaml:"type"`
	Prefix      string               `json:"prefix" yaml:"prefix"`
	ControlFile string               `json:"control_file" yaml:"control_file"`
	Settings    ctrlfile.ControlFile `json:"settings" yaml:"settings"`
}

// InputName is the geometry dependency of the variant
func (v Variant) InputName() string {
	return v.Settings.InputName
}

// ControlFilePath is where the control file of entry lives for a family
// rooted at familyPath with the given canonical name
func ControlFilePath(familyPath, canonical string, entry catalog.Entry) string {
	return familyPath + canonical + entry.VariantPrefix() + entry.Type + CtrlExt
}

// Names derives the output locations for a variant of type typ
func Names(c ctrlfile.ControlFile, typ, meshRoot string) Naming {
	dir := c.Geometry + "/" + c.PDEName + "/"
	if c.HasPDESpecifier() {
		dir += c.PDESpecifier + "/"
	}
	if c.HasGeomSpecifier() {
		dir += c.GeomSpecifier + "/"
	}

	name := dir + c.Geometry + c.Dimension + "D_"
	if !c.IsStraight() {
		name += c.MeshCurving
	}
	name += typ + c.MeshLevel + "x.msh"

	return Naming{
		OutputDir:     dir,
		OutputDirAbs:  meshRoot + dir,
		OutputName:    name,
		OutputNameAbs: meshRoot + name,
	}
}

// Derive reads the control file of entry and derives its names
func Derive(fsys afero.Fs, entry catalog.Entry, familyPath, canonical, meshRoot string) (Variant, error) {
	logger := logging.GetLogger("mesh")

	path := ControlFilePath(familyPath, canonical, entry)
	settings, err := ctrlfile.Load(fsys, path)
	if err != nil {
		return Variant{}, err
	}

	v := Variant{
		Type:        entry.Type,
		Prefix:      entry.VariantPrefix(),
		ControlFile: path,
		Settings:    settings,
		Naming:      Names(settings, entry.Type, meshRoot),
	}

	logger.Debug().
		Str("type", v.Type).
		Str("prefix", v.Prefix).
		Str("output", v.OutputName).
		Str("input", v.InputName()).
		Msg("Derived mesh variant")

	return v, nil
}
