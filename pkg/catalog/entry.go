package catalog

// Curving tokens used by the catalogs
const (
	CurvingNone       = ""
	CurvingCurved     = "Curved"
	CurvingToBeCurved = "ToBeCurved"
)

// Entry is one candidate mesh variant of a family
type Entry struct {
	Type    string `json:"type" yaml:"type"`
	Prefix  string `json:"prefix" yaml:"prefix"`
	Curving string `json:"curving" yaml:"curving"`
}

// Key is the token a request must contain to select this entry
func (e Entry) Key() string {
	return e.Curving + e.Type
}

// VariantPrefix is the part of the control-file name between the family's
// canonical name and the mesh type
func (e Entry) VariantPrefix() string {
	return e.Prefix + e.Curving
}

// String renders the entry for diagnostics
func (e Entry) String() string {
	return "(" + e.Type + ", '" + e.Prefix + "', '" + e.Curving + "')"
}
