package catalog

import (
	"strings"

	"github.com/arthur-debert/meshdeps/pkg/errors"
)

// Family identifies a group of control files sharing a naming convention
type Family int

const (
	FamilyUpdateH Family = iota
	FamilyL2ProjP
	FamilyL2ProjH
	FamilyLinearization
	FamilyPoissonTest
	FamilyEulerTest
	FamilyNavierStokesTest
)

// Spec is the fixed description of a family
type Spec struct {
	Family Family
	// VarName tags the family's lists for the build system
	VarName string
	// Canonical is the file-name prefix of every control file of the family
	Canonical string
	// Dir is the family's directory below the control-files root
	Dir string
	// Entries is the catalog, in match order
	Entries []Entry
}

var elementTypes = []Entry{
	{Type: "TRI"},
	{Type: "QUAD"},
	{Type: "TET"},
	{Type: "HEX"},
	{Type: "WEDGE"},
	{Type: "PYR"},
}

var specs = map[Family]Spec{
	FamilyUpdateH: {
		VarName:   "UPDATE_H",
		Canonical: "Test_update_h_",
		Dir:       "test/update_h/",
		Entries:   elementTypes,
	},
	FamilyL2ProjP: {
		VarName:   "L2_PROJ_P",
		Canonical: "Test_L2_proj_p_",
		Dir:       "test/L2_proj_p/",
		Entries:   elementTypes,
	},
	FamilyL2ProjH: {
		VarName:   "L2_PROJ_H",
		Canonical: "Test_L2_proj_h_",
		Dir:       "test/L2_proj_h/",
		Entries:   elementTypes,
	},
	FamilyLinearization: {
		VarName:   "LINEARIZATION",
		Canonical: "Test_linearization_",
		Dir:       "test/linearization/",
		Entries: []Entry{
			{Type: "MIXED2D", Curving: CurvingToBeCurved},
			{Type: "MIXED3D_TP", Curving: CurvingToBeCurved},
			{Type: "MIXED3D_HW", Curving: CurvingToBeCurved},
		},
	},
	FamilyPoissonTest: {
		VarName:   "POISSON_TEST",
		Canonical: "Test_Poisson_",
		Dir:       "test/Poisson/",
		Entries: []Entry{
			{Type: "MIXED2D", Prefix: "n-Ball_HollowSection_", Curving: CurvingCurved},
			{Type: "TRI", Prefix: "n-Ellipsoid_HollowSection_", Curving: CurvingCurved},
			{Type: "QUAD", Prefix: "n-Ellipsoid_HollowSection_", Curving: CurvingCurved},
		},
	},
	FamilyEulerTest: {
		VarName:   "EULER_TEST",
		Canonical: "Test_Euler_",
		Dir:       "test/Euler/",
		Entries: []Entry{
			{Type: "MIXED2D", Prefix: "SupersonicVortex_", Curving: CurvingCurved},
			{Type: "MIXED2D", Prefix: "SupersonicVortex_", Curving: CurvingToBeCurved},
			{Type: "MIXED3D_TP", Prefix: "SupersonicVortex_", Curving: CurvingToBeCurved},
			{Type: "TET", Prefix: "SupersonicVortex_", Curving: CurvingToBeCurved},
			{Type: "HEX", Prefix: "SupersonicVortex_", Curving: CurvingToBeCurved},
			{Type: "WEDGE", Prefix: "SupersonicVortex_", Curving: CurvingToBeCurved},
			{Type: "QUAD", Prefix: "PeriodicVortex_", Curving: CurvingNone},
		},
	},
	FamilyNavierStokesTest: {
		VarName:   "NAVIERSTOKES_TEST",
		Canonical: "Test_NavierStokes_",
		Dir:       "test/NavierStokes/",
		Entries: []Entry{
			{Type: "TRI", Prefix: "TaylorCouette_", Curving: CurvingToBeCurved},
		},
	},
}

// Families returns every family in declaration order
func Families() []Family {
	return []Family{
		FamilyUpdateH,
		FamilyL2ProjP,
		FamilyL2ProjH,
		FamilyLinearization,
		FamilyPoissonTest,
		FamilyEulerTest,
		FamilyNavierStokesTest,
	}
}

// Lookup returns the spec of f. The entries are a copy.
func Lookup(f Family) Spec {
	spec, ok := specs[f]
	if !ok {
		return Spec{Family: f}
	}
	spec.Family = f
	spec.Entries = append([]Entry(nil), spec.Entries...)
	return spec
}

// String returns the family's variable name
func (f Family) String() string {
	if spec, ok := specs[f]; ok {
		return spec.VarName
	}
	return "UNKNOWN"
}

// ParseFamily maps a requested name onto a family.
//
// Names are recognized by keyword, in this order: "update_h", "L2_proj_p",
// "L2_proj_h", "linearization", then "Poisson", "Euler" and "NavierStokes",
// which also need "test" in any case. A family's VarName is accepted as well,
// case-insensitively.
func ParseFamily(name string) (Family, error) {
	for _, f := range Families() {
		if strings.EqualFold(name, specs[f].VarName) {
			return f, nil
		}
	}

	isTest := strings.Contains(strings.ToLower(name), "test")
	switch {
	case strings.Contains(name, "update_h"):
		return FamilyUpdateH, nil
	case strings.Contains(name, "L2_proj_p"):
		return FamilyL2ProjP, nil
	case strings.Contains(name, "L2_proj_h"):
		return FamilyL2ProjH, nil
	case strings.Contains(name, "linearization"):
		return FamilyLinearization, nil
	case strings.Contains(name, "Poisson") && isTest:
		return FamilyPoissonTest, nil
	case strings.Contains(name, "Euler") && isTest:
		return FamilyEulerTest, nil
	case strings.Contains(name, "NavierStokes") && isTest:
		return FamilyNavierStokesTest, nil
	}

	return 0, errors.Newf(errors.ErrUnrecognizedFamily, "unsupported test case family: %s", name).
		WithDetail("family", name).
		WithDetail("supported", supportedNames())
}

func supportedNames() []string {
	names := make([]string, 0, len(specs))
	for _, f := range Families() {
		names = append(names, specs[f].Canonical)
	}
	return names
}
