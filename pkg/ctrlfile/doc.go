// Package ctrlfile reads solver control files.
//
// A control file is line oriented. The first whitespace-delimited field of a
// line is its key and the following fields are its values:
//
//	PDEName        Euler
//	PDESpecifier   NONE
//	Geometry       SupersonicVortex  geo_input
//	GeomSpecifier  NONE
//	MeshCurving    Curved
//	Dimension      2
//	MeshLevel      0
//
// Only the keys above are read. Anything else is ignored, as are blank lines
// and lines starting with % or #. Values are not validated.
package ctrlfile
