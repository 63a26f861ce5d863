// Package catalog holds the fixed mesh-variant catalogs of every test-case
// family and the matcher that selects variants from them.
//
// A family is a closed enum. Requested family names are mapped onto it once
// by ParseFamily; everything downstream dispatches on the enum.
//
// A catalog is an ordered list of entries {Type, Prefix, Curving}. A request
// names one entry through the concatenation Curving+Type (e.g.
// "ToBeCurvedMIXED2D"), or every entry through "all".
package catalog
