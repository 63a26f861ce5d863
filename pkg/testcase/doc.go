// Package testcase resolves a test-case family into its mesh variants.
//
// A family is requested by name ("Euler_test", "update_h", ...) together with
// one or more mesh-name tokens. Each token selects either one catalog entry
// or, when it contains "all", the whole catalog. Every selected entry is
// resolved against its control file, and the family then reports two
// space-separated lists: the geometry inputs the meshes depend on and the
// mesh files they produce.
package testcase
