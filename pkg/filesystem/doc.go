// Package filesystem provides the filesystems meshdeps reads control files
// from.
//
// Everything is an afero.Fs: the real one is the OS filesystem wrapped
// read-only, tests use an in-memory one.
package filesystem
