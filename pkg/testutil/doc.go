// Package testutil provides utilities for testing meshdeps components.
//
// Key components:
//   - ControlTree: builds a solver checkout with control files on any afero.Fs
//   - TestEnvironment: isolates HOME and the XDG directories and owns a tree
//   - file helpers for tests that touch the real filesystem
//
// Most tests should use EnvMemoryOnly; only tests that go through the OS
// filesystem (the CLI, config files) need EnvIsolated.
package testutil
