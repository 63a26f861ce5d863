package filesystem

import (
	"io/fs"

	"github.com/spf13/afero"
)

// NewOS returns the OS filesystem, read-only
func NewOS() afero.Fs {
	return afero.NewReadOnlyFs(afero.NewOsFs())
}

// NewMemory returns an empty in-memory filesystem
func NewMemory() afero.Fs {
	return afero.NewMemMapFs()
}

// Open opens name for reading. Directories are rejected with fs.ErrInvalid.
func Open(fsys afero.Fs, name string) (afero.File, error) {
	info, err := fsys.Stat(name)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}
	return fsys.Open(name)
}

// Exists reports whether name exists and is a regular file
func Exists(fsys afero.Fs, name string) bool {
	info, err := fsys.Stat(name)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
