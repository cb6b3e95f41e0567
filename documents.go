package swagview

import (
	"io/fs"
	"os"
)

// documentFS exposes one file on disk under the name the viewer config points at
type documentFS struct {
	name string
	path string
}

// DocumentFile serves the file at path as name, for example as swagger.yaml
func DocumentFile(name, path string) fs.FS {
	return &documentFS{name: name, path: path}
}

func (d *documentFS) Open(name string) (fs.File, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}
	if name != d.name {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	return os.Open(d.path)
}
