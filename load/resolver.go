package load

import (
	"errors"
	"io/fs"

	"github.com/pgavlin/wasmtypes/wasm"
)

// ErrModuleNotFound is returned when a name resolves to no file.
var ErrModuleNotFound = errors.New("load: module not found")

// Extensions lists the suffixes tried, in order, when resolving a name.
var Extensions = []string{".wasm", ".types", ""}

// FSResolver resolves module names to modules stored in a file system.
type FSResolver struct {
	fs    fs.FS
	cache map[string]*wasm.Module
}

func NewFSResolver(fsys fs.FS) *FSResolver {
	return &FSResolver{fs: fsys, cache: map[string]*wasm.Module{}}
}

func (r *FSResolver) loadModule(name string) (*wasm.Module, error) {
	for _, ext := range Extensions {
		f, err := r.fs.Open(name + ext)
		if err != nil {
			continue
		}
		if info, err := f.Stat(); err == nil && info.IsDir() {
			f.Close()
			continue
		}
		defer f.Close()
		return Module(f)
	}
	return nil, ErrModuleNotFound
}

// Resolve returns the module stored under name. Decoded modules are cached.
func (r *FSResolver) Resolve(name string) (*wasm.Module, error) {
	if m, ok := r.cache[name]; ok {
		return m, nil
	}
	m, err := r.loadModule(name)
	if err != nil {
		return nil, err
	}
	r.cache[name] = m
	return m, nil
}
