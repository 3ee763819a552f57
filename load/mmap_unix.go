//go:build unix

package load

import (
	"os"

	"golang.org/x/sys/unix"
)

// mapFile maps the contents of path read-only. The returned function unmaps
// them; the data must not be used afterwards.
func mapFile(path string) ([]byte, func(), error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, nil, err
	}
	size := info.Size()
	if size == 0 {
		return nil, func() {}, nil
	}
	if int64(int(size)) != size {
		return readFile(path)
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		// Not every file can be mapped (pipes, some special files).
		return readFile(path)
	}
	return data, func() { _ = unix.Munmap(data) }, nil
}
