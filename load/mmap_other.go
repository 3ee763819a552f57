//go:build !unix

package load

func mapFile(path string) ([]byte, func(), error) {
	return readFile(path)
}
