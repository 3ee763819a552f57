// Package load reads WebAssembly type information from binary modules or
// from bare type-section payloads.
package load

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/pgavlin/wasmtypes/wasm"
)

// ErrTrailingBytes is returned when a bare type-section payload is followed
// by unread input.
var ErrTrailingBytes = errors.New("load: trailing bytes after type section")

// Module decodes a binary module from r. If r does not begin with the module
// magic, its contents are decoded as a bare type-section payload and wrapped
// in a module holding only that section.
func Module(r io.Reader) (*wasm.Module, error) {
	br := bufio.NewReader(r)

	buf, err := br.Peek(4)
	switch {
	case err == nil && binary.LittleEndian.Uint32(buf) == wasm.Magic:
		return wasm.DecodeModule(br)
	case err != nil && err != io.EOF:
		return nil, err
	}

	types, err := wasm.DecodeTypeSection(br)
	if err != nil {
		return nil, err
	}
	if _, err := br.ReadByte(); err != io.EOF {
		if err != nil {
			return nil, err
		}
		return nil, ErrTrailingBytes
	}
	return wasm.NewModule(types...), nil
}

// File loads the module or type section stored at path.
func File(path string) (*wasm.Module, error) {
	data, release, err := mapFile(path)
	if err != nil {
		return nil, err
	}
	defer release()

	m, err := Module(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("loading %v: %w", path, err)
	}
	return m, nil
}
