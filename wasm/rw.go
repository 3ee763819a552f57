// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wasm

import (
	"encoding/binary"
	"errors"
	"io"
	"unicode/utf8"

	"github.com/pgavlin/wasmtypes/wasm/leb128"
)

// ErrInvalidUTF8 is returned when a name is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("wasm: name must be valid UTF-8")

// maxInitialCap bounds preallocation for counts read off the wire.
const maxInitialCap = 10 * 1024

func getInitialCap(count uint32) uint32 {
	if count > maxInitialCap {
		return maxInitialCap
	}
	return count
}

// readList reads a count-prefixed sequence of items, calling read once per
// item. An empty sequence is returned as nil.
func readList[T any](r io.Reader, read func(io.Reader) (T, error)) ([]T, error) {
	count, err := leb128.ReadVarUint32(r)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, nil
	}

	items := make([]T, 0, getInitialCap(count))
	for i := uint32(0); i < count; i++ {
		item, err := read(r)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// writeList writes a count-prefixed sequence of items.
func writeList[T Marshaler](w io.Writer, items []T) error {
	if _, err := leb128.WriteVarUint32(w, uint32(len(items))); err != nil {
		return err
	}
	for _, item := range items {
		if err := item.MarshalWASM(w); err != nil {
			return err
		}
	}
	return nil
}

func readU32(r io.Reader) (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}

func writeU32(w io.Writer, n uint32) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], n)
	_, err := w.Write(buf[:])
	return err
}

func readBytes(r io.Reader, n uint32) ([]byte, error) {
	buf := make([]byte, 0, getInitialCap(n))
	for uint32(len(buf)) < n {
		chunk := n - uint32(len(buf))
		if chunk > maxInitialCap {
			chunk = maxInitialCap
		}
		start := len(buf)
		buf = append(buf, make([]byte, chunk)...)
		if _, err := io.ReadFull(r, buf[start:]); err != nil {
			return nil, err
		}
	}
	return buf, nil
}

func readBytesUint(r io.Reader) ([]byte, error) {
	n, err := leb128.ReadVarUint32(r)
	if err != nil {
		return nil, err
	}
	return readBytes(r, n)
}

func writeBytesUint(w io.Writer, p []byte) error {
	if _, err := leb128.WriteVarUint32(w, uint32(len(p))); err != nil {
		return err
	}
	_, err := w.Write(p)
	return err
}

func readUTF8StringUint(r io.Reader) (string, error) {
	b, err := readBytesUint(r)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", ErrInvalidUTF8
	}
	return string(b), nil
}

func writeStringUint(w io.Writer, s string) error {
	return writeBytesUint(w, []byte(s))
}
