// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wasm

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/pgavlin/wasmtypes/wasm/internal/readpos"
)

var (
	ErrInvalidMagic   = errors.New("wasm: magic header not detected")
	ErrUnknownVersion = errors.New("wasm: unknown binary version")
)

const (
	Magic   uint32 = 0x6d736100
	Version uint32 = 0x1
)

// Module is a WebAssembly module whose type section has been decoded. All
// other sections are carried through unmodified.
type Module struct {
	Version  uint32
	Sections []Section

	Types   *SectionTypes
	Customs []*SectionCustom
}

// NewModule creates a new module holding the given types.
func NewModule(types ...Type) *Module {
	sec := &SectionTypes{Entries: types}
	return &Module{
		Version:  Version,
		Sections: []Section{sec},
		Types:    sec,
	}
}

// Custom returns a custom section with a specific name, if it exists.
func (m *Module) Custom(name string) *SectionCustom {
	for _, s := range m.Customs {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// DecodeModule decodes a WASM module.
func DecodeModule(r io.Reader) (*Module, error) {
	reader := &readpos.ReadPos{
		R:      r,
		CurPos: 0,
	}
	m := &Module{}
	magic, err := readU32(reader)
	if err != nil {
		return nil, err
	}
	if magic != Magic {
		return nil, ErrInvalidMagic
	}
	if m.Version, err = readU32(reader); err != nil {
		return nil, err
	}
	if m.Version != Version {
		return nil, ErrUnknownVersion
	}

	if err = newSectionsReader(m).readSections(reader); err != nil {
		return nil, err
	}
	return m, nil
}

// MustDecode decodes a WASM module and panics on failure.
func MustDecode(r io.Reader) *Module {
	m, err := DecodeModule(r)
	if err != nil {
		panic(fmt.Errorf("decoding module: %w", err))
	}
	return m
}

// EncodeModule writes m to w in the order of m.Sections.
func EncodeModule(w io.Writer, m *Module) error {
	if err := writeU32(w, Magic); err != nil {
		return err
	}
	if err := writeU32(w, m.Version); err != nil {
		return err
	}

	var buf bytes.Buffer
	for _, s := range m.Sections {
		if _, err := w.Write([]byte{byte(s.SectionID())}); err != nil {
			return err
		}

		buf.Reset()
		if err := s.WritePayload(&buf); err != nil {
			return err
		}
		if err := writeBytesUint(w, buf.Bytes()); err != nil {
			return err
		}
	}
	return nil
}

// DecodeTypeSection decodes the payload of a type section.
func DecodeTypeSection(r io.Reader) ([]Type, error) {
	var s SectionTypes
	if err := s.ReadPayload(r); err != nil {
		return nil, err
	}
	return s.Entries, nil
}

// EncodeTypeSection encodes types as the payload of a type section.
func EncodeTypeSection(w io.Writer, types []Type) error {
	s := SectionTypes{Entries: types}
	return s.WritePayload(w)
}
