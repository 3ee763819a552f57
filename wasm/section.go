// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wasm

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/ioutil"

	"go.uber.org/zap"

	"github.com/pgavlin/wasmtypes/wasm/internal/readpos"
	"github.com/pgavlin/wasmtypes/wasm/leb128"
)

// Section is a generic WASM section interface.
type Section interface {
	// SectionID returns a section ID for WASM encoding. Should be unique across types.
	SectionID() SectionID
	// GetRawSection Returns an embedded RawSection pointer to populate generic fields.
	GetRawSection() *RawSection
	// ReadPayload reads a section payload, assuming the size was already read, and reader is limited to it.
	ReadPayload(r io.Reader) error
	// WritePayload writes a section payload without the size.
	// Caller should calculate written size and add it before the payload.
	WritePayload(w io.Writer) error
}

// SectionID is a 1-byte code that encodes the section code of both known and custom sections.
type SectionID uint8

const (
	SectionIDCustom    SectionID = 0
	SectionIDType      SectionID = 1
	SectionIDImport    SectionID = 2
	SectionIDFunction  SectionID = 3
	SectionIDTable     SectionID = 4
	SectionIDMemory    SectionID = 5
	SectionIDGlobal    SectionID = 6
	SectionIDExport    SectionID = 7
	SectionIDStart     SectionID = 8
	SectionIDElement   SectionID = 9
	SectionIDCode      SectionID = 10
	SectionIDData      SectionID = 11
	SectionIDDataCount SectionID = 12
)

var sectionNames = map[SectionID]string{
	SectionIDCustom:    "custom",
	SectionIDType:      "type",
	SectionIDImport:    "import",
	SectionIDFunction:  "function",
	SectionIDTable:     "table",
	SectionIDMemory:    "memory",
	SectionIDGlobal:    "global",
	SectionIDExport:    "export",
	SectionIDStart:     "start",
	SectionIDElement:   "element",
	SectionIDCode:      "code",
	SectionIDData:      "data",
	SectionIDDataCount: "datacount",
}

func (s SectionID) String() string {
	n, ok := sectionNames[s]
	if !ok {
		return "unknown"
	}
	return n
}

// order returns the position of a non-custom section in a module. The data
// count section precedes the code section despite its larger ID.
func (s SectionID) order() int {
	switch s {
	case SectionIDDataCount:
		return int(SectionIDCode)*2 - 1
	default:
		return int(s) * 2
	}
}

// RawSection is a declared section in a WASM module. Sections whose contents
// this package does not interpret are kept as a RawSection holding the
// undecoded payload.
type RawSection struct {
	Start int64
	End   int64

	ID    SectionID
	Bytes []byte
}

func (s *RawSection) SectionID() SectionID {
	return s.ID
}

func (s *RawSection) GetRawSection() *RawSection {
	return s
}

func (s *RawSection) ReadPayload(r io.Reader) error {
	b, err := ioutil.ReadAll(r)
	if err != nil {
		return err
	}
	s.Bytes = b
	return nil
}

func (s *RawSection) WritePayload(w io.Writer) error {
	_, err := w.Write(s.Bytes)
	return err
}

type InvalidSectionIDError SectionID

func (e InvalidSectionIDError) Error() string {
	return fmt.Sprintf("wasm: malformed section id %d", uint8(e))
}

// ErrSectionOrder is returned when a non-custom section repeats or appears out of order.
var ErrSectionOrder = errors.New("wasm: sections must occur at most once and in the prescribed order")

// ErrSectionSize is returned when a section's payload does not match its declared size.
var ErrSectionSize = errors.New("wasm: section size mismatch")

type sectionsReader struct {
	lastSecOrder int // order of the previous non-custom section
	m            *Module
}

func newSectionsReader(m *Module) *sectionsReader {
	return &sectionsReader{m: m, lastSecOrder: -1}
}

func (s *sectionsReader) readSections(r *readpos.ReadPos) error {
	for {
		done, err := s.readSection(r)
		switch {
		case err != nil:
			return err
		case done:
			return nil
		}
	}
}

// reads a valid section from r. The first return value is true if and only if
// the module has been completely read.
func (sr *sectionsReader) readSection(r *readpos.ReadPos) (bool, error) {
	m := sr.m
	log := Logger()

	id, err := r.ReadByte()
	if err == io.EOF {
		return true, nil
	} else if err != nil {
		return false, err
	}

	s := RawSection{ID: SectionID(id)}
	if s.ID > SectionIDDataCount {
		return false, InvalidSectionIDError(s.ID)
	}
	if s.ID != SectionIDCustom {
		if s.ID.order() <= sr.lastSecOrder {
			return false, ErrSectionOrder
		}
		sr.lastSecOrder = s.ID.order()
	}

	payloadDataLen, err := leb128.ReadVarUint32(r)
	if err != nil {
		return false, err
	}

	log.Debug("reading section",
		zap.Stringer("section", s.ID),
		zap.Uint32("size", payloadDataLen),
		zap.Int64("offset", r.CurPos))

	s.Start = r.CurPos

	sectionBytes := new(bytes.Buffer)
	sectionBytes.Grow(int(getInitialCap(payloadDataLen)))
	sectionReader := io.LimitReader(io.TeeReader(r, sectionBytes), int64(payloadDataLen))

	var sec Section
	switch s.ID {
	case SectionIDCustom:
		cs := &SectionCustom{}
		m.Customs = append(m.Customs, cs)
		sec = cs
	case SectionIDType:
		m.Types = &SectionTypes{}
		sec = m.Types
	default:
		sec = &RawSection{}
	}
	if err = sec.ReadPayload(sectionReader); err != nil {
		log.Debug("section decode failed", zap.Stringer("section", s.ID), zap.Error(err))
		return false, err
	}
	if n, err := io.Copy(ioutil.Discard, sectionReader); err != nil {
		return false, err
	} else if n != 0 {
		return false, ErrSectionSize
	}
	if uint32(sectionBytes.Len()) != payloadDataLen {
		return false, ErrSectionSize
	}

	s.End = r.CurPos
	s.Bytes = sectionBytes.Bytes()
	*sec.GetRawSection() = s
	m.Sections = append(m.Sections, sec)
	return false, nil
}

var _ Section = (*SectionCustom)(nil)

// SectionCustom is a named section with uninterpreted contents.
type SectionCustom struct {
	RawSection
	Name string
	Data []byte
}

func (s *SectionCustom) SectionID() SectionID {
	return SectionIDCustom
}

func (s *SectionCustom) ReadPayload(r io.Reader) error {
	var err error
	s.Name, err = readUTF8StringUint(r)
	if err != nil {
		return err
	}
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return err
	}
	s.Data = data
	return nil
}

func (s *SectionCustom) WritePayload(w io.Writer) error {
	if err := writeStringUint(w, s.Name); err != nil {
		return err
	}
	_, err := w.Write(s.Data)
	return err
}

var _ Section = (*SectionTypes)(nil)

// SectionTypes declares all types that will be used in a module.
type SectionTypes struct {
	RawSection
	Entries []Type
}

func (*SectionTypes) SectionID() SectionID {
	return SectionIDType
}

func (s *SectionTypes) ReadPayload(r io.Reader) error {
	entries, err := readList(r, ReadType)
	if err != nil {
		return err
	}
	Logger().Debug("read type section", zap.String("dialect", Dialect), zap.Int("count", len(entries)))
	s.Entries = entries
	return nil
}

func (s *SectionTypes) WritePayload(w io.Writer) error {
	if _, err := leb128.WriteVarUint32(w, uint32(len(s.Entries))); err != nil {
		return err
	}
	for _, t := range s.Entries {
		if err := WriteType(w, t); err != nil {
			return err
		}
	}
	return nil
}
