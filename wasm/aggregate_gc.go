// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build wasmgc

package wasm

import (
	"io"
	"strings"

	"github.com/pgavlin/wasmtypes/wasm/leb128"
)

var (
	packedTags = []tagEntry{
		{"i8", tagPackedI8},
		{"i16", tagPackedI16},
	}

	storageTagTable = newTagTable("storage", packedTags, vecTags, numTags, refTags)
	typeTagTable    = newTagTable("type", []tagEntry{
		{"func", tagFunction},
		{"struct", tagStruct},
		{"array", tagArray},
	})
	tagTables = []*tagTable{numTagTable, refTagTable, valueTagTable, storageTagTable, blockTagTable, typeTagTable}
)

// StorageKind identifies the variant of a StorageType.
type StorageKind uint8

const (
	StorageKindValue StorageKind = iota
	StorageKindPackedI8
	StorageKindPackedI16
)

// StorageType is the element type of a struct or array field: a full value
// type or a packed 8- or 16-bit integer.
type StorageType struct {
	kind  StorageKind
	value ValueType
}

var (
	StoragePackedI8  = StorageType{kind: StorageKindPackedI8}
	StoragePackedI16 = StorageType{kind: StorageKindPackedI16}
)

// StorageValue returns the storage type holding a full value of type v.
func StorageValue(v ValueType) StorageType {
	return StorageType{kind: StorageKindValue, value: v}
}

func (s StorageType) Kind() StorageKind {
	return s.kind
}

// Value returns the value type of s, if s is not packed.
func (s StorageType) Value() (ValueType, bool) {
	return s.value, s.kind == StorageKindValue
}

// ReadStorageType reads a storage type from r. The packed tags are checked
// before the value type table.
func ReadStorageType(r io.Reader) (StorageType, error) {
	tag, err := leb128.ReadVarint7(r)
	if err != nil {
		return StorageType{}, err
	}
	if !storageTagTable.has(tag) {
		return StorageType{}, UnknownValueTypeError(tag)
	}
	switch tag {
	case tagPackedI8:
		return StoragePackedI8, nil
	case tagPackedI16:
		return StoragePackedI16, nil
	}
	v, err := readValueTypeRest(r, tag)
	if err != nil {
		return StorageType{}, err
	}
	return StorageValue(v), nil
}

func (s StorageType) MarshalWASM(w io.Writer) error {
	switch s.kind {
	case StorageKindPackedI8:
		_, err := leb128.WriteVarint7(w, tagPackedI8)
		return err
	case StorageKindPackedI16:
		_, err := leb128.WriteVarint7(w, tagPackedI16)
		return err
	default:
		return s.value.MarshalWASM(w)
	}
}

func (s *StorageType) UnmarshalWASM(r io.Reader) error {
	t, err := ReadStorageType(r)
	if err != nil {
		return err
	}
	*s = t
	return nil
}

func (s StorageType) String() string {
	switch s.kind {
	case StorageKindPackedI8:
		return "i8"
	case StorageKindPackedI16:
		return "i16"
	default:
		return s.value.String()
	}
}

// FieldType is a struct field or array element: a storage type and whether
// it may be mutated.
type FieldType struct {
	Elem    StorageType
	Mutable bool
}

// ReadFieldType reads the mutability flag and then the storage type.
func ReadFieldType(r io.Reader) (FieldType, error) {
	mutable, err := leb128.ReadVarUint1(r)
	if err != nil {
		return FieldType{}, err
	}
	elem, err := ReadStorageType(r)
	if err != nil {
		return FieldType{}, err
	}
	return FieldType{Elem: elem, Mutable: mutable}, nil
}

func (f FieldType) MarshalWASM(w io.Writer) error {
	if _, err := leb128.WriteVarUint1(w, f.Mutable); err != nil {
		return err
	}
	return f.Elem.MarshalWASM(w)
}

func (f *FieldType) UnmarshalWASM(r io.Reader) error {
	t, err := ReadFieldType(r)
	if err != nil {
		return err
	}
	*f = t
	return nil
}

func (f FieldType) String() string {
	if f.Mutable {
		return "(mut " + f.Elem.String() + ")"
	}
	return f.Elem.String()
}

// StructType is an ordered sequence of fields. Field indices are positional.
type StructType struct {
	Fields []FieldType
}

func (s *StructType) MarshalWASM(w io.Writer) error {
	return writeList(w, s.Fields)
}

func (s *StructType) UnmarshalWASM(r io.Reader) error {
	fields, err := readList(r, ReadFieldType)
	if err != nil {
		return err
	}
	s.Fields = fields
	return nil
}

func (s *StructType) String() string {
	var b strings.Builder
	b.WriteString("(struct")
	for _, f := range s.Fields {
		b.WriteString(" (field ")
		b.WriteString(f.String())
		b.WriteByte(')')
	}
	b.WriteByte(')')
	return b.String()
}

// ArrayType is a sequence of elements sharing one field type.
type ArrayType struct {
	Elem FieldType
}

func (a *ArrayType) MarshalWASM(w io.Writer) error {
	return a.Elem.MarshalWASM(w)
}

func (a *ArrayType) UnmarshalWASM(r io.Reader) error {
	return a.Elem.UnmarshalWASM(r)
}

func (a *ArrayType) String() string {
	return "(array " + a.Elem.String() + ")"
}

// Type is an entry of the type section: *FunctionType, *StructType, or
// *ArrayType.
type Type interface {
	Marshaler
	String() string

	isType()
}

func (*FunctionType) isType() {}
func (*StructType) isType()   {}
func (*ArrayType) isType()    {}

// ReadType reads a type discriminant and the type it introduces.
func ReadType(r io.Reader) (Type, error) {
	tag, err := leb128.ReadVarint7(r)
	if err != nil {
		return nil, err
	}

	var t interface {
		Type
		Unmarshaler
	}
	switch tag {
	case tagFunction:
		t = &FunctionType{}
	case tagStruct:
		t = &StructType{}
	case tagArray:
		t = &ArrayType{}
	default:
		return nil, UnknownValueTypeError(tag)
	}
	if err := t.UnmarshalWASM(r); err != nil {
		return nil, err
	}
	return t, nil
}

// WriteType writes the discriminant of t followed by its encoding.
func WriteType(w io.Writer, t Type) error {
	var tag int8
	switch t.(type) {
	case *FunctionType:
		tag = tagFunction
	case *StructType:
		tag = tagStruct
	case *ArrayType:
		tag = tagArray
	}
	if _, err := leb128.WriteVarint7(w, tag); err != nil {
		return err
	}
	return t.MarshalWASM(w)
}
