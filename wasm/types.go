// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wasm

import (
	"io"

	"github.com/pgavlin/wasmtypes/wasm/leb128"
)

// Marshaler is the interface implemented by types that can marshal themselves
// into valid WASM.
type Marshaler interface {
	MarshalWASM(w io.Writer) error
}

// Unmarshaler is the interface implemented by types that can unmarshal a WASM
// description of themselves.
type Unmarshaler interface {
	UnmarshalWASM(r io.Reader) error
}

// NumType is one of the four numeric value types.
type NumType uint8

const (
	NumTypeI32 NumType = iota
	NumTypeI64
	NumTypeF32
	NumTypeF64
)

func numTypeFromBits(x int8) (NumType, bool) {
	switch x {
	case tagI32:
		return NumTypeI32, true
	case tagI64:
		return NumTypeI64, true
	case tagF32:
		return NumTypeF32, true
	case tagF64:
		return NumTypeF64, true
	default:
		return 0, false
	}
}

func (t NumType) bits() int8 {
	switch t {
	case NumTypeI32:
		return tagI32
	case NumTypeI64:
		return tagI64
	case NumTypeF32:
		return tagF32
	case NumTypeF64:
		return tagF64
	default:
		panic("wasm: invalid NumType")
	}
}

func (t NumType) String() string {
	name, ok := numTagTable.name(t.bits())
	if !ok {
		return "<unknown>"
	}
	return name
}

// ReadNumType reads a numeric type tag from r.
func ReadNumType(r io.Reader) (NumType, error) {
	tag, err := leb128.ReadVarint7(r)
	if err != nil {
		return 0, err
	}
	t, ok := numTypeFromBits(tag)
	if !ok {
		return 0, UnknownValueTypeError(tag)
	}
	return t, nil
}

func (t NumType) MarshalWASM(w io.Writer) error {
	_, err := leb128.WriteVarint7(w, t.bits())
	return err
}

func (t *NumType) UnmarshalWASM(r io.Reader) error {
	v, err := ReadNumType(r)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// ReadRefType reads a reference type from r, including any trailing index.
func ReadRefType(r io.Reader) (RefType, error) {
	tag, err := leb128.ReadVarint7(r)
	if err != nil {
		return RefType{}, err
	}
	t, ok := refTypeFromBits(tag)
	if !ok {
		return RefType{}, UnknownValueTypeError(tag)
	}
	if err := t.readRest(r); err != nil {
		return RefType{}, err
	}
	return t, nil
}

func (t RefType) MarshalWASM(w io.Writer) error {
	if _, err := leb128.WriteVarint7(w, t.bits()); err != nil {
		return err
	}
	return t.writeRest(w)
}

func (t *RefType) UnmarshalWASM(r io.Reader) error {
	v, err := ReadRefType(r)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// ValueKind identifies the active variant of a ValueType.
type ValueKind uint8

const (
	ValueKindNum ValueKind = iota
	ValueKindRef
	ValueKindV128
)

// ValueType is a numeric, reference, or 128-bit vector type. Exactly one
// variant is active. The zero value is i32.
type ValueType struct {
	kind ValueKind
	num  NumType
	ref  RefType
}

var (
	ValueTypeI32     = NumValue(NumTypeI32)
	ValueTypeI64     = NumValue(NumTypeI64)
	ValueTypeF32     = NumValue(NumTypeF32)
	ValueTypeF64     = NumValue(NumTypeF64)
	ValueTypeV128    = ValueType{kind: ValueKindV128}
	ValueTypeAnyRef  = RefValue(RefTypeAnyRef)
	ValueTypeAnyFunc = RefValue(RefTypeAnyFunc)
)

// NumValue returns the value type for a numeric type.
func NumValue(t NumType) ValueType {
	return ValueType{kind: ValueKindNum, num: t}
}

// RefValue returns the value type for a reference type.
func RefValue(t RefType) ValueType {
	return ValueType{kind: ValueKindRef, ref: t}
}

func (v ValueType) Kind() ValueKind {
	return v.kind
}

// Num returns the numeric type of v, if v is numeric.
func (v ValueType) Num() (NumType, bool) {
	return v.num, v.kind == ValueKindNum
}

// Ref returns the reference type of v, if v is a reference.
func (v ValueType) Ref() (RefType, bool) {
	return v.ref, v.kind == ValueKindRef
}

// valueTypeFromBits tries v128, then the numeric table, then the reference
// table. A reference variant that carries an index is returned with index 0;
// the caller must follow up with readRest.
func valueTypeFromBits(x int8) (ValueType, bool) {
	if x == tagV128 {
		return ValueTypeV128, true
	}
	if n, ok := numTypeFromBits(x); ok {
		return NumValue(n), true
	}
	if r, ok := refTypeFromBits(x); ok {
		return RefValue(r), true
	}
	return ValueType{}, false
}

func (v ValueType) bits() int8 {
	switch v.kind {
	case ValueKindV128:
		return tagV128
	case ValueKindRef:
		return v.ref.bits()
	default:
		return v.num.bits()
	}
}

func (v *ValueType) readRest(r io.Reader) error {
	if v.kind == ValueKindRef {
		return v.ref.readRest(r)
	}
	return nil
}

func (v ValueType) writeRest(w io.Writer) error {
	if v.kind == ValueKindRef {
		return v.ref.writeRest(w)
	}
	return nil
}

// ReadValueType reads a value type from r.
func ReadValueType(r io.Reader) (ValueType, error) {
	tag, err := leb128.ReadVarint7(r)
	if err != nil {
		return ValueType{}, err
	}
	return readValueTypeRest(r, tag)
}

func readValueTypeRest(r io.Reader, tag int8) (ValueType, error) {
	if !valueTagTable.has(tag) {
		return ValueType{}, UnknownValueTypeError(tag)
	}
	v, ok := valueTypeFromBits(tag)
	if !ok {
		return ValueType{}, UnknownValueTypeError(tag)
	}
	if err := v.readRest(r); err != nil {
		return ValueType{}, err
	}
	return v, nil
}

func (v ValueType) MarshalWASM(w io.Writer) error {
	if _, err := leb128.WriteVarint7(w, v.bits()); err != nil {
		return err
	}
	return v.writeRest(w)
}

func (v *ValueType) UnmarshalWASM(r io.Reader) error {
	t, err := ReadValueType(r)
	if err != nil {
		return err
	}
	*v = t
	return nil
}

func (v ValueType) String() string {
	switch v.kind {
	case ValueKindV128:
		return "v128"
	case ValueKindRef:
		return v.ref.String()
	default:
		return v.num.String()
	}
}

// BlockType is the signature of a structured control instruction: either a
// single value type or no result.
type BlockType struct {
	noResult bool
	value    ValueType
}

// BlockTypeNoResult is the block type of blocks that produce no value.
var BlockTypeNoResult = BlockType{noResult: true}

// BlockValue returns the block type producing a single value of type v.
func BlockValue(v ValueType) BlockType {
	return BlockType{value: v}
}

// Value returns the result type of b, if it has one.
func (b BlockType) Value() (ValueType, bool) {
	return b.value, !b.noResult
}

func (b BlockType) IsNoResult() bool {
	return b.noResult
}

// ReadBlockType reads a block type from r.
func ReadBlockType(r io.Reader) (BlockType, error) {
	tag, err := leb128.ReadVarint7(r)
	if err != nil {
		return BlockType{}, err
	}
	if !blockTagTable.has(tag) {
		return BlockType{}, UnknownValueTypeError(tag)
	}
	if tag == tagNoResult {
		return BlockTypeNoResult, nil
	}
	v, err := readValueTypeRest(r, tag)
	if err != nil {
		return BlockType{}, err
	}
	return BlockValue(v), nil
}

func (b BlockType) MarshalWASM(w io.Writer) error {
	if b.noResult {
		_, err := leb128.WriteVarint7(w, tagNoResult)
		return err
	}
	return b.value.MarshalWASM(w)
}

func (b *BlockType) UnmarshalWASM(r io.Reader) error {
	t, err := ReadBlockType(r)
	if err != nil {
		return err
	}
	*b = t
	return nil
}

func (b BlockType) String() string {
	if b.noResult {
		return "noresult"
	}
	return b.value.String()
}
