// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !wasmgc

package wasm

import (
	"io"

	"github.com/pgavlin/wasmtypes/wasm/leb128"
)

// Dialect names the type grammar this package was built for.
const Dialect = "baseline"

// FunctionForm is the form byte that introduces every function type.
const FunctionForm uint8 = 0x60

// RefKind identifies the variant of a RefType.
type RefKind uint8

const (
	RefKindAnyRef RefKind = iota
	RefKindAnyFunc
)

// RefType is a reference type.
type RefType struct {
	kind RefKind
}

var (
	RefTypeAnyRef  = RefType{kind: RefKindAnyRef}
	RefTypeAnyFunc = RefType{kind: RefKindAnyFunc}
)

var refTags = []tagEntry{
	{"anyfunc", tagAnyFunc},
	{"anyref", tagAnyRef},
}

var (
	typeTagTable = newTagTable("type", []tagEntry{{"func", tagFunction}})
	tagTables    = []*tagTable{numTagTable, refTagTable, valueTagTable, blockTagTable, typeTagTable}
)

func (t RefType) Kind() RefKind {
	return t.kind
}

func refTypeFromBits(x int8) (RefType, bool) {
	switch x {
	case tagAnyFunc:
		return RefTypeAnyFunc, true
	case tagAnyRef:
		return RefTypeAnyRef, true
	default:
		return RefType{}, false
	}
}

func (t RefType) bits() int8 {
	if t.kind == RefKindAnyFunc {
		return tagAnyFunc
	}
	return tagAnyRef
}

func (t *RefType) readRest(r io.Reader) error {
	return nil
}

func (t RefType) writeRest(w io.Writer) error {
	return nil
}

func (t RefType) String() string {
	if t.kind == RefKindAnyFunc {
		return "anyfunc"
	}
	return "anyref"
}

// Type is an entry of the type section. The only variant is *FunctionType.
type Type interface {
	Marshaler
	String() string

	isType()
}

func (*FunctionType) isType() {}

// ReadType reads a type section entry from r.
func ReadType(r io.Reader) (Type, error) {
	var f FunctionType
	if err := f.UnmarshalWASM(r); err != nil {
		return nil, err
	}
	return &f, nil
}

// WriteType writes a type section entry to w.
func WriteType(w io.Writer, t Type) error {
	return t.MarshalWASM(w)
}

// UnmarshalWASM reads the form byte followed by the signature. No bytes past
// the form byte are consumed if the form is not recognized.
func (f *FunctionType) UnmarshalWASM(r io.Reader) error {
	form, err := leb128.ReadVarUint7(r)
	if err != nil {
		return err
	}
	if form != FunctionForm {
		return UnknownFunctionFormError(form)
	}
	return f.readSignature(r)
}

func (f *FunctionType) MarshalWASM(w io.Writer) error {
	if _, err := leb128.WriteVarUint7(w, FunctionForm); err != nil {
		return err
	}
	return f.writeSignature(w)
}
