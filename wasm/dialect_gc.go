// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build wasmgc

package wasm

import (
	"fmt"
	"io"

	"github.com/pgavlin/wasmtypes/wasm/leb128"
)

// Dialect names the type grammar this package was built for.
const Dialect = "gc-extended"

// RefKind identifies the variant of a RefType.
type RefKind uint8

const (
	RefKindAnyRef RefKind = iota
	RefKindAnyFunc
	RefKindIndexed
)

// RefType is a reference type. Indexed references name an entry of the type
// section.
type RefType struct {
	kind  RefKind
	index uint32
}

var (
	RefTypeAnyRef  = RefType{kind: RefKindAnyRef}
	RefTypeAnyFunc = RefType{kind: RefKindAnyFunc}
)

// IndexedRef returns a reference to the type at index. Index 0 is a literal
// index, not an absent one.
func IndexedRef(index uint32) RefType {
	return RefType{kind: RefKindIndexed, index: index}
}

var refTags = []tagEntry{
	{"anyfunc", tagAnyFunc},
	{"anyref", tagAnyRef},
	{"ref", tagRef},
}

func (t RefType) Kind() RefKind {
	return t.kind
}

// Index returns the referenced type index of an indexed reference.
func (t RefType) Index() (uint32, bool) {
	return t.index, t.kind == RefKindIndexed
}

func refTypeFromBits(x int8) (RefType, bool) {
	switch x {
	case tagAnyFunc:
		return RefTypeAnyFunc, true
	case tagAnyRef:
		return RefTypeAnyRef, true
	case tagRef:
		return IndexedRef(0), true
	default:
		return RefType{}, false
	}
}

func (t RefType) bits() int8 {
	switch t.kind {
	case RefKindAnyFunc:
		return tagAnyFunc
	case RefKindIndexed:
		return tagRef
	default:
		return tagAnyRef
	}
}

func (t *RefType) readRest(r io.Reader) error {
	if t.kind != RefKindIndexed {
		return nil
	}
	index, err := leb128.ReadVarUint32(r)
	if err != nil {
		return err
	}
	t.index = index
	return nil
}

func (t RefType) writeRest(w io.Writer) error {
	if t.kind != RefKindIndexed {
		return nil
	}
	_, err := leb128.WriteVarUint32(w, t.index)
	return err
}

func (t RefType) String() string {
	switch t.kind {
	case RefKindAnyFunc:
		return "anyfunc"
	case RefKindIndexed:
		return fmt.Sprintf("(ref %d)", t.index)
	default:
		return "anyref"
	}
}

// UnmarshalWASM reads the signature of a function type. The leading Type
// discriminant is read by ReadType.
func (f *FunctionType) UnmarshalWASM(r io.Reader) error {
	return f.readSignature(r)
}

func (f *FunctionType) MarshalWASM(w io.Writer) error {
	return f.writeSignature(w)
}
