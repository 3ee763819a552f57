// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wasm

import (
	"io"
	"strings"

	"github.com/pgavlin/wasmtypes/wasm/leb128"
)

// FunctionType is a function signature: an ordered list of parameter types
// and at most one return type.
type FunctionType struct {
	params     []ValueType
	returnType ValueType
	hasReturn  bool
}

// NewFunctionType returns a function type with the given parameters and
// optional return type.
func NewFunctionType(params []ValueType, returnType *ValueType) *FunctionType {
	f := &FunctionType{params: params}
	f.SetReturnType(returnType)
	return f
}

// Params returns the parameter types in declaration order.
func (f *FunctionType) Params() []ValueType {
	return f.params
}

func (f *FunctionType) SetParams(params []ValueType) {
	f.params = params
}

// ReturnType returns the return type, if the function has one.
func (f *FunctionType) ReturnType() (ValueType, bool) {
	return f.returnType, f.hasReturn
}

// SetReturnType sets the return type. A nil argument removes it.
func (f *FunctionType) SetReturnType(t *ValueType) {
	if t == nil {
		f.returnType, f.hasReturn = ValueType{}, false
		return
	}
	f.returnType, f.hasReturn = *t, true
}

// ClearReturnType removes the return type.
func (f *FunctionType) ClearReturnType() {
	f.SetReturnType(nil)
}

// Equal reports whether f and o describe the same signature.
func (f *FunctionType) Equal(o *FunctionType) bool {
	if len(f.params) != len(o.params) || f.hasReturn != o.hasReturn {
		return false
	}
	for i := range f.params {
		if f.params[i] != o.params[i] {
			return false
		}
	}
	return !f.hasReturn || f.returnType == o.returnType
}

func (f *FunctionType) String() string {
	var b strings.Builder
	b.WriteString("(func")
	if len(f.params) != 0 {
		b.WriteString(" (param")
		for _, p := range f.params {
			b.WriteByte(' ')
			b.WriteString(p.String())
		}
		b.WriteByte(')')
	}
	if f.hasReturn {
		b.WriteString(" (result ")
		b.WriteString(f.returnType.String())
		b.WriteByte(')')
	}
	b.WriteByte(')')
	return b.String()
}

// readSignature reads the parameter list and return type that follow any
// dialect-specific prefix.
func (f *FunctionType) readSignature(r io.Reader) error {
	params, err := readList(r, ReadValueType)
	if err != nil {
		return err
	}

	count, err := leb128.ReadVarUint32(r)
	if err != nil {
		return err
	}

	var ret *ValueType
	switch count {
	case 0:
	case 1:
		t, err := ReadValueType(r)
		if err != nil {
			return err
		}
		ret = &t
	default:
		return ErrReturnTypesLength
	}

	f.params = params
	f.SetReturnType(ret)
	return nil
}

func (f *FunctionType) writeSignature(w io.Writer) error {
	if err := writeList(w, f.params); err != nil {
		return err
	}
	if _, err := leb128.WriteVarUint1(w, f.hasReturn); err != nil {
		return err
	}
	if f.hasReturn {
		return f.returnType.MarshalWASM(w)
	}
	return nil
}
