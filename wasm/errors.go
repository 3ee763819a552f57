// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wasm

import (
	"errors"
	"fmt"
)

// UnknownValueTypeError is returned when a tag byte is not recognized at the
// current dispatch level. It carries the offending tag.
type UnknownValueTypeError int8

func (e UnknownValueTypeError) Error() string {
	return fmt.Sprintf("wasm: unknown value type %d (byte %#02x)", int8(e), uint8(e)&0x7f)
}

// UnknownFunctionFormError is returned when a function type's form byte is
// not FunctionForm.
type UnknownFunctionFormError uint8

func (e UnknownFunctionFormError) Error() string {
	return fmt.Sprintf("wasm: unknown function form %#02x", uint8(e))
}

// ErrReturnTypesLength is returned when a function type declares more than one result.
var ErrReturnTypesLength = errors.New("wasm: return types length should be 0 or 1")
