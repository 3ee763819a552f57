// Copyright 2017 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wasm

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func marshal(t *testing.T, m Marshaler) []byte {
	var buf bytes.Buffer
	require.NoError(t, m.MarshalWASM(&buf))
	return buf.Bytes()
}

func TestNumType(t *testing.T) {
	for _, c := range []struct {
		t    NumType
		b    byte
		name string
	}{
		{NumTypeI32, 0x7f, "i32"},
		{NumTypeI64, 0x7e, "i64"},
		{NumTypeF32, 0x7d, "f32"},
		{NumTypeF64, 0x7c, "f64"},
	} {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, []byte{c.b}, marshal(t, c.t))
			assert.Equal(t, c.name, c.t.String())

			var n NumType
			require.NoError(t, n.UnmarshalWASM(bytes.NewReader([]byte{c.b})))
			assert.Equal(t, c.t, n)
		})
	}

	_, err := ReadNumType(bytes.NewReader([]byte{0x7b}))
	assert.Equal(t, UnknownValueTypeError(tagV128), err)
}

func TestRefType(t *testing.T) {
	for _, r := range []RefType{RefTypeAnyRef, RefTypeAnyFunc} {
		t.Run(r.String(), func(t *testing.T) {
			b := marshal(t, r)
			require.Len(t, b, 1)

			got, err := ReadRefType(bytes.NewReader(b))
			require.NoError(t, err)
			assert.Equal(t, r, got)
		})
	}
	assert.Equal(t, []byte{0x70}, marshal(t, RefTypeAnyFunc))
	assert.Equal(t, []byte{0x6f}, marshal(t, RefTypeAnyRef))

	_, err := ReadRefType(bytes.NewReader([]byte{0x7f}))
	assert.Equal(t, UnknownValueTypeError(tagI32), err)
}

func TestValueTypeRoundTrip(t *testing.T) {
	for _, c := range []struct {
		v ValueType
		b []byte
	}{
		{ValueTypeI32, []byte{0x7f}},
		{ValueTypeI64, []byte{0x7e}},
		{ValueTypeF32, []byte{0x7d}},
		{ValueTypeF64, []byte{0x7c}},
		{ValueTypeV128, []byte{0x7b}},
		{ValueTypeAnyFunc, []byte{0x70}},
		{ValueTypeAnyRef, []byte{0x6f}},
	} {
		t.Run(c.v.String(), func(t *testing.T) {
			assert.Equal(t, c.b, marshal(t, c.v))

			var v ValueType
			r := bytes.NewReader(c.b)
			require.NoError(t, v.UnmarshalWASM(r))
			assert.Equal(t, c.v, v)
			assert.Equal(t, 0, r.Len())
		})
	}
}

func TestValueTypeAccessors(t *testing.T) {
	n, ok := ValueTypeF32.Num()
	assert.True(t, ok)
	assert.Equal(t, NumTypeF32, n)
	_, ok = ValueTypeF32.Ref()
	assert.False(t, ok)

	r, ok := ValueTypeAnyFunc.Ref()
	assert.True(t, ok)
	assert.Equal(t, RefTypeAnyFunc, r)
	assert.Equal(t, ValueKindRef, ValueTypeAnyFunc.Kind())

	_, ok = ValueTypeV128.Num()
	assert.False(t, ok)
	assert.Equal(t, ValueKindV128, ValueTypeV128.Kind())

	assert.Equal(t, ValueTypeI32, ValueType{})
}

func TestValueTypeString(t *testing.T) {
	assert.Equal(t, "i32", NumValue(NumTypeI32).String())
	assert.Equal(t, "i64", ValueTypeI64.String())
	assert.Equal(t, "f32", ValueTypeF32.String())
	assert.Equal(t, "f64", ValueTypeF64.String())
	assert.Equal(t, "v128", ValueTypeV128.String())
	assert.Equal(t, "anyref", ValueTypeAnyRef.String())
	assert.Equal(t, "anyfunc", RefValue(RefTypeAnyFunc).String())
}

func TestValueTypeUnknownTag(t *testing.T) {
	for _, b := range []byte{0x00, 0x40, 0x60, 0x68, 0x67, 0x7a, 0x01} {
		_, err := ReadValueType(bytes.NewReader([]byte{b}))
		require.Error(t, err)
		e, ok := err.(UnknownValueTypeError)
		require.True(t, ok, "%v", err)
		assert.Equal(t, b, uint8(e)&0x7f)
	}
}

func TestValueTypeShortRead(t *testing.T) {
	_, err := ReadValueType(bytes.NewReader(nil))
	assert.Error(t, err)
}

func TestBlockType(t *testing.T) {
	for _, c := range []struct {
		b BlockType
		e []byte
	}{
		{BlockTypeNoResult, []byte{0x40}},
		{BlockValue(ValueTypeI32), []byte{0x7f}},
		{BlockValue(ValueTypeF64), []byte{0x7c}},
		{BlockValue(ValueTypeV128), []byte{0x7b}},
		{BlockValue(ValueTypeAnyFunc), []byte{0x70}},
	} {
		t.Run(c.b.String(), func(t *testing.T) {
			assert.Equal(t, c.e, marshal(t, c.b))

			var b BlockType
			require.NoError(t, b.UnmarshalWASM(bytes.NewReader(c.e)))
			assert.Equal(t, c.b, b)
		})
	}

	v, ok := BlockTypeNoResult.Value()
	assert.False(t, ok)
	assert.Equal(t, ValueType{}, v)
	assert.True(t, BlockTypeNoResult.IsNoResult())

	_, err := ReadBlockType(bytes.NewReader([]byte{0x60}))
	assert.Equal(t, UnknownValueTypeError(tagFunction), err)
}

func functionTypeBytes(body ...byte) []byte {
	return append(append([]byte{}, functionPrefix...), body...)
}

func TestFunctionTypeRoundTrip(t *testing.T) {
	i64 := ValueTypeI64
	for _, f := range []*FunctionType{
		NewFunctionType(nil, nil),
		NewFunctionType([]ValueType{ValueTypeI32}, nil),
		NewFunctionType(nil, &i64),
		NewFunctionType([]ValueType{ValueTypeI32, ValueTypeF64, ValueTypeV128, ValueTypeAnyRef}, &i64),
	} {
		t.Run(f.String(), func(t *testing.T) {
			var got FunctionType
			require.NoError(t, got.UnmarshalWASM(bytes.NewReader(marshal(t, f))))
			assert.Equal(t, f, &got)
			assert.True(t, f.Equal(&got))
		})
	}
}

func TestFunctionTypeEncoding(t *testing.T) {
	f64 := ValueTypeF64
	f := NewFunctionType([]ValueType{ValueTypeI32, ValueTypeI64}, &f64)
	assert.Equal(t, functionTypeBytes(0x02, 0x7f, 0x7e, 0x01, 0x7c), marshal(t, f))
	assert.Equal(t, "(func (param i32 i64) (result f64))", f.String())

	f.SetReturnType(nil)
	assert.Equal(t, functionTypeBytes(0x02, 0x7f, 0x7e, 0x00), marshal(t, f))
	assert.Equal(t, "(func (param i32 i64))", f.String())
}

func TestFunctionTypeReturnArity(t *testing.T) {
	var f FunctionType
	require.NoError(t, f.UnmarshalWASM(bytes.NewReader(functionTypeBytes(0x00, 0x00))))
	_, ok := f.ReturnType()
	assert.False(t, ok)

	require.NoError(t, f.UnmarshalWASM(bytes.NewReader(functionTypeBytes(0x00, 0x01, 0x7d))))
	rt, ok := f.ReturnType()
	assert.True(t, ok)
	assert.Equal(t, ValueTypeF32, rt)

	r := bytes.NewReader(functionTypeBytes(0x00, 0x02, 0x7f, 0x7f))
	err := f.UnmarshalWASM(r)
	assert.Equal(t, ErrReturnTypesLength, err)
	assert.Equal(t, 2, r.Len())
}

func TestFunctionTypeBadParam(t *testing.T) {
	var f FunctionType
	err := f.UnmarshalWASM(bytes.NewReader(functionTypeBytes(0x01, 0x50, 0x00)))
	assert.Equal(t, UnknownValueTypeError(-0x30), err)
}

func TestFunctionTypeEqual(t *testing.T) {
	i32 := ValueTypeI32
	a := NewFunctionType([]ValueType{ValueTypeI32, ValueTypeF32}, &i32)
	b := NewFunctionType([]ValueType{ValueTypeF32, ValueTypeI32}, &i32)
	c := NewFunctionType([]ValueType{ValueTypeI32, ValueTypeF32}, nil)
	assert.False(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.True(t, a.Equal(NewFunctionType([]ValueType{ValueTypeI32, ValueTypeF32}, &i32)))
	assert.NotEqual(t, marshal(t, a), marshal(t, b))
}

func TestTagTablesDisjoint(t *testing.T) {
	assert.False(t, typeTagTable.overlaps(valueTagTable))
	assert.False(t, typeTagTable.overlaps(blockTagTable))
	assert.False(t, numTagTable.overlaps(refTagTable))
	assert.True(t, blockTagTable.has(tagNoResult))
	assert.False(t, valueTagTable.has(tagNoResult))

	seen := map[string]bool{}
	for _, tag := range Tags() {
		key := tag.Level + "/" + tag.Name
		assert.False(t, seen[key], key)
		seen[key] = true
		assert.Equal(t, uint8(tag.Value)&0x7f, tag.Byte)
	}
	assert.True(t, seen["value/i32"])
	assert.True(t, seen["block/noresult"])
	assert.True(t, seen["type/func"])
}

func TestReadListEmpty(t *testing.T) {
	items, err := readList(bytes.NewReader([]byte{0x00}), ReadValueType)
	require.NoError(t, err)
	assert.Nil(t, items)

	_, err = readList(bytes.NewReader([]byte{0x03, 0x7f}), ReadValueType)
	assert.Error(t, err)
}
