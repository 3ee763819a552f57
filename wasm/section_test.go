// Copyright 2020 The go-interpreter Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wasm_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pgavlin/wasmtypes/wasm"
)

var header = []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}

func module(sections ...[]byte) []byte {
	b := append([]byte{}, header...)
	for _, s := range sections {
		b = append(b, s...)
	}
	return b
}

var (
	// (type (func (param i32) (result i32)))
	typeSection = []byte{0x01, 0x06, 0x01, 0x60, 0x01, 0x7f, 0x01, 0x7f}
	funcSection = []byte{0x03, 0x02, 0x01, 0x00}
	// (export "id" (func 0))
	exportSection = []byte{0x07, 0x06, 0x01, 0x02, 'i', 'd', 0x00, 0x00}
	// local.get 0; end
	codeSection   = []byte{0x0a, 0x06, 0x01, 0x04, 0x00, 0x20, 0x00, 0x0b}
	customSection = []byte{0x00, 0x07, 0x04, 'm', 'e', 't', 'a', 0xde, 0xad}
)

func TestModuleRoundTrip(t *testing.T) {
	raw := module(typeSection, funcSection, customSection, exportSection, codeSection)

	m, err := wasm.DecodeModule(bytes.NewReader(raw))
	require.NoError(t, err)
	require.NotNil(t, m.Types)
	require.Len(t, m.Types.Entries, 1)
	assert.Equal(t, "(func (param i32) (result i32))", m.Types.Entries[0].String())
	assert.Len(t, m.Sections, 5)
	assert.Equal(t, wasm.SectionIDCode, m.Sections[4].SectionID())
	assert.Equal(t, int64(10), m.Types.Start)
	assert.Equal(t, int64(16), m.Types.End)

	custom := m.Custom("meta")
	require.NotNil(t, custom)
	assert.Equal(t, []byte{0xde, 0xad}, custom.Data)
	assert.Nil(t, m.Custom("name"))

	var buf bytes.Buffer
	require.NoError(t, wasm.EncodeModule(&buf, m))
	assert.Equal(t, raw, buf.Bytes())
}

func TestModuleReencodeTypes(t *testing.T) {
	m := wasm.MustDecode(bytes.NewReader(module(typeSection, funcSection)))

	f := m.Types.Entries[0].(*wasm.FunctionType)
	f.SetParams(append(f.Params(), wasm.ValueTypeF64))

	var buf bytes.Buffer
	require.NoError(t, wasm.EncodeModule(&buf, m))
	assert.Equal(t, module(
		[]byte{0x01, 0x07, 0x01, 0x60, 0x02, 0x7f, 0x7c, 0x01, 0x7f},
		funcSection,
	), buf.Bytes())
}

func TestDecodeModuleErrors(t *testing.T) {
	for _, c := range []struct {
		name string
		raw  []byte
		err  error
	}{
		{"magic", []byte{0x00, 0x61, 0x73, 0x6e, 0x01, 0x00, 0x00, 0x00}, wasm.ErrInvalidMagic},
		{"version", []byte{0x00, 0x61, 0x73, 0x6d, 0x02, 0x00, 0x00, 0x00}, wasm.ErrUnknownVersion},
		{"order", module(funcSection, typeSection), wasm.ErrSectionOrder},
		{"duplicate", module(typeSection, typeSection), wasm.ErrSectionOrder},
		{"id", module([]byte{0x0d, 0x00}), wasm.InvalidSectionIDError(13)},
		{"trailing", module([]byte{0x01, 0x03, 0x00, 0x7f, 0x7f}), wasm.ErrSectionSize},
		{"truncated", module([]byte{0x03, 0x05, 0x01}), wasm.ErrSectionSize},
		{"arity", module([]byte{0x01, 0x05, 0x01, 0x60, 0x00, 0x02, 0x7f}), wasm.ErrReturnTypesLength},
	} {
		t.Run(c.name, func(t *testing.T) {
			_, err := wasm.DecodeModule(bytes.NewReader(c.raw))
			assert.Equal(t, c.err, err)
		})
	}

	_, err := wasm.DecodeModule(bytes.NewReader(module([]byte{0x01, 0x03, 0x01, 0x50, 0x00})))
	assert.Error(t, err)

	assert.Panics(t, func() { wasm.MustDecode(bytes.NewReader(header[:4])) })
}

func TestDataCountOrder(t *testing.T) {
	dataCount := []byte{0x0c, 0x01, 0x00}
	_, err := wasm.DecodeModule(bytes.NewReader(module(typeSection, funcSection, dataCount, codeSection)))
	assert.NoError(t, err)

	_, err = wasm.DecodeModule(bytes.NewReader(module(typeSection, funcSection, codeSection, dataCount)))
	assert.Equal(t, wasm.ErrSectionOrder, err)
}

func TestTypeSection(t *testing.T) {
	i32 := wasm.ValueTypeI32
	types := []wasm.Type{
		wasm.NewFunctionType(nil, nil),
		wasm.NewFunctionType([]wasm.ValueType{wasm.ValueTypeI64, wasm.ValueTypeAnyFunc}, &i32),
	}

	var buf bytes.Buffer
	require.NoError(t, wasm.EncodeTypeSection(&buf, types))

	got, err := wasm.DecodeTypeSection(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, types, got)

	m := wasm.NewModule(types...)
	buf.Reset()
	require.NoError(t, wasm.EncodeModule(&buf, m))

	decoded, err := wasm.DecodeModule(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, types, decoded.Types.Entries)
}

func TestSectionIDString(t *testing.T) {
	assert.Equal(t, "type", wasm.SectionIDType.String())
	assert.Equal(t, "datacount", wasm.SectionIDDataCount.String())
	assert.Equal(t, "unknown", wasm.SectionID(42).String())
}
