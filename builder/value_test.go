package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pgavlin/wasmtypes/wasm"
)

func TestValueType(t *testing.T) {
	assert.Equal(t, wasm.ValueTypeI32, ValueType().I32())
	assert.Equal(t, wasm.ValueTypeI64, ValueType().I64())
	assert.Equal(t, wasm.ValueTypeF32, ValueType().F32())
	assert.Equal(t, wasm.ValueTypeF64, ValueType().F64())
	assert.Equal(t, wasm.ValueTypeV128, ValueType().V128())
	assert.Equal(t, wasm.ValueTypeAnyFunc, ValueType().Value(wasm.ValueTypeAnyFunc))
}

func TestValueTypeContinuation(t *testing.T) {
	calls := 0
	b := NewValueTypeBuilder(func(v wasm.ValueType) string {
		calls++
		return v.String()
	})
	assert.Equal(t, "f32", b.F32())
	assert.Equal(t, 1, calls)
}

func TestOptionalValueType(t *testing.T) {
	assert.Nil(t, OptionalValueType().None())

	v := OptionalValueType().I64()
	require.NotNil(t, v)
	assert.Equal(t, wasm.ValueTypeI64, *v)

	// Each selection yields a distinct value.
	a, b := OptionalValueType().F64(), OptionalValueType().F64()
	assert.NotSame(t, a, b)
}

func TestValueTypes(t *testing.T) {
	types := NewValueTypesBuilder(Identity[[]wasm.ValueType]).I32().F64().Build()
	assert.Equal(t, []wasm.ValueType{wasm.ValueTypeI32, wasm.ValueTypeF64}, types)

	assert.Nil(t, ValueTypes().Build())
}

func TestValueTypesForkedChains(t *testing.T) {
	base := ValueTypes().I32().I64().F32()
	left := base.F64()
	right := base.I32()

	assert.Equal(t, []wasm.ValueType{wasm.ValueTypeI32, wasm.ValueTypeI64, wasm.ValueTypeF32}, base.Build())
	assert.Equal(t, []wasm.ValueType{wasm.ValueTypeI32, wasm.ValueTypeI64, wasm.ValueTypeF32, wasm.ValueTypeF64}, left.Build())
	assert.Equal(t, []wasm.ValueType{wasm.ValueTypeI32, wasm.ValueTypeI64, wasm.ValueTypeF32, wasm.ValueTypeI32}, right.Build())
}

func TestValueTypesDeterministic(t *testing.T) {
	build := func() []wasm.ValueType {
		return ValueTypes().F32().V128().Value(wasm.ValueTypeAnyRef).Build()
	}
	assert.Equal(t, build(), build())
}
