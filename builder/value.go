package builder

import (
	"github.com/pgavlin/wasmtypes/wasm"
)

// Identity is the continuation that returns its argument unchanged.
func Identity[T any](v T) T {
	return v
}

// appendValues appends to a copy of vs so that builders forked from the
// same chain never write into a shared backing array.
func appendValues(vs []wasm.ValueType, v ...wasm.ValueType) []wasm.ValueType {
	return append(vs[:len(vs):len(vs)], v...)
}

// ValueTypeBuilder selects a single value type.
type ValueTypeBuilder[R any] struct {
	callback func(wasm.ValueType) R
}

func NewValueTypeBuilder[R any](callback func(wasm.ValueType) R) ValueTypeBuilder[R] {
	return ValueTypeBuilder[R]{callback: callback}
}

// ValueType returns a builder that yields the selected value type.
func ValueType() ValueTypeBuilder[wasm.ValueType] {
	return NewValueTypeBuilder(Identity[wasm.ValueType])
}

func (b ValueTypeBuilder[R]) I32() R  { return b.callback(wasm.ValueTypeI32) }
func (b ValueTypeBuilder[R]) I64() R  { return b.callback(wasm.ValueTypeI64) }
func (b ValueTypeBuilder[R]) F32() R  { return b.callback(wasm.ValueTypeF32) }
func (b ValueTypeBuilder[R]) F64() R  { return b.callback(wasm.ValueTypeF64) }
func (b ValueTypeBuilder[R]) V128() R { return b.callback(wasm.ValueTypeV128) }

// Value selects an arbitrary value type, such as a reference type.
func (b ValueTypeBuilder[R]) Value(v wasm.ValueType) R {
	return b.callback(v)
}

// OptionalValueTypeBuilder selects a value type or none.
type OptionalValueTypeBuilder[R any] struct {
	callback func(*wasm.ValueType) R
}

func NewOptionalValueTypeBuilder[R any](callback func(*wasm.ValueType) R) OptionalValueTypeBuilder[R] {
	return OptionalValueTypeBuilder[R]{callback: callback}
}

// OptionalValueType returns a builder that yields the selected value type, or
// nil for None.
func OptionalValueType() OptionalValueTypeBuilder[*wasm.ValueType] {
	return NewOptionalValueTypeBuilder(Identity[*wasm.ValueType])
}

func (b OptionalValueTypeBuilder[R]) some(v wasm.ValueType) R {
	return b.callback(&v)
}

func (b OptionalValueTypeBuilder[R]) I32() R  { return b.some(wasm.ValueTypeI32) }
func (b OptionalValueTypeBuilder[R]) I64() R  { return b.some(wasm.ValueTypeI64) }
func (b OptionalValueTypeBuilder[R]) F32() R  { return b.some(wasm.ValueTypeF32) }
func (b OptionalValueTypeBuilder[R]) F64() R  { return b.some(wasm.ValueTypeF64) }
func (b OptionalValueTypeBuilder[R]) V128() R { return b.some(wasm.ValueTypeV128) }

func (b OptionalValueTypeBuilder[R]) Value(v wasm.ValueType) R {
	return b.some(v)
}

// None selects no value type.
func (b OptionalValueTypeBuilder[R]) None() R {
	return b.callback(nil)
}

// ValueTypesBuilder accumulates an ordered list of value types. Selection
// methods return the extended builder; Build hands the list to the
// continuation.
type ValueTypesBuilder[R any] struct {
	callback func([]wasm.ValueType) R
	types    []wasm.ValueType
}

func NewValueTypesBuilder[R any](callback func([]wasm.ValueType) R) ValueTypesBuilder[R] {
	return ValueTypesBuilder[R]{callback: callback}
}

// ValueTypes returns a builder that yields the accumulated list.
func ValueTypes() ValueTypesBuilder[[]wasm.ValueType] {
	return NewValueTypesBuilder(Identity[[]wasm.ValueType])
}

func (b ValueTypesBuilder[R]) with(v wasm.ValueType) ValueTypesBuilder[R] {
	b.types = appendValues(b.types, v)
	return b
}

func (b ValueTypesBuilder[R]) I32() ValueTypesBuilder[R]  { return b.with(wasm.ValueTypeI32) }
func (b ValueTypesBuilder[R]) I64() ValueTypesBuilder[R]  { return b.with(wasm.ValueTypeI64) }
func (b ValueTypesBuilder[R]) F32() ValueTypesBuilder[R]  { return b.with(wasm.ValueTypeF32) }
func (b ValueTypesBuilder[R]) F64() ValueTypesBuilder[R]  { return b.with(wasm.ValueTypeF64) }
func (b ValueTypesBuilder[R]) V128() ValueTypesBuilder[R] { return b.with(wasm.ValueTypeV128) }

func (b ValueTypesBuilder[R]) Value(v wasm.ValueType) ValueTypesBuilder[R] {
	return b.with(v)
}

func (b ValueTypesBuilder[R]) Build() R {
	return b.callback(b.types)
}
