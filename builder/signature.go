package builder

import (
	"github.com/pgavlin/wasmtypes/wasm"
)

// SignatureBuilder assembles a function type from parameter and return type
// selections.
type SignatureBuilder[R any] struct {
	callback   func(*wasm.FunctionType) R
	params     []wasm.ValueType
	returnType wasm.ValueType
	hasReturn  bool
}

func NewSignatureBuilder[R any](callback func(*wasm.FunctionType) R) SignatureBuilder[R] {
	return SignatureBuilder[R]{callback: callback}
}

// Signature returns a builder that yields the finished function type.
func Signature() SignatureBuilder[*wasm.FunctionType] {
	return NewSignatureBuilder(Identity[*wasm.FunctionType])
}

// Param appends one parameter.
func (b SignatureBuilder[R]) Param() ValueTypeBuilder[SignatureBuilder[R]] {
	return NewValueTypeBuilder(func(v wasm.ValueType) SignatureBuilder[R] {
		b.params = appendValues(b.params, v)
		return b
	})
}

// Params appends a list of parameters.
func (b SignatureBuilder[R]) Params() ValueTypesBuilder[SignatureBuilder[R]] {
	return NewValueTypesBuilder(func(vs []wasm.ValueType) SignatureBuilder[R] {
		b.params = appendValues(b.params, vs...)
		return b
	})
}

// Return sets or clears the return type.
func (b SignatureBuilder[R]) Return() OptionalValueTypeBuilder[SignatureBuilder[R]] {
	return NewOptionalValueTypeBuilder(func(v *wasm.ValueType) SignatureBuilder[R] {
		if v == nil {
			b.returnType, b.hasReturn = wasm.ValueType{}, false
		} else {
			b.returnType, b.hasReturn = *v, true
		}
		return b
	})
}

func (b SignatureBuilder[R]) Build() R {
	var ret *wasm.ValueType
	if b.hasReturn {
		ret = &b.returnType
	}
	return b.callback(wasm.NewFunctionType(appendValues(b.params), ret))
}

// TypesBuilder collects the entries of a type section.
type TypesBuilder struct {
	types []wasm.Type
}

func Types() *TypesBuilder {
	return &TypesBuilder{}
}

// Function starts a function type that is added to b when built.
func (b *TypesBuilder) Function() SignatureBuilder[*TypesBuilder] {
	return NewSignatureBuilder(func(f *wasm.FunctionType) *TypesBuilder {
		return b.Push(f)
	})
}

// Push adds an already constructed type.
func (b *TypesBuilder) Push(t wasm.Type) *TypesBuilder {
	b.types = append(b.types, t)
	return b
}

func (b *TypesBuilder) Build() []wasm.Type {
	return b.types
}

// Module returns a module whose only section is the collected type section.
func (b *TypesBuilder) Module() *wasm.Module {
	return wasm.NewModule(b.types...)
}
