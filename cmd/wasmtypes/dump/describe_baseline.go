//go:build !wasmgc

package dump

import "github.com/pgavlin/wasmtypes/wasm"

func describe(i int, t wasm.Type) row {
	r := row{Index: i}
	if f, ok := t.(*wasm.FunctionType); ok {
		describeFunction(&r, f)
	}
	return r
}
