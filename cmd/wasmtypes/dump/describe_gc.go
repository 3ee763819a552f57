//go:build wasmgc

package dump

import (
	"strings"

	"github.com/pgavlin/wasmtypes/wasm"
)

func describe(i int, t wasm.Type) row {
	r := row{Index: i}
	switch t := t.(type) {
	case *wasm.FunctionType:
		describeFunction(&r, t)
	case *wasm.StructType:
		r.Kind = "struct"
		fields := make([]string, len(t.Fields))
		for j, f := range t.Fields {
			fields[j] = f.String()
		}
		r.Fields = strings.Join(fields, " ")
	case *wasm.ArrayType:
		r.Kind = "array"
		r.Fields = t.Elem.String()
	}
	return r
}
