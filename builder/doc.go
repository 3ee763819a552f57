// Package builder provides fluent, continuation-passing builders for the
// types in package wasm.
//
// Every builder holds a continuation. Selecting a type on a single-choice
// builder hands the chosen value to the continuation and returns its result,
// so a builder is spent by its first selection. Builders are plain values:
// chaining copies them, and forked chains never share state.
//
//	sig := builder.Signature().
//		Params().I32().I64().Build().
//		Return().F64().
//		Build()
package builder
