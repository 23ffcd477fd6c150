//go:build js && wasm

// Package wasmbridge implements the browser half of the foreign interface
// (C7): the same engine_new/engine_predict/engine_free operations as the
// native C ABI, exposed to JavaScript via syscall/js instead of cgo.
// Results are returned as arrays of {word, score, freq} objects rather
// than a JSON string, since the host already speaks JS values.
//
// There is no third-party alternative to syscall/js for wasm/JS
// interop: it is the only bridge between compiled Go and the browser's
// JavaScript runtime, so this package is stdlib by necessity.
package wasmbridge

import (
	"syscall/js"

	"github.com/kaelnor/swypath/pkg/ffi"
)

// Register installs engineNew, enginePredict and engineFree as functions
// on the given JS object (typically js.Global()).
func Register(target js.Value) {
	target.Set("engineNew", js.FuncOf(engineNew))
	target.Set("enginePredict", js.FuncOf(enginePredict))
	target.Set("engineFree", js.FuncOf(engineFree))
}

// engineNew(langCode string) -> handle (number), 0 on failure.
func engineNew(this js.Value, args []js.Value) any {
	if len(args) < 1 {
		return 0
	}
	lang := args[0].String()
	h, err := ffi.NewEngine(lang, nil)
	if err != nil {
		return 0
	}
	return float64(h)
}

// enginePredict(handle number, trace string, k number) -> array of
// {word, score, freq}, or null on an invalid handle.
func enginePredict(this js.Value, args []js.Value) any {
	if len(args) < 3 {
		return js.Null()
	}
	handle := ffi.Handle(args[0].Int())
	trace := args[1].String()
	k := args[2].Int()

	predictions, err := ffi.Predict(handle, trace, k)
	if err != nil {
		return js.Null()
	}

	out := make([]any, len(predictions))
	for i, p := range predictions {
		item := js.Global().Get("Object").New()
		item.Set("word", p.Word)
		item.Set("score", p.Score)
		item.Set("freq", p.Freq)
		out[i] = item
	}
	return js.ValueOf(out)
}

// engineFree(handle number) -> undefined.
func engineFree(this js.Value, args []js.Value) any {
	if len(args) < 1 {
		return js.Undefined()
	}
	ffi.Release(ffi.Handle(args[0].Int()))
	return js.Undefined()
}
