//go:build js && wasm

// Command swypath-wasm builds the browser surface of the foreign
// interface: build it with
//
//	GOOS=js GOARCH=wasm go build -o swypath.wasm .
//
// and load it alongside wasm_exec.js. It registers engineNew,
// enginePredict and engineFree on the global JS object and then blocks
// forever, since the wasm module must stay alive for the host page to
// call back into it.
package main

import (
	"syscall/js"

	"github.com/kaelnor/swypath/pkg/wasmbridge"
)

func main() {
	wasmbridge.Register(js.Global())
	select {}
}
