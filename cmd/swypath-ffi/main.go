// Command swypath-ffi builds the native C ABI surface of the foreign
// interface (C7): build it with
//
//	go build -buildmode=c-shared -o libswypath.so .
//
// to produce a shared library exporting engine_new, engine_predict and
// engine_free. All actual engine logic lives in pkg/ffi; this file only
// translates between the C calling convention and that package.
package main

/*
#include <stdlib.h>
*/
import "C"

import (
	"unsafe"

	"github.com/kaelnor/swypath/pkg/ffi"
)

// engine_new constructs a predictor for the given language code and
// returns an opaque handle, or 0 on construction failure (e.g. unknown
// language).
//
//export engine_new
func engine_new(langPtr *C.char, langLen C.int) C.longlong {
	lang := C.GoStringN(langPtr, langLen)
	h, err := ffi.NewEngine(lang, nil)
	if err != nil {
		return 0
	}
	return C.longlong(h)
}

// engine_predict writes a JSON array of predictions into the caller-owned
// buffer at outJSONPtr (capacity outJSONCap bytes) and returns the number
// of bytes written, or a negative value if the handle is invalid or the
// buffer is too small to hold the result.
//
//export engine_predict
func engine_predict(handle C.longlong, inputPtr *C.char, inputLen C.int, k C.int, outJSONPtr *C.char, outJSONCap C.int) C.int {
	input := C.GoStringN(inputPtr, inputLen)
	data, err := ffi.PredictJSON(ffi.Handle(handle), input, int(k))
	if err != nil {
		return -1
	}
	if len(data) > int(outJSONCap) {
		return -2
	}

	dst := unsafe.Slice((*byte)(unsafe.Pointer(outJSONPtr)), int(outJSONCap))
	copy(dst, data)
	return C.int(len(data))
}

// engine_free releases a handle's registration. Safe to call on an
// already-released or invalid handle.
//
//export engine_free
func engine_free(handle C.longlong) {
	ffi.Release(ffi.Handle(handle))
}

func main() {}
