// Package ffi holds the host-independent half of the foreign-interface
// surface (C7): a handle table over constructed Predictors and the JSON
// encoding of prediction results. cmd/swypath-ffi wraps this in cgo
// //export functions for the native C ABI; pkg/wasmbridge wraps it for
// the browser. Neither host-specific wrapper holds any state of its own.
// The handle table below is package-level mutable state, guarded by mu and
// shared by both wrappers; each handle in it maps to its own Predictor, so
// handles are independent of one another.
package ffi

import (
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/kaelnor/swypath/internal/assets"
	"github.com/kaelnor/swypath/pkg/dictionary"
	"github.com/kaelnor/swypath/pkg/predictor"
)

// Handle identifies one constructed engine instance. The zero Handle is
// never issued and signals construction failure to callers.
type Handle int64

// manager is the single, read-only, shared dictionary cache every engine
// instance resolves languages through. It carries no per-handle state:
// decoded assets are immutable after load and safe to share across
// independent handles, same as a single process sharing one predictor
// would be (see pkg/predictor's concurrency contract).
var manager = dictionary.NewManager(assets.Lookup, nil)

var (
	nextHandle int64
	mu         sync.RWMutex
	engines    = map[Handle]*predictor.Predictor{}
)

// NewEngine constructs a Predictor for lang and registers it under a
// fresh handle. cfg may be nil to use predictor.DefaultConfig().
func NewEngine(lang string, cfg *predictor.Config) (Handle, error) {
	p, err := predictor.New(manager, lang, cfg)
	if err != nil {
		return 0, fmt.Errorf("ffi: constructing engine for %q: %w", lang, err)
	}

	h := Handle(atomic.AddInt64(&nextHandle, 1))
	mu.Lock()
	engines[h] = p
	mu.Unlock()
	return h, nil
}

// Release drops an engine's registration. Predicting against a released
// handle afterward reports ErrUnknownHandle.
func Release(h Handle) {
	mu.Lock()
	delete(engines, h)
	mu.Unlock()
}

// ErrUnknownHandle is returned by PredictJSON for a handle that was never
// issued or has already been released.
var ErrUnknownHandle = fmt.Errorf("ffi: unknown or released handle")

// jsonPrediction is the wire shape named in the external interfaces:
// {"word":...,"score":...,"freq":...}.
type jsonPrediction struct {
	Word  string  `json:"word"`
	Score float64 `json:"score"`
	Freq  float64 `json:"freq"`
}

// PredictJSON runs a prediction against the engine registered under h and
// returns the result as a JSON array, matching the native FFI's
// serialized form.
func PredictJSON(h Handle, input string, k int) ([]byte, error) {
	mu.RLock()
	p, ok := engines[h]
	mu.RUnlock()
	if !ok {
		return nil, ErrUnknownHandle
	}

	predictions := p.Predict(input, k)
	out := make([]jsonPrediction, len(predictions))
	for i, pr := range predictions {
		out[i] = jsonPrediction{Word: pr.Word, Score: pr.Score, Freq: pr.Freq}
	}
	return json.Marshal(out)
}

// Predict runs a prediction against the engine registered under h and
// returns the raw results, for hosts (like the browser bridge) that can
// consume structured values directly instead of a JSON blob.
func Predict(h Handle, input string, k int) ([]predictor.Prediction, error) {
	mu.RLock()
	p, ok := engines[h]
	mu.RUnlock()
	if !ok {
		return nil, ErrUnknownHandle
	}
	return p.Predict(input, k), nil
}
