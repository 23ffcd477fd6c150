// Package assets embeds the compiled dictionary assets shipped with the
// binary, exposing them as a dictionary.Source for pkg/server, pkg/ffi and
// pkg/wasmbridge to load without touching the filesystem at runtime.
package assets

import "embed"

//go:embed data/*.bin
var data embed.FS

// Lookup returns the compiled binary asset for lang, matching the
// dictionary.Source signature so it can be handed directly to
// dictionary.NewManager.
func Lookup(lang string) ([]byte, bool) {
	b, err := data.ReadFile("data/" + lang + ".bin")
	if err != nil {
		return nil, false
	}
	return b, true
}
