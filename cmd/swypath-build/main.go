// Command swypath-build is the build-time compiler entrypoint (C5): it
// turns a plaintext corpus into the binary dictionary assets the runtime
// predictor embeds and decodes.
package main

import "github.com/kaelnor/swypath/cmd/swypath-build/cmd"

func main() {
	cmd.Execute()
}
