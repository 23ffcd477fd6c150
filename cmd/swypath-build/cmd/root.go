// Package cmd wires the build-time compiler's CLI: flags and config are
// bound through viper, following the same cobra/OnInitialize/RunE shape
// used for command-line tools across the retrieval pack.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/charmbracelet/log"

	"github.com/kaelnor/swypath/internal/compiler"
	"github.com/kaelnor/swypath/internal/utils"
	"github.com/kaelnor/swypath/pkg/keyboard"
)

// Exit codes per the external interfaces contract: 0 success, 1
// missing/invalid input, 2 I/O error writing the asset.
const (
	exitOK          = 0
	exitInvalidInput = 1
	exitIOError     = 2
)

var rootCmd = &cobra.Command{
	Use:   "swypath-build",
	Short: "Compile a text corpus into swypath dictionary assets",
	Long:  "Reads one input directory per language (ISO 639-1 code) and emits one binary dictionary asset per language.",
	RunE:  runBuild,
}

func runBuild(_ *cobra.Command, _ []string) error {
	inputDir := viper.GetString("input")
	outputDir := viper.GetString("output")
	onlyLang := viper.GetString("lang")

	if inputDir == "" {
		fmt.Fprintln(os.Stderr, "swypath-build: --input is required")
		os.Exit(exitInvalidInput)
	}

	entries, err := os.ReadDir(inputDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "swypath-build: reading input dir: %v\n", err)
		os.Exit(exitInvalidInput)
	}

	if err := utils.EnsureDir(outputDir); err != nil {
		fmt.Fprintf(os.Stderr, "swypath-build: creating output dir: %v\n", err)
		os.Exit(exitIOError)
	}

	layout := keyboard.NewQWERTY()
	built := 0
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		lang := entry.Name()
		if onlyLang != "" && lang != onlyLang {
			continue
		}

		langDir := filepath.Join(inputDir, lang)
		data, stats, err := compiler.CompileDir(langDir, lang, layout)
		if err != nil {
			if errors.Is(err, compiler.ErrMissingInput) || errors.Is(err, compiler.ErrMalformedInput) {
				fmt.Fprintf(os.Stderr, "swypath-build: %s: %v\n", lang, err)
				os.Exit(exitInvalidInput)
			}
			fmt.Fprintf(os.Stderr, "swypath-build: %s: %v\n", lang, err)
			os.Exit(exitIOError)
		}

		outPath := filepath.Join(outputDir, lang+".bin")
		if err := os.WriteFile(outPath, data, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "swypath-build: writing %s: %v\n", outPath, err)
			os.Exit(exitIOError)
		}
		log.Infof("built %s: %d entries (%s) -> %s", lang, stats.EntriesKept, stats.SourceKind, outPath)
		built++
	}

	if built == 0 {
		fmt.Fprintln(os.Stderr, "swypath-build: no language directories matched")
		os.Exit(exitInvalidInput)
	}
	return nil
}

// Execute runs the root command and exits exitOK on success (errors exit
// through os.Exit inside runBuild at the documented codes).
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "swypath-build: %v\n", err)
		os.Exit(exitInvalidInput)
	}
	os.Exit(exitOK)
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.Flags().StringP("input", "i", "", "input directory containing one subdirectory per language")
	rootCmd.Flags().StringP("output", "o", "assets", "output directory for compiled .bin assets")
	rootCmd.Flags().StringP("lang", "l", "", "compile only this language code (default: all subdirectories)")

	cobra.CheckErr(viper.BindPFlag("input", rootCmd.Flags().Lookup("input")))
	cobra.CheckErr(viper.BindPFlag("output", rootCmd.Flags().Lookup("output")))
	cobra.CheckErr(viper.BindPFlag("lang", rootCmd.Flags().Lookup("lang")))
}

func initConfig() {
	viper.SetEnvPrefix("SWYPATH_BUILD")
	viper.AutomaticEnv()
}
