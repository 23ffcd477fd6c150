// Package compiler implements the build-time compiler (C5): it reads a
// plaintext corpus and word list (or a pre-counted word/frequency file),
// builds per-word frequencies, precomputes each word's path on the
// canonical layout, and emits one binary dictionary asset per language.
//
// This package is deliberately kept out of the runtime import graph: the
// shipped predictor only needs to decode the binary layout, never to
// parse text corpora, matching the builder-pattern separation the
// component design calls for.
package compiler

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/kaelnor/swypath/internal/utils"
	"github.com/kaelnor/swypath/pkg/dictionary"
	"github.com/kaelnor/swypath/pkg/keyboard"
	"github.com/kaelnor/swypath/pkg/tracepath"
)

// ErrMissingInput is returned when a language directory has neither a
// word_freq.txt nor a corpus.txt+word_list.txt pair.
var ErrMissingInput = errors.New("compiler: no usable input files")

// ErrMalformedInput is returned for a structurally invalid input file,
// e.g. a word_freq.txt line that isn't "word<TAB>count".
var ErrMalformedInput = errors.New("compiler: malformed input")

const (
	wordFreqFile = "word_freq.txt"
	corpusFile   = "corpus.txt"
	wordListFile = "word_list.txt"
)

// Stats summarizes one language's compilation, useful for a build
// manifest or CLI report.
type Stats struct {
	Lang          string
	EntriesKept   int
	EntriesSkipped int
	SourceKind    string // "word_freq" or "corpus+word_list"
}

// CompileDir reads dir for lang, builds entries against layout, and
// returns the encoded binary asset bytes plus build stats. Build fails
// loudly: any missing required file or malformed input is a non-nil
// error, matching the build tool's exit-code contract (the caller maps
// this to the documented exit codes).
func CompileDir(dir, lang string, layout *keyboard.Layout) ([]byte, Stats, error) {
	entries, stats, err := buildEntries(dir, lang, layout)
	if err != nil {
		return nil, Stats{}, err
	}
	data, err := dictionary.Encode(entries)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("compiler: encoding %q: %w", lang, err)
	}
	return data, stats, nil
}

func buildEntries(dir, lang string, layout *keyboard.Layout) ([]dictionary.Entry, Stats, error) {
	freqPath := filepath.Join(dir, wordFreqFile)
	if utils.FileExists(freqPath) {
		freqs, err := readWordFreq(freqPath)
		if err != nil {
			return nil, Stats{}, err
		}
		entries, skipped := toEntries(freqs, layout)
		log.Debugf("compiled %q from word_freq.txt: %d kept, %d skipped", lang, len(entries), skipped)
		return entries, Stats{Lang: lang, EntriesKept: len(entries), EntriesSkipped: skipped, SourceKind: "word_freq"}, nil
	}

	corpusPath := filepath.Join(dir, corpusFile)
	listPath := filepath.Join(dir, wordListFile)
	if utils.FileExists(corpusPath) && utils.FileExists(listPath) {
		freqs, err := readCorpusWithList(corpusPath, listPath)
		if err != nil {
			return nil, Stats{}, err
		}
		entries, skipped := toEntries(freqs, layout)
		log.Debugf("compiled %q from corpus+word_list: %d kept, %d skipped", lang, len(entries), skipped)
		return entries, Stats{Lang: lang, EntriesKept: len(entries), EntriesSkipped: skipped, SourceKind: "corpus+word_list"}, nil
	}

	return nil, Stats{}, fmt.Errorf("%w: %s needs word_freq.txt or corpus.txt+word_list.txt", ErrMissingInput, dir)
}

// readWordFreq parses lines "word<TAB>count".
func readWordFreq(path string) (map[string]uint32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("compiler: opening %s: %w", path, err)
	}
	defer f.Close()

	freqs := make(map[string]uint32)
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := strings.Split(line, "\t")
		if len(parts) != 2 {
			return nil, fmt.Errorf("%w: %s:%d: expected \"word\\tcount\"", ErrMalformedInput, path, lineNo)
		}
		count, err := strconv.ParseUint(strings.TrimSpace(parts[1]), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: %s:%d: invalid count %q", ErrMalformedInput, path, lineNo, parts[1])
		}
		word, ok := utils.NormalizeWord(parts[0])
		if !ok {
			continue
		}
		freqs[word] += uint32(count)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("compiler: reading %s: %w", path, err)
	}
	return freqs, nil
}

// readCorpusWithList tokenizes corpus.txt and counts frequencies, keeping
// only words present in word_list.txt (an inclusion filter).
func readCorpusWithList(corpusPath, listPath string) (map[string]uint32, error) {
	allowed, err := readWordList(listPath)
	if err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(corpusPath)
	if err != nil {
		return nil, fmt.Errorf("compiler: opening %s: %w", corpusPath, err)
	}

	freqs := make(map[string]uint32, len(allowed))
	for word := range allowed {
		freqs[word] = 0
	}
	for _, tok := range utils.Tokenize(string(raw)) {
		word, ok := utils.NormalizeWord(tok)
		if !ok {
			continue
		}
		if _, ok := allowed[word]; !ok {
			continue
		}
		freqs[word]++
	}
	return freqs, nil
}

func readWordList(path string) (map[string]struct{}, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("compiler: opening %s: %w", path, err)
	}
	defer f.Close()

	allowed := make(map[string]struct{})
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word, ok := utils.NormalizeWord(scanner.Text())
		if !ok {
			continue
		}
		allowed[word] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("compiler: reading %s: %w", path, err)
	}
	return allowed, nil
}

// toEntries builds a dictionary.Entry per word, precomputing its path on
// layout. A word containing a letter the layout doesn't recognize is a
// build-time error per the data model, so such words are skipped and
// counted rather than silently shipped with a truncated path.
func toEntries(freqs map[string]uint32, layout *keyboard.Layout) ([]dictionary.Entry, int) {
	words := make([]string, 0, len(freqs))
	for w := range freqs {
		words = append(words, w)
	}
	sort.Strings(words)

	entries := make([]dictionary.Entry, 0, len(words))
	skipped := 0
	for _, w := range words {
		path, ok := buildPathStrict(w, layout)
		if !ok {
			skipped++
			continue
		}
		entries = append(entries, dictionary.Entry{Word: w, Frequency: freqs[w], Path: path})
	}
	return entries, skipped
}

// buildPathStrict is the build-time variant of tracepath.Build: it
// reports ok=false the moment any letter of word is missing from layout,
// instead of silently skipping it, since a missing letter in a
// dictionary word is a build-time error (runtime trace characters are
// allowed to be skipped).
func buildPathStrict(word string, layout *keyboard.Layout) (tracepath.Path, bool) {
	for i := 0; i < len(word); i++ {
		if _, ok := layout.PointFor(word[i]); !ok {
			return nil, false
		}
	}
	return tracepath.Build(word, layout), true
}
