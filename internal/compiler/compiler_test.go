package compiler

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kaelnor/swypath/pkg/dictionary"
	"github.com/kaelnor/swypath/pkg/keyboard"
)

func writeFile(t *testing.T, dir, name, contents string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestCompileDirFromWordFreq(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, wordFreqFile, "hello\t500\nworld\t480\nalpaca\t120\n")

	data, stats, err := CompileDir(dir, "en", keyboard.NewQWERTY())
	if err != nil {
		t.Fatal(err)
	}
	if stats.SourceKind != "word_freq" || stats.EntriesKept != 3 {
		t.Errorf("stats = %+v, want 3 entries from word_freq", stats)
	}

	asset, err := dictionary.Load(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(asset.Entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(asset.Entries))
	}
}

func TestCompileDirFromCorpusAndWordList(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, wordListFile, "hello\nworld\n")
	writeFile(t, dir, corpusFile, "hello hello world! Hello, stranger. 1234 xyzzy world")

	data, stats, err := CompileDir(dir, "en", keyboard.NewQWERTY())
	if err != nil {
		t.Fatal(err)
	}
	if stats.SourceKind != "corpus+word_list" {
		t.Errorf("SourceKind = %q, want corpus+word_list", stats.SourceKind)
	}

	asset, err := dictionary.Load(data)
	if err != nil {
		t.Fatal(err)
	}
	freqs := make(map[string]uint32, len(asset.Entries))
	for _, e := range asset.Entries {
		freqs[e.Word] = e.Frequency
	}
	if freqs["hello"] != 3 {
		t.Errorf("hello frequency = %d, want 3 (case-insensitive count)", freqs["hello"])
	}
	if freqs["world"] != 2 {
		t.Errorf("world frequency = %d, want 2", freqs["world"])
	}
	if _, ok := freqs["xyzzy"]; ok {
		t.Error("xyzzy should have been excluded: not in word_list.txt")
	}
}

func TestCompileDirMissingInput(t *testing.T) {
	dir := t.TempDir()
	if _, _, err := CompileDir(dir, "en", keyboard.NewQWERTY()); err == nil {
		t.Fatal("expected error for directory with no usable input files")
	}
}

func TestCompileDirMalformedWordFreq(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, wordFreqFile, "hello world\n")
	if _, _, err := CompileDir(dir, "en", keyboard.NewQWERTY()); err == nil {
		t.Fatal("expected error for malformed word_freq.txt line")
	}
}
