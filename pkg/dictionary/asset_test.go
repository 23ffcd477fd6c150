package dictionary

import (
	"testing"

	"github.com/kaelnor/swypath/pkg/keyboard"
	"github.com/kaelnor/swypath/pkg/tracepath"
)

func sampleEntries() []Entry {
	layout := keyboard.NewQWERTY()
	words := []struct {
		word string
		freq uint32
	}{
		{"a", 10},
		{"hello", 500},
		{"world", 480},
		{"alpaca", 120},
		{"penguin", 90},
	}
	entries := make([]Entry, len(words))
	for i, w := range words {
		entries[i] = Entry{
			Word:      w.word,
			Frequency: w.freq,
			Path:      tracepath.Build(w.word, layout),
		}
	}
	return entries
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	entries := sampleEntries()
	data, err := Encode(entries)
	if err != nil {
		t.Fatal(err)
	}
	asset, err := Load(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(asset.Entries) != len(entries) {
		t.Fatalf("got %d entries, want %d", len(asset.Entries), len(entries))
	}

	byWord := make(map[string]Entry, len(entries))
	for _, e := range entries {
		byWord[e.Word] = e
	}
	for _, got := range asset.Entries {
		want, ok := byWord[got.Word]
		if !ok {
			t.Fatalf("unexpected word %q in round trip", got.Word)
		}
		if got.Frequency != want.Frequency {
			t.Errorf("%q frequency = %d, want %d", got.Word, got.Frequency, want.Frequency)
		}
		if len(got.Path) != len(want.Path) {
			t.Fatalf("%q path length = %d, want %d", got.Word, len(got.Path), len(want.Path))
		}
		for i := range got.Path {
			if got.Path[i] != want.Path[i] {
				t.Errorf("%q path[%d] = %+v, want %+v", got.Word, i, got.Path[i], want.Path[i])
			}
		}
	}
}

func TestEncodeOrdersByLengthThenFrequency(t *testing.T) {
	data, err := Encode(sampleEntries())
	if err != nil {
		t.Fatal(err)
	}
	asset, err := Load(data)
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(asset.Entries); i++ {
		prev, curr := asset.Entries[i-1], asset.Entries[i]
		if len(prev.Word) > len(curr.Word) {
			t.Fatalf("entries not sorted by length ascending at %d: %q then %q", i, prev.Word, curr.Word)
		}
		if len(prev.Word) == len(curr.Word) && prev.Frequency < curr.Frequency {
			t.Fatalf("entries with equal length not sorted by frequency descending at %d: %q(%d) then %q(%d)",
				i, prev.Word, prev.Frequency, curr.Word, curr.Frequency)
		}
	}
}

func TestLoadRejectsBadMagic(t *testing.T) {
	data, _ := Encode(sampleEntries())
	corrupt := append([]byte(nil), data...)
	corrupt[0] = 'X'
	if _, err := Load(corrupt); err == nil {
		t.Fatal("expected error for corrupted magic")
	}
}

func TestLoadRejectsTruncated(t *testing.T) {
	data, _ := Encode(sampleEntries())
	if _, err := Load(data[:headerSize+1]); err == nil {
		t.Fatal("expected error for truncated asset")
	}
}

func TestLoadRejectsVersionMismatch(t *testing.T) {
	data, _ := Encode(sampleEntries())
	corrupt := append([]byte(nil), data...)
	corrupt[4] = 0xFF
	corrupt[5] = 0xFF
	if _, err := Load(corrupt); err == nil {
		t.Fatal("expected error for version mismatch")
	}
}
