package dictionary

import "testing"

func TestManagerLazyLoadAndUnknownLanguage(t *testing.T) {
	data, err := Encode(sampleEntries())
	if err != nil {
		t.Fatal(err)
	}
	loads := 0
	source := func(lang string) ([]byte, bool) {
		if lang != "en" {
			return nil, false
		}
		loads++
		return data, true
	}
	mgr := NewManager(source, nil)

	if _, _, err := mgr.Get("fr"); err == nil {
		t.Fatal("expected error for unknown language")
	}

	if _, _, err := mgr.Get("en"); err != nil {
		t.Fatal(err)
	}
	if _, _, err := mgr.Get("en"); err != nil {
		t.Fatal(err)
	}
	if loads != 1 {
		t.Errorf("source called %d times, want 1 (lazy cache)", loads)
	}
}

func TestCandidateIndicesBucketsByFirstLetterAndLength(t *testing.T) {
	data, err := Encode(sampleEntries())
	if err != nil {
		t.Fatal(err)
	}
	mgr := NewManager(func(string) ([]byte, bool) { return data, true }, nil)
	asset, idx, err := mgr.Get("en")
	if err != nil {
		t.Fatal(err)
	}

	for firstLetter, wantWord := range map[byte]string{'h': "hello", 'w': "world"} {
		var found bool
		for length := 1; length <= 10; length++ {
			for _, i := range CandidateIndices(idx, firstLetter, length) {
				if asset.Entries[i].Word == wantWord {
					found = true
				}
			}
		}
		if !found {
			t.Errorf("did not find %q via bucketed index", wantWord)
		}
	}
}
