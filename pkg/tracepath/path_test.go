package tracepath

import (
	"reflect"
	"testing"

	"github.com/kaelnor/swypath/pkg/keyboard"
)

func TestBuildNeverEmptyForRecognizedWord(t *testing.T) {
	layout := keyboard.NewQWERTY()
	p := Build("hello", layout)
	if len(p) == 0 {
		t.Fatal("Build returned empty path for recognized word")
	}
}

func TestBuildCollapsesDoubledLetters(t *testing.T) {
	layout := keyboard.NewQWERTY()
	hello := Build("hello", layout)
	hll := Build("hllo", layout)
	// "hello" has a doubled 'l'; after collapsing it should match the point
	// sequence of the word with only one 'l', modulo the repeated middle
	// point itself (hllo has its own distinct letters so we only check
	// that "hello" has no two consecutive identical points).
	for i := 1; i < len(hello); i++ {
		if hello[i] == hello[i-1] {
			t.Fatalf("consecutive duplicate point survived simplification at %d: %+v", i, hello)
		}
	}
	_ = hll
}

func TestBuildSkipsUnrecognizedCharacters(t *testing.T) {
	layout := keyboard.NewQWERTY()
	withPunct := Build("a;b", layout)
	plain := Build("ab", layout)
	if !reflect.DeepEqual(withPunct, plain) {
		t.Errorf("Build(%q) = %+v, want %+v (punctuation dropped)", "a;b", withPunct, plain)
	}
}

func TestSimplificationIdempotent(t *testing.T) {
	layout := keyboard.NewQWERTY()
	once := Build("alpaca", layout)
	twice := simplify(once)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("simplify is not idempotent: %+v != %+v", once, twice)
	}
}

func TestCollinearRunCollapses(t *testing.T) {
	// q, w, e are all on row 0 at y=0, x=0,1,2: strictly collinear and
	// monotone, so the middle point should be dropped.
	layout := keyboard.NewQWERTY()
	p := Build("qwe", layout)
	if len(p) != 2 {
		t.Errorf("Build(%q) = %+v, want 2 collinear-collapsed points", "qwe", p)
	}
}
