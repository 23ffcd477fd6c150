package utils

import (
	"reflect"
	"testing"
)

func TestNormalizeWord(t *testing.T) {
	cases := []struct {
		in       string
		wantWord string
		wantOK   bool
	}{
		{"Hello,", "hello", true},
		{"\"world\"", "world", true},
		{"123", "", false},
		{"it's", "", false},
		{"", "", false},
		{"---", "", false},
		{"ALPACA", "alpaca", true},
	}
	for _, c := range cases {
		word, ok := NormalizeWord(c.in)
		if word != c.wantWord || ok != c.wantOK {
			t.Errorf("NormalizeWord(%q) = (%q, %v), want (%q, %v)", c.in, word, ok, c.wantWord, c.wantOK)
		}
	}
}

func TestTokenize(t *testing.T) {
	got := Tokenize("The quick-brown fox, jumps.")
	want := []string{"The", "quick", "brown", "fox", "jumps"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize = %v, want %v", got, want)
	}
}
