package keyboard

import "testing"

func TestQWERTYRows(t *testing.T) {
	layout := NewQWERTY()

	cases := []struct {
		ch   byte
		want Point
	}{
		{'q', Point{X: 0, Y: 0}},
		{'p', Point{X: 9, Y: 0}},
		{'a', Point{X: 0.5, Y: 1}},
		{'l', Point{X: 8.5, Y: 1}},
		{'z', Point{X: 1.5, Y: 2}},
		{'m', Point{X: 7.5, Y: 2}},
	}
	for _, c := range cases {
		got, ok := layout.PointFor(c.ch)
		if !ok {
			t.Fatalf("PointFor(%q): miss", c.ch)
		}
		if got != c.want {
			t.Errorf("PointFor(%q) = %+v, want %+v", c.ch, got, c.want)
		}
	}
}

func TestPointForCaseInsensitive(t *testing.T) {
	layout := NewQWERTY()
	lower, _ := layout.PointFor('q')
	upper, ok := layout.PointFor('Q')
	if !ok || upper != lower {
		t.Errorf("PointFor('Q') = %+v, ok=%v, want %+v, true", upper, ok, lower)
	}
}

func TestPointForMiss(t *testing.T) {
	layout := NewQWERTY()
	if _, ok := layout.PointFor(';'); ok {
		t.Error("expected miss for punctuation not present in canonical layout")
	}
}
