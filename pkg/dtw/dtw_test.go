package dtw

import (
	"math"
	"testing"

	"github.com/kaelnor/swypath/pkg/keyboard"
	"github.com/kaelnor/swypath/pkg/tracepath"
)

func path(chars string) tracepath.Path {
	return tracepath.Build(chars, keyboard.NewQWERTY())
}

func TestDistanceIdenticalIsZero(t *testing.T) {
	p := path("alpaca")
	d, err := Distance(p, p, 8, math.Inf(1))
	if err != nil {
		t.Fatal(err)
	}
	if d != 0 {
		t.Errorf("Distance(p, p) = %v, want 0", d)
	}
}

func TestDistanceSymmetric(t *testing.T) {
	a := path("hello")
	b := path("world")
	ab, err := Distance(a, b, 8, math.Inf(1))
	if err != nil {
		t.Fatal(err)
	}
	ba, err := Distance(b, a, 8, math.Inf(1))
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(ab-ba) > 1e-9 {
		t.Errorf("Distance not symmetric: %v vs %v", ab, ba)
	}
}

func TestDistanceRejectsOutsideBand(t *testing.T) {
	a := path("a")
	b := path("alpacafarmers")
	d, err := Distance(a, b, 2, math.Inf(1))
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsInf(d, 1) {
		t.Errorf("Distance across |n-m|>w = %v, want +Inf", d)
	}
}

func TestDistanceEarlyTerminationMatchesUnpruned(t *testing.T) {
	a := path("hello")
	b := path("hell")
	unpruned, err := Distance(a, b, 8, math.Inf(1))
	if err != nil {
		t.Fatal(err)
	}
	pruned, err := Distance(a, b, 8, unpruned)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(pruned-unpruned) > 1e-9 {
		t.Errorf("pruned distance %v != unpruned %v at ceiling == exact value", pruned, unpruned)
	}

	rejected, err := Distance(a, b, 8, unpruned/2)
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsInf(rejected, 1) {
		t.Errorf("expected rejection below true distance, got %v", rejected)
	}
}

func TestDistanceEmptyInput(t *testing.T) {
	_, err := Distance(tracepath.Path{}, path("a"), 2, math.Inf(1))
	if err != ErrEmptyInput {
		t.Errorf("err = %v, want ErrEmptyInput", err)
	}
}

func TestDistanceSingleLengthEdgeCase(t *testing.T) {
	a := path("a")
	b := path("alpaca")
	d, err := Distance(a, b, 8, math.Inf(1))
	if err != nil {
		t.Fatal(err)
	}
	if math.IsInf(d, 1) || d < 0 {
		t.Errorf("single-length Distance = %v, want finite non-negative", d)
	}
}

func TestBandDefaults(t *testing.T) {
	if w := Band(4, 4, 4); w != 2 {
		t.Errorf("Band(4,4,4) = %d, want 2 (floor clamp)", w)
	}
	if w := Band(40, 40, 4); w != 10 {
		t.Errorf("Band(40,40,4) = %d, want 10", w)
	}
}
