package predictor

import (
	"container/heap"
	"math"
	"sort"
)

// candidate is a survivor of the filter stage, scored and ready to compete
// for one of the K output slots.
type candidate struct {
	word      string
	combined  float64
	frequency uint32
}

// isBetter reports whether a ranks ahead of b in the final output:
// ascending combined score, ties broken by higher frequency, then by
// lexicographic word order, per the determinism rule in §4.6.
func isBetter(a, b candidate) bool {
	if a.combined != b.combined {
		return a.combined < b.combined
	}
	if a.frequency != b.frequency {
		return a.frequency > b.frequency
	}
	return a.word < b.word
}

// topK is a bounded max-heap (by rank order) holding at most k survivors:
// its root is always the currently-worst kept candidate, so a new
// candidate can be admitted in O(log k) by comparing against the root and
// evicting it when beaten. There is no third-party heap/priority-queue
// implementation anywhere in the retrieval pack; container/heap is the
// stdlib's own minimal wrapper around a slice, which is what this needs.
type topK struct {
	k     int
	items []candidate
}

func newTopK(k int) *topK {
	return &topK{k: k, items: make([]candidate, 0, k)}
}

func (t *topK) Len() int           { return len(t.items) }
func (t *topK) Swap(i, j int)      { t.items[i], t.items[j] = t.items[j], t.items[i] }
func (t *topK) Less(i, j int) bool { return isBetter(t.items[j], t.items[i]) }

func (t *topK) Push(x any) { t.items = append(t.items, x.(candidate)) }

func (t *topK) Pop() any {
	old := t.items
	n := len(old)
	item := old[n-1]
	t.items = old[:n-1]
	return item
}

// Full reports whether the heap already holds k survivors.
func (t *topK) Full() bool { return len(t.items) >= t.k }

// WorstCombined returns the combined score of the currently-worst kept
// candidate. Only valid when Full().
func (t *topK) WorstCombined() float64 { return t.items[0].combined }

// PushCandidate admits c if there is room, or if c beats the current worst kept
// candidate, evicting that candidate.
func (t *topK) PushCandidate(c candidate) {
	if t.k <= 0 {
		return
	}
	if len(t.items) < t.k {
		heap.Push(t, c)
		return
	}
	if isBetter(c, t.items[0]) {
		heap.Pop(t)
		heap.Push(t, c)
	}
}

// Drain returns every surviving candidate in ascending rank order as
// Predictions, with Freq set to log(1+frequency) per the data model.
func (t *topK) Drain() []Prediction {
	ordered := make([]candidate, len(t.items))
	copy(ordered, t.items)
	sort.Slice(ordered, func(i, j int) bool { return isBetter(ordered[i], ordered[j]) })

	out := make([]Prediction, len(ordered))
	for i, c := range ordered {
		out[i] = Prediction{
			Word:  c.word,
			Score: c.combined,
			Freq:  math.Log1p(float64(c.frequency)),
		}
	}
	return out
}
