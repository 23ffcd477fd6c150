// Package dtw computes banded Dynamic Time Warping distance between two
// point sequences, with early termination against a running best score so
// the predictor can prune the bulk of a dictionary without scoring it.
package dtw

import (
	"errors"
	"math"

	"github.com/kaelnor/swypath/pkg/keyboard"
	"github.com/kaelnor/swypath/pkg/tracepath"
)

// ErrEmptyInput is returned when either path has zero points. Per the data
// model this cannot happen for a well-formed dictionary entry or a
// normalized, non-trivial trace, but the scorer still guards against it.
var ErrEmptyInput = errors.New("dtw: empty path")

// Band computes the effective Sakoe-Chiba half-width for two sequence
// lengths using the given divisor: w = max(2, min(n,m)/divisor).
func Band(n, m, divisor int) int {
	if divisor <= 0 {
		divisor = 4
	}
	shorter := n
	if m < shorter {
		shorter = m
	}
	w := shorter / divisor
	if w < 2 {
		w = 2
	}
	return w
}

// Distance computes the DTW distance between a and b under a Sakoe-Chiba
// band of half-width bandWidth, pruning as soon as the row minimum proves
// the final cost cannot beat bestSoFar. Pass math.Inf(1) as bestSoFar to
// disable pruning and get the exact DTW distance.
//
// Cost per cell is squared Euclidean distance (no square root): cheap to
// compute and safe to prune against, per the component design.
func Distance(a, b tracepath.Path, bandWidth int, bestSoFar float64) (float64, error) {
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return 0, ErrEmptyInput
	}
	if bandWidth < 1 {
		bandWidth = 1
	}

	if absInt(n-m) > bandWidth {
		return math.Inf(1), nil
	}

	if n == 1 {
		return nearestSquared(a[0], b), nil
	}
	if m == 1 {
		return nearestSquared(b[0], a), nil
	}

	// The shorter path drives the inner (column) dimension so the rolling
	// rows stay as small as possible.
	short, long := a, b
	if n > m {
		short, long = b, a
	}
	sN, lN := len(short), len(long)

	inf := math.Inf(1)
	prevRow := make([]float64, sN+1)
	currRow := make([]float64, sN+1)
	for j := 1; j <= sN; j++ {
		prevRow[j] = inf
	}

	for i := 1; i <= lN; i++ {
		currRow[0] = inf
		rowMin := inf
		for j := 1; j <= sN; j++ {
			if outsideBand(i, j, lN, sN, bandWidth) {
				currRow[j] = inf
				continue
			}
			cost := squaredDist(long[i-1], short[j-1])
			best := minOf3(prevRow[j-1], prevRow[j], currRow[j-1])
			currRow[j] = cost + best
			if currRow[j] < rowMin {
				rowMin = currRow[j]
			}
		}
		if rowMin > bestSoFar {
			return inf, nil
		}
		prevRow, currRow = currRow, prevRow
	}

	return prevRow[sN], nil
}

// outsideBand reports whether cell (i,j) in the long-by-short DP grid falls
// outside the Sakoe-Chiba band, projecting i onto the short sequence's
// index range before comparing against w.
func outsideBand(i, j, n, m, w int) bool {
	scaled := i * m / n
	d := scaled - j
	if d < 0 {
		d = -d
	}
	return d > w
}

// nearestSquared returns the minimum squared-Euclidean distance from p to
// any point in path: the edge case for a length-1 sequence.
func nearestSquared(p keyboard.Point, path tracepath.Path) float64 {
	best := math.Inf(1)
	for _, q := range path {
		if d := squaredDist(p, q); d < best {
			best = d
		}
	}
	return best
}

func squaredDist(a, b keyboard.Point) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return dx*dx + dy*dy
}

func minOf3(a, b, c float64) float64 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
