// Package tracepath turns a word or an input trace into the 2-D polyline
// the DTW scorer compares. Construction is deterministic and pure: the same
// characters and layout always produce the same Path.
package tracepath

import "github.com/kaelnor/swypath/pkg/keyboard"

// Path is an ordered sequence of keyboard points.
type Path []keyboard.Point

// Build expands chars (already lowercase ASCII letters) into a Path using
// layout, then simplifies it per the two construction rules: collapse
// consecutive duplicate points, then collapse collinear monotone runs of
// three or more points to their endpoints.
//
// A character layout misses for is dropped rather than erroring; callers at
// the dictionary-build boundary should treat any drop as a build error
// themselves, since a miss there means the corpus word used an unsupported
// character.
func Build(chars string, layout *keyboard.Layout) Path {
	expanded := make(Path, 0, len(chars))
	for i := 0; i < len(chars); i++ {
		if p, ok := layout.PointFor(chars[i]); ok {
			expanded = append(expanded, p)
		}
	}
	return simplify(expanded)
}

func simplify(pts Path) Path {
	deduped := collapseDuplicates(pts)
	return collapseCollinear(deduped)
}

func collapseDuplicates(pts Path) Path {
	if len(pts) == 0 {
		return pts
	}
	out := make(Path, 0, len(pts))
	out = append(out, pts[0])
	for _, p := range pts[1:] {
		if p != out[len(out)-1] {
			out = append(out, p)
		}
	}
	return out
}

// collapseCollinear reduces runs of three or more collinear, monotone points
// to their endpoints. This is the optional optimization in §3: it must not
// change DTW scores beyond a small tolerance, so it only fires when the
// middle point lies exactly on the segment between its neighbors.
func collapseCollinear(pts Path) Path {
	if len(pts) < 3 {
		return pts
	}
	out := make(Path, 0, len(pts))
	out = append(out, pts[0])
	for i := 1; i < len(pts)-1; i++ {
		prev := out[len(out)-1]
		curr := pts[i]
		next := pts[i+1]
		if isCollinearMonotone(prev, curr, next) {
			continue
		}
		out = append(out, curr)
	}
	out = append(out, pts[len(pts)-1])
	return out
}

func isCollinearMonotone(a, b, c keyboard.Point) bool {
	// Cross product of (b-a) and (c-a): zero means collinear.
	cross := (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
	if cross != 0 {
		return false
	}
	// Monotone: b must lie between a and c on each axis.
	return between(a.X, b.X, c.X) && between(a.Y, b.Y, c.Y)
}

func between(a, b, c float32) bool {
	if a <= c {
		return a <= b && b <= c
	}
	return c <= b && b <= a
}
