// Package keyboard maps recognized characters to fixed 2-D coordinates on a
// QWERTY grid. A layout is a plain value: cheap to construct, safe to share,
// never mutated after creation.
package keyboard

// Point is a 2-D coordinate in arbitrary "key units". DTW treats it as
// squared-Euclidean space; there is no notion of absolute scale beyond the
// grid spacing a Layout assigns.
type Point struct {
	X, Y float32
}

// Layout is an immutable character -> Point mapping. The zero value is not
// usable; build one with NewQWERTY or New.
type Layout struct {
	points map[byte]Point
}

const (
	rowTop    = "qwertyuiop"
	rowMiddle = "asdfghjkl"
	rowBottom = "zxcvbnm"
)

// NewQWERTY builds the canonical three-row layout described in the component
// design: row 0 spans x=0..9 at y=0, row 1 is offset by 0.5 at y=1, row 2 is
// offset by a further 1.0 (starting at x=1.5) at y=2. Row spacing is 1.0
// vertically.
func NewQWERTY() *Layout {
	pts := make(map[byte]Point, len(rowTop)+len(rowMiddle)+len(rowBottom))
	placeRow(pts, rowTop, 0, 0)
	placeRow(pts, rowMiddle, 0.5, 1)
	placeRow(pts, rowBottom, 1.5, 2)
	return &Layout{points: pts}
}

func placeRow(dst map[byte]Point, row string, xOffset float32, y float32) {
	for i := 0; i < len(row); i++ {
		dst[row[i]] = Point{X: xOffset + float32(i), Y: y}
	}
}

// New builds a Layout from an explicit character -> Point table. Useful for
// tests and for alternate layouts; the grid is a value, never a singleton.
func New(points map[byte]Point) *Layout {
	cp := make(map[byte]Point, len(points))
	for k, v := range points {
		cp[k] = v
	}
	return &Layout{points: cp}
}

// PointFor returns the Point for ch (compared lowercase) and whether it was
// found. A miss is not an error here; callers decide what a miss means
// (build-time error for dictionary words, silent skip for runtime traces).
func (l *Layout) PointFor(ch byte) (Point, bool) {
	if ch >= 'A' && ch <= 'Z' {
		ch = ch - 'A' + 'a'
	}
	p, ok := l.points[ch]
	return p, ok
}
