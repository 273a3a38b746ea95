// Package quilt holds the patch placement model of the quilt designer:
// the patch store, the placement list, grid snapping, mouse dragging,
// grouping and the project record codec.
package quilt

import "math"

const (
	// GridSize is the edge of one snap cell in canvas pixels.
	GridSize = 50

	// DefaultPatchSize is the edge of a patch created from a color pick.
	DefaultPatchSize = 50

	// MaxPatches caps the patch store.
	MaxPatches = 1000

	layoutColumns = 16
	layoutMargin  = 10
	layoutGap     = 10

	// HighlightColor and HighlightWidth style the item being dragged.
	HighlightColor = "#ff0000"
	HighlightWidth = 3
	normalWidth    = 1
)

// Point is a position in canvas pixels.
type Point struct {
	X, Y float64
}

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Size is the extent of a patch. Square patches have W == H.
type Size struct {
	W, H float64
}

func Square(edge float64) Size { return Size{edge, edge} }

// IsSquare reports whether the size is written as a single number.
func (s Size) IsSquare() bool { return s.W == s.H }

// Rect is an axis-aligned rectangle from (X1,Y1) to (X2,Y2).
type Rect struct {
	X1, Y1, X2, Y2 float64
}

// RectAt returns the rectangle with top-left p and extent s.
func RectAt(p Point, s Size) Rect {
	return Rect{p.X, p.Y, p.X + s.W, p.Y + s.H}
}

func (r Rect) Min() Point { return Point{r.X1, r.Y1} }
func (r Rect) Width() float64 { return r.X2 - r.X1 }
func (r Rect) Height() float64 { return r.Y2 - r.Y1 }

// Canon returns r with its corners ordered so that X1 <= X2 and Y1 <= Y2.
func (r Rect) Canon() Rect {
	if r.X1 > r.X2 {
		r.X1, r.X2 = r.X2, r.X1
	}
	if r.Y1 > r.Y2 {
		r.Y1, r.Y2 = r.Y2, r.Y1
	}
	return r
}

func (r Rect) Translate(d Point) Rect {
	return Rect{r.X1 + d.X, r.Y1 + d.Y, r.X2 + d.X, r.Y2 + d.Y}
}

// Union returns the smallest rectangle covering r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		X1: math.Min(r.X1, o.X1),
		Y1: math.Min(r.Y1, o.Y1),
		X2: math.Max(r.X2, o.X2),
		Y2: math.Max(r.Y2, o.Y2),
	}
}

// Contains reports whether p lies in the half-open rectangle [X1,X2)x[Y1,Y2).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X1 && p.X < r.X2 && p.Y >= r.Y1 && p.Y < r.Y2
}

// Distance is the Euclidean distance from p to the closed rectangle,
// zero when p is on or inside it.
func (r Rect) Distance(p Point) float64 {
	dx := math.Max(math.Max(r.X1-p.X, 0), p.X-r.X2)
	dy := math.Max(math.Max(r.Y1-p.Y, 0), p.Y-r.Y2)
	return math.Hypot(dx, dy)
}

// Patch is a colored rectangle template. Coords stays nil until the patch
// is first displayed.
type Patch struct {
	Size   Size
	Color  string
	Coords *Point
}

// PackedPosition is the top-left of the index'th slot in the packed
// display layout: 16 columns, a 10px margin and a 10px gap.
func PackedPosition(index int, size Size) Point {
	col := index % layoutColumns
	row := index / layoutColumns
	return Point{
		X: layoutMargin + float64(col)*(size.W+layoutGap),
		Y: layoutMargin + float64(row)*(size.H+layoutGap),
	}
}
