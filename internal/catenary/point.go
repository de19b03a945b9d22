package catenary

import "fmt"

type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (pt Point) Splat() (float64, float64) {
	return pt.X, pt.Y
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g; %g)", pt.X, pt.Y)
}

// CenterPair holds the two algebraic solutions for the center of curvature.
// First lies at (x+dx, y-dy), Second at (x-dx, y+dy); callers pick the one
// that is meaningful for them.
type CenterPair struct {
	First  Point
	Second Point
}

func (p CenterPair) Points() [2]Point {
	return [2]Point{p.First, p.Second}
}
