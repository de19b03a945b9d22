package catenary

import "math"

// DefaultCoefficient replaces a rejected coefficient.
const DefaultCoefficient = 1.0

// Curve is a catenary y = a*cosh(x/a). The zero value is not usable; build
// one with [New] or [Default].
//
// A Curve is not safe for concurrent mutation. Queries only read the
// coefficient, so concurrent queries without SetCoefficient are fine.
type Curve struct {
	a float64
}

// Default returns the curve with coefficient 1.
func Default() *Curve {
	return &Curve{a: DefaultCoefficient}
}

// New returns a curve with coefficient a. If a is zero the curve uses
// DefaultCoefficient and the error wraps ErrInvalidCoefficient; the returned
// curve is valid either way.
func New(a float64) (*Curve, error) {
	c := Default()
	err := c.SetCoefficient(a)
	return c, err
}

// SetCoefficient replaces the shape coefficient. Zero is rejected: the
// coefficient becomes DefaultCoefficient and a *CoefficientError is
// returned. Any other value, including negative and non-finite ones, is
// stored as is.
func (c *Curve) SetCoefficient(a float64) error {
	if a == 0 {
		c.a = DefaultCoefficient
		return &CoefficientError{Rejected: a, Substitute: DefaultCoefficient}
	}
	c.a = a
	return nil
}

func (c *Curve) Coefficient() float64 {
	return c.a
}

// Ordinate returns a*cosh(x/a). The value carries the sign of a.
func (c *Curve) Ordinate(x float64) float64 {
	return c.a * math.Cosh(x/c.a)
}

// ArcLength returns the signed length of the arc from the vertex to x.
func (c *Curve) ArcLength(x float64) float64 {
	return c.a * math.Sinh(x/c.a)
}

// CurvatureRadius returns a*cosh(x/a)^2.
func (c *Curve) CurvatureRadius(x float64) float64 {
	ch := math.Cosh(x / c.a)
	return c.a * ch * ch
}

// CurvatureCenter returns both centers of the osculating circle at x.
// The denominator |cosh(x/a)/a| is not guarded; extreme inputs yield Inf or
// NaN coordinates.
func (c *Curve) CurvatureCenter(x float64) CenterPair {
	s := math.Sinh(x / c.a)
	k := math.Abs(math.Cosh(x/c.a) / c.a)

	dx := (s + s*s*s) / k
	dy := (1 + s*s) / k
	y := c.Ordinate(x)

	return CenterPair{
		First:  Point{X: x + dx, Y: y - dy},
		Second: Point{X: x - dx, Y: y + dy},
	}
}

// Area returns a^2*(sinh(x2/a) - sinh(x1/a)), the signed area under the
// curve from x1 to x2. Swapping the bounds negates the result.
func (c *Curve) Area(x1, x2 float64) float64 {
	return c.a * c.a * (math.Sinh(x2/c.a) - math.Sinh(x1/c.a))
}
