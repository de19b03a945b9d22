// Package profile tabulates a catenary over an interval of abscissas for
// plotting and export.
package profile

import (
	"errors"
	"fmt"
	"math"

	"github.com/san-kum/catenary/internal/catenary"
)

var (
	ErrInvalidRange  = errors.New("profile: invalid range")
	ErrUnknownColumn = errors.New("profile: unknown column")
)

// Column names, in export order.
const (
	ColumnX         = "x"
	ColumnOrdinate  = "ordinate"
	ColumnArcLength = "arc_length"
	ColumnRadius    = "radius"
)

var Columns = []string{ColumnX, ColumnOrdinate, ColumnArcLength, ColumnRadius}

// chunk is the smallest slice of samples handed to one goroutine.
const chunk = 256

type Sample struct {
	X         float64 `json:"x"`
	Ordinate  float64 `json:"ordinate"`
	ArcLength float64 `json:"arc_length"`
	Radius    float64 `json:"radius"`
}

type Profile struct {
	Coefficient float64
	From        float64
	To          float64
	Samples     []Sample

	curve *catenary.Curve
}

// Tabulate evaluates c at n evenly spaced abscissas from `from` to `to`,
// both ends included.
func Tabulate(c *catenary.Curve, from, to float64, n int) (*Profile, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: need at least 2 samples, got %d", ErrInvalidRange, n)
	}
	if from == to || !isFinite(from) || !isFinite(to) {
		return nil, fmt.Errorf("%w: [%g, %g]", ErrInvalidRange, from, to)
	}

	// Snapshot so later coefficient changes do not leak into the table.
	snap := *c
	c = &snap

	p := &Profile{
		Coefficient: c.Coefficient(),
		From:        from,
		To:          to,
		Samples:     make([]Sample, n),
		curve:       c,
	}

	step := (to - from) / float64(n-1)
	ParallelFor(n, chunk, func(start, end int) {
		for i := start; i < end; i++ {
			x := from + float64(i)*step
			if i == n-1 {
				x = to
			}
			p.Samples[i] = Sample{
				X:         x,
				Ordinate:  c.Ordinate(x),
				ArcLength: c.ArcLength(x),
				Radius:    c.CurvatureRadius(x),
			}
		}
	})

	return p, nil
}

// Column extracts one series by name.
func (p *Profile) Column(name string) ([]float64, error) {
	var pick func(s Sample) float64
	switch name {
	case ColumnX:
		pick = func(s Sample) float64 { return s.X }
	case ColumnOrdinate:
		pick = func(s Sample) float64 { return s.Ordinate }
	case ColumnArcLength:
		pick = func(s Sample) float64 { return s.ArcLength }
	case ColumnRadius:
		pick = func(s Sample) float64 { return s.Radius }
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownColumn, name)
	}

	out := make([]float64, len(p.Samples))
	for i, s := range p.Samples {
		out[i] = pick(s)
	}
	return out, nil
}

// Area is the signed area under the curve over the tabulated span.
func (p *Profile) Area() float64 {
	return p.curve.Area(p.From, p.To)
}

// Vertex returns the lowest (or, for a negative coefficient, highest) point
// of the curve.
func (p *Profile) Vertex() catenary.Point {
	return catenary.Pt(0, p.curve.Ordinate(0))
}

// Curve returns the curve the profile was tabulated from.
func (p *Profile) Curve() *catenary.Curve {
	return p.curve
}

func isFinite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}
