// Package diagram draws a tabulated catenary: as an ASCII chart for the
// terminal, or as a PNG/SVG/PDF image.
package diagram

import (
	"errors"
	"fmt"
	"math"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/catenary/internal/profile"
)

var ErrNoFiniteData = errors.New("diagram: no finite samples to draw")

// ASCII renders one column of p. Samples that overflowed to Inf are left
// out since they cannot be scaled.
func ASCII(p *profile.Profile, column string, width, height int) (string, error) {
	values, err := p.Column(column)
	if err != nil {
		return "", err
	}

	data := finite(values)
	if len(data) == 0 {
		return "", fmt.Errorf("%w: %s over [%g, %g]", ErrNoFiniteData, column, p.From, p.To)
	}

	caption := fmt.Sprintf("%s, a = %g, x ∈ [%g, %g]", column, p.Coefficient, p.From, p.To)
	if dropped := len(values) - len(data); dropped > 0 {
		caption += fmt.Sprintf(" (%d overflowed)", dropped)
	}

	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	), nil
}

func finite(values []float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsInf(v, 0) && !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}
