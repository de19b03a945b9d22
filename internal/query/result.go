package query

import (
	"math"
	"strconv"

	"github.com/san-kum/catenary/internal/catenary"
)

// Result is the outcome of one operation: a scalar, or a pair of centers.
type Result struct {
	Op      int
	Value   float64
	Centers *catenary.CenterPair

	// absolute marks results shown as magnitudes (ordinate, radius, area).
	absolute bool
}

func scalar(op int, v float64, absolute bool) Result {
	return Result{Op: op, Value: v, absolute: absolute}
}

// Display returns the value as shown to the user: ordinate, curvature
// radius and area are shown as magnitudes, everything else keeps its sign.
func (r Result) Display() float64 {
	if r.absolute {
		return math.Abs(r.Value)
	}
	return r.Value
}

func (r Result) IsPair() bool {
	return r.Centers != nil
}

// Lines formats the result for text output, one line per value.
func (r Result) Lines() []string {
	if r.Centers != nil {
		return []string{
			"(" + FormatFloat(r.Centers.First.X) + "; " + FormatFloat(r.Centers.First.Y) + "),",
			"(" + FormatFloat(r.Centers.Second.X) + "; " + FormatFloat(r.Centers.Second.Y) + ")",
		}
	}
	return []string{FormatFloat(r.Display())}
}

// FormatFloat prints six significant digits, the way a stream does by
// default, with inf/-inf/nan spelled out.
func FormatFloat(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	case math.IsNaN(v):
		return "nan"
	}
	return strconv.FormatFloat(v, 'g', 6, 64)
}
