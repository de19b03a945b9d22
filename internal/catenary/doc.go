// Package catenary models the curve of a chain hanging under uniform gravity.
//
// A catenary is fully described by its shape coefficient a:
//
//	y(x) = a * cosh(x/a)
//
// The [Curve] type owns that coefficient and answers the geometric queries a
// calculator needs:
//
//   - [Curve.Ordinate]: height of the curve at x
//   - [Curve.ArcLength]: signed arc length from the vertex to x
//   - [Curve.CurvatureRadius]: signed radius of the osculating circle at x
//   - [Curve.CurvatureCenter]: both algebraic centers of that circle
//   - [Curve.Area]: signed area under the curve between two abscissas
//
// # Numeric behavior
//
// Every query is total over float64. Far from the vertex the hyperbolic
// functions overflow and the result is +Inf or -Inf; that is a valid answer,
// not an error. The only rejected input is a zero coefficient, which falls
// back to 1 and is reported with [ErrInvalidCoefficient].
//
//	c, err := catenary.New(0)
//	if errors.Is(err, catenary.ErrInvalidCoefficient) {
//	    // c is usable, c.Coefficient() == 1
//	}
package catenary
