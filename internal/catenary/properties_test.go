package catenary_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/catenary/internal/catenary"
)

var coefficients = []float64{-20000, -10000, -10, -1, -0.01, 0.01, 0.5, 1, 10, 10000}

var abscissas = []float64{-10000, -10, -1, -0.01, 0, 0.01, 1, 10, 10000}

var _ = Describe("Curve", func() {
	Describe("coefficient", func() {
		It("falls back to 1 and warns on zero", func() {
			c, err := catenary.New(0)
			Expect(err).To(MatchError(catenary.ErrInvalidCoefficient))
			Expect(c.Coefficient()).To(Equal(1.0))
		})

		It("keeps every non-zero value without a warning", func() {
			c := catenary.Default()
			for _, a := range coefficients {
				Expect(c.SetCoefficient(a)).To(Succeed())
				Expect(c.Coefficient()).To(Equal(a))
			}
		})

		It("recovers after a rejected update", func() {
			c, err := catenary.New(-7)
			Expect(err).NotTo(HaveOccurred())
			Expect(c.SetCoefficient(0)).To(MatchError(catenary.ErrInvalidCoefficient))
			Expect(c.Coefficient()).To(Equal(1.0))
			Expect(c.Ordinate(0)).To(Equal(1.0))
		})
	})

	Describe("vertex", func() {
		It("sits at (0, a) with zero arc length", func() {
			for _, a := range coefficients {
				c, _ := catenary.New(a)
				Expect(c.Ordinate(0)).To(Equal(a))
				Expect(c.ArcLength(0)).To(BeNumerically("==", 0))
				Expect(c.CurvatureRadius(0)).To(Equal(a))
			}
		})
	})

	Describe("symmetry", func() {
		It("has an even ordinate and an odd arc length", func() {
			for _, a := range coefficients {
				c, _ := catenary.New(a)
				for _, x := range abscissas {
					Expect(c.Ordinate(-x)).To(Equal(c.Ordinate(x)), "a=%v x=%v", a, x)
					Expect(c.ArcLength(-x)).To(Equal(-c.ArcLength(x)), "a=%v x=%v", a, x)
				}
			}
		})

		It("negates the area when the bounds are swapped", func() {
			for _, a := range coefficients {
				c, _ := catenary.New(a)
				for _, x1 := range abscissas {
					for _, x2 := range abscissas {
						got, swapped := c.Area(x1, x2), c.Area(x2, x1)
						if math.IsNaN(got) {
							// Inf - Inf when both bounds overflow the same way.
							Expect(math.IsNaN(swapped)).To(BeTrue())
							continue
						}
						Expect(got).To(Equal(-swapped), "a=%v x1=%v x2=%v", a, x1, x2)
					}
				}
			}
		})
	})

	DescribeTable("overflow far from the vertex",
		func(a, x float64, sign int) {
			c, _ := catenary.New(a)
			Expect(math.IsInf(c.Ordinate(x), sign)).To(BeTrue())
			Expect(math.IsInf(c.CurvatureRadius(x), sign)).To(BeTrue())
		},
		Entry("positive coefficient", 10.0, 10000.0, 1),
		Entry("positive coefficient, left branch", 10.0, -10000.0, 1),
		Entry("negative coefficient", -0.01, 10.0, -1),
	)

	DescribeTable("reference values",
		func(a float64, query func(*catenary.Curve) float64, want, tol float64) {
			c, _ := catenary.New(a)
			Expect(query(c)).To(BeNumerically("~", want, tol))
		},
		Entry("ordinate", -10000.0, func(c *catenary.Curve) float64 { return c.Ordinate(-10000) }, -15430.806, 0.001),
		Entry("arc length", 0.01, func(c *catenary.Curve) float64 { return c.ArcLength(0.01) }, 0.01, 0.01),
		Entry("area", -10000.0, func(c *catenary.Curve) float64 { return c.Area(-10000, 10000) }, -235040238.7, 0.1),
		Entry("curvature radius", 10000.0, func(c *catenary.Curve) float64 { return c.CurvatureRadius(10000) }, 23810.978, 0.001),
		Entry("arc length relation", 3.0, func(c *catenary.Curve) float64 {
			// y^2 = a^2 + l^2 on a catenary.
			y, l := c.Ordinate(2), c.ArcLength(2)
			return y*y - l*l
		}, 9.0, 1e-9),
	)

	It("orders the curvature centers +dx first", func() {
		c, _ := catenary.New(-20000)
		p := c.CurvatureCenter(-10000)
		Expect(p.First.X).To(BeNumerically("~", 1752.011936438, 1e-9))
		Expect(p.First.Y).To(BeNumerically("~", -45105.038608255, 1e-9))
		Expect(p.Second.X).To(BeNumerically("~", -21752.011936438, 1e-9))
		Expect(p.Second.Y).To(BeNumerically("~", 0, 1e-9))
	})
})
