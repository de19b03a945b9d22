package diagram

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/san-kum/catenary/internal/catenary"
	"github.com/san-kum/catenary/internal/profile"
)

// ImageFormats are the file extensions ExportImage accepts.
var ImageFormats = []string{".png", ".svg", ".pdf"}

// ExportImage draws the ordinate of p and the given marks (the vertex,
// curvature centers) to filename. The format follows the extension.
func ExportImage(p *profile.Profile, marks []catenary.Point, filename string) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if !supported(ext) {
		return fmt.Errorf("diagram: unsupported image format %q (use %s)", ext, strings.Join(ImageFormats, ", "))
	}

	curve := make(plotter.XYs, 0, len(p.Samples))
	for _, s := range p.Samples {
		if isFinite(s.X) && isFinite(s.Ordinate) {
			curve = append(curve, plotter.XY{X: s.X, Y: s.Ordinate})
		}
	}
	if len(curve) < 2 {
		return fmt.Errorf("%w: ordinate over [%g, %g]", ErrNoFiniteData, p.From, p.To)
	}

	plt := plot.New()
	plt.Title.Text = fmt.Sprintf("Catenary y = a·cosh(x/a), a = %g", p.Coefficient)
	plt.X.Label.Text = "x"
	plt.Y.Label.Text = "y"
	plt.Add(plotter.NewGrid())

	line, err := plotter.NewLine(curve)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = color.RGBA{R: 0, G: 90, B: 170, A: 255}
	plt.Add(line)
	plt.Legend.Add("y(x)", line)

	pts := make(plotter.XYs, 0, len(marks))
	for _, m := range marks {
		if isFinite(m.X) && isFinite(m.Y) {
			pts = append(pts, plotter.XY{X: m.X, Y: m.Y})
		}
	}
	if len(pts) > 0 {
		scatter, err := plotter.NewScatter(pts)
		if err != nil {
			return err
		}
		scatter.GlyphStyle.Color = color.RGBA{R: 200, G: 40, B: 40, A: 255}
		scatter.GlyphStyle.Radius = vg.Points(4)
		scatter.GlyphStyle.Shape = draw.CircleGlyph{}
		plt.Add(scatter)
		plt.Legend.Add("marks", scatter)
	}

	if dir := filepath.Dir(filename); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	return plt.Save(8*vg.Inch, 6*vg.Inch, filename)
}

func supported(ext string) bool {
	for _, f := range ImageFormats {
		if f == ext {
			return true
		}
	}
	return false
}

func isFinite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}
