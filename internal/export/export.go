// Package export writes a tabulated profile as CSV or JSON.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/san-kum/catenary/internal/profile"
)

// Formats lists the accepted format names.
var Formats = []string{"csv", "json"}

// Write dispatches on format.
func Write(w io.Writer, format string, p *profile.Profile) error {
	switch format {
	case "csv":
		return WriteCSV(w, p)
	case "json":
		return WriteJSON(w, p)
	}
	return fmt.Errorf("export: unknown format %q (available: %v)", format, Formats)
}

func WriteCSV(w io.Writer, p *profile.Profile) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(profile.Columns); err != nil {
		return err
	}
	for _, s := range p.Samples {
		row := []string{
			formatFloat(s.X),
			formatFloat(s.Ordinate),
			formatFloat(s.ArcLength),
			formatFloat(s.Radius),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// Number marshals a float64, spelling out infinities and NaN as strings
// since JSON has no literal for them.
type Number float64

func (n Number) MarshalJSON() ([]byte, error) {
	v := float64(n)
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return json.Marshal(formatFloat(v))
	}
	return json.Marshal(v)
}

type sampleJSON struct {
	X         Number `json:"x"`
	Ordinate  Number `json:"ordinate"`
	ArcLength Number `json:"arc_length"`
	Radius    Number `json:"radius"`
}

type Data struct {
	Coefficient float64      `json:"coefficient"`
	From        float64      `json:"from"`
	To          float64      `json:"to"`
	Area        Number       `json:"area"`
	Count       int          `json:"count"`
	Samples     []sampleJSON `json:"samples"`
}

func WriteJSON(w io.Writer, p *profile.Profile) error {
	data := Data{
		Coefficient: p.Coefficient,
		From:        p.From,
		To:          p.To,
		Area:        Number(p.Area()),
		Count:       len(p.Samples),
		Samples:     make([]sampleJSON, len(p.Samples)),
	}

	for i, s := range p.Samples {
		data.Samples[i] = sampleJSON{
			X:         Number(s.X),
			Ordinate:  Number(s.Ordinate),
			ArcLength: Number(s.ArcLength),
			Radius:    Number(s.Radius),
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
