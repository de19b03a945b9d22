package config

import "sort"

// Presets are named shape coefficients for common hanging shapes.
var Presets = map[string]float64{
	"unit":       1,
	"chain":      2.5,
	"power-line": 1200,
	"shallow":    50,
	"arch":       -40, // inverted, vertex on top
}

func GetPreset(name string) (float64, bool) {
	a, ok := Presets[name]
	return a, ok
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
