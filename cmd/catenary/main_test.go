package main

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestEval(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"ordinate", []string{"eval", "ordinate", "0"}, "1\n"},
		{"arc length keeps sign", []string{"eval", "arc-length", "0"}, "0\n"},
		{"ordinate shown as magnitude", []string{"eval", "-a", "-1", "ordinate", "0"}, "1\n"},
		{"raw ordinate", []string{"eval", "-a", "-1", "--raw", "ordinate", "0"}, "-1\n"},
		{"negative abscissa", []string{"eval", "-a", "2", "radius", "-0"}, "2\n"},
		{"center at vertex", []string{"eval", "center", "0"}, "(0; 0),\n(0; 2)\n"},
		{"preset", []string{"eval", "--preset", "chain", "ordinate", "0"}, "2.5\n"},
		{"upper case name", []string{"eval", "AREA", "0", "0"}, "0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := execute(t, "", tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvalErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown operation", []string{"eval", "slope", "1"}},
		{"missing argument", []string{"eval", "area", "1"}},
		{"bad number", []string{"eval", "ordinate", "one"}},
		{"unknown preset", []string{"eval", "--preset", "rope", "ordinate", "0"}},
		{"bad language", []string{"eval", "--lang", "de", "ordinate", "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, "", tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestZeroCoefficientFallsBack(t *testing.T) {
	got, err := execute(t, "", "eval", "-a", "0", "ordinate", "0")
	require.NoError(t, err)
	assert.Equal(t, "1\n", got)
}

func TestShell(t *testing.T) {
	got, err := execute(t, "1\n2\n0\n1\n", "shell")
	require.NoError(t, err)
	assert.Contains(t, got, "Result: 1")
}

func TestShellWithCoefficientFlag(t *testing.T) {
	got, err := execute(t, "2\n0\n1\n", "shell", "-a", "3")
	require.NoError(t, err)
	assert.Contains(t, got, "Result: 3")
}

func TestTable(t *testing.T) {
	got, err := execute(t, "", "table", "--from", "-1", "--to", "1", "-n", "3")
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(got)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, "x", records[0][0])
	assert.Equal(t, []string{"0", "1", "0", "1"}, records[2])
}

func TestTableToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.json")

	got, err := execute(t, "", "table", "-f", "json", "-o", path)
	require.NoError(t, err)
	assert.Empty(t, got)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"count": 101`)
}

func TestPlot(t *testing.T) {
	got, err := execute(t, "", "plot", "--column", "arc_length")
	require.NoError(t, err)
	assert.Contains(t, got, "arc_length, a = 1")

	path := filepath.Join(t.TempDir(), "curve.png")
	_, err = execute(t, "", "plot", "-o", path, "--center", "1", "--center", "-1")
	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestPresets(t *testing.T) {
	got, err := execute(t, "", "presets")
	require.NoError(t, err)
	assert.Contains(t, got, "power-line")
	assert.Contains(t, got, "1200")
}

func TestVersion(t *testing.T) {
	got, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "catenary "))
}
