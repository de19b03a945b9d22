package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/catenary/internal/catenary"
	"github.com/san-kum/catenary/internal/profile"
)

func tabulate(t *testing.T, a, from, to float64, n int) *profile.Profile {
	t.Helper()
	c, _ := catenary.New(a)
	p, err := profile.Tabulate(c, from, to, n)
	require.NoError(t, err)
	return p
}

func TestWriteCSV(t *testing.T) {
	p := tabulate(t, 1, -1, 1, 3)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, p))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)

	assert.Equal(t, []string{"x", "ordinate", "arc_length", "radius"}, records[0])
	assert.Equal(t, []string{"0", "1", "0", "1"}, records[2])
}

func TestWriteCSVOverflow(t *testing.T) {
	p := tabulate(t, 1, -1000, 1000, 2)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, p))
	assert.Contains(t, buf.String(), "-1000,+Inf,-Inf,+Inf")
}

func TestWriteJSON(t *testing.T) {
	p := tabulate(t, -1, -1000, 1000, 3)

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, p))

	var decoded struct {
		Coefficient float64                  `json:"coefficient"`
		Count       int                      `json:"count"`
		Area        any                      `json:"area"`
		Samples     []map[string]interface{} `json:"samples"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, -1.0, decoded.Coefficient)
	assert.Equal(t, 3, decoded.Count)
	require.Len(t, decoded.Samples, 3)
	assert.Equal(t, "-Inf", decoded.Samples[0]["ordinate"])
	assert.Equal(t, -1.0, decoded.Samples[1]["ordinate"])
	assert.Equal(t, "-Inf", decoded.Area)
}

func TestWriteDispatch(t *testing.T) {
	p := tabulate(t, 1, 0, 1, 2)

	for _, f := range Formats {
		var buf bytes.Buffer
		assert.NoError(t, Write(&buf, f, p), "format %s", f)
		assert.NotZero(t, buf.Len())
	}

	assert.Error(t, Write(&bytes.Buffer{}, "xml", p))
}
