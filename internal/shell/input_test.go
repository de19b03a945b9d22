package shell

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPrompter(t *testing.T, input string) (*Prompter, *bytes.Buffer) {
	t.Helper()
	msg, err := Catalog("en")
	require.NoError(t, err)
	var out bytes.Buffer
	return NewPrompter(strings.NewReader(input), &out, msg), &out
}

func TestParseFloat(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		outcome parseOutcome
	}{
		{"1.5", 1.5, parsedOK},
		{"  -10000  ", -10000, parsedOK},
		{"1e3", 1000, parsedOK},
		{"12abc", 0, parsedTrailing},
		{"1 2", 0, parsedTrailing},
		{"abc", 0, parsedInvalid},
		{"", 0, parsedInvalid},
		{"-", 0, parsedInvalid},
		{"inf", 0, parsedInvalid},
		{"NaN", 0, parsedInvalid},
	}

	for _, tt := range tests {
		v, outcome := parseFloat(tt.in)
		assert.Equal(t, tt.outcome, outcome, "input %q", tt.in)
		assert.Equal(t, tt.want, v, "input %q", tt.in)
	}
}

func TestParseInt(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		outcome parseOutcome
	}{
		{"3", 3, parsedOK},
		{"+6", 6, parsedOK},
		{"2.5", 0, parsedTrailing},
		{"x", 0, parsedInvalid},
	}

	for _, tt := range tests {
		v, outcome := parseInt(tt.in)
		assert.Equal(t, tt.outcome, outcome, "input %q", tt.in)
		assert.Equal(t, tt.want, v, "input %q", tt.in)
	}
}

func TestFloatReprompts(t *testing.T) {
	p, out := newTestPrompter(t, "abc\n12abc\n7.25\n")

	v, err := p.Float("Enter the value of 'x':")
	require.NoError(t, err)
	assert.Equal(t, 7.25, v)

	text := out.String()
	assert.Contains(t, text, "Enter the value of 'x':")
	assert.Contains(t, text, "Invalid value received")
	assert.Contains(t, text, "Too many characters received")
}

func TestFloatExceptRejectsZero(t *testing.T) {
	p, out := newTestPrompter(t, "0\n-0\n3\n")

	v, err := p.FloatExcept("Enter the value of coefficient 'a'", 0)
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)

	text := out.String()
	assert.Contains(t, text, "(all values except 0):")
	assert.Equal(t, 2, strings.Count(text, "The value is not allowed."))
}

func TestIntRange(t *testing.T) {
	p, out := newTestPrompter(t, "0\n7\n2.5\n4\n")

	v, err := p.IntRange("Choose a function:", 1, 6)
	require.NoError(t, err)
	assert.Equal(t, 4, v)

	text := out.String()
	assert.Contains(t, text, "Choose a function:[1 ; 6]: ")
	assert.Equal(t, 2, strings.Count(text, "outside the given bounds"))
	assert.Contains(t, text, "Too many characters received")
}

func TestPrompterEOF(t *testing.T) {
	p, _ := newTestPrompter(t, "abc\n")

	_, err := p.Float("x:")
	assert.ErrorIs(t, err, io.EOF)
}

func TestPrompterLastLineWithoutNewline(t *testing.T) {
	p, _ := newTestPrompter(t, "5")

	v, err := p.Float("x:")
	require.NoError(t, err)
	assert.Equal(t, 5.0, v)
}

func TestPrompterCRLF(t *testing.T) {
	p, _ := newTestPrompter(t, "5\r\n")

	v, err := p.IntRange("choice", 1, 6)
	require.NoError(t, err)
	assert.Equal(t, 5, v)
}
