package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/san-kum/catenary/internal/query"
)

type parseOutcome int

const (
	parsedOK parseOutcome = iota
	parsedTrailing
	parsedInvalid
)

// Prompter reads one value per line, re-prompting until the line holds a
// single acceptable value. io.EOF is returned when input runs out.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
	msg *Messages
}

func NewPrompter(r io.Reader, w io.Writer, msg *Messages) *Prompter {
	return &Prompter{in: bufio.NewReader(r), out: w, msg: msg}
}

// Float reads any finite number.
func (p *Prompter) Float(prompt string) (float64, error) {
	fmt.Fprint(p.out, prompt+" ")
	return p.readFloat(func(float64) bool { return true })
}

// FloatExcept reads a finite number that is not one of except.
func (p *Prompter) FloatExcept(prompt string, except ...float64) (float64, error) {
	vals := make([]string, len(except))
	for i, v := range except {
		vals[i] = query.FormatFloat(v)
	}
	fmt.Fprint(p.out, prompt+fmt.Sprintf(p.msg.ExceptFormat, strings.Join(vals, ", "))+" ")

	return p.readFloat(func(v float64) bool {
		for _, e := range except {
			if v == e {
				fmt.Fprintln(p.out, p.msg.NotAllowed)
				return false
			}
		}
		return true
	})
}

// IntRange reads an integer in [lo, hi].
func (p *Prompter) IntRange(prompt string, lo, hi int) (int, error) {
	fmt.Fprintf(p.out, "%s[%d ; %d]: ", prompt, lo, hi)

	for {
		line, err := p.line()
		if err != nil {
			return 0, err
		}

		v, outcome := parseInt(line)
		switch outcome {
		case parsedTrailing:
			fmt.Fprintln(p.out, p.msg.TooManyChars)
		case parsedInvalid:
			fmt.Fprintln(p.out, p.msg.InvalidValue)
		default:
			if v < lo || v > hi {
				fmt.Fprintln(p.out, p.msg.OutOfRange)
				continue
			}
			return v, nil
		}
	}
}

func (p *Prompter) readFloat(accept func(float64) bool) (float64, error) {
	for {
		line, err := p.line()
		if err != nil {
			return 0, err
		}

		v, outcome := parseFloat(line)
		switch outcome {
		case parsedTrailing:
			fmt.Fprintln(p.out, p.msg.TooManyChars)
		case parsedInvalid:
			fmt.Fprintln(p.out, p.msg.InvalidValue)
		default:
			if accept(v) {
				return v, nil
			}
		}
	}
}

// line returns the next line without its terminator. A final line without
// a newline is still returned; io.EOF only comes once nothing is left.
func (p *Prompter) line() (string, error) {
	s, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && s != "" {
			return strings.TrimRight(s, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(s, "\r\n"), nil
}

func parseFloat(line string) (float64, parseOutcome) {
	return parseWith(line, func(s string) (float64, bool) {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
			return 0, false
		}
		return v, true
	})
}

func parseInt(line string) (int, parseOutcome) {
	v, outcome := parseWith(line, func(s string) (float64, bool) {
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, false
		}
		return float64(n), true
	})
	return int(v), outcome
}

// parseWith accepts a line holding exactly one value. A line that starts
// with a value but carries anything after it is reported as trailing input.
func parseWith(line string, parse func(string) (float64, bool)) (float64, parseOutcome) {
	s := strings.TrimSpace(line)
	if s == "" {
		return 0, parsedInvalid
	}
	if v, ok := parse(s); ok {
		return v, parsedOK
	}
	for end := len(s) - 1; end > 0; end-- {
		if _, ok := parse(s[:end]); ok {
			return 0, parsedTrailing
		}
	}
	return 0, parsedInvalid
}
