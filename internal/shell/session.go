// Package shell is the line-oriented front end: it prints a numbered menu,
// reads and validates numbers with re-prompting, and prints results.
package shell

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/san-kum/catenary/internal/catenary"
	"github.com/san-kum/catenary/internal/logging"
	"github.com/san-kum/catenary/internal/query"
)

type Options struct {
	Lang   string
	Logger *slog.Logger

	// AskCoefficient prompts for the coefficient at start. Otherwise
	// Coefficient is used as given.
	AskCoefficient bool
	Coefficient    float64
}

type Session struct {
	prompt *Prompter
	out    io.Writer
	msg    *Messages
	reg    *query.Registry
	log    *slog.Logger
	opts   Options

	curve *catenary.Curve
}

func New(r io.Reader, w io.Writer, opts Options) (*Session, error) {
	if opts.Lang == "" {
		opts.Lang = "en"
	}
	msg, err := Catalog(opts.Lang)
	if err != nil {
		return nil, err
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}

	return &Session{
		prompt: NewPrompter(r, w, msg),
		out:    w,
		msg:    msg,
		reg:    query.NewRegistry(),
		log:    opts.Logger,
		opts:   opts,
	}, nil
}

// Curve returns the session's curve, nil before Run has set it up.
func (s *Session) Curve() *catenary.Curve {
	return s.curve
}

// Run drives the menu loop until the user exits or input ends. Running out
// of input is a normal end of session, not an error.
func (s *Session) Run() error {
	err := s.run()
	if errors.Is(err, io.EOF) {
		s.log.Debug("input closed, ending session")
		return nil
	}
	return err
}

func (s *Session) run() error {
	a := s.opts.Coefficient
	if s.opts.AskCoefficient {
		var err error
		a, err = s.prompt.FloatExcept(s.msg.CoefficientPrompt, 0)
		if err != nil {
			return err
		}
	}
	s.setCoefficient(a)

	for {
		s.printMenu()

		choice, err := s.prompt.IntRange(s.msg.ChoicePrompt, query.Exit, query.Area)
		if err != nil {
			return err
		}

		op, err := s.reg.ByID(choice)
		if err != nil {
			return err
		}
		if op.ID == query.Exit {
			s.log.Debug("exit selected")
			return nil
		}

		args := make([]float64, len(op.Args))
		for i := range op.Args {
			if args[i], err = s.prompt.Float(s.msg.ArgPrompt(op, i)); err != nil {
				return err
			}
		}

		res, err := op.Eval(s.curve, args)
		if err != nil {
			return err
		}
		s.log.Debug("evaluated", "op", op.Name, "args", args, "a", s.curve.Coefficient())
		s.printResult(res)
	}
}

func (s *Session) setCoefficient(a float64) {
	c, err := catenary.New(a)
	s.curve = c
	if err == nil {
		return
	}

	var ce *catenary.CoefficientError
	if errors.As(err, &ce) {
		s.log.Warn("coefficient rejected", "rejected", ce.Rejected, "substitute", ce.Substitute)
		fmt.Fprintf(s.out, s.msg.CoefficientFallback+"\n", query.FormatFloat(ce.Substitute))
	}
}

func (s *Session) printMenu() {
	var b strings.Builder
	b.WriteString("\n")
	for _, op := range s.reg.Operations() {
		fmt.Fprintf(&b, "%d. %s\n", op.ID, s.msg.Operations[op.ID])
	}
	fmt.Fprintln(s.out, b.String())
}

func (s *Session) printResult(res query.Result) {
	lines := res.Lines()
	if res.IsPair() {
		fmt.Fprintln(s.out, s.msg.Result)
		for _, l := range lines {
			fmt.Fprintln(s.out, l)
		}
		return
	}
	fmt.Fprintln(s.out, s.msg.Result+" "+lines[0])
}
