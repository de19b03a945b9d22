// Package tui is the full-screen front end: pick an operation, type its
// abscissas, read the result, with a live chart of the current curve.
package tui

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/catenary/internal/catenary"
	"github.com/san-kum/catenary/internal/config"
	"github.com/san-kum/catenary/internal/diagram"
	"github.com/san-kum/catenary/internal/logging"
	"github.com/san-kum/catenary/internal/profile"
	"github.com/san-kum/catenary/internal/query"
)

var opInfo = map[int]string{
	query.Ordinate:        "y = a·cosh(x/a)",
	query.ArcLength:       "l = a·sinh(x/a)",
	query.CurvatureRadius: "R = a·cosh²(x/a)",
	query.CurvatureCenter: "two candidate centers",
	query.Area:            "S = a²(sinh(x₂/a) − sinh(x₁/a))",
}

type state int

const (
	stateMenu state = iota
	stateInput
	stateResult
)

type model struct {
	state  state
	cursor int
	ops    []*query.Operation

	curve *catenary.Curve
	plot  config.PlotConfig
	log   *slog.Logger

	// op is nil while the coefficient is being edited.
	op       *query.Operation
	args     []float64
	argIdx   int
	editBuf  string
	inputErr string

	result query.Result
	notice string

	preview    string
	previewErr error
}

func NewInteractiveApp(c *catenary.Curve, plot config.PlotConfig, logger *slog.Logger) *model {
	if logger == nil {
		logger = logging.Discard()
	}
	m := &model{
		state: stateMenu,
		curve: c,
		plot:  plot,
		log:   logger,
	}
	for _, op := range query.NewRegistry().Operations() {
		if op.ID != query.Exit {
			m.ops = append(m.ops, op)
		}
	}
	m.refreshPreview()
	return m
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		// Leave room for the menu and the axis labels.
		if w := msg.Width - 20; w >= 20 {
			m.plot.Width = w
			m.refreshPreview()
		}
		return m, nil
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	switch m.state {
	case stateMenu:
		return m.menuKey(msg)
	case stateInput:
		return m.inputKey(msg)
	case stateResult:
		return m.resultKey(msg)
	}
	return m, nil
}

func (m model) menuKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.ops)-1 {
			m.cursor++
		}
	case "enter", " ":
		op := m.ops[m.cursor]
		m.beginInput(op)
	case "a", "c":
		m.beginInput(nil)
		m.editBuf = strconv.FormatFloat(m.curve.Coefficient(), 'g', -1, 64)
	}
	return m, nil
}

func (m *model) beginInput(op *query.Operation) {
	m.state = stateInput
	m.op = op
	m.argIdx = 0
	m.editBuf = ""
	m.inputErr = ""
	m.notice = ""
	if op != nil {
		m.args = make([]float64, len(op.Args))
	}
}

func (m model) inputKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.state = stateMenu
		m.editBuf = ""
		m.inputErr = ""
	case "backspace":
		if len(m.editBuf) > 0 {
			m.editBuf = m.editBuf[:len(m.editBuf)-1]
		}
	case "enter":
		return m.commit()
	default:
		if len(msg.String()) == 1 {
			c := msg.String()[0]
			if (c >= '0' && c <= '9') || c == '.' || c == '-' || c == '+' || c == 'e' || c == 'E' {
				m.editBuf += string(c)
			}
		}
	}
	return m, nil
}

func (m model) commit() (model, tea.Cmd) {
	v, err := strconv.ParseFloat(strings.TrimSpace(m.editBuf), 64)
	if err != nil {
		m.inputErr = "invalid value, please re-enter"
		return m, nil
	}
	m.inputErr = ""
	m.editBuf = ""

	if m.op == nil {
		m.setCoefficient(v)
		m.state = stateMenu
		return m, nil
	}

	m.args[m.argIdx] = v
	m.argIdx++
	if m.argIdx < len(m.args) {
		return m, nil
	}

	res, err := m.op.Eval(m.curve, m.args)
	if err != nil {
		m.inputErr = err.Error()
		m.state = stateMenu
		return m, nil
	}
	m.log.Debug("evaluated", "op", m.op.Name, "args", m.args, "a", m.curve.Coefficient())
	m.result = res
	m.state = stateResult
	return m, nil
}

func (m *model) setCoefficient(a float64) {
	err := m.curve.SetCoefficient(a)
	var ce *catenary.CoefficientError
	if errors.As(err, &ce) {
		m.log.Warn("coefficient rejected", "rejected", ce.Rejected, "substitute", ce.Substitute)
		m.notice = fmt.Sprintf("a = %g is not allowed, a is now %g", ce.Rejected, ce.Substitute)
	}
	m.refreshPreview()
}

func (m model) resultKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "enter", "esc", " ":
		m.state = stateMenu
	case "r":
		m.beginInput(m.op)
	}
	return m, nil
}

func (m *model) refreshPreview() {
	p, err := profile.Tabulate(m.curve, m.plot.From, m.plot.To, m.plot.Samples)
	if err == nil {
		m.preview, err = diagram.ASCII(p, profile.ColumnOrdinate, m.plot.Width, m.plot.Height)
	}
	m.previewErr = err
}

func (m model) View() string {
	switch m.state {
	case stateMenu:
		return m.viewMenu()
	case stateInput:
		return m.viewInput()
	case stateResult:
		return m.viewResult()
	}
	return ""
}

func (m model) header(b *strings.Builder) {
	b.WriteString("\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("           " + cyan.Render("c a t e n a r y") + "\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("      " + dim.Render("a = ") + magenta.Render(strconv.FormatFloat(m.curve.Coefficient(), 'g', -1, 64)) + "\n\n")
}

func (m model) viewMenu() string {
	var b strings.Builder
	m.header(&b)

	for i, op := range m.ops {
		if i == m.cursor {
			b.WriteString("      " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-12s", op.Name)) + dim.Render(opInfo[op.ID]) + "\n")
		} else {
			b.WriteString("        " + dim.Render(fmt.Sprintf("%-12s", op.Name)) + dimmer.Render(opInfo[op.ID]) + "\n")
		}
	}

	if m.notice != "" {
		b.WriteString("\n      " + yellow.Render(m.notice) + "\n")
	}

	b.WriteString("\n" + separator(m.plot.Width) + "\n\n")
	if m.previewErr != nil {
		b.WriteString("      " + dim.Render(m.previewErr.Error()) + "\n")
	} else {
		b.WriteString(m.preview + "\n")
	}

	b.WriteString("\n" + keyHint.Render("      ↑↓ select   enter evaluate   a coefficient   q quit") + "\n")
	return b.String()
}

func (m model) viewInput() string {
	var b strings.Builder
	m.header(&b)

	if m.op == nil {
		b.WriteString("      " + cyan.Render("coefficient") + "  " + dim.Render("all values except 0") + "\n\n")
		b.WriteString("      " + white.Render(fmt.Sprintf("%-4s", "a")) + magenta.Render(m.editBuf+"▋") + "\n")
	} else {
		b.WriteString("      " + cyan.Render(m.op.Name) + "  " + dim.Render(opInfo[m.op.ID]) + "\n\n")
		for i, name := range m.op.Args {
			var val string
			switch {
			case i < m.argIdx:
				val = dim.Render(query.FormatFloat(m.args[i]))
			case i == m.argIdx:
				val = magenta.Render(m.editBuf + "▋")
			}
			b.WriteString("      " + white.Render(fmt.Sprintf("%-4s", name)) + val + "\n")
		}
	}

	if m.inputErr != "" {
		b.WriteString("\n      " + yellow.Render(m.inputErr) + "\n")
	}

	b.WriteString("\n" + keyHint.Render("      enter confirm   esc back") + "\n")
	return b.String()
}

func (m model) viewResult() string {
	var b strings.Builder
	m.header(&b)

	name := ""
	if m.op != nil {
		name = m.op.Name
	}
	args := make([]string, len(m.args))
	for i, v := range m.args {
		args[i] = query.FormatFloat(v)
	}
	b.WriteString("      " + cyan.Render(name) + dim.Render("("+strings.Join(args, ", ")+")") + "\n\n")
	b.WriteString(panel.Render(green.Render(strings.Join(m.result.Lines(), "\n"))) + "\n")

	b.WriteString("\n" + keyHint.Render("      enter back   r again   q quit") + "\n")
	return b.String()
}

func RunInteractive(c *catenary.Curve, plot config.PlotConfig, logger *slog.Logger) error {
	p := tea.NewProgram(NewInteractiveApp(c, plot, logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
