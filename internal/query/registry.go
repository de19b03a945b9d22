// Package query names the calculator's operations so every front end (the
// line shell, the TUI, the eval command) dispatches through one table.
package query

import (
	"errors"
	"fmt"
	"strings"

	"github.com/san-kum/catenary/internal/catenary"
)

var (
	ErrUnknownOperation = errors.New("query: unknown operation")
	ErrArgCount         = errors.New("query: wrong number of arguments")
)

// Menu identifiers. Exit is 1 so the numbering matches the printed menu.
const (
	Exit = iota + 1
	Ordinate
	ArcLength
	CurvatureRadius
	CurvatureCenter
	Area
)

type Operation struct {
	ID   int
	Name string
	// Args names the abscissas the operation reads, in order.
	Args []string
	eval func(c *catenary.Curve, args []float64) Result
}

// Eval runs the operation against c. It fails only on a wrong argument
// count; numeric overflow is part of the result.
func (op *Operation) Eval(c *catenary.Curve, args []float64) (Result, error) {
	if op.eval == nil {
		return Result{}, fmt.Errorf("%w: %s has no result", ErrUnknownOperation, op.Name)
	}
	if len(args) != len(op.Args) {
		return Result{}, fmt.Errorf("%w: %s takes %d, got %d", ErrArgCount, op.Name, len(op.Args), len(args))
	}
	return op.eval(c, args), nil
}

type Registry struct {
	ops    []*Operation
	byName map[string]*Operation
}

func NewRegistry() *Registry {
	r := &Registry{byName: make(map[string]*Operation)}

	r.add(&Operation{ID: Exit, Name: "exit"})
	r.add(&Operation{
		ID: Ordinate, Name: "ordinate", Args: []string{"x"},
		eval: func(c *catenary.Curve, args []float64) Result {
			return scalar(Ordinate, c.Ordinate(args[0]), true)
		},
	})
	r.add(&Operation{
		ID: ArcLength, Name: "arc-length", Args: []string{"x"},
		eval: func(c *catenary.Curve, args []float64) Result {
			return scalar(ArcLength, c.ArcLength(args[0]), false)
		},
	})
	r.add(&Operation{
		ID: CurvatureRadius, Name: "radius", Args: []string{"x"},
		eval: func(c *catenary.Curve, args []float64) Result {
			return scalar(CurvatureRadius, c.CurvatureRadius(args[0]), true)
		},
	})
	r.add(&Operation{
		ID: CurvatureCenter, Name: "center", Args: []string{"x"},
		eval: func(c *catenary.Curve, args []float64) Result {
			p := c.CurvatureCenter(args[0])
			return Result{Op: CurvatureCenter, Centers: &p}
		},
	})
	r.add(&Operation{
		ID: Area, Name: "area", Args: []string{"x1", "x2"},
		eval: func(c *catenary.Curve, args []float64) Result {
			return scalar(Area, c.Area(args[0], args[1]), true)
		},
	})

	return r
}

func (r *Registry) add(op *Operation) {
	r.ops = append(r.ops, op)
	r.byName[op.Name] = op
}

// Operations returns the operations in menu order.
func (r *Registry) Operations() []*Operation {
	out := make([]*Operation, len(r.ops))
	copy(out, r.ops)
	return out
}

func (r *Registry) ByID(id int) (*Operation, error) {
	for _, op := range r.ops {
		if op.ID == id {
			return op, nil
		}
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownOperation, id)
}

func (r *Registry) ByName(name string) (*Operation, error) {
	op, ok := r.byName[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownOperation, name)
	}
	return op, nil
}

// Names lists the evaluable operations (exit excluded).
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.ops))
	for _, op := range r.ops {
		if op.eval != nil {
			names = append(names, op.Name)
		}
	}
	return names
}
