package pipeline

import (
	"fmt"

	"github.com/san-kum/rayleigh/internal/dim"
	"github.com/san-kum/rayleigh/internal/logging"
	"github.com/san-kum/rayleigh/internal/prefix"
	"github.com/san-kum/rayleigh/internal/quantity"
	"github.com/san-kum/rayleigh/internal/units"
)

// TraceStep records the running value after one step.
type TraceStep struct {
	Index int
	Label string
	Value quantity.Dynamic
}

// Result is the outcome of one evaluation.
type Result struct {
	Pipeline string
	Trace    []TraceStep
	Value    quantity.Dynamic
	Target   string
	Expected dim.Vector
	Matches  []string
	Err      error
}

// OK reports whether the evaluation reached its target without error.
func (r *Result) OK() bool { return r.Err == nil }

// Evaluator runs pipelines against a unit registry.
type Evaluator struct {
	registry *units.Registry
	log      *logging.Logger
}

// NewEvaluator returns an evaluator. A nil registry uses the built-in
// catalog and a nil logger discards output.
func NewEvaluator(reg *units.Registry, log *logging.Logger) *Evaluator {
	if reg == nil {
		reg = units.NewRegistry()
	}
	if log == nil {
		log = logging.Nop()
	}
	return &Evaluator{registry: reg, log: log}
}

// Evaluate runs p. When the final cast fails, the returned Result carries
// the trace and the same error as the second return value.
func (e *Evaluator) Evaluate(p *Pipeline) (*Result, error) {
	return e.evaluate(p, e.log.With("pipeline", p.Name))
}

func (e *Evaluator) evaluate(p *Pipeline, log *logging.Logger) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	reg, err := e.scope(p)
	if err != nil {
		return nil, err
	}

	operands, err := resolve(reg, p.Operands)
	if err != nil {
		return nil, err
	}

	res := &Result{Pipeline: p.Name}
	acc := operands[p.Start]
	res.Trace = append(res.Trace, TraceStep{Index: 0, Label: "start " + p.Start, Value: acc})
	log.Debug("start", "operand", p.Start, "value", acc.String())

	for i, s := range p.Steps {
		switch s.Op {
		case OpMul:
			acc = acc.Mul(operands[s.Operand])
		case OpDiv:
			acc = acc.Div(operands[s.Operand])
		case OpPow:
			acc = acc.Pow(*s.Exponent)
		case OpNeg:
			acc = acc.Neg()
		}
		res.Trace = append(res.Trace, TraceStep{Index: i + 1, Label: s.String(), Value: acc})
		log.Debug("step", "index", i+1, "op", s.String(), "value", acc.String())
	}

	res.Value = acc
	for _, def := range reg.Matching(acc.Dimension()) {
		res.Matches = append(res.Matches, def.Name)
	}

	if p.Target == "" {
		return res, nil
	}

	def, err := reg.Lookup(p.Target)
	if err != nil {
		return nil, &StepError{Step: len(p.Steps) + 1, Op: "cast", Wrapped: err}
	}
	res.Target = def.Name
	res.Expected = def.Dimension

	if err := def.Cast(acc); err != nil {
		log.Warn("cast failed", "target", def.Name, "error", err)
		res.Err = &StepError{Step: len(p.Steps) + 1, Op: "cast", Wrapped: err}
		return res, res.Err
	}
	log.Debug("cast", "target", def.Name, "value", acc.Value())
	return res, nil
}

func (e *Evaluator) scope(p *Pipeline) (*units.Registry, error) {
	if len(p.Units) == 0 {
		return e.registry, nil
	}
	reg := e.registry.Clone()
	for _, u := range p.Units {
		def := units.Def{Name: u.Name, Symbol: u.Symbol, Dimension: u.Dimension, Aliases: u.Aliases}
		if err := reg.Register(def); err != nil {
			return nil, fmt.Errorf("pipeline %s: %w", p.Name, err)
		}
	}
	return reg, nil
}

func resolve(reg *units.Registry, ops []Operand) (map[string]quantity.Dynamic, error) {
	out := make(map[string]quantity.Dynamic, len(ops))
	for _, op := range ops {
		def, err := reg.Lookup(op.Unit)
		if err != nil {
			return nil, fmt.Errorf("operand %s: %w", op.Name, err)
		}
		pfx, err := prefix.Parse(op.Prefix)
		if err != nil {
			return nil, fmt.Errorf("operand %s: %w", op.Name, err)
		}
		out[op.Name] = prefix.Apply(pfx, def.Of(op.Value))
	}
	return out, nil
}
