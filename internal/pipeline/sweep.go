package pipeline

import (
	"context"
	"fmt"
	"math"
	"runtime"

	"github.com/san-kum/rayleigh/internal/dim"
	"github.com/san-kum/rayleigh/internal/logging"
	"golang.org/x/sync/errgroup"
)

// SweepSpec varies one operand linearly over [From, To].
type SweepSpec struct {
	Operand string
	From    float64
	To      float64
	Points  int
}

func (s SweepSpec) validate() error {
	if s.Points < 2 {
		return fmt.Errorf("%w: need at least 2 points, got %d", ErrInvalidSweep, s.Points)
	}
	if math.IsNaN(s.From) || math.IsNaN(s.To) || math.IsInf(s.From, 0) || math.IsInf(s.To, 0) {
		return fmt.Errorf("%w: bounds must be finite", ErrInvalidSweep)
	}
	return nil
}

// At returns the input value of point i.
func (s SweepSpec) At(i int) float64 {
	return s.From + (s.To-s.From)*float64(i)/float64(s.Points-1)
}

// SweepResult holds one output magnitude per input value.
type SweepResult struct {
	Pipeline  string
	Operand   string
	Target    string
	Dimension dim.Vector
	Inputs    []float64
	Outputs   []float64
}

// Sweep evaluates p once per point, concurrently. Any failed point, cast
// mismatches included, fails the whole sweep.
func (e *Evaluator) Sweep(ctx context.Context, p *Pipeline, spec SweepSpec) (*SweepResult, error) {
	if err := spec.validate(); err != nil {
		return nil, err
	}
	if _, err := p.WithValue(spec.Operand, spec.From); err != nil {
		return nil, err
	}

	out := &SweepResult{
		Pipeline: p.Name,
		Operand:  spec.Operand,
		Inputs:   make([]float64, spec.Points),
		Outputs:  make([]float64, spec.Points),
	}
	results := make([]*Result, spec.Points)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i := 0; i < spec.Points; i++ {
		x := spec.At(i)
		out.Inputs[i] = x
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			pt, err := p.WithValue(spec.Operand, x)
			if err != nil {
				return err
			}
			res, err := e.evaluate(pt, logging.Nop())
			if err != nil {
				return fmt.Errorf("point %d (%s=%g): %w", i, spec.Operand, x, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i, res := range results {
		out.Outputs[i] = res.Value.Value()
	}
	out.Target = results[0].Target
	out.Dimension = results[0].Value.Dimension()
	e.log.Info("sweep finished", "pipeline", p.Name, "operand", spec.Operand, "points", spec.Points)
	return out, nil
}
