// Package pipeline evaluates YAML-declared chains of quantity arithmetic
// and casts the result to a target unit.
package pipeline

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/san-kum/rayleigh/internal/dim"
	"gopkg.in/yaml.v3"
)

const (
	OpMul = "mul"
	OpDiv = "div"
	OpPow = "pow"
	OpNeg = "neg"
)

// Pipeline is a chain of multiplications and divisions over named
// operands, ending in an optional cast to a target unit.
type Pipeline struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description,omitempty"`
	Units       []UnitSpec `yaml:"units,omitempty"`
	Operands    []Operand  `yaml:"operands"`
	Start       string     `yaml:"start"`
	Steps       []Step     `yaml:"steps,omitempty"`
	Target      string     `yaml:"target,omitempty"`
}

// UnitSpec declares a unit local to one pipeline.
type UnitSpec struct {
	Name      string     `yaml:"name"`
	Symbol    string     `yaml:"symbol,omitempty"`
	Aliases   []string   `yaml:"aliases,omitempty"`
	Dimension dim.Vector `yaml:"dimension"`
}

// Operand is a named input value in a catalog unit, optionally prefixed.
type Operand struct {
	Name   string  `yaml:"name"`
	Unit   string  `yaml:"unit"`
	Prefix string  `yaml:"prefix,omitempty"`
	Value  float64 `yaml:"value"`
}

// Step applies one operation to the running value. Exponent is only
// read by pow and must be present there.
type Step struct {
	Op       string   `yaml:"op"`
	Operand  string   `yaml:"operand,omitempty"`
	Exponent *float64 `yaml:"exponent,omitempty"`
}

// Power returns a pow step with exponent k.
func Power(k float64) Step {
	return Step{Op: OpPow, Exponent: &k}
}

func (s Step) String() string {
	switch s.Op {
	case OpPow:
		if s.Exponent == nil {
			return "pow ?"
		}
		return fmt.Sprintf("pow %g", *s.Exponent)
	case OpNeg:
		return "neg"
	default:
		return s.Op + " " + s.Operand
	}
}

// Load reads and validates a pipeline from a YAML file.
func Load(path string) (*Pipeline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes and validates a pipeline from YAML.
func Parse(data []byte) (*Pipeline, error) {
	var p Pipeline
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Marshal encodes the pipeline as YAML.
func (p *Pipeline) Marshal() ([]byte, error) {
	return yaml.Marshal(p)
}

// Validate checks the structure of the pipeline. Unit names are resolved
// later, against a registry.
func (p *Pipeline) Validate() error {
	names := make(map[string]bool, len(p.Operands))
	for _, op := range p.Operands {
		if strings.TrimSpace(op.Name) == "" {
			return fmt.Errorf("%w: operand with empty name", ErrUnknownOperand)
		}
		if names[op.Name] {
			return fmt.Errorf("%w: %s", ErrDuplicateOperand, op.Name)
		}
		names[op.Name] = true
	}

	if p.Start == "" {
		return ErrNoStart
	}
	if !names[p.Start] {
		return &StepError{Step: 0, Op: "start", Wrapped: fmt.Errorf("%w: %s", ErrUnknownOperand, p.Start)}
	}

	for i, s := range p.Steps {
		switch s.Op {
		case OpMul, OpDiv:
			if !names[s.Operand] {
				return &StepError{Step: i + 1, Op: s.Op, Wrapped: fmt.Errorf("%w: %q", ErrUnknownOperand, s.Operand)}
			}
		case OpPow:
			if s.Exponent == nil {
				return &StepError{Step: i + 1, Op: s.Op, Wrapped: ErrMissingExponent}
			}
			if math.IsNaN(*s.Exponent) || math.IsInf(*s.Exponent, 0) {
				return &StepError{Step: i + 1, Op: s.Op, Wrapped: fmt.Errorf("%w: %g", ErrInvalidExponent, *s.Exponent)}
			}
		case OpNeg:
		default:
			return &StepError{Step: i + 1, Op: s.Op, Wrapped: fmt.Errorf("%w: %q", ErrUnknownOp, s.Op)}
		}
	}
	return nil
}

// Clone returns a copy whose operands can be modified independently.
func (p *Pipeline) Clone() *Pipeline {
	c := *p
	c.Operands = append([]Operand(nil), p.Operands...)
	c.Steps = append([]Step(nil), p.Steps...)
	for i, s := range c.Steps {
		if s.Exponent != nil {
			k := *s.Exponent
			c.Steps[i].Exponent = &k
		}
	}
	c.Units = append([]UnitSpec(nil), p.Units...)
	return &c
}

// WithValue returns a copy with the named operand's value replaced.
func (p *Pipeline) WithValue(operand string, value float64) (*Pipeline, error) {
	c := p.Clone()
	for i := range c.Operands {
		if c.Operands[i].Name == operand {
			c.Operands[i].Value = value
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownOperand, operand)
}
