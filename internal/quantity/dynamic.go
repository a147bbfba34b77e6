package quantity

import (
	"cmp"
	"math"
	"strconv"

	"github.com/san-kum/rayleigh/internal/dim"
)

// Erasable is anything that can be viewed as a Dynamic quantity. Both
// Dynamic and every Quantity[U] implement it.
type Erasable interface {
	Erase() Dynamic
}

// Dynamic is a magnitude whose unit is only known at runtime.
type Dynamic struct {
	value float64
	dim   dim.Vector
}

// New returns a Dynamic with the given magnitude and dimension.
func New(value float64, d dim.Vector) Dynamic {
	return Dynamic{value: value, dim: d}
}

func (q Dynamic) Value() float64 { return q.value }

func (q Dynamic) Dimension() dim.Vector { return q.dim }

// Erase returns q itself.
func (q Dynamic) Erase() Dynamic { return q }

// Mul multiplies magnitudes and sums exponents. It never fails.
func (q Dynamic) Mul(o Erasable) Dynamic {
	r := o.Erase()
	return Dynamic{value: q.value * r.value, dim: q.dim.Mul(r.dim)}
}

// Div divides magnitudes and subtracts exponents. A zero divisor yields
// ±Inf or NaN; the dimension is still combined.
func (q Dynamic) Div(o Erasable) Dynamic {
	r := o.Erase()
	return Dynamic{value: q.value / r.value, dim: q.dim.Div(r.dim)}
}

func (q Dynamic) Neg() Dynamic {
	return Dynamic{value: -q.value, dim: q.dim}
}

// Pow raises the magnitude to k and scales every exponent by k.
func (q Dynamic) Pow(k float64) Dynamic {
	return Dynamic{value: math.Pow(q.value, k), dim: q.dim.Scale(k)}
}

// Scale multiplies the magnitude by a dimensionless factor.
func (q Dynamic) Scale(k float64) Dynamic {
	return Dynamic{value: q.value * k, dim: q.dim}
}

// IsFinite reports whether the magnitude is neither NaN nor infinite.
func (q Dynamic) IsFinite() bool {
	return !math.IsNaN(q.value) && !math.IsInf(q.value, 0)
}

// Compare orders by magnitude, then by dimension. NaN sorts before every
// other magnitude and equals itself, so the order is total.
func (q Dynamic) Compare(o Dynamic) int {
	if c := cmp.Compare(q.value, o.value); c != 0 {
		return c
	}
	return q.dim.Compare(o.dim)
}

func (q Dynamic) String() string {
	s := strconv.FormatFloat(q.value, 'g', -1, 64)
	if q.dim.IsDimensionless() {
		return s
	}
	return s + " " + q.dim.String()
}

// Mul multiplies any two quantities into a Dynamic.
func Mul(a, b Erasable) Dynamic {
	return a.Erase().Mul(b)
}

// Div divides any two quantities into a Dynamic.
func Div(a, b Erasable) Dynamic {
	return a.Erase().Div(b)
}
