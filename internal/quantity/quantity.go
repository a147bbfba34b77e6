package quantity

import "github.com/san-kum/rayleigh/internal/dim"

// Quantity is a magnitude whose dimension is fixed by the marker type U.
// Only the magnitude is stored, so every Quantity[U], including the zero
// value, has dimension DimensionOf[U]().
type Quantity[U Unit] struct {
	value float64
}

// Of constructs a Quantity without any check; the caller picks the unit.
func Of[U Unit](value float64) Quantity[U] {
	return Quantity[U]{value: value}
}

func (q Quantity[U]) Value() float64 { return q.value }

func (q Quantity[U]) Dimension() dim.Vector { return DimensionOf[U]() }

// Erase forgets the marker type.
func (q Quantity[U]) Erase() Dynamic {
	return Dynamic{value: q.value, dim: DimensionOf[U]()}
}

func (q Quantity[U]) Add(o Quantity[U]) Quantity[U] {
	return Quantity[U]{value: q.value + o.value}
}

func (q Quantity[U]) Sub(o Quantity[U]) Quantity[U] {
	return Quantity[U]{value: q.value - o.value}
}

func (q Quantity[U]) Neg() Quantity[U] {
	return Quantity[U]{value: -q.value}
}

// Mul erases both operands and multiplies them. The result is not cast
// back to a marker type; use TryCast.
func (q Quantity[U]) Mul(o Erasable) Dynamic {
	return q.Erase().Mul(o)
}

// Div erases both operands and divides them.
func (q Quantity[U]) Div(o Erasable) Dynamic {
	return q.Erase().Div(o)
}

func (q Quantity[U]) String() string {
	return q.Erase().String()
}

// Sum adds quantities of the same unit. An empty call returns zero.
func Sum[U Unit](qs ...Quantity[U]) Quantity[U] {
	var total Quantity[U]
	for _, q := range qs {
		total = total.Add(q)
	}
	return total
}
