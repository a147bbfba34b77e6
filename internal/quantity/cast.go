package quantity

import "github.com/san-kum/rayleigh/internal/dim"

// Check verifies that q has dimension want. It is the runtime form of the
// cast used when the target unit is only known by name.
func Check(q Erasable, target string, want dim.Vector) error {
	got := q.Erase().Dimension()
	if got.Equal(want) {
		return nil
	}
	return &MismatchError{Target: target, Expected: want, Observed: got}
}

// TryCast binds q to marker U if its dimension equals U's declared one.
// On mismatch the error is a *MismatchError.
func TryCast[U Unit](q Erasable) (Quantity[U], error) {
	d := q.Erase()
	if err := Check(d, NameOf[U](), DimensionOf[U]()); err != nil {
		return Quantity[U]{}, err
	}
	return Quantity[U]{value: d.value}, nil
}

// Cast is TryCast for call sites where the dimension is already known to
// match. A mismatch there is a programming error and Cast panics with the
// *MismatchError.
func Cast[U Unit](q Erasable) Quantity[U] {
	out, err := TryCast[U](q)
	if err != nil {
		panic(err)
	}
	return out
}

// TryCastValue casts q to U and returns the bare magnitude.
func TryCastValue[U Unit](q Erasable) (float64, error) {
	out, err := TryCast[U](q)
	if err != nil {
		return 0, err
	}
	return out.Value(), nil
}

// CastValue is Cast returning the bare magnitude. It panics with the
// *MismatchError on a dimension mismatch.
func CastValue[U Unit](q Erasable) float64 {
	return Cast[U](q).Value()
}

// Relabel moves a quantity to another marker with the same dimension,
// e.g. NewtonMeter to Joule. Markers with different dimensions fail with a
// *MismatchError.
func Relabel[To, From Unit](q Quantity[From]) (Quantity[To], error) {
	return TryCast[To](q)
}
