package quantity

import (
	"errors"
	"fmt"

	"github.com/san-kum/rayleigh/internal/dim"
)

// ErrDimensionMismatch indicates a cast whose target dimension differs from
// the dimension of the value being cast.
var ErrDimensionMismatch = errors.New("quantity: dimension mismatch")

// MismatchError reports a failed cast with both sides of the comparison.
type MismatchError struct {
	Target   string
	Expected dim.Vector
	Observed dim.Vector
}

func (e *MismatchError) Error() string {
	got, want := dim.FormatUnion(e.Observed, e.Expected)
	if e.Target == "" {
		return fmt.Sprintf("quantity: cannot cast: expected %s, got %s", want, got)
	}
	return fmt.Sprintf("quantity: cannot cast to %s: expected %s, got %s", e.Target, want, got)
}

func (e *MismatchError) Unwrap() error {
	return ErrDimensionMismatch
}
