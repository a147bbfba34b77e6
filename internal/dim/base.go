package dim

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownBase indicates a name that is not one of the seven base dimensions.
var ErrUnknownBase = errors.New("dim: unknown base dimension")

// Base identifies one of the seven SI base dimensions. Its value is the
// slot it occupies in a Vector.
type Base int

const (
	Length Base = iota
	Mass
	Time
	Current
	Temperature
	Amount
	LuminousIntensity
)

// NumBases is the number of SI base dimensions.
const NumBases = 7

var baseNames = [NumBases]string{
	"length",
	"mass",
	"time",
	"current",
	"temperature",
	"amount",
	"luminous_intensity",
}

var baseSymbols = [NumBases]string{"L", "M", "T", "I", "Θ", "N", "J"}

func (b Base) Valid() bool { return b >= 0 && b < NumBases }

func (b Base) String() string {
	if !b.Valid() {
		return fmt.Sprintf("base(%d)", int(b))
	}
	return baseNames[b]
}

// Symbol returns the conventional dimension symbol (L, M, T, ...).
func (b Base) Symbol() string {
	if !b.Valid() {
		return "?"
	}
	return baseSymbols[b]
}

// Bases returns all base dimensions in slot order.
func Bases() []Base {
	out := make([]Base, NumBases)
	for i := range out {
		out[i] = Base(i)
	}
	return out
}

// ParseBase resolves a base dimension from its name or symbol.
// Matching on names is case-insensitive; "luminous intensity" and
// "luminous-intensity" are accepted for LuminousIntensity.
func ParseBase(name string) (Base, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer(" ", "_", "-", "_").Replace(key)
	for i, n := range baseNames {
		if key == n {
			return Base(i), nil
		}
	}
	for i, s := range baseSymbols {
		if strings.TrimSpace(name) == s {
			return Base(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownBase, name)
}
