// Package prefix enumerates the SI decimal prefixes.
//
// Prefixes are never applied implicitly during arithmetic. Callers convert
// an input to base units once, with [Apply], before it enters a
// calculation.
package prefix

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/rayleigh/internal/quantity"
)

// ErrUnknownPrefix indicates a name or symbol that is not an SI prefix.
var ErrUnknownPrefix = errors.New("prefix: unknown prefix")

// Prefix scales a unit by a power of ten. The zero value is None.
type Prefix int

const (
	None Prefix = iota
	Quetta
	Ronna
	Yotta
	Zetta
	Exa
	Peta
	Tera
	Giga
	Mega
	Kilo
	Hecto
	Deca
	Deci
	Centi
	Milli
	Micro
	Nano
	Pico
	Femto
	Atto
	Zepto
	Yocto
	Ronto
	Quecto
)

type info struct {
	name     string
	symbol   string
	exponent int
}

var table = [...]info{
	None:   {"none", "", 0},
	Quetta: {"quetta", "Q", 30},
	Ronna:  {"ronna", "R", 27},
	Yotta:  {"yotta", "Y", 24},
	Zetta:  {"zetta", "Z", 21},
	Exa:    {"exa", "E", 18},
	Peta:   {"peta", "P", 15},
	Tera:   {"tera", "T", 12},
	Giga:   {"giga", "G", 9},
	Mega:   {"mega", "M", 6},
	Kilo:   {"kilo", "k", 3},
	Hecto:  {"hecto", "h", 2},
	Deca:   {"deca", "da", 1},
	Deci:   {"deci", "d", -1},
	Centi:  {"centi", "c", -2},
	Milli:  {"milli", "m", -3},
	Micro:  {"micro", "µ", -6},
	Nano:   {"nano", "n", -9},
	Pico:   {"pico", "p", -12},
	Femto:  {"femto", "f", -15},
	Atto:   {"atto", "a", -18},
	Zepto:  {"zepto", "z", -21},
	Yocto:  {"yocto", "y", -24},
	Ronto:  {"ronto", "r", -27},
	Quecto: {"quecto", "q", -30},
}

func (p Prefix) valid() bool { return p >= 0 && int(p) < len(table) }

func (p Prefix) Name() string {
	if !p.valid() {
		return fmt.Sprintf("prefix(%d)", int(p))
	}
	return table[p].name
}

func (p Prefix) String() string { return p.Name() }

func (p Prefix) Symbol() string {
	if !p.valid() {
		return ""
	}
	return table[p].symbol
}

// Exponent returns n such that the prefix scales by 10^n.
func (p Prefix) Exponent() int {
	if !p.valid() {
		return 0
	}
	return table[p].exponent
}

// Factor returns the multiplier of the prefix.
func (p Prefix) Factor() float64 {
	return math.Pow10(p.Exponent())
}

// All returns every prefix from largest to smallest, None included.
func All() []Prefix {
	out := make([]Prefix, 0, len(table))
	for p := Quetta; p <= Deca; p++ {
		out = append(out, p)
	}
	out = append(out, None)
	for p := Deci; p <= Quecto; p++ {
		out = append(out, p)
	}
	return out
}

// Parse resolves a prefix by name (case-insensitive) or by exact symbol.
// The empty string is None. "u" is accepted for micro.
func Parse(s string) (Prefix, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return None, nil
	}
	lower := strings.ToLower(trimmed)
	for i, in := range table {
		if in.name == lower {
			return Prefix(i), nil
		}
	}
	if trimmed == "u" || trimmed == "μ" {
		return Micro, nil
	}
	for i, in := range table {
		if in.symbol != "" && in.symbol == trimmed {
			return Prefix(i), nil
		}
	}
	return None, fmt.Errorf("%w: %q", ErrUnknownPrefix, s)
}

// Apply converts q, expressed in the prefixed unit, to the base unit.
// The dimension is unchanged.
func Apply(p Prefix, q quantity.Erasable) quantity.Dynamic {
	return q.Erase().Scale(p.Factor())
}
