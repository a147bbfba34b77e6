package dim

import (
	"cmp"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Power pairs a base dimension with its exponent.
type Power struct {
	Base     Base
	Exponent float64
}

// Pow is shorthand for Power{Base: b, Exponent: e}.
func Pow(b Base, e float64) Power {
	return Power{Base: b, Exponent: e}
}

// Vector holds one exponent per base dimension, indexed by Base.
type Vector [NumBases]float64

// Identity returns the dimensionless vector.
func Identity() Vector {
	return Vector{}
}

// New builds a vector from the given powers. Slots that are not named stay
// zero; a base named twice accumulates.
func New(powers ...Power) Vector {
	var v Vector
	for _, p := range powers {
		if !p.Base.Valid() {
			continue
		}
		v[p.Base] += p.Exponent
	}
	return v
}

// Exponent returns the exponent of base b.
func (v Vector) Exponent(b Base) float64 {
	if !b.Valid() {
		return 0
	}
	return v[b]
}

// With returns a copy of v with the exponent of b replaced by e.
func (v Vector) With(b Base, e float64) Vector {
	if b.Valid() {
		v[b] = e
	}
	return v
}

// Mul combines the dimensions of a product: exponents are summed.
func (v Vector) Mul(o Vector) Vector {
	return v.Add(o)
}

// Div combines the dimensions of a quotient: exponents are subtracted.
func (v Vector) Div(o Vector) Vector {
	return v.Sub(o)
}

// Add sums two vectors element-wise.
func (v Vector) Add(o Vector) Vector {
	for i := range v {
		v[i] += o[i]
	}
	return v
}

// Sub subtracts o from v element-wise.
func (v Vector) Sub(o Vector) Vector {
	for i := range v {
		v[i] -= o[i]
	}
	return v
}

// Scale multiplies every exponent by k. Raising a quantity to the power k
// scales its dimension by k.
func (v Vector) Scale(k float64) Vector {
	for i := range v {
		v[i] *= k
	}
	return v
}

// Equal reports exact element-wise equality.
func (v Vector) Equal(o Vector) bool {
	return v == o
}

// Compare orders vectors lexicographically by slot.
func (v Vector) Compare(o Vector) int {
	for i := range v {
		if c := cmp.Compare(v[i], o[i]); c != 0 {
			return c
		}
	}
	return 0
}

func (v Vector) IsDimensionless() bool {
	return v == Vector{}
}

// Map returns the nonzero exponents keyed by base name.
func (v Vector) Map() map[string]float64 {
	m := make(map[string]float64)
	for i, e := range v {
		if e != 0 {
			m[baseNames[i]] = e
		}
	}
	return m
}

// FromMap builds a vector from exponents keyed by base name or symbol.
func FromMap(m map[string]float64) (Vector, error) {
	var v Vector
	for name, e := range m {
		b, err := ParseBase(name)
		if err != nil {
			return Vector{}, err
		}
		v[b] += e
	}
	return v, nil
}

func (v Vector) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Map())
}

func (v *Vector) UnmarshalJSON(data []byte) error {
	var m map[string]float64
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	parsed, err := FromMap(m)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

func (v Vector) MarshalYAML() (interface{}, error) {
	return v.Map(), nil
}

func (v *Vector) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var m map[string]float64
	if err := unmarshal(&m); err != nil {
		return err
	}
	parsed, err := FromMap(m)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// String renders the nonzero slots in index order, e.g. "length¹·time⁻¹".
// A dimensionless vector renders as "1".
func (v Vector) String() string {
	var mask [NumBases]bool
	for i, e := range v {
		mask[i] = e != 0
	}
	return v.format(mask)
}

// FormatUnion renders a and b over the union of their nonzero slots, so a
// slot present on only one side shows up with a zero exponent on the other.
func FormatUnion(a, b Vector) (string, string) {
	var mask [NumBases]bool
	for i := range a {
		mask[i] = a[i] != 0 || b[i] != 0
	}
	return a.format(mask), b.format(mask)
}

func (v Vector) format(mask [NumBases]bool) string {
	parts := make([]string, 0, NumBases)
	for i, e := range v {
		if !mask[i] {
			continue
		}
		parts = append(parts, baseNames[i]+formatExponent(e))
	}
	if len(parts) == 0 {
		return "1"
	}
	return strings.Join(parts, "·")
}

var superscripts = map[rune]rune{
	'0': '⁰', '1': '¹', '2': '²', '3': '³', '4': '⁴',
	'5': '⁵', '6': '⁶', '7': '⁷', '8': '⁸', '9': '⁹', '-': '⁻',
}

func formatExponent(e float64) string {
	if math.IsNaN(e) || math.IsInf(e, 0) || e != math.Trunc(e) || math.Abs(e) > 1e6 {
		return "^" + strconv.FormatFloat(e, 'g', -1, 64)
	}
	digits := fmt.Sprintf("%d", int64(e))
	var sb strings.Builder
	for _, r := range digits {
		sb.WriteRune(superscripts[r])
	}
	return sb.String()
}
