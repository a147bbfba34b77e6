package units

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/san-kum/rayleigh/internal/dim"
	"github.com/san-kum/rayleigh/internal/quantity"
)

var (
	// ErrUnknownUnit indicates a name that is not in the registry.
	ErrUnknownUnit = errors.New("units: unknown unit")

	// ErrDuplicateUnit indicates a name or alias that is already registered.
	ErrDuplicateUnit = errors.New("units: unit already registered")

	// ErrInvalidUnit indicates a definition without a name.
	ErrInvalidUnit = errors.New("units: unit name must not be empty")
)

// Def describes a unit chosen at runtime, e.g. from a pipeline file.
type Def struct {
	Name      string
	Symbol    string
	Dimension dim.Vector
	Aliases   []string
}

type symbolled interface {
	Symbol() string
}

// Describe builds a Def from a marker type.
func Describe[U quantity.Unit](aliases ...string) Def {
	var u U
	def := Def{
		Name:      quantity.NameOf[U](),
		Dimension: u.Dimension(),
		Aliases:   aliases,
	}
	if s, ok := any(u).(symbolled); ok {
		def.Symbol = s.Symbol()
	}
	return def
}

// Of returns value expressed in this unit.
func (d Def) Of(value float64) quantity.Dynamic {
	return quantity.New(value, d.Dimension)
}

// Cast checks that q has this unit's dimension.
func (d Def) Cast(q quantity.Erasable) error {
	return quantity.Check(q, d.Name, d.Dimension)
}

// Registry maps unit names and aliases to definitions.
type Registry struct {
	defs    map[string]Def
	aliases map[string]string
}

// NewRegistry returns a registry holding the built-in catalog.
func NewRegistry() *Registry {
	r := &Registry{
		defs:    make(map[string]Def),
		aliases: make(map[string]string),
	}
	for _, def := range Catalog() {
		if err := r.Register(def); err != nil {
			panic(err)
		}
	}
	return r
}

// Catalog lists the built-in unit definitions.
func Catalog() []Def {
	return []Def{
		Describe[Unitless]("dimensionless", "scalar"),
		Describe[Meter]("length", "m"),
		Describe[Kilogram]("mass", "kg"),
		Describe[Second]("time", "s"),
		Describe[Ampere]("current", "A"),
		Describe[Kelvin]("temperature", "K"),
		Describe[Mole]("amount", "mol"),
		Describe[Candela]("luminous_intensity", "cd"),
		Describe[SquareMeter]("area"),
		Describe[CubicMeter]("volume"),
		Describe[MetersPerSecond]("velocity", "speed"),
		Describe[MetersPerSecondSquared]("acceleration"),
		Describe[Hertz]("frequency", "Hz"),
		Describe[Newton]("force", "N"),
		Describe[Joule]("energy", "J"),
		Describe[NewtonMeter]("torque"),
		Describe[Watt]("power", "W"),
		Describe[Pascal]("pressure", "Pa"),
		Describe[Coulomb]("charge", "C"),
		Describe[Volt]("voltage", "V"),
		Describe[Ohm]("resistance"),
		Describe[KilogramPerCubicMeter]("density"),
	}
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Register adds def under its name and aliases.
func (r *Registry) Register(def Def) error {
	name := normalize(def.Name)
	if name == "" {
		return ErrInvalidUnit
	}
	if r.taken(name) {
		return fmt.Errorf("%w: %s", ErrDuplicateUnit, def.Name)
	}
	for _, a := range def.Aliases {
		if key := normalize(a); key == name || r.taken(key) {
			return fmt.Errorf("%w: alias %s", ErrDuplicateUnit, a)
		}
	}

	r.defs[name] = def
	for _, a := range def.Aliases {
		r.aliases[normalize(a)] = name
	}
	return nil
}

func (r *Registry) taken(key string) bool {
	if _, ok := r.defs[key]; ok {
		return true
	}
	_, ok := r.aliases[key]
	return ok
}

// Lookup finds a unit by name or alias, ignoring case.
func (r *Registry) Lookup(name string) (Def, error) {
	key := normalize(name)
	if def, ok := r.defs[key]; ok {
		return def, nil
	}
	if target, ok := r.aliases[key]; ok {
		return r.defs[target], nil
	}
	return Def{}, fmt.Errorf("%w: %s", ErrUnknownUnit, name)
}

// List returns all definitions sorted by name.
func (r *Registry) List() []Def {
	out := make([]Def, 0, len(r.defs))
	for _, def := range r.defs {
		out = append(out, def)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Matching returns the units whose dimension equals d, sorted by name.
func (r *Registry) Matching(d dim.Vector) []Def {
	var out []Def
	for _, def := range r.List() {
		if def.Dimension.Equal(d) {
			out = append(out, def)
		}
	}
	return out
}

// Clone returns an independent copy, so callers can add local units
// without touching the shared catalog.
func (r *Registry) Clone() *Registry {
	c := &Registry{
		defs:    make(map[string]Def, len(r.defs)),
		aliases: make(map[string]string, len(r.aliases)),
	}
	for k, v := range r.defs {
		c.defs[k] = v
	}
	for k, v := range r.aliases {
		c.aliases[k] = v
	}
	return c
}
