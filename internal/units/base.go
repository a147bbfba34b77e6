package units

import "github.com/san-kum/rayleigh/internal/dim"

// BaseUnit is implemented by the seven SI base markers, placing each one
// in its slot of the base dimension index.
type BaseUnit interface {
	Base() dim.Base
}

// Meter is the SI unit of length.
type Meter struct{}

func (Meter) Dimension() dim.Vector { return dim.New(dim.Pow(dim.Length, 1)) }
func (Meter) Base() dim.Base        { return dim.Length }
func (Meter) Name() string          { return "meter" }
func (Meter) Symbol() string        { return "m" }

// Kilogram is the SI unit of mass.
type Kilogram struct{}

func (Kilogram) Dimension() dim.Vector { return dim.New(dim.Pow(dim.Mass, 1)) }
func (Kilogram) Base() dim.Base        { return dim.Mass }
func (Kilogram) Name() string          { return "kilogram" }
func (Kilogram) Symbol() string        { return "kg" }

// Second is the SI unit of time.
type Second struct{}

func (Second) Dimension() dim.Vector { return dim.New(dim.Pow(dim.Time, 1)) }
func (Second) Base() dim.Base        { return dim.Time }
func (Second) Name() string          { return "second" }
func (Second) Symbol() string        { return "s" }

// Ampere is the SI unit of electric current.
type Ampere struct{}

func (Ampere) Dimension() dim.Vector { return dim.New(dim.Pow(dim.Current, 1)) }
func (Ampere) Base() dim.Base        { return dim.Current }
func (Ampere) Name() string          { return "ampere" }
func (Ampere) Symbol() string        { return "A" }

// Kelvin is the SI unit of thermodynamic temperature.
type Kelvin struct{}

func (Kelvin) Dimension() dim.Vector { return dim.New(dim.Pow(dim.Temperature, 1)) }
func (Kelvin) Base() dim.Base        { return dim.Temperature }
func (Kelvin) Name() string          { return "kelvin" }
func (Kelvin) Symbol() string        { return "K" }

// Mole is the SI unit of amount of substance.
type Mole struct{}

func (Mole) Dimension() dim.Vector { return dim.New(dim.Pow(dim.Amount, 1)) }
func (Mole) Base() dim.Base        { return dim.Amount }
func (Mole) Name() string          { return "mole" }
func (Mole) Symbol() string        { return "mol" }

// Candela is the SI unit of luminous intensity.
type Candela struct{}

func (Candela) Dimension() dim.Vector { return dim.New(dim.Pow(dim.LuminousIntensity, 1)) }
func (Candela) Base() dim.Base        { return dim.LuminousIntensity }
func (Candela) Name() string          { return "candela" }
func (Candela) Symbol() string        { return "cd" }

// Unitless declares the identity dimension.
type Unitless struct{}

func (Unitless) Dimension() dim.Vector { return dim.Identity() }
func (Unitless) Name() string          { return "unitless" }
func (Unitless) Symbol() string        { return "1" }
