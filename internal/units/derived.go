package units

import "github.com/san-kum/rayleigh/internal/dim"

var (
	area         = dim.New(dim.Pow(dim.Length, 2))
	volume       = dim.New(dim.Pow(dim.Length, 3))
	velocity     = dim.New(dim.Pow(dim.Length, 1), dim.Pow(dim.Time, -1))
	acceleration = dim.New(dim.Pow(dim.Length, 1), dim.Pow(dim.Time, -2))
	frequency    = dim.New(dim.Pow(dim.Time, -1))
	force        = dim.New(dim.Pow(dim.Mass, 1), dim.Pow(dim.Length, 1), dim.Pow(dim.Time, -2))
	energy       = dim.New(dim.Pow(dim.Mass, 1), dim.Pow(dim.Length, 2), dim.Pow(dim.Time, -2))
	power        = dim.New(dim.Pow(dim.Mass, 1), dim.Pow(dim.Length, 2), dim.Pow(dim.Time, -3))
	pressure     = dim.New(dim.Pow(dim.Mass, 1), dim.Pow(dim.Length, -1), dim.Pow(dim.Time, -2))
	charge       = dim.New(dim.Pow(dim.Current, 1), dim.Pow(dim.Time, 1))
	voltage      = dim.New(dim.Pow(dim.Mass, 1), dim.Pow(dim.Length, 2), dim.Pow(dim.Time, -3), dim.Pow(dim.Current, -1))
	resistance   = dim.New(dim.Pow(dim.Mass, 1), dim.Pow(dim.Length, 2), dim.Pow(dim.Time, -3), dim.Pow(dim.Current, -2))
	density      = dim.New(dim.Pow(dim.Mass, 1), dim.Pow(dim.Length, -3))
)

type SquareMeter struct{}

func (SquareMeter) Dimension() dim.Vector { return area }
func (SquareMeter) Name() string          { return "square_meter" }
func (SquareMeter) Symbol() string        { return "m²" }

type CubicMeter struct{}

func (CubicMeter) Dimension() dim.Vector { return volume }
func (CubicMeter) Name() string          { return "cubic_meter" }
func (CubicMeter) Symbol() string        { return "m³" }

type MetersPerSecond struct{}

func (MetersPerSecond) Dimension() dim.Vector { return velocity }
func (MetersPerSecond) Name() string          { return "meters_per_second" }
func (MetersPerSecond) Symbol() string        { return "m/s" }

type MetersPerSecondSquared struct{}

func (MetersPerSecondSquared) Dimension() dim.Vector { return acceleration }
func (MetersPerSecondSquared) Name() string          { return "meters_per_second_squared" }
func (MetersPerSecondSquared) Symbol() string        { return "m/s²" }

type Hertz struct{}

func (Hertz) Dimension() dim.Vector { return frequency }
func (Hertz) Name() string          { return "hertz" }
func (Hertz) Symbol() string        { return "Hz" }

// Newton is kg·m·s⁻², the SI unit of force.
type Newton struct{}

func (Newton) Dimension() dim.Vector { return force }
func (Newton) Name() string          { return "newton" }
func (Newton) Symbol() string        { return "N" }

// Joule is the SI unit of energy.
type Joule struct{}

func (Joule) Dimension() dim.Vector { return energy }
func (Joule) Name() string          { return "joule" }
func (Joule) Symbol() string        { return "J" }

// NewtonMeter is torque. It shares Joule's dimension but is a distinct unit.
type NewtonMeter struct{}

func (NewtonMeter) Dimension() dim.Vector { return energy }
func (NewtonMeter) Name() string          { return "newton_meter" }
func (NewtonMeter) Symbol() string        { return "N·m" }

type Watt struct{}

func (Watt) Dimension() dim.Vector { return power }
func (Watt) Name() string          { return "watt" }
func (Watt) Symbol() string        { return "W" }

type Pascal struct{}

func (Pascal) Dimension() dim.Vector { return pressure }
func (Pascal) Name() string          { return "pascal" }
func (Pascal) Symbol() string        { return "Pa" }

type Coulomb struct{}

func (Coulomb) Dimension() dim.Vector { return charge }
func (Coulomb) Name() string          { return "coulomb" }
func (Coulomb) Symbol() string        { return "C" }

type Volt struct{}

func (Volt) Dimension() dim.Vector { return voltage }
func (Volt) Name() string          { return "volt" }
func (Volt) Symbol() string        { return "V" }

type Ohm struct{}

func (Ohm) Dimension() dim.Vector { return resistance }
func (Ohm) Name() string          { return "ohm" }
func (Ohm) Symbol() string        { return "Ω" }

type KilogramPerCubicMeter struct{}

func (KilogramPerCubicMeter) Dimension() dim.Vector { return density }
func (KilogramPerCubicMeter) Name() string          { return "kilogram_per_cubic_meter" }
func (KilogramPerCubicMeter) Symbol() string        { return "kg/m³" }
