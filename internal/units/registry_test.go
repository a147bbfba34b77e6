package units

import (
	"errors"
	"testing"

	"github.com/san-kum/rayleigh/internal/dim"
	"github.com/san-kum/rayleigh/internal/quantity"
)

func TestBaseUnits_OccupyTheirSlot(t *testing.T) {
	bases := []interface {
		quantity.Unit
		BaseUnit
	}{Meter{}, Kilogram{}, Second{}, Ampere{}, Kelvin{}, Mole{}, Candela{}}

	seen := make(map[dim.Base]bool)
	for _, u := range bases {
		b := u.Base()
		if seen[b] {
			t.Errorf("base %v declared twice", b)
		}
		seen[b] = true

		want := dim.New(dim.Pow(b, 1))
		if got := u.Dimension(); got != want {
			t.Errorf("%T: dimension %v, want %v", u, got, want)
		}
	}
	if len(seen) != dim.NumBases {
		t.Errorf("expected %d base units, got %d", dim.NumBases, len(seen))
	}
}

func TestDimension_IsStable(t *testing.T) {
	for _, def := range Catalog() {
		if def.Dimension != def.Dimension.Mul(dim.Identity()) {
			t.Errorf("%s: unstable dimension", def.Name)
		}
	}
	if quantity.DimensionOf[Newton]() != quantity.DimensionOf[Newton]() {
		t.Error("Newton dimension differs between calls")
	}
	if !quantity.DimensionOf[Unitless]().IsDimensionless() {
		t.Error("Unitless must declare the identity")
	}
}

func TestJouleAndNewtonMeter_ShareDimension(t *testing.T) {
	if quantity.DimensionOf[Joule]() != quantity.DimensionOf[NewtonMeter]() {
		t.Error("joule and newton meter should share a dimension")
	}
	if quantity.NameOf[Joule]() == quantity.NameOf[NewtonMeter]() {
		t.Error("joule and newton meter must stay distinct units")
	}
}

func TestRegistry_Lookup(t *testing.T) {
	r := NewRegistry()

	tests := []struct {
		name string
		want string
	}{
		{"newton", "newton"},
		{"Newton", "newton"},
		{"force", "newton"},
		{"N", "newton"},
		{"velocity", "meters_per_second"},
		{" meter ", "meter"},
		{"dimensionless", "unitless"},
	}

	for _, tt := range tests {
		def, err := r.Lookup(tt.name)
		if err != nil {
			t.Errorf("Lookup(%q): %v", tt.name, err)
			continue
		}
		if def.Name != tt.want {
			t.Errorf("Lookup(%q) = %s, want %s", tt.name, def.Name, tt.want)
		}
	}

	if _, err := r.Lookup("furlong"); !errors.Is(err, ErrUnknownUnit) {
		t.Errorf("expected ErrUnknownUnit, got %v", err)
	}
}

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()

	custom := Def{
		Name:      "furlong_per_fortnight",
		Dimension: dim.New(dim.Pow(dim.Length, 1), dim.Pow(dim.Time, -1)),
		Aliases:   []string{"fpf"},
	}
	if err := r.Register(custom); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if _, err := r.Lookup("fpf"); err != nil {
		t.Errorf("alias lookup failed: %v", err)
	}

	tests := []struct {
		name string
		def  Def
		want error
	}{
		{"empty name", Def{}, ErrInvalidUnit},
		{"duplicate name", Def{Name: "newton"}, ErrDuplicateUnit},
		{"name taken by alias", Def{Name: "force"}, ErrDuplicateUnit},
		{"duplicate alias", Def{Name: "dyne_thing", Aliases: []string{"N"}}, ErrDuplicateUnit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := r.Register(tt.def); !errors.Is(err, tt.want) {
				t.Errorf("Register() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestRegistry_CloneIsIndependent(t *testing.T) {
	base := NewRegistry()
	local := base.Clone()

	if err := local.Register(Def{Name: "smoot", Dimension: dim.New(dim.Pow(dim.Length, 1))}); err != nil {
		t.Fatal(err)
	}
	if _, err := base.Lookup("smoot"); err == nil {
		t.Error("clone registration leaked into the original")
	}
}

func TestRegistry_Matching(t *testing.T) {
	r := NewRegistry()
	got := r.Matching(quantity.DimensionOf[Joule]())
	if len(got) != 2 || got[0].Name != "joule" || got[1].Name != "newton_meter" {
		t.Errorf("Matching(energy) = %v", got)
	}
}

func TestDef_Cast(t *testing.T) {
	r := NewRegistry()
	pascal, err := r.Lookup("pascal")
	if err != nil {
		t.Fatal(err)
	}

	force := quantity.Of[Newton](10)
	area := quantity.Of[SquareMeter](2)
	if err := pascal.Cast(force.Div(area)); err != nil {
		t.Errorf("N/m² should cast to pascal: %v", err)
	}

	err = pascal.Cast(force.Mul(area))
	var mismatch *quantity.MismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected MismatchError, got %v", err)
	}
	if mismatch.Target != "pascal" {
		t.Errorf("target = %q", mismatch.Target)
	}
}

func TestDescribe(t *testing.T) {
	def := Describe[Newton]("force")
	if def.Name != "newton" || def.Symbol != "N" {
		t.Errorf("Describe[Newton] = %+v", def)
	}
	if got := def.Of(3).Dimension(); got != quantity.DimensionOf[Newton]() {
		t.Errorf("Of() dimension = %v", got)
	}
}
