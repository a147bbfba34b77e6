package quantity

import (
	"reflect"
	"strings"

	"github.com/san-kum/rayleigh/internal/dim"
)

// Unit is implemented by marker types. Dimension must be pure and return
// the same vector on every call; it is invoked on the zero value.
type Unit interface {
	Dimension() dim.Vector
}

// Named is optionally implemented by markers to give diagnostics a
// readable name.
type Named interface {
	Name() string
}

// DimensionOf returns the declared dimension of marker U.
func DimensionOf[U Unit]() dim.Vector {
	var u U
	return u.Dimension()
}

// NameOf returns the marker's Name, falling back to its lower-cased type name.
func NameOf[U Unit]() string {
	var u U
	if n, ok := any(u).(Named); ok {
		return n.Name()
	}
	t := reflect.TypeOf(u)
	if t == nil {
		return "unknown"
	}
	return strings.ToLower(t.Name())
}
