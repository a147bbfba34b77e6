// Package quantity provides dimension-checked physical quantities.
//
// A value is always in one of two states:
//
//   - [Dynamic]: a magnitude plus a [dim.Vector], the result of arbitrary
//     multiplication or division. Its unit is only known at runtime.
//   - [Quantity]: a magnitude bound to a marker type U implementing [Unit].
//     Its dimension is U's declared dimension, always.
//
// Erase moves a Quantity to a Dynamic unconditionally. [TryCast] moves a
// Dynamic back to a Quantity only if the dimensions are exactly equal:
//
//	d := quantity.Of[units.Meter](100)
//	t := quantity.Of[units.Second](9.6)
//	v, err := quantity.TryCast[units.MetersPerSecond](d.Div(t))
//
// Addition and subtraction are only defined between quantities of the same
// marker type. Two markers with the same dimension (Joule and NewtonMeter)
// are not interchangeable; use [Relabel] to convert explicitly.
//
// # Thread Safety
//
// All types are immutable values and safe for concurrent use.
package quantity
