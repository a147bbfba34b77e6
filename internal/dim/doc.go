// Package dim implements the exponent-vector representation of physical
// dimensions.
//
// Every unit is described by a [Vector] of seven exponents, one per SI
// base dimension ([Length], [Mass], [Time], [Current], [Temperature],
// [Amount], [LuminousIntensity]). Multiplying two quantities adds their
// exponents, dividing subtracts them:
//
//	force := dim.New(dim.Pow(dim.Mass, 1), dim.Pow(dim.Length, 1), dim.Pow(dim.Time, -2))
//	area := dim.New(dim.Pow(dim.Length, 2))
//	pressure := force.Div(area) // length⁻¹·mass¹·time⁻²
//
// The zero Vector is dimensionless. Equality is exact element-wise
// comparison with no tolerance; Vector is a comparable array so it can be
// used directly as a map key.
package dim
