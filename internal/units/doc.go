// Package units is the catalog of unit marker types and the runtime
// registry that maps unit names to dimensions.
//
// Markers are zero-size structs implementing [quantity.Unit]:
//
//   - base units: [Meter], [Kilogram], [Second], [Ampere], [Kelvin], [Mole], [Candela]
//   - [Unitless] for dimensionless values
//   - derived units such as [Newton], [Joule], [Pascal], [MetersPerSecond]
//
// The [Registry] serves callers that only know a unit by name, such as
// pipeline files and the CLI. Lookups accept names and aliases
// case-insensitively; no unit expressions are parsed.
package units
