// Package radiolysis exposes the equilibrium constants used when modelling
// water radiolysis under an electron beam.
//
// The table is immutable data embedded in the binary and decoded once on
// first use. Callers receive copies; nothing here can be mutated at runtime.
package radiolysis
