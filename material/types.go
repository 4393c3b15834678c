// Package material: sentinel errors, read options, and result records.
package material

import (
	"errors"

	"github.com/katalvlaran/optics/processing"
)

// Sentinel errors for material and collection operations.
var (
	// ErrEmptySymbol indicates a material with an empty symbol.
	ErrEmptySymbol = errors.New("material: material symbol is empty")

	// ErrInvalidSymbol indicates a symbol that is not an identifier-like
	// token (letters, digits, underscore; no leading digit).
	ErrInvalidSymbol = errors.New("material: material symbol is not an identifier-like token")

	// ErrDuplicateSymbol indicates an Add with a symbol already registered.
	ErrDuplicateSymbol = errors.New("material: symbol already present in collection")

	// ErrNotFound indicates a lookup for an unregistered symbol.
	ErrNotFound = errors.New("material: no material with the given symbol")

	// ErrNilMaterial indicates a nil *Material handed to a collection.
	ErrNilMaterial = errors.New("material: material is nil")
)

// ReadOptions configures one call of the Material read API. A nil options
// pointer, or the zero value, returns the entire stored dataset untouched.
//
// Fields:
//   - Values        — independent-variable values to read at; empty returns
//     the whole grid.
//   - Interpolation — how requested Values are looked up: processing.Linear
//     (default) or processing.Exact for a strict table lookup.
//   - Uncertainties — whether to populate the bound series of the result.
//   - Unit          — target axis unit ("nm" or "eV", case-insensitive);
//     empty keeps the stored unit. Requested Values are interpreted in this
//     unit, since conversion runs before interpolation.
type ReadOptions struct {
	Values        []float64
	Interpolation processing.InterpolationKind
	Uncertainties bool
	Unit          string
}

// DefaultReadOptions returns the default read configuration: full dataset,
// linear interpolation, stored unit, no uncertainty output.
func DefaultReadOptions() ReadOptions {
	return ReadOptions{}
}

// Result is the outcome of reading n or k: the axis values the data refer
// to, the data themselves, and — only when requested and present — the
// uncertainty bound series, all parallel.
type Result struct {
	// Axis holds the independent-variable values of the returned series.
	Axis []float64

	// Values holds the n or k series.
	Values []float64

	// LowerBounds and UpperBounds hold the uncertainty interval per sample.
	// Empty unless ReadOptions.Uncertainties was set and the dataset
	// carries uncertainties.
	LowerBounds []float64
	UpperBounds []float64
}

// ComplexResult is the outcome of reading the complex index of refraction:
// the axis values, the combined index n − i·k, and — only when requested —
// the four uncertainty bound series of n and k.
type ComplexResult struct {
	// Axis holds the independent-variable values of the returned series.
	Axis []float64

	// Index holds the complex refractive index, combined as n − i·k.
	Index []complex128

	// Bound series for n and k. Empty unless requested and present.
	NLowerBounds []float64
	NUpperBounds []float64
	KLowerBounds []float64
	KUpperBounds []float64
}
