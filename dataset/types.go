// Package dataset: types and sentinel errors for the leaf data model.
package dataset

import "errors"

// Sentinel errors for structural validation of a Data value.
var (
	// ErrLengthMismatch indicates the series and axis-0 values differ in length.
	ErrLengthMismatch = errors.New("dataset: data and axis values differ in length")

	// ErrBoundsMismatch indicates bound series that are neither both empty nor
	// both parallel to the data series.
	ErrBoundsMismatch = errors.New("dataset: lower and upper bounds must both be empty or both match the data length")

	// ErrUnsortedAxis indicates axis-0 values that are not strictly ascending.
	ErrUnsortedAxis = errors.New("dataset: axis values must be strictly ascending")
)

// Axis holds data and metadata for one coordinate of a Data value.
//
// Values is populated for the independent variable (axis 0) and stays empty
// for the label-only dependent axis (axis 1). Quantity is the textual name of
// the coordinate, Symbol its mathematical symbol (a LaTeX math fragment such
// as `\lambda`), and Unit the unit the values are expressed in.
type Axis struct {
	// Values of the independent variable; empty on the label-only axis.
	Values []float64

	// Quantity is the textual description, e.g. "wavelength".
	Quantity string

	// Symbol is the mathematical symbol, e.g. `\lambda`. Preferred over
	// Quantity when rendering labels.
	Symbol string

	// Unit the values are expressed in, e.g. "nm". May be empty for
	// dimensionless quantities.
	Unit string
}

// Data couples one measured series with its two axes and optional
// uncertainty bounds.
//
// Invariants (checked by Validate):
//   - len(Data) == len(Axes[0].Values)
//   - LowerBounds and UpperBounds are both empty, or both len(Data)
//   - Axes[0].Values are strictly ascending (importer contract)
type Data struct {
	// Data is the dependent-variable series, parallel to Axes[0].Values.
	Data []float64

	// Axes always holds exactly two axes: axis 0 carries values, axis 1 is
	// label-only.
	Axes [2]Axis

	// LowerBounds of the uncertainty interval for each sample, or empty.
	LowerBounds []float64

	// UpperBounds of the uncertainty interval for each sample, or empty.
	UpperBounds []float64
}

// New returns an empty Data value ready to be populated by an importer.
func New() *Data {
	return &Data{}
}
