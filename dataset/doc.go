// Package dataset defines the leaf data model of the optics module:
// labeled numeric axes and measured series with optional uncertainty bounds.
//
// A Data value couples one dependent-variable series with exactly two Axis
// descriptors: axis 0 carries the independent-variable values (for example a
// wavelength grid), axis 1 never carries values and only labels the dependent
// quantity. LowerBounds and UpperBounds, when present, run parallel to the
// series and describe its measurement uncertainty.
//
// Data values are populated once by an importer and treated as read-only
// afterwards. Consumers that need to transform a series first take an
// independent deep copy via Clone; no slice is ever shared between a clone
// and its origin.
//
// Errors:
//
//	ErrLengthMismatch - series and axis-0 values differ in length.
//	ErrBoundsMismatch - bound series are not both empty or both parallel.
//	ErrUnsortedAxis   - axis-0 values are not strictly ascending.
package dataset
