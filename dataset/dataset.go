package dataset

import "slices"

// Label derives the axis label following IUPAC conventions: the symbol,
// wrapped in math delimiters, is preferred over the quantity name, and the
// unit — when present — is appended after a slash.
//
// Examples: "$\lambda$ / nm", "$n$", "wavelength / nm" (no symbol).
func (a Axis) Label() string {
	measure := a.Quantity
	if a.Symbol != "" {
		measure = "$" + a.Symbol + "$"
	}
	if a.Unit != "" {
		return measure + " / " + a.Unit
	}

	return measure
}

// Len reports the number of samples in the series.
func (d *Data) Len() int {
	return len(d.Data)
}

// HasUncertainties reports whether uncertainty bounds are present.
// Only when both the lower and the upper bound series are non-empty is the
// answer true.
func (d *Data) HasUncertainties() bool {
	return len(d.LowerBounds) > 0 && len(d.UpperBounds) > 0
}

// Clone returns a deep copy of d. The copy shares no slice with the
// original, so a processing pipeline may freely rewrite it without the
// canonical data ever observing the change.
// Complexity: O(n)
func (d *Data) Clone() *Data {
	c := &Data{
		Data:        slices.Clone(d.Data),
		Axes:        d.Axes,
		LowerBounds: slices.Clone(d.LowerBounds),
		UpperBounds: slices.Clone(d.UpperBounds),
	}
	for i := range c.Axes {
		c.Axes[i].Values = slices.Clone(d.Axes[i].Values)
	}

	return c
}

// Validate checks the structural invariants of d: parallel lengths of series
// and axis-0 values, both-or-neither uncertainty bounds of matching length,
// and a strictly ascending axis-0 grid. It returns the first violated
// invariant as a sentinel error, or nil.
//
// Importers must ensure Validate passes before handing a Data value to
// consumers; interpolation assumes a well-ordered, duplicate-free axis.
func (d *Data) Validate() error {
	if len(d.Data) != len(d.Axes[0].Values) {
		return ErrLengthMismatch
	}
	if (len(d.LowerBounds) == 0) != (len(d.UpperBounds) == 0) {
		return ErrBoundsMismatch
	}
	if len(d.LowerBounds) > 0 &&
		(len(d.LowerBounds) != len(d.Data) || len(d.UpperBounds) != len(d.Data)) {
		return ErrBoundsMismatch
	}
	values := d.Axes[0].Values
	for i := 1; i < len(values); i++ {
		if values[i] <= values[i-1] {
			return ErrUnsortedAxis
		}
	}

	return nil
}
