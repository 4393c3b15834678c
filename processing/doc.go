// Package processing implements the on-demand transformation pipeline that
// the material read API feeds deep copies of its canonical data through.
//
// 🚀 What does it do?
//
//	Two concrete transformations, plus an identity step:
//	  • UnitConversion — relabels and remaps the independent axis between
//	    nanometres and electronvolts via E[eV] = h·c₀/e · 1e9 / λ[nm],
//	    using the SI-exact 2019 constants. The measured series and its
//	    uncertainty bounds are never touched.
//	  • Interpolation — resamples a series (and, independently, its
//	    uncertainty bounds when present) onto requested axis values,
//	    either by linear interpolation or by strict exact lookup.
//	  • Identity — returns its input unchanged, so callers always have at
//	    least one step to apply uniformly.
//
// Step selection is a closed tagged variant (Kind) dispatched by the single
// ordering function StepsFor, which keeps the ordering policy centrally
// auditable: unit conversion, when requested, always precedes interpolation,
// so requested values are interpreted in the unit of the returned axis.
//
// Steps transform the *dataset.Data they are handed in place and return it;
// callers own the copy discipline (see material.Material).
//
// Errors:
//
//	ErrOutOfRange        - interpolation target outside the stored domain.
//	ErrValueNotAvailable - exact lookup found no (or no unambiguous) match.
//	ErrUnsupportedUnit   - conversion to or from an unrecognized unit.
//	ErrUnknownKind       - step or interpolation kind outside the closed set.
package processing
