// Package material defines the aggregate entities of the optics module:
// Material — one substance's optical constants plus their full provenance —
// and Collection, a symbol-keyed registry of materials.
//
// 🚀 Reading data
//
//	Values for the dispersion coefficient n, the extinction coefficient k,
//	or the complex index of refraction are obtained through the read API:
//
//		res, err := co.N(nil)                              // full dataset
//		res, err := co.K(&material.ReadOptions{
//			Values: []float64{13.5},                       // interpolate
//			Unit:   "nm",
//		})
//		idx, err := co.IndexOfRefraction(nil)              // n − i·k
//
//	Every call builds its step sequence via processing.StepsFor, deep-copies
//	the canonical data, and threads the copy through the steps in order. The
//	canonical dataset is never observably mutated by a read; concurrent
//	reads of one Material are safe without locking once loading finished.
//
// A Material further carries bibliographic References (citation order
// preserved), descriptive Metadata (measurement provenance, uncertainty
// description, sample details), and historical dataset Versions.
//
// Collections preserve insertion order for iteration and reject duplicate
// symbols by default; construct with WithReplacement() for the historical
// silent-overwrite behavior.
//
// Errors:
//
//	ErrEmptySymbol     - material symbol is the empty string.
//	ErrInvalidSymbol   - symbol is not an identifier-like token.
//	ErrDuplicateSymbol - symbol already present in the collection.
//	ErrNotFound        - no material registered under the symbol.
package material
