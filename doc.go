// Package optics gives you programmatic access to curated optical-constants
// datasets — refractive-index real and imaginary parts (n, k) over a
// wavelength or photon-energy grid — together with their full provenance
// metadata, and computes derived quantities on demand without ever touching
// the stored data.
//
// 🚀 What is optics?
//
//	A modern library for working with measured optical constants:
//		• Data model: labeled axes, numeric series, uncertainty bounds
//		• Materials: data + metadata + bibliography + dataset versions
//		• Collections: symbol-keyed registries of materials
//		• Processing: on-demand interpolation and nm ↔ eV unit conversion
//		• Ingestion: YAML metadata + plain-text data files
//		• Presentation: line plots and template-driven reports
//
// ✨ Why choose optics?
//
//   - Reads are pure – every call works on a private deep copy, so concurrent
//     reads of the same material are safe without locks
//   - Typed failures – out-of-range, unavailable-value, and unsupported-unit
//     conditions are sentinel errors matched with errors.Is
//   - Honest data – uncertainty bounds are propagated through interpolation
//     and never fabricated
//
// Under the hood, everything is organized under focused subpackages:
//
//	dataset/    — leaf data model: Axis and Data with uncertainty bounds
//	processing/ — ordered transformation steps and their ordering policy
//	material/   — Material aggregate, read API, Collection registry
//	ingest/     — importer and collection loader (YAML + text files)
//	plotting/   — graphical overview of n and k (gonum/plot)
//	report/     — textual reports rendered from templates
//
// Quick example:
//
//	co, _ := collection.Get("Co")
//	res, err := co.N(&material.ReadOptions{
//		Values: []float64{13.5},
//		Unit:   "nm",
//	})
//
//	go get github.com/katalvlaran/optics
package optics
