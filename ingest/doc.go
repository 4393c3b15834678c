// Package ingest reads materials from the persistence layer: YAML metadata
// files describing a dataset, and plain-text data files holding the
// numbers.
//
// A metadata file names the data file and carries everything the numbers
// alone cannot tell you — material identity, sample and measurement
// provenance, citation keys, dataset versions:
//
//	format:
//	  type: optics metadata
//	  version: 1.0
//	file:
//	  name: foo.txt
//	  format: text
//	material:
//	  name: Cobalt
//	  symbol: Co
//	sample:
//	  thickness: 40 nm
//	  substrate: Si
//	  layer_stack: Si (C/ Co/ Ru/ Si)
//	  morphology: amorphous
//	measurement:
//	  type: reflection
//	  facility: BESSY-II
//	  beamline: SX700
//	  date: 2022-04-01
//	uncertainties:
//	  confidence_interval: 3 sigma
//	references:
//	  - saadeh-optik-273-170455
//	versions:
//	  - metadata: foo-1.yaml
//	    description: initial dataset without uncertainties
//	comment: >
//	  Lorem ipsum
//
// Data files contain whitespace-separated columns — wavelength[nm], n, k,
// and optionally the four uncertainty bounds n_lower, n_upper, k_lower,
// k_upper — with '#'-prefixed header lines ignored.
//
// The Importer reads one metadata/data pair into a material.Material; the
// Loader builds a whole material.Collection from a directory tree laid out
// as <root>/metadata/<collection>/*.yaml plus <root>/data/ for the data
// files, resolving dataset versions along the way.
//
// Imported data are validated (parallel lengths, strictly ascending axis)
// before the material is handed over, and the n and k series never share
// axis storage: each gets its own, independently allocated grid.
//
// Errors:
//
//	ErrMissingInput  - a required name (metadata file, data file,
//	                   collection) was not supplied.
//	ErrUnknownFormat - the metadata names a data file format this package
//	                   cannot read.
//	ErrMalformedData - a data file line could not be parsed, or column
//	                   counts are inconsistent.
package ingest
