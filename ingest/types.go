// Package ingest: sentinel errors and the metadata file schema.
package ingest

import "errors"

// Sentinel errors for the persistence layer.
var (
	// ErrMissingInput indicates a required name (metadata filename, data
	// filename, collection name) was not supplied.
	ErrMissingInput = errors.New("ingest: required input not provided")

	// ErrUnknownFormat indicates a data file format outside the supported
	// set (currently only "text").
	ErrUnknownFormat = errors.New("ingest: unknown data file format")

	// ErrMalformedData indicates a data file that could not be parsed.
	ErrMalformedData = errors.New("ingest: malformed data file")
)

// metadataFile mirrors the YAML metadata format documented in the package
// comment. Fields whose YAML typing is loose in the wild (version numbers,
// physical quantities with units) are declared any and normalized with
// cast when mapped onto the material.
type metadataFile struct {
	Format struct {
		Type    string `yaml:"type"`
		Version any    `yaml:"version"`
	} `yaml:"format"`
	File struct {
		Name   string `yaml:"name"`
		Format string `yaml:"format"`
	} `yaml:"file"`
	Material struct {
		Name   string `yaml:"name"`
		Symbol string `yaml:"symbol"`
	} `yaml:"material"`
	Sample struct {
		Thickness  any    `yaml:"thickness"`
		Substrate  string `yaml:"substrate"`
		LayerStack string `yaml:"layer_stack"`
		Morphology string `yaml:"morphology"`
	} `yaml:"sample"`
	Measurement struct {
		Type     string `yaml:"type"`
		Facility string `yaml:"facility"`
		Beamline string `yaml:"beamline"`
		Date     string `yaml:"date"`
	} `yaml:"measurement"`
	Uncertainties struct {
		ConfidenceInterval string `yaml:"confidence_interval"`
	} `yaml:"uncertainties"`
	References []string `yaml:"references"`
	Versions   []struct {
		Metadata    string `yaml:"metadata"`
		Description string `yaml:"description"`
	} `yaml:"versions"`
	Date    string `yaml:"date"`
	Comment string `yaml:"comment"`
}
