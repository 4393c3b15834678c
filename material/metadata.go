package material

import "time"

// Metadata holds the descriptive, non-numeric context of a material's
// optical constants. Data are only as good as their accompanying metadata:
// reproducibility and correct use of the values require access to the
// measurement provenance.
type Metadata struct {
	// Uncertainties describes the statistical meaning of the stored
	// uncertainty bounds.
	Uncertainties Uncertainties

	// Sample describes the specimen the constants were measured on.
	Sample Sample

	// Measurement describes the measurement itself.
	Measurement Measurement

	// Date the dataset was created. May be as coarse as January 1st of a
	// year when nothing more precise is known.
	Date time.Time

	// Comment holds any relevant information that fits nowhere else.
	Comment string
}

// Uncertainties describes the uncertainty bounds of a dataset, if present.
// The bounds themselves live in the dataset; this is their interpretation.
type Uncertainties struct {
	// ConfidenceInterval the bounds are provided for, e.g. "3 sigma".
	ConfidenceInterval string
}

// Sample describes the specimen measured to obtain the optical constants.
// The materials are typically measured as thin films in reflection, so the
// specimen is a film on a substrate, often within a more complex stack.
type Sample struct {
	// Thickness of the layer of the material of interest, e.g. "40 nm".
	Thickness string

	// Substrate supporting the material of interest, e.g. "Si".
	Substrate string

	// LayerStack describes the full stack, e.g. "Si (C/ Co/ Ru/ Si)".
	LayerStack string

	// Morphology of the material. Controlled vocabulary: "amorphous",
	// "crystalline", "microcrystalline", "polycrystalline", "unknown".
	Morphology string
}

// Measurement describes how the optical constants were recorded.
type Measurement struct {
	// Type of measurement: "reflection" or "transmission".
	Type string

	// Facility the measurement was carried out at, e.g. "BESSY-II".
	Facility string

	// Beamline the measurement was performed at.
	Beamline string

	// Date of the measurement.
	Date time.Time
}

// Version describes one superseded or alternate dataset of a material.
// The embedded Material is fully formed but carries no version list of its
// own; the history belongs to the current material exclusively.
type Version struct {
	// Material holds the alternate dataset.
	Material *Material

	// Description names the distinguishing characteristic of this version,
	// not merely its recency.
	Description string

	// Current flags whether this version is the current dataset.
	Current bool
}
