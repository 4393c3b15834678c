// Package processing: step kinds, options record, physical constants, and
// sentinel errors.
package processing

import "errors"

// Sentinel errors for processing steps. All steps return these sentinels,
// wrapped with context where essential; match them with errors.Is.
var (
	// ErrOutOfRange indicates a requested value outside the stored axis
	// domain; extrapolation is never performed.
	ErrOutOfRange = errors.New("processing: requested range not within data range")

	// ErrValueNotAvailable indicates an exact lookup for a value with no, or
	// no unambiguous, verbatim match on the axis.
	ErrValueNotAvailable = errors.New("processing: values not available")

	// ErrUnsupportedUnit indicates a unit conversion to or from a unit
	// outside the supported set (nm, eV).
	ErrUnsupportedUnit = errors.New("processing: unsupported unit")

	// ErrUnknownKind indicates a step or interpolation kind outside the
	// closed variant set. Seeing it means a programming error in the caller.
	ErrUnknownKind = errors.New("processing: unknown kind")
)

// Units understood by the unit-conversion step. Matching is
// case-insensitive; these constants give the canonical spelling.
const (
	// UnitNanometre labels a wavelength axis in nanometres.
	UnitNanometre = "nm"

	// UnitElectronvolt labels a photon-energy axis in electronvolts.
	UnitElectronvolt = "eV"
)

// SI-exact physical constants (2019 redefinition of the SI base units).
const (
	// speedOfLight is c₀ in m/s.
	speedOfLight = 299792458

	// elementaryCharge is e in C.
	elementaryCharge = 1.602176634e-19

	// planckConstant is h in J·s.
	planckConstant = 6.62607015e-34

	// nmElectronvolt is h·c₀/e scaled to nm·eV, the product λ[nm]·E[eV]
	// for a photon (≈ 1239.841984 nm·eV). Dividing it by a wavelength in nm
	// yields the photon energy in eV, and vice versa: the conversion is its
	// own inverse.
	nmElectronvolt = planckConstant * speedOfLight / elementaryCharge * 1e9
)

// Kind enumerates the closed set of processing step variants.
type Kind int

const (
	// Identity returns its input unchanged.
	Identity Kind = iota

	// UnitConversion converts the independent axis between nm and eV.
	UnitConversion

	// Interpolation resamples the series onto requested axis values.
	Interpolation
)

// String returns the name of the step kind.
func (k Kind) String() string {
	switch k {
	case Identity:
		return "identity"
	case UnitConversion:
		return "unit conversion"
	case Interpolation:
		return "interpolation"
	default:
		return "unknown"
	}
}

// InterpolationKind selects how requested values are looked up.
//
//   - Linear — piecewise-linear interpolation against the axis values.
//     This is the default (zero value).
//   - Exact  — strict table lookup: every requested value must match a
//     stored axis value verbatim, otherwise ErrValueNotAvailable.
type InterpolationKind int

const (
	// Linear performs piecewise-linear interpolation (default).
	Linear InterpolationKind = iota

	// Exact performs a strict exact-match table lookup.
	Exact
)

// Options is the explicit record of processing options recognized by
// StepsFor. The zero value requests no transformation at all.
//
// Fields:
//   - Values        — target independent-variable values; empty means no
//     interpolation step.
//   - Interpolation — lookup kind for the interpolation step; ignored when
//     Values is empty.
//   - Unit          — target axis unit; empty means no conversion step.
type Options struct {
	Values        []float64
	Interpolation InterpolationKind
	Unit          string
}
