package processing

import (
	"fmt"

	"github.com/katalvlaran/optics/dataset"
)

// Step is one unit of transformation over a dataset.Data value: a tagged
// variant of Kind plus the parameters the concrete kind consumes.
// Steps mutate the Data they are handed and return it; feeding a step a
// private copy is the caller's duty.
type Step struct {
	// Kind selects the concrete transformation.
	Kind Kind

	// Values are the target axis values for Interpolation.
	Values []float64

	// Interpolation is the lookup kind for Interpolation.
	Interpolation InterpolationKind

	// Unit is the target axis unit for UnitConversion.
	Unit string
}

// StepsFor translates an Options record into the ordered step sequence it
// implies. This is the single place ordering policy lives:
//
//  1. UnitConversion, if a target unit is set. Converting first ensures the
//     requested values are interpreted in the target unit, not the stored
//     one — interpolation runs against the axis as it will be returned.
//  2. Interpolation, if target values are set.
//
// When no option implies a step, a single Identity step is returned, so
// callers always have at least one step to apply uniformly.
// Complexity: O(1)
func StepsFor(opts Options) []Step {
	var steps []Step
	if opts.Unit != "" {
		steps = append(steps, Step{Kind: UnitConversion, Unit: opts.Unit})
	}
	if len(opts.Values) > 0 {
		steps = append(steps, Step{
			Kind:          Interpolation,
			Values:        opts.Values,
			Interpolation: opts.Interpolation,
		})
	}
	if len(steps) == 0 {
		steps = append(steps, Step{Kind: Identity})
	}

	return steps
}

// Process applies the step to data and returns the transformed value.
// On failure the returned data is nil and the input must be considered
// spoiled; callers abort the remaining steps and discard the copy.
func (s Step) Process(data *dataset.Data) (*dataset.Data, error) {
	switch s.Kind {
	case Identity:
		return data, nil
	case UnitConversion:
		return convertUnit(data, s.Unit)
	case Interpolation:
		return interpolate(data, s.Values, s.Interpolation)
	default:
		return nil, fmt.Errorf("%w: step kind %d", ErrUnknownKind, int(s.Kind))
	}
}
