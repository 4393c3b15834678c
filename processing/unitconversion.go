package processing

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/optics/dataset"
)

// convertUnit converts the axis-0 unit of data to the requested target unit.
//
// The conversion remaps only the independent variable: every axis value v
// becomes nmElectronvolt / v, which maps wavelengths in nm to photon
// energies in eV and back with the same formula. The measured series and
// its uncertainty bounds are untouched — a unit conversion relabels the
// axis, never the measurement.
//
// Unit matching is case-insensitive. An empty target, or a target equal to
// the current unit, makes the step a no-op. A target or current unit outside
// {nm, eV} yields ErrUnsupportedUnit.
func convertUnit(data *dataset.Data, unit string) (*dataset.Data, error) {
	if unit == "" {
		return data, nil
	}
	target, err := canonicalUnit(unit)
	if err != nil {
		return nil, err
	}
	current, err := canonicalUnit(data.Axes[0].Unit)
	if err != nil {
		return nil, err
	}
	if current == target {
		return data, nil
	}

	values := data.Axes[0].Values
	for i, v := range values {
		values[i] = nmElectronvolt / v
	}
	data.Axes[0].Unit = target
	// Keep the axis labels truthful for the new unit.
	switch target {
	case UnitNanometre:
		data.Axes[0].Quantity = "wavelength"
		data.Axes[0].Symbol = `\lambda`
	case UnitElectronvolt:
		data.Axes[0].Quantity = "energy"
		data.Axes[0].Symbol = "E"
	}

	return data, nil
}

// canonicalUnit maps a case-insensitive unit spelling onto its canonical
// constant, or reports ErrUnsupportedUnit naming the rejected identifier.
func canonicalUnit(unit string) (string, error) {
	switch {
	case strings.EqualFold(unit, UnitNanometre):
		return UnitNanometre, nil
	case strings.EqualFold(unit, UnitElectronvolt):
		return UnitElectronvolt, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedUnit, unit)
	}
}
