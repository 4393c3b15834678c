package processing

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"

	"github.com/katalvlaran/optics/dataset"
)

// interpolate resamples data onto the requested axis values.
//
// Every requested value must lie within [min, max] of the current axis-0
// values — the endpoints themselves are inside the domain — otherwise
// ErrOutOfRange reports the offending value together with the valid bounds.
// Extrapolation is never performed.
//
// With kind Linear the series, and — independently, only when uncertainty
// bounds are present — the lower and upper bounds, are piecewise-linearly
// interpolated against the axis values. With kind Exact every requested
// value must match a stored axis value verbatim, exactly once; any missing
// or ambiguous match yields ErrValueNotAvailable.
//
// On success axis 0 carries the requested values and all parallel series
// (data, bounds) have been resampled to the same length. This is the only
// step that changes the length of a Data value.
// Complexity: O(n + m·log n) for Linear, O(n·m) for Exact.
func interpolate(data *dataset.Data, values []float64, kind InterpolationKind) (*dataset.Data, error) {
	axis := data.Axes[0].Values
	if len(axis) == 0 {
		return nil, fmt.Errorf("%w: dataset has no axis values", ErrOutOfRange)
	}
	lo, hi := floats.Min(axis), floats.Max(axis)
	for _, v := range values {
		if v < lo || v > hi {
			return nil, fmt.Errorf(
				"%w: %g. Available range: [%g, %g]", ErrOutOfRange, v, lo, hi,
			)
		}
	}

	var resample func(series []float64) ([]float64, error)
	switch kind {
	case Linear:
		resample = linearResampler(axis, values)
	case Exact:
		indices, err := exactIndices(axis, values)
		if err != nil {
			return nil, err
		}
		resample = func(series []float64) ([]float64, error) {
			out := make([]float64, len(indices))
			for i, idx := range indices {
				out[i] = series[idx]
			}

			return out, nil
		}
	default:
		return nil, fmt.Errorf("%w: interpolation kind %d", ErrUnknownKind, int(kind))
	}

	series, err := resample(data.Data)
	if err != nil {
		return nil, err
	}
	var lower, upper []float64
	if data.HasUncertainties() {
		if lower, err = resample(data.LowerBounds); err != nil {
			return nil, err
		}
		if upper, err = resample(data.UpperBounds); err != nil {
			return nil, err
		}
	}

	data.Data = series
	data.LowerBounds = lower
	data.UpperBounds = upper
	data.Axes[0].Values = slices.Clone(values)

	return data, nil
}

// linearResampler returns a resampling function predicting series values at
// the requested points via a piecewise-linear fit against axis.
//
// The axis may run descending — the state after a nm→eV conversion — in
// which case the fit is performed on a reversed copy; the predictor is
// agnostic to the original direction.
func linearResampler(axis, values []float64) func([]float64) ([]float64, error) {
	return func(series []float64) ([]float64, error) {
		// A single-point axis passed the range check, so every requested
		// value equals that point.
		if len(axis) == 1 {
			out := make([]float64, len(values))
			for i := range out {
				out[i] = series[0]
			}

			return out, nil
		}

		xs, ys := ascendingPair(axis, series)
		var pl interp.PiecewiseLinear
		if err := pl.Fit(xs, ys); err != nil {
			return nil, fmt.Errorf("processing: fitting linear interpolant: %w", err)
		}
		out := make([]float64, len(values))
		for i, v := range values {
			out[i] = pl.Predict(v)
		}

		return out, nil
	}
}

// ascendingPair returns copies of xs and ys ordered by ascending xs.
// xs is assumed monotonic in either direction.
func ascendingPair(xs, ys []float64) ([]float64, []float64) {
	if len(xs) < 2 || xs[0] < xs[len(xs)-1] {
		return slices.Clone(xs), slices.Clone(ys)
	}
	n := len(xs)
	rx := make([]float64, n)
	ry := make([]float64, n)
	for i := range xs {
		rx[n-1-i] = xs[i]
		ry[n-1-i] = ys[i]
	}

	return rx, ry
}

// exactIndices maps every requested value onto the axis index holding it
// verbatim. A value with no match, or with more than one match (a duplicated
// axis entry makes the lookup ambiguous), yields ErrValueNotAvailable.
func exactIndices(axis, values []float64) ([]int, error) {
	indices := make([]int, len(values))
	for i, v := range values {
		matches := 0
		for j, a := range axis {
			if a == v {
				indices[i] = j
				matches++
			}
		}
		if matches != 1 {
			return nil, fmt.Errorf("%w: %g (%d exact matches)", ErrValueNotAvailable, v, matches)
		}
	}

	return indices, nil
}
