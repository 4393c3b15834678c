package material

import (
	"github.com/katalvlaran/optics/dataset"
	"github.com/katalvlaran/optics/processing"
)

// Material holds the optical constants and the relevant metadata for a
// single material, be it an element or a composition. Data and metadata
// form one unit: the dataset comes with its bibliography, provenance, and
// history of superseded versions.
//
// Loaders populate a Material once; afterwards all access goes through the
// read API (N, K, IndexOfRefraction), which never mutates the stored data.
type Material struct {
	// Name is the human-readable name, e.g. "Cobalt".
	Name string

	// Symbol refers to the material: the element symbol for elements, the
	// molecular formula for compositions. Unique within a Collection.
	Symbol string

	// References are the bibliographic records for the dataset, in
	// citation order.
	References []Reference

	// Metadata describes measurement provenance and data quality.
	Metadata Metadata

	// Versions lists superseded or alternate datasets for this material.
	Versions []Version

	// NData holds the dispersion coefficient n over the stored grid.
	NData *dataset.Data

	// KData holds the extinction coefficient k over the stored grid.
	// Shares the axis-0 grid with NData at load time.
	KData *dataset.Data
}

// New returns a Material with empty, independently allocated n and k data,
// their label-only axes preset to the dispersion coefficient "n" and the
// extinction coefficient "k".
func New(name, symbol string) *Material {
	m := &Material{
		Name:   name,
		Symbol: symbol,
		NData:  dataset.New(),
		KData:  dataset.New(),
	}
	m.NData.Axes[1].Quantity = "dispersion coefficient"
	m.NData.Axes[1].Symbol = "n"
	m.KData.Axes[1].Quantity = "extinction coefficient"
	m.KData.Axes[1].Symbol = "k"

	return m
}

// N returns the real part n of the index of refraction, processed according
// to opts (nil means DefaultReadOptions). The canonical dataset is never
// mutated; each call pipelines a private deep copy.
func (m *Material) N(opts *ReadOptions) (Result, error) {
	return m.read(m.NData, opts)
}

// K returns the imaginary part k of the index of refraction, processed
// according to opts (nil means DefaultReadOptions).
func (m *Material) K(opts *ReadOptions) (Result, error) {
	return m.read(m.KData, opts)
}

// NAt returns the linearly interpolated n value at one axis position, in
// the stored axis unit. It is shorthand for N with a single-element Values
// option; use N directly for ranges, exact lookup, or unit conversion.
func (m *Material) NAt(value float64) (float64, error) {
	res, err := m.N(&ReadOptions{Values: []float64{value}})
	if err != nil {
		return 0, err
	}

	return res.Values[0], nil
}

// KAt returns the linearly interpolated k value at one axis position, in
// the stored axis unit.
func (m *Material) KAt(value float64) (float64, error) {
	res, err := m.K(&ReadOptions{Values: []float64{value}})
	if err != nil {
		return 0, err
	}

	return res.Values[0], nil
}

// IndexOfRefraction returns the complex index of refraction, combining the
// independently pipelined n and k series as n − i·k.
//
// The minus sign is the physical convention for a wave written with
// exp(+iωt) time dependence, where absorption requires a negative imaginary
// part. This library uses n − i·k exclusively.
//
// Both series are processed through the same step sequence, built once from
// opts, each on its own deep copy. With opts.Uncertainties set the result
// additionally carries the four bound series of n and k.
func (m *Material) IndexOfRefraction(opts *ReadOptions) (ComplexResult, error) {
	if opts == nil {
		defaults := DefaultReadOptions()
		opts = &defaults
	}
	steps := stepsFor(opts)
	nData, err := applySteps(m.NData, steps)
	if err != nil {
		return ComplexResult{}, err
	}
	kData, err := applySteps(m.KData, steps)
	if err != nil {
		return ComplexResult{}, err
	}

	index := make([]complex128, len(nData.Data))
	for i := range index {
		index[i] = complex(nData.Data[i], -kData.Data[i])
	}
	res := ComplexResult{Axis: nData.Axes[0].Values, Index: index}
	if opts.Uncertainties {
		res.NLowerBounds = nData.LowerBounds
		res.NUpperBounds = nData.UpperBounds
		res.KLowerBounds = kData.LowerBounds
		res.KUpperBounds = kData.UpperBounds
	}

	return res, nil
}

// HasUncertainties reports whether the dataset carries uncertainties.
// Only when both the n data and the k data hold lower and upper bounds is
// the answer true.
func (m *Material) HasUncertainties() bool {
	return m.NData.HasUncertainties() && m.KData.HasUncertainties()
}

// read runs one canonical Data value through the pipeline implied by opts
// and unpacks the outcome.
func (m *Material) read(canonical *dataset.Data, opts *ReadOptions) (Result, error) {
	if opts == nil {
		defaults := DefaultReadOptions()
		opts = &defaults
	}
	data, err := applySteps(canonical, stepsFor(opts))
	if err != nil {
		return Result{}, err
	}

	res := Result{Axis: data.Axes[0].Values, Values: data.Data}
	if opts.Uncertainties {
		res.LowerBounds = data.LowerBounds
		res.UpperBounds = data.UpperBounds
	}

	return res, nil
}

// stepsFor maps read options onto the ordered processing step sequence.
func stepsFor(opts *ReadOptions) []processing.Step {
	return processing.StepsFor(processing.Options{
		Values:        opts.Values,
		Interpolation: opts.Interpolation,
		Unit:          opts.Unit,
	})
}

// applySteps deep-copies canonical and feeds the copy through the steps in
// order, each step's output becoming the next step's input. The first
// failure aborts the pipeline; the discarded copy leaves the canonical
// data untouched.
func applySteps(canonical *dataset.Data, steps []processing.Step) (*dataset.Data, error) {
	data := canonical.Clone()
	var err error
	for _, step := range steps {
		if data, err = step.Process(data); err != nil {
			return nil, err
		}
	}

	return data, nil
}
