package material_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/optics/material"
	"github.com/katalvlaran/optics/processing"
)

// cobalt builds a small but fully populated material: three grid points,
// n and k series, uncertainty bounds on both.
func cobalt() *material.Material {
	m := material.New("Cobalt", "Co")

	m.NData.Axes[0].Values = []float64{10, 11, 12}
	m.NData.Axes[0].Quantity = "wavelength"
	m.NData.Axes[0].Symbol = `\lambda`
	m.NData.Axes[0].Unit = processing.UnitNanometre
	m.NData.Data = []float64{0.98, 0.985, 0.99}
	m.NData.LowerBounds = []float64{0.975, 0.980, 0.985}
	m.NData.UpperBounds = []float64{0.985, 0.990, 0.995}

	m.KData.Axes[0] = m.NData.Axes[0]
	m.KData.Axes[0].Values = []float64{10, 11, 12}
	m.KData.Data = []float64{0.05, 0.04, 0.03}
	m.KData.LowerBounds = []float64{0.045, 0.035, 0.025}
	m.KData.UpperBounds = []float64{0.055, 0.045, 0.035}

	return m
}

func TestNew_PresetsDataAxisLabels(t *testing.T) {
	m := material.New("Cobalt", "Co")
	assert.Equal(t, "Cobalt", m.Name)
	assert.Equal(t, "Co", m.Symbol)
	assert.Equal(t, "$n$", m.NData.Axes[1].Label())
	assert.Equal(t, "$k$", m.KData.Axes[1].Label())
	assert.Equal(t, "dispersion coefficient", m.NData.Axes[1].Quantity)
	assert.Equal(t, "extinction coefficient", m.KData.Axes[1].Quantity)
}

// TestN_NilOptionsReturnWholeDataset: a nil options pointer is the plain
// "give me everything" read.
func TestN_NilOptionsReturnWholeDataset(t *testing.T) {
	m := cobalt()
	res, err := m.N(nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 11, 12}, res.Axis)
	assert.Equal(t, []float64{0.98, 0.985, 0.99}, res.Values)
	assert.Empty(t, res.LowerBounds, "bounds withheld unless requested")
	assert.Empty(t, res.UpperBounds)
}

func TestK_UncertaintiesOnRequest(t *testing.T) {
	m := cobalt()
	res, err := m.K(&material.ReadOptions{Uncertainties: true})
	require.NoError(t, err)
	assert.Equal(t, []float64{0.05, 0.04, 0.03}, res.Values)
	assert.Equal(t, []float64{0.045, 0.035, 0.025}, res.LowerBounds)
	assert.Equal(t, []float64{0.055, 0.045, 0.035}, res.UpperBounds)
}

func TestN_InterpolatesAtRequestedValues(t *testing.T) {
	m := cobalt()
	res, err := m.N(&material.ReadOptions{Values: []float64{10.5}})
	require.NoError(t, err)
	require.Len(t, res.Values, 1)
	assert.InDelta(t, 0.9825, res.Values[0], 1e-12)
	assert.Equal(t, []float64{10.5}, res.Axis)
}

func TestN_ExactLookup(t *testing.T) {
	m := cobalt()
	res, err := m.N(&material.ReadOptions{
		Values:        []float64{11},
		Interpolation: processing.Exact,
	})
	require.NoError(t, err)
	assert.Equal(t, []float64{0.985}, res.Values)

	_, err = m.N(&material.ReadOptions{
		Values:        []float64{10.5},
		Interpolation: processing.Exact,
	})
	assert.ErrorIs(t, err, processing.ErrValueNotAvailable)
}

func TestN_ErrorsPassThrough(t *testing.T) {
	m := cobalt()
	_, err := m.N(&material.ReadOptions{Values: []float64{9}})
	assert.ErrorIs(t, err, processing.ErrOutOfRange)

	_, err = m.N(&material.ReadOptions{Unit: "pm"})
	assert.ErrorIs(t, err, processing.ErrUnsupportedUnit)
}

// TestRead_CanonicalDataStaysUntouched pins the purity guarantee: reads with
// every transforming option set leave the stored dataset byte-for-byte as it
// was loaded.
func TestRead_CanonicalDataStaysUntouched(t *testing.T) {
	m := cobalt()
	nBefore := m.NData.Clone()
	kBefore := m.KData.Clone()

	opts := &material.ReadOptions{
		Values:        []float64{110, 120},
		Unit:          processing.UnitElectronvolt,
		Uncertainties: true,
	}
	_, err := m.N(opts)
	require.NoError(t, err)
	_, err = m.K(opts)
	require.NoError(t, err)
	_, err = m.IndexOfRefraction(opts)
	require.NoError(t, err)

	assert.Equal(t, nBefore, m.NData)
	assert.Equal(t, kBefore, m.KData)
}

// TestRead_ResultDoesNotAliasCanonicalData: mutating a result must never
// reach the stored dataset.
func TestRead_ResultDoesNotAliasCanonicalData(t *testing.T) {
	m := cobalt()
	res, err := m.N(nil)
	require.NoError(t, err)

	res.Values[0] = -1
	res.Axis[0] = -1

	assert.Equal(t, []float64{0.98, 0.985, 0.99}, m.NData.Data)
	assert.Equal(t, []float64{10, 11, 12}, m.NData.Axes[0].Values)
}

func TestNAt_KAt(t *testing.T) {
	m := cobalt()

	n, err := m.NAt(10.5)
	require.NoError(t, err)
	assert.InDelta(t, 0.9825, n, 1e-12)

	k, err := m.KAt(11)
	require.NoError(t, err)
	assert.InDelta(t, 0.04, k, 1e-12)

	_, err = m.NAt(9)
	assert.ErrorIs(t, err, processing.ErrOutOfRange)
}

func TestIndexOfRefraction_CombinesAsNMinusIK(t *testing.T) {
	m := cobalt()
	res, err := m.IndexOfRefraction(nil)
	require.NoError(t, err)

	require.Len(t, res.Index, 3)
	assert.Equal(t, complex(0.98, -0.05), res.Index[0])
	assert.Equal(t, complex(0.985, -0.04), res.Index[1])
	assert.Equal(t, complex(0.99, -0.03), res.Index[2])
	assert.Equal(t, []float64{10, 11, 12}, res.Axis)
	assert.Empty(t, res.NLowerBounds)
	assert.Empty(t, res.KUpperBounds)
}

func TestIndexOfRefraction_CarriesAllFourBoundSeries(t *testing.T) {
	m := cobalt()
	res, err := m.IndexOfRefraction(&material.ReadOptions{
		Values:        []float64{11},
		Uncertainties: true,
	})
	require.NoError(t, err)

	require.Len(t, res.Index, 1)
	assert.Equal(t, complex(0.985, -0.04), res.Index[0])
	assert.Equal(t, []float64{0.980}, res.NLowerBounds)
	assert.Equal(t, []float64{0.990}, res.NUpperBounds)
	assert.Equal(t, []float64{0.035}, res.KLowerBounds)
	assert.Equal(t, []float64{0.045}, res.KUpperBounds)
}

func TestIndexOfRefraction_ErrorAborts(t *testing.T) {
	m := cobalt()
	_, err := m.IndexOfRefraction(&material.ReadOptions{Values: []float64{99}})
	assert.ErrorIs(t, err, processing.ErrOutOfRange)
}

// TestHasUncertainties_RequiresBothSeries: one series with bounds is not
// enough for the material as a whole.
func TestHasUncertainties_RequiresBothSeries(t *testing.T) {
	m := cobalt()
	assert.True(t, m.HasUncertainties())

	m.KData.LowerBounds = nil
	m.KData.UpperBounds = nil
	assert.False(t, m.HasUncertainties())
}
