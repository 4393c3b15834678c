package plotting_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/optics/material"
	"github.com/katalvlaran/optics/plotting"
	"github.com/katalvlaran/optics/processing"
)

// cobalt builds a plottable material with uncertainty bounds on both series.
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

func TestPlot_DefaultShowsN(t *testing.T) {
	p, err := plotting.Plot(cobalt(), nil)
	require.NoError(t, err)
	require.NotNil(t, p)

	assert.Equal(t, "Cobalt (Co)", p.Title.Text)
	assert.Equal(t, `$\lambda$ / nm`, p.X.Label.Text)
	assert.Equal(t, "$n$", p.Y.Label.Text)
}

func TestPlot_Selectors(t *testing.T) {
	m := cobalt()

	p, err := plotting.Plot(m, &plotting.PlotOptions{Values: plotting.K})
	require.NoError(t, err)
	assert.Equal(t, "$k$", p.Y.Label.Text)

	p, err = plotting.Plot(m, &plotting.PlotOptions{Values: plotting.Both})
	require.NoError(t, err)
	assert.Equal(t, "$n$, $k$", p.Y.Label.Text)

	_, err = plotting.Plot(m, &plotting.PlotOptions{Values: plotting.Selector(9)})
	assert.Error(t, err)
}

func TestPlot_NilMaterial(t *testing.T) {
	_, err := plotting.Plot(nil, nil)
	assert.ErrorIs(t, err, plotting.ErrNilMaterial)
}

func TestPlot_UncertaintyBandsOptional(t *testing.T) {
	// With bounds present the request is honored, without them it is
	// silently ignored; neither combination is an error.
	_, err := plotting.Plot(cobalt(), &plotting.PlotOptions{Uncertainties: true})
	require.NoError(t, err)

	bare := material.New("Nickel", "Ni")
	bare.NData.Axes[0].Values = []float64{10, 11}
	bare.NData.Data = []float64{0.97, 0.975}
	bare.KData.Axes[0].Values = []float64{10, 11}
	bare.KData.Data = []float64{0.06, 0.05}
	_, err = plotting.Plot(bare, &plotting.PlotOptions{Uncertainties: true})
	require.NoError(t, err)
}

func TestSave_WritesImageFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "Co.png")
	opts := &plotting.PlotOptions{Values: plotting.Both, Uncertainties: true}
	require.NoError(t, plotting.Save(cobalt(), opts, filename))

	info, err := os.Stat(filename)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}
