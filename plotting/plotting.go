package plotting

import (
	"errors"
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/optics/material"
)

// ErrNilMaterial indicates a nil material handed to Plot or Save.
var ErrNilMaterial = errors.New("plotting: material is nil")

// Selector picks which series a plot shows.
type Selector int

const (
	// N plots the dispersion coefficient only (default).
	N Selector = iota

	// K plots the extinction coefficient only.
	K

	// Both overlays n and k in one plot with a legend.
	Both
)

// PlotOptions configures one plot.
//
// Fields:
//   - Values        — which series to show: N (default), K, or Both.
//   - Uncertainties — whether to shade the uncertainty band around each
//     line; ignored when the dataset carries no uncertainties.
type PlotOptions struct {
	Values        Selector
	Uncertainties bool
}

// DefaultPlotOptions returns the default plot configuration: n only,
// no uncertainty bands.
func DefaultPlotOptions() PlotOptions {
	return PlotOptions{}
}

// Plot builds a plot of the material's optical constants according to opts
// (nil means DefaultPlotOptions). The caller owns the returned plot and may
// restyle it before saving.
func Plot(m *material.Material, opts *PlotOptions) (*plot.Plot, error) {
	if m == nil {
		return nil, ErrNilMaterial
	}
	if opts == nil {
		defaults := DefaultPlotOptions()
		opts = &defaults
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s (%s)", m.Name, m.Symbol)
	p.X.Label.Text = m.NData.Axes[0].Label()

	read := &material.ReadOptions{Uncertainties: opts.Uncertainties && m.HasUncertainties()}
	switch opts.Values {
	case N:
		p.Y.Label.Text = m.NData.Axes[1].Label()
		res, err := m.N(read)
		if err != nil {
			return nil, err
		}
		if err = addSeries(p, res, "n", 0); err != nil {
			return nil, err
		}
	case K:
		p.Y.Label.Text = m.KData.Axes[1].Label()
		res, err := m.K(read)
		if err != nil {
			return nil, err
		}
		if err = addSeries(p, res, "k", 1); err != nil {
			return nil, err
		}
	case Both:
		p.Y.Label.Text = m.NData.Axes[1].Label() + ", " + m.KData.Axes[1].Label()
		p.Legend.Top = true
		nRes, err := m.N(read)
		if err != nil {
			return nil, err
		}
		kRes, err := m.K(read)
		if err != nil {
			return nil, err
		}
		if err = addSeries(p, nRes, "n", 0); err != nil {
			return nil, err
		}
		if err = addSeries(p, kRes, "k", 1); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("plotting: unknown selector %d", int(opts.Values))
	}

	return p, nil
}

// Save renders the plot to filename; the output format follows the file
// extension (png, pdf, svg, ...).
func Save(m *material.Material, opts *PlotOptions, filename string) error {
	p, err := Plot(m, opts)
	if err != nil {
		return err
	}

	return p.Save(14*vg.Centimeter, 9*vg.Centimeter, filename)
}

// addSeries draws one series as a line, preceded by its shaded uncertainty
// band when bounds are present, and registers the legend entry.
func addSeries(p *plot.Plot, res material.Result, label string, paletteIndex int) error {
	col := plotutil.Color(paletteIndex)
	if len(res.LowerBounds) > 0 && len(res.UpperBounds) > 0 {
		band, err := plotter.NewPolygon(bandXYs(res))
		if err != nil {
			return fmt.Errorf("plotting: building uncertainty band: %w", err)
		}
		band.Color = faded(col)
		band.LineStyle.Width = 0
		p.Add(band)
	}

	xys := make(plotter.XYs, len(res.Axis))
	for i := range res.Axis {
		xys[i] = plotter.XY{X: res.Axis[i], Y: res.Values[i]}
	}
	line, err := plotter.NewLine(xys)
	if err != nil {
		return fmt.Errorf("plotting: building line: %w", err)
	}
	line.Color = col
	p.Add(line)
	p.Legend.Add(label, line)

	return nil
}

// bandXYs closes the polygon between the lower and upper bound curves:
// along the axis on the lower bound, back on the upper bound.
func bandXYs(res material.Result) plotter.XYs {
	n := len(res.Axis)
	xys := make(plotter.XYs, 0, 2*n)
	for i := 0; i < n; i++ {
		xys = append(xys, plotter.XY{X: res.Axis[i], Y: res.LowerBounds[i]})
	}
	for i := n - 1; i >= 0; i-- {
		xys = append(xys, plotter.XY{X: res.Axis[i], Y: res.UpperBounds[i]})
	}

	return xys
}

// faded returns col at reduced opacity for band fills.
func faded(col color.Color) color.Color {
	c := color.NRGBAModel.Convert(col).(color.NRGBA)
	c.A = 0x55

	return c
}
