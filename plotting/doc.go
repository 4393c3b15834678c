// Package plotting renders graphical overviews of the optical constants of
// a material using gonum/plot.
//
// Although not the primary concern of the optics module, seeing the data is
// always a good idea. Three shapes of plot are supported, selected through
// PlotOptions:
//
//   - n only, or k only — a simple line plot (the default is n)
//   - both — n and k overlaid in one plot with a legend; note that n
//     clusters near 1 while k clusters near 0, so reading exact values off
//     the overlay is best left to the material read API
//   - any of the above with shaded uncertainty bands, when the dataset
//     carries uncertainties
//
// Requesting uncertainty bands on a material without uncertainties is not
// an error; the bands are simply omitted.
//
// The package is a plain read client of material.Material: it calls the
// public read API like any other consumer and owns no data.
package plotting
