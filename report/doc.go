// Package report renders textual descriptions of a material — its data
// summary, provenance metadata, and references — from template files.
//
// Templates use the delimiters "<<" and ">>" instead of the default
// "{{"/"}}", so LaTeX templates stay valid LaTeX before rendering and can
// be previewed and debugged without the template engine. Beyond the
// delimiters this is plain text/template syntax; the context handed to a
// template is a flat map, conveniently assembled from a material by
// Context.
//
// Typical use:
//
//	reporter := &report.Reporter{
//		Template: "templates/material.tex",
//		Context:  report.Context(co),
//	}
//	if err := reporter.Create("Co.tex"); err != nil { ... }
//
// Compiling the rendered LaTeX to PDF is the caller's business; this
// package stops at the rendered text.
//
// Errors:
//
//	ErrMissingInput - no template or no output filename was supplied.
package report
