package report

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/katalvlaran/optics/material"
)

// ErrMissingInput indicates a required name (template, output filename)
// was not supplied.
var ErrMissingInput = errors.New("report: required input not provided")

// Delimiters used in report templates, chosen so LaTeX templates remain
// valid LaTeX before rendering.
const (
	leftDelim  = "<<"
	rightDelim = ">>"
)

// Reporter renders one template with one context into a report.
type Reporter struct {
	// Template is the path of the template file.
	Template string

	// Context holds the values the template placeholders resolve to.
	Context map[string]any

	report string
}

// Render executes the template with the context and stores the outcome,
// retrievable via Report.
func (r *Reporter) Render() error {
	if r.Template == "" {
		return fmt.Errorf("%w: template filename", ErrMissingInput)
	}
	tmpl, err := template.New(filepath.Base(r.Template)).
		Delims(leftDelim, rightDelim).
		ParseFiles(r.Template)
	if err != nil {
		return fmt.Errorf("report: parsing template: %w", err)
	}
	var buf bytes.Buffer
	if err = tmpl.Execute(&buf, r.Context); err != nil {
		return fmt.Errorf("report: rendering %s: %w", r.Template, err)
	}
	r.report = buf.String()

	return nil
}

// Report returns the rendered report, or the empty string before Render.
func (r *Reporter) Report() string {
	return r.report
}

// Save writes the rendered report to filename.
func (r *Reporter) Save(filename string) error {
	if filename == "" {
		return fmt.Errorf("%w: report filename", ErrMissingInput)
	}

	return os.WriteFile(filename, []byte(r.report), 0o644)
}

// Create renders the template and saves the report in one go.
func (r *Reporter) Create(filename string) error {
	if err := r.Render(); err != nil {
		return err
	}

	return r.Save(filename)
}

// Context assembles the template context for one material: identity,
// metadata, references (both human-readable and BibTeX), and version
// descriptions.
func Context(m *material.Material) map[string]any {
	references := make([]string, len(m.References))
	bibtex := make([]string, len(m.References))
	for i, ref := range m.References {
		references[i] = ref.String()
		bibtex[i] = ref.BibTeX()
	}
	versions := make([]string, len(m.Versions))
	for i, v := range m.Versions {
		versions[i] = v.Description
	}

	date := ""
	if !m.Metadata.Date.IsZero() {
		date = m.Metadata.Date.Format("2006-01-02")
	}

	return map[string]any{
		"Name":               m.Name,
		"Symbol":             m.Symbol,
		"Date":               date,
		"Comment":            m.Metadata.Comment,
		"ConfidenceInterval": m.Metadata.Uncertainties.ConfidenceInterval,
		"Thickness":          m.Metadata.Sample.Thickness,
		"Substrate":          m.Metadata.Sample.Substrate,
		"LayerStack":         m.Metadata.Sample.LayerStack,
		"Morphology":         m.Metadata.Sample.Morphology,
		"Facility":           m.Metadata.Measurement.Facility,
		"Beamline":           m.Metadata.Measurement.Beamline,
		"References":         references,
		"BibTeX":             bibtex,
		"Versions":           versions,
		"HasUncertainties":   m.HasUncertainties(),
		"Points":             m.NData.Len(),
	}
}
