package report_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/optics/material"
	"github.com/katalvlaran/optics/report"
)

// cobalt builds a material with enough metadata to exercise the full
// template context.
func cobalt() *material.Material {
	m := material.New("Cobalt", "Co")
	m.NData.Axes[0].Values = []float64{10, 11, 12}
	m.NData.Data = []float64{0.98, 0.985, 0.99}
	m.KData.Axes[0].Values = []float64{10, 11, 12}
	m.KData.Data = []float64{0.05, 0.04, 0.03}
	m.Metadata.Date = time.Date(2022, 12, 1, 0, 0, 0, 0, time.UTC)
	m.Metadata.Sample.Substrate = "Si"
	m.Metadata.Uncertainties.ConfidenceInterval = "3 sigma"
	m.References = []material.Reference{{
		Key:     "saadeh-optik-273-170455",
		Authors: []string{"Qais Saadeh"},
		Title:   "On the optical constants of cobalt",
		Year:    2023,
	}}

	return m
}

func TestReporter_Render(t *testing.T) {
	template := filepath.Join(t.TempDir(), "material.txt")
	require.NoError(t, os.WriteFile(template, []byte(
		`<<.Name>> (<<.Symbol>>), measured on <<.Date>> on <<.Substrate>>.
<<range .References>>Cite: <<.>>
<<end>>Grid points: <<.Points>>
`), 0o644))

	reporter := &report.Reporter{Template: template, Context: report.Context(cobalt())}
	assert.Empty(t, reporter.Report(), "nothing rendered yet")
	require.NoError(t, reporter.Render())

	want := `Cobalt (Co), measured on 2022-12-01 on Si.
Cite: Qais Saadeh: On the optical constants of cobalt (2023)
Grid points: 3
`
	assert.Equal(t, want, reporter.Report())
}

// TestReporter_DelimitersLeaveLaTeXAlone: LaTeX braces pass through the
// template engine verbatim.
func TestReporter_DelimitersLeaveLaTeXAlone(t *testing.T) {
	template := filepath.Join(t.TempDir(), "material.tex")
	require.NoError(t, os.WriteFile(template, []byte(
		`\section{<<.Name>>} \textbf{symbol: <<.Symbol>>}`), 0o644))

	reporter := &report.Reporter{Template: template, Context: report.Context(cobalt())}
	require.NoError(t, reporter.Render())
	assert.Equal(t, `\section{Cobalt} \textbf{symbol: Co}`, reporter.Report())
}

func TestReporter_MissingInputs(t *testing.T) {
	reporter := &report.Reporter{}
	assert.ErrorIs(t, reporter.Render(), report.ErrMissingInput)
	assert.ErrorIs(t, reporter.Save(""), report.ErrMissingInput)
}

func TestReporter_MissingTemplateFile(t *testing.T) {
	reporter := &report.Reporter{Template: filepath.Join(t.TempDir(), "absent.txt")}
	assert.Error(t, reporter.Render())
}

func TestReporter_Create(t *testing.T) {
	dir := t.TempDir()
	template := filepath.Join(dir, "material.txt")
	require.NoError(t, os.WriteFile(template, []byte(`<<.Name>>`), 0o644))

	out := filepath.Join(dir, "Co.txt")
	reporter := &report.Reporter{Template: template, Context: report.Context(cobalt())}
	require.NoError(t, reporter.Create(out))

	content, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "Cobalt", string(content))
}

func TestContext_CoversMetadataAndReferences(t *testing.T) {
	ctx := report.Context(cobalt())

	assert.Equal(t, "Cobalt", ctx["Name"])
	assert.Equal(t, "Co", ctx["Symbol"])
	assert.Equal(t, "2022-12-01", ctx["Date"])
	assert.Equal(t, "Si", ctx["Substrate"])
	assert.Equal(t, "3 sigma", ctx["ConfidenceInterval"])
	assert.Equal(t, 3, ctx["Points"])
	assert.Equal(t, false, ctx["HasUncertainties"])

	references, ok := ctx["References"].([]string)
	require.True(t, ok)
	require.Len(t, references, 1)
	assert.Contains(t, references[0], "Qais Saadeh")

	bibtex, ok := ctx["BibTeX"].([]string)
	require.True(t, ok)
	assert.Contains(t, bibtex[0], "@article{saadeh-optik-273-170455,")
}

func TestContext_ZeroDateRendersEmpty(t *testing.T) {
	m := cobalt()
	m.Metadata.Date = time.Time{}
	assert.Equal(t, "", report.Context(m)["Date"])
}
