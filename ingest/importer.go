package ingest

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cast"

	"github.com/katalvlaran/optics/dataset"
	"github.com/katalvlaran/optics/material"
	"github.com/katalvlaran/optics/processing"
)

// metadataFormatType identifies metadata files this package understands.
const metadataFormatType = "optics metadata"

// Importer reads one metadata/data file pair into a material.Material.
//
// The metadata file is named explicitly; the data file is named inside the
// metadata and resolved relative to DataDir when set, otherwise relative to
// the metadata file's directory.
type Importer struct {
	// MetadataFilename is the path of the YAML metadata file.
	MetadataFilename string

	// DataDir optionally overrides where relative data filenames resolve.
	DataDir string
}

// Import reads the metadata and data files and returns the populated
// material. The returned material has passed dataset validation: parallel
// series, both-or-neither bounds, strictly ascending wavelength grid.
func (imp *Importer) Import() (*material.Material, error) {
	m, _, err := importMaterial(imp.MetadataFilename, imp.DataDir)

	return m, err
}

// importMaterial is the shared import path of Importer and Loader. It also
// returns the parsed metadata so the loader can resolve dataset versions.
func importMaterial(metaPath, dataDir string) (*material.Material, *metadataFile, error) {
	meta, err := readMetadata(metaPath)
	if err != nil {
		return nil, nil, err
	}
	if meta.File.Name == "" {
		return nil, nil, fmt.Errorf("%w: data filename in %s", ErrMissingInput, metaPath)
	}
	if f := meta.File.Format; f != "" && !strings.EqualFold(f, "text") {
		return nil, nil, fmt.Errorf("%w: data file format %q", ErrUnknownFormat, f)
	}

	dataPath := meta.File.Name
	if !filepath.IsAbs(dataPath) {
		base := dataDir
		if base == "" {
			base = filepath.Dir(metaPath)
		}
		dataPath = filepath.Join(base, dataPath)
	}
	columns, err := readColumns(dataPath)
	if err != nil {
		return nil, nil, err
	}

	m := material.New(meta.Material.Name, meta.Material.Symbol)
	applyMetadata(m, meta)
	if err = fillData(m, columns); err != nil {
		return nil, nil, fmt.Errorf("ingest: %s: %w", dataPath, err)
	}

	return m, meta, nil
}

// readMetadata loads and parses one YAML metadata file.
func readMetadata(path string) (*metadataFile, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: metadata filename", ErrMissingInput)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ingest: reading metadata: %w", err)
	}
	var meta metadataFile
	if err = yaml.Unmarshal(raw, &meta); err != nil {
		return nil, fmt.Errorf("ingest: parsing %s: %w", path, err)
	}
	if t := meta.Format.Type; t != "" && !strings.EqualFold(t, metadataFormatType) {
		return nil, fmt.Errorf("%w: metadata format %q (version %s)",
			ErrUnknownFormat, t, cast.ToString(meta.Format.Version))
	}

	return &meta, nil
}

// applyMetadata maps the parsed metadata onto the material.
func applyMetadata(m *material.Material, meta *metadataFile) {
	m.Metadata.Uncertainties.ConfidenceInterval = meta.Uncertainties.ConfidenceInterval
	m.Metadata.Sample.Thickness = cast.ToString(meta.Sample.Thickness)
	m.Metadata.Sample.Substrate = meta.Sample.Substrate
	m.Metadata.Sample.LayerStack = meta.Sample.LayerStack
	m.Metadata.Sample.Morphology = meta.Sample.Morphology
	m.Metadata.Measurement.Type = meta.Measurement.Type
	m.Metadata.Measurement.Facility = meta.Measurement.Facility
	m.Metadata.Measurement.Beamline = meta.Measurement.Beamline
	m.Metadata.Measurement.Date = parseDate(meta.Measurement.Date)
	m.Metadata.Date = parseDate(meta.Date)
	m.Metadata.Comment = strings.TrimSpace(meta.Comment)
	for _, key := range meta.References {
		m.References = append(m.References, material.Reference{Key: key})
	}
}

// parseDate parses an ISO date, tolerating the "00" month/day placeholders
// metadata authors use when only the year (or month) is known. Unparsable
// dates map to the zero time rather than failing the import.
func parseDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	s = strings.ReplaceAll(s, "-00", "-01")
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}
	}

	return t
}

// readColumns parses a whitespace-separated data file into columns.
// '#'-prefixed lines and blank lines are skipped. Every data row must hold
// the same number of columns, and that number must be 3 (wavelength, n, k)
// or 7 (plus the four uncertainty bounds).
func readColumns(path string) ([][]float64, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ingest: reading data: %w", err)
	}
	defer file.Close()

	var rows [][]float64
	lineNo := 0
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		row := make([]float64, len(fields))
		for i, field := range fields {
			if row[i], err = strconv.ParseFloat(field, 64); err != nil {
				return nil, fmt.Errorf("%w: %s line %d: %q", ErrMalformedData, path, lineNo, field)
			}
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("%w: %s line %d: expected %d columns, got %d",
				ErrMalformedData, path, lineNo, len(rows[0]), len(row))
		}
		rows = append(rows, row)
	}
	if err = scanner.Err(); err != nil {
		return nil, fmt.Errorf("ingest: reading data: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s holds no data rows", ErrMalformedData, path)
	}
	if cols := len(rows[0]); cols != 3 && cols != 7 {
		return nil, fmt.Errorf("%w: %s: expected 3 or 7 columns, got %d", ErrMalformedData, path, cols)
	}

	columns := make([][]float64, len(rows[0]))
	for i := range columns {
		columns[i] = make([]float64, len(rows))
		for j, row := range rows {
			columns[i][j] = row[i]
		}
	}

	return columns, nil
}

// fillData distributes the parsed columns onto the n and k data of the
// material. The wavelength grid is allocated independently per series —
// the two Data values must never share axis storage.
func fillData(m *material.Material, columns [][]float64) error {
	for _, d := range []*dataset.Data{m.NData, m.KData} {
		d.Axes[0].Values = slices.Clone(columns[0])
		d.Axes[0].Quantity = "wavelength"
		d.Axes[0].Symbol = `\lambda`
		d.Axes[0].Unit = processing.UnitNanometre
	}
	m.NData.Data = columns[1]
	m.KData.Data = columns[2]
	if len(columns) == 7 {
		m.NData.LowerBounds = columns[3]
		m.NData.UpperBounds = columns[4]
		m.KData.LowerBounds = columns[5]
		m.KData.UpperBounds = columns[6]
	}

	if err := m.NData.Validate(); err != nil {
		return err
	}

	return m.KData.Validate()
}
