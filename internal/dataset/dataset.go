// Package dataset loads labeled numeric samples from CSV.
//
// CSV Format (one sample per row, label in a fixed column):
//
//	label,x0,x1,...,xn
//	5,0,0,12,...,0
//	0,0,0,0,...,0
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/born-ml/grad/internal/autodiff"
)

var (
	// ErrEmpty is returned when a CSV holds no samples.
	ErrEmpty = errors.New("dataset: no samples")
	// ErrLabelColumn is returned when the label column is outside the row.
	ErrLabelColumn = errors.New("dataset: label column out of range")
)

// Dataset holds one label and one feature row per sample.
// All feature rows have the same width.
type Dataset struct {
	Labels   []float64
	Features [][]float64
}

// ReadCSV parses every row of r into a sample.
//
// Parameters:
//   - r: CSV source
//   - labelColumn: Column holding the label; negative counts from the end
//   - hasHeader: Skip the first row
//
// Returns an error for ragged rows, unparsable numbers, or an empty input.
func ReadCSV(r io.Reader, labelColumn int, hasHeader bool) (*Dataset, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	if hasHeader && len(records) > 0 {
		records = records[1:]
	}
	if len(records) == 0 {
		return nil, ErrEmpty
	}

	width := len(records[0])
	col := labelColumn
	if col < 0 {
		col += width
	}
	if col < 0 || col >= width {
		return nil, fmt.Errorf("label column %d for %d columns: %w", labelColumn, width, ErrLabelColumn)
	}

	ds := &Dataset{
		Labels:   make([]float64, len(records)),
		Features: make([][]float64, len(records)),
	}
	for i, record := range records {
		// csv.Reader already rejects rows with a different field count.
		features := make([]float64, 0, width-1)
		for j, field := range record {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("invalid number at row %d, column %d: %w", i+1, j+1, err)
			}
			if j == col {
				ds.Labels[i] = v
				continue
			}
			features = append(features, v)
		}
		ds.Features[i] = features
	}

	return ds, nil
}

// ReadCSVFile opens path and calls ReadCSV.
func ReadCSVFile(path string, labelColumn int, hasHeader bool) (*Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return ReadCSV(file, labelColumn, hasHeader)
}

// Len returns the number of samples.
func (d *Dataset) Len() int { return len(d.Labels) }

// Width returns the number of features per sample.
func (d *Dataset) Width() int {
	if len(d.Features) == 0 {
		return 0
	}
	return len(d.Features[0])
}

// Limit keeps at most n samples. n <= 0 keeps all.
func (d *Dataset) Limit(n int) {
	if n <= 0 || n >= len(d.Labels) {
		return
	}
	d.Labels = d.Labels[:n]
	d.Features = d.Features[:n]
}

// ScaleFeatures multiplies every feature by k, e.g. 1.0/255 for pixel data.
func (d *Dataset) ScaleFeatures(k float64) {
	for _, row := range d.Features {
		for j := range row {
			row[j] *= k
		}
	}
}

// Leaves wraps every feature in a fresh autodiff leaf, one slice per sample.
func (d *Dataset) Leaves() [][]*autodiff.Value {
	out := make([][]*autodiff.Value, len(d.Features))
	for i, row := range d.Features {
		out[i] = autodiff.Values(row...)
	}
	return out
}

// Targets wraps every label in a fresh autodiff leaf.
func (d *Dataset) Targets() []*autodiff.Value {
	return autodiff.Values(d.Labels...)
}
