package export

import (
	"fmt"

	"github.com/gocarina/gocsv"
)

// CSVExporter renders record slices into CSV bytes using their csv struct tags.
type CSVExporter struct{}

// NewCSVExporter builds a CSV exporter.
func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

// Render produces CSV encoded bytes for a slice of tagged record structs.
func (e *CSVExporter) Render(records interface{}) ([]byte, error) {
	out, err := gocsv.MarshalBytes(records)
	if err != nil {
		return nil, fmt.Errorf("encode csv: %w", err)
	}
	return out, nil
}
