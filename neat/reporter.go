package neat

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
)

// Reporter receives a summary after every evaluated generation.
type Reporter interface {
	ReportGeneration(stats GenerationStats) error
}

// CSVReporter appends one CSV row per generation to a writer.
type CSVReporter struct {
	w             io.Writer
	headerWritten bool
}

// NewCSVReporter creates a reporter writing to w. The header row is emitted
// with the first record.
func NewCSVReporter(w io.Writer) *CSVReporter {
	return &CSVReporter{w: w}
}

// ReportGeneration writes a single stats record.
func (r *CSVReporter) ReportGeneration(stats GenerationStats) error {
	records := []GenerationStats{stats}

	if !r.headerWritten {
		if err := gocsv.Marshal(records, r.w); err != nil {
			return fmt.Errorf("writing generation stats: %w", err)
		}
		r.headerWritten = true
		return nil
	}

	if err := gocsv.MarshalWithoutHeaders(records, r.w); err != nil {
		return fmt.Errorf("writing generation stats: %w", err)
	}
	return nil
}
