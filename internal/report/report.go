// Package report produces downloadable PDF and XLSX reports for single
// estimates and batch runs.
package report

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rshade/solarfocus/internal/engine"
	"github.com/rshade/solarfocus/internal/engine/batch"
	"github.com/rshade/solarfocus/internal/render"
)

// Format is a report file format.
type Format string

// Report formats.
const (
	FormatPDF  Format = "pdf"
	FormatXLSX Format = "xlsx"
)

// DefaultTitle heads every report unless Options.Title is set.
const DefaultTitle = "Solar Savings Estimate"

// ErrUnknownFormat is returned for formats other than pdf and xlsx.
var ErrUnknownFormat = errors.New("unknown report format")

// Options controls report metadata and number formatting.
type Options struct {
	Title       string
	Formatter   *render.Formatter
	GeneratedAt time.Time
}

func (o Options) withDefaults() Options {
	if o.Title == "" {
		o.Title = DefaultTitle
	}
	if o.Formatter == nil {
		o.Formatter = render.DefaultFormatter()
	}
	if o.GeneratedAt.IsZero() {
		o.GeneratedAt = time.Now()
	}
	return o
}

// ParseFormat normalizes a report format name.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatPDF:
		return FormatPDF, nil
	case FormatXLSX:
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("%w: %q (want pdf or xlsx)", ErrUnknownFormat, s)
	}
}

// ContentType returns the MIME type for f.
func (f Format) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "application/pdf"
}

// Write renders a single-estimate report in format f.
func Write(w io.Writer, f Format, e *engine.Estimate, opts Options) error {
	switch f {
	case FormatPDF:
		return WritePDF(w, e, opts)
	case FormatXLSX:
		return WriteXLSX(w, e, opts)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// WriteBatch renders a batch report in format f.
func WriteBatch(w io.Writer, f Format, results []batch.Result, opts Options) error {
	switch f {
	case FormatPDF:
		return WriteBatchPDF(w, results, opts)
	case FormatXLSX:
		return WriteBatchXLSX(w, results, opts)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// row is a label/value line used by the batch summaries.
type row struct {
	label string
	value string
}
