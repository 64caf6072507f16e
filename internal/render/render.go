package render

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/goccy/go-json"

	"github.com/rshade/solarfocus/internal/engine"
	"github.com/rshade/solarfocus/internal/engine/batch"
	"github.com/rshade/solarfocus/internal/greenops"
)

// Format is an output format.
type Format string

// Output formats.
const (
	FormatTable  Format = "table"
	FormatJSON   Format = "json"
	FormatNDJSON Format = "ndjson"
)

// ErrUnknownFormat is returned for formats other than table, json and ndjson.
var ErrUnknownFormat = errors.New("unknown output format")

// tabwriterPadding is the minimum padding between columns.
const tabwriterPadding = 2

// Estimate writes a single estimate in the given format.
func Estimate(w io.Writer, format Format, f *Formatter, e *engine.Estimate) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, e)
	case FormatNDJSON:
		return json.NewEncoder(w).Encode(e)
	case FormatTable:
		return EstimateTable(w, f, e)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// batchDocument is the JSON shape of a batch run.
type batchDocument struct {
	Summary batch.Summary  `json:"summary"`
	Results []batch.Result `json:"results"`
}

// Batch writes batch results in the given format. NDJSON emits one result
// per line followed by no summary line.
func Batch(w io.Writer, format Format, f *Formatter, results []batch.Result) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, batchDocument{Summary: batch.Summarize(results), Results: results})
	case FormatNDJSON:
		enc := json.NewEncoder(w)
		for _, r := range results {
			if err := enc.Encode(r); err != nil {
				return fmt.Errorf("encoding row %d: %w", r.Row, err)
			}
		}
		return nil
	case FormatTable:
		return BatchTable(w, f, results)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// EstimateTable writes a labelled, aligned report of one estimate.
func EstimateTable(w io.Writer, f *Formatter, e *engine.Estimate) error {
	tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)

	if _, err := fmt.Fprintln(tw, "SOLAR ESTIMATE"); err != nil {
		return fmt.Errorf("writing estimate: %w", err)
	}
	for _, sec := range Sections(f, e) {
		if _, err := fmt.Fprintf(tw, "\n%s\n", strings.ToUpper(sec.Heading)); err != nil {
			return fmt.Errorf("writing estimate: %w", err)
		}
		for _, l := range sec.Lines {
			if _, err := fmt.Fprintf(tw, "  %s:\t%s\n", l.Label, l.Value); err != nil {
				return fmt.Errorf("writing estimate: %w", err)
			}
		}
	}

	if !e.Equivalencies.IsEmpty && e.Equivalencies.DisplayText != "" {
		if _, err := fmt.Fprintf(tw, "  %s\n", e.Equivalencies.DisplayText); err != nil {
			return fmt.Errorf("writing equivalencies: %w", err)
		}
	}

	return tw.Flush()
}

// BatchTable writes one row per household and a totals footer.
func BatchTable(w io.Writer, f *Formatter, results []batch.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)

	if _, err := fmt.Fprintln(tw, "ROW\tLABEL\tKWH\tBILL\tPOWER(kW)\tCOST\tPAYBACK\tCO2(t/yr)\tTREES"); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if _, err := fmt.Fprintln(tw, "---\t-----\t---\t----\t---------\t----\t-------\t---------\t-----"); err != nil {
		return fmt.Errorf("writing separator: %w", err)
	}

	for _, r := range results {
		label := r.Label
		if label == "" {
			label = "-"
		}

		var err error
		if r.Estimate == nil {
			_, err = fmt.Fprintf(tw, "%d\t%s\tERR\t-\t-\t-\t-\t-\t-\n", r.Row, label)
		} else {
			e := r.Estimate
			_, err = fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%d\n",
				r.Row, label,
				f.Number(e.Input.ConsumptionKWh, 0),
				f.Money(e.Input.Bill),
				f.Number(e.Economics.SystemPowerKW, 2),
				f.Money(e.Economics.SystemCost),
				f.PaybackShort(e),
				f.Number(e.Environmental.CO2AvoidedTonnes, 2),
				e.Environmental.TreesEquivalent,
			)
		}
		if err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	s := batch.Summarize(results)
	if _, err := fmt.Fprintf(w, "\nHouseholds: %d (failed: %d, payback not achievable: %d)\n",
		s.Households, s.Failed, s.NotViable); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Total system cost: %s  Annual net savings: %s  CO2 avoided: %s/yr  Trees: %d\n",
		f.Money(s.TotalSystemCost), f.Money(s.AnnualSavings), f.Tonnes(s.AnnualCO2Kg/greenops.KgPerTonne), s.Trees); err != nil {
		return err
	}

	for _, r := range results {
		if r.Err != nil {
			if _, err := fmt.Fprintf(w, "  error: %s\n", r.Error); err != nil {
				return err
			}
		}
	}
	return nil
}
