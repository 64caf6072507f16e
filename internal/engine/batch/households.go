package batch

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"

	"github.com/rshade/solarfocus/internal/engine"
)

// Loader errors.
var (
	ErrUnsupportedFormat = errors.New("unsupported household file format")
	ErrMissingColumn     = errors.New("missing required column")
	ErrNoHouseholds      = errors.New("no households found")
)

// Household is one row of an input file. Err is set, and Input holds only
// the label, when the row could not be parsed or validated.
type Household struct {
	// Row is the 1-based position in the file, counting the header for
	// tabular formats.
	Row   int
	Input engine.Input
	Err   error
}

// rawHousehold is a row before parsing, as read from any format.
type rawHousehold struct {
	Label       string `yaml:"label"`
	Consumption string `yaml:"consumption"`
	Bill        string `yaml:"bill"`
	Unit        string `yaml:"unit"`
}

// Load reads households from path. The format is chosen by extension:
// .yaml/.yml, .csv or .xlsx.
func Load(path string) ([]Household, error) {
	var (
		raws  []rawHousehold
		first int
		err   error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		raws, err = loadYAML(path)
		first = 1
	case ".csv":
		raws, err = loadCSV(path)
		first = 2
	case ".xlsx":
		raws, err = loadXLSX(path)
		first = 2
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
	if err != nil {
		return nil, err
	}
	if len(raws) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoHouseholds, path)
	}

	out := make([]Household, len(raws))
	for i, r := range raws {
		out[i].Row = first + i
		in, parseErr := engine.ParseInput(r.Consumption, r.Bill, r.Unit)
		if parseErr != nil {
			out[i].Input.Label = r.Label
			out[i].Err = parseErr
			continue
		}
		in.Label = r.Label
		out[i].Input = in
	}
	return out, nil
}

// yamlFile accepts either a top-level list or a "households" key.
type yamlFile struct {
	Households []rawHousehold `yaml:"households"`
}

func loadYAML(path string) ([]rawHousehold, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var list []rawHousehold
	if err = yaml.Unmarshal(data, &list); err == nil {
		return list, nil
	}

	var doc yamlFile
	if err = yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return doc.Households, nil
}

func loadCSV(path string) ([]rawHousehold, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	var rows [][]string
	for {
		rec, readErr := r.Read()
		if errors.Is(readErr, io.EOF) {
			break
		}
		if readErr != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, readErr)
		}
		rows = append(rows, rec)
	}
	return fromRows(rows)
}

func loadXLSX(path string) ([]rawHousehold, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return fromRows(rows)
}

// columnAliases maps accepted header names to field names.
//
//nolint:gochecknoglobals // Static lookup table.
var columnAliases = map[string]string{
	"label":           "label",
	"name":            "label",
	"consumption":     "consumption",
	"consumption_kwh": "consumption",
	"bill":            "bill",
	"monthly_bill":    "bill",
	"unit":            "unit",
}

// fromRows maps a header row plus data rows onto households. Blank rows are
// kept so row numbers stay aligned with the file; they fail validation.
func fromRows(rows [][]string) ([]rawHousehold, error) {
	if len(rows) == 0 {
		return nil, nil
	}

	cols := make(map[string]int)
	for i, h := range rows[0] {
		if name, ok := columnAliases[strings.ToLower(strings.TrimSpace(h))]; ok {
			cols[name] = i
		}
	}
	for _, required := range []string{"consumption", "bill"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, required)
		}
	}

	cell := func(row []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	out := make([]rawHousehold, 0, len(rows)-1)
	for _, row := range rows[1:] {
		out = append(out, rawHousehold{
			Label:       cell(row, "label"),
			Consumption: cell(row, "consumption"),
			Bill:        cell(row, "bill"),
			Unit:        cell(row, "unit"),
		})
	}
	return out, nil
}

// formatRowRef is used in error messages.
func formatRowRef(h Household) string {
	if h.Input.Label != "" {
		return h.Input.Label
	}
	return "row " + strconv.Itoa(h.Row)
}
