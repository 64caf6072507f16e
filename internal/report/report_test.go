package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/rshade/solarfocus/internal/engine"
	"github.com/rshade/solarfocus/internal/engine/batch"
)

var generated = time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)

func estimate(t *testing.T, consumption, bill float64) *engine.Estimate {
	t.Helper()
	e, err := engine.Compute(engine.Input{ConsumptionKWh: consumption, Bill: bill})
	require.NoError(t, err)
	return e
}

func results(t *testing.T) []batch.Result {
	t.Helper()
	return []batch.Result{
		{Row: 2, Label: "casa", Estimate: estimate(t, 300, 250)},
		{Row: 3, Label: "bad", Err: engine.ErrInvalidInput, Error: "bad: invalid input"},
		{Row: 4, Label: "small", Estimate: estimate(t, 150, 20)},
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("PDF")
	require.NoError(t, err)
	assert.Equal(t, FormatPDF, f)
	assert.Equal(t, "application/pdf", f.ContentType())

	f, err = ParseFormat("xlsx")
	require.NoError(t, err)
	assert.Contains(t, f.ContentType(), "spreadsheetml")

	_, err = ParseFormat("docx")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestWritePDF(t *testing.T) {
	for name, e := range map[string]*engine.Estimate{
		"viable":     estimate(t, 300, 250),
		"not viable": estimate(t, 300, 30),
	} {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Write(&buf, FormatPDF, e, Options{GeneratedAt: generated}))
			assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
			assert.Greater(t, buf.Len(), 500)
		})
	}
}

func TestWriteBatchPDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteBatch(&buf, FormatPDF, results(t), Options{GeneratedAt: generated}))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatXLSX, estimate(t, 300, 250), Options{GeneratedAt: generated}))

	x, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer x.Close()

	assert.Equal(t, []string{SheetEstimate, SheetChartData}, x.GetSheetList())

	title, err := x.GetCellValue(SheetEstimate, "A1")
	require.NoError(t, err)
	assert.Equal(t, DefaultTitle, title)

	rows, err := x.GetRows(SheetEstimate)
	require.NoError(t, err)
	found := false
	for _, r := range rows {
		if len(r) == 2 && r[0] == "System cost" {
			assert.Equal(t, "R$ 12,000.00", r[1])
			found = true
		}
	}
	assert.True(t, found, "system cost row present")

	data, err := x.GetRows(SheetChartData)
	require.NoError(t, err)
	require.Len(t, data, 4)
	assert.Equal(t, "Grid Electricity Spend", data[2][0])
	assert.Equal(t, "250", data[2][1])
}

func TestWriteBatchXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteBatch(&buf, FormatXLSX, results(t), Options{GeneratedAt: generated}))

	x, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer x.Close()

	rows, err := x.GetRows(SheetHouseholds)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "casa", rows[1][1])
	assert.Equal(t, "bad: invalid input", rows[2][len(rows[2])-1])
	assert.Equal(t, "not_viable", rows[3][8])

	households, err := x.GetCellValue(SheetSummary, "B3")
	require.NoError(t, err)
	assert.Equal(t, "3", households)
}

func TestWrite_UnknownFormat(t *testing.T) {
	require.ErrorIs(t, Write(&bytes.Buffer{}, Format("odt"), estimate(t, 300, 250), Options{}), ErrUnknownFormat)
	require.ErrorIs(t, WriteBatch(&bytes.Buffer{}, Format("odt"), nil, Options{}), ErrUnknownFormat)
}
