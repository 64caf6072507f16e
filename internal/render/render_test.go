package render

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/solarfocus/internal/engine"
	"github.com/rshade/solarfocus/internal/engine/batch"
)

func TestEstimate_Table(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Estimate(&buf, FormatTable, DefaultFormatter(), mustEstimate(t, 500, 450)))
	out := buf.String()

	assert.Contains(t, out, "SOLAR ESTIMATE")
	assert.Contains(t, out, "R$ 20,000.00")
	assert.Contains(t, out, "R$ 126,000.00")
	assert.Contains(t, out, "47.6 months (4.0 years)")
	assert.Contains(t, out, "ENVIRONMENT (ANNUAL)")
	assert.Contains(t, out, "2.85 t (2,850 kg)")
	assert.Contains(t, out, "156")
	assert.Contains(t, out, "150,000 kWh")
	assert.Contains(t, out, "Equivalent to driving ~14,844 miles")
}

func TestEstimate_TableNotViable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Estimate(&buf, FormatTable, DefaultFormatter(), mustEstimate(t, 300, 20)))
	out := buf.String()

	assert.Contains(t, out, NotAchievableText)
	assert.NotContains(t, out, "NaN")
	assert.NotContains(t, out, "Inf")
}

func TestEstimate_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Estimate(&buf, FormatJSON, DefaultFormatter(), mustEstimate(t, 300, 250)))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	econ, ok := got["economics"].(map[string]any)
	require.True(t, ok)
	assert.InDelta(t, 12000.0, econ["system_cost"], 1e-6)
	assert.Equal(t, "achievable", econ["payback_status"])
	assert.Contains(t, got, "chart")
}

func TestEstimate_NDJSONIsOneLine(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Estimate(&buf, FormatNDJSON, DefaultFormatter(), mustEstimate(t, 300, 250)))
	assert.Equal(t, 1, strings.Count(buf.String(), "\n"))
}

func TestEstimate_UnknownFormat(t *testing.T) {
	err := Estimate(&bytes.Buffer{}, Format("xml"), DefaultFormatter(), mustEstimate(t, 300, 250))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func batchResults(t *testing.T) []batch.Result {
	t.Helper()
	return []batch.Result{
		{Row: 2, Label: "casa", Estimate: mustEstimate(t, 300, 250)},
		{Row: 3, Label: "bad", Err: engine.ErrInvalidInput, Error: "bad: invalid input"},
		{Row: 4, Estimate: mustEstimate(t, 300, 20)},
	}
}

func TestBatch_Table(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Batch(&buf, FormatTable, DefaultFormatter(), batchResults(t)))
	out := buf.String()

	assert.Contains(t, out, "ROW")
	assert.Contains(t, out, "casa")
	assert.Contains(t, out, "ERR")
	assert.Contains(t, out, "n/a")
	assert.Contains(t, out, "Households: 3 (failed: 1, payback not achievable: 1)")
	assert.Contains(t, out, "error: bad: invalid input")
}

func TestBatch_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Batch(&buf, FormatJSON, DefaultFormatter(), batchResults(t)))

	var doc struct {
		Summary batch.Summary `json:"summary"`
		Results []struct {
			Row   int    `json:"row"`
			Error string `json:"error"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, 3, doc.Summary.Households)
	require.Len(t, doc.Results, 3)
	assert.Equal(t, "bad: invalid input", doc.Results[1].Error)
}

func TestBatch_NDJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Batch(&buf, FormatNDJSON, DefaultFormatter(), batchResults(t)))

	lines := 0
	sc := bufio.NewScanner(&buf)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		var row map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &row))
		lines++
	}
	assert.Equal(t, 3, lines)
}

func TestSections(t *testing.T) {
	secs := Sections(DefaultFormatter(), mustEstimate(t, 300, 250))
	require.Len(t, secs, 3)
	assert.Equal(t, "Economics", secs[1].Heading)

	values := map[string]string{}
	for _, s := range secs {
		for _, l := range s.Lines {
			values[l.Label] = l.Value
		}
	}
	assert.Equal(t, "3.00 kW", values["System power"])
	assert.Equal(t, "R$ 66,000.00", values["Net savings (25 years)"])
	assert.Equal(t, "54.5 months (4.5 years)", values["Payback"])
	assert.Equal(t, "94", values["Trees equivalent"])
}
