package cli

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/solarfocus/internal/engine"
)

func TestEstimateCmd_Table(t *testing.T) {
	stdout, _, err := executeCmd(t, "estimate", "--consumption", "300", "--bill", "250", "--label", "Casa")
	require.NoError(t, err)

	assert.Contains(t, stdout, "SOLAR ESTIMATE")
	assert.Contains(t, stdout, "R$ 12,000.00")
	assert.Contains(t, stdout, "54.5 months (4.5 years)")
	assert.Contains(t, stdout, "Casa")
	assert.NotContains(t, stdout, "Consumption and Spending Comparison")
}

func TestEstimateCmd_Chart(t *testing.T) {
	stdout, _, err := executeCmd(t, "estimate", "--consumption", "300", "--bill", "250", "--chart")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Consumption and Spending Comparison")
	assert.Contains(t, stdout, "Grid Electricity Spend")
}

func TestEstimateCmd_JSON(t *testing.T) {
	stdout, _, err := executeCmd(t, "estimate", "--consumption", "0.3", "--unit", "MWh",
		"--bill", "250", "--output", "json")
	require.NoError(t, err)

	var got engine.Estimate
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.InDelta(t, 300.0, got.Input.ConsumptionKWh, 1e-9)
	assert.InDelta(t, 12000.0, got.Economics.SystemCost, 1e-6)
	assert.InDelta(t, 4.545454545, got.PaybackYears, 1e-6)
}

func TestEstimateCmd_NotViable(t *testing.T) {
	stdout, _, err := executeCmd(t, "estimate", "--consumption", "300", "--bill", "30")
	require.NoError(t, err)
	assert.Contains(t, stdout, "payback not achievable")
	assert.NotContains(t, stdout, "NaN")
	assert.NotContains(t, stdout, "Inf")
}

func TestEstimateCmd_Locale(t *testing.T) {
	stdout, _, err := executeCmd(t, "--locale", "pt-BR", "estimate", "--consumption", "300", "--bill", "250")
	require.NoError(t, err)
	assert.Contains(t, stdout, "R$ 12.000,00")
}

func TestEstimateCmd_Currency(t *testing.T) {
	stdout, _, err := executeCmd(t, "--currency", "usd", "estimate", "--consumption", "300", "--bill", "250")
	require.NoError(t, err)
	assert.Contains(t, stdout, "$ 12,000.00")
	assert.NotContains(t, stdout, "R$")
}

func TestEstimateCmd_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantIs  error
		wantMsg string
	}{
		{
			name:    "missing bill",
			args:    []string{"estimate", "--consumption", "300"},
			wantMsg: "--consumption and --bill are required",
		},
		{
			name:   "negative consumption",
			args:   []string{"estimate", "--consumption", "-300", "--bill", "250"},
			wantIs: engine.ErrInvalidInput,
		},
		{
			name:   "non-numeric bill",
			args:   []string{"estimate", "--consumption", "300", "--bill", "lots"},
			wantIs: engine.ErrInvalidInput,
		},
		{
			name:   "unknown unit",
			args:   []string{"estimate", "--consumption", "300", "--bill", "250", "--unit", "BTU"},
			wantIs: engine.ErrUnknownUnit,
		},
		{
			name:    "unknown output",
			args:    []string{"estimate", "--consumption", "300", "--bill", "250", "--output", "xml"},
			wantMsg: "unknown output format",
		},
		{
			name:    "unknown locale",
			args:    []string{"--locale", "fr", "estimate", "--consumption", "300", "--bill", "250"},
			wantMsg: "locale",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := executeCmd(t, tt.args...)
			require.Error(t, err)
			if tt.wantIs != nil {
				require.ErrorIs(t, err, tt.wantIs)
			}
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestValidateEstimateFlags(t *testing.T) {
	require.NoError(t, ValidateEstimateFlags(&EstimateParams{Interactive: true}))
	require.NoError(t, ValidateEstimateFlags(&EstimateParams{Consumption: "1", Bill: "2"}))
	require.Error(t, ValidateEstimateFlags(&EstimateParams{Consumption: "1"}))
	require.Error(t, ValidateEstimateFlags(&EstimateParams{}))
}
