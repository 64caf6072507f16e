package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/solarfocus/internal/engine"
)

func mustEstimate(t *testing.T, consumption, bill float64) *engine.Estimate {
	t.Helper()
	e, err := engine.Compute(engine.Input{ConsumptionKWh: consumption, Bill: bill})
	require.NoError(t, err)
	return e
}

func TestNewFormatter(t *testing.T) {
	f, err := NewFormatter(LocaleEnglish, "USD", "")
	require.NoError(t, err)
	assert.Equal(t, "$", f.Symbol())

	f, err = NewFormatter(LocalePortuguese, "BRL", "")
	require.NoError(t, err)
	assert.Equal(t, "R$", f.Symbol())

	f, err = NewFormatter(LocaleEnglish, "CHF", "")
	require.NoError(t, err)
	assert.Equal(t, "CHF", f.Symbol(), "unknown symbols fall back to the code")

	f, err = NewFormatter(LocaleEnglish, "BRL", "reais")
	require.NoError(t, err)
	assert.Equal(t, "reais", f.Symbol())

	_, err = NewFormatter("fr", "BRL", "")
	require.ErrorIs(t, err, ErrUnsupportedLocale)

	_, err = NewFormatter(LocaleEnglish, "XYZW", "")
	require.Error(t, err)
}

func TestFormatter_English(t *testing.T) {
	f := DefaultFormatter()

	assert.Equal(t, "R$ 12,000.00", f.Money(12000))
	assert.Equal(t, "-R$ 3,000.00", f.Money(-3000))
	assert.Equal(t, "88.0%", f.Percent(88))
	assert.Equal(t, "3.00", f.Number(3, 2))
	assert.Equal(t, "2.85 t", f.Tonnes(2.85))
}

func TestFormatter_Portuguese(t *testing.T) {
	f, err := NewFormatter(LocalePortuguese, "BRL", "")
	require.NoError(t, err)

	assert.Equal(t, "R$ 12.000,00", f.Money(12000))
	assert.Equal(t, "93,3%", f.Percent(93.3333))
}

func TestFormatter_Payback(t *testing.T) {
	f := DefaultFormatter()

	assert.Equal(t, "54.5 months (4.5 years)", f.Payback(mustEstimate(t, 300, 250)))
	assert.Equal(t, "4.5 yr", f.PaybackShort(mustEstimate(t, 300, 250)))

	notViable := mustEstimate(t, 300, 30)
	assert.Equal(t, NotAchievableText, f.Payback(notViable))
	assert.Equal(t, "n/a", f.PaybackShort(notViable))
}

func TestFormatter_BarValue(t *testing.T) {
	f := DefaultFormatter()
	assert.Equal(t, "88.0%", f.BarValue(engine.Bar{Value: 88, Kind: engine.BarPercent}))
	assert.Equal(t, "R$ 250.00", f.BarValue(engine.Bar{Value: 250, Kind: engine.BarCurrency}))
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": FormatTable, "TABLE": FormatTable, "json": FormatJSON, " ndjson ": FormatNDJSON} {
		got, err := ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseFormat("yaml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}
