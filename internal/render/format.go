// Package render formats estimates for people and machines: aligned text
// tables, JSON and NDJSON. All rounding happens here.
package render

import (
	"fmt"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/rshade/solarfocus/internal/engine"
)

// NotAchievableText replaces the payback figure when the bill does not
// exceed the minimum utility fee.
const NotAchievableText = "payback not achievable"

// Supported locales.
const (
	LocaleEnglish    = "en"
	LocalePortuguese = "pt-BR"
)

// ErrUnsupportedLocale is returned by NewFormatter for unknown locales.
var ErrUnsupportedLocale = fmt.Errorf("locale must be %s or %s", LocaleEnglish, LocalePortuguese)

//nolint:gochecknoglobals // Static symbol table.
var currencySymbols = map[string]string{
	"BRL": "R$",
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
}

// Formatter turns raw values into display strings for one locale and
// currency. It is safe for concurrent use.
type Formatter struct {
	printer *message.Printer
	symbol  string
}

// NewFormatter creates a Formatter. currencyCode must be an ISO 4217 code;
// symbol, when non-empty, overrides the symbol derived from it.
func NewFormatter(locale, currencyCode, symbol string) (*Formatter, error) {
	var tag language.Tag
	switch locale {
	case LocaleEnglish, "":
		tag = language.English
	case LocalePortuguese:
		tag = language.BrazilianPortuguese
	default:
		return nil, fmt.Errorf("%w: got %q", ErrUnsupportedLocale, locale)
	}

	unit, err := currency.ParseISO(currencyCode)
	if err != nil {
		return nil, fmt.Errorf("invalid currency %q: %w", currencyCode, err)
	}

	if symbol == "" {
		symbol = symbolFor(unit)
	}
	return &Formatter{printer: message.NewPrinter(tag), symbol: symbol}, nil
}

// DefaultFormatter formats English numbers with the BRL symbol.
func DefaultFormatter() *Formatter {
	return &Formatter{printer: message.NewPrinter(language.English), symbol: "R$"}
}

func symbolFor(unit currency.Unit) string {
	if s, ok := currencySymbols[unit.String()]; ok {
		return s
	}
	return unit.String()
}

// Symbol returns the currency symbol in use.
func (f *Formatter) Symbol() string {
	return f.symbol
}

// Number formats v with grouping and exactly decimals fraction digits.
func (f *Formatter) Number(v float64, decimals int) string {
	return f.printer.Sprint(number.Decimal(v, number.Scale(decimals)))
}

// Money formats a currency amount, e.g. "R$ 12,000.00".
func (f *Formatter) Money(v float64) string {
	if v < 0 {
		return "-" + f.symbol + " " + f.Number(-v, 2)
	}
	return f.symbol + " " + f.Number(v, 2)
}

// Percent formats a percentage with one decimal, e.g. "88.0%".
func (f *Formatter) Percent(v float64) string {
	return f.Number(v, 1) + "%"
}

// Payback formats the payback period in months and years, or
// NotAchievableText for a degenerate result.
func (f *Formatter) Payback(e *engine.Estimate) string {
	if !e.Viable() {
		return NotAchievableText
	}
	return f.Number(e.Economics.PaybackMonths, 1) + " months (" + f.Number(e.PaybackYears, 1) + " years)"
}

// PaybackShort formats the payback in years only, for narrow columns.
func (f *Formatter) PaybackShort(e *engine.Estimate) string {
	if !e.Viable() {
		return "n/a"
	}
	return f.Number(e.PaybackYears, 1) + " yr"
}

// BarValue formats a chart bar by kind.
func (f *Formatter) BarValue(b engine.Bar) string {
	if b.Kind == engine.BarPercent {
		return f.Percent(b.Value)
	}
	return f.Money(b.Value)
}

// Tonnes formats a mass in tonnes, e.g. "2.85 t".
func (f *Formatter) Tonnes(t float64) string {
	return f.Number(t, 2) + " t"
}

// ParseFormat normalizes an output format name.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatTable, "":
		return FormatTable, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatNDJSON:
		return FormatNDJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}
