// Package chart draws the consumption and spending comparison chart.
//
// A Renderer is created by its owner (a CLI command, an HTTP handler, a TUI
// model) and holds the data it last received. Callers push new data with
// Update and draw with Render; there is no package-level chart state.
package chart

import (
	"errors"
	"io"
	"sync"

	"github.com/rshade/solarfocus/internal/engine"
	"github.com/rshade/solarfocus/internal/render"
)

// ErrNoData is returned by Render before the first Update.
var ErrNoData = errors.New("chart has no data")

// Sink draws a chart onto w.
type Sink interface {
	Draw(w io.Writer, c engine.ComparisonChart, f *render.Formatter) error
}

// Renderer owns the chart data and the sink that draws it. It is safe for
// concurrent use.
type Renderer struct {
	sink      Sink
	formatter *render.Formatter

	mu   sync.RWMutex
	data *engine.ComparisonChart
}

// NewRenderer creates a Renderer drawing with sink. A nil formatter selects
// render.DefaultFormatter.
func NewRenderer(sink Sink, f *render.Formatter) *Renderer {
	if f == nil {
		f = render.DefaultFormatter()
	}
	return &Renderer{sink: sink, formatter: f}
}

// Update replaces the chart data. The bars are copied so later changes to
// c do not leak into the renderer.
func (r *Renderer) Update(c engine.ComparisonChart) {
	bars := make([]engine.Bar, len(c.Bars))
	copy(bars, c.Bars)
	c.Bars = bars

	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = &c
}

// Data returns the current chart data and whether any has been set.
func (r *Renderer) Data() (engine.ComparisonChart, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.data == nil {
		return engine.ComparisonChart{}, false
	}
	return *r.data, true
}

// Render draws the current data to w.
func (r *Renderer) Render(w io.Writer) error {
	c, ok := r.Data()
	if !ok {
		return ErrNoData
	}
	return r.sink.Draw(w, c, r.formatter)
}

// barColors follow the bar order of engine.NewComparisonChart: green for the
// reduction, red for grid spend, yellow for solar spend.
//
//nolint:gochecknoglobals // Static palette.
var barColors = []string{"#2ECC71", "#E74C3C", "#F1C40F"}

func colorFor(i int) string {
	return barColors[i%len(barColors)]
}
