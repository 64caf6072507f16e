package httpapi

import (
	"bytes"
	"embed"
	"html/template"
	"net/url"

	"github.com/rshade/solarfocus/internal/chart"
	"github.com/rshade/solarfocus/internal/engine"
	"github.com/rshade/solarfocus/internal/render"
)

//go:embed templates/index.html
var templateFS embed.FS

//nolint:gochecknoglobals // Parsed once at init; templates are immutable.
var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

type pageData struct {
	Lang        string
	Symbol      string
	Consumption string
	Bill        string
	Error       string
	Result      *resultView
}

type resultView struct {
	Viable      bool
	Sections    []render.Section
	Equivalency string
	Chart       template.HTML
	Query       template.URL
}

// newResultView prepares an estimate for the page. The chart is drawn by a
// renderer owned by this request.
func newResultView(f *render.Formatter, e *engine.Estimate) (*resultView, error) {
	r := chart.NewRenderer(chart.SVGSink{}, f)
	r.Update(e.Chart)

	var svg bytes.Buffer
	if err := r.Render(&svg); err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("consumption", formatQueryFloat(e.Input.ConsumptionKWh))
	q.Set("bill", formatQueryFloat(e.Input.Bill))

	view := &resultView{
		Viable:   e.Viable(),
		Sections: render.Sections(f, e),
		// The SVG sink escapes every text node it writes.
		Chart: template.HTML(svg.String()), //nolint:gosec // See above.
		Query: template.URL(q.Encode()),    //nolint:gosec // Built by url.Values.
	}
	if !e.Equivalencies.IsEmpty {
		view.Equivalency = e.Equivalencies.DisplayText
	}
	return view, nil
}
