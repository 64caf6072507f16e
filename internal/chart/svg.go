package chart

import (
	"html"
	"io"
	"math"
	"strings"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/rshade/solarfocus/internal/engine"
	"github.com/rshade/solarfocus/internal/render"
)

// SVG layout defaults, in pixels.
const (
	DefaultSVGWidth  = 640
	DefaultSVGHeight = 400

	svgPaddingTop    = 56
	svgPaddingLeft   = 48
	svgPaddingRight  = 16
	svgPaddingBottom = 16
	svgBarShare      = 0.6
	svgBarAlpha      = 180
	svgAxisNameSize  = 11.0
	svgAxisNameLeft  = 14
)

// SVGSink draws a vertical bar chart as a standalone SVG document using
// go-chart.
type SVGSink struct {
	Width  int
	Height int
}

// Draw implements Sink.
func (s SVGSink) Draw(w io.Writer, c engine.ComparisonChart, f *render.Formatter) error {
	if f == nil {
		f = render.DefaultFormatter()
	}
	if len(c.Bars) == 0 {
		return ErrNoData
	}
	width, height := s.Width, s.Height
	if width <= 0 {
		width = DefaultSVGWidth
	}
	if height <= 0 {
		height = DefaultSVGHeight
	}

	slot := float64(width-svgPaddingLeft-svgPaddingRight) / float64(len(c.Bars))
	bars := make([]gochart.Value, len(c.Bars))
	lo, hi := 0.0, 0.0
	for i, b := range c.Bars {
		color := hexColor(colorFor(i))
		bars[i] = gochart.Value{
			Label: html.EscapeString(b.Label + " (" + f.BarValue(b) + ")"),
			Value: b.Value,
			Style: gochart.Style{
				FillColor:   color.WithAlpha(svgBarAlpha),
				StrokeColor: color,
				StrokeWidth: 1,
			},
		}
		lo = math.Min(lo, b.Value)
		hi = math.Max(hi, b.Value)
	}
	if hi <= lo {
		hi = lo + 1
	}

	graph := gochart.BarChart{
		Title:  html.EscapeString(c.Title),
		Width:  width,
		Height: height,
		Background: gochart.Style{
			Padding: gochart.Box{
				Top:    svgPaddingTop,
				Left:   svgPaddingLeft,
				Right:  svgPaddingRight,
				Bottom: svgPaddingBottom,
			},
		},
		BarWidth:     int(slot * svgBarShare),
		BarSpacing:   int(slot * (1 - svgBarShare)),
		UseBaseValue: true,
		BaseValue:    0,
		YAxis: gochart.YAxis{
			Range: &gochart.ContinuousRange{Min: lo, Max: hi},
		},
		Bars:     bars,
		Elements: []gochart.Renderable{yAxisName(html.EscapeString(c.YAxisLabel))},
	}
	return graph.Render(gochart.SVG, w)
}

// yAxisName draws name rotated along the left edge, centred on the canvas.
func yAxisName(name string) gochart.Renderable {
	return func(r gochart.Renderer, canvas gochart.Box, _ gochart.Style) {
		if name == "" {
			return
		}
		if font, err := gochart.GetDefaultFont(); err == nil {
			r.SetFont(font)
		}
		r.SetFontColor(drawing.ColorFromHex("555555"))
		r.SetFontSize(svgAxisNameSize)
		r.SetTextRotation(3 * math.Pi / 2)
		r.Text(name, svgAxisNameLeft, canvas.Top+canvas.Height()/2)
		r.ClearTextRotation()
	}
}

func hexColor(hex string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}
