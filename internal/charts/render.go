package charts

import (
	"bytes"
	"fmt"
	"io"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"launchdash/internal/models"
)

// EmptyMessage is drawn on a chart with no matching launches.
const EmptyMessage = "No launches match the current filters"

// RenderOptions controls the size of rendered chart images.
type RenderOptions struct {
	Width  int
	Height int
}

// DefaultRenderOptions is used when a dimension is zero.
var DefaultRenderOptions = RenderOptions{Width: 800, Height: 450}

func (o RenderOptions) withDefaults() RenderOptions {
	if o.Width <= 0 {
		o.Width = DefaultRenderOptions.Width
	}
	if o.Height <= 0 {
		o.Height = DefaultRenderOptions.Height
	}
	return o
}

// outcomeColors keeps Success and Failure the same color whichever comes first.
var outcomeColors = map[string]drawing.Color{
	models.LabelSuccess: drawing.ColorFromHex("2ca02c"),
	models.LabelFailure: drawing.ColorFromHex("d62728"),
}

// RenderPiePNG draws a pie chart spec as a PNG image.
func RenderPiePNG(w io.Writer, spec models.PieChart, opts RenderOptions) error {
	opts = opts.withDefaults()
	if spec.IsEmpty() {
		return renderEmpty(w, spec.Title, opts)
	}

	values := make([]chart.Value, 0, len(spec.Slices))
	for _, s := range spec.Slices {
		v := chart.Value{
			Value: float64(s.Count),
			Label: fmt.Sprintf("%s (%d)", s.Label, s.Count),
		}
		if col, ok := outcomeColors[s.Label]; ok {
			v.Style = chart.Style{FillColor: col}
		}
		values = append(values, v)
	}

	pie := chart.PieChart{
		Title:  spec.Title,
		Width:  opts.Width,
		Height: opts.Height,
		Values: values,
	}

	var buf bytes.Buffer
	if err := pie.Render(chart.PNG, &buf); err != nil {
		return fmt.Errorf("render pie chart: %w", err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// pointStyle renders markers only, sized per point by payload mass.
func pointStyle(col drawing.Color, points []models.ScatterPoint) chart.Style {
	return chart.Style{
		StrokeWidth: chart.Disabled,
		DotColor:    col.WithAlpha(180),
		DotWidth:    MinMarkerSize,
		DotWidthProvider: func(_, _ chart.Range, index int, _, _ float64) float64 {
			if index < 0 || index >= len(points) {
				return MinMarkerSize
			}
			// DotWidth is a radius.
			return points[index].Size / 2
		},
	}
}

// RenderScatterPNG draws a scatter chart spec as a PNG image, one series per
// booster category.
func RenderScatterPNG(w io.Writer, spec models.ScatterChart, opts RenderOptions) error {
	opts = opts.withDefaults()
	if spec.IsEmpty() {
		return renderEmpty(w, spec.Title, opts)
	}

	series := make([]chart.Series, 0, len(spec.Categories))
	for i, category := range spec.Categories {
		points := spec.PointsFor(category)
		xs := make([]float64, len(points))
		ys := make([]float64, len(points))
		for j, p := range points {
			xs[j] = p.PayloadMassKg
			ys[j] = float64(p.Outcome)
		}
		series = append(series, chart.ContinuousSeries{
			Name:    category,
			XValues: xs,
			YValues: ys,
			Style:   pointStyle(chart.GetDefaultColor(i), points),
		})
	}

	xMin, xMax := spec.Payload.Low, spec.Payload.High
	if xMax <= xMin {
		xMin, xMax = xMin-500, xMax+500
	}

	ch := chart.Chart{
		Title:      spec.Title,
		Width:      opts.Width,
		Height:     opts.Height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis: chart.XAxis{
			Name:  spec.XLabel,
			Range: &chart.ContinuousRange{Min: xMin, Max: xMax},
		},
		YAxis: chart.YAxis{
			Name:  spec.YLabel,
			Range: &chart.ContinuousRange{Min: -0.5, Max: 1.5},
			Ticks: []chart.Tick{
				{Value: -0.5, Label: ""},
				{Value: 0, Label: "0"},
				{Value: 1, Label: "1"},
				{Value: 1.5, Label: ""},
			},
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.LegendLeft(&ch)}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return fmt.Errorf("render scatter chart: %w", err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// renderEmpty draws a blank panel with the chart title and EmptyMessage.
func renderEmpty(w io.Writer, title string, opts RenderOptions) error {
	r, err := chart.PNG(opts.Width, opts.Height)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}

	r.SetFillColor(drawing.ColorWhite)
	r.MoveTo(0, 0)
	r.LineTo(opts.Width, 0)
	r.LineTo(opts.Width, opts.Height)
	r.LineTo(0, opts.Height)
	r.Close()
	r.Fill()

	font, err := chart.GetDefaultFont()
	if err != nil {
		return fmt.Errorf("load font: %w", err)
	}
	r.SetFont(font)
	r.SetFontColor(drawing.ColorBlack)

	r.SetFontSize(14)
	tb := r.MeasureText(title)
	r.Text(title, (opts.Width-tb.Width())/2, 30)

	r.SetFontSize(12)
	mb := r.MeasureText(EmptyMessage)
	r.Text(EmptyMessage, (opts.Width-mb.Width())/2, opts.Height/2)

	return r.Save(w)
}
