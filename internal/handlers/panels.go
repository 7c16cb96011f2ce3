package handlers

import (
	"net/url"
	"strconv"

	"launchdash/internal/dashboard"
	"launchdash/internal/models"
)

// Panel is the template view of one chart output slot.
type Panel struct {
	ID       string
	Title    string
	ImageURL string
	Empty    bool
	Pie      *models.PieChart
	Scatter  *models.ScatterChart
}

// chartImageURL returns the PNG endpoint of an output for the given state.
func chartImageURL(id dashboard.OutputID, state dashboard.State) string {
	q := url.Values{}
	q.Set("site", state.Site)
	if id == dashboard.PayloadScatterChart {
		q.Set("min", formatBound(state.Payload.Low))
		q.Set("max", formatBound(state.Payload.High))
	}
	return "/charts/" + string(id) + ".png?" + q.Encode()
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// buildPanels converts dispatcher outputs into template panels.
func buildPanels(outputs []dashboard.Output, state dashboard.State) []Panel {
	panels := make([]Panel, 0, len(outputs))
	for _, out := range outputs {
		p := Panel{
			ID:       string(out.ID),
			ImageURL: chartImageURL(out.ID, state),
		}
		switch v := out.Value.(type) {
		case models.PieChart:
			p.Title = v.Title
			p.Empty = v.IsEmpty()
			p.Pie = &v
		case models.ScatterChart:
			p.Title = v.Title
			p.Empty = v.IsEmpty()
			p.Scatter = &v
		}
		panels = append(panels, p)
	}
	return panels
}
