package charts

import (
	"fmt"
	"math"
	"slices"

	"launchdash/internal/dataset"
	"launchdash/internal/models"
)

// Marker sizing for the scatter chart.
const (
	SizeMax       = 20.0
	MinMarkerSize = 2.0
)

// Axis labels for the scatter chart.
const (
	LabelPayload = "Payload Mass (kg)"
	LabelOutcome = "Launch Outcome"
)

// SiteLabel returns the human readable name of a site filter.
func SiteLabel(site string) string {
	if site == models.AllSites {
		return "All Sites"
	}
	return site
}

// PayloadScatter builds the payload/outcome scatter chart.
//
// Records are kept when they match the site filter and their payload lies in
// rng, bounds included. Points keep dataset order. Marker area is
// proportional to payload mass, so the heaviest payload in the result gets
// a diameter of SizeMax.
func PayloadScatter(ds *dataset.Dataset, site string, rng models.PayloadRange) models.ScatterChart {
	chart := models.ScatterChart{
		ID:         models.ChartPayloadScatter,
		Title:      fmt.Sprintf("Correlation between Payload and Success for %s", SiteLabel(site)),
		Site:       site,
		Payload:    rng,
		XLabel:     LabelPayload,
		YLabel:     LabelOutcome,
		Categories: []string{},
		Points:     []models.ScatterPoint{},
	}

	maxPayload := 0.0
	ds.Each(func(r models.LaunchRecord) {
		if site != models.AllSites && r.Site != site {
			return
		}
		if !rng.Contains(r.PayloadMassKg) {
			return
		}
		chart.Points = append(chart.Points, models.ScatterPoint{
			FlightNumber:    r.FlightNumber,
			PayloadMassKg:   r.PayloadMassKg,
			Outcome:         r.Outcome,
			BoosterCategory: r.BoosterCategory,
		})
		if !slices.Contains(chart.Categories, r.BoosterCategory) {
			chart.Categories = append(chart.Categories, r.BoosterCategory)
		}
		maxPayload = math.Max(maxPayload, r.PayloadMassKg)
	})

	for i := range chart.Points {
		chart.Points[i].Size = markerSize(chart.Points[i].PayloadMassKg, maxPayload)
	}

	return chart
}

func markerSize(payload, maxPayload float64) float64 {
	if maxPayload <= 0 {
		return MinMarkerSize
	}
	return math.Max(MinMarkerSize, SizeMax*math.Sqrt(payload/maxPayload))
}
