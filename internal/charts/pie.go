// Package charts turns a filtered view of the launch dataset into chart specs.
//
// Every function here is pure: the dataset is only read and identical
// inputs produce identical specs.
package charts

import (
	"fmt"
	"sort"

	"launchdash/internal/dataset"
	"launchdash/internal/models"
)

// TitleAllSitesPie is the pie title when every site is selected.
const TitleAllSitesPie = "Total Successful Launches by Site"

// SuccessPie builds the success pie chart for a site filter.
//
// For AllSites there is one slice per site holding its successful launch
// count, in first-appearance order; sites without a success get no slice.
// For a single site the launches are split into Success and Failure, largest
// first. An unknown site produces a chart with no slices.
func SuccessPie(ds *dataset.Dataset, site string) models.PieChart {
	if site == models.AllSites {
		return successesBySite(ds)
	}
	return outcomesForSite(ds, site)
}

func successesBySite(ds *dataset.Dataset) models.PieChart {
	chart := models.PieChart{
		ID:     models.ChartSuccessPie,
		Title:  TitleAllSitesPie,
		Site:   models.AllSites,
		Slices: []models.PieSlice{},
	}

	index := make(map[string]int)
	ds.Each(func(r models.LaunchRecord) {
		if !r.Outcome.IsSuccess() {
			return
		}
		i, ok := index[r.Site]
		if !ok {
			i = len(chart.Slices)
			index[r.Site] = i
			chart.Slices = append(chart.Slices, models.PieSlice{Label: r.Site})
		}
		chart.Slices[i].Count++
	})

	return chart
}

func outcomesForSite(ds *dataset.Dataset, site string) models.PieChart {
	chart := models.PieChart{
		ID:     models.ChartSuccessPie,
		Title:  fmt.Sprintf("Launch Outcomes for %s", site),
		Site:   site,
		Slices: []models.PieSlice{},
	}

	var success, failure int
	ds.Each(func(r models.LaunchRecord) {
		if r.Site != site {
			return
		}
		if r.Outcome.IsSuccess() {
			success++
		} else {
			failure++
		}
	})

	if success > 0 {
		chart.Slices = append(chart.Slices, models.PieSlice{Label: models.LabelSuccess, Count: success})
	}
	if failure > 0 {
		chart.Slices = append(chart.Slices, models.PieSlice{Label: models.LabelFailure, Count: failure})
	}
	// Stable keeps Success ahead of Failure on a tie.
	sort.SliceStable(chart.Slices, func(i, j int) bool {
		return chart.Slices[i].Count > chart.Slices[j].Count
	})

	return chart
}
