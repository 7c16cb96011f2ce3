package api

import (
	"github.com/gofiber/fiber/v3"

	"launchdash/internal/dashboard"
	"launchdash/internal/dataset"
	"launchdash/internal/models"
)

// DatasetHandler exposes the loaded dataset and the page layout via JSON API.
type DatasetHandler struct {
	ds     *dataset.Dataset
	layout dashboard.Layout
}

// NewDatasetHandler creates a new API dataset handler.
func NewDatasetHandler(ds *dataset.Dataset, layout dashboard.Layout) *DatasetHandler {
	return &DatasetHandler{ds: ds, layout: layout}
}

// DatasetResponse summarizes the loaded dataset.
type DatasetResponse struct {
	Records           int                  `json:"records"`
	Successes         int                  `json:"successes"`
	PayloadBounds     models.PayloadRange  `json:"payload_bounds"`
	BoosterCategories []string             `json:"booster_categories"`
	Sites             []models.SiteSummary `json:"sites"`
	Layout            dashboard.Layout     `json:"layout"`
}

// Show returns the dataset summary and widget layout.
func (h *DatasetHandler) Show(c fiber.Ctx) error {
	return jsonSuccess(c, DatasetResponse{
		Records:           h.ds.Len(),
		Successes:         h.ds.Successes(),
		PayloadBounds:     h.ds.PayloadBounds(),
		BoosterCategories: h.ds.BoosterCategories(),
		Sites:             h.ds.Summary(),
		Layout:            h.layout,
	})
}

// Launches returns the launch records, optionally filtered by the site
// query parameter.
func (h *DatasetHandler) Launches(c fiber.Ctx) error {
	site := c.Query("site", models.AllSites)

	launches := []models.LaunchRecord{}
	h.ds.Each(func(r models.LaunchRecord) {
		if site == models.AllSites || r.Site == site {
			launches = append(launches, r)
		}
	})

	return jsonSuccess(c, launches)
}
