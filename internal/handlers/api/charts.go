package api

import (
	"github.com/gofiber/fiber/v3"

	"launchdash/internal/charts"
	"launchdash/internal/dashboard"
	"launchdash/internal/dataset"
	"launchdash/internal/metrics"
)

// ChartHandler serves chart specs via JSON API.
type ChartHandler struct {
	ds     *dataset.Dataset
	layout dashboard.Layout
}

// NewChartHandler creates a new API chart handler.
func NewChartHandler(ds *dataset.Dataset, layout dashboard.Layout) *ChartHandler {
	return &ChartHandler{ds: ds, layout: layout}
}

// Pie returns the success pie chart spec for the site query parameter.
func (h *ChartHandler) Pie(c fiber.Ctx) error {
	state, err := h.layout.ParseState(c.Query("site"), "", "")
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	}

	spec := charts.SuccessPie(h.ds, state.Site)
	metrics.RecordChart(spec.ID, "json", spec.IsEmpty())
	return jsonSuccess(c, spec)
}

// Scatter returns the payload scatter chart spec for the site, min and max
// query parameters.
func (h *ChartHandler) Scatter(c fiber.Ctx) error {
	state, err := h.layout.ParseState(c.Query("site"), c.Query("min"), c.Query("max"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, err.Error())
	}

	spec := charts.PayloadScatter(h.ds, state.Site, state.Payload)
	metrics.RecordChart(spec.ID, "json", spec.IsEmpty())
	return jsonSuccess(c, spec)
}
