package handlers

import (
	"bytes"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"launchdash/internal/charts"
	"launchdash/internal/dashboard"
	"launchdash/internal/dataset"
	"launchdash/internal/metrics"
)

// ChartHandler renders chart specs as PNG images.
type ChartHandler struct {
	ds     *dataset.Dataset
	layout dashboard.Layout
	opts   charts.RenderOptions
}

// NewChartHandler creates a new chart image handler.
func NewChartHandler(ds *dataset.Dataset, layout dashboard.Layout, opts charts.RenderOptions) *ChartHandler {
	return &ChartHandler{ds: ds, layout: layout, opts: opts}
}

// PiePNG renders the success pie chart for the site query parameter.
func (h *ChartHandler) PiePNG(c fiber.Ctx) error {
	state, err := h.layout.ParseState(c.Query("site"), "", "")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	spec := charts.SuccessPie(h.ds, state.Site)
	metrics.RecordChart(spec.ID, "png", spec.IsEmpty())

	var buf bytes.Buffer
	if err := charts.RenderPiePNG(&buf, spec, h.opts); err != nil {
		slog.Error("failed to render chart", "chart", spec.ID, "site", state.Site, "error", err)
		return err
	}
	return sendPNG(c, buf.Bytes())
}

// ScatterPNG renders the payload scatter chart for the site, min and max
// query parameters.
func (h *ChartHandler) ScatterPNG(c fiber.Ctx) error {
	state, err := h.layout.ParseState(c.Query("site"), c.Query("min"), c.Query("max"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	spec := charts.PayloadScatter(h.ds, state.Site, state.Payload)
	metrics.RecordChart(spec.ID, "png", spec.IsEmpty())

	var buf bytes.Buffer
	if err := charts.RenderScatterPNG(&buf, spec, h.opts); err != nil {
		slog.Error("failed to render chart", "chart", spec.ID, "site", state.Site, "error", err)
		return err
	}
	return sendPNG(c, buf.Bytes())
}

func sendPNG(c fiber.Ctx, body []byte) error {
	c.Set(fiber.HeaderContentType, "image/png")
	// Chart images depend only on the query string.
	c.Set(fiber.HeaderCacheControl, "public, max-age=300")
	return c.Send(body)
}
