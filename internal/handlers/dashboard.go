package handlers

import (
	"github.com/gofiber/fiber/v3"

	"launchdash/internal/config"
	"launchdash/internal/dashboard"
	"launchdash/internal/metrics"
)

// DashboardHandler serves the dashboard page and its widget updates.
type DashboardHandler struct {
	cfg        *config.Config
	layout     dashboard.Layout
	dispatcher *dashboard.Dispatcher
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(cfg *config.Config, layout dashboard.Layout, dispatcher *dashboard.Dispatcher) *DashboardHandler {
	return &DashboardHandler{cfg: cfg, layout: layout, dispatcher: dispatcher}
}

// Index renders the full page. Widget values may be preset with the
// site, min and max query parameters.
func (h *DashboardHandler) Index(c fiber.Ctx) error {
	state, err := h.layout.ParseState(c.Query("site"), c.Query("min"), c.Query("max"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	outputs := h.dispatcher.DispatchAll(state)
	panels := buildPanels(outputs, state)
	recordPanels(panels, "html")

	return c.Render("index", MergeBranding(fiber.Map{
		"Title":  h.layout.Title,
		"Layout": h.layout,
		"State":  state,
		"Panels": panels,
	}, h.cfg))
}

// Update handles a widget change event and returns the affected panels as
// out-of-band swaps.
func (h *DashboardHandler) Update(c fiber.Ctx) error {
	trigger, err := dashboard.ParseWidgetID(c.Query("trigger"))
	if err != nil {
		return h.badRequest(c, err)
	}

	state, err := h.layout.ParseState(c.Query("site"), c.Query("min"), c.Query("max"))
	if err != nil {
		return h.badRequest(c, err)
	}

	outputs := h.dispatcher.Dispatch(trigger, state)
	panels := buildPanels(outputs, state)
	recordPanels(panels, "html")

	return c.Render("partials/panels", fiber.Map{
		"Panels": panels,
		"OOB":    true,
	}, "")
}

func (h *DashboardHandler) badRequest(c fiber.Ctx, err error) error {
	if isHTMX(c) {
		return htmxError(c, err.Error())
	}
	return fiber.NewError(fiber.StatusBadRequest, err.Error())
}

func recordPanels(panels []Panel, format string) {
	for _, p := range panels {
		metrics.RecordChart(p.ID, format, p.Empty)
	}
}
