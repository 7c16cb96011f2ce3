package server

import (
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"launchdash/internal/charts"
	"launchdash/internal/dashboard"
	"launchdash/internal/dataset"
	"launchdash/internal/handlers"
	"launchdash/internal/handlers/api"
	"launchdash/internal/metrics"
)

// RegisterRoutes registers all application routes for the loaded dataset.
func (s *Server) RegisterRoutes(ds *dataset.Dataset, layout dashboard.Layout) {
	metrics.Init(ds)

	dispatcher := dashboard.NewLaunchDispatcher(ds)
	renderOpts := charts.RenderOptions{Width: s.Cfg.ChartWidth, Height: s.Cfg.ChartHeight}

	// Initialize handlers
	dashboardHandler := handlers.NewDashboardHandler(s.Cfg, layout, dispatcher)
	chartHandler := handlers.NewChartHandler(ds, layout, renderOpts)
	probeHandler := handlers.NewProbeHandler(ds)
	apiChartHandler := api.NewChartHandler(ds, layout)
	apiDatasetHandler := api.NewDatasetHandler(ds, layout)

	// Probes and metrics
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Page and widget callbacks
	s.App.Get("/", dashboardHandler.Index)
	s.App.Get("/update", dashboardHandler.Update)

	// Chart images
	s.App.Get("/charts/"+string(dashboard.SuccessPieChart)+".png", chartHandler.PiePNG)
	s.App.Get("/charts/"+string(dashboard.PayloadScatterChart)+".png", chartHandler.ScatterPNG)

	// JSON API
	v1 := s.App.Group("/api/v1")
	v1.Get("/dataset", apiDatasetHandler.Show)
	v1.Get("/launches", apiDatasetHandler.Launches)
	v1.Get("/charts/pie", apiChartHandler.Pie)
	v1.Get("/charts/scatter", apiChartHandler.Scatter)
}
