package handlers

import (
	"testing"

	"launchdash/internal/dashboard"
	"launchdash/internal/models"
)

func TestChartImageURL(t *testing.T) {
	tests := []struct {
		name  string
		id    dashboard.OutputID
		state dashboard.State
		want  string
	}{
		{
			name:  "pie ignores payload",
			id:    dashboard.SuccessPieChart,
			state: dashboard.State{Site: "KSC LC-39A", Payload: models.PayloadRange{Low: 1000, High: 2000}},
			want:  "/charts/success-pie-chart.png?site=KSC+LC-39A",
		},
		{
			name:  "scatter carries payload range",
			id:    dashboard.PayloadScatterChart,
			state: dashboard.State{Site: models.AllSites, Payload: models.PayloadRange{Low: 0, High: 7500.5}},
			want:  "/charts/success-payload-scatter-chart.png?max=7500.5&min=0&site=ALL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := chartImageURL(tt.id, tt.state); got != tt.want {
				t.Errorf("chartImageURL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildPanels(t *testing.T) {
	state := dashboard.State{Site: models.AllSites, Payload: models.PayloadRange{Low: 0, High: 10000}}
	outputs := []dashboard.Output{
		{ID: dashboard.SuccessPieChart, Value: models.PieChart{Title: "pie", Slices: []models.PieSlice{{Label: "A", Count: 1}}}},
		{ID: dashboard.PayloadScatterChart, Value: models.ScatterChart{Title: "scatter"}},
	}

	panels := buildPanels(outputs, state)
	if len(panels) != 2 {
		t.Fatalf("len(panels) = %d, want 2", len(panels))
	}

	if panels[0].Pie == nil || panels[0].Empty || panels[0].Title != "pie" {
		t.Errorf("pie panel = %+v", panels[0])
	}
	if panels[1].Scatter == nil || !panels[1].Empty || panels[1].Title != "scatter" {
		t.Errorf("scatter panel = %+v", panels[1])
	}
	if panels[1].ID != string(dashboard.PayloadScatterChart) {
		t.Errorf("panel ID = %q", panels[1].ID)
	}
}
