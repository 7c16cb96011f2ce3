package server

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"launchdash/internal/config"
	"launchdash/internal/dashboard"
	"launchdash/internal/models"
	"launchdash/internal/testutil"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	cfg := &config.Config{
		Env:         "test",
		BaseURL:     "http://localhost:8050",
		ViewsDir:    "../../views",
		StaticDir:   "../../static",
		ChartWidth:  320,
		ChartHeight: 240,
		SiteTitle:   "Launch Dashboard",
	}

	srv := New(cfg)
	srv.RegisterRoutes(testutil.Dataset(t), dashboard.NewLayout(config.DefaultDashboardConfig()))
	return srv
}

func get(t *testing.T, srv *Server, target string, headers ...string) (*http.Response, string) {
	t.Helper()

	req, _ := http.NewRequest("GET", target, nil)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	resp, err := srv.App.Test(req)
	if err != nil {
		t.Fatalf("GET %s failed: %v", target, err)
	}
	body, _ := io.ReadAll(resp.Body)
	return resp, string(body)
}

func TestIndex(t *testing.T) {
	srv := newTestServer(t)

	resp, body := get(t, srv, "/")
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, body)
	}

	for _, want := range []string{
		`id="site-dropdown"`,
		`id="payload-slider"`,
		`id="success-pie-chart"`,
		`id="success-payload-scatter-chart"`,
		"All Sites",
		"Total Successful Launches by Site",
		"/charts/success-pie-chart.png?site=ALL",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("index body missing %q", want)
		}
	}
}

func TestIndex_InvalidPayload(t *testing.T) {
	srv := newTestServer(t)

	resp, body := get(t, srv, "/?min=heavy")
	if resp.StatusCode != 400 {
		t.Fatalf("expected 400, got %d: %s", resp.StatusCode, body)
	}
	if !strings.Contains(body, "payload bound must be a number") {
		t.Errorf("error page missing message: %s", body)
	}
}

func TestUpdate(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name        string
		target      string
		wantOutputs []string
		skipOutputs []string
	}{
		{
			name:        "slider only updates scatter",
			target:      "/update?trigger=payload-slider&site=ALL&min=0&max=5000",
			wantOutputs: []string{`id="success-payload-scatter-chart"`, "6 launches between 0 and 5000 kg"},
			skipOutputs: []string{`id="success-pie-chart"`},
		},
		{
			name:        "dropdown updates both",
			target:      "/update?trigger=site-dropdown&site=KSC+LC-39A&min=0&max=10000",
			wantOutputs: []string{`id="success-pie-chart"`, `id="success-payload-scatter-chart"`, "Launch Outcomes for KSC LC-39A"},
		},
		{
			name:        "no matches degrade to empty chart",
			target:      "/update?trigger=payload-slider&site=VAFB+SLC-4E&min=1000&max=5000",
			wantOutputs: []string{"No launches match the current filters."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := get(t, srv, tt.target, "HX-Request", "true")
			if resp.StatusCode != 200 {
				t.Fatalf("expected 200, got %d: %s", resp.StatusCode, body)
			}
			if !strings.Contains(body, `hx-swap-oob="true"`) {
				t.Error("update response should use out-of-band swaps")
			}
			for _, want := range tt.wantOutputs {
				if !strings.Contains(body, want) {
					t.Errorf("body missing %q:\n%s", want, body)
				}
			}
			for _, skip := range tt.skipOutputs {
				if strings.Contains(body, skip) {
					t.Errorf("body should not contain %q", skip)
				}
			}
		})
	}
}

func TestUpdate_UnknownTrigger(t *testing.T) {
	srv := newTestServer(t)

	resp, body := get(t, srv, "/update?trigger=knob", "HX-Request", "true")
	if resp.StatusCode != 200 {
		t.Fatalf("HTMX errors should use 200, got %d", resp.StatusCode)
	}
	if !strings.Contains(body, `id="dashboard-alert"`) || !strings.Contains(body, "unknown widget") {
		t.Errorf("expected alert fragment, got %s", body)
	}

	resp, _ = get(t, srv, "/update?trigger=knob")
	if resp.StatusCode != 400 {
		t.Errorf("expected 400 without HTMX, got %d", resp.StatusCode)
	}
}

func TestChartImages(t *testing.T) {
	srv := newTestServer(t)

	for _, target := range []string{
		"/charts/success-pie-chart.png?site=ALL",
		"/charts/success-pie-chart.png?site=nowhere",
		"/charts/success-payload-scatter-chart.png?site=ALL&min=0&max=10000",
		"/charts/success-payload-scatter-chart.png?site=VAFB+SLC-4E&min=1000&max=5000",
	} {
		resp, body := get(t, srv, target)
		if resp.StatusCode != 200 {
			t.Errorf("%s: expected 200, got %d", target, resp.StatusCode)
			continue
		}
		if ct := resp.Header.Get("Content-Type"); ct != "image/png" {
			t.Errorf("%s: Content-Type = %q", target, ct)
		}
		if !strings.HasPrefix(body, "\x89PNG") {
			t.Errorf("%s: body is not a PNG", target)
		}
	}
}

type envelope[T any] struct {
	Status string `json:"status"`
	Data   T      `json:"data"`
	Error  string `json:"error"`
}

func TestAPICharts(t *testing.T) {
	srv := newTestServer(t)

	resp, body := get(t, srv, "/api/v1/charts/pie?site=KSC+LC-39A")
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, body)
	}
	var pie envelope[models.PieChart]
	if err := json.Unmarshal([]byte(body), &pie); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if pie.Status != "ok" || pie.Data.Total() != 3 {
		t.Errorf("pie = %+v, want 3 launches", pie)
	}

	_, body = get(t, srv, "/api/v1/charts/scatter?site=ALL&min=0&max=5000")
	var scatter envelope[models.ScatterChart]
	if err := json.Unmarshal([]byte(body), &scatter); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(scatter.Data.Points) != 6 {
		t.Errorf("len(points) = %d, want 6", len(scatter.Data.Points))
	}

	// Same query twice yields the same bytes.
	_, again := get(t, srv, "/api/v1/charts/scatter?site=ALL&min=0&max=5000")
	if again != body {
		t.Error("scatter responses differ for identical queries")
	}

	resp, body = get(t, srv, "/api/v1/charts/scatter?min=lots")
	if resp.StatusCode != 400 {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	var failed envelope[any]
	if err := json.Unmarshal([]byte(body), &failed); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if failed.Status != "error" || failed.Error == "" {
		t.Errorf("error envelope = %+v", failed)
	}
}

func TestAPIDataset(t *testing.T) {
	srv := newTestServer(t)

	_, body := get(t, srv, "/api/v1/dataset")
	var ds envelope[struct {
		Records   int                  `json:"records"`
		Successes int                  `json:"successes"`
		Sites     []models.SiteSummary `json:"sites"`
	}]
	if err := json.Unmarshal([]byte(body), &ds); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if ds.Data.Records != testutil.LaunchCount || ds.Data.Successes != testutil.SuccessCount {
		t.Errorf("dataset = %+v", ds.Data)
	}
	if len(ds.Data.Sites) != 4 {
		t.Errorf("len(sites) = %d, want 4", len(ds.Data.Sites))
	}

	_, body = get(t, srv, "/api/v1/launches?site=KSC+LC-39A")
	var launches envelope[[]models.LaunchRecord]
	if err := json.Unmarshal([]byte(body), &launches); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(launches.Data) != 3 {
		t.Errorf("len(launches) = %d, want 3", len(launches.Data))
	}
}

func TestProbesAndMetrics(t *testing.T) {
	srv := newTestServer(t)

	for _, target := range []string{"/healthz", "/readyz"} {
		resp, body := get(t, srv, target)
		if resp.StatusCode != 200 || !strings.Contains(body, `"ok"`) {
			t.Errorf("%s: got %d %s", target, resp.StatusCode, body)
		}
	}

	get(t, srv, "/api/v1/charts/pie?site=ALL")
	resp, body := get(t, srv, "/metrics")
	if resp.StatusCode != 200 {
		t.Fatalf("metrics: expected 200, got %d", resp.StatusCode)
	}
	for _, want := range []string{"launchdash_dataset_launches", "launchdash_chart_requests_total"} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics missing %s", want)
		}
	}
}
