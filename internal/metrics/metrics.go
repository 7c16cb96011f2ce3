package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"launchdash/internal/dataset"
)

var (
	siteLaunchesDesc = prometheus.NewDesc(
		"launchdash_dataset_launches",
		"Launch records loaded, by site and outcome",
		[]string{"site", "outcome"},
		nil,
	)

	chartRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "launchdash_chart_requests_total",
			Help: "Chart specs computed, by chart and format",
		},
		[]string{"chart", "format"},
	)

	emptyCharts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "launchdash_empty_charts_total",
			Help: "Chart specs with no matching launches, by chart",
		},
		[]string{"chart"},
	)
)

// DatasetCollector is a custom Prometheus collector that reports the per-site
// launch totals of the loaded dataset on each scrape.
type DatasetCollector struct {
	ds *dataset.Dataset
}

// NewDatasetCollector creates a collector over ds.
func NewDatasetCollector(ds *dataset.Dataset) *DatasetCollector {
	return &DatasetCollector{ds: ds}
}

// Describe sends the metric descriptor to the channel.
func (c *DatasetCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- siteLaunchesDesc
}

// Collect emits one gauge per site and outcome.
func (c *DatasetCollector) Collect(ch chan<- prometheus.Metric) {
	for _, s := range c.ds.Summary() {
		ch <- prometheus.MustNewConstMetric(siteLaunchesDesc, prometheus.GaugeValue, float64(s.Successes), s.Site, "success")
		ch <- prometheus.MustNewConstMetric(siteLaunchesDesc, prometheus.GaugeValue, float64(s.Failures()), s.Site, "failure")
	}
}

var initOnce sync.Once

// Init registers the dataset collector and the chart counters.
// Must be called once at startup; later calls are no-ops.
func Init(ds *dataset.Dataset) {
	initOnce.Do(func() {
		prometheus.MustRegister(NewDatasetCollector(ds), chartRequests, emptyCharts)
	})
}

// RecordChart counts one computed chart spec.
func RecordChart(chart, format string, empty bool) {
	chartRequests.WithLabelValues(chart, format).Inc()
	if empty {
		emptyCharts.WithLabelValues(chart).Inc()
	}
}
