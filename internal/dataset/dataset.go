// Package dataset holds the launch records loaded once at startup.
package dataset

import (
	"math"
	"slices"

	"launchdash/internal/models"
)

// Dataset is an immutable, ordered collection of launch records.
type Dataset struct {
	records    []models.LaunchRecord
	sites      []string
	categories []string
	minPayload float64
	maxPayload float64
}

// New builds a dataset from records. The slice is copied.
func New(records []models.LaunchRecord) (*Dataset, error) {
	if len(records) == 0 {
		return nil, ErrEmptyDataset
	}

	ds := &Dataset{
		records:    slices.Clone(records),
		minPayload: math.Inf(1),
		maxPayload: math.Inf(-1),
	}

	for _, r := range ds.records {
		if !slices.Contains(ds.sites, r.Site) {
			ds.sites = append(ds.sites, r.Site)
		}
		if !slices.Contains(ds.categories, r.BoosterCategory) {
			ds.categories = append(ds.categories, r.BoosterCategory)
		}
		ds.minPayload = math.Min(ds.minPayload, r.PayloadMassKg)
		ds.maxPayload = math.Max(ds.maxPayload, r.PayloadMassKg)
	}

	return ds, nil
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	return len(d.records)
}

// Records returns a copy of all records in file order.
func (d *Dataset) Records() []models.LaunchRecord {
	return slices.Clone(d.records)
}

// Each calls fn for every record in file order without copying the slice.
func (d *Dataset) Each(fn func(models.LaunchRecord)) {
	for _, r := range d.records {
		fn(r)
	}
}

// Sites returns the distinct launch sites in first-appearance order.
func (d *Dataset) Sites() []string {
	return slices.Clone(d.sites)
}

// HasSite reports whether any record was launched from site.
func (d *Dataset) HasSite(site string) bool {
	return slices.Contains(d.sites, site)
}

// BoosterCategories returns the distinct booster categories in first-appearance order.
func (d *Dataset) BoosterCategories() []string {
	return slices.Clone(d.categories)
}

// MinPayload returns the smallest payload mass in the dataset.
func (d *Dataset) MinPayload() float64 {
	return d.minPayload
}

// MaxPayload returns the largest payload mass in the dataset.
func (d *Dataset) MaxPayload() float64 {
	return d.maxPayload
}

// PayloadBounds returns the payload range spanning every record.
func (d *Dataset) PayloadBounds() models.PayloadRange {
	return models.PayloadRange{Low: d.minPayload, High: d.maxPayload}
}

// Successes returns the number of successful launches across all sites.
func (d *Dataset) Successes() int {
	n := 0
	for _, r := range d.records {
		if r.Outcome.IsSuccess() {
			n++
		}
	}
	return n
}

// Summary returns per-site launch totals in first-appearance order.
func (d *Dataset) Summary() []models.SiteSummary {
	summaries := make([]models.SiteSummary, len(d.sites))
	for i, site := range d.sites {
		summaries[i].Site = site
	}
	for _, r := range d.records {
		i := slices.Index(d.sites, r.Site)
		summaries[i].Launches++
		if r.Outcome.IsSuccess() {
			summaries[i].Successes++
		}
	}
	return summaries
}
