// Package dashboard defines the widget tree of the dashboard page and the
// callbacks that recompute its charts when a widget changes.
package dashboard

import (
	"launchdash/internal/config"
	"launchdash/internal/models"
)

// WidgetID identifies an input widget.
type WidgetID string

// OutputID identifies an output slot on the page.
type OutputID string

// Widget and output identifiers. They double as DOM ids.
const (
	SiteDropdown  WidgetID = "site-dropdown"
	PayloadSlider WidgetID = "payload-slider"

	SuccessPieChart     OutputID = models.ChartSuccessPie
	PayloadScatterChart OutputID = models.ChartPayloadScatter
)

// Option is one dropdown entry.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Dropdown is the launch site selector.
type Dropdown struct {
	ID          WidgetID `json:"id"`
	Placeholder string   `json:"placeholder"`
	Options     []Option `json:"options"`
	Value       string   `json:"value"`
}

// RangeSlider is the payload range selector.
type RangeSlider struct {
	ID    WidgetID            `json:"id"`
	Label string              `json:"label"`
	Min   float64             `json:"min"`
	Max   float64             `json:"max"`
	Step  float64             `json:"step"`
	Value models.PayloadRange `json:"value"`
}

// Marks returns the labeled positions of the slider, from Min to Max by Step.
func (s RangeSlider) Marks() []float64 {
	if s.Step <= 0 {
		return []float64{s.Min, s.Max}
	}
	var marks []float64
	for v := s.Min; v <= s.Max; v += s.Step {
		marks = append(marks, v)
	}
	return marks
}

// Clamp limits a payload range to the slider bounds.
func (s RangeSlider) Clamp(r models.PayloadRange) models.PayloadRange {
	return models.PayloadRange{
		Low:  min(max(r.Low, s.Min), s.Max),
		High: min(max(r.High, s.Min), s.Max),
	}
}

// Layout is the static widget tree of the page.
type Layout struct {
	Title   string      `json:"title"`
	Sites   Dropdown    `json:"site_dropdown"`
	Payload RangeSlider `json:"payload_slider"`
	Outputs []OutputID  `json:"outputs"`
}

// NewLayout builds the widget tree from the dashboard config. The All Sites
// option always comes first and is the default selection.
func NewLayout(cfg *config.DashboardConfig) Layout {
	options := make([]Option, 0, len(cfg.Sites)+1)
	options = append(options, Option{Label: "All Sites", Value: models.AllSites})
	for _, s := range cfg.Sites {
		options = append(options, Option{Label: s.Label, Value: s.Value})
	}

	return Layout{
		Title: cfg.Title,
		Sites: Dropdown{
			ID:          SiteDropdown,
			Placeholder: "Select Launch Site",
			Options:     options,
			Value:       models.AllSites,
		},
		Payload: RangeSlider{
			ID:    PayloadSlider,
			Label: cfg.Slider.Label,
			Min:   cfg.Slider.Min,
			Max:   cfg.Slider.Max,
			Step:  cfg.Slider.Step,
			Value: models.PayloadRange{Low: cfg.Slider.Min, High: cfg.Slider.Max},
		},
		Outputs: []OutputID{SuccessPieChart, PayloadScatterChart},
	}
}

// DefaultState returns the widget values of a freshly loaded page.
func (l Layout) DefaultState() State {
	return State{Site: l.Sites.Value, Payload: l.Payload.Value}
}

// HasSite reports whether the dropdown offers value.
func (l Layout) HasSite(value string) bool {
	for _, o := range l.Sites.Options {
		if o.Value == value {
			return true
		}
	}
	return false
}
