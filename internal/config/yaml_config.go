package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Dashboard config validation errors.
var (
	ErrNoSites       = errors.New("dashboard config must list at least one site")
	ErrInvalidSlider = errors.New("dashboard slider requires min < max and step > 0")
)

// DashboardConfig describes the widget options of the dashboard page.
// It is read from YAML so the site list and slider bounds can change without a rebuild.
type DashboardConfig struct {
	Title  string       `yaml:"title"`
	Sites  []SiteOption `yaml:"sites"`
	Slider SliderConfig `yaml:"slider"`
}

// SiteOption is one entry of the launch site dropdown.
type SiteOption struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

// SliderConfig defines the payload range slider.
type SliderConfig struct {
	Min   float64 `yaml:"min"`
	Max   float64 `yaml:"max"`
	Step  float64 `yaml:"step"`
	Label string  `yaml:"label"`
}

// DefaultDashboardConfig returns the built-in widget options.
func DefaultDashboardConfig() *DashboardConfig {
	return &DashboardConfig{
		Title: "SpaceX Launch Records Dashboard",
		Sites: []SiteOption{
			{Label: "CCAFS LC-40", Value: "CCAFS LC-40"},
			{Label: "VAFB SLC-4E", Value: "VAFB SLC-4E"},
			{Label: "KSC LC-39A", Value: "KSC LC-39A"},
			{Label: "CCAFS SLC-40", Value: "CCAFS SLC-40"},
		},
		Slider: SliderConfig{
			Min:   0,
			Max:   10000,
			Step:  1000,
			Label: "Payload range (Kg):",
		},
	}
}

// LoadDashboardConfig loads the dashboard YAML file at path.
// Returns the defaults without error if the file doesn't exist.
// Fields missing from the file keep their default values.
func LoadDashboardConfig(path string) (*DashboardConfig, error) {
	cfg := DefaultDashboardConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Config file is optional
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the dropdown and slider definitions.
func (c *DashboardConfig) Validate() error {
	if len(c.Sites) == 0 {
		return ErrNoSites
	}
	for i := range c.Sites {
		if c.Sites[i].Value == "" {
			return fmt.Errorf("site %d: value is required", i)
		}
		if c.Sites[i].Label == "" {
			c.Sites[i].Label = c.Sites[i].Value
		}
	}
	if c.Slider.Min >= c.Slider.Max || c.Slider.Step <= 0 {
		return ErrInvalidSlider
	}
	return nil
}

// GetSiteByValue finds a dropdown option by its value.
func (c *DashboardConfig) GetSiteByValue(value string) *SiteOption {
	if c == nil {
		return nil
	}
	for i := range c.Sites {
		if c.Sites[i].Value == value {
			return &c.Sites[i]
		}
	}
	return nil
}
