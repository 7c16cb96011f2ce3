package dashboard

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"launchdash/internal/models"
	"launchdash/internal/validation"
)

// State errors.
var (
	ErrInvalidPayload = errors.New("payload bound must be a number")
	ErrInvalidSite    = errors.New("invalid launch site")
	ErrUnknownWidget  = errors.New("unknown widget")
)

// State is the current value of every input widget.
type State struct {
	Site    string              `json:"site"`
	Payload models.PayloadRange `json:"payload"`
}

// ParseState builds a State from raw widget values, falling back to the
// layout defaults for empty values. Payload bounds are clamped to the slider.
func (l Layout) ParseState(site, low, high string) (State, error) {
	state := l.DefaultState()

	if site = validation.NormalizeSite(site); site != "" {
		if !validation.ValidateSite(site) {
			return State{}, fmt.Errorf("%w: %q", ErrInvalidSite, site)
		}
		state.Site = site
	}

	var err error
	if state.Payload.Low, err = parseBound(low, state.Payload.Low); err != nil {
		return State{}, fmt.Errorf("min: %w", err)
	}
	if state.Payload.High, err = parseBound(high, state.Payload.High); err != nil {
		return State{}, fmt.Errorf("max: %w", err)
	}
	state.Payload = l.Payload.Clamp(state.Payload)

	return state, nil
}

func parseBound(raw string, fallback float64) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPayload, raw)
	}
	return v, nil
}

// ParseWidgetID validates a widget identifier sent by the page.
func ParseWidgetID(raw string) (WidgetID, error) {
	switch id := WidgetID(raw); id {
	case SiteDropdown, PayloadSlider:
		return id, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownWidget, raw)
	}
}
