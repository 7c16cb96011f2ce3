package models

// AllSites is the site filter value that selects every launch site.
const AllSites = "ALL"

// Outcome is the binary class of a launch: 0 for failure, 1 for success.
type Outcome int

// Outcome constants
const (
	OutcomeFailure Outcome = 0
	OutcomeSuccess Outcome = 1
)

// Outcome labels used by the charts.
const (
	LabelFailure = "Failure"
	LabelSuccess = "Success"
)

// Label returns the display label for the outcome.
func (o Outcome) Label() string {
	if o == OutcomeSuccess {
		return LabelSuccess
	}
	return LabelFailure
}

// IsSuccess returns true if the launch succeeded.
func (o Outcome) IsSuccess() bool {
	return o == OutcomeSuccess
}

// LaunchRecord is one row of the launch dataset.
type LaunchRecord struct {
	FlightNumber    int     `json:"flight_number"`
	Site            string  `json:"launch_site"`
	PayloadMassKg   float64 `json:"payload_mass_kg"`
	Outcome         Outcome `json:"class"`
	BoosterVersion  string  `json:"booster_version,omitempty"`
	BoosterCategory string  `json:"booster_version_category"`
}

// PayloadRange is an inclusive payload mass interval in kilograms.
type PayloadRange struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// Contains returns true if the payload lies within the range, bounds included.
func (r PayloadRange) Contains(payload float64) bool {
	return r.Low <= payload && payload <= r.High
}

// Within returns true if r lies entirely inside other.
func (r PayloadRange) Within(other PayloadRange) bool {
	return other.Low <= r.Low && r.High <= other.High
}

// SiteSummary holds launch totals for a single site.
type SiteSummary struct {
	Site      string `json:"launch_site"`
	Launches  int    `json:"launches"`
	Successes int    `json:"successes"`
}

// Failures returns the number of failed launches at the site.
func (s SiteSummary) Failures() int {
	return s.Launches - s.Successes
}

// SuccessRate returns the fraction of successful launches, or 0 with no launches.
func (s SiteSummary) SuccessRate() float64 {
	if s.Launches == 0 {
		return 0
	}
	return float64(s.Successes) / float64(s.Launches)
}
