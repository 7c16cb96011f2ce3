package models

import "testing"

func TestOutcome_Label(t *testing.T) {
	tests := []struct {
		name     string
		outcome  Outcome
		expected string
	}{
		{"success", OutcomeSuccess, "Success"},
		{"failure", OutcomeFailure, "Failure"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.outcome.Label(); got != tt.expected {
				t.Errorf("Label() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestPayloadRange_Contains(t *testing.T) {
	r := PayloadRange{Low: 1000, High: 5000}

	tests := []struct {
		name     string
		payload  float64
		expected bool
	}{
		{"below", 999.9, false},
		{"lower bound", 1000, true},
		{"inside", 2500, true},
		{"upper bound", 5000, true},
		{"above", 5000.1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.payload); got != tt.expected {
				t.Errorf("Contains(%v) = %v, want %v", tt.payload, got, tt.expected)
			}
		})
	}
}

func TestPayloadRange_Within(t *testing.T) {
	outer := PayloadRange{Low: 0, High: 10000}

	if !(PayloadRange{Low: 1000, High: 9000}).Within(outer) {
		t.Error("narrower range should be within outer")
	}
	if !outer.Within(outer) {
		t.Error("range should be within itself")
	}
	if (PayloadRange{Low: -1, High: 9000}).Within(outer) {
		t.Error("range extending below should not be within outer")
	}
}

func TestSiteSummary(t *testing.T) {
	s := SiteSummary{Site: "KSC LC-39A", Launches: 4, Successes: 3}
	if s.Failures() != 1 {
		t.Errorf("Failures() = %d, want 1", s.Failures())
	}
	if s.SuccessRate() != 0.75 {
		t.Errorf("SuccessRate() = %v, want 0.75", s.SuccessRate())
	}
	if (SiteSummary{}).SuccessRate() != 0 {
		t.Error("SuccessRate() with no launches should be 0")
	}
}

func TestPieChart_Total(t *testing.T) {
	p := PieChart{Slices: []PieSlice{{Label: "Success", Count: 3}, {Label: "Failure", Count: 2}}}
	if p.Total() != 5 {
		t.Errorf("Total() = %d, want 5", p.Total())
	}
	if p.IsEmpty() {
		t.Error("IsEmpty() should be false")
	}
	if !(PieChart{}).IsEmpty() {
		t.Error("IsEmpty() should be true with no slices")
	}
}

func TestScatterChart_PointsFor(t *testing.T) {
	s := ScatterChart{Points: []ScatterPoint{
		{FlightNumber: 1, BoosterCategory: "FT"},
		{FlightNumber: 2, BoosterCategory: "B4"},
		{FlightNumber: 3, BoosterCategory: "FT"},
	}}

	got := s.PointsFor("FT")
	if len(got) != 2 || got[0].FlightNumber != 1 || got[1].FlightNumber != 3 {
		t.Errorf("PointsFor(FT) = %+v", got)
	}
	if len(s.PointsFor("B5")) != 0 {
		t.Error("PointsFor(B5) should be empty")
	}
}
