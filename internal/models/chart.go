package models

// Chart output identifiers.
const (
	ChartSuccessPie     = "success-pie-chart"
	ChartPayloadScatter = "success-payload-scatter-chart"
)

// PieSlice is one labeled count of a pie chart.
type PieSlice struct {
	// Label is the slice name: a launch site or an outcome label.
	Label string `json:"label"`
	Count int    `json:"count"`
}

// PieChart is the chart spec handed to the pie renderer.
type PieChart struct {
	ID     string     `json:"id"`
	Title  string     `json:"title"`
	Site   string     `json:"site"`
	Slices []PieSlice `json:"slices"`
}

// Total returns the sum of all slice counts.
func (p PieChart) Total() int {
	total := 0
	for _, s := range p.Slices {
		total += s.Count
	}
	return total
}

// IsEmpty returns true if the chart has nothing to draw.
func (p PieChart) IsEmpty() bool {
	return p.Total() == 0
}

// ScatterPoint is one launch plotted on the payload/outcome chart.
type ScatterPoint struct {
	FlightNumber    int     `json:"flight_number"`
	PayloadMassKg   float64 `json:"payload_mass_kg"`
	Outcome         Outcome `json:"class"`
	BoosterCategory string  `json:"booster_version_category"`
	// Size is the marker diameter in pixels, scaled by payload mass.
	Size float64 `json:"size"`
}

// ScatterChart is the chart spec handed to the scatter renderer.
type ScatterChart struct {
	ID      string       `json:"id"`
	Title   string       `json:"title"`
	Site    string       `json:"site"`
	Payload PayloadRange `json:"payload_range"`
	XLabel  string       `json:"x_label"`
	YLabel  string       `json:"y_label"`
	// Categories lists the booster categories present in Points, in first-appearance order.
	Categories []string       `json:"categories"`
	Points     []ScatterPoint `json:"points"`
}

// IsEmpty returns true if no launches matched the filters.
func (s ScatterChart) IsEmpty() bool {
	return len(s.Points) == 0
}

// PointsFor returns the points of a single booster category.
func (s ScatterChart) PointsFor(category string) []ScatterPoint {
	var points []ScatterPoint
	for _, p := range s.Points {
		if p.BoosterCategory == category {
			points = append(points, p)
		}
	}
	return points
}
