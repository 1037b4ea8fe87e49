package profile

// Waypoint is a named point on a route. Distance is cumulative km from the
// start, Elevation is metres.
type Waypoint struct {
	Name      string  `json:"name"`
	Distance  float64 `json:"distance"`
	Elevation float64 `json:"elevation"`
	Time      string  `json:"time,omitempty"`
}

// Route is a mountain route as stored in profile_data.json.
type Route struct {
	// Name is the lookup key of the route and names its output directory.
	// It is not part of the JSON document; Mountain is the display name.
	Name               string     `json:"-"`
	Mountain           string     `json:"mountain"`
	Label              string     `json:"route"`
	TotalDistance      float64    `json:"total_distance"`
	TotalElevationGain float64    `json:"total_elevation_gain"`
	Waypoints          []Waypoint `json:"waypoints"`
}

type InterpolatedPoint struct {
	Distance  float64 `json:"distance"`
	Elevation float64 `json:"elevation"`
}

// GradientSection covers one pair of consecutive waypoints. Gradient is a
// percentage.
type GradientSection struct {
	Section       string  `json:"section"`
	From          string  `json:"from"`
	To            string  `json:"to"`
	Distance      float64 `json:"distance"`
	ElevationDiff float64 `json:"elevation_diff"`
	Gradient      float64 `json:"gradient"`
}

type GradientStats struct {
	AverageGradient float64           `json:"average_gradient"`
	MaxGradient     float64           `json:"max_gradient"`
	MinGradient     float64           `json:"min_gradient"`
	Sections        []GradientSection `json:"sections"`
}

type ChartPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type ChartDataset struct {
	Label            string       `json:"label"`
	Data             []ChartPoint `json:"data"`
	BorderColor      string       `json:"borderColor"`
	BackgroundColor  string       `json:"backgroundColor"`
	Fill             bool         `json:"fill"`
	Tension          float64      `json:"tension"`
	PointRadius      int          `json:"pointRadius"`
	PointHoverRadius int          `json:"pointHoverRadius"`
}

// ChartData is the payload consumed by the client-side elevation chart.
type ChartData struct {
	Labels    []string       `json:"labels"`
	Datasets  []ChartDataset `json:"datasets"`
	Waypoints []Waypoint     `json:"waypoints"`
}

// Series returns the interpolated x/y pairs of the profile dataset.
func (c ChartData) Series() []ChartPoint {
	if len(c.Datasets) == 0 {
		return nil
	}
	return c.Datasets[0].Data
}
