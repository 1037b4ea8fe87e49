package profile

import "strconv"

const (
	chartBorderColor     = "#2c5aa0"
	chartBackgroundColor = "rgba(44, 90, 160, 0.1)"
	chartTension         = 0.3
	chartHoverRadius     = 6
)

// BuildChartData interpolates the route and assembles the chart payload.
func BuildChartData(route Route) (ChartData, error) {
	points, err := Interpolate(route.Waypoints)
	if err != nil {
		return ChartData{}, err
	}
	return AssembleChartData(route, points), nil
}

// AssembleChartData combines an already interpolated series with the raw
// waypoints of the route. The waypoints are passed through untouched.
func AssembleChartData(route Route, points []InterpolatedPoint) ChartData {
	labels := make([]string, len(points))
	data := make([]ChartPoint, len(points))
	for i, p := range points {
		labels[i] = strconv.FormatFloat(p.Distance, 'f', 1, 64)
		data[i] = ChartPoint{X: p.Distance, Y: p.Elevation}
	}

	name := route.Mountain
	if name == "" {
		name = route.Name
	}

	return ChartData{
		Labels: labels,
		Datasets: []ChartDataset{{
			Label:            name + " 標高プロファイル",
			Data:             data,
			BorderColor:      chartBorderColor,
			BackgroundColor:  chartBackgroundColor,
			Fill:             true,
			Tension:          chartTension,
			PointRadius:      0,
			PointHoverRadius: chartHoverRadius,
		}},
		Waypoints: route.Waypoints,
	}
}
