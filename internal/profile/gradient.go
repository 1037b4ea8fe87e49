package profile

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// CalculateGradientStats computes the slope of every consecutive waypoint
// pair and aggregates them. Pairs with no horizontal distance have no
// defined gradient and are left out of both the sections and the aggregates.
func CalculateGradientStats(waypoints []Waypoint) (GradientStats, error) {
	if err := Validate(waypoints); err != nil {
		return GradientStats{}, err
	}

	sections := make([]GradientSection, 0, len(waypoints)-1)
	gradients := make([]float64, 0, len(waypoints)-1)
	for i := 0; i < len(waypoints)-1; i++ {
		start, end := waypoints[i], waypoints[i+1]
		distanceM := (end.Distance - start.Distance) * 1000
		if distanceM <= 0 {
			continue
		}
		elevationDiff := end.Elevation - start.Elevation
		gradient := elevationDiff / distanceM * 100

		gradients = append(gradients, gradient)
		sections = append(sections, GradientSection{
			Section:       start.Name + "→" + end.Name,
			From:          start.Name,
			To:            end.Name,
			Distance:      end.Distance - start.Distance,
			ElevationDiff: elevationDiff,
			Gradient:      gradient,
		})
	}

	stats := GradientStats{Sections: sections}
	if len(gradients) > 0 {
		stats.AverageGradient = stat.Mean(gradients, nil)
		stats.MaxGradient = floats.Max(gradients)
		stats.MinGradient = floats.Min(gradients)
	}
	return stats, nil
}
