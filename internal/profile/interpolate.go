package profile

import "math"

const (
	// samples per kilometre between two waypoints (one per 100 m)
	samplesPerKm = 10
	minSamples   = 2
	curveFactor  = 0.1
)

// Interpolate densifies the waypoint sequence for plotting. Each segment is
// sampled roughly every 100 m; interior samples are bent by a small sine
// term so the line reads as a trail rather than a polyline. Segment ends are
// exact, so the point shared by two segments appears twice.
func Interpolate(waypoints []Waypoint) ([]InterpolatedPoint, error) {
	if err := Validate(waypoints); err != nil {
		return nil, err
	}

	var points []InterpolatedPoint
	for i := 0; i < len(waypoints)-1; i++ {
		points = appendSegment(points, waypoints[i], waypoints[i+1])
	}
	return points, nil
}

func segmentSamples(distanceDiff float64) int {
	n := int(math.Floor(distanceDiff * samplesPerKm))
	if n < minSamples {
		return minSamples
	}
	return n
}

func appendSegment(points []InterpolatedPoint, start, end Waypoint) []InterpolatedPoint {
	distanceDiff := end.Distance - start.Distance
	elevationDiff := end.Elevation - start.Elevation
	n := segmentSamples(distanceDiff)

	for j := 0; j < n; j++ {
		ratio := float64(j) / float64(n-1)
		elevation := start.Elevation + elevationDiff*ratio
		if j > 0 && j < n-1 {
			elevation += elevationDiff * math.Sin(ratio*math.Pi) * curveFactor
		}
		distance := start.Distance + distanceDiff*ratio
		if j == n-1 {
			distance, elevation = end.Distance, end.Elevation
		}
		points = append(points, InterpolatedPoint{Distance: distance, Elevation: elevation})
	}
	return points
}
