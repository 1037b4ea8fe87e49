package profile

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("route not found")
)

// Validate checks that a waypoint sequence can be profiled: at least two
// points and distances that never decrease.
func Validate(waypoints []Waypoint) error {
	if len(waypoints) < 2 {
		return fmt.Errorf("%w: need at least 2 waypoints, got %d", ErrInvalidInput, len(waypoints))
	}
	for i := 1; i < len(waypoints); i++ {
		if waypoints[i].Distance < waypoints[i-1].Distance {
			return fmt.Errorf("%w: distance decreases at waypoint %d (%q): %.3f < %.3f",
				ErrInvalidInput, i, waypoints[i].Name, waypoints[i].Distance, waypoints[i-1].Distance)
		}
	}
	if waypoints[0].Distance < 0 {
		return fmt.Errorf("%w: negative start distance %.3f", ErrInvalidInput, waypoints[0].Distance)
	}
	return nil
}

// ElevationGain sums the positive elevation deltas along the route.
func ElevationGain(waypoints []Waypoint) float64 {
	gain := 0.0
	for i := 1; i < len(waypoints); i++ {
		if d := waypoints[i].Elevation - waypoints[i-1].Elevation; d > 0 {
			gain += d
		}
	}
	return gain
}

// Normalize fills in derived totals that were not supplied with the route.
func (r Route) Normalize() Route {
	if len(r.Waypoints) == 0 {
		return r
	}
	if r.TotalDistance == 0 {
		r.TotalDistance = r.Waypoints[len(r.Waypoints)-1].Distance
	}
	if r.TotalElevationGain == 0 {
		r.TotalElevationGain = ElevationGain(r.Waypoints)
	}
	if r.Mountain == "" {
		r.Mountain = r.Name
	}
	return r
}

// ValidateName rejects names that cannot be used as a single directory
// under the output root.
func ValidateName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: route name required", ErrInvalidInput)
	case name == "." || name == "..", strings.ContainsAny(name, `/\`), !filepath.IsLocal(name):
		return fmt.Errorf("%w: route name %q is not a plain name", ErrInvalidInput, name)
	}
	return nil
}

func (r Route) Validate() error {
	if err := ValidateName(r.Name); err != nil {
		return err
	}
	if err := Validate(r.Waypoints); err != nil {
		return fmt.Errorf("route %q: %w", r.Name, err)
	}
	return nil
}
