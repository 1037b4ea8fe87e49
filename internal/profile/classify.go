package profile

type Feature int

const (
	FeatureFlat Feature = iota
	FeatureGentleClimb
	FeatureSteepClimb
	FeatureVerySteepClimb
)

var featureLabels = map[Feature][2]string{
	FeatureFlat:           {"flat/easy", "平坦な道"},
	FeatureGentleClimb:    {"gentle climb", "緩やかな登り"},
	FeatureSteepClimb:     {"steep climb", "急登"},
	FeatureVerySteepClimb: {"very steep climb", "険しい急登"},
}

// Classify maps a gradient in percent onto a presentation band. Each band
// includes its lower bound.
func Classify(gradient float64) Feature {
	switch {
	case gradient < 5:
		return FeatureFlat
	case gradient < 15:
		return FeatureGentleClimb
	case gradient < 25:
		return FeatureSteepClimb
	default:
		return FeatureVerySteepClimb
	}
}

func (f Feature) String() string {
	return featureLabels[f][0]
}

// Japanese returns the label used in the generated course pages.
func (f Feature) Japanese() string {
	return featureLabels[f][1]
}
