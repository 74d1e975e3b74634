package risk

import "fmt"

// Level is the discrete risk category derived from the prediction
// service's positive-class probability.
type Level int

const (
	LevelLow Level = iota
	LevelModerate
	LevelHigh
	LevelVeryHigh
)

// Classification thresholds on the positive-class probability.
const (
	moderateThreshold = 0.30
	highThreshold     = 0.50
	veryHighThreshold = 0.70
)

// Classify maps a probability to a risk level. The caller clamps p to
// [0, 1] before classification; Classify itself is pure and total.
func Classify(p float64) Level {
	switch {
	case p < moderateThreshold:
		return LevelLow
	case p < highThreshold:
		return LevelModerate
	case p < veryHighThreshold:
		return LevelHigh
	default:
		return LevelVeryHigh
	}
}

// DisplayName returns the user-facing name, e.g. "Very High".
func (l Level) DisplayName() string {
	switch l {
	case LevelLow:
		return "Low"
	case LevelModerate:
		return "Moderate"
	case LevelHigh:
		return "High"
	case LevelVeryHigh:
		return "Very High"
	}
	return "Unknown"
}

func (l Level) String() string {
	return l.DisplayName()
}

// ParseLevel converts a persisted display name back to a Level.
func ParseLevel(s string) (Level, error) {
	switch s {
	case "Low":
		return LevelLow, nil
	case "Moderate":
		return LevelModerate, nil
	case "High":
		return LevelHigh, nil
	case "Very High":
		return LevelVeryHigh, nil
	}
	return LevelLow, fmt.Errorf("unknown risk level: %q", s)
}

// NeedsCrisisResources reports whether the results screen should show
// immediate-support resources for this level.
func (l Level) NeedsCrisisResources() bool {
	return l >= LevelHigh
}
