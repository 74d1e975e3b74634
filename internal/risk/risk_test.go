package risk

import "testing"

func TestClassifyBoundaries(t *testing.T) {
	tests := []struct {
		p    float64
		want Level
	}{
		{0.0, LevelLow},
		{0.2999, LevelLow},
		{0.30, LevelModerate},
		{0.4999, LevelModerate},
		{0.50, LevelHigh},
		{0.6999, LevelHigh},
		{0.70, LevelVeryHigh},
		{1.0, LevelVeryHigh},
	}

	for _, tt := range tests {
		if got := Classify(tt.p); got != tt.want {
			t.Errorf("Classify(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelLow, "Low"},
		{LevelModerate, "Moderate"},
		{LevelHigh, "High"},
		{LevelVeryHigh, "Very High"},
	}

	for _, tt := range tests {
		if got := tt.level.DisplayName(); got != tt.want {
			t.Errorf("DisplayName(%d) = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestParseLevelRoundTrip(t *testing.T) {
	for _, level := range []Level{LevelLow, LevelModerate, LevelHigh, LevelVeryHigh} {
		got, err := ParseLevel(level.String())
		if err != nil {
			t.Errorf("ParseLevel(%q): %v", level.String(), err)
			continue
		}
		if got != level {
			t.Errorf("ParseLevel(%q) = %v, want %v", level.String(), got, level)
		}
	}

	if _, err := ParseLevel("bogus"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestNeedsCrisisResources(t *testing.T) {
	if LevelLow.NeedsCrisisResources() {
		t.Error("low risk should not show crisis resources")
	}
	if LevelModerate.NeedsCrisisResources() {
		t.Error("moderate risk should not show crisis resources")
	}
	if !LevelHigh.NeedsCrisisResources() {
		t.Error("high risk should show crisis resources")
	}
	if !LevelVeryHigh.NeedsCrisisResources() {
		t.Error("very high risk should show crisis resources")
	}
}

func TestRecommendationsNonEmpty(t *testing.T) {
	for _, level := range []Level{LevelLow, LevelModerate, LevelHigh, LevelVeryHigh} {
		if len(level.Recommendations()) == 0 {
			t.Errorf("no recommendations for %v", level)
		}
		if level.Summary() == "" {
			t.Errorf("no summary for %v", level)
		}
	}
}
