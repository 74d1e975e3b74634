package theme

import (
	"image/color"
	"testing"
)

func TestRiskColor(t *testing.T) {
	tests := []struct {
		level string
		want  color.Color
	}{
		{"Low", Success},
		{"Moderate", Warning},
		{"High", Error},
		{"Very High", Danger},
		{"unknown", TextDim},
		{"", TextDim},
	}

	for _, tt := range tests {
		if got := RiskColor(tt.level); got != tt.want {
			t.Errorf("RiskColor(%q) = %v, want %v", tt.level, got, tt.want)
		}
	}
}
