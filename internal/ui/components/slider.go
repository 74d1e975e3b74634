package components

import (
	"math"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/unimind/unimind/internal/ui/theme"
)

// Slider is a horizontal value selector over a bounded numeric range.
type Slider struct {
	Min   float64
	Max   float64
	Step  float64
	Value float64
	Width int
}

// NewSlider creates a slider positioned at value.
func NewSlider(min, max, step, value float64, width int) Slider {
	s := Slider{Min: min, Max: max, Step: step, Value: value, Width: width}
	s.Value = s.clamp(value)
	return s
}

// Init returns nil.
func (s Slider) Init() tea.Cmd {
	return nil
}

// Update handles keyboard adjustment. Shift-stepped keys move faster on
// wide ranges.
func (s Slider) Update(msg tea.Msg) (Slider, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "left", "h":
		s.Value = s.clamp(s.Value - s.Step)
	case "right", "l":
		s.Value = s.clamp(s.Value + s.Step)
	case "shift+left", "H":
		s.Value = s.clamp(s.Value - 10*s.Step)
	case "shift+right", "L":
		s.Value = s.clamp(s.Value + 10*s.Step)
	case "home":
		s.Value = s.Min
	case "end":
		s.Value = s.Max
	}

	return s, nil
}

// View renders the slider track with its position marker.
func (s Slider) View() string {
	barWidth := s.Width
	if barWidth < 10 {
		barWidth = 10
	}

	frac := 0.0
	if s.Max > s.Min {
		frac = (s.Value - s.Min) / (s.Max - s.Min)
	}

	pos := int(math.Round(frac * float64(barWidth-1)))
	if pos < 0 {
		pos = 0
	}
	if pos > barWidth-1 {
		pos = barWidth - 1
	}

	filled := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Render(strings.Repeat("━", pos))
	marker := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("●")
	empty := lipgloss.NewStyle().
		Foreground(theme.Border).
		Render(strings.Repeat("━", barWidth-1-pos))

	return filled + marker + empty
}

// clamp snaps v into [Min, Max] on the step grid.
func (s Slider) clamp(v float64) float64 {
	if v < s.Min {
		return s.Min
	}
	if v > s.Max {
		return s.Max
	}
	if s.Step > 0 {
		steps := math.Round((v - s.Min) / s.Step)
		v = s.Min + steps*s.Step
		if v > s.Max {
			v = s.Max
		}
	}
	return v
}
