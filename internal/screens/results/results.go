package results

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/unimind/unimind/internal/risk"
	"github.com/unimind/unimind/internal/screen"
	"github.com/unimind/unimind/internal/ui/components"
	"github.com/unimind/unimind/internal/ui/layout"
	"github.com/unimind/unimind/internal/ui/theme"
)

// ResultsScreen shows the outcome of a completed assessment: the risk
// badge, probability, interpretation, and recommendations.
type ResultsScreen struct {
	level       risk.Level
	probability float64
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a ResultsScreen for a classified assessment.
func New(level risk.Level, probability float64) *ResultsScreen {
	return &ResultsScreen{level: level, probability: probability}
}

func (s *ResultsScreen) Title() string {
	return "Results"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "N", Description: "New assessment"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "n":
			return s, func() tea.Msg {
				return screen.NavigateMsg{To: screen.NameSurvey}
			}
		case "esc", "enter":
			return s, func() tea.Msg {
				return screen.NavigateMsg{To: screen.NameWelcome}
			}
		}
	}
	return s, nil
}

func (s *ResultsScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Assessment complete"))
	b.WriteString("\n\n")

	// Risk badge.
	badge := lipgloss.NewStyle().
		Foreground(theme.BgDark).
		Background(theme.RiskColor(s.level.String())).
		Bold(true).
		Padding(0, 2).
		Render(fmt.Sprintf("%s Risk", s.level.DisplayName()))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, badge))
	b.WriteString("\n\n")

	// Probability bar.
	bar := components.NewProgressBar("Risk score", s.probability, true, 48)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	// Interpretation.
	summary := lipgloss.NewStyle().
		Foreground(theme.Text).
		Width(min(width-8, 64)).
		Render(s.level.Summary())
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, summary))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))

	// Recommendations.
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Recommendations")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	for _, rec := range s.level.Recommendations() {
		line := "  • " + rec
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Text).Width(min(width-8, 64)).Render(line)))
		b.WriteString("\n")
	}

	// Crisis resources for high-risk results.
	if s.level.NeedsCrisisResources() {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render("Immediate Support")))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n\n")

		for _, res := range risk.CrisisResources() {
			line := fmt.Sprintf("  %s: %s (%s)", res.Name, res.Contact, res.Description)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.Text).Width(min(width-8, 72)).Render(line)))
			b.WriteString("\n")
		}
	}

	return b.String()
}
