package history

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/unimind/unimind/internal/risk"
	"github.com/unimind/unimind/internal/screen"
	"github.com/unimind/unimind/internal/store"
	"github.com/unimind/unimind/internal/survey"
	"github.com/unimind/unimind/internal/ui/layout"
	"github.com/unimind/unimind/internal/ui/theme"
)

type historyLoadedMsg struct {
	Records []*store.AssessmentRecord
	Err     error
}

// HistoryScreen displays past assessments, most recent first.
type HistoryScreen struct {
	userID      string
	assessments store.AssessmentRepo

	records  []*store.AssessmentRecord
	selected int
	expanded map[int]bool
	loaded   bool
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a HistoryScreen for the given student.
func New(userID string, assessments store.AssessmentRepo) *HistoryScreen {
	return &HistoryScreen{
		userID:      userID,
		assessments: assessments,
		expanded:    make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	userID := s.userID
	assessments := s.assessments

	return func() tea.Msg {
		records, err := assessments.History(context.Background(), userID)
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		return historyLoadedMsg{Records: records}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		// A failed read degrades to the empty state; storage problems
		// never reach the student.
		if msg.Err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to load history: %v\n", msg.Err)
		} else {
			s.records = msg.Records
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg {
				return screen.NavigateMsg{To: screen.NameWelcome}
			}
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.records)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.records) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No assessments yet. Take your first one!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, rec := range s.records {
		dateStr := rec.Timestamp.Format("Jan 02, 2006 15:04")

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s    %s Risk    score %.0f%%",
			prefix, dateStr, rec.RiskLevel, rec.ProbabilityPositive*100)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			s.renderDetails(&b, rec, width)
		}
	}

	return b.String()
}

// renderDetails writes the expanded per-question answers for one record.
func (s *HistoryScreen) renderDetails(b *strings.Builder, rec *store.AssessmentRecord, width int) {
	badgeColor := theme.RiskColor(rec.RiskLevel)

	if lvl, err := risk.ParseLevel(rec.RiskLevel); err == nil {
		summary := fmt.Sprintf("    %s", lvl.Summary())
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(badgeColor).Width(min(width-8, 70)).Render(summary)))
		b.WriteString("\n")
	}

	for _, q := range survey.Questions() {
		v, ok := rec.FormData[string(q.ID)]
		if !ok {
			continue
		}
		valueText := q.DisplayValue(v)
		if q.Unit != "" {
			valueText += " " + q.Unit
		}
		line := fmt.Sprintf("    %-28s %s", q.Title, valueText)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(line)))
		b.WriteString("\n")
	}
}
