package profile

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/unimind/unimind/internal/auth"
	"github.com/unimind/unimind/internal/screen"
	"github.com/unimind/unimind/internal/store"
	"github.com/unimind/unimind/internal/ui/layout"
	"github.com/unimind/unimind/internal/ui/theme"
)

type profileLoadedMsg struct {
	memberSince    time.Time
	lastAssessment *time.Time
	total          int
}

// ProfileScreen shows the signed-in student's account details.
type ProfileScreen struct {
	principal   *auth.Principal
	users       store.UserRepo
	assessments store.AssessmentRepo

	loaded         bool
	memberSince    time.Time
	lastAssessment *time.Time
	total          int
}

var _ screen.Screen = (*ProfileScreen)(nil)
var _ screen.KeyHintProvider = (*ProfileScreen)(nil)

// New creates a ProfileScreen for the signed-in student.
func New(principal *auth.Principal, users store.UserRepo, assessments store.AssessmentRepo) *ProfileScreen {
	return &ProfileScreen{
		principal:   principal,
		users:       users,
		assessments: assessments,
	}
}

func (s *ProfileScreen) Title() string {
	return "Profile"
}

func (s *ProfileScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "H", Description: "History"},
		{Key: "S", Description: "Sign out"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *ProfileScreen) Init() tea.Cmd {
	principal := s.principal
	users := s.users
	assessments := s.assessments

	return func() tea.Msg {
		ctx := context.Background()
		msg := profileLoadedMsg{}

		if rec, err := users.ByID(ctx, principal.ID); err == nil && rec != nil {
			msg.memberSince = rec.CreatedAt
			msg.lastAssessment = rec.LastAssessment
		}
		if history, err := assessments.History(ctx, principal.ID); err == nil {
			msg.total = len(history)
		}
		return msg
	}
}

func (s *ProfileScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case profileLoadedMsg:
		s.loaded = true
		s.memberSince = msg.memberSince
		s.lastAssessment = msg.lastAssessment
		s.total = msg.total
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "h":
			return s, func() tea.Msg {
				return screen.NavigateMsg{To: screen.NameHistory}
			}
		case "s":
			return s, func() tea.Msg {
				return screen.SignOutMsg{}
			}
		case "esc":
			return s, func() tea.Msg {
				return screen.NavigateMsg{To: screen.NameWelcome}
			}
		}
	}
	return s, nil
}

func (s *ProfileScreen) View(width, height int) string {
	p := s.principal
	if p == nil {
		return ""
	}

	label := lipgloss.NewStyle().Foreground(theme.TextDim)
	value := lipgloss.NewStyle().Foreground(theme.Text)

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(p.Name))
	b.WriteString("\n\n")

	b.WriteString(label.Render("Email       ") + value.Render(p.Email) + "\n")
	if p.StudentID != "" {
		b.WriteString(label.Render("Student ID  ") + value.Render(p.StudentID) + "\n")
	}

	if s.loaded {
		if !s.memberSince.IsZero() {
			b.WriteString(label.Render("Member since") + " " +
				value.Render(s.memberSince.Format("Jan 02, 2006")) + "\n")
		}
		b.WriteString("\n")
		assessed := "No assessments yet"
		if s.total > 0 {
			assessed = fmt.Sprintf("%d assessment", s.total)
			if s.total > 1 {
				assessed += "s"
			}
			if s.lastAssessment != nil {
				assessed += ", last on " + s.lastAssessment.Format("Jan 02, 2006")
			}
		}
		b.WriteString(label.Render(assessed))
	}

	card := theme.Card.Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
