package assessment

import (
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/unimind/unimind/internal/predict"
	"github.com/unimind/unimind/internal/screen"
	"github.com/unimind/unimind/internal/survey"
	"github.com/unimind/unimind/internal/ui/components"
	"github.com/unimind/unimind/internal/ui/layout"
	"github.com/unimind/unimind/internal/ui/theme"
)

// AssessmentScreen walks the student through the questionnaire one
// question at a time, then hands the completed form off for scoring.
type AssessmentScreen struct {
	walker     *survey.Walker
	submitting bool
	failedErr  error
	lastForm   survey.Form
}

var _ screen.Screen = (*AssessmentScreen)(nil)
var _ screen.KeyHintProvider = (*AssessmentScreen)(nil)

// New creates an AssessmentScreen positioned at the first question.
func New() *AssessmentScreen {
	return &AssessmentScreen{walker: survey.NewWalker()}
}

func (s *AssessmentScreen) Title() string {
	return "Assessment"
}

func (s *AssessmentScreen) KeyHints() []layout.KeyHint {
	if s.failedErr != nil {
		return []layout.KeyHint{
			{Key: "R", Description: "Retry"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	if s.submitting {
		return nil
	}
	return []layout.KeyHint{
		{Key: "←→", Description: "Adjust"},
		{Key: "Enter", Description: "Next"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *AssessmentScreen) Init() tea.Cmd {
	return nil
}

func (s *AssessmentScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.PredictionFailedMsg:
		s.submitting = false
		s.failedErr = msg.Err
		return s, nil

	case tea.KeyMsg:
		if s.failedErr != nil {
			return s.updateFailed(msg)
		}
		if s.submitting {
			return s, nil
		}
		return s.updateQuestion(msg)
	}

	return s, nil
}

func (s *AssessmentScreen) updateFailed(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "r":
		s.failedErr = nil
		s.submitting = true
		form := s.lastForm
		return s, func() tea.Msg {
			return screen.SurveyCompletedMsg{Form: form}
		}
	case "esc":
		// Back to the last question with answers intact.
		s.failedErr = nil
		return s, nil
	}
	return s, nil
}

func (s *AssessmentScreen) updateQuestion(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "left", "h":
		s.walker.Adjust(-1)
	case "right", "l":
		s.walker.Adjust(1)
	case "shift+left", "H":
		s.walker.Adjust(-10)
	case "shift+right", "L":
		s.walker.Adjust(10)
	case "enter":
		form, done := s.walker.Next()
		if done {
			s.submitting = true
			s.lastForm = form
			return s, func() tea.Msg {
				return screen.SurveyCompletedMsg{Form: form}
			}
		}
	case "esc":
		if exit := s.walker.Back(); exit {
			return s, func() tea.Msg {
				return screen.NavigateMsg{To: screen.NameWelcome}
			}
		}
	}
	return s, nil
}

func (s *AssessmentScreen) View(width, height int) string {
	if s.failedErr != nil {
		return s.viewFailed(width, height)
	}
	if s.submitting {
		content := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("Analyzing your responses...")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
	}

	q := s.walker.Question()
	value := s.walker.Value()

	var b strings.Builder

	progress := components.NewProgressBar(
		fmt.Sprintf("Question %d of %d", s.walker.Index()+1, survey.TotalQuestions()),
		float64(s.walker.Index())/float64(survey.TotalQuestions()),
		false, 56)
	b.WriteString(progress.View())
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(q.Title))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(q.Description))
	b.WriteString("\n\n")

	slider := components.NewSlider(q.Min, q.Max, q.Step, value, 40)
	b.WriteString(slider.View())
	b.WriteString("\n\n")

	valueText := q.DisplayValue(value)
	if q.Unit != "" {
		valueText += " " + q.Unit
	}
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render(valueText))

	card := theme.Card.Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (s *AssessmentScreen) viewFailed(width, height int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Error).
		Bold(true).
		Render("Prediction failed"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Text).
		Render(friendlyMessage(s.failedErr)))
	b.WriteString("\n\n")

	retry := components.NewButton("Retry (r)", true, nil)
	cancel := components.NewButton("Cancel (esc)", false, nil)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, retry.View(), "  ", cancel.View()))

	card := theme.Card.Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

// friendlyMessage maps gateway errors to student-facing copy.
func friendlyMessage(err error) string {
	var serverErr *predict.ErrServer
	var schemaErr *predict.ErrSchema
	var timeoutErr *predict.ErrTimeout
	var networkErr *predict.ErrNetwork

	switch {
	case errors.As(err, &timeoutErr):
		return "The request timed out. Check your connection and try again."
	case errors.As(err, &networkErr):
		return "Could not reach the server. Check your connection."
	case errors.As(err, &serverErr):
		return serverErr.Message
	case errors.As(err, &schemaErr):
		return "Received an unexpected response from the server."
	default:
		return "Something went wrong. Please try again."
	}
}
