package login

import (
	"context"
	"errors"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/unimind/unimind/internal/auth"
	"github.com/unimind/unimind/internal/screen"
	"github.com/unimind/unimind/internal/ui/components"
	"github.com/unimind/unimind/internal/ui/layout"
	"github.com/unimind/unimind/internal/ui/theme"
)

// field indexes for the two modes.
const (
	fieldEmail = iota
	fieldPassword
	fieldName
	fieldStudentID
)

type authResultMsg struct {
	principal *auth.Principal
	err       error
}

// LoginScreen handles sign-in and sign-up.
type LoginScreen struct {
	service *auth.Service

	signupMode bool
	inputs     []components.TextInput
	focused    int
	submitting bool
	errMsg     string
}

var _ screen.Screen = (*LoginScreen)(nil)
var _ screen.KeyHintProvider = (*LoginScreen)(nil)

// New creates a LoginScreen in sign-in mode.
func New(service *auth.Service) *LoginScreen {
	s := &LoginScreen{service: service}
	s.rebuildInputs()
	return s
}

func (s *LoginScreen) rebuildInputs() {
	email := components.NewTextInput("you@university.edu", false, 64)
	password := components.NewTextInput("password", false, 64)
	password.Model.EchoMode = textinput.EchoPassword

	s.inputs = []components.TextInput{email, password}
	if s.signupMode {
		name := components.NewTextInput("full name", false, 64)
		studentID := components.NewTextInput("student ID (optional)", false, 32)
		s.inputs = append(s.inputs, name, studentID)
	}
	s.focused = 0
	s.syncFocus()
}

func (s *LoginScreen) syncFocus() {
	for i := range s.inputs {
		if i == s.focused {
			s.inputs[i].Model.Focus()
		} else {
			s.inputs[i].Model.Blur()
		}
	}
}

func (s *LoginScreen) Title() string {
	if s.signupMode {
		return "Create Account"
	}
	return "Sign In"
}

func (s *LoginScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Ctrl+T", Description: "Toggle sign up"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *LoginScreen) Init() tea.Cmd {
	return s.inputs[0].Init()
}

func (s *LoginScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case authResultMsg:
		s.submitting = false
		if msg.err != nil {
			s.errMsg = msg.err.Error()
			return s, nil
		}
		return s, func() tea.Msg {
			return screen.SignedInMsg{Principal: msg.principal}
		}

	case tea.KeyMsg:
		if s.submitting {
			return s, nil
		}
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg {
				return screen.NavigateMsg{To: screen.NameWelcome}
			}
		case "tab", "down":
			s.focused = (s.focused + 1) % len(s.inputs)
			s.syncFocus()
			return s, nil
		case "shift+tab", "up":
			s.focused = (s.focused - 1 + len(s.inputs)) % len(s.inputs)
			s.syncFocus()
			return s, nil
		case "ctrl+t":
			s.signupMode = !s.signupMode
			s.errMsg = ""
			s.rebuildInputs()
			return s, nil
		case "enter":
			return s, s.submit()
		}
	}

	var cmd tea.Cmd
	s.inputs[s.focused], cmd = s.inputs[s.focused].Update(msg)
	return s, cmd
}

func (s *LoginScreen) submit() tea.Cmd {
	email := strings.TrimSpace(s.inputs[fieldEmail].Value())
	password := s.inputs[fieldPassword].Value()

	if email == "" || password == "" {
		s.errMsg = "email and password are required"
		return nil
	}

	signup := s.signupMode
	var name, studentID string
	if signup {
		name = strings.TrimSpace(s.inputs[fieldName].Value())
		studentID = strings.TrimSpace(s.inputs[fieldStudentID].Value())
		if name == "" {
			s.errMsg = "name is required"
			return nil
		}
	}

	s.submitting = true
	s.errMsg = ""
	service := s.service

	return func() tea.Msg {
		ctx := context.Background()
		var p *auth.Principal
		var err error
		if signup {
			p, err = service.SignUp(ctx, name, email, studentID, password)
		} else {
			p, err = service.SignIn(ctx, email, password)
		}
		if err != nil {
			if errors.Is(err, auth.ErrInvalidCredentials) || errors.Is(err, auth.ErrEmailTaken) {
				return authResultMsg{err: err}
			}
			return authResultMsg{err: errors.New("something went wrong, please try again")}
		}
		return authResultMsg{principal: p}
	}
}

func (s *LoginScreen) View(width, height int) string {
	var b strings.Builder

	title := "Welcome back"
	if s.signupMode {
		title = "Create your account"
	}
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(title))
	b.WriteString("\n\n")

	labels := []string{"Email", "Password"}
	if s.signupMode {
		labels = append(labels, "Name", "Student ID")
	}

	for i, input := range s.inputs {
		label := lipgloss.NewStyle().Foreground(theme.TextDim).Render(labels[i])
		b.WriteString(label + "\n")
		b.WriteString(input.View() + "\n\n")
	}

	if s.submitting {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("signing in..."))
	} else if s.errMsg != "" {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Error).
			Render(s.errMsg))
	}

	b.WriteString("\n\n")
	toggle := "ctrl+t to create an account instead"
	if s.signupMode {
		toggle = "ctrl+t to sign in instead"
	}
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Italic(true).
		Render(toggle))

	card := theme.Card.Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
