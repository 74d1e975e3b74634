package app

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/unimind/unimind/internal/auth"
	"github.com/unimind/unimind/internal/predict"
	"github.com/unimind/unimind/internal/risk"
	"github.com/unimind/unimind/internal/router"
	"github.com/unimind/unimind/internal/screen"
	"github.com/unimind/unimind/internal/screens/assessment"
	"github.com/unimind/unimind/internal/screens/history"
	"github.com/unimind/unimind/internal/screens/login"
	"github.com/unimind/unimind/internal/screens/profile"
	"github.com/unimind/unimind/internal/screens/results"
	"github.com/unimind/unimind/internal/screens/welcome"
	"github.com/unimind/unimind/internal/store"
	"github.com/unimind/unimind/internal/ui/layout"
)

// Options wires the services the UI depends on.
type Options struct {
	Auth        *auth.Service
	Scorer      predict.Scorer
	Users       store.UserRepo
	Assessments store.AssessmentRepo
}

type authRestoredMsg struct {
	principal *auth.Principal
	err       error
}

type predictionDoneMsg struct {
	result *predict.Result
	record *store.AssessmentRecord
}

type predictionErrMsg struct {
	err error
}

type assessmentSavedMsg struct {
	err error
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	opts   Options
	router *router.Router
	width  int
	height int

	principal         *auth.Principal
	authLoading       bool
	predictionLoading bool
}

// newAppModel creates a new AppModel on the welcome screen, pending
// session restore.
func newAppModel(opts Options) AppModel {
	return AppModel{
		opts:        opts,
		router:      router.New(welcome.New(nil)),
		authLoading: true,
	}
}

func (m AppModel) Init() tea.Cmd {
	service := m.opts.Auth
	return func() tea.Msg {
		p, err := service.Restore(context.Background())
		return authRestoredMsg{principal: p, err: err}
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case authRestoredMsg:
		m.authLoading = false
		if msg.err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to restore session: %v\n", msg.err)
		}
		m.principal = msg.principal
		return m, m.router.Reset(welcome.New(m.principal))

	case screen.NavigateMsg:
		return m, m.navigate(msg.To)

	case screen.SignedInMsg:
		m.principal = msg.Principal
		return m, m.navigate(screen.NameWelcome)

	case screen.SignOutMsg:
		m.principal = nil
		service := m.opts.Auth
		signOut := func() tea.Msg {
			if err := service.SignOut(context.Background()); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to clear session: %v\n", err)
			}
			return nil
		}
		return m, tea.Batch(signOut, m.navigate(screen.NameWelcome))

	case screen.SurveyCompletedMsg:
		return m.completeSurvey(msg)

	case predictionDoneMsg:
		m.predictionLoading = false
		level := risk.Classify(msg.result.ProbabilityPositive)
		resultsCmd := m.router.Replace(results.New(level, msg.result.ProbabilityPositive))

		// The results screen is already on the stack; the save runs
		// detached and can only produce a logged warning.
		record := msg.record
		repo := m.opts.Assessments
		saveCmd := func() tea.Msg {
			_, err := repo.Save(context.Background(), record)
			return assessmentSavedMsg{err: err}
		}
		return m, tea.Batch(resultsCmd, saveCmd)

	case predictionErrMsg:
		m.predictionLoading = false
		cmd := m.router.Update(screen.PredictionFailedMsg{Err: msg.err})
		return m, cmd

	case assessmentSavedMsg:
		if msg.err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to save assessment: %v\n", msg.err)
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// navigate replaces the stack root with the named screen.
func (m *AppModel) navigate(to screen.Name) tea.Cmd {
	switch to {
	case screen.NameWelcome:
		return m.router.Reset(welcome.New(m.principal))
	case screen.NameLogin:
		return m.router.Reset(login.New(m.opts.Auth))
	case screen.NameSurvey:
		return m.router.Reset(assessment.New())
	case screen.NameProfile:
		if m.principal == nil {
			return m.router.Reset(login.New(m.opts.Auth))
		}
		return m.router.Reset(profile.New(m.principal, m.opts.Users, m.opts.Assessments))
	case screen.NameHistory:
		if m.principal == nil {
			return m.router.Reset(login.New(m.opts.Auth))
		}
		return m.router.Reset(history.New(m.principal.ID, m.opts.Assessments))
	default:
		return m.router.Reset(welcome.New(m.principal))
	}
}

// completeSurvey starts scoring for a finished questionnaire. Without a
// signed-in student it routes to login and makes no network call.
func (m AppModel) completeSurvey(msg screen.SurveyCompletedMsg) (tea.Model, tea.Cmd) {
	if m.principal == nil {
		return m, m.navigate(screen.NameLogin)
	}
	if m.predictionLoading {
		return m, nil
	}
	m.predictionLoading = true

	// A token failure is not fatal: the request goes out unauthenticated
	// and the server decides.
	token, err := m.opts.Auth.Token(false)
	if err != nil {
		token = ""
	}

	scorer := m.opts.Scorer
	form := msg.Form
	userID := m.principal.ID

	// Forward to the router first so the assessment screen shows its
	// submitting state.
	routerCmd := m.router.Update(msg)

	scoreCmd := func() tea.Msg {
		result, err := scorer.Score(context.Background(), form, token)
		if err != nil {
			return predictionErrMsg{err: err}
		}
		level := risk.Classify(result.ProbabilityPositive)
		return predictionDoneMsg{
			result: result,
			record: &store.AssessmentRecord{
				UserID:              userID,
				FormData:            form.Values(),
				Prediction:          result.Prediction,
				ProbabilityPositive: result.ProbabilityPositive,
				ProbabilityNegative: result.ProbabilityNegative,
				RiskLevel:           level.String(),
				Timestamp:           time.Now(),
			},
		}
	}

	return m, tea.Batch(routerCmd, scoreCmd)
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	if m.authLoading {
		splash := lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			"UniMind is starting...")
		v.SetContent(splash)
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	who := ""
	if m.principal != nil {
		who = m.principal.Name
	}
	header := layout.RenderHeader(title, who, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if provider, ok := active.(screen.KeyHintProvider); ok {
		if hints := provider.KeyHints(); len(hints) > 0 {
			footerHints = append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
