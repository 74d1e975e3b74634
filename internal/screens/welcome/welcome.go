package welcome

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/unimind/unimind/internal/auth"
	"github.com/unimind/unimind/internal/screen"
	"github.com/unimind/unimind/internal/ui/components"
	"github.com/unimind/unimind/internal/ui/theme"
)

// WelcomeScreen is the entry menu. Its items depend on whether a student
// is signed in.
type WelcomeScreen struct {
	menu     components.Menu
	signedIn bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen for the given principal (nil when signed out).
func New(principal *auth.Principal) *WelcomeScreen {
	signedIn := principal != nil

	items := []components.MenuItem{
		{Label: "START ASSESSMENT", Action: navigateTo(screen.NameSurvey)},
	}
	if signedIn {
		items = append(items,
			components.MenuItem{Label: "PROFILE", Action: navigateTo(screen.NameProfile)},
			components.MenuItem{Label: "HISTORY", Action: navigateTo(screen.NameHistory)},
		)
	} else {
		items = append(items,
			components.MenuItem{Label: "SIGN IN", Action: navigateTo(screen.NameLogin)},
		)
	}
	items = append(items, components.MenuItem{Label: "EXIT", Action: func() tea.Cmd {
		return tea.Quit
	}})

	return &WelcomeScreen{
		menu:     components.NewMenu(items),
		signedIn: signedIn,
	}
}

func navigateTo(name screen.Name) func() tea.Cmd {
	return func() tea.Cmd {
		return func() tea.Msg {
			return screen.NavigateMsg{To: name}
		}
	}
}

func (w *WelcomeScreen) Title() string {
	return "Welcome"
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return nil
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	w.menu, cmd = w.menu.Update(msg)
	return w, cmd
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, RenderBanner(width))
	sections = append(sections, "")

	tagline := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("Your mental wellness companion")
	sections = append(sections, tagline)
	sections = append(sections, "")
	sections = append(sections, w.menu.View())

	if !w.signedIn {
		hint := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("sign in to save your assessments")
		sections = append(sections, hint)
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
