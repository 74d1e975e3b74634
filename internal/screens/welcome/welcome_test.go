package welcome

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/unimind/unimind/internal/auth"
	"github.com/unimind/unimind/internal/screen"
)

func selectItem(t *testing.T, w *WelcomeScreen, label string) tea.Cmd {
	t.Helper()
	for i := 0; i < len(w.menu.Items); i++ {
		if w.menu.Items[w.menu.Selected].Label == label {
			_, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
			return cmd
		}
		w.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	t.Fatalf("menu item %q not found", label)
	return nil
}

func TestSignedOutMenuOffersSignIn(t *testing.T) {
	w := New(nil)

	view := w.View(80, 24)
	if !strings.Contains(view, "SIGN IN") {
		t.Error("signed-out menu should offer SIGN IN")
	}
	if strings.Contains(view, "PROFILE") {
		t.Error("signed-out menu should not offer PROFILE")
	}
}

func TestSignedInMenuOffersProfileAndHistory(t *testing.T) {
	w := New(&auth.Principal{ID: "u1", Name: "Avery"})

	view := w.View(80, 24)
	if strings.Contains(view, "SIGN IN") {
		t.Error("signed-in menu should not offer SIGN IN")
	}
	if !strings.Contains(view, "PROFILE") {
		t.Error("signed-in menu should offer PROFILE")
	}
	if !strings.Contains(view, "HISTORY") {
		t.Error("signed-in menu should offer HISTORY")
	}
}

func TestStartAssessmentNavigates(t *testing.T) {
	w := New(nil)

	cmd := selectItem(t, w, "START ASSESSMENT")
	if cmd == nil {
		t.Fatal("expected a command from START ASSESSMENT")
	}
	msg := cmd()
	nav, ok := msg.(screen.NavigateMsg)
	if !ok {
		t.Fatalf("expected NavigateMsg, got %T", msg)
	}
	if nav.To != screen.NameSurvey {
		t.Errorf("expected navigation to survey, got %v", nav.To)
	}
}

func TestSignInNavigatesToLogin(t *testing.T) {
	w := New(nil)

	cmd := selectItem(t, w, "SIGN IN")
	if cmd == nil {
		t.Fatal("expected a command from SIGN IN")
	}
	msg := cmd()
	nav, ok := msg.(screen.NavigateMsg)
	if !ok {
		t.Fatalf("expected NavigateMsg, got %T", msg)
	}
	if nav.To != screen.NameLogin {
		t.Errorf("expected navigation to login, got %v", nav.To)
	}
}

func TestExitQuits(t *testing.T) {
	w := New(nil)

	cmd := selectItem(t, w, "EXIT")
	if cmd == nil {
		t.Fatal("expected a command from EXIT")
	}
	if msg := cmd(); msg == nil {
		t.Error("expected quit message")
	}
}
