package screen

import (
	"github.com/unimind/unimind/internal/auth"
	"github.com/unimind/unimind/internal/survey"
)

// Name identifies a top-level destination screen.
type Name int

const (
	NameWelcome Name = iota
	NameLogin
	NameSurvey
	NameResults
	NameProfile
	NameHistory
)

func (n Name) String() string {
	switch n {
	case NameWelcome:
		return "welcome"
	case NameLogin:
		return "login"
	case NameSurvey:
		return "survey"
	case NameResults:
		return "results"
	case NameProfile:
		return "profile"
	case NameHistory:
		return "history"
	default:
		return "unknown"
	}
}

// NavigateMsg asks the app to replace the stack root with the named screen.
type NavigateMsg struct {
	To Name
}

// SurveyCompletedMsg is emitted when the last question has been answered
// and the student confirms submission.
type SurveyCompletedMsg struct {
	Form survey.Form
}

// PredictionFailedMsg tells the survey screen that scoring failed so it
// can offer retry or cancel.
type PredictionFailedMsg struct {
	Err error
}

// SignedInMsg is emitted by the login screen after a successful sign-in
// or sign-up.
type SignedInMsg struct {
	Principal *auth.Principal
}

// SignOutMsg asks the app to end the session and return to the welcome
// screen.
type SignOutMsg struct{}
