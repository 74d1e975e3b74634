package app

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/unimind/unimind/internal/auth"
	"github.com/unimind/unimind/internal/predict"
	"github.com/unimind/unimind/internal/screen"
	"github.com/unimind/unimind/internal/screens/assessment"
	"github.com/unimind/unimind/internal/screens/login"
	"github.com/unimind/unimind/internal/screens/results"
	"github.com/unimind/unimind/internal/screens/welcome"
	"github.com/unimind/unimind/internal/store"
	"github.com/unimind/unimind/internal/survey"
)

// mockUserRepo implements store.UserRepo for testing.
type mockUserRepo struct {
	users map[string]*store.UserRecord
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*store.UserRecord)}
}

func (m *mockUserRepo) Create(_ context.Context, rec *store.UserRecord) error {
	m.users[rec.ID] = rec
	return nil
}

func (m *mockUserRepo) ByEmail(_ context.Context, email string) (*store.UserRecord, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepo) ByID(_ context.Context, id string) (*store.UserRecord, error) {
	return m.users[id], nil
}

func (m *mockUserRepo) TouchAssessment(_ context.Context, _ string, _ time.Time) error {
	return nil
}

// mockSessionRepo implements store.SessionRepo for testing.
type mockSessionRepo struct {
	userID string
}

func (m *mockSessionRepo) Put(_ context.Context, userID string) error {
	m.userID = userID
	return nil
}
func (m *mockSessionRepo) Current(_ context.Context) (string, error) { return m.userID, nil }
func (m *mockSessionRepo) Clear(_ context.Context) error             { m.userID = ""; return nil }

// mockAssessmentRepo implements store.AssessmentRepo for testing.
type mockAssessmentRepo struct {
	saved   []*store.AssessmentRecord
	saveErr error
}

func (m *mockAssessmentRepo) Save(_ context.Context, rec *store.AssessmentRecord) (string, error) {
	if m.saveErr != nil {
		return "", m.saveErr
	}
	m.saved = append(m.saved, rec)
	return "assessment-1", nil
}

func (m *mockAssessmentRepo) History(_ context.Context, userID string) ([]*store.AssessmentRecord, error) {
	var out []*store.AssessmentRecord
	for _, r := range m.saved {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func testModel(scorer predict.Scorer, assessments *mockAssessmentRepo) AppModel {
	users := newMockUserRepo()
	sessions := &mockSessionRepo{}
	authService := auth.NewService(users, sessions, []byte("0123456789abcdef0123456789abcdef"))

	m := newAppModel(Options{
		Auth:        authService,
		Scorer:      scorer,
		Users:       users,
		Assessments: assessments,
	})
	m.authLoading = false
	return m
}

// runCmd executes a command tree and returns all produced messages.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if msg == nil {
		return nil
	}
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func update(t *testing.T, m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	model, cmd := m.Update(msg)
	next, ok := model.(AppModel)
	if !ok {
		t.Fatalf("unexpected model type %T", model)
	}
	return next, cmd
}

func TestCompleteSurveyWithoutPrincipalGoesToLogin(t *testing.T) {
	mock := predict.NewMockScorer()
	m := testModel(mock, &mockAssessmentRepo{})

	m, _ = update(t, m, screen.SurveyCompletedMsg{Form: survey.DefaultForm()})

	if _, ok := m.router.Active().(*login.LoginScreen); !ok {
		t.Errorf("expected login screen, got %T", m.router.Active())
	}
	if mock.CallCount() != 0 {
		t.Errorf("scorer called %d times, want 0", mock.CallCount())
	}
}

func TestCompleteSurveyShowsResultsBeforeSave(t *testing.T) {
	mock := predict.NewMockScorer(predict.MockScore{
		Result: &predict.Result{Prediction: 1, ProbabilityPositive: 0.82, ProbabilityNegative: 0.18},
	})
	assessments := &mockAssessmentRepo{}
	m := testModel(mock, assessments)
	m.principal = &auth.Principal{ID: "u1", Name: "Avery"}

	m, cmd := update(t, m, screen.SurveyCompletedMsg{Form: survey.DefaultForm()})
	if !m.predictionLoading {
		t.Error("expected prediction to be in flight")
	}

	msgs := runCmd(cmd)
	var done tea.Msg
	for _, msg := range msgs {
		if _, ok := msg.(predictionDoneMsg); ok {
			done = msg
		}
	}
	if done == nil {
		t.Fatal("expected predictionDoneMsg from score command")
	}

	m, cmd = update(t, m, done)

	// The results screen is on the stack before the save command runs.
	res, ok := m.router.Active().(*results.ResultsScreen)
	if !ok {
		t.Fatalf("expected results screen, got %T", m.router.Active())
	}
	_ = res
	if len(assessments.saved) != 0 {
		t.Fatal("save should not have happened yet")
	}

	runCmd(cmd)
	if len(assessments.saved) != 1 {
		t.Fatalf("saved %d records, want 1", len(assessments.saved))
	}
	rec := assessments.saved[0]
	if rec.UserID != "u1" {
		t.Errorf("user id = %q, want u1", rec.UserID)
	}
	if rec.RiskLevel != "Very High" {
		t.Errorf("risk level = %q, want 'Very High' for p=0.82", rec.RiskLevel)
	}
	if len(rec.FormData) != survey.TotalQuestions() {
		t.Errorf("form data has %d fields, want %d", len(rec.FormData), survey.TotalQuestions())
	}
}

func TestCompleteSurveyIgnoredWhileInFlight(t *testing.T) {
	mock := predict.NewMockScorer(
		predict.MockScore{Result: &predict.Result{ProbabilityPositive: 0.1, ProbabilityNegative: 0.9}},
		predict.MockScore{Result: &predict.Result{ProbabilityPositive: 0.1, ProbabilityNegative: 0.9}},
	)
	m := testModel(mock, &mockAssessmentRepo{})
	m.principal = &auth.Principal{ID: "u1"}

	m, cmd := update(t, m, screen.SurveyCompletedMsg{Form: survey.DefaultForm()})
	m, second := update(t, m, screen.SurveyCompletedMsg{Form: survey.DefaultForm()})

	runCmd(cmd)
	runCmd(second)
	if mock.CallCount() != 1 {
		t.Errorf("scorer called %d times, want 1", mock.CallCount())
	}
}

func TestPredictionFailureRoutesToSurveyScreen(t *testing.T) {
	mock := predict.NewMockScorer(predict.MockScore{
		Err: &predict.ErrTimeout{Err: errors.New("deadline exceeded")},
	})
	m := testModel(mock, &mockAssessmentRepo{})
	m.principal = &auth.Principal{ID: "u1"}

	m, _ = update(t, m, screen.NavigateMsg{To: screen.NameSurvey})

	m, cmd := update(t, m, screen.SurveyCompletedMsg{Form: survey.DefaultForm()})

	var errMsg tea.Msg
	for _, msg := range runCmd(cmd) {
		if _, ok := msg.(predictionErrMsg); ok {
			errMsg = msg
		}
	}
	if errMsg == nil {
		t.Fatal("expected predictionErrMsg")
	}

	m, _ = update(t, m, errMsg)
	if m.predictionLoading {
		t.Error("prediction should no longer be in flight")
	}

	// Still on the assessment screen, now showing the failure dialog.
	scr, ok := m.router.Active().(*assessment.AssessmentScreen)
	if !ok {
		t.Fatalf("expected assessment screen, got %T", m.router.Active())
	}
	hints := scr.KeyHints()
	if len(hints) == 0 || hints[0].Key != "R" {
		t.Errorf("expected retry hint, got %+v", hints)
	}
}

func TestSaveFailureDoesNotDisturbResults(t *testing.T) {
	mock := predict.NewMockScorer(predict.MockScore{
		Result: &predict.Result{Prediction: 0, ProbabilityPositive: 0.2, ProbabilityNegative: 0.8},
	})
	assessments := &mockAssessmentRepo{
		saveErr: &store.PersistenceError{Op: "save assessment", Err: errors.New("disk full")},
	}
	m := testModel(mock, assessments)
	m.principal = &auth.Principal{ID: "u1"}

	m, cmd := update(t, m, screen.SurveyCompletedMsg{Form: survey.DefaultForm()})

	var done tea.Msg
	for _, msg := range runCmd(cmd) {
		if _, ok := msg.(predictionDoneMsg); ok {
			done = msg
		}
	}
	m, cmd = update(t, m, done)

	// Run the failing save and deliver its outcome.
	for _, msg := range runCmd(cmd) {
		m, _ = update(t, m, msg)
	}

	if _, ok := m.router.Active().(*results.ResultsScreen); !ok {
		t.Errorf("results screen should survive a failed save, got %T", m.router.Active())
	}
}

func TestSignOutReturnsToWelcome(t *testing.T) {
	m := testModel(predict.NewMockScorer(), &mockAssessmentRepo{})
	m.principal = &auth.Principal{ID: "u1", Name: "Avery"}

	m, cmd := update(t, m, screen.SignOutMsg{})
	runCmd(cmd)

	if m.principal != nil {
		t.Error("expected principal to be cleared")
	}
	if _, ok := m.router.Active().(*welcome.WelcomeScreen); !ok {
		t.Errorf("expected welcome screen, got %T", m.router.Active())
	}
}

func TestNavigateGuardsSignedInScreens(t *testing.T) {
	m := testModel(predict.NewMockScorer(), &mockAssessmentRepo{})

	m, _ = update(t, m, screen.NavigateMsg{To: screen.NameHistory})
	if _, ok := m.router.Active().(*login.LoginScreen); !ok {
		t.Errorf("history without principal should land on login, got %T", m.router.Active())
	}

	m, _ = update(t, m, screen.NavigateMsg{To: screen.NameProfile})
	if _, ok := m.router.Active().(*login.LoginScreen); !ok {
		t.Errorf("profile without principal should land on login, got %T", m.router.Active())
	}
}
