package history

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/unimind/unimind/internal/store"
)

type fakeAssessmentRepo struct {
	records []*store.AssessmentRecord
	err     error
}

func (f *fakeAssessmentRepo) Save(_ context.Context, rec *store.AssessmentRecord) (string, error) {
	f.records = append(f.records, rec)
	return rec.ID, nil
}

func (f *fakeAssessmentRepo) History(_ context.Context, _ string) ([]*store.AssessmentRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.records, nil
}

// loadedScreen builds a HistoryScreen and delivers its load message.
func loadedScreen(t *testing.T, repo *fakeAssessmentRepo) *HistoryScreen {
	t.Helper()
	s := New("u1", repo)
	cmd := s.Init()
	if cmd == nil {
		t.Fatal("expected a load command from Init")
	}
	s.Update(cmd())
	return s
}

func testRecord(level string, p float64) *store.AssessmentRecord {
	return &store.AssessmentRecord{
		ID:                  "a1",
		UserID:              "u1",
		FormData:            map[string]float64{"sleep_hours": 8, "Stress_Level": 5},
		ProbabilityPositive: p,
		RiskLevel:           level,
		Timestamp:           time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
	}
}

func TestReadFailureRendersEmptyState(t *testing.T) {
	repo := &fakeAssessmentRepo{
		err: &store.PersistenceError{Op: "query history", Err: errors.New("disk I/O error")},
	}
	s := loadedScreen(t, repo)

	view := s.View(80, 24)
	if !strings.Contains(view, "No assessments yet") {
		t.Error("failed read should render the empty state")
	}
	if strings.Contains(view, "persistence") || strings.Contains(view, "disk I/O") {
		t.Error("storage error should not be shown to the user")
	}
}

func TestListShowsRiskAndDate(t *testing.T) {
	repo := &fakeAssessmentRepo{records: []*store.AssessmentRecord{testRecord("Moderate", 0.42)}}
	s := loadedScreen(t, repo)

	view := s.View(80, 24)
	if !strings.Contains(view, "Moderate Risk") {
		t.Error("expected risk level in the row")
	}
	if !strings.Contains(view, "Mar 14, 2026") {
		t.Error("expected formatted date in the row")
	}
	if !strings.Contains(view, "score 42%") {
		t.Error("expected probability in the row")
	}
}

func TestEnterExpandsDetails(t *testing.T) {
	repo := &fakeAssessmentRepo{records: []*store.AssessmentRecord{testRecord("High", 0.6)}}
	s := loadedScreen(t, repo)

	collapsed := s.View(80, 24)
	if strings.Contains(collapsed, "Sleep Duration") {
		t.Fatal("details should start collapsed")
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	expanded := s.View(80, 24)
	if !strings.Contains(expanded, "Sleep Duration") {
		t.Error("expected per-question answers after expanding")
	}
	if !strings.Contains(expanded, "8 hours/night") {
		t.Error("expected the stored answer with its unit")
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if strings.Contains(s.View(80, 24), "Sleep Duration") {
		t.Error("expected details to collapse on a second enter")
	}
}

func TestEscapeNavigatesHome(t *testing.T) {
	s := loadedScreen(t, &fakeAssessmentRepo{})

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a navigation command")
	}
	if cmd() == nil {
		t.Error("expected a navigation message")
	}
}
