package store

import (
	"context"
	"errors"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testUser(email string) *UserRecord {
	now := time.Now().UTC().Truncate(time.Second)
	return &UserRecord{
		ID:           "user-" + email,
		Email:        email,
		Name:         "Test Student",
		StudentID:    "S123",
		PasswordHash: []byte("not-a-real-hash"),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestUserCreateAndLookup(t *testing.T) {
	s := openTestStore(t)
	repo := s.UserRepo()
	ctx := context.Background()

	// Unknown email resolves to nil, not an error.
	rec, err := repo.ByEmail(ctx, "nobody@example.edu")
	if err != nil {
		t.Fatalf("by email (empty): %v", err)
	}
	if rec != nil {
		t.Fatal("expected nil for unknown email")
	}

	u := testUser("avery@example.edu")
	if err := repo.Create(ctx, u); err != nil {
		t.Fatalf("create: %v", err)
	}

	rec, err = repo.ByEmail(ctx, "avery@example.edu")
	if err != nil {
		t.Fatalf("by email: %v", err)
	}
	if rec == nil {
		t.Fatal("expected user record")
	}
	if rec.ID != u.ID {
		t.Errorf("id = %q, want %q", rec.ID, u.ID)
	}
	if string(rec.PasswordHash) != "not-a-real-hash" {
		t.Errorf("password hash not round-tripped")
	}

	rec, err = repo.ByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("by id: %v", err)
	}
	if rec == nil || rec.Email != "avery@example.edu" {
		t.Errorf("lookup by id returned %+v", rec)
	}
}

func TestUserDuplicateEmail(t *testing.T) {
	s := openTestStore(t)
	repo := s.UserRepo()
	ctx := context.Background()

	if err := repo.Create(ctx, testUser("dup@example.edu")); err != nil {
		t.Fatalf("create: %v", err)
	}

	second := testUser("dup@example.edu")
	second.ID = "another-id"
	err := repo.Create(ctx, second)
	if err == nil {
		t.Fatal("expected error for duplicate email")
	}
	var perr *PersistenceError
	if !errors.As(err, &perr) {
		t.Errorf("expected *PersistenceError, got %T", err)
	}
}

func TestSessionPutCurrentClear(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	id, err := repo.Current(ctx)
	if err != nil {
		t.Fatalf("current (empty): %v", err)
	}
	if id != "" {
		t.Fatalf("expected empty session, got %q", id)
	}

	if err := repo.Put(ctx, "user-1"); err != nil {
		t.Fatalf("put: %v", err)
	}
	// A second put replaces the first.
	if err := repo.Put(ctx, "user-2"); err != nil {
		t.Fatalf("put again: %v", err)
	}

	id, err = repo.Current(ctx)
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if id != "user-2" {
		t.Errorf("current = %q, want 'user-2'", id)
	}

	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	id, err = repo.Current(ctx)
	if err != nil {
		t.Fatalf("current (cleared): %v", err)
	}
	if id != "" {
		t.Errorf("expected empty session after clear, got %q", id)
	}
}

func TestAssessmentSaveAndHistory(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	u := testUser("history@example.edu")
	if err := s.UserRepo().Create(ctx, u); err != nil {
		t.Fatalf("create user: %v", err)
	}

	repo := s.AssessmentRepo()
	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		_, err := repo.Save(ctx, &AssessmentRecord{
			UserID:              u.ID,
			FormData:            map[string]float64{"sleep_hours": float64(6 + i)},
			Prediction:          1,
			ProbabilityPositive: 0.5 + float64(i)*0.1,
			ProbabilityNegative: 0.5 - float64(i)*0.1,
			RiskLevel:           "High",
			Timestamp:           base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	records, err := repo.History(ctx, u.ID)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("history length = %d, want 3", len(records))
	}
	// Most recent first.
	if records[0].FormData["sleep_hours"] != 8 {
		t.Errorf("newest record sleep_hours = %v, want 8", records[0].FormData["sleep_hours"])
	}
	if records[0].ID == "" {
		t.Error("expected assigned assessment ID")
	}

	// Saving bumps the owner's last-assessment timestamp.
	rec, err := s.UserRepo().ByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("by id: %v", err)
	}
	if rec.LastAssessment == nil {
		t.Error("expected last assessment timestamp to be set")
	}
}

func TestTouchAssessment(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	u := testUser("touch@example.edu")
	if err := s.UserRepo().Create(ctx, u); err != nil {
		t.Fatalf("create user: %v", err)
	}

	at := time.Now().UTC().Truncate(time.Second)
	if err := s.UserRepo().TouchAssessment(ctx, u.ID, at); err != nil {
		t.Fatalf("touch: %v", err)
	}

	rec, err := s.UserRepo().ByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("by id: %v", err)
	}
	if rec.LastAssessment == nil || !rec.LastAssessment.Equal(at) {
		t.Errorf("last assessment = %v, want %v", rec.LastAssessment, at)
	}

	// A missing user is a no-op, so a save for an unknown owner still
	// persists the assessment row.
	if err := s.UserRepo().TouchAssessment(ctx, "ghost", at); err != nil {
		t.Errorf("touch for missing user: %v", err)
	}
	if _, err := s.AssessmentRepo().Save(ctx, &AssessmentRecord{
		UserID:              "ghost",
		FormData:            map[string]float64{},
		ProbabilityPositive: 0.1,
		ProbabilityNegative: 0.9,
		RiskLevel:           "Low",
		Timestamp:           at,
	}); err != nil {
		t.Errorf("save for missing user: %v", err)
	}
}

func TestHistoryScopedToUser(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	a := testUser("a@example.edu")
	b := testUser("b@example.edu")
	if err := s.UserRepo().Create(ctx, a); err != nil {
		t.Fatalf("create a: %v", err)
	}
	if err := s.UserRepo().Create(ctx, b); err != nil {
		t.Fatalf("create b: %v", err)
	}

	repo := s.AssessmentRepo()
	for _, uid := range []string{a.ID, a.ID, b.ID} {
		_, err := repo.Save(ctx, &AssessmentRecord{
			UserID:              uid,
			FormData:            map[string]float64{},
			ProbabilityPositive: 0.1,
			ProbabilityNegative: 0.9,
			RiskLevel:           "Low",
			Timestamp:           time.Now(),
		})
		if err != nil {
			t.Fatalf("save: %v", err)
		}
	}

	records, err := repo.History(ctx, a.ID)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("history for a = %d records, want 2", len(records))
	}
}

func TestEventAppendPrediction(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	err := s.EventRepo().AppendPrediction(ctx, PredictionEventData{
		Endpoint:  "https://api.unimind.app/api/predict",
		LatencyMs: 120,
		Success:   true,
		RiskLevel: "Moderate",
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	count, err := s.Client().PredictionEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("event count = %d, want 1", count)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"users", "sessions", "assessments", "prediction_events"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s missing: %v", table, err)
		}
	}
}
