package store

import (
	"context"
	"fmt"
	"time"
)

// PersistenceError wraps any backing-store failure. Callers treat saves as
// best-effort: the orchestrator logs these and never surfaces them as a
// blocking UI failure.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence: %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// UserRecord is a stored account profile.
type UserRecord struct {
	ID             string
	Email          string
	Name           string
	StudentID      string
	PasswordHash   []byte
	CreatedAt      time.Time
	UpdatedAt      time.Time
	LastAssessment *time.Time
}

// UserRepo manages account records.
type UserRepo interface {
	// Create stores a new user. Fails if the email is already taken.
	Create(ctx context.Context, rec *UserRecord) error

	// ByEmail returns the user with the given email, or nil if none exists.
	ByEmail(ctx context.Context, email string) (*UserRecord, error)

	// ByID returns the user with the given ID, or nil if none exists.
	ByID(ctx context.Context, id string) (*UserRecord, error)

	// TouchAssessment updates the user's last-assessment timestamp.
	// A missing user is a no-op.
	TouchAssessment(ctx context.Context, id string, at time.Time) error
}

// SessionRepo persists the current sign-in so the principal survives
// restarts. At most one session exists at a time.
type SessionRepo interface {
	// Put replaces any existing session with one for userID.
	Put(ctx context.Context, userID string) error

	// Current returns the signed-in user ID, or "" if none.
	Current(ctx context.Context) (string, error)

	// Clear removes the session.
	Clear(ctx context.Context) error
}

// AssessmentRecord is one completed assessment. Immutable once saved.
type AssessmentRecord struct {
	ID                  string
	UserID              string
	FormData            map[string]float64
	Prediction          int
	ProbabilityPositive float64
	ProbabilityNegative float64
	RiskLevel           string
	Timestamp           time.Time
}

// AssessmentRepo provides append and read access to assessment history.
type AssessmentRepo interface {
	// Save appends an assessment and bumps the owner's last-assessment
	// timestamp. Returns the assigned assessment ID.
	Save(ctx context.Context, rec *AssessmentRecord) (string, error)

	// History returns the user's assessments, most recent first.
	History(ctx context.Context, userID string) ([]*AssessmentRecord, error)
}

// PredictionEventData captures one call to the prediction service.
type PredictionEventData struct {
	Endpoint     string
	LatencyMs    int64
	Success      bool
	RiskLevel    string
	ErrorMessage string
}

// EventRepo provides append access to the prediction event log.
type EventRepo interface {
	// AppendPrediction records a prediction service call.
	AppendPrediction(ctx context.Context, data PredictionEventData) error
}
