package predict

import (
	"context"

	"github.com/unimind/unimind/internal/survey"
)

// Scorer is the boundary to the external prediction service. It does not
// enforce authentication: it attaches the caller's bearer token when one
// is supplied and proceeds unauthenticated otherwise. Requiring a signed-in
// user is the orchestrator's policy.
type Scorer interface {
	// Score sends the survey's feature vector to the prediction service
	// and returns its classification.
	Score(ctx context.Context, form survey.Form, token string) (*Result, error)
}

// Result is the prediction service's response. The two probabilities sum
// to 1 within floating tolerance; both are clamped to [0, 1] before the
// result is returned.
type Result struct {
	Prediction          int     `json:"prediction"`
	ProbabilityPositive float64 `json:"probability_positive"`
	ProbabilityNegative float64 `json:"probability_negative"`
}

// HealthStatus is the outcome of a liveness probe. A failed probe degrades
// to "offline" rather than an error.
type HealthStatus struct {
	Status string `json:"status"`
}

const (
	StatusOK      = "ok"
	StatusOffline = "offline"
)
