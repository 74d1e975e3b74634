package predict

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/unimind/unimind/internal/risk"
	"github.com/unimind/unimind/internal/store"
	"github.com/unimind/unimind/internal/survey"
)

// LoggingScorer is a decorator that records every prediction call as an
// event.
type LoggingScorer struct {
	inner     Scorer
	endpoint  string
	eventRepo store.EventRepo
}

var _ Scorer = (*LoggingScorer)(nil)

// WithLogging wraps a Scorer with event logging.
func WithLogging(s Scorer, endpoint string, repo store.EventRepo) *LoggingScorer {
	return &LoggingScorer{inner: s, endpoint: endpoint, eventRepo: repo}
}

func (l *LoggingScorer) Score(ctx context.Context, form survey.Form, token string) (*Result, error) {
	start := time.Now()

	res, err := l.inner.Score(ctx, form, token)

	data := store.PredictionEventData{
		Endpoint:  l.endpoint,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	} else {
		data.RiskLevel = risk.Classify(res.ProbabilityPositive).String()
	}

	// Log the event but don't fail the request if logging fails.
	if logErr := l.eventRepo.AppendPrediction(ctx, data); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log prediction event: %v\n", logErr)
	}

	return res, err
}
