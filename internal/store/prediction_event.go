package store

import (
	"context"
	"fmt"

	"github.com/unimind/unimind/ent"
)

// eventRepo implements EventRepo using the ent client.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendPrediction(ctx context.Context, data PredictionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.PredictionEvent.Create().
		SetSequence(seqNum).
		SetEndpoint(data.Endpoint).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetRiskLevel(data.RiskLevel).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save prediction event: %w", err)
	}
	return nil
}
