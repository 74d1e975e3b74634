package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/unimind/unimind/ent"
	"github.com/unimind/unimind/ent/assessment"
)

// assessmentRepo implements AssessmentRepo using the ent client.
type assessmentRepo struct {
	client *ent.Client
	seq    *sequenceCounter
	users  UserRepo
}

func (r *assessmentRepo) Save(ctx context.Context, rec *AssessmentRecord) (string, error) {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return "", &PersistenceError{Op: "next sequence", Err: err}
	}

	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now().UTC()
	}

	_, err = r.client.Assessment.Create().
		SetSequence(seqNum).
		SetTimestamp(rec.Timestamp).
		SetAssessmentID(rec.ID).
		SetUserID(rec.UserID).
		SetFormData(rec.FormData).
		SetPrediction(rec.Prediction).
		SetProbabilityPositive(rec.ProbabilityPositive).
		SetProbabilityNegative(rec.ProbabilityNegative).
		SetRiskLevel(rec.RiskLevel).
		Save(ctx)
	if err != nil {
		return "", &PersistenceError{Op: "save assessment", Err: err}
	}

	// Best-effort history pointer on the owning user; the assessment row
	// is already durable if this update fails.
	if err := r.users.TouchAssessment(ctx, rec.UserID, rec.Timestamp); err != nil {
		return rec.ID, err
	}

	return rec.ID, nil
}

func (r *assessmentRepo) History(ctx context.Context, userID string) ([]*AssessmentRecord, error) {
	rows, err := r.client.Assessment.Query().
		Where(assessment.UserID(userID)).
		Order(ent.Desc(assessment.FieldTimestamp)).
		All(ctx)
	if err != nil {
		return nil, &PersistenceError{Op: "query history", Err: err}
	}

	records := make([]*AssessmentRecord, 0, len(rows))
	for _, a := range rows {
		records = append(records, &AssessmentRecord{
			ID:                  a.AssessmentID,
			UserID:              a.UserID,
			FormData:            a.FormData,
			Prediction:          a.Prediction,
			ProbabilityPositive: a.ProbabilityPositive,
			ProbabilityNegative: a.ProbabilityNegative,
			RiskLevel:           a.RiskLevel,
			Timestamp:           a.Timestamp,
		})
	}
	return records, nil
}
