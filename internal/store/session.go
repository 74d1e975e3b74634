package store

import (
	"context"

	"github.com/unimind/unimind/ent"
	"github.com/unimind/unimind/ent/session"
)

// sessionRepo implements SessionRepo using the ent client.
type sessionRepo struct {
	client *ent.Client
}

func (r *sessionRepo) Put(ctx context.Context, userID string) error {
	if _, err := r.client.Session.Delete().Exec(ctx); err != nil {
		return &PersistenceError{Op: "clear previous session", Err: err}
	}
	_, err := r.client.Session.Create().
		SetUserID(userID).
		Save(ctx)
	if err != nil {
		return &PersistenceError{Op: "create session", Err: err}
	}
	return nil
}

func (r *sessionRepo) Current(ctx context.Context) (string, error) {
	s, err := r.client.Session.Query().
		Order(ent.Desc(session.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", nil
		}
		return "", &PersistenceError{Op: "query session", Err: err}
	}
	return s.UserID, nil
}

func (r *sessionRepo) Clear(ctx context.Context) error {
	if _, err := r.client.Session.Delete().Exec(ctx); err != nil {
		return &PersistenceError{Op: "clear session", Err: err}
	}
	return nil
}
