package store

import (
	"context"
	"time"

	"github.com/unimind/unimind/ent"
	"github.com/unimind/unimind/ent/user"
)

// userRepo implements UserRepo using the ent client.
type userRepo struct {
	client *ent.Client
}

func (r *userRepo) Create(ctx context.Context, rec *UserRecord) error {
	u, err := r.client.User.Create().
		SetID(rec.ID).
		SetEmail(rec.Email).
		SetName(rec.Name).
		SetStudentID(rec.StudentID).
		SetPasswordHash(rec.PasswordHash).
		Save(ctx)
	if err != nil {
		return &PersistenceError{Op: "create user", Err: err}
	}
	rec.CreatedAt = u.CreatedAt
	rec.UpdatedAt = u.UpdatedAt
	return nil
}

func (r *userRepo) ByEmail(ctx context.Context, email string) (*UserRecord, error) {
	u, err := r.client.User.Query().
		Where(user.Email(email)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, &PersistenceError{Op: "query user by email", Err: err}
	}
	return entUserToRecord(u), nil
}

func (r *userRepo) ByID(ctx context.Context, id string) (*UserRecord, error) {
	u, err := r.client.User.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, &PersistenceError{Op: "query user by id", Err: err}
	}
	return entUserToRecord(u), nil
}

func (r *userRepo) TouchAssessment(ctx context.Context, id string, at time.Time) error {
	err := r.client.User.UpdateOneID(id).
		SetLastAssessment(at).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil
		}
		return &PersistenceError{Op: "touch last assessment", Err: err}
	}
	return nil
}

func entUserToRecord(u *ent.User) *UserRecord {
	return &UserRecord{
		ID:             u.ID,
		Email:          u.Email,
		Name:           u.Name,
		StudentID:      u.StudentID,
		PasswordHash:   u.PasswordHash,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
		LastAssessment: u.LastAssessment,
	}
}
