package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/unimind/unimind/internal/store"
)

// fakeUserRepo is an in-memory UserRepo.
type fakeUserRepo struct {
	users map[string]*store.UserRecord // by ID
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*store.UserRecord)}
}

func (f *fakeUserRepo) Create(_ context.Context, rec *store.UserRecord) error {
	for _, u := range f.users {
		if u.Email == rec.Email {
			return &store.PersistenceError{Op: "create user", Err: errors.New("unique constraint")}
		}
	}
	cp := *rec
	f.users[rec.ID] = &cp
	return nil
}

func (f *fakeUserRepo) ByEmail(_ context.Context, email string) (*store.UserRecord, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) ByID(_ context.Context, id string) (*store.UserRecord, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) TouchAssessment(_ context.Context, id string, at time.Time) error {
	if u, ok := f.users[id]; ok {
		u.LastAssessment = &at
	}
	return nil
}

// fakeSessionRepo is an in-memory SessionRepo.
type fakeSessionRepo struct {
	userID string
}

func (f *fakeSessionRepo) Put(_ context.Context, userID string) error {
	f.userID = userID
	return nil
}

func (f *fakeSessionRepo) Current(_ context.Context) (string, error) {
	return f.userID, nil
}

func (f *fakeSessionRepo) Clear(_ context.Context) error {
	f.userID = ""
	return nil
}

func newTestService() (*Service, *fakeUserRepo, *fakeSessionRepo) {
	users := newFakeUserRepo()
	sessions := &fakeSessionRepo{}
	secret := []byte("0123456789abcdef0123456789abcdef")
	return NewService(users, sessions, secret), users, sessions
}

func TestSignUpAndSignIn(t *testing.T) {
	service, _, sessions := newTestService()
	ctx := context.Background()

	p, err := service.SignUp(ctx, "Avery Lee", "Avery@Example.EDU", "S42", "hunter22")
	if err != nil {
		t.Fatalf("sign up: %v", err)
	}
	if p.Name != "Avery Lee" {
		t.Errorf("name = %q", p.Name)
	}
	// Email is normalized to lower case.
	if p.Email != "avery@example.edu" {
		t.Errorf("email = %q, want normalized", p.Email)
	}
	if sessions.userID != p.ID {
		t.Error("sign up should establish a session")
	}
	if service.CurrentPrincipal() == nil {
		t.Fatal("expected signed-in principal")
	}

	if err := service.SignOut(ctx); err != nil {
		t.Fatalf("sign out: %v", err)
	}
	if service.CurrentPrincipal() != nil {
		t.Error("expected nil principal after sign out")
	}
	if sessions.userID != "" {
		t.Error("session should be cleared")
	}

	// Sign in with the same credentials, any casing.
	p2, err := service.SignIn(ctx, "AVERY@example.edu", "hunter22")
	if err != nil {
		t.Fatalf("sign in: %v", err)
	}
	if p2.ID != p.ID {
		t.Errorf("principal id = %q, want %q", p2.ID, p.ID)
	}
}

func TestSignInWrongPassword(t *testing.T) {
	service, _, _ := newTestService()
	ctx := context.Background()

	if _, err := service.SignUp(ctx, "A", "a@example.edu", "", "correct"); err != nil {
		t.Fatalf("sign up: %v", err)
	}
	_ = service.SignOut(ctx)

	_, err := service.SignIn(ctx, "a@example.edu", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}

	_, err = service.SignIn(ctx, "unknown@example.edu", "whatever")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestSignUpDuplicateEmail(t *testing.T) {
	service, _, _ := newTestService()
	ctx := context.Background()

	if _, err := service.SignUp(ctx, "A", "dup@example.edu", "", "pass1"); err != nil {
		t.Fatalf("sign up: %v", err)
	}

	_, err := service.SignUp(ctx, "B", "dup@example.edu", "", "pass2")
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}
}

func TestRestore(t *testing.T) {
	service, users, sessions := newTestService()
	ctx := context.Background()

	p, err := service.SignUp(ctx, "A", "restore@example.edu", "", "pass")
	if err != nil {
		t.Fatalf("sign up: %v", err)
	}

	// A fresh service over the same repos restores the principal.
	fresh := NewService(users, sessions, []byte("0123456789abcdef0123456789abcdef"))
	restored, err := fresh.Restore(ctx)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if restored == nil || restored.ID != p.ID {
		t.Fatalf("restored = %+v, want principal %q", restored, p.ID)
	}

	// A dangling session (user gone) restores to nil and clears itself.
	delete(users.users, p.ID)
	fresh2 := NewService(users, sessions, []byte("0123456789abcdef0123456789abcdef"))
	restored, err = fresh2.Restore(ctx)
	if err != nil {
		t.Fatalf("restore dangling: %v", err)
	}
	if restored != nil {
		t.Errorf("expected nil principal for dangling session")
	}
	if sessions.userID != "" {
		t.Error("dangling session should be cleared")
	}
}

func TestTokenLifecycle(t *testing.T) {
	service, _, _ := newTestService()
	ctx := context.Background()

	// No principal, no token.
	if _, err := service.Token(false); !errors.Is(err, ErrNotSignedIn) {
		t.Errorf("expected ErrNotSignedIn, got %v", err)
	}

	p, err := service.SignUp(ctx, "A", "token@example.edu", "", "pass")
	if err != nil {
		t.Fatalf("sign up: %v", err)
	}

	token, err := service.Token(false)
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	// Cached until forced.
	again, err := service.Token(false)
	if err != nil {
		t.Fatalf("token again: %v", err)
	}
	if again != token {
		t.Error("expected cached token to be reused")
	}

	// The token verifies back to the principal.
	subject, err := service.VerifyToken(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if subject != p.ID {
		t.Errorf("subject = %q, want %q", subject, p.ID)
	}

	// Tampered tokens fail verification.
	if _, err := service.VerifyToken(token + "x"); err == nil {
		t.Error("expected error for tampered token")
	}
}

func TestOnPrincipalChange(t *testing.T) {
	service, _, _ := newTestService()
	ctx := context.Background()

	var events []*Principal
	service.OnPrincipalChange(func(p *Principal) {
		events = append(events, p)
	})

	if _, err := service.SignUp(ctx, "A", "notify@example.edu", "", "pass"); err != nil {
		t.Fatalf("sign up: %v", err)
	}
	if err := service.SignOut(ctx); err != nil {
		t.Fatalf("sign out: %v", err)
	}

	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0] == nil {
		t.Error("first event should carry the principal")
	}
	if events[1] != nil {
		t.Error("second event should be nil (sign out)")
	}
}
