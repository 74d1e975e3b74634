package auth

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/unimind/unimind/internal/store"
)

const defaultTokenTTL = 55 * time.Minute

// Service manages accounts, sign-in state, and bearer tokens for the
// prediction service.
type Service struct {
	users    store.UserRepo
	sessions store.SessionRepo
	secret   []byte
	tokenTTL time.Duration

	mu        sync.Mutex
	principal *Principal
	token     string
	tokenExp  time.Time
	listeners []func(*Principal)
}

// NewService creates a Service backed by the given repos. secret signs
// bearer tokens. UNIMIND_TOKEN_TTL overrides the token lifetime.
func NewService(users store.UserRepo, sessions store.SessionRepo, secret []byte) *Service {
	ttl := defaultTokenTTL
	if v := os.Getenv("UNIMIND_TOKEN_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > time.Minute {
			ttl = d
		}
	}
	return &Service{users: users, sessions: sessions, secret: secret, tokenTTL: ttl}
}

// SignUp creates an account and signs the new user in.
func (s *Service) SignUp(ctx context.Context, name, email, studentID, password string) (*Principal, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	existing, err := s.users.ByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	rec := &store.UserRecord{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         strings.TrimSpace(name),
		StudentID:    strings.TrimSpace(studentID),
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.Create(ctx, rec); err != nil {
		return nil, err
	}

	return s.establish(ctx, rec)
}

// SignIn verifies credentials and establishes a session.
func (s *Service) SignIn(ctx context.Context, email, password string) (*Principal, error) {
	email = normalizeEmail(email)

	rec, err := s.users.ByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(rec.PasswordHash, []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.establish(ctx, rec)
}

// SignOut clears the session and cached token.
func (s *Service) SignOut(ctx context.Context) error {
	s.mu.Lock()
	s.principal = nil
	s.token = ""
	s.tokenExp = time.Time{}
	s.mu.Unlock()

	s.notify(nil)
	return s.sessions.Clear(ctx)
}

// Restore resolves the persisted session into a principal, if any. Call
// once at startup. A dangling session (user deleted) is cleared silently.
func (s *Service) Restore(ctx context.Context) (*Principal, error) {
	userID, err := s.sessions.Current(ctx)
	if err != nil {
		return nil, err
	}
	if userID == "" {
		return nil, nil
	}

	rec, err := s.users.ByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		_ = s.sessions.Clear(ctx)
		return nil, nil
	}

	p := principalFrom(rec)
	s.mu.Lock()
	s.principal = p
	s.mu.Unlock()

	s.notify(p)
	return p, nil
}

// CurrentPrincipal returns the signed-in principal, or nil.
func (s *Service) CurrentPrincipal() *Principal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.principal
}

// OnPrincipalChange registers a callback invoked whenever the signed-in
// principal changes. The callback receives nil on sign-out.
func (s *Service) OnPrincipalChange(fn func(*Principal)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Token returns a signed bearer token for the current principal, reusing
// the cached token until it nears expiry. forceRefresh mints a new one.
func (s *Service) Token(forceRefresh bool) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.principal == nil {
		return "", ErrNotSignedIn
	}
	if !forceRefresh && s.token != "" && time.Now().Before(s.tokenExp) {
		return s.token, nil
	}

	now := time.Now()
	exp := now.Add(s.tokenTTL)
	claims := jwt.RegisteredClaims{
		Subject:   s.principal.ID,
		Issuer:    "unimind",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	s.token = token
	// Refresh a little before the real expiry so in-flight requests
	// never carry a stale token.
	s.tokenExp = exp.Add(-time.Minute)
	return token, nil
}

// VerifyToken parses and validates a token minted by this service,
// returning the subject user ID.
func (s *Service) VerifyToken(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return "", err
	}
	if !parsed.Valid || claims.Subject == "" {
		return "", errors.New("invalid token")
	}
	return claims.Subject, nil
}

func (s *Service) establish(ctx context.Context, rec *store.UserRecord) (*Principal, error) {
	if err := s.sessions.Put(ctx, rec.ID); err != nil {
		return nil, err
	}

	p := principalFrom(rec)
	s.mu.Lock()
	s.principal = p
	s.token = ""
	s.tokenExp = time.Time{}
	s.mu.Unlock()

	s.notify(p)
	return p, nil
}

func (s *Service) notify(p *Principal) {
	s.mu.Lock()
	listeners := make([]func(*Principal), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(p)
	}
}

func principalFrom(rec *store.UserRecord) *Principal {
	return &Principal{
		ID:        rec.ID,
		Name:      rec.Name,
		Email:     rec.Email,
		StudentID: rec.StudentID,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
