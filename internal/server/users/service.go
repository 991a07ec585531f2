package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/queueflex/auth-service/internal/common"
	"github.com/queueflex/auth-service/internal/server/auth"
	"github.com/queueflex/auth-service/internal/server/config"
	"github.com/queueflex/auth-service/internal/server/password"
)

// Service implements the signup and login flows on top of the credential
// store, the password hasher and the token issuer.
type Service struct {
	repo                  Repository
	hasher                *password.Hasher
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

func NewService(repo Repository, hasher *password.Hasher, cfg *config.Config) *Service {
	return &Service{
		repo:                  repo,
		hasher:                hasher,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// Signup registers a new credential. The isAdmin flag is caller-supplied
// and therefore untrusted: the public REST endpoint passes it through as
// received, and any privilege policy (who may create provider accounts)
// is an authorization decision made outside this service.
func (s *Service) Signup(ctx context.Context, name, email, plaintext string, isAdmin bool) (*User, error) {

	if email == "" || plaintext == "" {
		return nil, common.ErrValidation
	}

	hash, err := s.hasher.Hash(plaintext)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		IsAdmin:      isAdmin,
	}

	user, err = s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrEmailExists) {
			return nil, common.ErrEmailExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// Login authenticates an email/password pair and issues a bearer token.
// Returns common.ErrNotFound for an unknown email and
// common.ErrIncorrectPassword for a bad password; the transport layer
// decides how much of that distinction to expose.
func (s *Service) Login(ctx context.Context, email, plaintext string) (string, *User, error) {

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", nil, common.ErrNotFound
		}
		return "", nil, common.ErrInternal
	}

	if !s.hasher.Check(plaintext, user.PasswordHash) {
		return "", nil, common.ErrIncorrectPassword
	}

	token, err := auth.GenerateToken(user.ID, user.IsAdmin, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return "", nil, common.ErrInternal
	}

	return token, user, nil
}

// VerifyToken checks a bearer token against the process-wide secret.
// Fail-closed; see auth.VerifyToken.
func (s *Service) VerifyToken(token string) auth.Verification {
	return auth.VerifyToken(token, s.jwtSecret)
}
