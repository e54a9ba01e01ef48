// Package auth implements the credential lifecycle: registration,
// login, session creation and teardown, and password reset. Service is
// the only caller of the credential store, the password hasher, and
// the token generator.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/adiomi90/alx-backend-user-data/internal/common"
	"github.com/adiomi90/alx-backend-user-data/internal/password"
	"github.com/adiomi90/alx-backend-user-data/internal/server/users"
)

type Service struct {
	store      users.Store
	tokens     TokenGenerator
	bcryptCost int
}

// NewService constructs a Service over an explicit store handle; there
// is no process-wide default instance.
func NewService(store users.Store, tokens TokenGenerator, bcryptCost int) *Service {
	return &Service{store: store, tokens: tokens, bcryptCost: bcryptCost}
}

// Register hashes the password and creates a new credential record.
// A taken email yields common.ErrAlreadyExists and leaves the existing
// record untouched.
func (s *Service) Register(ctx context.Context, email, plain string) (*users.User, error) {
	hash, err := password.Hash(plain, s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	u, err := s.store.Add(ctx, email, hash)
	if err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			return nil, fmt.Errorf("user %s %w", email, common.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return u, nil
}

// ValidLogin reports whether email and password identify a registered
// user. An unknown email and a wrong password are indistinguishable to
// the caller; the boolean never reveals which one failed.
func (s *Service) ValidLogin(ctx context.Context, email, plain string) (bool, error) {
	u, err := s.store.FindBy(ctx, users.FieldEmail, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("error looking up user: %w", err)
	}

	return password.Check(u.HashedPassword, plain), nil
}

// CreateSession mints a session token for the user with the given
// email and persists it, overwriting any previous token. The prior
// session, if any, stops resolving; there is one live session per
// user. Unknown emails yield common.ErrNotFound.
func (s *Service) CreateSession(ctx context.Context, email string) (string, error) {
	u, err := s.store.FindBy(ctx, users.FieldEmail, email)
	if err != nil {
		return "", err
	}

	token := s.tokens.NewToken()
	if err := s.store.Update(ctx, u.ID, map[users.Field]any{users.FieldSessionID: token}); err != nil {
		return "", fmt.Errorf("error storing session: %w", err)
	}

	return token, nil
}

// UserFromSession resolves a session token to its user. An empty or
// unresolvable token yields common.ErrNotFound.
func (s *Service) UserFromSession(ctx context.Context, sessionID string) (*users.User, error) {
	if sessionID == "" {
		return nil, common.ErrNotFound
	}
	return s.store.FindBy(ctx, users.FieldSessionID, sessionID)
}

// DestroySession clears the user's session token. An unknown id is
// treated as already satisfied.
func (s *Service) DestroySession(ctx context.Context, userID int64) error {
	err := s.store.Update(ctx, userID, map[users.Field]any{users.FieldSessionID: nil})
	if errors.Is(err, common.ErrNotFound) {
		return nil
	}
	return err
}

// ResetPasswordToken mints and persists a one-time reset token for the
// user with the given email. Unknown emails yield common.ErrNotFound.
// No proof of account ownership is required beyond knowing the email.
func (s *Service) ResetPasswordToken(ctx context.Context, email string) (string, error) {
	u, err := s.store.FindBy(ctx, users.FieldEmail, email)
	if err != nil {
		return "", err
	}

	token := s.tokens.NewToken()
	if err := s.store.Update(ctx, u.ID, map[users.Field]any{users.FieldResetToken: token}); err != nil {
		return "", fmt.Errorf("error storing reset token: %w", err)
	}

	return token, nil
}

// UpdatePassword sets a new password for the user holding resetToken
// and consumes the token in the same commit, so it cannot be replayed.
// An unresolvable token yields common.ErrInvalidToken.
func (s *Service) UpdatePassword(ctx context.Context, resetToken, plain string) error {
	u, err := s.store.FindBy(ctx, users.FieldResetToken, resetToken)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.ErrInvalidToken
		}
		return fmt.Errorf("error looking up reset token: %w", err)
	}

	hash, err := password.Hash(plain, s.bcryptCost)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	return s.store.Update(ctx, u.ID, map[users.Field]any{
		users.FieldHashedPassword: hash,
		users.FieldResetToken:     nil,
	})
}
