package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/kantin-backend/internal/domain"
)

// Register creates a staff account with email + password authentication.
// Returns ErrAlreadyExists if the email is already taken. Admins are only
// created by promoting an existing account.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	input.Email = domain.NormalizeEmail(input.Email)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := s.passwords.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth.Register hash password: %w", err)
	}

	// Email uniqueness is enforced by a DB constraint.
	var created *domain.Account
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		account, err := s.accounts.Create(txCtx, &domain.Account{
			Email: input.Email,
			Role:  domain.UserRoleStaff,
		})
		if err != nil {
			return fmt.Errorf("create account: %w", err)
		}

		if err := s.credentials.CreateCredential(txCtx, &domain.Credential{
			AccountID:    account.ID,
			PasswordHash: hash,
		}); err != nil {
			return fmt.Errorf("create credential: %w", err)
		}

		created = account
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	result, err := s.issueTokens(ctx, created)
	if err != nil {
		return nil, fmt.Errorf("auth.Register issue tokens: %w", err)
	}

	s.log.InfoContext(ctx, "account registered",
		slog.String("account_id", created.ID.String()))

	return result, nil
}
