// Package authz decides whether the caller may perform an action.
//
// The caller's identity is the account id placed in the context by the
// auth middleware. The role is loaded from storage on every call, so a
// demoted or deleted account loses access on its next request.
package authz

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/kantin-backend/internal/domain"
	"github.com/heartmarshall/kantin-backend/pkg/ctxutil"
)

// accountRepo defines the account repository interface needed by the gate.
type accountRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	List(ctx context.Context) ([]domain.Account, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Gate enforces the role permission matrix.
type Gate struct {
	log      *slog.Logger
	accounts accountRepo
}

// NewGate creates a new authorization gate.
func NewGate(logger *slog.Logger, accounts accountRepo) *Gate {
	return &Gate{
		log:      logger.With("service", "authz"),
		accounts: accounts,
	}
}

// Authorize resolves the caller and checks that its role allows action.
// Returns ErrUnauthorized when there is no caller or the account no
// longer exists, and ErrForbidden when the role lacks the permission.
func (g *Gate) Authorize(ctx context.Context, action domain.Action) (*domain.Account, error) {
	accountID, ok := ctxutil.AccountIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	account, err := g.accounts.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			g.log.WarnContext(ctx, "unknown principal",
				slog.String("account_id", accountID.String()))
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("authz.Authorize load account: %w", err)
	}

	if !account.Role.Allows(action) {
		g.log.InfoContext(ctx, "permission denied",
			slog.String("account_id", accountID.String()),
			slog.String("role", account.Role.String()),
			slog.String("action", action.String()))
		return nil, domain.ErrForbidden
	}

	return account, nil
}
