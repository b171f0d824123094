package authz

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/kantin-backend/internal/domain"
)

// ListAccounts returns every account. Admin only.
func (g *Gate) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	if _, err := g.Authorize(ctx, domain.ActionManageAccounts); err != nil {
		return nil, err
	}

	accounts, err := g.accounts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("authz.ListAccounts: %w", err)
	}
	return accounts, nil
}

// RevokeAccount deletes an account together with its credentials and
// refresh tokens. Tokens already issued to it stop working on the next
// request because the principal can no longer be loaded. Admin only; an
// admin cannot revoke itself.
func (g *Gate) RevokeAccount(ctx context.Context, id uuid.UUID) error {
	caller, err := g.Authorize(ctx, domain.ActionManageAccounts)
	if err != nil {
		return err
	}

	if caller.ID == id {
		return domain.NewValidationError("id", "cannot revoke own account")
	}

	if err := g.accounts.Delete(ctx, id); err != nil {
		return fmt.Errorf("authz.RevokeAccount: %w", err)
	}

	g.log.InfoContext(ctx, "account revoked",
		slog.String("account_id", id.String()),
		slog.String("revoked_by", caller.ID.String()))
	return nil
}
