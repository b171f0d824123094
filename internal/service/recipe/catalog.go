package recipe

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/kantin-backend/internal/domain"
)

// CreateMenuItem adds a menu item to the catalog. A blank SKU is stored as none.
func (s *Service) CreateMenuItem(ctx context.Context, input CreateMenuItemInput) (*domain.MenuItem, error) {
	caller, err := s.authz.Authorize(ctx, domain.ActionManageCatalog)
	if err != nil {
		return nil, err
	}

	input.Name = domain.NormalizeName(input.Name)
	input.SKU = trimOrNil(input.SKU)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	item, err := s.menu.CreateItem(ctx, &domain.MenuItem{Name: input.Name, SKU: input.SKU})
	if err != nil {
		return nil, fmt.Errorf("recipe.CreateMenuItem: %w", err)
	}

	s.log.InfoContext(ctx, "menu item created",
		slog.String("menu_item_id", item.ID.String()),
		slog.String("name", item.Name),
		slog.String("actor_id", caller.ID.String()),
	)
	return item, nil
}

// ListMenuItems returns the catalog ordered by name.
func (s *Service) ListMenuItems(ctx context.Context) ([]domain.MenuItem, error) {
	if _, err := s.authz.Authorize(ctx, domain.ActionReadCatalog); err != nil {
		return nil, err
	}

	items, err := s.menu.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("recipe.ListMenuItems: %w", err)
	}
	return items, nil
}

// DeleteMenuItem removes a menu item and its recipe lines. It returns the
// number of lines removed with it.
func (s *Service) DeleteMenuItem(ctx context.Context, id uuid.UUID) (int, error) {
	caller, err := s.authz.Authorize(ctx, domain.ActionManageCatalog)
	if err != nil {
		return 0, err
	}

	var removed int
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		// Blocks concurrent AddLine so the count matches what the cascade removes.
		if err := s.menu.LockItem(txCtx, id); err != nil {
			return fmt.Errorf("lock item: %w", err)
		}
		n, err := s.menu.CountLines(txCtx, id)
		if err != nil {
			return fmt.Errorf("count lines: %w", err)
		}
		if err := s.menu.DeleteItem(txCtx, id); err != nil {
			return fmt.Errorf("delete item: %w", err)
		}
		removed = n
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("recipe.DeleteMenuItem: %w", err)
	}

	s.log.InfoContext(ctx, "menu item deleted",
		slog.String("menu_item_id", id.String()),
		slog.Int("lines_removed", removed),
		slog.String("actor_id", caller.ID.String()),
	)
	return removed, nil
}

func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
