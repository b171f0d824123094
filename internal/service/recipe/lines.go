package recipe

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/kantin-backend/internal/domain"
)

// AddLine adds a material to the recipe of a menu item. Each material may
// appear at most once per recipe.
func (s *Service) AddLine(ctx context.Context, input AddLineInput) (*domain.RecipeLine, error) {
	caller, err := s.authz.Authorize(ctx, domain.ActionManageRecipes)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	line, err := s.menu.AddLine(ctx, &domain.RecipeLine{
		MenuItemID:     input.MenuItemID,
		RawMaterialID:  input.RawMaterialID,
		QuantityNeeded: input.Quantity,
	})
	if err != nil {
		return nil, fmt.Errorf("recipe.AddLine: %w", err)
	}

	s.log.InfoContext(ctx, "recipe line added",
		slog.String("line_id", line.ID.String()),
		slog.String("menu_item_id", line.MenuItemID.String()),
		slog.String("raw_material_id", line.RawMaterialID.String()),
		slog.String("quantity", line.QuantityNeeded.String()),
		slog.String("actor_id", caller.ID.String()),
	)
	return line, nil
}

// RemoveLine deletes one recipe line.
func (s *Service) RemoveLine(ctx context.Context, id uuid.UUID) error {
	caller, err := s.authz.Authorize(ctx, domain.ActionManageRecipes)
	if err != nil {
		return err
	}

	if err := s.menu.RemoveLine(ctx, id); err != nil {
		return fmt.Errorf("recipe.RemoveLine: %w", err)
	}

	s.log.InfoContext(ctx, "recipe line removed",
		slog.String("line_id", id.String()),
		slog.String("actor_id", caller.ID.String()),
	)
	return nil
}

// ListLines returns the recipe of a menu item with material details.
func (s *Service) ListLines(ctx context.Context, menuItemID uuid.UUID) ([]domain.RecipeLineDetail, error) {
	if _, err := s.authz.Authorize(ctx, domain.ActionReadCatalog); err != nil {
		return nil, err
	}

	if _, err := s.menu.GetItem(ctx, menuItemID); err != nil {
		return nil, fmt.Errorf("recipe.ListLines: %w", err)
	}

	lines, err := s.menu.ListLines(ctx, menuItemID)
	if err != nil {
		return nil, fmt.Errorf("recipe.ListLines: %w", err)
	}
	return lines, nil
}

// Resolve returns the components of a menu item's recipe ordered by
// material name. An item without lines yields an empty slice.
func (s *Service) Resolve(ctx context.Context, menuItemID uuid.UUID) ([]domain.RecipeComponent, error) {
	if _, err := s.authz.Authorize(ctx, domain.ActionReadCatalog); err != nil {
		return nil, err
	}

	_, components, err := s.ResolveItem(ctx, menuItemID)
	return components, err
}

// ResolveItem loads a menu item and its resolved recipe without a
// permission check. Callers must have authorized the caller already.
func (s *Service) ResolveItem(ctx context.Context, menuItemID uuid.UUID) (*domain.MenuItem, []domain.RecipeComponent, error) {
	item, err := s.menu.GetItem(ctx, menuItemID)
	if err != nil {
		return nil, nil, fmt.Errorf("recipe.Resolve: %w", err)
	}

	components, err := s.menu.Components(ctx, menuItemID)
	if err != nil {
		return nil, nil, fmt.Errorf("recipe.Resolve: %w", err)
	}
	if components == nil {
		components = []domain.RecipeComponent{}
	}
	return item, components, nil
}
