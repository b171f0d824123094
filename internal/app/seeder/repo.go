// Package seeder loads a catalog fixture of raw materials, menu items and
// recipes into the database. It is meant for bootstrapping and demo
// environments and never overwrites existing rows.
package seeder

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/kantin-backend/internal/domain"
)

// MaterialRepo is implemented by material.Repo.
type MaterialRepo interface {
	Create(ctx context.Context, m *domain.RawMaterial) (*domain.RawMaterial, error)
	List(ctx context.Context) ([]domain.RawMaterial, error)
}

// MenuRepo is implemented by menu.Repo.
type MenuRepo interface {
	CreateItem(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error)
	ListItems(ctx context.Context) ([]domain.MenuItem, error)
	AddLine(ctx context.Context, line *domain.RecipeLine) (*domain.RecipeLine, error)
	ListLines(ctx context.Context, menuItemID uuid.UUID) ([]domain.RecipeLineDetail, error)
}

// TxManager runs the whole seed atomically.
type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
