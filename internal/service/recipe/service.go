// Package recipe manages the menu catalog and the bill of materials of
// each menu item.
package recipe

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/kantin-backend/internal/domain"
)

// menuRepo defines the menu and recipe repository interface needed by recipe service.
type menuRepo interface {
	CreateItem(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error)
	GetItem(ctx context.Context, id uuid.UUID) (*domain.MenuItem, error)
	ListItems(ctx context.Context) ([]domain.MenuItem, error)
	LockItem(ctx context.Context, id uuid.UUID) error
	DeleteItem(ctx context.Context, id uuid.UUID) error
	AddLine(ctx context.Context, line *domain.RecipeLine) (*domain.RecipeLine, error)
	RemoveLine(ctx context.Context, id uuid.UUID) error
	CountLines(ctx context.Context, menuItemID uuid.UUID) (int, error)
	ListLines(ctx context.Context, menuItemID uuid.UUID) ([]domain.RecipeLineDetail, error)
	Components(ctx context.Context, menuItemID uuid.UUID) ([]domain.RecipeComponent, error)
}

// txManager defines the transaction manager interface needed by recipe service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// authorizer resolves the caller and checks its permission.
type authorizer interface {
	Authorize(ctx context.Context, action domain.Action) (*domain.Account, error)
}

// Service implements catalog and recipe operations.
type Service struct {
	log   *slog.Logger
	menu  menuRepo
	tx    txManager
	authz authorizer
}

// NewService creates a new recipe service instance.
func NewService(logger *slog.Logger, menu menuRepo, tx txManager, authz authorizer) *Service {
	return &Service{
		log:   logger.With("service", "recipe"),
		menu:  menu,
		tx:    tx,
		authz: authz,
	}
}
