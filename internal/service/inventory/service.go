// Package inventory manages raw materials and their stock levels.
package inventory

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/kantin-backend/internal/domain"
)

// materialRepo defines the raw material repository interface needed by inventory service.
type materialRepo interface {
	Create(ctx context.Context, m *domain.RawMaterial) (*domain.RawMaterial, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.RawMaterial, error)
	List(ctx context.Context) ([]domain.RawMaterial, error)
	AddStock(ctx context.Context, id uuid.UUID, delta decimal.Decimal) (*domain.RawMaterial, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// movementLog appends inventory movements.
type movementLog interface {
	AppendMovement(ctx context.Context, m *domain.Movement) error
}

// txManager defines the transaction manager interface needed by inventory service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// authorizer resolves the caller and checks its permission.
type authorizer interface {
	Authorize(ctx context.Context, action domain.Action) (*domain.Account, error)
}

type recorder interface {
	IncRestock()
}

// Service implements the inventory store operations.
type Service struct {
	log       *slog.Logger
	materials materialRepo
	movements movementLog
	tx        txManager
	authz     authorizer
	metrics   recorder
}

// NewService creates a new inventory service instance.
func NewService(
	logger *slog.Logger,
	materials materialRepo,
	movements movementLog,
	tx txManager,
	authz authorizer,
	metrics recorder,
) *Service {
	return &Service{
		log:       logger.With("service", "inventory"),
		materials: materials,
		movements: movements,
		tx:        tx,
		authz:     authz,
		metrics:   metrics,
	}
}
