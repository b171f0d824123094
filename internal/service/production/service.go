// Package production converts production runs into ingredient deductions.
//
// A run resolves the recipe of a menu item, checks that every ingredient
// is covered and deducts all of them in one transaction. Rows are locked
// in id order and the transaction is retried on serialization failures
// and deadlocks, so concurrent runs and restocks never overdraw stock.
package production

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/heartmarshall/kantin-backend/internal/config"
	"github.com/heartmarshall/kantin-backend/internal/domain"
)

const tracerName = "github.com/heartmarshall/kantin-backend/internal/service/production"

// ledgerRepo defines the stock ledger interface needed by production service.
type ledgerRepo interface {
	LockMaterials(ctx context.Context, ids []uuid.UUID) ([]domain.RawMaterial, error)
	Deduct(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error)
	AppendMovement(ctx context.Context, m *domain.Movement) error
	ListMovements(ctx context.Context, limit, offset int) ([]domain.Movement, error)
	LastActivity(ctx context.Context) (*time.Time, error)
}

// recipeResolver loads a menu item with its resolved recipe.
type recipeResolver interface {
	ResolveItem(ctx context.Context, menuItemID uuid.UUID) (*domain.MenuItem, []domain.RecipeComponent, error)
}

// txManager defines the transaction manager interface needed by production service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// authorizer resolves the caller and checks its permission.
type authorizer interface {
	Authorize(ctx context.Context, action domain.Action) (*domain.Account, error)
}

type recorder interface {
	ObserveProduction(outcome string, d time.Duration)
	IncLedgerRetry()
}

// Service implements the production ledger.
type Service struct {
	log     *slog.Logger
	ledger  ledgerRepo
	recipes recipeResolver
	tx      txManager
	authz   authorizer
	metrics recorder
	tracer  trace.Tracer
	cfg     config.LedgerConfig
}

// NewService creates a new production service instance. Spans are created
// from the global tracer provider.
func NewService(
	logger *slog.Logger,
	ledger ledgerRepo,
	recipes recipeResolver,
	tx txManager,
	authz authorizer,
	metrics recorder,
	cfg config.LedgerConfig,
) *Service {
	return &Service{
		log:     logger.With("service", "production"),
		ledger:  ledger,
		recipes: recipes,
		tx:      tx,
		authz:   authz,
		metrics: metrics,
		tracer:  otel.Tracer(tracerName),
		cfg:     cfg,
	}
}
