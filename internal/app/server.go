package app

import (
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/kantin-backend/internal/adapter/postgres"
	"github.com/heartmarshall/kantin-backend/internal/adapter/postgres/ledger"
	"github.com/heartmarshall/kantin-backend/internal/adapter/postgres/material"
	"github.com/heartmarshall/kantin-backend/internal/adapter/postgres/menu"
	"github.com/heartmarshall/kantin-backend/internal/adapter/postgres/token"
	"github.com/heartmarshall/kantin-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/kantin-backend/internal/auth"
	"github.com/heartmarshall/kantin-backend/internal/config"
	"github.com/heartmarshall/kantin-backend/internal/metrics"
	authsvc "github.com/heartmarshall/kantin-backend/internal/service/auth"
	"github.com/heartmarshall/kantin-backend/internal/service/authz"
	"github.com/heartmarshall/kantin-backend/internal/service/inventory"
	"github.com/heartmarshall/kantin-backend/internal/service/production"
	"github.com/heartmarshall/kantin-backend/internal/service/recipe"
	"github.com/heartmarshall/kantin-backend/internal/transport/middleware"
	"github.com/heartmarshall/kantin-backend/internal/transport/rest"
)

// newHandler builds the full HTTP stack on top of pool: repositories,
// services, handlers and the middleware chain. The returned stop function
// releases background resources and must be called once the server has
// shut down.
func newHandler(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool, m *metrics.Metrics) (http.Handler, func()) {
	// Repositories
	accounts := user.New(pool)
	tokens := token.New(pool)
	materials := material.New(pool)
	menus := menu.New(pool)
	ledgerRepo := ledger.New(pool)

	// Transactions. Production runs at the configured isolation level so
	// the ledger retry policy sees serialization failures.
	txm := postgres.NewTxManager(pool)
	ledgerTx := postgres.NewTxManager(pool).WithIsolation(postgres.ParseIsolation(cfg.Ledger.Isolation))

	// Services
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	passwords := auth.NewPasswordHasher(cfg.Auth.PasswordHashCost)

	authService := authsvc.NewService(logger, accounts, accounts, tokens, txm, jwtManager, passwords, cfg.Auth)
	gate := authz.NewGate(logger, accounts)
	inventoryService := inventory.NewService(logger, materials, ledgerRepo, txm, gate, m)
	recipeService := recipe.NewService(logger, menus, txm, gate)
	productionService := production.NewService(logger, ledgerRepo, recipeService, ledgerTx, gate, m, cfg.Ledger)

	// Transport
	mux := rest.NewRouter(rest.Handlers{
		Health:     rest.NewHealthHandler(BuildVersion(), rest.PingCheck("postgres", pool)),
		Auth:       rest.NewAuthHandler(authService, logger),
		Inventory:  rest.NewInventoryHandler(inventoryService, logger),
		Catalog:    rest.NewCatalogHandler(recipeService, logger),
		Production: rest.NewProductionHandler(productionService, logger),
		Accounts:   rest.NewAccountHandler(gate, logger),
		Metrics:    m.Handler(),
	})

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)

	// Metrics wraps the mux directly so it can read the matched pattern.
	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.Tracing(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		limiter.Limit(cfg.RateLimit.RequestsPerMinute),
		middleware.Auth(authService),
		middleware.Metrics(m),
	)(mux)

	return handler, limiter.Stop
}
