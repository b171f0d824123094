package rest

import "net/http"

// Handlers groups the handlers mounted by NewRouter.
type Handlers struct {
	Health     *HealthHandler
	Auth       *AuthHandler
	Inventory  *InventoryHandler
	Catalog    *CatalogHandler
	Production *ProductionHandler
	Accounts   *AccountHandler
	// Metrics serves the Prometheus exposition format.
	Metrics http.Handler
}

// NewRouter registers every route on a new ServeMux. Route patterns double
// as metric and span labels, so they must stay low-cardinality.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)
	mux.Handle("GET /metrics", h.Metrics)

	mux.HandleFunc("POST /auth/register", h.Auth.Register)
	mux.HandleFunc("POST /auth/login", h.Auth.Login)
	mux.HandleFunc("POST /auth/refresh", h.Auth.Refresh)
	mux.HandleFunc("POST /auth/logout", h.Auth.Logout)

	mux.HandleFunc("GET /materials", h.Inventory.List)
	mux.HandleFunc("POST /materials", h.Inventory.Create)
	mux.HandleFunc("GET /materials/{id}", h.Inventory.Get)
	mux.HandleFunc("DELETE /materials/{id}", h.Inventory.Delete)
	mux.HandleFunc("POST /materials/{id}/restock", h.Inventory.Restock)

	mux.HandleFunc("GET /menu-items", h.Catalog.ListMenuItems)
	mux.HandleFunc("POST /menu-items", h.Catalog.CreateMenuItem)
	mux.HandleFunc("DELETE /menu-items/{id}", h.Catalog.DeleteMenuItem)
	mux.HandleFunc("GET /menu-items/{id}/recipe", h.Catalog.ListRecipe)
	mux.HandleFunc("POST /menu-items/{id}/recipe", h.Catalog.AddRecipeLine)
	mux.HandleFunc("DELETE /recipe-lines/{id}", h.Catalog.RemoveRecipeLine)

	mux.HandleFunc("POST /production", h.Production.Produce)
	mux.HandleFunc("GET /production/history", h.Production.History)
	mux.HandleFunc("GET /production/last-activity", h.Production.LastActivity)

	mux.HandleFunc("GET /accounts", h.Accounts.List)
	mux.HandleFunc("DELETE /accounts/{id}", h.Accounts.Revoke)

	return mux
}
