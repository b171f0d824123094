package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/kantin-backend/internal/domain"
	"github.com/heartmarshall/kantin-backend/internal/service/production"
)

type productionService interface {
	Produce(ctx context.Context, input production.ProduceInput) (*domain.DeductionReceipt, error)
	History(ctx context.Context, input production.HistoryInput) ([]domain.Movement, error)
	LastActivity(ctx context.Context) (*time.Time, error)
}

// ProductionHandler serves production runs and the movement history.
type ProductionHandler struct {
	svc productionService
	log *slog.Logger
}

// NewProductionHandler creates a ProductionHandler.
func NewProductionHandler(svc productionService, logger *slog.Logger) *ProductionHandler {
	return &ProductionHandler{svc: svc, log: logger.With("handler", "production")}
}

type produceRequest struct {
	MenuItemID uuid.UUID `json:"menuItemId"`
	Quantity   int       `json:"quantity"`
}

type historyResponse struct {
	Items  []movementResponse `json:"items"`
	Limit  int                `json:"limit"`
	Offset int                `json:"offset"`
}

type lastActivityResponse struct {
	LastActivityAt *time.Time `json:"lastActivityAt"`
}

// Produce handles POST /production.
func (h *ProductionHandler) Produce(w http.ResponseWriter, r *http.Request) {
	var req produceRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	receipt, err := h.svc.Produce(r.Context(), production.ProduceInput{
		MenuItemID: req.MenuItemID,
		Quantity:   req.Quantity,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toReceiptResponse(receipt))
}

// History handles GET /production/history?limit=&offset=.
func (h *ProductionHandler) History(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	offset, err := queryInt(r, "offset")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	movements, err := h.svc.History(r.Context(), production.HistoryInput{Limit: limit, Offset: offset})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	if limit <= 0 {
		limit = production.DefaultHistoryLimit
	}
	writeJSON(w, http.StatusOK, historyResponse{
		Items:  mapSlice(movements, toMovementResponse),
		Limit:  min(limit, production.MaxHistoryLimit),
		Offset: offset,
	})
}

// LastActivity handles GET /production/last-activity.
func (h *ProductionHandler) LastActivity(w http.ResponseWriter, r *http.Request) {
	at, err := h.svc.LastActivity(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, lastActivityResponse{LastActivityAt: at})
}
