package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/kantin-backend/internal/domain"
	"github.com/heartmarshall/kantin-backend/internal/service/inventory"
)

type inventoryService interface {
	CreateMaterial(ctx context.Context, input inventory.CreateMaterialInput) (*domain.RawMaterial, error)
	GetMaterial(ctx context.Context, id uuid.UUID) (*domain.RawMaterial, error)
	ListMaterials(ctx context.Context) ([]domain.RawMaterial, error)
	Restock(ctx context.Context, input inventory.RestockInput) (*domain.RawMaterial, error)
	DeleteMaterial(ctx context.Context, id uuid.UUID) error
}

// InventoryHandler serves raw material endpoints.
type InventoryHandler struct {
	svc inventoryService
	log *slog.Logger
}

// NewInventoryHandler creates an InventoryHandler.
func NewInventoryHandler(svc inventoryService, logger *slog.Logger) *InventoryHandler {
	return &InventoryHandler{svc: svc, log: logger.With("handler", "inventory")}
}

type createMaterialRequest struct {
	Name         string           `json:"name"`
	Unit         string           `json:"unit"`
	InitialStock *decimal.Decimal `json:"initialStock"`
}

type restockRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// List handles GET /materials.
func (h *InventoryHandler) List(w http.ResponseWriter, r *http.Request) {
	materials, err := h.svc.ListMaterials(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, mapSlice(materials, toMaterialResponse))
}

// Get handles GET /materials/{id}.
func (h *InventoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	m, err := h.svc.GetMaterial(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toMaterialResponse(m))
}

// Create handles POST /materials.
func (h *InventoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createMaterialRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	input := inventory.CreateMaterialInput{
		Name: req.Name,
		Unit: domain.MaterialUnit(req.Unit),
	}
	if req.InitialStock != nil {
		input.InitialStock = *req.InitialStock
	}

	m, err := h.svc.CreateMaterial(r.Context(), input)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toMaterialResponse(m))
}

// Delete handles DELETE /materials/{id}.
func (h *InventoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	if err := h.svc.DeleteMaterial(r.Context(), id); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Restock handles POST /materials/{id}/restock.
func (h *InventoryHandler) Restock(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	var req restockRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	m, err := h.svc.Restock(r.Context(), inventory.RestockInput{MaterialID: id, Delta: req.Amount})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toMaterialResponse(m))
}
