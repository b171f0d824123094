package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/kantin-backend/internal/domain"
	"github.com/heartmarshall/kantin-backend/internal/service/recipe"
)

type recipeService interface {
	CreateMenuItem(ctx context.Context, input recipe.CreateMenuItemInput) (*domain.MenuItem, error)
	ListMenuItems(ctx context.Context) ([]domain.MenuItem, error)
	DeleteMenuItem(ctx context.Context, id uuid.UUID) (int, error)
	AddLine(ctx context.Context, input recipe.AddLineInput) (*domain.RecipeLine, error)
	RemoveLine(ctx context.Context, id uuid.UUID) error
	ListLines(ctx context.Context, menuItemID uuid.UUID) ([]domain.RecipeLineDetail, error)
}

// CatalogHandler serves menu item and recipe endpoints.
type CatalogHandler struct {
	svc recipeService
	log *slog.Logger
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(svc recipeService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{svc: svc, log: logger.With("handler", "catalog")}
}

type createMenuItemRequest struct {
	Name string  `json:"name"`
	SKU  *string `json:"sku"`
}

type addRecipeLineRequest struct {
	RawMaterialID uuid.UUID       `json:"rawMaterialId"`
	Quantity      decimal.Decimal `json:"quantity"`
}

type deleteMenuItemResponse struct {
	RecipeLinesRemoved int `json:"recipeLinesRemoved"`
}

// ListMenuItems handles GET /menu-items.
func (h *CatalogHandler) ListMenuItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ListMenuItems(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, mapSlice(items, toMenuItemResponse))
}

// CreateMenuItem handles POST /menu-items.
func (h *CatalogHandler) CreateMenuItem(w http.ResponseWriter, r *http.Request) {
	var req createMenuItemRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	item, err := h.svc.CreateMenuItem(r.Context(), recipe.CreateMenuItemInput{Name: req.Name, SKU: req.SKU})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toMenuItemResponse(item))
}

// DeleteMenuItem handles DELETE /menu-items/{id}.
func (h *CatalogHandler) DeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	removed, err := h.svc.DeleteMenuItem(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, deleteMenuItemResponse{RecipeLinesRemoved: removed})
}

// ListRecipe handles GET /menu-items/{id}/recipe.
func (h *CatalogHandler) ListRecipe(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	lines, err := h.svc.ListLines(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, mapSlice(lines, toRecipeLineDetailResponse))
}

// AddRecipeLine handles POST /menu-items/{id}/recipe.
func (h *CatalogHandler) AddRecipeLine(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	var req addRecipeLineRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	line, err := h.svc.AddLine(r.Context(), recipe.AddLineInput{
		MenuItemID:    id,
		RawMaterialID: req.RawMaterialID,
		Quantity:      req.Quantity,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toRecipeLineResponse(line))
}

// RemoveRecipeLine handles DELETE /recipe-lines/{id}.
func (h *CatalogHandler) RemoveRecipeLine(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	if err := h.svc.RemoveLine(r.Context(), id); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
