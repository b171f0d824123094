package rest

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/kantin-backend/internal/domain"
	"github.com/heartmarshall/kantin-backend/internal/service/auth"
)

// Quantities are decimal.Decimal on the wire: encoded as JSON strings,
// accepted as strings or numbers.

type accountResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

type authResponse struct {
	AccessToken  string          `json:"accessToken"`
	RefreshToken string          `json:"refreshToken"`
	ExpiresIn    int             `json:"expiresIn"`
	Account      accountResponse `json:"account"`
}

type materialResponse struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Unit         string          `json:"unit"`
	Kind         string          `json:"kind"`
	CurrentStock decimal.Decimal `json:"currentStock"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

type menuItemResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	SKU       *string   `json:"sku"`
	CreatedAt time.Time `json:"createdAt"`
}

type recipeLineResponse struct {
	ID             uuid.UUID       `json:"id"`
	MenuItemID     uuid.UUID       `json:"menuItemId"`
	RawMaterialID  uuid.UUID       `json:"rawMaterialId"`
	MaterialName   string          `json:"materialName,omitempty"`
	Unit           string          `json:"unit,omitempty"`
	QuantityNeeded decimal.Decimal `json:"quantityNeeded"`
	CreatedAt      time.Time       `json:"createdAt"`
}

type deductionResponse struct {
	RawMaterialID uuid.UUID       `json:"rawMaterialId"`
	Name          string          `json:"name"`
	Unit          string          `json:"unit"`
	Amount        decimal.Decimal `json:"amount"`
	Remaining     decimal.Decimal `json:"remaining"`
}

type receiptResponse struct {
	MovementID uuid.UUID           `json:"movementId"`
	MenuItemID uuid.UUID           `json:"menuItemId"`
	Quantity   int                 `json:"quantity"`
	Lines      []deductionResponse `json:"lines"`
	ProducedAt time.Time           `json:"producedAt"`
}

type movementLineResponse struct {
	RawMaterialID uuid.UUID       `json:"rawMaterialId"`
	MaterialName  string          `json:"materialName"`
	Unit          string          `json:"unit"`
	Delta         decimal.Decimal `json:"delta"`
}

type movementResponse struct {
	ID           uuid.UUID              `json:"id"`
	Kind         string                 `json:"kind"`
	MenuItemID   *uuid.UUID             `json:"menuItemId,omitempty"`
	MenuItemName string                 `json:"menuItemName,omitempty"`
	Quantity     decimal.Decimal        `json:"quantity"`
	ActorID      uuid.UUID              `json:"actorId"`
	CreatedAt    time.Time              `json:"createdAt"`
	Lines        []movementLineResponse `json:"lines"`
}

type shortfallResponse struct {
	RawMaterialID uuid.UUID       `json:"rawMaterialId"`
	Name          string          `json:"name"`
	Unit          string          `json:"unit"`
	Required      decimal.Decimal `json:"required"`
	Available     decimal.Decimal `json:"available"`
}

func toAccountResponse(a *domain.Account) accountResponse {
	return accountResponse{
		ID:        a.ID,
		Email:     a.Email,
		Role:      a.Role.String(),
		CreatedAt: a.CreatedAt,
	}
}

func toAuthResponse(result *auth.AuthResult) authResponse {
	return authResponse{
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
		ExpiresIn:    int(result.ExpiresIn / time.Second),
		Account:      toAccountResponse(result.Account),
	}
}

func toMaterialResponse(m *domain.RawMaterial) materialResponse {
	return materialResponse{
		ID:           m.ID,
		Name:         m.Name,
		Unit:         m.Unit.String(),
		Kind:         m.Unit.Kind(),
		CurrentStock: m.CurrentStock,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toMenuItemResponse(m *domain.MenuItem) menuItemResponse {
	return menuItemResponse{ID: m.ID, Name: m.Name, SKU: m.SKU, CreatedAt: m.CreatedAt}
}

func toRecipeLineResponse(l *domain.RecipeLine) recipeLineResponse {
	return recipeLineResponse{
		ID:             l.ID,
		MenuItemID:     l.MenuItemID,
		RawMaterialID:  l.RawMaterialID,
		QuantityNeeded: l.QuantityNeeded,
		CreatedAt:      l.CreatedAt,
	}
}

func toRecipeLineDetailResponse(d *domain.RecipeLineDetail) recipeLineResponse {
	resp := toRecipeLineResponse(&d.RecipeLine)
	resp.MaterialName = d.MaterialName
	resp.Unit = d.MaterialUnit.String()
	return resp
}

func toReceiptResponse(r *domain.DeductionReceipt) receiptResponse {
	lines := make([]deductionResponse, len(r.Lines))
	for i, d := range r.Lines {
		lines[i] = deductionResponse{
			RawMaterialID: d.RawMaterialID,
			Name:          d.Name,
			Unit:          d.Unit.String(),
			Amount:        d.Amount,
			Remaining:     d.Remaining,
		}
	}
	return receiptResponse{
		MovementID: r.MovementID,
		MenuItemID: r.MenuItemID,
		Quantity:   r.Quantity,
		Lines:      lines,
		ProducedAt: r.ProducedAt,
	}
}

func toMovementResponse(m *domain.Movement) movementResponse {
	lines := make([]movementLineResponse, len(m.Lines))
	for i, l := range m.Lines {
		lines[i] = movementLineResponse{
			RawMaterialID: l.RawMaterialID,
			MaterialName:  l.MaterialName,
			Unit:          l.Unit.String(),
			Delta:         l.Delta,
		}
	}
	return movementResponse{
		ID:           m.ID,
		Kind:         m.Kind.String(),
		MenuItemID:   m.MenuItemID,
		MenuItemName: m.MenuItemName,
		Quantity:     m.Quantity,
		ActorID:      m.ActorID,
		CreatedAt:    m.CreatedAt,
		Lines:        lines,
	}
}

func toShortfallResponses(s []domain.Shortfall) []shortfallResponse {
	out := make([]shortfallResponse, len(s))
	for i, sf := range s {
		out[i] = shortfallResponse{
			RawMaterialID: sf.RawMaterialID,
			Name:          sf.Name,
			Unit:          sf.Unit.String(),
			Required:      sf.Required,
			Available:     sf.Available,
		}
	}
	return out
}

// mapSlice converts a slice of domain values with fn.
func mapSlice[T, R any](in []T, fn func(*T) R) []R {
	out := make([]R, len(in))
	for i := range in {
		out[i] = fn(&in[i])
	}
	return out
}
