package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RawMaterial is an ingredient held in stock.
type RawMaterial struct {
	ID           uuid.UUID
	Name         string
	Unit         MaterialUnit
	CurrentStock decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// MenuItem is a finished product that can be produced from a recipe.
type MenuItem struct {
	ID        uuid.UUID
	Name      string
	SKU       *string
	CreatedAt time.Time
}

// RecipeLine is one bill-of-materials entry: how much of a raw material
// one unit of a menu item consumes.
type RecipeLine struct {
	ID             uuid.UUID
	MenuItemID     uuid.UUID
	RawMaterialID  uuid.UUID
	QuantityNeeded decimal.Decimal
	CreatedAt      time.Time
}

// RecipeLineDetail is a RecipeLine joined with its material for display.
type RecipeLineDetail struct {
	RecipeLine
	MaterialName string
	MaterialUnit MaterialUnit
}

// RecipeComponent is one element of a resolved recipe.
type RecipeComponent struct {
	RawMaterialID   uuid.UUID
	QuantityPerUnit decimal.Decimal
}

// Deduction is the amount taken from one material by a production run.
type Deduction struct {
	RawMaterialID uuid.UUID
	Name          string
	Unit          MaterialUnit
	Amount        decimal.Decimal
	Remaining     decimal.Decimal
}

// DeductionReceipt is returned by a successful production run.
type DeductionReceipt struct {
	MovementID uuid.UUID
	MenuItemID uuid.UUID
	Quantity   int
	Lines      []Deduction
	ProducedAt time.Time
}

// Movement is an append-only record of a stock change.
type Movement struct {
	ID           uuid.UUID
	Kind         MovementKind
	MenuItemID   *uuid.UUID
	MenuItemName string
	Quantity     decimal.Decimal
	ActorID      uuid.UUID
	CreatedAt    time.Time
	Lines        []MovementLine
}

// MovementLine is the per-material delta of a Movement. The name is a
// snapshot so the log stays readable after a material is deleted.
type MovementLine struct {
	RawMaterialID uuid.UUID
	MaterialName  string
	Unit          MaterialUnit
	Delta         decimal.Decimal
}
