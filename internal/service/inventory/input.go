package inventory

import (
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/kantin-backend/internal/domain"
)

// MaxNameLength is the longest accepted material name, in characters.
const MaxNameLength = 100

// CreateMaterialInput holds the parameters for creating a raw material.
type CreateMaterialInput struct {
	Name         string
	Unit         domain.MaterialUnit
	InitialStock decimal.Decimal
}

// Validate checks all fields and collects all errors.
// Name is expected to be normalized already.
func (i CreateMaterialInput) Validate() error {
	var errs []domain.FieldError

	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if utf8.RuneCountInString(i.Name) > MaxNameLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 100 characters"})
	}

	if !i.Unit.IsValid() {
		errs = append(errs, domain.FieldError{Field: "unit", Message: "must be one of grams, ml, pieces"})
	}

	if i.InitialStock.IsNegative() {
		errs = append(errs, domain.FieldError{Field: "initial_stock", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RestockInput holds the parameters for adding stock to a material.
type RestockInput struct {
	MaterialID uuid.UUID
	Delta      decimal.Decimal
}

// Validate checks all fields and collects all errors.
func (i RestockInput) Validate() error {
	var errs []domain.FieldError

	if i.MaterialID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "material_id", Message: "required"})
	}
	if !i.Delta.IsPositive() {
		errs = append(errs, domain.FieldError{Field: "delta", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
