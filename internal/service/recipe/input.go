package recipe

import (
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/kantin-backend/internal/domain"
)

const (
	// MaxNameLength is the longest accepted menu item name, in characters.
	MaxNameLength = 100
	// MaxSKULength is the longest accepted SKU.
	MaxSKULength = 64
)

// CreateMenuItemInput holds the parameters for creating a menu item.
type CreateMenuItemInput struct {
	Name string
	SKU  *string
}

// Validate checks all fields and collects all errors.
func (i CreateMenuItemInput) Validate() error {
	var errs []domain.FieldError

	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if utf8.RuneCountInString(i.Name) > MaxNameLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 100 characters"})
	}

	if i.SKU != nil && utf8.RuneCountInString(*i.SKU) > MaxSKULength {
		errs = append(errs, domain.FieldError{Field: "sku", Message: "max 64 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// AddLineInput holds the parameters for adding a recipe line.
type AddLineInput struct {
	MenuItemID    uuid.UUID
	RawMaterialID uuid.UUID
	Quantity      decimal.Decimal
}

// Validate checks all fields and collects all errors.
func (i AddLineInput) Validate() error {
	var errs []domain.FieldError

	if i.MenuItemID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "menu_item_id", Message: "required"})
	}
	if i.RawMaterialID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "raw_material_id", Message: "required"})
	}
	if !i.Quantity.IsPositive() {
		errs = append(errs, domain.FieldError{Field: "quantity", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
