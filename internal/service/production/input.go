package production

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/kantin-backend/internal/domain"
)

const (
	// DefaultHistoryLimit is used when History is called without a limit.
	DefaultHistoryLimit = 50
	// MaxHistoryLimit caps the page size of History.
	MaxHistoryLimit = 200
)

// ProduceInput holds the parameters of a production run.
type ProduceInput struct {
	MenuItemID uuid.UUID
	Quantity   int
}

// Validate checks all fields and collects all errors. maxQuantity bounds
// the number of units per run.
func (i ProduceInput) Validate(maxQuantity int) error {
	var errs []domain.FieldError

	if i.MenuItemID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "menu_item_id", Message: "required"})
	}
	if i.Quantity < 1 {
		errs = append(errs, domain.FieldError{Field: "quantity", Message: "must be a positive integer"})
	} else if i.Quantity > maxQuantity {
		errs = append(errs, domain.FieldError{Field: "quantity", Message: fmt.Sprintf("max %d per run", maxQuantity)})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// HistoryInput selects a page of the movement log.
type HistoryInput struct {
	Limit  int
	Offset int
}

func (i HistoryInput) normalize() (HistoryInput, error) {
	if i.Offset < 0 {
		return i, domain.NewValidationError("offset", "must not be negative")
	}
	if i.Limit <= 0 {
		i.Limit = DefaultHistoryLimit
	}
	if i.Limit > MaxHistoryLimit {
		i.Limit = MaxHistoryLimit
	}
	return i, nil
}
