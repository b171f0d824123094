package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/kantin-backend/internal/domain"
)

// Error codes returned in the "code" field of error responses.
const (
	codeValidation           = "validation_error"
	codeNotFound             = "not_found"
	codeAlreadyExists        = "already_exists"
	codeMaterialInUse        = "material_in_use"
	codeInsufficientStock    = "insufficient_stock"
	codeNoRecipe             = "no_recipe"
	codeUnauthorized         = "unauthorized"
	codeForbidden            = "forbidden"
	codeConcurrencyExhausted = "concurrency_exhausted"
	codeStoreUnavailable     = "store_unavailable"
	codeInternal             = "internal"
)

// retryAfterSeconds is sent with responses the client may simply retry.
const retryAfterSeconds = "1"

const materialInUseMessage = "material is still used by one or more recipes; remove it from those recipes before deleting"

type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code       string              `json:"code"`
	Message    string              `json:"message"`
	Fields     []fieldErrorDTO     `json:"fields,omitempty"`
	Shortfalls []shortfallResponse `json:"shortfalls,omitempty"`
}

type fieldErrorDTO struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: errorBody{Code: code, Message: message}})
}

// respondError translates a service error into an HTTP response. Only the
// messages chosen here reach the client; anything unrecognised is logged
// and answered with a generic 500.
func respondError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var (
		validation *domain.ValidationError
		shortage   *domain.InsufficientStockError
		notFound   *domain.NotFoundError
	)

	switch {
	case errors.As(err, &validation):
		fields := make([]fieldErrorDTO, len(validation.Errors))
		for i, fe := range validation.Errors {
			fields[i] = fieldErrorDTO{Field: fe.Field, Message: fe.Message}
		}
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: errorBody{
			Code:    codeValidation,
			Message: "validation failed",
			Fields:  fields,
		}})

	case errors.As(err, &shortage):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: errorBody{
			Code:       codeInsufficientStock,
			Message:    "insufficient stock",
			Shortfalls: toShortfallResponses(shortage.Shortfalls),
		}})

	case errors.As(err, &notFound):
		writeError(w, http.StatusNotFound, codeNotFound, notFound.Entity+" not found")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, codeNotFound, "not found")

	case errors.Is(err, domain.ErrMaterialInUse):
		writeError(w, http.StatusConflict, codeMaterialInUse, materialInUseMessage)
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, codeAlreadyExists, "already exists")
	case errors.Is(err, domain.ErrNoRecipe):
		writeError(w, http.StatusUnprocessableEntity, codeNoRecipe, "menu item has no recipe")
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, codeValidation, "validation failed")

	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, codeUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, codeForbidden, "forbidden")

	case errors.Is(err, domain.ErrConcurrencyExhausted), errors.Is(err, domain.ErrConflict):
		w.Header().Set("Retry-After", retryAfterSeconds)
		writeError(w, http.StatusConflict, codeConcurrencyExhausted, "too many concurrent updates, retry the request")
	case errors.Is(err, domain.ErrStoreUnavailable):
		log.WarnContext(r.Context(), "store unavailable", slog.String("error", err.Error()))
		w.Header().Set("Retry-After", retryAfterSeconds)
		writeError(w, http.StatusServiceUnavailable, codeStoreUnavailable, "service temporarily unavailable")

	case errors.Is(err, context.Canceled) && r.Context().Err() != nil:
		// Client went away; nobody reads the response.
		log.DebugContext(r.Context(), "request canceled", slog.String("error", err.Error()))
		writeError(w, http.StatusServiceUnavailable, codeStoreUnavailable, "request canceled")

	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, codeInternal, "internal server error")
	}
}
