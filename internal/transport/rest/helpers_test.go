package rest

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

//go:generate moq -out auth_service_mock_test.go -pkg rest . authService
//go:generate moq -out inventory_service_mock_test.go -pkg rest . inventoryService
//go:generate moq -out recipe_service_mock_test.go -pkg rest . recipeService
//go:generate moq -out production_service_mock_test.go -pkg rest . productionService
//go:generate moq -out account_service_mock_test.go -pkg rest . accountService

type services struct {
	auth       *authServiceMock
	inventory  *inventoryServiceMock
	recipe     *recipeServiceMock
	production *productionServiceMock
	accounts   *accountServiceMock
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestRouter mounts every handler on mocks. Calling a mock method
// without a stub panics, so each test stubs only what it expects.
func newTestRouter(t *testing.T) (*http.ServeMux, services) {
	t.Helper()

	s := services{
		auth:       &authServiceMock{},
		inventory:  &inventoryServiceMock{},
		recipe:     &recipeServiceMock{},
		production: &productionServiceMock{},
		accounts:   &accountServiceMock{},
	}
	log := discardLogger()

	mux := NewRouter(Handlers{
		Health:     NewHealthHandler("test", PingCheck("database", &dbPingerMock{})),
		Auth:       NewAuthHandler(s.auth, log),
		Inventory:  NewInventoryHandler(s.inventory, log),
		Catalog:    NewCatalogHandler(s.recipe, log),
		Production: NewProductionHandler(s.production, log),
		Accounts:   NewAccountHandler(s.accounts, log),
		Metrics:    http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("# metrics\n")) }),
	})
	return mux, s
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeErrorBody(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()

	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), "body: %s", rec.Body.String())
	return resp.Error
}
