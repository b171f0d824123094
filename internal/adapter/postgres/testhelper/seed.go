package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/kantin-backend/internal/domain"
)

// UniqueSuffix returns a short unique string for generating non-conflicting test data.
func UniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedAccount creates an account with the given role.
func SeedAccount(t *testing.T, pool *pgxpool.Pool, role domain.UserRole) domain.Account {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	acc := domain.Account{
		ID:        uuid.New(),
		Email:     "user-" + UniqueSuffix() + "@example.com",
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, role, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`,
		acc.ID, acc.Email, string(acc.Role), acc.CreatedAt, acc.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAccount: %v", err)
	}

	return acc
}

// SeedMaterial creates a raw material with a unique name derived from name.
func SeedMaterial(t *testing.T, pool *pgxpool.Pool, name string, unit domain.MaterialUnit, stock string) domain.RawMaterial {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	m := domain.RawMaterial{
		ID:           uuid.New(),
		Name:         name + " " + UniqueSuffix(),
		Unit:         unit,
		CurrentStock: decimal.RequireFromString(stock),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO raw_materials (id, name, unit, current_stock, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		m.ID, m.Name, string(m.Unit), m.CurrentStock, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMaterial: %v", err)
	}

	return m
}

// SeedMenuItem creates a menu item without a SKU.
func SeedMenuItem(t *testing.T, pool *pgxpool.Pool, name string) domain.MenuItem {
	t.Helper()

	item := domain.MenuItem{
		ID:        uuid.New(),
		Name:      name + " " + UniqueSuffix(),
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO menu_items (id, name, created_at) VALUES ($1, $2, $3)`,
		item.ID, item.Name, item.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMenuItem: %v", err)
	}

	return item
}

// SeedRecipeLine links a material to a menu item with the per-unit quantity.
func SeedRecipeLine(t *testing.T, pool *pgxpool.Pool, menuItemID, materialID uuid.UUID, qty string) domain.RecipeLine {
	t.Helper()

	line := domain.RecipeLine{
		ID:             uuid.New(),
		MenuItemID:     menuItemID,
		RawMaterialID:  materialID,
		QuantityNeeded: decimal.RequireFromString(qty),
		CreatedAt:      time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO recipe_lines (id, menu_item_id, raw_material_id, quantity_needed, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		line.ID, line.MenuItemID, line.RawMaterialID, line.QuantityNeeded, line.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRecipeLine: %v", err)
	}

	return line
}

// StockOf reads the current stock of a material straight from the table.
func StockOf(t *testing.T, pool *pgxpool.Pool, materialID uuid.UUID) decimal.Decimal {
	t.Helper()

	var stock decimal.Decimal
	err := pool.QueryRow(context.Background(),
		`SELECT current_stock FROM raw_materials WHERE id = $1`, materialID,
	).Scan(&stock)
	if err != nil {
		t.Fatalf("testhelper: StockOf: %v", err)
	}
	return stock
}
