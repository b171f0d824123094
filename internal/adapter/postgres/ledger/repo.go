// Package ledger implements the stock-locking, deduction and movement log
// queries used by production runs and restocks.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	postgres "github.com/heartmarshall/kantin-backend/internal/adapter/postgres"
	"github.com/heartmarshall/kantin-backend/internal/domain"
)

// ErrGuardFailed is returned by Deduct when the row no longer holds
// enough stock at update time. It wraps domain.ErrConflict so the ledger
// retries the transaction.
var ErrGuardFailed = fmt.Errorf("stock guard failed: %w", domain.ErrConflict)

// Repo provides ledger persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new ledger repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type stockRow struct {
	ID           uuid.UUID       `db:"id"`
	Name         string          `db:"name"`
	Unit         string          `db:"unit"`
	CurrentStock decimal.Decimal `db:"current_stock"`
	CreatedAt    time.Time       `db:"created_at"`
	UpdatedAt    time.Time       `db:"updated_at"`
}

// LockMaterials reads the given materials with FOR UPDATE row locks, in
// ascending id order so concurrent runs always lock in the same sequence.
// Must be called inside a transaction. Missing ids are simply absent from
// the result.
func (r *Repo) LockMaterials(ctx context.Context, ids []uuid.UUID) ([]domain.RawMaterial, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	strIDs := make([]string, len(ids))
	for i, id := range ids {
		strIDs[i] = id.String()
	}

	query, args, err := postgres.Builder().
		Select("id", "name", "unit", "current_stock", "created_at", "updated_at").
		From("raw_materials").
		Where("id = ANY(?::uuid[])", strIDs).
		OrderBy("id ASC").
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build lock raw_material: %w", err)
	}

	var rows []stockRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "raw_material", uuid.Nil)
	}

	res := make([]domain.RawMaterial, len(rows))
	for i, rw := range rows {
		res[i] = domain.RawMaterial{
			ID:           rw.ID,
			Name:         rw.Name,
			Unit:         domain.MaterialUnit(rw.Unit),
			CurrentStock: rw.CurrentStock,
			CreatedAt:    rw.CreatedAt,
			UpdatedAt:    rw.UpdatedAt,
		}
	}
	return res, nil
}

// Deduct subtracts amount from a material's stock, guarded by
// current_stock >= amount in the same statement, and returns the remaining
// stock. ErrGuardFailed means the guard rejected the update.
func (r *Repo) Deduct(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error) {
	query, args, err := postgres.Builder().
		Update("raw_materials").
		Set("current_stock", squirrel.Expr("current_stock - ?", amount)).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Expr("current_stock >= ?", amount)).
		Suffix("RETURNING current_stock").
		ToSql()
	if err != nil {
		return decimal.Zero, fmt.Errorf("build deduct raw_material: %w", err)
	}

	var remaining decimal.Decimal
	err = postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&remaining)
	if errors.Is(err, pgx.ErrNoRows) {
		return decimal.Zero, fmt.Errorf("raw_material %s: %w", id, ErrGuardFailed)
	}
	if err != nil {
		return decimal.Zero, postgres.MapError(err, "raw_material", id)
	}

	return remaining, nil
}

// AppendMovement inserts a movement and its lines. ID and CreatedAt of m
// are filled from the database.
func (r *Repo) AppendMovement(ctx context.Context, m *domain.Movement) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var actor *uuid.UUID
	if m.ActorID != uuid.Nil {
		actor = &m.ActorID
	}
	var itemName *string
	if m.MenuItemName != "" {
		itemName = &m.MenuItemName
	}

	query, args, err := postgres.Builder().
		Insert("inventory_movements").
		Columns("kind", "menu_item_id", "menu_item_name", "quantity", "actor_id").
		Values(string(m.Kind), m.MenuItemID, itemName, m.Quantity, actor).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert movement: %w", err)
	}

	if err := q.QueryRow(ctx, query, args...).Scan(&m.ID, &m.CreatedAt); err != nil {
		return postgres.MapError(err, "movement", uuid.Nil)
	}

	if len(m.Lines) == 0 {
		return nil
	}

	ins := postgres.Builder().
		Insert("movement_lines").
		Columns("movement_id", "raw_material_id", "material_name", "unit", "delta")
	for _, l := range m.Lines {
		ins = ins.Values(m.ID, l.RawMaterialID, l.MaterialName, string(l.Unit), l.Delta)
	}

	query, args, err = ins.ToSql()
	if err != nil {
		return fmt.Errorf("build insert movement lines: %w", err)
	}

	if _, err := q.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "movement", m.ID)
	}

	return nil
}

type movementRow struct {
	ID           uuid.UUID       `db:"id"`
	Kind         string          `db:"kind"`
	MenuItemID   *uuid.UUID      `db:"menu_item_id"`
	MenuItemName *string         `db:"menu_item_name"`
	Quantity     decimal.Decimal `db:"quantity"`
	ActorID      *uuid.UUID      `db:"actor_id"`
	CreatedAt    time.Time       `db:"created_at"`
}

type movementLineRow struct {
	MovementID    uuid.UUID       `db:"movement_id"`
	RawMaterialID uuid.UUID       `db:"raw_material_id"`
	MaterialName  string          `db:"material_name"`
	Unit          string          `db:"unit"`
	Delta         decimal.Decimal `db:"delta"`
}

// ListMovements returns movements newest first, with their lines.
func (r *Repo) ListMovements(ctx context.Context, limit, offset int) ([]domain.Movement, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := postgres.Builder().
		Select("id", "kind", "menu_item_id", "menu_item_name", "quantity", "actor_id", "created_at").
		From("inventory_movements").
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list movements: %w", err)
	}

	var rows []movementRow
	if err := pgxscan.Select(ctx, q, &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "movement", uuid.Nil)
	}
	if len(rows) == 0 {
		return []domain.Movement{}, nil
	}

	ids := make([]string, len(rows))
	for i, rw := range rows {
		ids[i] = rw.ID.String()
	}

	query, args, err = postgres.Builder().
		Select("movement_id", "raw_material_id", "material_name", "unit", "delta").
		From("movement_lines").
		Where("movement_id = ANY(?::uuid[])", ids).
		OrderBy("movement_id", "material_name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list movement lines: %w", err)
	}

	var lineRows []movementLineRow
	if err := pgxscan.Select(ctx, q, &lineRows, query, args...); err != nil {
		return nil, postgres.MapError(err, "movement", uuid.Nil)
	}

	byMovement := make(map[uuid.UUID][]domain.MovementLine, len(rows))
	for _, l := range lineRows {
		byMovement[l.MovementID] = append(byMovement[l.MovementID], domain.MovementLine{
			RawMaterialID: l.RawMaterialID,
			MaterialName:  l.MaterialName,
			Unit:          domain.MaterialUnit(l.Unit),
			Delta:         l.Delta,
		})
	}

	res := make([]domain.Movement, len(rows))
	for i, rw := range rows {
		mv := domain.Movement{
			ID:         rw.ID,
			Kind:       domain.MovementKind(rw.Kind),
			MenuItemID: rw.MenuItemID,
			Quantity:   rw.Quantity,
			CreatedAt:  rw.CreatedAt,
			Lines:      byMovement[rw.ID],
		}
		if rw.MenuItemName != nil {
			mv.MenuItemName = *rw.MenuItemName
		}
		if rw.ActorID != nil {
			mv.ActorID = *rw.ActorID
		}
		res[i] = mv
	}
	return res, nil
}

// LastActivity returns the timestamp of the most recent movement, or nil
// when the log is empty.
func (r *Repo) LastActivity(ctx context.Context) (*time.Time, error) {
	var ts *time.Time
	err := postgres.QuerierFromCtx(ctx, r.db).
		QueryRow(ctx, `SELECT max(created_at) FROM inventory_movements`).
		Scan(&ts)
	if err != nil {
		return nil, postgres.MapError(err, "movement", uuid.Nil)
	}
	return ts, nil
}
