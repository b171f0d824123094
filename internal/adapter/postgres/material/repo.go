// Package material implements the raw material repository using PostgreSQL.
package material

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	postgres "github.com/heartmarshall/kantin-backend/internal/adapter/postgres"
	"github.com/heartmarshall/kantin-backend/internal/domain"
)

const (
	table  = "raw_materials"
	entity = "raw_material"
)

var columns = []string{"id", "name", "unit", "current_stock", "created_at", "updated_at"}

// Repo provides raw material persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new material repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID           uuid.UUID       `db:"id"`
	Name         string          `db:"name"`
	Unit         string          `db:"unit"`
	CurrentStock decimal.Decimal `db:"current_stock"`
	CreatedAt    time.Time       `db:"created_at"`
	UpdatedAt    time.Time       `db:"updated_at"`
}

func (r row) toDomain() domain.RawMaterial {
	return domain.RawMaterial{
		ID:           r.ID,
		Name:         r.Name,
		Unit:         domain.MaterialUnit(r.Unit),
		CurrentStock: r.CurrentStock,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

// Create inserts a material. A case-insensitive name clash returns
// domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, m *domain.RawMaterial) (*domain.RawMaterial, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns("name", "unit", "current_stock").
		Values(m.Name, string(m.Unit), m.CurrentStock).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert %s: %w", entity, err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, postgres.MapError(err, entity, uuid.Nil)
	}

	res := out.toDomain()
	return &res, nil
}

// GetByID returns a material by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.RawMaterial, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select %s: %w", entity, err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, postgres.MapError(err, entity, id)
	}

	res := out.toDomain()
	return &res, nil
}

// List returns all materials ordered by name.
func (r *Repo) List(ctx context.Context) ([]domain.RawMaterial, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		OrderBy("lower(name) ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list %s: %w", entity, err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, entity, uuid.Nil)
	}

	res := make([]domain.RawMaterial, len(rows))
	for i, rw := range rows {
		res[i] = rw.toDomain()
	}
	return res, nil
}

// AddStock atomically increases current_stock by delta on the server and
// returns the updated material. The caller never computes the new value.
func (r *Repo) AddStock(ctx context.Context, id uuid.UUID, delta decimal.Decimal) (*domain.RawMaterial, error) {
	query, args, err := postgres.Builder().
		Update(table).
		Set("current_stock", squirrel.Expr("current_stock + ?", delta)).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build restock %s: %w", entity, err)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, postgres.MapError(err, entity, id)
	}

	res := out.toDomain()
	return &res, nil
}

// Delete removes a material. A material still referenced by a recipe line
// is protected by the foreign key and yields domain.ErrMaterialInUse.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete %s: %w", entity, err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		if postgres.HasCode(err, postgres.CodeForeignKeyViolation) {
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrMaterialInUse)
		}
		return postgres.MapError(err, entity, id)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError(entity, id)
	}

	return nil
}
