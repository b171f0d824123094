// Package menu implements the menu item and recipe line repository using PostgreSQL.
package menu

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	postgres "github.com/heartmarshall/kantin-backend/internal/adapter/postgres"
	"github.com/heartmarshall/kantin-backend/internal/domain"
)

// Foreign key constraint names from the inventory migration.
const (
	fkMenuItem    = "recipe_lines_menu_item_fk"
	fkRawMaterial = "recipe_lines_raw_material_fk"
)

// Repo provides menu item and recipe line persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new menu repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type itemRow struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	SKU       *string   `db:"sku"`
	CreatedAt time.Time `db:"created_at"`
}

func (r itemRow) toDomain() domain.MenuItem {
	return domain.MenuItem{ID: r.ID, Name: r.Name, SKU: r.SKU, CreatedAt: r.CreatedAt}
}

type lineRow struct {
	ID             uuid.UUID       `db:"id"`
	MenuItemID     uuid.UUID       `db:"menu_item_id"`
	RawMaterialID  uuid.UUID       `db:"raw_material_id"`
	QuantityNeeded decimal.Decimal `db:"quantity_needed"`
	CreatedAt      time.Time       `db:"created_at"`
	MaterialName   string          `db:"material_name"`
	MaterialUnit   string          `db:"material_unit"`
}

func (r lineRow) toLine() domain.RecipeLine {
	return domain.RecipeLine{
		ID:             r.ID,
		MenuItemID:     r.MenuItemID,
		RawMaterialID:  r.RawMaterialID,
		QuantityNeeded: r.QuantityNeeded,
		CreatedAt:      r.CreatedAt,
	}
}

// ---------------------------------------------------------------------------
// Menu items
// ---------------------------------------------------------------------------

// CreateItem inserts a menu item. A duplicate SKU returns domain.ErrAlreadyExists.
func (r *Repo) CreateItem(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error) {
	query, args, err := postgres.Builder().
		Insert("menu_items").
		Columns("name", "sku").
		Values(item.Name, item.SKU).
		Suffix("RETURNING id, name, sku, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert menu_item: %w", err)
	}

	var out itemRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, postgres.MapError(err, "menu_item", uuid.Nil)
	}

	res := out.toDomain()
	return &res, nil
}

// GetItem returns a menu item by primary key.
func (r *Repo) GetItem(ctx context.Context, id uuid.UUID) (*domain.MenuItem, error) {
	query, args, err := postgres.Builder().
		Select("id", "name", "sku", "created_at").
		From("menu_items").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select menu_item: %w", err)
	}

	var out itemRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, postgres.MapError(err, "menu_item", id)
	}

	res := out.toDomain()
	return &res, nil
}

// ListItems returns all menu items ordered by name.
func (r *Repo) ListItems(ctx context.Context) ([]domain.MenuItem, error) {
	query, args, err := postgres.Builder().
		Select("id", "name", "sku", "created_at").
		From("menu_items").
		OrderBy("lower(name) ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list menu_item: %w", err)
	}

	var rows []itemRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "menu_item", uuid.Nil)
	}

	res := make([]domain.MenuItem, len(rows))
	for i, rw := range rows {
		res[i] = rw.toDomain()
	}
	return res, nil
}

// LockItem takes a FOR UPDATE lock on a menu item row. While it is held no
// other transaction can insert recipe lines for the item, since the line FK
// check needs a KEY SHARE lock on the same row. Must be called inside a
// transaction.
func (r *Repo) LockItem(ctx context.Context, id uuid.UUID) error {
	query, args, err := postgres.Builder().
		Select("id").
		From("menu_items").
		Where(squirrel.Eq{"id": id}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return fmt.Errorf("build lock menu_item: %w", err)
	}

	var locked uuid.UUID
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&locked); err != nil {
		return postgres.MapError(err, "menu_item", id)
	}
	return nil
}

// DeleteItem removes a menu item; its recipe lines go with it (ON DELETE CASCADE).
func (r *Repo) DeleteItem(ctx context.Context, id uuid.UUID) error {
	query, args, err := postgres.Builder().
		Delete("menu_items").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete menu_item: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "menu_item", id)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError("menu_item", id)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Recipe lines
// ---------------------------------------------------------------------------

// AddLine inserts a recipe line. Dangling references return domain.ErrNotFound
// naming the missing entity; a repeated (item, material) pair returns
// domain.ErrAlreadyExists.
func (r *Repo) AddLine(ctx context.Context, line *domain.RecipeLine) (*domain.RecipeLine, error) {
	query, args, err := postgres.Builder().
		Insert("recipe_lines").
		Columns("menu_item_id", "raw_material_id", "quantity_needed").
		Values(line.MenuItemID, line.RawMaterialID, line.QuantityNeeded).
		Suffix("RETURNING id, menu_item_id, raw_material_id, quantity_needed, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert recipe_line: %w", err)
	}

	var out struct {
		ID             uuid.UUID       `db:"id"`
		MenuItemID     uuid.UUID       `db:"menu_item_id"`
		RawMaterialID  uuid.UUID       `db:"raw_material_id"`
		QuantityNeeded decimal.Decimal `db:"quantity_needed"`
		CreatedAt      time.Time       `db:"created_at"`
	}
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		if postgres.HasCode(err, postgres.CodeForeignKeyViolation) {
			switch postgres.ConstraintName(err) {
			case fkMenuItem:
				return nil, domain.NewNotFoundError("menu_item", line.MenuItemID)
			case fkRawMaterial:
				return nil, domain.NewNotFoundError("raw_material", line.RawMaterialID)
			}
		}
		return nil, postgres.MapError(err, "recipe_line", uuid.Nil)
	}

	return &domain.RecipeLine{
		ID:             out.ID,
		MenuItemID:     out.MenuItemID,
		RawMaterialID:  out.RawMaterialID,
		QuantityNeeded: out.QuantityNeeded,
		CreatedAt:      out.CreatedAt,
	}, nil
}

// RemoveLine deletes a single recipe line.
func (r *Repo) RemoveLine(ctx context.Context, id uuid.UUID) error {
	query, args, err := postgres.Builder().
		Delete("recipe_lines").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete recipe_line: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "recipe_line", id)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError("recipe_line", id)
	}

	return nil
}

// CountLines returns how many recipe lines a menu item has.
func (r *Repo) CountLines(ctx context.Context, menuItemID uuid.UUID) (int, error) {
	query, args, err := postgres.Builder().
		Select("count(*)").
		From("recipe_lines").
		Where(squirrel.Eq{"menu_item_id": menuItemID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count recipe_line: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "menu_item", menuItemID)
	}
	return n, nil
}

// ListLines returns the recipe of a menu item joined with material details,
// ordered by material name.
func (r *Repo) ListLines(ctx context.Context, menuItemID uuid.UUID) ([]domain.RecipeLineDetail, error) {
	query, args, err := linesQuery(menuItemID).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list recipe_line: %w", err)
	}

	var rows []lineRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "menu_item", menuItemID)
	}

	res := make([]domain.RecipeLineDetail, len(rows))
	for i, rw := range rows {
		res[i] = domain.RecipeLineDetail{
			RecipeLine:   rw.toLine(),
			MaterialName: rw.MaterialName,
			MaterialUnit: domain.MaterialUnit(rw.MaterialUnit),
		}
	}
	return res, nil
}

// Components returns the resolved recipe of a menu item. An item without
// lines yields an empty slice; existence of the item is not checked here.
func (r *Repo) Components(ctx context.Context, menuItemID uuid.UUID) ([]domain.RecipeComponent, error) {
	query, args, err := linesQuery(menuItemID).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build resolve recipe: %w", err)
	}

	var rows []lineRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "menu_item", menuItemID)
	}

	res := make([]domain.RecipeComponent, len(rows))
	for i, rw := range rows {
		res[i] = domain.RecipeComponent{RawMaterialID: rw.RawMaterialID, QuantityPerUnit: rw.QuantityNeeded}
	}
	return res, nil
}

func linesQuery(menuItemID uuid.UUID) squirrel.SelectBuilder {
	return postgres.Builder().
		Select(
			"rl.id", "rl.menu_item_id", "rl.raw_material_id", "rl.quantity_needed", "rl.created_at",
			"rm.name AS material_name", "rm.unit AS material_unit",
		).
		From("recipe_lines rl").
		Join("raw_materials rm ON rm.id = rl.raw_material_id").
		Where(squirrel.Eq{"rl.menu_item_id": menuItemID}).
		OrderBy("lower(rm.name) ASC", "rl.id ASC")
}
