// Package user implements the account and credential repository using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/kantin-backend/internal/adapter/postgres"
	"github.com/heartmarshall/kantin-backend/internal/domain"
)

var accountColumns = []string{"id", "email", "role", "created_at", "updated_at"}

// Repo provides account and credential persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type accountRow struct {
	ID        uuid.UUID `db:"id"`
	Email     string    `db:"email"`
	Role      string    `db:"role"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r accountRow) toDomain() domain.Account {
	return domain.Account{
		ID:        r.ID,
		Email:     r.Email,
		Role:      domain.UserRole(r.Role),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// ---------------------------------------------------------------------------
// Accounts
// ---------------------------------------------------------------------------

// Create inserts an account. A duplicate email returns domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, a *domain.Account) (*domain.Account, error) {
	query, args, err := postgres.Builder().
		Insert("users").
		Columns("email", "role").
		Values(a.Email, string(a.Role)).
		Suffix("RETURNING id, email, role, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert user: %w", err)
	}

	return r.getOne(ctx, query, args, uuid.Nil)
}

// GetByID returns an account by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	query, args, err := postgres.Builder().
		Select(accountColumns...).
		From("users").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select user: %w", err)
	}

	return r.getOne(ctx, query, args, id)
}

// GetByEmail returns an account by (normalized) email.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	query, args, err := postgres.Builder().
		Select(accountColumns...).
		From("users").
		Where(squirrel.Eq{"email": email}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select user: %w", err)
	}

	return r.getOne(ctx, query, args, uuid.Nil)
}

// List returns all accounts ordered by email.
func (r *Repo) List(ctx context.Context) ([]domain.Account, error) {
	query, args, err := postgres.Builder().
		Select(accountColumns...).
		From("users").
		OrderBy("email ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list user: %w", err)
	}

	var rows []accountRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}

	res := make([]domain.Account, len(rows))
	for i, rw := range rows {
		res[i] = rw.toDomain()
	}
	return res, nil
}

// UpdateRole changes the role of an account.
func (r *Repo) UpdateRole(ctx context.Context, id uuid.UUID, role domain.UserRole) (*domain.Account, error) {
	query, args, err := postgres.Builder().
		Update("users").
		Set("role", string(role)).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id, email, role, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update user role: %w", err)
	}

	return r.getOne(ctx, query, args, id)
}

// Delete removes an account. Credentials and refresh tokens cascade.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := postgres.Builder().
		Delete("users").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete user: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError("user", id)
	}
	return nil
}

func (r *Repo) getOne(ctx context.Context, query string, args []any, id uuid.UUID) (*domain.Account, error) {
	var out accountRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	a := out.toDomain()
	return &a, nil
}

// ---------------------------------------------------------------------------
// Credentials
// ---------------------------------------------------------------------------

// CreateCredential stores the password hash of an account.
func (r *Repo) CreateCredential(ctx context.Context, c *domain.Credential) error {
	query, args, err := postgres.Builder().
		Insert("auth_credentials").
		Columns("user_id", "password_hash").
		Values(c.AccountID, c.PasswordHash).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert credential: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "credential", c.AccountID)
	}
	return nil
}

// GetCredential returns the password credential of an account.
func (r *Repo) GetCredential(ctx context.Context, accountID uuid.UUID) (*domain.Credential, error) {
	query, args, err := postgres.Builder().
		Select("user_id", "password_hash", "created_at").
		From("auth_credentials").
		Where(squirrel.Eq{"user_id": accountID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select credential: %w", err)
	}

	var out struct {
		UserID       uuid.UUID `db:"user_id"`
		PasswordHash string    `db:"password_hash"`
		CreatedAt    time.Time `db:"created_at"`
	}
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, postgres.MapError(err, "credential", accountID)
	}

	return &domain.Credential{AccountID: out.UserID, PasswordHash: out.PasswordHash, CreatedAt: out.CreatedAt}, nil
}
