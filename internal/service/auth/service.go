// Package auth implements account registration and token issuance.
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/kantin-backend/internal/config"
	"github.com/heartmarshall/kantin-backend/internal/domain"
)

// accountRepo defines the account repository interface needed by auth service.
type accountRepo interface {
	Create(ctx context.Context, a *domain.Account) (*domain.Account, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
}

// credentialRepo defines the password credential repository interface needed by auth service.
type credentialRepo interface {
	CreateCredential(ctx context.Context, c *domain.Credential) error
	GetCredential(ctx context.Context, accountID uuid.UUID) (*domain.Credential, error)
}

// tokenRepo defines the refresh token repository interface needed by auth service.
type tokenRepo interface {
	Create(ctx context.Context, accountID uuid.UUID, tokenHash string, expiresAt time.Time) (*domain.RefreshToken, error)
	GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error)
	RevokeByID(ctx context.Context, id uuid.UUID) error
	RevokeAllByAccount(ctx context.Context, accountID uuid.UUID) error
	DeleteExpired(ctx context.Context) (int, error)
}

// txManager defines the transaction manager interface needed by auth service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// jwtManager defines the JWT token management interface needed by auth service.
type jwtManager interface {
	GenerateAccessToken(accountID uuid.UUID) (string, error)
	ValidateAccessToken(token string) (uuid.UUID, error)
	GenerateRefreshToken() (raw string, hash string, err error)
}

// passwordHasher hashes and verifies passwords.
type passwordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// Service implements auth operations.
type Service struct {
	log         *slog.Logger
	accounts    accountRepo
	credentials credentialRepo
	tokens      tokenRepo
	tx          txManager
	jwt         jwtManager
	passwords   passwordHasher
	cfg         config.AuthConfig
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	accounts accountRepo,
	credentials credentialRepo,
	tokens tokenRepo,
	tx txManager,
	jwt jwtManager,
	passwords passwordHasher,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:         logger.With("service", "auth"),
		accounts:    accounts,
		credentials: credentials,
		tokens:      tokens,
		tx:          tx,
		jwt:         jwt,
		passwords:   passwords,
		cfg:         cfg,
	}
}

// issueTokens generates access and refresh tokens for the given account,
// stores the refresh token hash, and returns an AuthResult.
func (s *Service) issueTokens(ctx context.Context, account *domain.Account) (*AuthResult, error) {
	accessToken, err := s.jwt.GenerateAccessToken(account.ID)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	rawRefresh, hashRefresh, err := s.jwt.GenerateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	if _, err := s.tokens.Create(ctx, account.ID, hashRefresh, time.Now().Add(s.cfg.RefreshTokenTTL)); err != nil {
		return nil, fmt.Errorf("store refresh token: %w", err)
	}

	return &AuthResult{
		AccessToken:  accessToken,
		RefreshToken: rawRefresh,
		ExpiresIn:    s.cfg.AccessTokenTTL,
		Account:      account,
	}, nil
}
