package production

import (
	"context"
	"fmt"
	"time"

	"github.com/heartmarshall/kantin-backend/internal/domain"
)

// History returns inventory movements newest first.
func (s *Service) History(ctx context.Context, input HistoryInput) ([]domain.Movement, error) {
	if _, err := s.authz.Authorize(ctx, domain.ActionReadHistory); err != nil {
		return nil, err
	}

	input, err := input.normalize()
	if err != nil {
		return nil, err
	}

	movements, err := s.ledger.ListMovements(ctx, input.Limit, input.Offset)
	if err != nil {
		return nil, fmt.Errorf("production.History: %w", err)
	}
	return movements, nil
}

// LastActivity returns the time of the latest movement, or nil when the
// log is empty.
func (s *Service) LastActivity(ctx context.Context) (*time.Time, error) {
	if _, err := s.authz.Authorize(ctx, domain.ActionReadHistory); err != nil {
		return nil, err
	}

	at, err := s.ledger.LastActivity(ctx)
	if err != nil {
		return nil, fmt.Errorf("production.LastActivity: %w", err)
	}
	return at, nil
}
