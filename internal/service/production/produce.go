package production

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/heartmarshall/kantin-backend/internal/domain"
	"github.com/heartmarshall/kantin-backend/internal/metrics"
)

// requirement is the total amount of one material a run needs.
type requirement struct {
	materialID uuid.UUID
	amount     decimal.Decimal
}

// Produce records a production run of input.Quantity units of a menu item.
//
// Either every ingredient is deducted and a PRODUCTION movement is written,
// or nothing changes. When stock does not cover the run the returned error
// is an *domain.InsufficientStockError listing every short material.
// After repeated transaction conflicts it gives up with
// domain.ErrConcurrencyExhausted; the request is then safe to retry.
func (s *Service) Produce(ctx context.Context, input ProduceInput) (*domain.DeductionReceipt, error) {
	ctx, span := s.tracer.Start(ctx, "production.Produce", trace.WithAttributes(
		attribute.String("menu_item.id", input.MenuItemID.String()),
		attribute.Int("production.quantity", input.Quantity),
	))
	defer span.End()

	caller, err := s.authz.Authorize(ctx, domain.ActionProduce)
	if err != nil {
		span.SetStatus(codes.Error, "unauthorized")
		return nil, err
	}

	if err := input.Validate(s.cfg.MaxProductionQuantity); err != nil {
		span.SetStatus(codes.Error, "invalid input")
		return nil, err
	}

	start := time.Now()
	receipt, err := s.produce(ctx, caller, input)
	s.metrics.ObserveProduction(outcomeOf(err), time.Since(start))

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, outcomeOf(err))
		s.logFailure(ctx, caller, input, err)
		return nil, err
	}

	span.SetAttributes(attribute.String("movement.id", receipt.MovementID.String()))
	s.log.InfoContext(ctx, "production recorded",
		slog.String("movement_id", receipt.MovementID.String()),
		slog.String("menu_item_id", input.MenuItemID.String()),
		slog.Int("quantity", input.Quantity),
		slog.String("actor_id", caller.ID.String()),
	)
	return receipt, nil
}

func (s *Service) produce(ctx context.Context, caller *domain.Account, input ProduceInput) (*domain.DeductionReceipt, error) {
	// The recipe is read outside the transaction. Its shape may be stale by
	// the time rows are locked; stock levels are always re-read under lock.
	item, components, err := s.recipes.ResolveItem(ctx, input.MenuItemID)
	if err != nil {
		return nil, fmt.Errorf("production.Produce: %w", err)
	}
	if len(components) == 0 {
		return nil, fmt.Errorf("production.Produce: menu_item %s: %w", item.ID, domain.ErrNoRecipe)
	}

	qty := decimal.NewFromInt(int64(input.Quantity))
	reqs := make([]requirement, len(components))
	for i, c := range components {
		reqs[i] = requirement{materialID: c.RawMaterialID, amount: c.QuantityPerUnit.Mul(qty)}
	}

	var receipt *domain.DeductionReceipt
	attempt := 0
	op := func() error {
		attempt++
		r, err := s.deductOnce(ctx, caller, item, input.Quantity, reqs, attempt)
		if err != nil {
			if errors.Is(err, domain.ErrConflict) {
				return err
			}
			return backoff.Permanent(err)
		}
		receipt = r
		return nil
	}

	notify := func(err error, wait time.Duration) {
		s.metrics.IncLedgerRetry()
		s.log.WarnContext(ctx, "ledger transaction conflict, retrying",
			slog.Int("attempt", attempt),
			slog.Duration("backoff", wait),
			slog.String("error", err.Error()),
		)
	}

	if err := backoff.RetryNotify(op, s.newBackOff(ctx), notify); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, fmt.Errorf("production.Produce: %d attempts: %w", attempt, domain.ErrConcurrencyExhausted)
		}
		return nil, fmt.Errorf("production.Produce: %w", err)
	}

	return receipt, nil
}

// deductOnce runs one attempt of the deduction transaction.
func (s *Service) deductOnce(
	ctx context.Context,
	caller *domain.Account,
	item *domain.MenuItem,
	quantity int,
	reqs []requirement,
	attempt int,
) (*domain.DeductionReceipt, error) {
	ctx, span := s.tracer.Start(ctx, "production.ledger_tx", trace.WithAttributes(
		attribute.Int("ledger.attempt", attempt),
		attribute.Int("ledger.materials", len(reqs)),
	))
	defer span.End()

	var receipt *domain.DeductionReceipt
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		ids := make([]uuid.UUID, len(reqs))
		for i, r := range reqs {
			ids[i] = r.materialID
		}

		locked, err := s.ledger.LockMaterials(txCtx, ids)
		if err != nil {
			return fmt.Errorf("lock materials: %w", err)
		}
		byID := make(map[uuid.UUID]domain.RawMaterial, len(locked))
		for _, m := range locked {
			byID[m.ID] = m
		}

		var shortfalls []domain.Shortfall
		for _, r := range reqs {
			m, ok := byID[r.materialID]
			if !ok {
				return domain.NewNotFoundError("raw_material", r.materialID)
			}
			if m.CurrentStock.LessThan(r.amount) {
				shortfalls = append(shortfalls, domain.Shortfall{
					RawMaterialID: m.ID,
					Name:          m.Name,
					Unit:          m.Unit,
					Required:      r.amount,
					Available:     m.CurrentStock,
				})
			}
		}
		if len(shortfalls) > 0 {
			slices.SortFunc(shortfalls, func(a, b domain.Shortfall) int {
				return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
			})
			return &domain.InsufficientStockError{Shortfalls: shortfalls}
		}

		deductions := make([]domain.Deduction, 0, len(reqs))
		lines := make([]domain.MovementLine, 0, len(reqs))
		for _, r := range reqs {
			m := byID[r.materialID]
			remaining, err := s.ledger.Deduct(txCtx, m.ID, r.amount)
			if err != nil {
				return fmt.Errorf("deduct %s: %w", m.Name, err)
			}
			deductions = append(deductions, domain.Deduction{
				RawMaterialID: m.ID,
				Name:          m.Name,
				Unit:          m.Unit,
				Amount:        r.amount,
				Remaining:     remaining,
			})
			lines = append(lines, domain.MovementLine{
				RawMaterialID: m.ID,
				MaterialName:  m.Name,
				Unit:          m.Unit,
				Delta:         r.amount.Neg(),
			})
		}

		itemID := item.ID
		movement := &domain.Movement{
			Kind:         domain.MovementKindProduction,
			MenuItemID:   &itemID,
			MenuItemName: item.Name,
			Quantity:     decimal.NewFromInt(int64(quantity)),
			ActorID:      caller.ID,
			Lines:        lines,
		}
		if err := s.ledger.AppendMovement(txCtx, movement); err != nil {
			return fmt.Errorf("append movement: %w", err)
		}

		receipt = &domain.DeductionReceipt{
			MovementID: movement.ID,
			MenuItemID: item.ID,
			Quantity:   quantity,
			Lines:      deductions,
			ProducedAt: movement.CreatedAt,
		}
		return nil
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "transaction failed")
		return nil, err
	}

	return receipt, nil
}

// newBackOff builds the retry policy: exponential delays, at most
// MaxAttempts tries in total, stopped early when ctx is done.
func (s *Service) newBackOff(ctx context.Context) backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = s.cfg.InitialBackoff
	b.MaxInterval = s.cfg.MaxBackoff
	b.MaxElapsedTime = 0

	retries := s.cfg.MaxAttempts - 1
	if retries < 0 {
		retries = 0
	}
	return backoff.WithContext(backoff.WithMaxRetries(b, uint64(retries)), ctx)
}

func (s *Service) logFailure(ctx context.Context, caller *domain.Account, input ProduceInput, err error) {
	attrs := []any{
		slog.String("menu_item_id", input.MenuItemID.String()),
		slog.Int("quantity", input.Quantity),
		slog.String("actor_id", caller.ID.String()),
		slog.String("error", err.Error()),
	}

	switch {
	case errors.Is(err, domain.ErrInsufficientStock),
		errors.Is(err, domain.ErrNoRecipe),
		errors.Is(err, domain.ErrNotFound):
		s.log.InfoContext(ctx, "production rejected", attrs...)
	default:
		s.log.ErrorContext(ctx, "production failed", attrs...)
	}
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case errors.Is(err, domain.ErrInsufficientStock):
		return metrics.OutcomeInsufficient
	case errors.Is(err, domain.ErrConcurrencyExhausted):
		return metrics.OutcomeExhausted
	default:
		return metrics.OutcomeError
	}
}
