package inventory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/kantin-backend/internal/domain"
)

// CreateMaterial registers a new raw material. Names are unique ignoring case.
func (s *Service) CreateMaterial(ctx context.Context, input CreateMaterialInput) (*domain.RawMaterial, error) {
	caller, err := s.authz.Authorize(ctx, domain.ActionManageMaterials)
	if err != nil {
		return nil, err
	}

	input.Name = domain.NormalizeName(input.Name)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	material, err := s.materials.Create(ctx, &domain.RawMaterial{
		Name:         input.Name,
		Unit:         input.Unit,
		CurrentStock: input.InitialStock,
	})
	if err != nil {
		return nil, fmt.Errorf("inventory.CreateMaterial: %w", err)
	}

	s.log.InfoContext(ctx, "material created",
		slog.String("material_id", material.ID.String()),
		slog.String("name", material.Name),
		slog.String("actor_id", caller.ID.String()),
	)

	return material, nil
}

// GetMaterial returns a single material.
func (s *Service) GetMaterial(ctx context.Context, id uuid.UUID) (*domain.RawMaterial, error) {
	if _, err := s.authz.Authorize(ctx, domain.ActionReadInventory); err != nil {
		return nil, err
	}

	material, err := s.materials.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("inventory.GetMaterial: %w", err)
	}
	return material, nil
}

// ListMaterials returns all materials ordered by name.
func (s *Service) ListMaterials(ctx context.Context) ([]domain.RawMaterial, error) {
	if _, err := s.authz.Authorize(ctx, domain.ActionReadInventory); err != nil {
		return nil, err
	}

	materials, err := s.materials.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("inventory.ListMaterials: %w", err)
	}
	return materials, nil
}

// Restock adds delta to the stock of a material and records a RESTOCK
// movement in the same transaction. The increment is applied by the
// database so concurrent restocks and production runs never lose updates.
func (s *Service) Restock(ctx context.Context, input RestockInput) (*domain.RawMaterial, error) {
	caller, err := s.authz.Authorize(ctx, domain.ActionRestock)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var material *domain.RawMaterial
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var addErr error
		material, addErr = s.materials.AddStock(txCtx, input.MaterialID, input.Delta)
		if addErr != nil {
			return fmt.Errorf("add stock: %w", addErr)
		}

		movement := &domain.Movement{
			Kind:     domain.MovementKindRestock,
			Quantity: input.Delta,
			ActorID:  caller.ID,
			Lines: []domain.MovementLine{{
				RawMaterialID: material.ID,
				MaterialName:  material.Name,
				Unit:          material.Unit,
				Delta:         input.Delta,
			}},
		}
		if err := s.movements.AppendMovement(txCtx, movement); err != nil {
			return fmt.Errorf("append movement: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("inventory.Restock: %w", err)
	}

	s.metrics.IncRestock()
	s.log.InfoContext(ctx, "material restocked",
		slog.String("material_id", material.ID.String()),
		slog.String("delta", input.Delta.String()),
		slog.String("stock", material.CurrentStock.String()),
		slog.String("actor_id", caller.ID.String()),
	)

	return material, nil
}

// DeleteMaterial removes a material. It fails with ErrMaterialInUse while
// any recipe line still references it.
func (s *Service) DeleteMaterial(ctx context.Context, id uuid.UUID) error {
	caller, err := s.authz.Authorize(ctx, domain.ActionManageMaterials)
	if err != nil {
		return err
	}

	if err := s.materials.Delete(ctx, id); err != nil {
		return fmt.Errorf("inventory.DeleteMaterial: %w", err)
	}

	s.log.InfoContext(ctx, "material deleted",
		slog.String("material_id", id.String()),
		slog.String("actor_id", caller.ID.String()),
	)
	return nil
}
