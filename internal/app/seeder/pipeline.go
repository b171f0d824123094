package seeder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/kantin-backend/internal/domain"
)

// allPhases defines the canonical execution order. Later phases resolve
// names created by earlier ones.
var allPhases = []string{"materials", "menu_items", "recipes"}

// PhaseResult holds the outcome of a single pipeline phase.
type PhaseResult struct {
	Inserted int
	Skipped  int
	Duration time.Duration
}

// Pipeline orchestrates the seeding phases.
type Pipeline struct {
	log       *slog.Logger
	materials MaterialRepo
	menu      MenuRepo
	tx        TxManager
	fixture   Fixture
	results   map[string]PhaseResult

	// name indexes, keyed by lowercased name
	materialIDs map[string]uuid.UUID
	itemIDs     map[string]uuid.UUID
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, materials MaterialRepo, menu MenuRepo, tx TxManager, fixture Fixture) *Pipeline {
	return &Pipeline{
		log:       log,
		materials: materials,
		menu:      menu,
		tx:        tx,
		fixture:   fixture,
		results:   make(map[string]PhaseResult),
	}
}

// Results returns phase results after Run completes.
func (p *Pipeline) Results() map[string]PhaseResult {
	return p.results
}

// Run executes the pipeline in a single transaction. If phases is
// non-empty, only the listed phases run. Rows whose name already exists
// are skipped. In dry-run mode the transaction is rolled back after all
// phases have run, so the results show what would have been written.
func (p *Pipeline) Run(ctx context.Context, phases []string) error {
	toRun, err := selectPhases(phases)
	if err != nil {
		return err
	}

	clear(p.results)

	err = p.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := p.loadIndexes(ctx); err != nil {
			return err
		}

		for _, phase := range toRun {
			start := time.Now()
			p.log.Info("starting phase", slog.String("phase", phase))

			var (
				result PhaseResult
				err    error
			)
			switch phase {
			case "materials":
				result, err = p.runMaterials(ctx)
			case "menu_items":
				result, err = p.runMenuItems(ctx)
			case "recipes":
				result, err = p.runRecipes(ctx)
			}
			if err != nil {
				return fmt.Errorf("phase %s: %w", phase, err)
			}

			result.Duration = time.Since(start)
			p.results[phase] = result

			p.log.Info("phase completed",
				slog.String("phase", phase),
				slog.Int("inserted", result.Inserted),
				slog.Int("skipped", result.Skipped),
				slog.Duration("duration", result.Duration),
			)
		}

		if p.fixture.DryRun {
			return errDryRun
		}
		return nil
	})
	if err != nil && !errors.Is(err, errDryRun) {
		return err
	}

	p.log.Info("pipeline completed",
		slog.Int("phases_run", len(toRun)),
		slog.Bool("dry_run", p.fixture.DryRun),
	)
	return nil
}

// errDryRun rolls the seeding transaction back.
var errDryRun = errors.New("dry run")

func selectPhases(phases []string) ([]string, error) {
	if len(phases) == 0 {
		return allPhases, nil
	}

	filter := make(map[string]bool, len(phases))
	for _, ph := range phases {
		filter[ph] = true
	}

	var toRun []string
	for _, ph := range allPhases {
		if filter[ph] {
			toRun = append(toRun, ph)
			delete(filter, ph)
		}
	}
	for ph := range filter {
		return nil, fmt.Errorf("unknown phase %q", ph)
	}
	return toRun, nil
}

func (p *Pipeline) loadIndexes(ctx context.Context) error {
	materials, err := p.materials.List(ctx)
	if err != nil {
		return fmt.Errorf("list materials: %w", err)
	}
	p.materialIDs = make(map[string]uuid.UUID, len(materials))
	for _, m := range materials {
		p.materialIDs[strings.ToLower(m.Name)] = m.ID
	}

	items, err := p.menu.ListItems(ctx)
	if err != nil {
		return fmt.Errorf("list menu items: %w", err)
	}
	p.itemIDs = make(map[string]uuid.UUID, len(items))
	for _, it := range items {
		p.itemIDs[strings.ToLower(it.Name)] = it.ID
	}
	return nil
}

func (p *Pipeline) runMaterials(ctx context.Context) (PhaseResult, error) {
	var result PhaseResult

	for _, f := range p.fixture.Materials {
		key := strings.ToLower(f.Name)
		if _, ok := p.materialIDs[key]; ok {
			result.Skipped++
			continue
		}

		stock := decimal.Zero
		if f.Stock != "" {
			stock = decimal.RequireFromString(f.Stock)
		}

		created, err := p.materials.Create(ctx, &domain.RawMaterial{
			Name:         f.Name,
			Unit:         domain.MaterialUnit(f.Unit),
			CurrentStock: stock,
		})
		if err != nil {
			return result, fmt.Errorf("create material %q: %w", f.Name, err)
		}

		p.materialIDs[key] = created.ID
		result.Inserted++
	}

	return result, nil
}

func (p *Pipeline) runMenuItems(ctx context.Context) (PhaseResult, error) {
	var result PhaseResult

	for _, f := range p.fixture.MenuItems {
		key := strings.ToLower(f.Name)
		if _, ok := p.itemIDs[key]; ok {
			result.Skipped++
			continue
		}

		item := &domain.MenuItem{Name: f.Name}
		if f.SKU != "" {
			item.SKU = &f.SKU
		}

		created, err := p.menu.CreateItem(ctx, item)
		if err != nil {
			return result, fmt.Errorf("create menu item %q: %w", f.Name, err)
		}

		p.itemIDs[key] = created.ID
		result.Inserted++
	}

	return result, nil
}

func (p *Pipeline) runRecipes(ctx context.Context) (PhaseResult, error) {
	var result PhaseResult

	for _, f := range p.fixture.MenuItems {
		if len(f.Recipe) == 0 {
			continue
		}

		itemID, ok := p.itemIDs[strings.ToLower(f.Name)]
		if !ok {
			return result, fmt.Errorf("menu item %q does not exist", f.Name)
		}

		existing, err := p.menu.ListLines(ctx, itemID)
		if err != nil {
			return result, fmt.Errorf("list recipe of %q: %w", f.Name, err)
		}
		present := make(map[uuid.UUID]bool, len(existing))
		for _, l := range existing {
			present[l.RawMaterialID] = true
		}

		for _, line := range f.Recipe {
			materialID, ok := p.materialIDs[strings.ToLower(line.Material)]
			if !ok {
				return result, fmt.Errorf("recipe of %q: material %q does not exist", f.Name, line.Material)
			}
			if present[materialID] {
				result.Skipped++
				continue
			}

			_, err := p.menu.AddLine(ctx, &domain.RecipeLine{
				MenuItemID:     itemID,
				RawMaterialID:  materialID,
				QuantityNeeded: decimal.RequireFromString(line.Quantity),
			})
			if err != nil {
				return result, fmt.Errorf("add recipe line %q to %q: %w", line.Material, f.Name, err)
			}
			result.Inserted++
		}
	}

	return result, nil
}
