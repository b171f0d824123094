package seeder

import (
	"fmt"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/kantin-backend/internal/domain"
)

// Fixture is a catalog described in YAML:
//
//	materials:
//	  - {name: Flour, unit: grams, stock: "5000"}
//	menu_items:
//	  - name: Pancake
//	    sku: PAN-1
//	    recipe:
//	      - {material: Flour, quantity: "200"}
//
// Recipe lines refer to materials by name, either from the same fixture
// or already present in the database.
type Fixture struct {
	Materials []MaterialFixture `yaml:"materials"`
	MenuItems []MenuItemFixture `yaml:"menu_items"`
	DryRun    bool              `yaml:"dry_run" env:"SEEDER_DRY_RUN"`
}

// MaterialFixture is one raw material with its opening stock.
type MaterialFixture struct {
	Name  string `yaml:"name"`
	Unit  string `yaml:"unit"`
	Stock string `yaml:"stock"`
}

// MenuItemFixture is one menu item and its recipe.
type MenuItemFixture struct {
	Name   string          `yaml:"name"`
	SKU    string          `yaml:"sku"`
	Recipe []RecipeFixture `yaml:"recipe"`
}

// RecipeFixture is one recipe line of a menu item.
type RecipeFixture struct {
	Material string `yaml:"material"`
	Quantity string `yaml:"quantity"`
}

// LoadFixture reads a fixture from a YAML file. SEEDER_DRY_RUN overrides
// the file's dry_run flag.
func LoadFixture(path string) (*Fixture, error) {
	if path == "" {
		return nil, fmt.Errorf("seeder fixture: path is required")
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("seeder fixture: file %s not found", path)
	}

	var f Fixture
	if err := cleanenv.ReadConfig(path, &f); err != nil {
		return nil, fmt.Errorf("seeder fixture: read %s: %w", path, err)
	}

	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks every entry and normalizes names in place. All problems
// are reported together.
func (f *Fixture) Validate() error {
	var errs []domain.FieldError
	add := func(field, msg string) {
		errs = append(errs, domain.FieldError{Field: field, Message: msg})
	}

	seen := make(map[string]bool, len(f.Materials))
	for i := range f.Materials {
		m := &f.Materials[i]
		field := fmt.Sprintf("materials[%d]", i)

		m.Name = domain.NormalizeName(m.Name)
		if m.Name == "" {
			add(field+".name", "required")
		} else if seen[strings.ToLower(m.Name)] {
			add(field+".name", "duplicate")
		}
		seen[strings.ToLower(m.Name)] = true

		if !domain.MaterialUnit(m.Unit).IsValid() {
			add(field+".unit", "must be one of grams, ml, pieces")
		}
		if m.Stock != "" {
			if d, err := decimal.NewFromString(m.Stock); err != nil || d.IsNegative() {
				add(field+".stock", "must be a non-negative decimal")
			}
		}
	}

	for i := range f.MenuItems {
		item := &f.MenuItems[i]
		field := fmt.Sprintf("menu_items[%d]", i)

		item.Name = domain.NormalizeName(item.Name)
		item.SKU = strings.TrimSpace(item.SKU)
		if item.Name == "" {
			add(field+".name", "required")
		}

		used := make(map[string]bool, len(item.Recipe))
		for j := range item.Recipe {
			line := &item.Recipe[j]
			lineField := fmt.Sprintf("%s.recipe[%d]", field, j)

			line.Material = domain.NormalizeName(line.Material)
			if line.Material == "" {
				add(lineField+".material", "required")
			} else if used[strings.ToLower(line.Material)] {
				add(lineField+".material", "duplicate")
			}
			used[strings.ToLower(line.Material)] = true

			if d, err := decimal.NewFromString(line.Quantity); err != nil || !d.IsPositive() {
				add(lineField+".quantity", "must be a positive decimal")
			}
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
