// Command seeder loads a catalog fixture (raw materials, menu items and
// recipes) from YAML. Existing rows are left untouched, so the command is
// safe to re-run. It is intended to be run offline, not as part of the
// main server.
//
// Flags:
//
//	--fixture  path to the catalog YAML file (required)
//	--phase    comma-separated list of phases to run (default: all)
//	--dry-run  run every phase and roll back
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/heartmarshall/kantin-backend/internal/adapter/postgres"
	"github.com/heartmarshall/kantin-backend/internal/adapter/postgres/material"
	"github.com/heartmarshall/kantin-backend/internal/adapter/postgres/menu"
	"github.com/heartmarshall/kantin-backend/internal/app"
	"github.com/heartmarshall/kantin-backend/internal/app/seeder"
	"github.com/heartmarshall/kantin-backend/internal/config"
)

// Compile-time interface assertions.
var (
	_ seeder.MaterialRepo = (*material.Repo)(nil)
	_ seeder.MenuRepo     = (*menu.Repo)(nil)
)

func main() {
	fixtureFlag := flag.String("fixture", "", "path to catalog YAML file")
	phaseFlag := flag.String("phase", "", "comma-separated phases to run (default: all)")
	dryRunFlag := flag.Bool("dry-run", false, "run every phase and roll back")
	flag.Parse()

	// Load app config (for DB connection).
	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	fixture, err := seeder.LoadFixture(*fixtureFlag)
	if err != nil {
		logger.Error("load fixture", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// CLI flags override the fixture.
	if *dryRunFlag {
		fixture.DryRun = true
	}

	var phases []string
	if *phaseFlag != "" {
		for ph := range strings.SplitSeq(*phaseFlag, ",") {
			phases = append(phases, strings.TrimSpace(ph))
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, appCfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	pipeline := seeder.NewPipeline(logger, material.New(pool), menu.New(pool), postgres.NewTxManager(pool), *fixture)
	if err := pipeline.Run(ctx, phases); err != nil {
		logger.Error("pipeline failed", slog.String("error", err.Error()))
		pool.Close()
		os.Exit(1)
	}

	logger.Info("pipeline completed successfully")
}
