package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/smile-plzz/chronicle-core/internal/application/handlers"
	"github.com/smile-plzz/chronicle-core/internal/domain/services"
	"github.com/smile-plzz/chronicle-core/internal/infrastructure/catalogdb/sqlite"
	"github.com/smile-plzz/chronicle-core/internal/infrastructure/config"
)

// Deps holds high-level dependencies for commands. Only handlers are
// exposed - services and the store are wired internally.
type Deps struct {
	Config *config.Config
	Engine *handlers.EngineHandler
}

// withStore loads config, opens the catalog store, and calls the
// provided function. It handles cleanup automatically.
func withStore(ctx context.Context, fn func(*config.Config, *sqlite.Store) error) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	store, err := sqlite.NewStore(cfg.SQLite)
	if err != nil {
		return fmt.Errorf("creating catalog store: %w", err)
	}
	defer store.Close()

	if err := store.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("ensuring catalog schema: %w", err)
	}

	return fn(cfg, store)
}

// withEngine loads the catalog once and builds the derivation engine
// around it, then calls the provided function.
func withEngine(ctx context.Context, fn func(*Deps) error) error {
	return withStore(ctx, func(cfg *config.Config, store *sqlite.Store) error {
		catalog, err := store.LoadCatalog(ctx)
		if err != nil {
			return fmt.Errorf("loading catalog: %w", err)
		}
		if catalog.EpisodeCount() == 0 {
			return fmt.Errorf("catalog is empty (run 'chronicle import' first)")
		}

		starts := services.StartConfig{
			ByHouse: cfg.Engine.StartingLocations,
			Default: cfg.Engine.DefaultStart,
		}
		history := services.NewHistory(catalog, starts)
		positions := services.NewPositionService(history)

		engine := handlers.NewEngineHandler(
			services.NewTimeline(catalog),
			positions,
			services.NewPathService(catalog, cfg.Engine.CurveOffset),
			services.NewStatsService(history),
			services.NewCameraService(positions, cfg.Engine.ZoomMin, cfg.Engine.ZoomMax),
			services.NewEraService(catalog),
			history,
		)

		return fn(&Deps{Config: cfg, Engine: engine})
	})
}

// parseOverrides parses repeated CHARACTER=LOCATION placement flags
// into a simulation override map.
func parseOverrides(placements []string) (map[string]string, error) {
	if len(placements) == 0 {
		return nil, nil
	}
	overrides := make(map[string]string, len(placements))
	for _, p := range placements {
		parts := strings.SplitN(p, "=", 2)
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			return nil, fmt.Errorf("invalid placement %q (expected CHARACTER=LOCATION)", p)
		}
		overrides[parts[0]] = parts[1]
	}
	return overrides, nil
}

// reportSkipped prints reference errors collected while folding.
func reportSkipped(skipped []services.SkippedRecord) {
	if len(skipped) == 0 {
		return
	}
	fmt.Fprintf(os.Stderr, "skipped %d record(s) with unknown references:\n", len(skipped))
	for _, rec := range skipped {
		fmt.Fprintf(os.Stderr, "  %s\n", rec)
	}
}
