package integration

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/smile-plzz/chronicle-core/internal/application/handlers"
	"github.com/smile-plzz/chronicle-core/internal/domain/services"
	"github.com/smile-plzz/chronicle-core/internal/infrastructure/catalogdb/sqlite"
	"github.com/smile-plzz/chronicle-core/internal/infrastructure/config"
	"github.com/smile-plzz/chronicle-core/internal/infrastructure/parsers"
)

// testCatalogJSON is a small but complete chronology: three locations,
// two characters, three episodes with a death and an event.
const testCatalogJSON = `{
	"locations": [
		{"id": "WINTERFELL", "name": "Winterfell", "x": 20, "y": 20, "region": "The North"},
		{"id": "KINGS_LANDING", "name": "King's Landing", "x": 50, "y": 70, "region": "The Crownlands"},
		{"id": "PENTOS", "name": "Pentos", "x": 80, "y": 30, "region": "Essos"}
	],
	"characters": [
		{"id": "NED", "name": "Eddard Stark", "house": "Stark", "icon": "N"},
		{"id": "DAENERYS", "name": "Daenerys Targaryen", "house": "Targaryen", "icon": "D",
		 "eras": [{"at_episode": 0, "icon": "D"}, {"at_episode": 2, "icon": "Q"}]}
	],
	"episodes": [
		{"season": 1, "number": 1, "title": "Winter Is Coming"},
		{"season": 1, "number": 2, "title": "The Kingsroad", "movements": [
			{"character_id": "NED", "from_location_id": "WINTERFELL", "to_location_id": "KINGS_LANDING"}
		]},
		{"season": 1, "number": 3, "title": "Baelor", "movements": [
			{"character_id": "NED", "from_location_id": "KINGS_LANDING", "to_location_id": "KINGS_LANDING", "is_dead": true}
		], "events": [
			{"title": "The Execution", "location_id": "KINGS_LANDING", "type": "death"}
		]}
	]
}`

// newTestStore opens a fresh sqlite store under a temp directory.
func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	store, err := sqlite.NewStore(config.SQLiteConfig{
		Path: filepath.Join(t.TempDir(), "catalog.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	require.NoError(t, store.EnsureSchema(context.Background()))
	return store
}

// importTestCatalog parses testCatalogJSON and imports it into the store.
func importTestCatalog(t *testing.T, store *sqlite.Store) *handlers.ImportResult {
	t.Helper()

	parser := parsers.ForFormat("json")
	raw, err := parser.Parse(strings.NewReader(testCatalogJSON))
	require.NoError(t, err)

	result, err := handlers.NewImportHandler(store).Handle(context.Background(), raw, handlers.ImportOptions{})
	require.NoError(t, err)
	return result
}

// newTestEngine reloads the catalog from the store and wires the full
// derivation engine the way the CLI does.
func newTestEngine(t *testing.T, store *sqlite.Store) *handlers.EngineHandler {
	t.Helper()

	catalog, err := store.LoadCatalog(context.Background())
	require.NoError(t, err)

	cfg := config.Default()
	starts := services.StartConfig{
		ByHouse: cfg.Engine.StartingLocations,
		Default: cfg.Engine.DefaultStart,
	}
	history := services.NewHistory(catalog, starts)
	positions := services.NewPositionService(history)

	return handlers.NewEngineHandler(
		services.NewTimeline(catalog),
		positions,
		services.NewPathService(catalog, cfg.Engine.CurveOffset),
		services.NewStatsService(history),
		services.NewCameraService(positions, cfg.Engine.ZoomMin, cfg.Engine.ZoomMax),
		services.NewEraService(catalog),
		history,
	)
}
