// Package ports defines the interfaces the domain needs from
// infrastructure.
package ports

import (
	"context"

	"github.com/smile-plzz/chronicle-core/internal/domain/entities"
)

// CatalogStore persists and retrieves the reference catalog. The
// engine itself never touches the store: commands load the catalog
// once at startup and hand the immutable value to the services.
type CatalogStore interface {
	// EnsureSchema creates the database schema if it doesn't exist.
	EnsureSchema(ctx context.Context) error

	// Close closes the store.
	Close() error

	// SaveLocations saves or updates locations.
	SaveLocations(ctx context.Context, locations []*entities.Location) error

	// SaveCharacters saves or updates characters, including their eras.
	// Roster order is preserved on load.
	SaveCharacters(ctx context.Context, characters []*entities.Character) error

	// SaveEpisodes saves or updates the episode sequence, including
	// movements and events. Global order is preserved on load.
	SaveEpisodes(ctx context.Context, episodes []*entities.Episode) error

	// LoadCatalog loads the full catalog.
	LoadCatalog(ctx context.Context) (*entities.Catalog, error)

	// CountEpisodes returns the number of stored episodes.
	CountEpisodes(ctx context.Context) (int, error)
}
