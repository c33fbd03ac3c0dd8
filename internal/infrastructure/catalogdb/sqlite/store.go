// Package sqlite provides a SQLite implementation of the CatalogStore
// interface.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/smile-plzz/chronicle-core/internal/domain/entities"
	"github.com/smile-plzz/chronicle-core/internal/infrastructure/config"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store implements ports.CatalogStore using SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite catalog store.
func NewStore(cfg config.SQLiteConfig) (*Store, error) {
	if cfg.Path == "" {
		return nil, errors.New("sqlite path is required")
	}

	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}

	// Enable foreign keys for referential integrity
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	// Enable WAL mode for better concurrent read/write performance
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	// Set busy timeout to avoid "database is locked" errors
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	return &Store{
		db:   db,
		path: cfg.Path,
	}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// EnsureSchema creates the database schema if it doesn't exist.
func (s *Store) EnsureSchema(ctx context.Context) error {
	schema := `
	-- Fixed map locations
	CREATE TABLE IF NOT EXISTS locations (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		x REAL NOT NULL,
		y REAL NOT NULL,
		region TEXT NOT NULL DEFAULT '',
		importance INTEGER NOT NULL DEFAULT 0,
		description TEXT NOT NULL DEFAULT ''
	);

	-- Character roster (position preserves catalog order)
	CREATE TABLE IF NOT EXISTS characters (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		house TEXT NOT NULL DEFAULT '',
		color TEXT NOT NULL DEFAULT '',
		icon TEXT NOT NULL DEFAULT '',
		bio TEXT NOT NULL DEFAULT '',
		position INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_characters_position ON characters(position);

	-- Per-character era overrides, ordered by position
	CREATE TABLE IF NOT EXISTS eras (
		character_id TEXT NOT NULL REFERENCES characters(id) ON DELETE CASCADE,
		position INTEGER NOT NULL,
		at_episode INTEGER NOT NULL,
		icon TEXT NOT NULL,
		PRIMARY KEY (character_id, position)
	);

	-- The global episode sequence (idx is the engine's cursor index)
	CREATE TABLE IF NOT EXISTS episodes (
		idx INTEGER PRIMARY KEY,
		season INTEGER NOT NULL,
		number INTEGER NOT NULL,
		title TEXT NOT NULL DEFAULT ''
	);

	-- Movement records, ordered within an episode
	CREATE TABLE IF NOT EXISTS movements (
		episode_idx INTEGER NOT NULL REFERENCES episodes(idx) ON DELETE CASCADE,
		position INTEGER NOT NULL,
		character_id TEXT NOT NULL,
		from_location_id TEXT NOT NULL,
		to_location_id TEXT NOT NULL,
		is_dead INTEGER NOT NULL DEFAULT 0,
		is_fast_travel INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (episode_idx, position)
	);
	CREATE INDEX IF NOT EXISTS idx_movements_character ON movements(character_id);

	-- Event records, ordered within an episode
	CREATE TABLE IF NOT EXISTS events (
		episode_idx INTEGER NOT NULL REFERENCES episodes(idx) ON DELETE CASCADE,
		position INTEGER NOT NULL,
		id TEXT NOT NULL,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		location_id TEXT NOT NULL,
		type TEXT NOT NULL,
		icon TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (episode_idx, position)
	);
	CREATE INDEX IF NOT EXISTS idx_events_location ON events(location_id);
	`

	_, err := s.db.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

// SaveLocations saves or updates locations.
func (s *Store) SaveLocations(ctx context.Context, locations []*entities.Location) error {
	query := `
		INSERT INTO locations (id, name, x, y, region, importance, description)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			x = excluded.x,
			y = excluded.y,
			region = excluded.region,
			importance = excluded.importance,
			description = excluded.description
	`
	return s.inTx(ctx, func(tx *sql.Tx) error {
		for _, loc := range locations {
			_, err := tx.ExecContext(ctx, query,
				loc.ID, loc.Name, loc.Coord.X, loc.Coord.Y,
				loc.Region, loc.Importance, loc.Description,
			)
			if err != nil {
				return fmt.Errorf("saving location %s: %w", loc.ID, err)
			}
		}
		return nil
	})
}

// SaveCharacters saves or updates characters, including their eras.
// Roster order is recorded in the position column.
func (s *Store) SaveCharacters(ctx context.Context, characters []*entities.Character) error {
	charQuery := `
		INSERT INTO characters (id, name, house, color, icon, bio, position)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			house = excluded.house,
			color = excluded.color,
			icon = excluded.icon,
			bio = excluded.bio,
			position = excluded.position
	`
	return s.inTx(ctx, func(tx *sql.Tx) error {
		for i, ch := range characters {
			if _, err := tx.ExecContext(ctx, charQuery,
				ch.ID, ch.Name, ch.House, ch.Color, ch.Icon, ch.Bio, i,
			); err != nil {
				return fmt.Errorf("saving character %s: %w", ch.ID, err)
			}

			if _, err := tx.ExecContext(ctx, "DELETE FROM eras WHERE character_id = ?", ch.ID); err != nil {
				return fmt.Errorf("clearing eras for %s: %w", ch.ID, err)
			}
			for j, era := range ch.Eras {
				if _, err := tx.ExecContext(ctx,
					"INSERT INTO eras (character_id, position, at_episode, icon) VALUES (?, ?, ?, ?)",
					ch.ID, j, era.AtEpisode, era.Icon,
				); err != nil {
					return fmt.Errorf("saving era for %s: %w", ch.ID, err)
				}
			}
		}
		return nil
	})
}

// SaveEpisodes replaces the stored episode sequence. The chronology is
// one fixed global ordering, so a partial upsert would corrupt cursor
// indices; imports always write the full sequence.
func (s *Store) SaveEpisodes(ctx context.Context, episodes []*entities.Episode) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM episodes"); err != nil {
			return fmt.Errorf("clearing episodes: %w", err)
		}

		for i, ep := range episodes {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO episodes (idx, season, number, title) VALUES (?, ?, ?, ?)",
				i, ep.Season, ep.Number, ep.Title,
			); err != nil {
				return fmt.Errorf("saving episode %d: %w", i, err)
			}

			for j, m := range ep.Movements {
				if _, err := tx.ExecContext(ctx,
					`INSERT INTO movements
						(episode_idx, position, character_id, from_location_id, to_location_id, is_dead, is_fast_travel)
					VALUES (?, ?, ?, ?, ?, ?, ?)`,
					i, j, m.CharacterID, m.FromLocationID, m.ToLocationID,
					boolToInt(m.IsDead), boolToInt(m.IsFastTravel),
				); err != nil {
					return fmt.Errorf("saving movement %d of episode %d: %w", j, i, err)
				}
			}

			for j, ev := range ep.Events {
				if _, err := tx.ExecContext(ctx,
					`INSERT INTO events
						(episode_idx, position, id, title, description, location_id, type, icon)
					VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
					i, j, ev.ID, ev.Title, ev.Description, ev.LocationID, string(ev.Type), ev.Icon,
				); err != nil {
					return fmt.Errorf("saving event %d of episode %d: %w", j, i, err)
				}
			}
		}
		return nil
	})
}

// LoadCatalog loads the full catalog.
func (s *Store) LoadCatalog(ctx context.Context) (*entities.Catalog, error) {
	locations, err := s.loadLocations(ctx)
	if err != nil {
		return nil, err
	}
	characters, err := s.loadCharacters(ctx)
	if err != nil {
		return nil, err
	}
	episodes, err := s.loadEpisodes(ctx)
	if err != nil {
		return nil, err
	}
	return entities.NewCatalog(locations, characters, episodes), nil
}

// CountEpisodes returns the number of stored episodes.
func (s *Store) CountEpisodes(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM episodes").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting episodes: %w", err)
	}
	return count, nil
}

func (s *Store) loadLocations(ctx context.Context) ([]*entities.Location, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, x, y, region, importance, description FROM locations ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("querying locations: %w", err)
	}
	defer rows.Close()

	var out []*entities.Location
	for rows.Next() {
		var loc entities.Location
		if err := rows.Scan(
			&loc.ID, &loc.Name, &loc.Coord.X, &loc.Coord.Y,
			&loc.Region, &loc.Importance, &loc.Description,
		); err != nil {
			return nil, fmt.Errorf("scanning location: %w", err)
		}
		out = append(out, &loc)
	}
	return out, rows.Err()
}

func (s *Store) loadCharacters(ctx context.Context) ([]*entities.Character, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, house, color, icon, bio FROM characters ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("querying characters: %w", err)
	}
	defer rows.Close()

	var out []*entities.Character
	byID := make(map[string]*entities.Character)
	for rows.Next() {
		var ch entities.Character
		if err := rows.Scan(&ch.ID, &ch.Name, &ch.House, &ch.Color, &ch.Icon, &ch.Bio); err != nil {
			return nil, fmt.Errorf("scanning character: %w", err)
		}
		out = append(out, &ch)
		byID[ch.ID] = &ch
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	eraRows, err := s.db.QueryContext(ctx,
		"SELECT character_id, at_episode, icon FROM eras ORDER BY character_id, position")
	if err != nil {
		return nil, fmt.Errorf("querying eras: %w", err)
	}
	defer eraRows.Close()

	for eraRows.Next() {
		var charID string
		var era entities.Era
		if err := eraRows.Scan(&charID, &era.AtEpisode, &era.Icon); err != nil {
			return nil, fmt.Errorf("scanning era: %w", err)
		}
		if ch, ok := byID[charID]; ok {
			ch.Eras = append(ch.Eras, era)
		}
	}
	return out, eraRows.Err()
}

func (s *Store) loadEpisodes(ctx context.Context) ([]*entities.Episode, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT idx, season, number, title FROM episodes ORDER BY idx")
	if err != nil {
		return nil, fmt.Errorf("querying episodes: %w", err)
	}
	defer rows.Close()

	var out []*entities.Episode
	byIdx := make(map[int]*entities.Episode)
	for rows.Next() {
		var idx int
		var ep entities.Episode
		if err := rows.Scan(&idx, &ep.Season, &ep.Number, &ep.Title); err != nil {
			return nil, fmt.Errorf("scanning episode: %w", err)
		}
		out = append(out, &ep)
		byIdx[idx] = &ep
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	moveRows, err := s.db.QueryContext(ctx,
		`SELECT episode_idx, character_id, from_location_id, to_location_id, is_dead, is_fast_travel
		FROM movements ORDER BY episode_idx, position`)
	if err != nil {
		return nil, fmt.Errorf("querying movements: %w", err)
	}
	defer moveRows.Close()

	for moveRows.Next() {
		var idx, isDead, isFast int
		var m entities.Movement
		if err := moveRows.Scan(&idx, &m.CharacterID, &m.FromLocationID, &m.ToLocationID, &isDead, &isFast); err != nil {
			return nil, fmt.Errorf("scanning movement: %w", err)
		}
		m.IsDead = isDead != 0
		m.IsFastTravel = isFast != 0
		if ep, ok := byIdx[idx]; ok {
			ep.Movements = append(ep.Movements, m)
		}
	}
	if err := moveRows.Err(); err != nil {
		return nil, err
	}

	eventRows, err := s.db.QueryContext(ctx,
		`SELECT episode_idx, id, title, description, location_id, type, icon
		FROM events ORDER BY episode_idx, position`)
	if err != nil {
		return nil, fmt.Errorf("querying events: %w", err)
	}
	defer eventRows.Close()

	for eventRows.Next() {
		var idx int
		var ev entities.Event
		var evType string
		if err := eventRows.Scan(&idx, &ev.ID, &ev.Title, &ev.Description, &ev.LocationID, &evType, &ev.Icon); err != nil {
			return nil, fmt.Errorf("scanning event: %w", err)
		}
		ev.Type = entities.EventType(evType)
		if ep, ok := byIdx[idx]; ok {
			ep.Events = append(ep.Events, ev)
		}
	}
	return out, eventRows.Err()
}

// inTx runs fn inside a transaction, committing on success.
func (s *Store) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
