package handlers

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/smile-plzz/chronicle-core/internal/domain/entities"
	"github.com/smile-plzz/chronicle-core/internal/domain/ports"
	"github.com/smile-plzz/chronicle-core/internal/infrastructure/parsers"
)

// ImportOptions controls import behavior.
type ImportOptions struct {
	DryRun bool // Validate without saving
}

// ImportError represents an error for a specific record during import.
type ImportError struct {
	Line    int    // Position in source (1-indexed, 0 if unknown)
	Section string // Which catalog section the record belongs to
	Field   string // Which field has the error
	Value   string // The invalid value
	Message string // Human-readable error message
}

func (e ImportError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s %d: %s", e.Section, e.Line, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Section, e.Message)
}

// ImportResult contains the result of an import operation.
type ImportResult struct {
	Locations  int
	Characters int
	Episodes   int
	Errors     []ImportError
}

// ImportHandler validates parsed catalogs and persists them to the
// store. Invalid records are reported and skipped; valid records
// proceed.
type ImportHandler struct {
	store ports.CatalogStore
}

// NewImportHandler creates a new ImportHandler.
func NewImportHandler(store ports.CatalogStore) *ImportHandler {
	return &ImportHandler{store: store}
}

// Handle validates and imports a raw catalog into the store.
func (h *ImportHandler) Handle(ctx context.Context, raw *parsers.RawCatalog, opts ImportOptions) (*ImportResult, error) {
	result := &ImportResult{}

	locations := h.validateLocations(raw.Locations, result)
	characters := h.validateCharacters(raw.Characters, result)
	episodes := h.validateEpisodes(raw.Episodes, result)

	result.Locations = len(locations)
	result.Characters = len(characters)
	result.Episodes = len(episodes)

	if opts.DryRun {
		return result, nil
	}

	if len(locations) > 0 {
		if err := h.store.SaveLocations(ctx, locations); err != nil {
			return nil, fmt.Errorf("saving locations: %w", err)
		}
	}
	if len(characters) > 0 {
		if err := h.store.SaveCharacters(ctx, characters); err != nil {
			return nil, fmt.Errorf("saving characters: %w", err)
		}
	}
	if len(episodes) > 0 {
		if err := h.store.SaveEpisodes(ctx, episodes); err != nil {
			return nil, fmt.Errorf("saving episodes: %w", err)
		}
	}

	return result, nil
}

func (h *ImportHandler) validateLocations(raw []parsers.RawLocation, result *ImportResult) []*entities.Location {
	valid := make([]*entities.Location, 0, len(raw))
	for i := range raw {
		loc := &raw[i]
		line := lineOr(loc.LineNum, i)

		if loc.ID == "" {
			result.Errors = append(result.Errors, ImportError{
				Line: line, Section: "location", Field: "id",
				Message: "missing required field: id",
			})
			continue
		}
		if loc.Name == "" {
			result.Errors = append(result.Errors, ImportError{
				Line: line, Section: "location", Field: "name", Value: loc.ID,
				Message: "missing required field: name",
			})
			continue
		}

		valid = append(valid, &entities.Location{
			ID:          loc.ID,
			Name:        loc.Name,
			Coord:       entities.Coordinate{X: loc.X, Y: loc.Y},
			Region:      loc.Region,
			Importance:  loc.Importance,
			Description: loc.Description,
		})
	}
	return valid
}

func (h *ImportHandler) validateCharacters(raw []parsers.RawCharacter, result *ImportResult) []*entities.Character {
	valid := make([]*entities.Character, 0, len(raw))
	for i := range raw {
		ch := &raw[i]
		line := lineOr(ch.LineNum, i)

		if ch.ID == "" {
			result.Errors = append(result.Errors, ImportError{
				Line: line, Section: "character", Field: "id",
				Message: "missing required field: id",
			})
			continue
		}
		if ch.Name == "" {
			result.Errors = append(result.Errors, ImportError{
				Line: line, Section: "character", Field: "name", Value: ch.ID,
				Message: "missing required field: name",
			})
			continue
		}
		if !erasAscending(ch.Eras) {
			result.Errors = append(result.Errors, ImportError{
				Line: line, Section: "character", Field: "eras", Value: ch.ID,
				Message: "eras must be ordered by at_episode ascending",
			})
			continue
		}

		eras := make([]entities.Era, 0, len(ch.Eras))
		for _, era := range ch.Eras {
			eras = append(eras, entities.Era{AtEpisode: era.AtEpisode, Icon: era.Icon})
		}
		valid = append(valid, &entities.Character{
			ID:    ch.ID,
			Name:  ch.Name,
			House: ch.House,
			Color: ch.Color,
			Icon:  ch.Icon,
			Eras:  eras,
			Bio:   ch.Bio,
		})
	}
	return valid
}

func (h *ImportHandler) validateEpisodes(raw []parsers.RawEpisode, result *ImportResult) []*entities.Episode {
	valid := make([]*entities.Episode, 0, len(raw))
	for i := range raw {
		ep := &raw[i]

		episode := &entities.Episode{
			Season: ep.Season,
			Number: ep.Number,
			Title:  ep.Title,
		}

		for j := range ep.Movements {
			m := &ep.Movements[j]
			line := lineOr(m.LineNum, j)

			if m.CharacterID == "" || m.FromLocationID == "" || m.ToLocationID == "" {
				result.Errors = append(result.Errors, ImportError{
					Line: line, Section: "movement",
					Message: fmt.Sprintf("episode %d: movement needs character_id, from_location_id, to_location_id", i),
				})
				continue
			}
			episode.Movements = append(episode.Movements, entities.Movement{
				CharacterID:    m.CharacterID,
				FromLocationID: m.FromLocationID,
				ToLocationID:   m.ToLocationID,
				IsDead:         m.IsDead,
				IsFastTravel:   m.IsFastTravel,
			})
		}

		for j := range ep.Events {
			ev := &ep.Events[j]
			line := lineOr(ev.LineNum, j)

			if ev.Title == "" || ev.LocationID == "" {
				result.Errors = append(result.Errors, ImportError{
					Line: line, Section: "event",
					Message: fmt.Sprintf("episode %d: event needs title and location_id", i),
				})
				continue
			}
			evType := entities.EventType(ev.Type)
			if !evType.IsValid() {
				result.Errors = append(result.Errors, ImportError{
					Line: line, Section: "event", Field: "type", Value: ev.Type,
					Message: fmt.Sprintf("invalid type %q (valid: battle, death, political, wedding, magic)", ev.Type),
				})
				continue
			}

			id := ev.ID
			if id == "" {
				id = uuid.New().String()
			}
			episode.Events = append(episode.Events, entities.Event{
				ID:          id,
				Title:       ev.Title,
				Description: ev.Description,
				LocationID:  ev.LocationID,
				Type:        evType,
				Icon:        ev.Icon,
			})
		}

		valid = append(valid, episode)
	}
	return valid
}

func erasAscending(eras []parsers.RawEra) bool {
	for i := 1; i < len(eras); i++ {
		if eras[i].AtEpisode < eras[i-1].AtEpisode {
			return false
		}
	}
	return true
}

func lineOr(line, index int) int {
	if line > 0 {
		return line
	}
	return index + 1
}
