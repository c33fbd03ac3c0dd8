// Package handlers contains the application layer bundling the
// derivation services behind the interface the rendering/UI layer
// consumes.
package handlers

import (
	"github.com/smile-plzz/chronicle-core/internal/domain/entities"
	"github.com/smile-plzz/chronicle-core/internal/domain/services"
)

// EngineHandler exposes the chronology engine's derivations. Every
// method is a pure synchronous function of its arguments plus the
// immutable catalog; the handler holds no cursor of its own (the
// Timeline does), so derivations can be queried for any index.
type EngineHandler struct {
	timeline  *services.Timeline
	positions *services.PositionService
	paths     *services.PathService
	stats     *services.StatsService
	camera    *services.CameraService
	eras      *services.EraService
	history   *services.History
}

// NewEngineHandler creates a new EngineHandler.
func NewEngineHandler(
	timeline *services.Timeline,
	positions *services.PositionService,
	paths *services.PathService,
	stats *services.StatsService,
	camera *services.CameraService,
	eras *services.EraService,
	history *services.History,
) *EngineHandler {
	return &EngineHandler{
		timeline:  timeline,
		positions: positions,
		paths:     paths,
		stats:     stats,
		camera:    camera,
		eras:      eras,
		history:   history,
	}
}

// Timeline returns the cursor the handler was built around.
func (h *EngineHandler) Timeline() *services.Timeline {
	return h.timeline
}

// Catalog returns the underlying reference catalog.
func (h *EngineHandler) Catalog() *entities.Catalog {
	return h.history.Catalog()
}

// ResolvePositions returns every resolvable character's position and
// death status at the cursor, under the given mode.
func (h *EngineHandler) ResolvePositions(cursor int, mode services.Mode) map[string]services.Position {
	return h.positions.Resolve(cursor, mode)
}

// SegmentPath splits one character's journey at the cursor boundary.
func (h *EngineHandler) SegmentPath(characterID string, cursor int) (services.Path, error) {
	return h.paths.Segment(characterID, cursor)
}

// AggregateStats tallies survivors, casualties, and the travel
// leaderboard at the cursor.
func (h *EngineHandler) AggregateStats(cursor int) services.Stats {
	return h.stats.Aggregate(cursor)
}

// CameraOffset computes the pan centering a followed character, or nil
// when no character is followed or it cannot be resolved.
func (h *EngineHandler) CameraOffset(characterID string, cursor int, mode services.Mode, viewport services.Viewport, zoom float64) *services.Pan {
	return h.camera.OffsetFor(characterID, cursor, mode, viewport, zoom)
}

// ResolveEra returns the character's display icon at the cursor.
func (h *EngineHandler) ResolveEra(characterID string, cursor int) (string, error) {
	return h.eras.Resolve(characterID, cursor)
}

// CharacterDead reports the character's death status at the cursor.
func (h *EngineHandler) CharacterDead(characterID string, cursor int) bool {
	return h.stats.IsDead(characterID, cursor)
}

// CharacterDistance returns the character's cumulative travel distance
// at the cursor.
func (h *EngineHandler) CharacterDistance(characterID string, cursor int) float64 {
	return h.stats.Distance(characterID, cursor)
}

// PresenceAt returns the characters resolved at a location at the cursor.
func (h *EngineHandler) PresenceAt(locationID string, cursor int) []*entities.Character {
	return h.stats.PresenceAt(locationID, cursor)
}

// EventsAt returns the events of the episode at the cursor.
func (h *EngineHandler) EventsAt(cursor int) []entities.Event {
	return h.stats.EventsAt(cursor)
}

// Skipped returns the reference errors encountered while folding.
func (h *EngineHandler) Skipped() []services.SkippedRecord {
	return h.history.Skipped()
}
