package services

import "github.com/smile-plzz/chronicle-core/internal/domain/entities"

// Position is a character's resolved spatial state at the cursor.
type Position struct {
	Coord entities.Coordinate `json:"coord"`
	Dead  bool                `json:"dead"`
}

// PositionService resolves every character's current coordinate and
// death status for a cursor index and mode. Resolution is a pure
// function of (cursor, mode): no hidden dependency on prior calls.
type PositionService struct {
	history *History
}

// NewPositionService creates a new PositionService.
func NewPositionService(history *History) *PositionService {
	return &PositionService{history: history}
}

// Resolve returns the position of every character whose location can
// be resolved against the catalog. Characters whose current location
// id is unknown are omitted; the underlying fold reports them.
func (s *PositionService) Resolve(cursor int, mode Mode) map[string]Position {
	switch m := mode.(type) {
	case Simulation:
		return s.resolveSimulated(m.Overrides)
	default:
		return s.resolveCanonical(cursor)
	}
}

func (s *PositionService) resolveCanonical(cursor int) map[string]Position {
	snap := s.history.at(cursor)
	out := make(map[string]Position, len(snap.chars))
	for id, st := range snap.chars {
		loc := s.history.Catalog().Location(st.locationID)
		if loc == nil {
			continue
		}
		out[id] = Position{Coord: loc.Coord, Dead: st.foldDead}
	}
	return out
}

// resolveSimulated places overridden characters at their override
// location and everyone else at their starting default. Simulation is
// exploratory: death is not modeled, and canonical history is not
// folded. A nil override map is an empty override set, not an error.
func (s *PositionService) resolveSimulated(overrides map[string]string) map[string]Position {
	catalog := s.history.Catalog()
	out := make(map[string]Position, len(catalog.Characters()))

	for _, ch := range catalog.Characters() {
		start := catalog.Location(s.history.Starts().For(ch.House))
		if start != nil {
			out[ch.ID] = Position{Coord: start.Coord}
		}
	}
	for id, locID := range overrides {
		loc := catalog.Location(locID)
		if loc == nil || catalog.Character(id) == nil {
			continue
		}
		out[id] = Position{Coord: loc.Coord}
	}
	return out
}
