package services

import (
	"fmt"

	"github.com/smile-plzz/chronicle-core/internal/domain/entities"
)

// ActiveSegment is the single in-progress hop belonging to the episode
// at the cursor, rendered as a quadratic curve through Control.
type ActiveSegment struct {
	From         entities.Coordinate `json:"from"`
	To           entities.Coordinate `json:"to"`
	Control      entities.Coordinate `json:"control"`
	IsFastTravel bool                `json:"is_fast_travel,omitempty"`
}

// Path is one character's journey split at the cursor boundary:
// the settled polyline of completed hops and the currently animating
// segment, if any.
type Path struct {
	Settled []entities.Coordinate `json:"settled"`
	Active  *ActiveSegment        `json:"active,omitempty"`
}

// SettledHops returns the number of completed hops in the polyline.
func (p Path) SettledHops() int {
	if len(p.Settled) < 2 {
		return 0
	}
	return len(p.Settled) - 1
}

// PathService produces the polyline geometry of character journeys.
type PathService struct {
	catalog     *entities.Catalog
	curveOffset float64
}

// NewPathService creates a new PathService. curveOffset is the
// perpendicular control-point offset magnitude in plane units.
func NewPathService(catalog *entities.Catalog, curveOffset float64) *PathService {
	return &PathService{catalog: catalog, curveOffset: curveOffset}
}

// Segment partitions the character's movement history at the cursor:
// hops from episodes strictly before the cursor form the settled
// polyline, and the first hop belonging to the episode at the cursor
// becomes the active segment. Hops with unresolved endpoints are
// skipped without breaking polyline continuity. A character with no
// movements yields an empty path.
func (s *PathService) Segment(characterID string, cursor int) (Path, error) {
	if s.catalog.Character(characterID) == nil {
		return Path{}, fmt.Errorf("character not found: %s", characterID)
	}
	cursor = s.catalog.ClampIndex(cursor)

	var path Path
	for i, ep := range s.catalog.Episodes() {
		for _, m := range ep.Movements {
			if m.CharacterID != characterID {
				continue
			}
			switch {
			case i < cursor:
				s.appendSettled(&path, m)
			case i == cursor && path.Active == nil:
				path.Active = s.activeSegment(m)
			}
		}
	}
	return path, nil
}

// appendSettled extends the settled polyline with one hop. The first
// hop contributes its from-coordinate as the polyline origin; every
// hop contributes its to-coordinate.
func (s *PathService) appendSettled(path *Path, m entities.Movement) {
	to := s.catalog.Location(m.ToLocationID)
	if to == nil {
		return
	}
	if len(path.Settled) == 0 {
		if from := s.catalog.Location(m.FromLocationID); from != nil {
			path.Settled = append(path.Settled, from.Coord)
		}
	}
	path.Settled = append(path.Settled, to.Coord)
}

// activeSegment builds the quadratic curve for the hop at the cursor.
// The control point is the chord midpoint offset perpendicular by the
// configured magnitude, sign chosen by the endpoints' vertical order
// so curvature stays consistent when endpoints are vertically
// inverted. A degenerate (from == to) hop collapses the control point
// onto the midpoint.
func (s *PathService) activeSegment(m entities.Movement) *ActiveSegment {
	from := s.catalog.Location(m.FromLocationID)
	to := s.catalog.Location(m.ToLocationID)
	if from == nil || to == nil {
		return nil
	}

	seg := &ActiveSegment{
		From:         from.Coord,
		To:           to.Coord,
		Control:      from.Coord.Midpoint(to.Coord),
		IsFastTravel: m.IsFastTravel,
	}

	length := from.Coord.DistanceTo(to.Coord)
	if length == 0 {
		return seg
	}

	// Unit perpendicular to the chord.
	ux := -(to.Coord.Y - from.Coord.Y) / length
	uy := (to.Coord.X - from.Coord.X) / length

	offset := s.curveOffset
	if from.Coord.Y > to.Coord.Y {
		offset = -offset
	}
	seg.Control.X += ux * offset
	seg.Control.Y += uy * offset
	return seg
}
