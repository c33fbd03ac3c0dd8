package services

import (
	"math"
	"sort"

	"github.com/smile-plzz/chronicle-core/internal/domain/entities"
)

// LeaderboardEntry is one row of the travel-distance leaderboard.
type LeaderboardEntry struct {
	CharacterID string  `json:"character_id"`
	Distance    float64 `json:"distance"`
}

// Stats aggregates the state of the world at the cursor.
type Stats struct {
	Alive       int                `json:"alive"`
	Dead        int                `json:"dead"`
	Leaderboard []LeaderboardEntry `json:"leaderboard"`
}

// StatsService computes survivor/casualty tallies and the travel
// leaderboard by folding the effective history.
type StatsService struct {
	history *History
}

// NewStatsService creates a new StatsService.
func NewStatsService(history *History) *StatsService {
	return &StatsService{history: history}
}

// Aggregate tallies alive vs dead across the whole roster and builds
// the distance leaderboard at the cursor. Death uses the location-blind
// death-only scan; distance accumulates only over movements whose
// endpoints both resolve. Every roster character gets a leaderboard
// entry (zero distance allowed), sorted descending with ties broken by
// catalog order.
func (s *StatsService) Aggregate(cursor int) Stats {
	snap := s.history.at(cursor)
	roster := s.history.Catalog().Characters()

	stats := Stats{Leaderboard: make([]LeaderboardEntry, 0, len(roster))}
	for _, ch := range roster {
		st := snap.chars[ch.ID]
		if st.scanDead {
			stats.Dead++
		} else {
			stats.Alive++
		}
		stats.Leaderboard = append(stats.Leaderboard, LeaderboardEntry{
			CharacterID: ch.ID,
			Distance:    roundDistance(st.distance),
		})
	}

	sort.SliceStable(stats.Leaderboard, func(i, j int) bool {
		return stats.Leaderboard[i].Distance > stats.Leaderboard[j].Distance
	})
	return stats
}

// IsDead reports whether any movement at or before the cursor carries
// the death flag for the character. Moving the cursor back before the
// death-causing movement makes this false again.
func (s *StatsService) IsDead(characterID string, cursor int) bool {
	return s.history.at(cursor).chars[characterID].scanDead
}

// Distance returns the character's cumulative travel distance at the
// cursor, rounded to one decimal.
func (s *StatsService) Distance(characterID string, cursor int) float64 {
	return roundDistance(s.history.at(cursor).chars[characterID].distance)
}

// PresenceAt returns the roster characters resolved at the given
// location at the cursor, in catalog order.
func (s *StatsService) PresenceAt(locationID string, cursor int) []*entities.Character {
	snap := s.history.at(cursor)
	var out []*entities.Character
	for _, ch := range s.history.Catalog().Characters() {
		if snap.chars[ch.ID].locationID == locationID {
			out = append(out, ch)
		}
	}
	return out
}

// EventsAt returns the events of the episode at the cursor.
func (s *StatsService) EventsAt(cursor int) []entities.Event {
	ep := s.history.Catalog().Episode(s.history.Catalog().ClampIndex(cursor))
	if ep == nil {
		return nil
	}
	return ep.Events
}

// roundDistance rounds to one decimal of precision, reproducibly.
func roundDistance(d float64) float64 {
	return math.Round(d*10) / 10
}
