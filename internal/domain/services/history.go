package services

import (
	"sync"

	"github.com/smile-plzz/chronicle-core/internal/domain/entities"
)

// charState is one character's cumulative fold state.
type charState struct {
	locationID string // empty until a position is known
	foldDead   bool   // death flag per the position fold (skips bad records)
	scanDead   bool   // death flag per the death-only scan (location-blind)
	distance   float64
}

// snapshot is the cumulative fold state after episodes 0..index.
type snapshot struct {
	chars map[string]charState
}

// History caches per-episode-index fold snapshots so that cursor
// scrubbing never re-folds the chronology from episode 0. Snapshots
// are built incrementally on first access and, because the catalog is
// immutable, never invalidated. Observable results are identical to a
// full linear rescan.
type History struct {
	catalog *entities.Catalog
	starts  StartConfig

	mu      sync.Mutex
	snaps   []*snapshot
	skipped []SkippedRecord
}

// NewHistory creates a fold table over the catalog.
func NewHistory(catalog *entities.Catalog, starts StartConfig) *History {
	return &History{catalog: catalog, starts: starts}
}

// Catalog returns the catalog the history folds over.
func (h *History) Catalog() *entities.Catalog {
	return h.catalog
}

// Starts returns the starting-location configuration.
func (h *History) Starts() StartConfig {
	return h.starts
}

// Skipped returns the reference errors encountered while folding so
// far. Best-effort reporting; grows as further indices are visited.
func (h *History) Skipped() []SkippedRecord {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]SkippedRecord, len(h.skipped))
	copy(out, h.skipped)
	return out
}

// at returns the snapshot after folding episodes 0..index. The index
// is clamped into range. An empty chronology yields the initial state.
func (h *History) at(index int) *snapshot {
	index = h.catalog.ClampIndex(index)

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.catalog.EpisodeCount() == 0 {
		return h.initialLocked()
	}

	for len(h.snaps) <= index {
		prev := h.initialLocked()
		if n := len(h.snaps); n > 0 {
			prev = h.snaps[n-1]
		}
		h.snaps = append(h.snaps, h.foldLocked(prev, len(h.snaps)))
	}
	return h.snaps[index]
}

// initialLocked builds the pre-chronology state: every character at
// its house's starting location, alive, zero distance.
func (h *History) initialLocked() *snapshot {
	chars := make(map[string]charState, len(h.catalog.Characters()))
	for _, ch := range h.catalog.Characters() {
		state := charState{}
		start := h.starts.For(ch.House)
		if h.catalog.Location(start) != nil {
			state.locationID = start
		}
		chars[ch.ID] = state
	}
	return &snapshot{chars: chars}
}

// foldLocked applies the movements of one episode on top of a prior
// snapshot. Records naming unknown ids are skipped and reported; the
// death-only scan still honors IsDead on movements whose character is
// known, matching the location-blind casualty rule.
func (h *History) foldLocked(prev *snapshot, episodeIndex int) *snapshot {
	next := &snapshot{chars: make(map[string]charState, len(prev.chars))}
	for id, st := range prev.chars {
		next.chars[id] = st
	}

	ep := h.catalog.Episode(episodeIndex)
	if ep == nil {
		return next
	}

	for _, m := range ep.Movements {
		ch := h.catalog.Character(m.CharacterID)
		if ch == nil {
			h.skipped = append(h.skipped, SkippedRecord{episodeIndex, "character", m.CharacterID})
			continue
		}

		st := next.chars[m.CharacterID]
		if m.IsDead {
			st.scanDead = true
		}

		from := h.catalog.Location(m.FromLocationID)
		to := h.catalog.Location(m.ToLocationID)
		if to == nil {
			h.skipped = append(h.skipped, SkippedRecord{episodeIndex, "to_location", m.ToLocationID})
			next.chars[m.CharacterID] = st
			continue
		}
		if from == nil {
			h.skipped = append(h.skipped, SkippedRecord{episodeIndex, "from_location", m.FromLocationID})
		} else {
			st.distance += from.Coord.DistanceTo(to.Coord)
		}

		st.locationID = m.ToLocationID
		st.foldDead = st.foldDead || m.IsDead
		next.chars[m.CharacterID] = st
	}

	for _, ev := range ep.Events {
		if h.catalog.Location(ev.LocationID) == nil {
			h.skipped = append(h.skipped, SkippedRecord{episodeIndex, "location", ev.LocationID})
		}
	}

	return next
}
