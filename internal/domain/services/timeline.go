package services

import (
	"sync"

	"github.com/smile-plzz/chronicle-core/internal/domain/entities"
)

// SeasonAll disables season filtering.
const SeasonAll = 0

// Timeline is the cursor into the episode sequence: the single integer
// index representing "now" in the chronology, an optional season
// filter restricting which indices are selectable, and the furthest
// index ever reached (the high-water mark used for spoiler gating).
//
// Cursor mutation is last-write-wins: an autoplay Advance and a
// user-initiated SetCursor may interleave freely.
type Timeline struct {
	catalog *entities.Catalog

	mu           sync.Mutex
	cursor       int
	highWater    int
	seasonFilter int // SeasonAll when unfiltered
	spoilerFree  bool
}

// NewTimeline creates a timeline positioned at episode 0.
func NewTimeline(catalog *entities.Catalog) *Timeline {
	return &Timeline{catalog: catalog, seasonFilter: SeasonAll}
}

// Cursor returns the current global episode index.
func (t *Timeline) Cursor() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cursor
}

// SetCursor moves the cursor, clamping into [0, N-1], and raises the
// high-water mark when the new index exceeds it. Returns the clamped
// index.
func (t *Timeline) SetCursor(index int) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cursor = t.catalog.ClampIndex(index)
	if t.cursor > t.highWater {
		t.highWater = t.cursor
	}
	return t.cursor
}

// Advance moves the cursor one episode forward. It returns false when
// the cursor is already at the final episode, which signals autoplay
// to stop.
func (t *Timeline) Advance() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cursor >= t.catalog.EpisodeCount()-1 {
		return false
	}
	t.cursor++
	if t.cursor > t.highWater {
		t.highWater = t.cursor
	}
	return true
}

// HighWater returns the furthest index ever reached. It never
// decreases, even when the cursor moves backward.
func (t *Timeline) HighWater() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.highWater
}

// SetSpoilerFree toggles spoiler gating.
func (t *Timeline) SetSpoilerFree(on bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.spoilerFree = on
}

// NeedsSpoilerConfirm reports whether selecting the given index should
// ask the viewer for confirmation: spoiler-free mode is on and the
// index lies beyond the high-water mark. Declining the confirmation
// leaves the cursor unchanged; the caller simply does not call
// SetCursor.
func (t *Timeline) NeedsSpoilerConfirm(index int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.spoilerFree && t.catalog.ClampIndex(index) > t.highWater
}

// FilterSeason restricts SelectableIndices to one season. Filtering
// changes which indices are offered for direct selection, never what
// history folding uses: folds always run on the global index.
func (t *Timeline) FilterSeason(season int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.seasonFilter = season
}

// ClearSeasonFilter removes the season restriction.
func (t *Timeline) ClearSeasonFilter() {
	t.FilterSeason(SeasonAll)
}

// SeasonFilter returns the active season filter, SeasonAll when none.
func (t *Timeline) SeasonFilter() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.seasonFilter
}

// SelectableIndices returns the global indices offered for direct
// selection under the active season filter.
func (t *Timeline) SelectableIndices() []int {
	t.mu.Lock()
	season := t.seasonFilter
	t.mu.Unlock()

	var out []int
	for i, ep := range t.catalog.Episodes() {
		if season == SeasonAll || ep.Season == season {
			out = append(out, i)
		}
	}
	return out
}

// EffectiveMovements returns the concatenated movement records of
// episodes 0..index inclusive, in episode order then list order. This
// ordering is significant: last write wins per character.
func (t *Timeline) EffectiveMovements(index int) []entities.Movement {
	index = t.catalog.ClampIndex(index)
	var out []entities.Movement
	for i := 0; i <= index && i < t.catalog.EpisodeCount(); i++ {
		out = append(out, t.catalog.Episode(i).Movements...)
	}
	return out
}

// EffectiveEvents returns the concatenated event records of episodes
// 0..index inclusive.
func (t *Timeline) EffectiveEvents(index int) []entities.Event {
	index = t.catalog.ClampIndex(index)
	var out []entities.Event
	for i := 0; i <= index && i < t.catalog.EpisodeCount(); i++ {
		out = append(out, t.catalog.Episode(i).Events...)
	}
	return out
}
