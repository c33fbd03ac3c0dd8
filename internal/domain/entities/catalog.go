package entities

// Catalog is the immutable reference dataset the engine derives from:
// locations keyed by id, characters in roster order, and the global
// episode sequence. It is loaded once at startup and never mutated.
type Catalog struct {
	locations  map[string]*Location
	characters []*Character
	charIndex  map[string]*Character
	episodes   []*Episode
}

// NewCatalog builds a catalog from reference tables. Character roster
// order is preserved; it is significant for leaderboard tie-breaking.
func NewCatalog(locations []*Location, characters []*Character, episodes []*Episode) *Catalog {
	c := &Catalog{
		locations:  make(map[string]*Location, len(locations)),
		characters: characters,
		charIndex:  make(map[string]*Character, len(characters)),
		episodes:   episodes,
	}
	for _, loc := range locations {
		c.locations[loc.ID] = loc
	}
	for _, ch := range characters {
		c.charIndex[ch.ID] = ch
	}
	return c
}

// Location returns the location with the given id, or nil.
func (c *Catalog) Location(id string) *Location {
	return c.locations[id]
}

// Locations returns every location. Order is unspecified.
func (c *Catalog) Locations() []*Location {
	out := make([]*Location, 0, len(c.locations))
	for _, loc := range c.locations {
		out = append(out, loc)
	}
	return out
}

// Character returns the character with the given id, or nil.
func (c *Catalog) Character(id string) *Character {
	return c.charIndex[id]
}

// Characters returns the roster in catalog order. Callers must not
// modify the returned slice.
func (c *Catalog) Characters() []*Character {
	return c.characters
}

// Episode returns the episode at the given global index, or nil when
// the index is out of range.
func (c *Catalog) Episode(index int) *Episode {
	if index < 0 || index >= len(c.episodes) {
		return nil
	}
	return c.episodes[index]
}

// Episodes returns the global episode sequence. Callers must not
// modify the returned slice.
func (c *Catalog) Episodes() []*Episode {
	return c.episodes
}

// EpisodeCount returns the number of episodes in the chronology.
func (c *Catalog) EpisodeCount() int {
	return len(c.episodes)
}

// ClampIndex clamps an episode index into [0, EpisodeCount-1].
// An empty catalog clamps everything to 0.
func (c *Catalog) ClampIndex(index int) int {
	if index < 0 {
		return 0
	}
	if max := len(c.episodes) - 1; index > max && max >= 0 {
		return max
	}
	if len(c.episodes) == 0 {
		return 0
	}
	return index
}
