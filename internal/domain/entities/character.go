package entities

// Era is a display-icon override that takes effect once the cursor
// reaches its episode threshold. A character's eras are ordered by
// AtEpisode ascending; later entries supersede earlier ones.
type Era struct {
	AtEpisode int    `json:"at_episode"`
	Icon      string `json:"icon"`
}

// Character is a tracked entity in the chronology. Reference data;
// never mutated at runtime.
type Character struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	House string `json:"house"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
	Eras  []Era  `json:"eras,omitempty"`
	Bio   string `json:"bio,omitempty"`
}

// IconAt returns the character's display icon at the given episode
// index: the last era whose threshold has been reached, scanning in
// descending order so that equal thresholds resolve to the later list
// entry. Falls back to the default icon when no era qualifies.
func (c *Character) IconAt(episodeIndex int) string {
	for i := len(c.Eras) - 1; i >= 0; i-- {
		if c.Eras[i].AtEpisode <= episodeIndex {
			return c.Eras[i].Icon
		}
	}
	return c.Icon
}
