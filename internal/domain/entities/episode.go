package entities

// EventType is the closed category tag of a chronicled event.
type EventType string

const (
	EventBattle    EventType = "battle"
	EventDeath     EventType = "death"
	EventPolitical EventType = "political"
	EventWedding   EventType = "wedding"
	EventMagic     EventType = "magic"
)

// ValidEventTypes lists every accepted event type, in display order.
var ValidEventTypes = []EventType{
	EventBattle, EventDeath, EventPolitical, EventWedding, EventMagic,
}

// IsValid reports whether the event type is one of the closed set.
func (t EventType) IsValid() bool {
	for _, v := range ValidEventTypes {
		if t == v {
			return true
		}
	}
	return false
}

// Movement records one hop by a character within a single episode.
// A movement with FromLocationID == ToLocationID means the character
// remained at the location; it still marks presence and continuity.
type Movement struct {
	CharacterID    string `json:"character_id"`
	FromLocationID string `json:"from_location_id"`
	ToLocationID   string `json:"to_location_id"`
	// IsDead attributes the character's death to this hop.
	IsDead bool `json:"is_dead,omitempty"`
	// IsFastTravel marks a hop completed faster than the travel-speed
	// model allows. Display emphasis only.
	IsFastTravel bool `json:"is_fast_travel,omitempty"`
}

// IsStay reports whether the movement is a remained-at-location no-op hop.
func (m Movement) IsStay() bool {
	return m.FromLocationID == m.ToLocationID
}

// Event is a notable occurrence anchored to a location within one episode.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	LocationID  string    `json:"location_id"`
	Type        EventType `json:"type"`
	Icon        string    `json:"icon,omitempty"`
}

// Episode is one entry in the global chronology. Episodes are ordered
// by (season, number) but the engine addresses them purely by their
// position in the catalog's episode sequence.
type Episode struct {
	Season    int        `json:"season"`
	Number    int        `json:"number"`
	Title     string     `json:"title"`
	Movements []Movement `json:"movements"`
	Events    []Event    `json:"events"`
}
