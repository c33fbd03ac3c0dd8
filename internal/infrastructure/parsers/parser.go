// Package parsers provides parsers for importing reference catalogs
// from various formats.
package parsers

import (
	"io"
	"path/filepath"
	"strings"
)

// RawLocation is a location parsed from an external source before
// validation.
type RawLocation struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Region      string  `json:"region,omitempty"`
	Importance  int     `json:"importance,omitempty"`
	Description string  `json:"description,omitempty"`
	LineNum     int     `json:"-"` // position in source (set by parser)
}

// RawEra is an era entry parsed from an external source.
type RawEra struct {
	AtEpisode int    `json:"at_episode"`
	Icon      string `json:"icon"`
}

// RawCharacter is a character parsed from an external source before
// validation.
type RawCharacter struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	House   string   `json:"house"`
	Color   string   `json:"color,omitempty"`
	Icon    string   `json:"icon,omitempty"`
	Eras    []RawEra `json:"eras,omitempty"`
	Bio     string   `json:"bio,omitempty"`
	LineNum int      `json:"-"`
}

// RawMovement is a movement record parsed from an external source.
type RawMovement struct {
	CharacterID    string `json:"character_id"`
	FromLocationID string `json:"from_location_id"`
	ToLocationID   string `json:"to_location_id"`
	IsDead         bool   `json:"is_dead,omitempty"`
	IsFastTravel   bool   `json:"is_fast_travel,omitempty"`
	LineNum        int    `json:"-"`
}

// RawEvent is an event record parsed from an external source.
type RawEvent struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	LocationID  string `json:"location_id"`
	Type        string `json:"type"`
	Icon        string `json:"icon,omitempty"`
	LineNum     int    `json:"-"`
}

// RawEpisode is an episode parsed from an external source before
// validation.
type RawEpisode struct {
	Season    int           `json:"season"`
	Number    int           `json:"number"`
	Title     string        `json:"title"`
	Movements []RawMovement `json:"movements,omitempty"`
	Events    []RawEvent    `json:"events,omitempty"`
	LineNum   int           `json:"-"`
}

// RawCatalog is a full parsed catalog before validation. A parser may
// fill only some sections: the CSV movement-log format carries
// episodes only.
type RawCatalog struct {
	Locations  []RawLocation  `json:"locations,omitempty"`
	Characters []RawCharacter `json:"characters,omitempty"`
	Episodes   []RawEpisode   `json:"episodes,omitempty"`
}

// Parser defines the interface for parsing catalogs from various formats.
type Parser interface {
	Parse(r io.Reader) (*RawCatalog, error)
}

// ForFormat returns the appropriate parser for the given format.
// Supported formats: "json", "csv".
func ForFormat(format string) Parser {
	switch strings.ToLower(format) {
	case "json":
		return &JSONParser{}
	case "csv":
		return &CSVParser{}
	default:
		return nil
	}
}

// ForFile returns the appropriate parser based on file extension.
func ForFile(filename string) Parser {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".json":
		return &JSONParser{}
	case ".csv":
		return &CSVParser{}
	default:
		return nil
	}
}
