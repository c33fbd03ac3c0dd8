package services

import "fmt"

// SkippedRecord describes a movement or event that referenced a
// location or character absent from the catalog. Such records are
// skipped rather than failing the derivation: partial data must not
// blank the whole map.
type SkippedRecord struct {
	EpisodeIndex int    // global episode index of the record
	Field        string // which reference was unresolved
	Value        string // the unknown id
}

func (r SkippedRecord) String() string {
	return fmt.Sprintf("episode %d: unknown %s %q", r.EpisodeIndex, r.Field, r.Value)
}

// StartConfig gives each house its default starting location. An
// explicit per-house fallback, not a magic default.
type StartConfig struct {
	ByHouse map[string]string
	Default string
}

// For returns the starting location id for a house.
func (s StartConfig) For(house string) string {
	if loc, ok := s.ByHouse[house]; ok {
		return loc
	}
	return s.Default
}
