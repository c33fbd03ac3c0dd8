package services

import (
	"github.com/smile-plzz/chronicle-core/internal/domain/entities"
)

// journeyCatalog builds a small chronology shared across service tests:
// character A starts at L1, travels to L2 in episode 1, and dies in
// place in episode 2. Character B never moves.
func journeyCatalog() *entities.Catalog {
	locations := []*entities.Location{
		{ID: "L1", Name: "First Keep", Coord: entities.Coordinate{X: 0, Y: 0}},
		{ID: "L2", Name: "Second Keep", Coord: entities.Coordinate{X: 10, Y: 0}},
		{ID: "L3", Name: "Third Keep", Coord: entities.Coordinate{X: 10, Y: 10}},
	}
	characters := []*entities.Character{
		{ID: "A", Name: "Arryn", House: "Stark", Icon: "a"},
		{ID: "B", Name: "Baelor", House: "Stark", Icon: "b", Eras: []entities.Era{
			{AtEpisode: 0, Icon: "x"},
			{AtEpisode: 5, Icon: "y"},
		}},
	}
	episodes := []*entities.Episode{
		{Season: 1, Number: 1, Title: "The Beginning"},
		{Season: 1, Number: 2, Title: "The Road", Movements: []entities.Movement{
			{CharacterID: "A", FromLocationID: "L1", ToLocationID: "L2"},
		}},
		{Season: 2, Number: 1, Title: "The End", Movements: []entities.Movement{
			{CharacterID: "A", FromLocationID: "L2", ToLocationID: "L2", IsDead: true},
		}},
	}
	return entities.NewCatalog(locations, characters, episodes)
}

func journeyStarts() StartConfig {
	return StartConfig{Default: "L1"}
}

func journeyHistory() *History {
	return NewHistory(journeyCatalog(), journeyStarts())
}
