package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoordinate_DistanceTo(t *testing.T) {
	a := Coordinate{X: 0, Y: 0}
	b := Coordinate{X: 3, Y: 4}

	assert.Equal(t, 5.0, a.DistanceTo(b))
	assert.Equal(t, 5.0, b.DistanceTo(a))
	assert.Zero(t, a.DistanceTo(a))
}

func TestCoordinate_Midpoint(t *testing.T) {
	a := Coordinate{X: 0, Y: 0}
	b := Coordinate{X: 10, Y: 4}

	assert.Equal(t, Coordinate{X: 5, Y: 2}, a.Midpoint(b))
}

func TestCharacter_IconAt(t *testing.T) {
	ch := &Character{ID: "B", Icon: "base", Eras: []Era{
		{AtEpisode: 0, Icon: "x"},
		{AtEpisode: 5, Icon: "y"},
	}}

	assert.Equal(t, "x", ch.IconAt(0))
	assert.Equal(t, "x", ch.IconAt(3))
	assert.Equal(t, "y", ch.IconAt(5))
	assert.Equal(t, "y", ch.IconAt(100))
	assert.Equal(t, "base", ch.IconAt(-1))
}

func TestCharacter_IconAt_EqualThresholdsLastWins(t *testing.T) {
	ch := &Character{ID: "B", Icon: "base", Eras: []Era{
		{AtEpisode: 5, Icon: "first"},
		{AtEpisode: 5, Icon: "second"},
	}}

	assert.Equal(t, "second", ch.IconAt(5))
	assert.Equal(t, "second", ch.IconAt(9))
	assert.Equal(t, "base", ch.IconAt(4))
}

func TestCharacter_IconAt_NoEras(t *testing.T) {
	ch := &Character{ID: "A", Icon: "base"}
	assert.Equal(t, "base", ch.IconAt(0))
}

func TestEventType_IsValid(t *testing.T) {
	for _, typ := range ValidEventTypes {
		assert.True(t, typ.IsValid())
	}
	assert.False(t, EventType("festival").IsValid())
	assert.False(t, EventType("").IsValid())
}

func TestMovement_IsStay(t *testing.T) {
	assert.True(t, Movement{FromLocationID: "L1", ToLocationID: "L1"}.IsStay())
	assert.False(t, Movement{FromLocationID: "L1", ToLocationID: "L2"}.IsStay())
}

func TestCatalog_ClampIndex(t *testing.T) {
	catalog := NewCatalog(nil, nil, []*Episode{
		{Season: 1, Number: 1},
		{Season: 1, Number: 2},
	})

	assert.Equal(t, 0, catalog.ClampIndex(-1))
	assert.Equal(t, 0, catalog.ClampIndex(0))
	assert.Equal(t, 1, catalog.ClampIndex(1))
	assert.Equal(t, 1, catalog.ClampIndex(2))

	empty := NewCatalog(nil, nil, nil)
	assert.Equal(t, 0, empty.ClampIndex(7))
}

func TestCatalog_Lookups(t *testing.T) {
	catalog := NewCatalog(
		[]*Location{{ID: "L1", Name: "One"}},
		[]*Character{{ID: "A", Name: "Arryn"}},
		[]*Episode{{Season: 1, Number: 1}},
	)

	assert.NotNil(t, catalog.Location("L1"))
	assert.Nil(t, catalog.Location("L2"))
	assert.NotNil(t, catalog.Character("A"))
	assert.Nil(t, catalog.Character("B"))
	assert.NotNil(t, catalog.Episode(0))
	assert.Nil(t, catalog.Episode(1))
	assert.Equal(t, 1, catalog.EpisodeCount())
}
