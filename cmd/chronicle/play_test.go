package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/smile-plzz/chronicle-core/internal/domain/entities"
	"github.com/smile-plzz/chronicle-core/internal/domain/services"
)

func seasonedTimeline() *services.Timeline {
	catalog := entities.NewCatalog(nil, nil, []*entities.Episode{
		{Season: 1, Number: 1},
		{Season: 1, Number: 2},
		{Season: 2, Number: 1},
		{Season: 1, Number: 3},
		{Season: 2, Number: 2},
	})
	return services.NewTimeline(catalog)
}

func TestAdvanceSelectable_SkipsFilteredSeasons(t *testing.T) {
	timeline := seasonedTimeline()
	timeline.FilterSeason(2)

	selectable := make(map[int]bool)
	for _, i := range timeline.SelectableIndices() {
		selectable[i] = true
	}

	// From episode 0 playback jumps straight to the season-2 indices.
	assert.True(t, advanceSelectable(timeline, selectable))
	assert.Equal(t, 2, timeline.Cursor())

	assert.True(t, advanceSelectable(timeline, selectable))
	assert.Equal(t, 4, timeline.Cursor())

	assert.False(t, advanceSelectable(timeline, selectable))
}

func TestAdvanceSelectable_Unfiltered(t *testing.T) {
	timeline := seasonedTimeline()

	selectable := make(map[int]bool)
	for _, i := range timeline.SelectableIndices() {
		selectable[i] = true
	}

	for want := 1; want < 5; want++ {
		assert.True(t, advanceSelectable(timeline, selectable))
		assert.Equal(t, want, timeline.Cursor())
	}
	assert.False(t, advanceSelectable(timeline, selectable))
}
