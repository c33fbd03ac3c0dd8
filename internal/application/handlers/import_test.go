package handlers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smile-plzz/chronicle-core/internal/domain/mocks"
	"github.com/smile-plzz/chronicle-core/internal/infrastructure/parsers"
)

func validRawCatalog() *parsers.RawCatalog {
	return &parsers.RawCatalog{
		Locations: []parsers.RawLocation{
			{ID: "WINTERFELL", Name: "Winterfell", X: 20, Y: 20},
			{ID: "KINGS_LANDING", Name: "King's Landing", X: 50, Y: 70},
		},
		Characters: []parsers.RawCharacter{
			{ID: "JON", Name: "Jon Snow", House: "Stark", Eras: []parsers.RawEra{
				{AtEpisode: 0, Icon: "J"},
				{AtEpisode: 5, Icon: "K"},
			}},
		},
		Episodes: []parsers.RawEpisode{
			{Season: 1, Number: 1, Title: "Winter Is Coming",
				Movements: []parsers.RawMovement{
					{CharacterID: "JON", FromLocationID: "WINTERFELL", ToLocationID: "KINGS_LANDING"},
				},
				Events: []parsers.RawEvent{
					{Title: "The Arrival", LocationID: "WINTERFELL", Type: "political"},
				}},
		},
	}
}

func TestImportHandler_Handle_ValidCatalog(t *testing.T) {
	store := mocks.NewCatalogStore()
	handler := NewImportHandler(store)

	result, err := handler.Handle(context.Background(), validRawCatalog(), ImportOptions{})

	require.NoError(t, err)
	assert.Equal(t, 2, result.Locations)
	assert.Equal(t, 1, result.Characters)
	assert.Equal(t, 1, result.Episodes)
	assert.Empty(t, result.Errors)

	assert.Len(t, store.Locations, 2)
	assert.Len(t, store.Characters, 1)
	require.Len(t, store.Episodes, 1)
	assert.Len(t, store.Episodes[0].Movements, 1)
	assert.Len(t, store.Episodes[0].Events, 1)
}

func TestImportHandler_Handle_DryRun(t *testing.T) {
	store := mocks.NewCatalogStore()
	handler := NewImportHandler(store)

	result, err := handler.Handle(context.Background(), validRawCatalog(), ImportOptions{DryRun: true})

	require.NoError(t, err)
	assert.Equal(t, 2, result.Locations)
	assert.Empty(t, store.Locations, "dry run must not save")
	assert.Empty(t, store.Episodes)
}

func TestImportHandler_Handle_MissingFields(t *testing.T) {
	store := mocks.NewCatalogStore()
	handler := NewImportHandler(store)

	raw := &parsers.RawCatalog{
		Locations: []parsers.RawLocation{
			{ID: "", Name: "Nameless"},
			{ID: "OK", Name: "Fine"},
		},
		Characters: []parsers.RawCharacter{
			{ID: "GHOST", Name: ""},
		},
	}

	result, err := handler.Handle(context.Background(), raw, ImportOptions{})

	require.NoError(t, err)
	assert.Equal(t, 1, result.Locations)
	assert.Equal(t, 0, result.Characters)
	require.Len(t, result.Errors, 2)
	assert.Equal(t, "location", result.Errors[0].Section)
	assert.Equal(t, "character", result.Errors[1].Section)
}

func TestImportHandler_Handle_ErasOutOfOrder(t *testing.T) {
	store := mocks.NewCatalogStore()
	handler := NewImportHandler(store)

	raw := &parsers.RawCatalog{
		Characters: []parsers.RawCharacter{
			{ID: "JON", Name: "Jon Snow", Eras: []parsers.RawEra{
				{AtEpisode: 5, Icon: "K"},
				{AtEpisode: 0, Icon: "J"},
			}},
		},
	}

	result, err := handler.Handle(context.Background(), raw, ImportOptions{})

	require.NoError(t, err)
	assert.Equal(t, 0, result.Characters)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "eras", result.Errors[0].Field)
}

func TestImportHandler_Handle_InvalidEventType(t *testing.T) {
	store := mocks.NewCatalogStore()
	handler := NewImportHandler(store)

	raw := &parsers.RawCatalog{
		Episodes: []parsers.RawEpisode{
			{Season: 1, Number: 1, Events: []parsers.RawEvent{
				{Title: "The Fair", LocationID: "WINTERFELL", Type: "festival"},
			}},
		},
	}

	result, err := handler.Handle(context.Background(), raw, ImportOptions{})

	require.NoError(t, err)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "type", result.Errors[0].Field)
	assert.Equal(t, "festival", result.Errors[0].Value)

	// The episode itself survives without the bad event.
	require.Len(t, store.Episodes, 1)
	assert.Empty(t, store.Episodes[0].Events)
}

func TestImportHandler_Handle_GeneratesEventIDs(t *testing.T) {
	store := mocks.NewCatalogStore()
	handler := NewImportHandler(store)

	_, err := handler.Handle(context.Background(), validRawCatalog(), ImportOptions{})
	require.NoError(t, err)

	require.Len(t, store.Episodes, 1)
	require.Len(t, store.Episodes[0].Events, 1)
	assert.NotEmpty(t, store.Episodes[0].Events[0].ID)
}

func TestImportHandler_Handle_IncompleteMovement(t *testing.T) {
	store := mocks.NewCatalogStore()
	handler := NewImportHandler(store)

	raw := &parsers.RawCatalog{
		Episodes: []parsers.RawEpisode{
			{Season: 1, Number: 1, Movements: []parsers.RawMovement{
				{CharacterID: "JON", FromLocationID: "", ToLocationID: "KINGS_LANDING"},
				{CharacterID: "JON", FromLocationID: "WINTERFELL", ToLocationID: "KINGS_LANDING"},
			}},
		},
	}

	result, err := handler.Handle(context.Background(), raw, ImportOptions{})

	require.NoError(t, err)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "movement", result.Errors[0].Section)
	require.Len(t, store.Episodes, 1)
	assert.Len(t, store.Episodes[0].Movements, 1)
}

func TestImportHandler_Handle_StoreError(t *testing.T) {
	store := mocks.NewCatalogStore()
	store.Err = assert.AnError
	handler := NewImportHandler(store)

	_, err := handler.Handle(context.Background(), validRawCatalog(), ImportOptions{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "saving locations")
}
