package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smile-plzz/chronicle-core/internal/domain/entities"
)

func TestEraService_Resolve(t *testing.T) {
	svc := NewEraService(journeyCatalog())

	// B's eras: x from episode 0, y from episode 5.
	icon, err := svc.Resolve("B", 3)
	require.NoError(t, err)
	assert.Equal(t, "x", icon)

	icon, err = svc.Resolve("B", 5)
	require.NoError(t, err)
	assert.Equal(t, "y", icon)

	// A cursor past the end of the chronology still qualifies every era.
	icon, err = svc.Resolve("B", 100)
	require.NoError(t, err)
	assert.Equal(t, "y", icon)
}

func TestEraService_Resolve_EqualThresholdsLastWins(t *testing.T) {
	catalog := entities.NewCatalog(
		nil,
		[]*entities.Character{
			{ID: "C", Name: "Cersei", Icon: "base", Eras: []entities.Era{
				{AtEpisode: 2, Icon: "first"},
				{AtEpisode: 2, Icon: "second"},
			}},
		},
		[]*entities.Episode{{Season: 1, Number: 1}},
	)
	svc := NewEraService(catalog)

	icon, err := svc.Resolve("C", 2)
	require.NoError(t, err)
	assert.Equal(t, "second", icon, "equal thresholds resolve to the later list entry")
}

func TestEraService_Resolve_FallbackIcon(t *testing.T) {
	svc := NewEraService(journeyCatalog())

	// A has no eras; the default icon applies everywhere.
	icon, err := svc.Resolve("A", 0)
	require.NoError(t, err)
	assert.Equal(t, "a", icon)
}

func TestEraService_Resolve_UnknownCharacter(t *testing.T) {
	svc := NewEraService(journeyCatalog())

	_, err := svc.Resolve("GHOST", 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "character not found")
}
