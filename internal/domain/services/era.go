package services

import (
	"fmt"

	"github.com/smile-plzz/chronicle-core/internal/domain/entities"
)

// EraService selects the display icon a character shows at the cursor.
type EraService struct {
	catalog *entities.Catalog
}

// NewEraService creates a new EraService.
func NewEraService(catalog *entities.Catalog) *EraService {
	return &EraService{catalog: catalog}
}

// Resolve returns the latest applicable era icon for the character:
// the last era whose threshold does not exceed the cursor, falling
// back to the default icon when no era qualifies or the character has
// none. The cursor is taken as given: a cursor past the end of the
// chronology still qualifies every era.
func (s *EraService) Resolve(characterID string, cursor int) (string, error) {
	ch := s.catalog.Character(characterID)
	if ch == nil {
		return "", fmt.Errorf("character not found: %s", characterID)
	}
	return ch.IconAt(cursor), nil
}
