// Package mocks provides hand-rolled mock implementations of the
// domain ports for tests.
package mocks

import (
	"context"

	"github.com/smile-plzz/chronicle-core/internal/domain/entities"
)

// CatalogStore is a mock implementation of ports.CatalogStore backed
// by in-memory slices.
type CatalogStore struct {
	Locations  []*entities.Location
	Characters []*entities.Character
	Episodes   []*entities.Episode
	Err        error
}

// NewCatalogStore creates a new mock CatalogStore.
func NewCatalogStore() *CatalogStore {
	return &CatalogStore{}
}

// EnsureSchema creates the database schema if it doesn't exist.
func (m *CatalogStore) EnsureSchema(_ context.Context) error {
	return m.Err
}

// Close closes the store.
func (m *CatalogStore) Close() error {
	return nil
}

// SaveLocations saves or updates locations.
func (m *CatalogStore) SaveLocations(_ context.Context, locations []*entities.Location) error {
	if m.Err != nil {
		return m.Err
	}
	m.Locations = append(m.Locations, locations...)
	return nil
}

// SaveCharacters saves or updates characters.
func (m *CatalogStore) SaveCharacters(_ context.Context, characters []*entities.Character) error {
	if m.Err != nil {
		return m.Err
	}
	m.Characters = append(m.Characters, characters...)
	return nil
}

// SaveEpisodes saves or updates the episode sequence.
func (m *CatalogStore) SaveEpisodes(_ context.Context, episodes []*entities.Episode) error {
	if m.Err != nil {
		return m.Err
	}
	m.Episodes = append(m.Episodes, episodes...)
	return nil
}

// LoadCatalog loads the full catalog.
func (m *CatalogStore) LoadCatalog(_ context.Context) (*entities.Catalog, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return entities.NewCatalog(m.Locations, m.Characters, m.Episodes), nil
}

// CountEpisodes returns the number of stored episodes.
func (m *CatalogStore) CountEpisodes(_ context.Context) (int, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	return len(m.Episodes), nil
}
