package parsers

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSONParser parses a full catalog from JSON format.
type JSONParser struct{}

// Parse reads JSON from the reader and returns the parsed catalog.
func (p *JSONParser) Parse(r io.Reader) (*RawCatalog, error) {
	var catalog RawCatalog

	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&catalog); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}

	// Set positions (array index + 1, 1-indexed)
	for i := range catalog.Locations {
		catalog.Locations[i].LineNum = i + 1
	}
	for i := range catalog.Characters {
		catalog.Characters[i].LineNum = i + 1
	}
	for i := range catalog.Episodes {
		catalog.Episodes[i].LineNum = i + 1
		for j := range catalog.Episodes[i].Movements {
			catalog.Episodes[i].Movements[j].LineNum = j + 1
		}
		for j := range catalog.Episodes[i].Events {
			catalog.Episodes[i].Events[j].LineNum = j + 1
		}
	}

	return &catalog, nil
}
