package parsers

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// CSVParser parses a movement log from CSV format. Rows sharing a
// (season, episode) pair are grouped into one episode, in order of
// first appearance; locations and characters are not carried by this
// format.
type CSVParser struct{}

// Parse reads CSV from the reader and returns the parsed catalog.
// Expected columns: season, episode, title, character_id,
// from_location_id, to_location_id, is_dead, is_fast_travel.
func (p *CSVParser) Parse(r io.Reader) (*RawCatalog, error) {
	reader := csv.NewReader(r)

	colIndex, err := p.readHeader(reader)
	if err != nil {
		return nil, err
	}

	return p.readRecords(reader, colIndex)
}

// readHeader reads and validates the CSV header row.
func (p *CSVParser) readHeader(reader *csv.Reader) (map[string]int, error) {
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	colIndex := make(map[string]int)
	for i, col := range header {
		colIndex[col] = i
	}

	requiredCols := []string{"season", "episode", "character_id", "from_location_id", "to_location_id"}
	for _, col := range requiredCols {
		if _, ok := colIndex[col]; !ok {
			return nil, fmt.Errorf("missing required column: %s", col)
		}
	}

	return colIndex, nil
}

// readRecords reads all data rows, grouping movements into episodes.
func (p *CSVParser) readRecords(reader *csv.Reader, colIndex map[string]int) (*RawCatalog, error) {
	catalog := &RawCatalog{}
	episodeIdx := make(map[[2]int]int) // (season, number) -> index in catalog.Episodes
	lineNum := 1                       // header is line 1

	for {
		lineNum++
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}

		season, err := parseIntColumn(record, colIndex, "season", lineNum)
		if err != nil {
			return nil, err
		}
		number, err := parseIntColumn(record, colIndex, "episode", lineNum)
		if err != nil {
			return nil, err
		}

		movement, err := p.parseMovement(record, colIndex, lineNum)
		if err != nil {
			return nil, err
		}

		key := [2]int{season, number}
		idx, ok := episodeIdx[key]
		if !ok {
			idx = len(catalog.Episodes)
			episodeIdx[key] = idx
			catalog.Episodes = append(catalog.Episodes, RawEpisode{
				Season:  season,
				Number:  number,
				Title:   getColumn(record, colIndex, "title"),
				LineNum: lineNum,
			})
		}
		catalog.Episodes[idx].Movements = append(catalog.Episodes[idx].Movements, movement)
	}

	return catalog, nil
}

// parseMovement converts a CSV record to a RawMovement.
func (p *CSVParser) parseMovement(record []string, colIndex map[string]int, lineNum int) (RawMovement, error) {
	movement := RawMovement{
		CharacterID:    getColumn(record, colIndex, "character_id"),
		FromLocationID: getColumn(record, colIndex, "from_location_id"),
		ToLocationID:   getColumn(record, colIndex, "to_location_id"),
		LineNum:        lineNum,
	}

	for _, flag := range []struct {
		col  string
		dest *bool
	}{
		{"is_dead", &movement.IsDead},
		{"is_fast_travel", &movement.IsFastTravel},
	} {
		raw := getColumn(record, colIndex, flag.col)
		if raw == "" {
			continue
		}
		val, err := strconv.ParseBool(raw)
		if err != nil {
			return RawMovement{}, fmt.Errorf("line %d: invalid %s value %q: %w", lineNum, flag.col, raw, err)
		}
		*flag.dest = val
	}

	return movement, nil
}

// parseIntColumn parses a required integer column.
func parseIntColumn(record []string, colIndex map[string]int, col string, lineNum int) (int, error) {
	raw := getColumn(record, colIndex, col)
	val, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("line %d: invalid %s value %q: %w", lineNum, col, raw, err)
	}
	return val, nil
}

// getColumn safely retrieves a column value from a record.
func getColumn(record []string, colIndex map[string]int, col string) string {
	if idx, ok := colIndex[col]; ok && idx < len(record) {
		return record[idx]
	}
	return ""
}
