package storage

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/valter-silva-au/cronalpha/pkg/models"
)

func loadCSV(path string, delimiter rune, header bool) (*models.ScoreTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	reader.Comma = delimiter
	reader.TrimLeadingSpace = true
	// Ragged rows are reported by ParseScoreTable as invalid input.
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	table, err := tableFromRecords(path, records, header)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return table, nil
}
