package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strconv"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/valter-silva-au/cronalpha/pkg/models"
)

// loadSQLite runs query against the database at path. Result columns become
// items and result rows become respondents.
func loadSQLite(ctx context.Context, path, query string) (*models.ScoreTable, error) {
	// sql.Open would silently create a missing database.
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("opening database %s: %w", path, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database %s: %w", path, err)
	}
	defer func() { _ = db.Close() }()
	db.SetMaxOpenConns(1)

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", path, err)
	}
	defer func() { _ = rows.Close() }()

	items, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("reading columns from %s: %w", path, err)
	}

	var data [][]float64
	raw := make([]any, len(items))
	dest := make([]any, len(items))
	for i := range raw {
		dest[i] = &raw[i]
	}
	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scanning row from %s: %w", path, err)
		}
		row := make([]float64, len(items))
		for c, v := range raw {
			f, ok := sqlValueToFloat(v)
			if !ok {
				return nil, models.NewInvalidInputError("respondent %d, item %q: non-numeric value %v", len(data)+1, items[c], v)
			}
			row[c] = f
		}
		data = append(data, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows from %s: %w", path, err)
	}

	return models.NewScoreTable(items, data)
}

func sqlValueToFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case int64:
		return float64(x), true
	case float64:
		return x, true
	case bool:
		if x {
			return 1, true
		}
		return 0, true
	case []byte:
		return parseNumber(string(x))
	case string:
		return parseNumber(x)
	default:
		return 0, false
	}
}

func parseNumber(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return f, err == nil
}
