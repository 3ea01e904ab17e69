// Package storage reads score tables from files on disk. CSV/TSV, Excel
// workbooks and SQLite databases are supported; each loader produces the
// same in-memory models.ScoreTable.
package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/valter-silva-au/cronalpha/pkg/models"
)

// TableLoader reads a score table from path.
type TableLoader interface {
	Load(ctx context.Context, path string) (*models.ScoreTable, error)
}

// LoadOptions configures how tables are read.
type LoadOptions struct {
	// Delimiter separates CSV fields. Ignored for .tsv files.
	Delimiter rune
	// Header treats the first CSV or sheet row as item names.
	Header bool
	// Sheet names the workbook sheet to read. Empty means the first sheet.
	Sheet string
	// Query selects the score table from a SQLite database.
	Query string
	// Items restricts and reorders the item columns. Empty keeps all.
	Items []string
}

// LoadOptionsFromConfig converts the input section of the configuration.
func LoadOptionsFromConfig(cfg models.InputConfig) LoadOptions {
	opts := LoadOptions{
		Delimiter: ',',
		Header:    cfg.Header,
		Sheet:     cfg.Sheet,
		Query:     cfg.Query,
		Items:     cfg.Items,
	}
	if r := []rune(cfg.Delimiter); len(r) == 1 {
		opts.Delimiter = r[0]
	}
	return opts
}

// fileTableLoader dispatches on the file extension.
type fileTableLoader struct {
	opts LoadOptions
}

// NewTableLoader returns a TableLoader that picks a format from the file
// extension.
func NewTableLoader(opts LoadOptions) TableLoader {
	if opts.Delimiter == 0 {
		opts.Delimiter = ','
	}
	return &fileTableLoader{opts: opts}
}

func (l *fileTableLoader) Load(ctx context.Context, path string) (*models.ScoreTable, error) {
	var (
		table *models.ScoreTable
		err   error
	)

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv", ".txt":
		table, err = loadCSV(path, l.opts.Delimiter, l.opts.Header)
	case ".tsv":
		table, err = loadCSV(path, '\t', l.opts.Header)
	case ".xlsx", ".xlsm":
		table, err = loadWorkbook(path, l.opts.Sheet, l.opts.Header)
	case ".db", ".sqlite", ".sqlite3":
		table, err = loadSQLite(ctx, path, l.opts.Query)
	default:
		return nil, fmt.Errorf("unsupported input format %q for %s", ext, path)
	}
	if err != nil {
		return nil, err
	}

	if len(l.opts.Items) > 0 {
		return table.Select(l.opts.Items)
	}
	return table, nil
}

// tableFromRecords turns textual rows into a ScoreTable, taking item names
// from the first row when header is set.
func tableFromRecords(source string, records [][]string, header bool) (*models.ScoreTable, error) {
	if !header {
		return models.ParseScoreTable(nil, records)
	}
	if len(records) == 0 {
		return nil, models.NewInvalidInputError("%s: missing header row", source)
	}

	items := make([]string, len(records[0]))
	for i, name := range records[0] {
		items[i] = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
	}
	return models.ParseScoreTable(items, records[1:])
}
