package storage

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/valter-silva-au/cronalpha/pkg/models"
)

func loadWorkbook(path, sheet string, header bool) (*models.ScoreTable, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook %s has no sheets", path)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q of %s: %w", sheet, path, err)
	}

	// Blank rows carry no respondent.
	records := rows[:0]
	for _, row := range rows {
		if len(row) > 0 {
			records = append(records, row)
		}
	}

	table, err := tableFromRecords(path, records, header)
	if err != nil {
		return nil, fmt.Errorf("parsing sheet %q of %s: %w", sheet, path, err)
	}
	return table, nil
}
