package golden

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/timothycoolman/Cursor-MatchGoldenSourceAddress/app/models"
)

// LoadRecords đọc golden source workbook (.xlsx) và trả về records theo
// thứ tự dòng trong file.
//
// The first row of the sheet is the header; every following row becomes a
// Record keyed by header name. Cells are typed on read: integers, floats,
// strings, with blank cells as null. sheet may be empty to mean the first
// sheet of the workbook. A missing or unreadable workbook is an error the
// caller treats as fatal; no partial dataset is returned.
func LoadRecords(path, sheet string, logger *zap.Logger) ([]models.Record, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open golden source %s: %w", path, err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("golden source %s has no sheets", path)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("golden source sheet %q is empty", sheet)
	}

	headers := rows[0]
	records := make([]models.Record, 0, len(rows)-1)
	for rowNum, row := range rows[1:] {
		rec := make(models.Record, len(headers))
		for col, name := range headers {
			if name == "" {
				continue
			}
			var cell string
			if col < len(row) {
				cell = row[col]
			}
			rec[name] = typeCell(cell)
		}
		if zip := rec.Get(ColZipcode); zip.Kind() == models.KindString {
			// Pass-through is deliberate; the warning makes the dirty row
			// visible without changing match behavior.
			logger.Warn("non-numeric zipcode in golden source",
				zap.Int("row", rowNum+2),
				zap.String("zipcode", zip.TrimmedText()))
		}
		records = append(records, rec)
	}

	logger.Info("golden source loaded",
		zap.String("path", path),
		zap.String("sheet", sheet),
		zap.Int("records", len(records)))
	return records, nil
}

// typeCell maps a spreadsheet cell string onto the closed scalar set.
func typeCell(cell string) models.Value {
	trimmed := strings.TrimSpace(cell)
	if trimmed == "" {
		return models.Null()
	}
	if i, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return models.Int(i)
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return models.Float(f)
	}
	return models.String(cell)
}
