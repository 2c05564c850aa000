package services

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"github.com/xuri/excelize/v2"
)

const importBatchSize = 100

// billboardImportColumns is the expected header row of an import
// workbook, in order.
var billboardImportColumns = []string{
	"name", "size", "faces", "level", "municipality", "district",
	"landmark", "latitude", "longitude",
}

// ImportRowError represents a validation or insert failure for one row.
// Row numbers are 1-based workbook rows (the header is row 1).
type ImportRowError struct {
	Row     int    `json:"row"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ImportResult holds the outcome of a billboard import.
type ImportResult struct {
	TotalRows  int              `json:"total_rows"`
	Imported   int              `json:"imported"`
	Failed     int              `json:"failed"`
	Errors     []ImportRowError `json:"errors,omitempty"`
	RolledBack bool             `json:"rolled_back"`
}

// ParseBillboardsWorkbook reads the first sheet of an uploaded Excel file
// into row maps keyed by the template column names.
func ParseBillboardsWorkbook(r io.Reader) ([]map[string]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) < 2 {
		return nil, nil
	}

	header := rows[0]
	var parsed []map[string]string
	for _, raw := range rows[1:] {
		row := make(map[string]string, len(header))
		empty := true
		for i, col := range header {
			key := strings.ToLower(strings.TrimSpace(col))
			var val string
			if i < len(raw) {
				val = strings.TrimSpace(raw[i])
			}
			if val != "" {
				empty = false
			}
			row[key] = val
		}
		if !empty {
			parsed = append(parsed, row)
		}
	}
	return parsed, nil
}

// ValidateBillboardRows checks parsed rows for required fields, numeric
// fields and duplicate names (against both the sheet and existing
// records). An unparsable size is allowed, the cost calculators treat it
// as zero, but it is reported so data problems surface at import time.
func ValidateBillboardRows(app *pocketbase.PocketBase, rows []map[string]string) []ImportRowError {
	existing := make(map[string]bool)
	if records, err := app.FindAllRecords("billboards"); err == nil {
		for _, rec := range records {
			existing[strings.ToLower(rec.GetString("name"))] = true
		}
	}

	seen := make(map[string]int)
	var errs []ImportRowError
	for i, row := range rows {
		rowNum := i + 2 // header is row 1

		name := row["name"]
		if name == "" {
			errs = append(errs, ImportRowError{Row: rowNum, Field: "name", Message: "الاسم مطلوب"})
		} else {
			key := strings.ToLower(name)
			if prev, dup := seen[key]; dup {
				errs = append(errs, ImportRowError{
					Row: rowNum, Field: "name",
					Message: fmt.Sprintf("اسم مكرر في الصف %d", prev),
				})
			}
			seen[key] = rowNum
			if existing[key] {
				errs = append(errs, ImportRowError{Row: rowNum, Field: "name", Message: "اللوحة موجودة مسبقاً"})
			}
		}

		if size := row["size"]; size == "" {
			errs = append(errs, ImportRowError{Row: rowNum, Field: "size", Message: "المقاس مطلوب"})
		} else if _, _, ok := ParseSize(size); !ok {
			errs = append(errs, ImportRowError{Row: rowNum, Field: "size", Message: "تعذر قراءة المقاس"})
		}

		if faces := row["faces"]; faces != "" {
			if v, err := strconv.Atoi(faces); err != nil || v < 1 {
				errs = append(errs, ImportRowError{Row: rowNum, Field: "faces", Message: "عدد الأوجه غير صالح"})
			}
		}
		for _, field := range []string{"latitude", "longitude"} {
			if val := row[field]; val != "" {
				if _, err := strconv.ParseFloat(val, 64); err != nil {
					errs = append(errs, ImportRowError{Row: rowNum, Field: field, Message: "إحداثيات غير صالحة"})
				}
			}
		}
	}
	return errs
}

// CommitBillboardImport validates and batch-inserts parsed rows. Rows are
// processed in chunks; a failing chunk is rolled back as a unit and the
// import continues with the next chunk.
func CommitBillboardImport(app *pocketbase.PocketBase, rows []map[string]string) (*ImportResult, error) {
	if errs := ValidateBillboardRows(app, rows); len(errs) > 0 {
		failed := make(map[int]bool)
		for _, e := range errs {
			failed[e.Row] = true
		}
		return &ImportResult{
			TotalRows:  len(rows),
			Failed:     len(failed),
			Errors:     errs,
			RolledBack: true,
		}, nil
	}

	col, err := app.FindCollectionByNameOrId("billboards")
	if err != nil {
		return nil, fmt.Errorf("billboards collection not found: %w", err)
	}

	result := &ImportResult{TotalRows: len(rows)}
	for start := 0; start < len(rows); start += importBatchSize {
		end := start + importBatchSize
		if end > len(rows) {
			end = len(rows)
		}
		chunk := rows[start:end]

		err := app.RunInTransaction(func(txApp core.App) error {
			for _, row := range chunk {
				rec := core.NewRecord(col)
				rec.Set("name", row["name"])
				rec.Set("size", CanonicalSize(row["size"]))
				rec.Set("level", row["level"])
				rec.Set("municipality", row["municipality"])
				rec.Set("district", row["district"])
				rec.Set("landmark", row["landmark"])
				rec.Set("status", "available")
				if v, err := strconv.Atoi(row["faces"]); err == nil {
					rec.Set("faces", v)
				} else {
					rec.Set("faces", defaultFaceCount)
				}
				if v, err := strconv.ParseFloat(row["latitude"], 64); err == nil {
					rec.Set("latitude", v)
				}
				if v, err := strconv.ParseFloat(row["longitude"], 64); err == nil {
					rec.Set("longitude", v)
				}
				if err := txApp.Save(rec); err != nil {
					return fmt.Errorf("save billboard %q: %w", row["name"], err)
				}
			}
			return nil
		})
		if err != nil {
			result.Failed += len(chunk)
			result.RolledBack = true
			result.Errors = append(result.Errors, ImportRowError{
				Row:     start + 2,
				Message: err.Error(),
			})
		} else {
			result.Imported += len(chunk)
		}
	}
	return result, nil
}

// GenerateBillboardTemplate builds the import template workbook: the
// header row plus one example billboard.
func GenerateBillboardTemplate() ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#EEEEEE"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	for i, colName := range billboardImportColumns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("cell name: %w", err)
		}
		f.SetCellValue(sheet, cell, colName)
	}
	lastCell, _ := excelize.CoordinatesToCellName(len(billboardImportColumns), 1)
	f.SetCellStyle(sheet, "A1", lastCell, headerStyle)

	example := []any{"TR-0001", "4x3", 2, "A", "طرابلس المركز", "حي الأندلس", "بجوار الجزيرة", 32.8872, 13.1913}
	for i, v := range example {
		cell, err := excelize.CoordinatesToCellName(i+1, 2)
		if err != nil {
			return nil, fmt.Errorf("cell name: %w", err)
		}
		f.SetCellValue(sheet, cell, v)
	}

	var buf []byte
	w, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write template: %w", err)
	}
	buf = w.Bytes()
	return buf, nil
}
