package services_test

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"billboardadmin/services"
	"billboardadmin/testhelpers"
)

// buildImportWorkbook writes rows under the template header into an
// in-memory workbook.
func buildImportWorkbook(t *testing.T, rows [][]string) *bytes.Reader {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	header := []string{"name", "size", "faces", "level", "municipality", "district", "landmark", "latitude", "longitude"}
	for i, col := range header {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, col)
	}
	for r, row := range rows {
		for c, val := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			f.SetCellValue(sheet, cell, val)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("could not write workbook: %v", err)
	}
	return bytes.NewReader(buf.Bytes())
}

func TestParseBillboardsWorkbook(t *testing.T) {
	reader := buildImportWorkbook(t, [][]string{
		{"لوحة 1", "4x12", "2", "A", "طرابلس المركز", "طريق المطار", "قرب الجسر", "32.88", "13.19"},
		{"لوحة 2", "6x3", "1", "B", "تاجوراء", "", "", "", ""},
		{"", "", "", "", "", "", "", "", ""}, // blank rows are skipped
	})

	rows, err := services.ParseBillboardsWorkbook(reader)
	if err != nil {
		t.Fatalf("ParseBillboardsWorkbook returned error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0]["name"] != "لوحة 1" || rows[0]["size"] != "4x12" {
		t.Errorf("first row = %v", rows[0])
	}
	if rows[1]["faces"] != "1" {
		t.Errorf("faces = %q, want 1", rows[1]["faces"])
	}
}

func TestValidateBillboardRows(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestBillboard(t, app, "لوحة قائمة", "3x4", 2)

	rows := []map[string]string{
		{"name": "", "size": "4x12"},                    // missing name
		{"name": "لوحة قائمة", "size": "4x12"},          // exists already
		{"name": "جديدة", "size": "غير مفهوم"},          // unreadable size
		{"name": "سليمة", "size": "6x3", "faces": "٢"},  // non-numeric faces
		{"name": "سليمة", "size": "6x3"},                // duplicate of previous row
		{"name": "تامة", "size": "4x12", "faces": "2"},  // valid
	}

	errs := services.ValidateBillboardRows(app, rows)
	if len(errs) != 5 {
		t.Fatalf("expected 5 row errors, got %d: %v", len(errs), errs)
	}
	fields := make(map[string]int)
	for _, e := range errs {
		fields[e.Field]++
	}
	if fields["name"] != 3 || fields["size"] != 1 || fields["faces"] != 1 {
		t.Errorf("error fields = %v", fields)
	}
}

func TestCommitBillboardImport(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	reader := buildImportWorkbook(t, [][]string{
		{"لوحة أ", "4 X 12", "2", "A", "طرابلس المركز", "", "", "", ""},
		{"لوحة ب", "6x3", "1", "B", "تاجوراء", "", "", "", ""},
	})
	rows, err := services.ParseBillboardsWorkbook(reader)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	result, err := services.CommitBillboardImport(app, rows)
	if err != nil {
		t.Fatalf("CommitBillboardImport returned error: %v", err)
	}
	if result.Imported != 2 || result.Failed != 0 {
		t.Fatalf("result = %+v, want 2 imported", result)
	}

	boards, _ := app.FindAllRecords("billboards")
	if len(boards) != 2 {
		t.Fatalf("expected 2 billboards, got %d", len(boards))
	}
	sizes := make(map[string]string)
	for _, b := range boards {
		sizes[b.GetString("name")] = b.GetString("size")
	}
	// Sizes stored canonically.
	if sizes["لوحة أ"] != "4x12" {
		t.Errorf("size = %q, want 4x12", sizes["لوحة أ"])
	}
}

func TestCommitBillboardImport_RejectsInvalidSheet(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	rows := []map[string]string{
		{"name": "صالحة", "size": "4x12", "faces": "2"},
		{"name": "", "size": "4x12"},
	}

	result, err := services.CommitBillboardImport(app, rows)
	if err != nil {
		t.Fatalf("CommitBillboardImport returned error: %v", err)
	}
	// Validation failures reject the whole sheet.
	if result.Imported != 0 {
		t.Errorf("imported = %d, want 0", result.Imported)
	}
	if result.Failed != 1 {
		t.Errorf("failed = %d, want 1 distinct row", result.Failed)
	}
	if !result.RolledBack {
		t.Error("expected RolledBack to be set")
	}
	if len(result.Errors) == 0 {
		t.Error("expected row errors to be reported")
	}

	boards, _ := app.FindAllRecords("billboards")
	if len(boards) != 0 {
		t.Errorf("expected no billboards saved, got %d", len(boards))
	}
}

func TestGenerateBillboardTemplate_RoundTrips(t *testing.T) {
	data, err := services.GenerateBillboardTemplate()
	if err != nil {
		t.Fatalf("GenerateBillboardTemplate returned error: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("template is not a readable workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil || len(rows) == 0 {
		t.Fatalf("could not read template rows: %v", err)
	}
	if rows[0][0] != "name" || rows[0][1] != "size" {
		t.Errorf("unexpected header row: %v", rows[0])
	}
}
