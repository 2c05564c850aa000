package services

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestGenerateStatementExcel(t *testing.T) {
	data := StatementData{
		CustomerName: "شركة الأفق",
		Company:      "الأفق للدعاية",
		GeneratedAt:  "1 فبراير 2026",
		Lines: []StatementLine{
			{Date: "2026-01-01", Description: "فاتورة", Debit: 1000, Balance: 1000},
			{Date: "2026-01-10", Description: "إيصال قبض", Credit: 600, Balance: 400},
		},
		Summary: StatementSummary{TotalDebit: 1000, TotalCredit: 600, Balance: 400},
	}

	result, err := GenerateStatementExcel(data)
	if err != nil {
		t.Fatalf("GenerateStatementExcel() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateStatementExcel() returned empty bytes")
	}

	f, err := excelize.OpenReader(bytes.NewReader(result))
	if err != nil {
		t.Fatalf("result is not valid Excel: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 || sheets[0] != "Statement" {
		t.Errorf("expected sheet 'Statement', got %v", sheets)
	}

	name, _ := f.GetCellValue("Statement", "A2")
	if name != "شركة الأفق" {
		t.Errorf("expected customer name in A2, got %q", name)
	}
	balance, _ := f.GetCellValue("Statement", "F7")
	if balance == "" {
		t.Error("expected a balance value in the last data row")
	}
}

func TestGenerateStatementExcel_Empty(t *testing.T) {
	result, err := GenerateStatementExcel(StatementData{CustomerName: "عميل"})
	if err != nil {
		t.Fatalf("GenerateStatementExcel() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("empty statement should still produce a workbook")
	}
}
