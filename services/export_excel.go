package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// GenerateStatementExcel creates an Excel rendition of a customer account
// statement and returns the file contents as a byte slice.
func GenerateStatementExcel(data StatementData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Statement"
	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	columns := []string{"A", "B", "C", "D", "E", "F"}
	widths := []float64{14, 40, 16, 14, 14, 14}
	for i, c := range columns {
		if err := f.SetColWidth(sheetName, c, c, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", c, err)
		}
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#333333"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}
	amountStyle, err := f.NewStyle(&excelize.Style{
		NumFmt: 4, // #,##0.00
	})
	if err != nil {
		return nil, fmt.Errorf("create amount style: %w", err)
	}
	totalStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Size: 11},
		NumFmt: 4,
	})
	if err != nil {
		return nil, fmt.Errorf("create total style: %w", err)
	}

	// Title block.
	f.SetCellValue(sheetName, "A1", "كشف حساب")
	f.SetCellStyle(sheetName, "A1", "A1", titleStyle)
	f.SetCellValue(sheetName, "A2", data.CustomerName)
	if data.Company != "" {
		f.SetCellValue(sheetName, "B2", data.Company)
	}
	f.SetCellValue(sheetName, "A3", data.GeneratedAt)

	// Column headers.
	headers := []string{"التاريخ", "البيان", "المرجع", "مدين", "دائن", "الرصيد"}
	headerRow := 5
	for i, h := range headers {
		cell := fmt.Sprintf("%s%d", columns[i], headerRow)
		f.SetCellValue(sheetName, cell, h)
	}
	f.SetCellStyle(sheetName,
		fmt.Sprintf("A%d", headerRow),
		fmt.Sprintf("F%d", headerRow),
		headerStyle)

	// Data rows.
	rowNum := headerRow
	for _, line := range data.Lines {
		rowNum++
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", rowNum), line.Date)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", rowNum), line.Description)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", rowNum), line.Reference)
		if line.Debit != 0 {
			f.SetCellValue(sheetName, fmt.Sprintf("D%d", rowNum), line.Debit)
		}
		if line.Credit != 0 {
			f.SetCellValue(sheetName, fmt.Sprintf("E%d", rowNum), line.Credit)
		}
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", rowNum), line.Balance)
		f.SetCellStyle(sheetName,
			fmt.Sprintf("D%d", rowNum),
			fmt.Sprintf("F%d", rowNum),
			amountStyle)
	}

	// Summary row.
	rowNum += 2
	f.SetCellValue(sheetName, fmt.Sprintf("B%d", rowNum), "الإجمالي")
	f.SetCellValue(sheetName, fmt.Sprintf("D%d", rowNum), data.Summary.TotalDebit)
	f.SetCellValue(sheetName, fmt.Sprintf("E%d", rowNum), data.Summary.TotalCredit)
	f.SetCellValue(sheetName, fmt.Sprintf("F%d", rowNum), data.Summary.Balance)
	f.SetCellStyle(sheetName,
		fmt.Sprintf("B%d", rowNum),
		fmt.Sprintf("F%d", rowNum),
		totalStyle)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}
