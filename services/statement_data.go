package services

import "time"

// StatementData is the typed model handed to the account statement
// renderer and the Excel export.
type StatementData struct {
	CustomerName string
	Company      string
	Phone        string
	GeneratedAt  string
	Lines        []StatementLine
	Summary      StatementSummary
}

// BuildStatementData assembles a customer statement from ledger entries.
func BuildStatementData(customer Customer, entries []LedgerEntry, now time.Time) StatementData {
	lines, summary := BuildStatementLines(entries)
	return StatementData{
		CustomerName: customer.Name,
		Company:      customer.Company,
		Phone:        customer.Phone,
		GeneratedAt:  FormatArabicDate(now),
		Lines:        lines,
		Summary:      summary,
	}
}
