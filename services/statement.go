package services

import (
	"fmt"

	"github.com/pocketbase/dbx"
	"github.com/pocketbase/pocketbase"
	"github.com/shopspring/decimal"
)

// EntryType classifies a ledger entry and determines its debit/credit
// treatment on the customer statement.
type EntryType string

const (
	EntryReceipt        EntryType = "receipt"         // money received, credit
	EntryInvoice        EntryType = "invoice"         // billed amount, debit
	EntryDebt           EntryType = "debt"            // opening/legacy debt, debit
	EntryAccountPayment EntryType = "account_payment" // on-account payment, credit
)

// IsDebit reports whether an entry type increases what the customer owes.
func (t EntryType) IsDebit() bool {
	return t == EntryInvoice || t == EntryDebt
}

// LedgerEntry is the canonical in-memory shape of a payments record.
type LedgerEntry struct {
	ID         string
	CustomerID string
	ContractID string
	Type       EntryType
	Amount     float64
	Date       string
	Method     string
	Reference  string
	Notes      string
}

// StatementLine is one row of the printed account statement.
type StatementLine struct {
	Date        string
	Description string
	Reference   string
	Debit       float64
	Credit      float64
	Balance     float64
}

// StatementSummary carries the statement totals. Balance is what the
// customer still owes: total debits minus total credits.
type StatementSummary struct {
	TotalDebit  float64
	TotalCredit float64
	Balance     float64
}

// BuildStatementLines turns ledger entries (already sorted by date) into
// statement rows with a running balance.
func BuildStatementLines(entries []LedgerEntry) ([]StatementLine, StatementSummary) {
	var lines []StatementLine
	balance := decimal.Zero
	debit := decimal.Zero
	credit := decimal.Zero

	for _, e := range entries {
		amount := decimal.NewFromFloat(e.Amount)
		line := StatementLine{
			Date:        e.Date,
			Description: entryDescription(e),
			Reference:   e.Reference,
		}
		if e.Type.IsDebit() {
			balance = balance.Add(amount)
			debit = debit.Add(amount)
			line.Debit = amount.Round(2).InexactFloat64()
		} else {
			balance = balance.Sub(amount)
			credit = credit.Add(amount)
			line.Credit = amount.Round(2).InexactFloat64()
		}
		line.Balance = balance.Round(2).InexactFloat64()
		lines = append(lines, line)
	}

	return lines, StatementSummary{
		TotalDebit:  debit.Round(2).InexactFloat64(),
		TotalCredit: credit.Round(2).InexactFloat64(),
		Balance:     balance.Round(2).InexactFloat64(),
	}
}

func entryDescription(e LedgerEntry) string {
	if e.Notes != "" {
		return e.Notes
	}
	switch e.Type {
	case EntryReceipt:
		return "إيصال قبض"
	case EntryInvoice:
		return "فاتورة"
	case EntryDebt:
		return "دين سابق"
	case EntryAccountPayment:
		return "دفعة على الحساب"
	}
	return string(e.Type)
}

// customerBalanceRow matches the aggregation query below.
type customerBalanceRow struct {
	Customer string  `db:"customer"`
	Balance  float64 `db:"balance"`
}

// CustomerBalances computes the outstanding balance per customer with a
// single aggregate query over the payments table: debit entry types count
// positive, credit types negative.
func CustomerBalances(app *pocketbase.PocketBase) (map[string]float64, error) {
	var rows []customerBalanceRow
	err := app.DB().NewQuery(`
		SELECT customer,
		       SUM(CASE WHEN entry_type IN ('invoice', 'debt') THEN amount ELSE -amount END) AS balance
		FROM payments
		GROUP BY customer
	`).All(&rows)
	if err != nil {
		return nil, fmt.Errorf("customer balances: %w", err)
	}
	out := make(map[string]float64, len(rows))
	for _, r := range rows {
		out[r.Customer] = r.Balance
	}
	return out, nil
}

// ContractPaidTotal sums the receipts and on-account payments recorded
// against one contract, for the remaining-balance line on its documents.
func ContractPaidTotal(app *pocketbase.PocketBase, contractID string) (float64, error) {
	var row struct {
		Total float64 `db:"total"`
	}
	err := app.DB().NewQuery(`
		SELECT COALESCE(SUM(amount), 0) AS total
		FROM payments
		WHERE contract = {:contract}
		  AND entry_type IN ('receipt', 'account_payment')
	`).Bind(dbx.Params{"contract": contractID}).One(&row)
	if err != nil {
		return 0, fmt.Errorf("contract paid total: %w", err)
	}
	return row.Total, nil
}
