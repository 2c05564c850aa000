package services

import (
	"encoding/json"
	"time"

	"github.com/pocketbase/pocketbase/core"
	"github.com/shopspring/decimal"
)

// InvoiceLine is one billed row of an invoice.
type InvoiceLine struct {
	Description    string  `json:"description"`
	ContractNumber string  `json:"contract_number,omitempty"`
	Amount         float64 `json:"amount"`
}

// InvoiceData is the typed model handed to the invoice renderer and
// persisted as a printed_invoices snapshot for later re-print.
type InvoiceData struct {
	Number       string
	InvoiceType  string
	Date         string
	CustomerName string
	Company      string
	Phone        string
	CurrencyCode string
	Lines        []InvoiceLine
	Total        float64
	TotalWords   string
	Notes        string
}

// BuildInvoiceFromContracts assembles an invoice covering one or more
// contracts, one line per contract, priced at each contract's persisted
// final total.
func BuildInvoiceFromContracts(customer Customer, contracts []*core.Record, invoiceType string, now time.Time) InvoiceData {
	currency := "دينار"
	total := decimal.Zero
	var lines []InvoiceLine

	for _, rec := range contracts {
		if c := rec.GetString("currency_code"); c != "" {
			currency = c
		}
		amount := rec.GetFloat("total")
		total = total.Add(decimal.NewFromFloat(amount))
		desc := rec.GetString("ad_type")
		if desc == "" {
			desc = "إيجار لوحات إعلانية"
		}
		lines = append(lines, InvoiceLine{
			Description:    desc,
			ContractNumber: rec.GetString("contract_number"),
			Amount:         amount,
		})
	}

	t := total.Round(2).InexactFloat64()
	return InvoiceData{
		InvoiceType:  invoiceType,
		Date:         FormatArabicDate(now),
		CustomerName: customer.Name,
		Company:      customer.Company,
		Phone:        customer.Phone,
		CurrencyCode: currency,
		Lines:        lines,
		Total:        t,
		TotalWords:   AmountToArabicWords(t, currency),
	}
}

// EncodeInvoiceLines serializes invoice lines for the printed_invoices
// snapshot column.
func EncodeInvoiceLines(lines []InvoiceLine) string {
	data, err := json.Marshal(lines)
	if err != nil {
		return "[]"
	}
	return string(data)
}

// ParseInvoiceLines decodes stored snapshot lines; malformed JSON yields
// an empty list.
func ParseInvoiceLines(raw string) []InvoiceLine {
	if raw == "" {
		return nil
	}
	var lines []InvoiceLine
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		return nil
	}
	return lines
}
