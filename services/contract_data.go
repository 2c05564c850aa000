package services

import (
	"github.com/pocketbase/pocketbase/core"
)

// BillboardsPerPrintPage is how many billboard rows fit on one A4 print
// page of the contract and invoice templates.
const BillboardsPerPrintPage = 8

// ContractData is the typed model handed to the contract renderers
// (HTML print document and PDF export). Building it is separate from
// rendering so the figures can be tested without markup.
type ContractData struct {
	ID             string
	Number         string
	AdType         string
	CustomerName   string
	Company        string
	Phone          string
	Category       string
	StartDate      string
	EndDate        string
	DurationMonths int
	CurrencyCode   string
	ExchangeRate   float64
	Totals         ContractTotals
	PaidTotal      float64
	Remaining      float64
	TotalWords     string
	Installments   []Installment
	Boards         []Billboard
	Pages          [][]Billboard
	HasDiscount    bool
	PrintEnabled   bool
	FeeRate        float64
}

// PaginateBillboards splits billboard rows into fixed-size pages for the
// print template backgrounds. perPage values below 1 fall back to the
// default page size.
func PaginateBillboards(boards []Billboard, perPage int) [][]Billboard {
	if perPage < 1 {
		perPage = BillboardsPerPrintPage
	}
	var pages [][]Billboard
	for start := 0; start < len(boards); start += perPage {
		end := start + perPage
		if end > len(boards) {
			end = len(boards)
		}
		pages = append(pages, boards[start:end])
	}
	return pages
}

// ContractFromRecord reads the persisted contract figures into a
// ContractData. Boards are passed in because resolving them needs
// queries the caller already performed.
func ContractFromRecord(rec *core.Record, boards []Billboard) ContractData {
	totals := ContractTotals{
		Subtotal:       rec.GetFloat("subtotal"),
		DiscountAmount: rec.GetFloat("discount_amount"),
		FinalTotal:     rec.GetFloat("total"),
		RentalOnly:     rec.GetFloat("rental_only"),
		OperatingFee:   rec.GetFloat("operating_fee"),
	}

	currency := rec.GetString("currency_code")
	if currency == "" {
		currency = "دينار"
	}

	data := ContractData{
		ID:             rec.Id,
		Number:         rec.GetString("contract_number"),
		AdType:         rec.GetString("ad_type"),
		CustomerName:   rec.GetString("customer_name"),
		Company:        rec.GetString("company"),
		Phone:          rec.GetString("phone"),
		Category:       rec.GetString("customer_category"),
		StartDate:      FormatDateArabic(rec.GetString("start_date")),
		EndDate:        FormatDateArabic(rec.GetString("end_date")),
		DurationMonths: rec.GetInt("duration_months"),
		CurrencyCode:   currency,
		ExchangeRate:   rec.GetFloat("exchange_rate"),
		Totals:         totals,
		TotalWords:     AmountToArabicWords(totals.FinalTotal, currency),
		Installments:   ParseInstallments(rec.GetString("installments")),
		Boards:         boards,
		Pages:          PaginateBillboards(boards, BillboardsPerPrintPage),
		HasDiscount:    totals.DiscountAmount > 0,
		PrintEnabled:   rec.GetBool("print_enabled"),
		FeeRate:        rec.GetFloat("fee_rate"),
	}
	if data.FeeRate <= 0 {
		data.FeeRate = DefaultFeeRate
	}
	return data
}
