package services

import (
	"github.com/shopspring/decimal"
)

// DiscountMode selects how the contract discount field is interpreted.
type DiscountMode string

const (
	DiscountPercent DiscountMode = "percent"
	DiscountFixed   DiscountMode = "fixed"
)

// DefaultFeeRate is the operating fee percentage applied to the net
// rental cost when the contract carries no explicit rate.
const DefaultFeeRate = 3.0

// ContractInput carries everything the total assembler needs. Rent,
// Installation and Print are amounts in the base currency.
type ContractInput struct {
	Rent         float64
	Installation float64
	Print        float64
	Discount     float64
	DiscountMode DiscountMode
	FeeRate      float64 // percent; <= 0 means DefaultFeeRate
}

// ContractTotals is the single authoritative set of contract figures.
// Every page that displays or persists money derives it from here.
type ContractTotals struct {
	Subtotal       float64
	DiscountAmount float64
	FinalTotal     float64
	RentalOnly     float64
	OperatingFee   float64
}

// AssembleTotals computes all derived contract figures:
//
//	subtotal    = rent + installation + print
//	discount    = percent of subtotal, or the fixed amount
//	finalTotal  = max(0, subtotal - discount)
//	rentalOnly  = max(0, finalTotal - installation - print)
//	operatingFee = round(rentalOnly * feeRate/100, 2)
func AssembleTotals(in ContractInput) ContractTotals {
	rent := decimal.NewFromFloat(in.Rent)
	install := decimal.NewFromFloat(in.Installation)
	printCost := decimal.NewFromFloat(in.Print)
	subtotal := rent.Add(install).Add(printCost)

	discount := DiscountAmount(subtotal, decimal.NewFromFloat(in.Discount), in.DiscountMode)

	finalTotal := subtotal.Sub(discount)
	if finalTotal.IsNegative() {
		finalTotal = decimal.Zero
	}

	rentalOnly := finalTotal.Sub(install).Sub(printCost)
	if rentalOnly.IsNegative() {
		rentalOnly = decimal.Zero
	}

	feeRate := in.FeeRate
	if feeRate <= 0 {
		feeRate = DefaultFeeRate
	}
	fee := rentalOnly.Mul(decimal.NewFromFloat(feeRate)).Div(decimal.NewFromInt(100)).Round(2)

	return ContractTotals{
		Subtotal:       subtotal.Round(2).InexactFloat64(),
		DiscountAmount: discount.Round(2).InexactFloat64(),
		FinalTotal:     finalTotal.Round(2).InexactFloat64(),
		RentalOnly:     rentalOnly.Round(2).InexactFloat64(),
		OperatingFee:   fee.InexactFloat64(),
	}
}

// DiscountAmount resolves a discount value against a subtotal. Percentage
// mode takes discount percent of the subtotal; fixed mode takes the value
// as-is. Negative discounts are treated as zero.
func DiscountAmount(subtotal, discount decimal.Decimal, mode DiscountMode) decimal.Decimal {
	if !discount.IsPositive() {
		return decimal.Zero
	}
	if mode == DiscountPercent {
		return subtotal.Mul(discount).Div(decimal.NewFromInt(100)).Round(2)
	}
	return discount
}

// CalcRentalBase prices the billboard set for a contract. A stored
// historical price snapshot (billboard id -> price) wins over a fresh
// lookup so re-opening an old contract never silently reprices it.
// Per-billboard prices are returned alongside the total so the save path
// can persist the snapshot for next time.
func CalcRentalBase(rows []PricingRow, boards []Billboard, category string, months int, snapshot map[string]float64) (float64, map[string]float64) {
	d, exact := DurationForMonths(months)
	perBoard := make(map[string]float64, len(boards))
	var total float64
	for _, b := range boards {
		if p, ok := snapshot[b.ID]; ok && p > 0 {
			perBoard[b.ID] = p
			total += p
			continue
		}
		price, ok := LookupPrice(rows, b.Size, b.Level, category, d)
		if !ok {
			perBoard[b.ID] = 0
			continue
		}
		if !exact {
			price = price * float64(months)
		}
		perBoard[b.ID] = price
		total += price
	}
	return total, perBoard
}
