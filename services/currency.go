package services

import "github.com/shopspring/decimal"

// ConvertAmount applies a currency exchange rate to an amount, rounded to
// 2 decimals. A rate of zero or less means "no conversion" and returns
// the amount unchanged (still rounded).
func ConvertAmount(amount, rate float64) float64 {
	a := decimal.NewFromFloat(amount)
	if rate <= 0 {
		return a.Round(2).InexactFloat64()
	}
	return a.Mul(decimal.NewFromFloat(rate)).Round(2).InexactFloat64()
}

// Convert returns a copy of the totals with every monetary figure
// multiplied by the exchange rate, for display or storage in the
// contract's selected currency.
func (t ContractTotals) Convert(rate float64) ContractTotals {
	return ContractTotals{
		Subtotal:       ConvertAmount(t.Subtotal, rate),
		DiscountAmount: ConvertAmount(t.DiscountAmount, rate),
		FinalTotal:     ConvertAmount(t.FinalTotal, rate),
		RentalOnly:     ConvertAmount(t.RentalOnly, rate),
		OperatingFee:   ConvertAmount(t.OperatingFee, rate),
	}
}
