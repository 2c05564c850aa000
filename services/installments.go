package services

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// InstallmentSpacing controls the gap between auto-generated due dates.
type InstallmentSpacing string

const (
	SpacingMonthly InstallmentSpacing = "monthly"
	SpacingWeekly  InstallmentSpacing = "weekly"
)

// Installment is one entry of a contract's payment schedule. The schedule
// is stored JSON-encoded in a text column on the contract record.
type Installment struct {
	Amount      float64 `json:"amount"`
	DueDate     string  `json:"due_date"`
	Description string  `json:"description,omitempty"`
	Paid        bool    `json:"paid,omitempty"`
}

// GenerateInstallments splits a total into count even installments with
// monthly or weekly spacing from the start date. Amounts are truncated to
// 2 decimals and the last installment absorbs the remainder, so the sum
// always equals the total exactly (1000 over 3 -> 333.33, 333.33, 333.34).
func GenerateInstallments(total float64, count int, start time.Time, spacing InstallmentSpacing) []Installment {
	if count <= 0 || total <= 0 {
		return nil
	}

	t := decimal.NewFromFloat(total).Round(2)
	per := t.Div(decimal.NewFromInt(int64(count))).Truncate(2)
	last := t.Sub(per.Mul(decimal.NewFromInt(int64(count - 1))))

	out := make([]Installment, 0, count)
	due := start
	for i := 0; i < count; i++ {
		amount := per
		if i == count-1 {
			amount = last
		}
		out = append(out, Installment{
			Amount:      amount.InexactFloat64(),
			DueDate:     due.Format("2006-01-02"),
			Description: fmt.Sprintf("الدفعة %d", i+1),
		})
		if spacing == SpacingWeekly {
			due = due.AddDate(0, 0, 7)
		} else {
			due = due.AddDate(0, 1, 0)
		}
	}
	return out
}

// SumInstallments totals a schedule with 2-decimal precision.
func SumInstallments(items []Installment) float64 {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(decimal.NewFromFloat(it.Amount))
	}
	return sum.Round(2).InexactFloat64()
}

// ParseInstallments decodes a stored schedule blob. Malformed or empty
// JSON yields an empty schedule, never an error; legacy rows may hold
// anything.
func ParseInstallments(raw string) []Installment {
	if raw == "" {
		return nil
	}
	var items []Installment
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil
	}
	return items
}

// EncodeInstallments serializes a schedule for storage.
func EncodeInstallments(items []Installment) string {
	if len(items) == 0 {
		return "[]"
	}
	data, err := json.Marshal(items)
	if err != nil {
		return "[]"
	}
	return string(data)
}

// ParsePriceSnapshot decodes the stored per-billboard historical price
// map (billboard id -> price). Malformed JSON yields an empty map.
func ParsePriceSnapshot(raw string) map[string]float64 {
	if raw == "" {
		return map[string]float64{}
	}
	var m map[string]float64
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		return map[string]float64{}
	}
	return m
}

// EncodePriceSnapshot serializes the per-billboard price map for storage.
func EncodePriceSnapshot(m map[string]float64) string {
	if len(m) == 0 {
		return "{}"
	}
	data, err := json.Marshal(m)
	if err != nil {
		return "{}"
	}
	return string(data)
}
