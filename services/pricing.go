package services

import (
	"fmt"
	"math"

	"github.com/pocketbase/pocketbase"
)

// Duration identifies a rental duration pricing bucket.
type Duration string

const (
	DurationOneDay      Duration = "one_day"
	DurationOneMonth    Duration = "one_month"
	DurationTwoMonths   Duration = "two_months"
	DurationThreeMonths Duration = "three_months"
	DurationSixMonths   Duration = "six_months"
	DurationOneYear     Duration = "full_year"
)

// DurationForMonths maps a contract duration in months to its pricing
// bucket. ok=false means no exact bucket exists; callers then price the
// contract as month count times the one-month price.
func DurationForMonths(months int) (Duration, bool) {
	switch months {
	case 1:
		return DurationOneMonth, true
	case 2:
		return DurationTwoMonths, true
	case 3:
		return DurationThreeMonths, true
	case 6:
		return DurationSixMonths, true
	case 12:
		return DurationOneYear, true
	}
	return DurationOneMonth, false
}

// PricingRow is one priced size within a billboard level / customer
// category combination. Rows are read-only to this application.
type PricingRow struct {
	Size         string
	Level        string
	Category     string
	OneDay       float64
	OneMonth     float64
	TwoMonths    float64
	ThreeMonths  float64
	SixMonths    float64
	FullYear     float64
	InstallPrice float64
	PrintPrice   float64
}

// PriceFor returns the price for a duration bucket.
func (r PricingRow) PriceFor(d Duration) float64 {
	switch d {
	case DurationOneDay:
		return r.OneDay
	case DurationOneMonth:
		return r.OneMonth
	case DurationTwoMonths:
		return r.TwoMonths
	case DurationThreeMonths:
		return r.ThreeMonths
	case DurationSixMonths:
		return r.SixMonths
	case DurationOneYear:
		return r.FullYear
	}
	return 0
}

// LoadPricingRows reads the full pricing table from the pricing collection.
func LoadPricingRows(app *pocketbase.PocketBase) ([]PricingRow, error) {
	records, err := app.FindAllRecords("pricing")
	if err != nil {
		return nil, fmt.Errorf("load pricing rows: %w", err)
	}
	rows := make([]PricingRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, PricingRow{
			Size:         rec.GetString("size"),
			Level:        rec.GetString("billboard_level"),
			Category:     rec.GetString("customer_category"),
			OneDay:       rec.GetFloat("one_day"),
			OneMonth:     rec.GetFloat("one_month"),
			TwoMonths:    rec.GetFloat("two_months"),
			ThreeMonths:  rec.GetFloat("three_months"),
			SixMonths:    rec.GetFloat("six_months"),
			FullYear:     rec.GetFloat("full_year"),
			InstallPrice: rec.GetFloat("installation_price"),
			PrintPrice:   rec.GetFloat("print_price"),
		})
	}
	return rows, nil
}

// LookupPrice resolves a size label to a price for the requested duration
// within a level/category combination. Match order:
//
//  1. exact match against any axis-order variant of the label,
//  2. nearest-area fallback among candidate rows whose own size parses,
//  3. the static default table,
//  4. zero (ok=false).
//
// The nearest-area fallback picks the candidate with the smallest absolute
// area difference; on a tie the first candidate in table order wins.
func LookupPrice(rows []PricingRow, label, level, category string, d Duration) (float64, bool) {
	row, ok := MatchPricingRow(rows, label, level, category)
	if ok {
		return row.PriceFor(d), true
	}
	if p, ok := defaultPrice(label, d); ok {
		return p, true
	}
	return 0, false
}

// MatchPricingRow finds the pricing row for a size label within a
// level/category combination, using exact-variant then nearest-area
// matching. ok=false means no candidate row matched.
func MatchPricingRow(rows []PricingRow, label, level, category string) (PricingRow, bool) {
	variants := SizeVariants(label)

	var candidates []PricingRow
	for _, r := range rows {
		if r.Level != level || r.Category != category {
			continue
		}
		candidates = append(candidates, r)
		canon := CanonicalSize(r.Size)
		for _, v := range variants {
			if canon == v {
				return r, true
			}
		}
	}

	targetArea, ok := SizeArea(label)
	if !ok {
		return PricingRow{}, false
	}
	bestDiff := math.Inf(1)
	var best PricingRow
	found := false
	for _, r := range candidates {
		area, ok := SizeArea(r.Size)
		if !ok {
			continue
		}
		diff := math.Abs(area - targetArea)
		if diff < bestDiff {
			bestDiff = diff
			best = r
			found = true
		}
	}
	return best, found
}

// defaultMonthlyPrices is the static fallback table used when the pricing
// collection has no usable row for a size. Values are per-month rents in
// the base currency, keyed by canonical size.
var defaultMonthlyPrices = map[string]float64{
	"3x4":  900,
	"4x5":  1200,
	"3x6":  1100,
	"3x8":  1500,
	"4x12": 2200,
	"5x13": 2500,
	"6x12": 3000,
}

// durationMonths converts a bucket to its month count. One day counts as a
// thirtieth of a month for the fallback table.
func durationMonths(d Duration) float64 {
	switch d {
	case DurationOneDay:
		return 1.0 / 30.0
	case DurationTwoMonths:
		return 2
	case DurationThreeMonths:
		return 3
	case DurationSixMonths:
		return 6
	case DurationOneYear:
		return 12
	}
	return 1
}

func defaultPrice(label string, d Duration) (float64, bool) {
	for _, v := range SizeVariants(label) {
		if monthly, ok := defaultMonthlyPrices[v]; ok {
			return math.Round(monthly * durationMonths(d)), true
		}
	}
	return 0, false
}
