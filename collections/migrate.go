package collections

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"

	"billboardadmin/services"
)

// NormalizeBillboardSizes rewrites billboard size labels to the
// canonical "WxH" form. Imported data arrives with mixed separators
// (4X3, 4×3, 4-3, spaces) and every lookup had to re-normalize; after
// this runs lookups see one shape. Safe to call on every startup.
func NormalizeBillboardSizes(app *pocketbase.PocketBase) error {
	records, err := app.FindAllRecords("billboards")
	if err != nil {
		return fmt.Errorf("migrate: could not query billboards: %w", err)
	}

	changed := 0
	for _, rec := range records {
		raw := rec.GetString("size")
		if raw == "" {
			continue
		}
		if _, _, ok := services.ParseSize(raw); !ok {
			continue // leave free-text labels alone
		}
		canon := services.CanonicalSize(raw)
		if canon == raw {
			continue
		}
		rec.Set("size", canon)
		if err := app.Save(rec); err != nil {
			log.Printf("migrate: failed to normalize billboard %s size %q: %v\n", rec.Id, raw, err)
			continue
		}
		changed++
	}

	if changed > 0 {
		log.Printf("migrate: normalized %d billboard size label(s)\n", changed)
	}
	return nil
}

// legacyInstallment mirrors the capitalized keys the previous system
// wrote into the installments blob.
type legacyInstallment struct {
	Amount      float64 `json:"Amount"`
	DueDate     string  `json:"DueDate"`
	Description string  `json:"Description"`
	Paid        bool    `json:"Paid"`
}

// MigrateLegacyInstallments re-keys installment schedules stored with
// the old capitalized JSON keys into the canonical lowercase form.
// Rows that already parse canonically are left untouched; rows that
// parse neither way are left as-is for manual review. Safe to call on
// every startup.
func MigrateLegacyInstallments(app *pocketbase.PocketBase) error {
	records, err := app.FindAllRecords("contracts")
	if err != nil {
		return fmt.Errorf("migrate: could not query contracts: %w", err)
	}

	migrated := 0
	for _, rec := range records {
		raw := rec.GetString("installments")
		if raw == "" || raw == "[]" {
			continue
		}
		if items := services.ParseInstallments(raw); hasAmounts(items) {
			continue // already canonical
		}

		var legacy []legacyInstallment
		if err := json.Unmarshal([]byte(raw), &legacy); err != nil || len(legacy) == 0 {
			continue
		}
		if !legacyHasAmounts(legacy) {
			continue
		}

		items := make([]services.Installment, 0, len(legacy))
		for _, l := range legacy {
			items = append(items, services.Installment{
				Amount:      l.Amount,
				DueDate:     l.DueDate,
				Description: l.Description,
				Paid:        l.Paid,
			})
		}
		rec.Set("installments", services.EncodeInstallments(items))
		if err := app.Save(rec); err != nil {
			log.Printf("migrate: failed to re-key installments for contract %s: %v\n", rec.Id, err)
			continue
		}
		migrated++
	}

	if migrated > 0 {
		log.Printf("migrate: re-keyed legacy installments on %d contract(s)\n", migrated)
	}
	return nil
}

func hasAmounts(items []services.Installment) bool {
	for _, it := range items {
		if it.Amount != 0 {
			return true
		}
	}
	return false
}

func legacyHasAmounts(items []legacyInstallment) bool {
	for _, it := range items {
		if it.Amount != 0 {
			return true
		}
	}
	return false
}
