package collections

import (
	"fmt"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

type pricingDef struct {
	size         string
	level        string
	category     string
	oneDay       float64
	oneMonth     float64
	twoMonths    float64
	threeMonths  float64
	sixMonths    float64
	fullYear     float64
	installPrice float64
	printPrice   float64
}

type billboardDef struct {
	name         string
	size         string
	faces        int
	level        string
	municipality string
	district     string
	landmark     string
}

// pricingTable is the rate card seeded on first start. Monthly rates
// scale with size and billboard level; the "مسوق" category gets the
// trade rate.
var pricingTable = []pricingDef{
	{"3x4", "A", "عادي", 60, 900, 1750, 2550, 4900, 9200, 350, 45},
	{"3x4", "B", "عادي", 50, 750, 1450, 2100, 4000, 7600, 350, 45},
	{"3x4", "A", "مسوق", 55, 800, 1550, 2250, 4300, 8100, 300, 40},
	{"4x5", "A", "عادي", 80, 1200, 2350, 3400, 6500, 12200, 450, 45},
	{"4x5", "B", "عادي", 65, 1000, 1950, 2850, 5400, 10200, 450, 45},
	{"3x6", "A", "عادي", 75, 1100, 2150, 3100, 6000, 11300, 420, 45},
	{"3x8", "A", "عادي", 100, 1500, 2950, 4300, 8200, 15500, 500, 45},
	{"4x12", "A", "عادي", 150, 2200, 4300, 6300, 12000, 22500, 700, 45},
	{"4x12", "A", "شركات", 170, 2500, 4900, 7100, 13600, 25500, 700, 45},
	{"5x13", "A", "عادي", 170, 2500, 4900, 7100, 13600, 25500, 800, 45},
	{"6x12", "A", "عادي", 200, 3000, 5900, 8600, 16300, 30500, 900, 45},
}

// demoBillboards gives a fresh install something to rent out.
var demoBillboards = []billboardDef{
	{"لوحة طريق المطار 1", "4x12", 2, "A", "طرابلس المركز", "طريق المطار", "جزيرة بوابة المطار"},
	{"لوحة طريق المطار 2", "4x12", 2, "A", "طرابلس المركز", "طريق المطار", "مقابل مصرف الجمهورية"},
	{"لوحة السراج", "3x4", 2, "B", "جنزور", "السراج", "جزيرة السراج"},
	{"لوحة قرقارش", "4x5", 1, "A", "حي الأندلس", "قرقارش", "شارع قرقارش الرئيسي"},
	{"لوحة تاجوراء الساحلي", "3x6", 2, "B", "تاجوراء", "الطريق الساحلي", "مدخل تاجوراء الغربي"},
	{"لوحة جسر عين زارة", "5x13", 2, "A", "عين زارة", "الطريق الدائري", "جسر عين زارة"},
}

// Seed populates the pricing rate card, demo billboards and the single
// settings record. It is safe to call on every startup because each
// block returns early when records already exist.
func Seed(app *pocketbase.PocketBase) error {
	if err := seedPricing(app); err != nil {
		return err
	}
	if err := seedBillboards(app); err != nil {
		return err
	}
	return seedSettings(app)
}

func seedPricing(app *pocketbase.PocketBase) error {
	col, err := app.FindCollectionByNameOrId("pricing")
	if err != nil {
		return fmt.Errorf("seed: could not find pricing collection: %w", err)
	}
	existing, err := app.FindAllRecords(col)
	if err != nil {
		return fmt.Errorf("seed: could not query pricing: %w", err)
	}
	if len(existing) > 0 {
		return nil // already seeded
	}

	for _, def := range pricingTable {
		rec := core.NewRecord(col)
		rec.Set("size", def.size)
		rec.Set("billboard_level", def.level)
		rec.Set("customer_category", def.category)
		rec.Set("one_day", def.oneDay)
		rec.Set("one_month", def.oneMonth)
		rec.Set("two_months", def.twoMonths)
		rec.Set("three_months", def.threeMonths)
		rec.Set("six_months", def.sixMonths)
		rec.Set("full_year", def.fullYear)
		rec.Set("installation_price", def.installPrice)
		rec.Set("print_price", def.printPrice)
		if err := app.Save(rec); err != nil {
			return fmt.Errorf("seed: could not save pricing row %s/%s/%s: %w", def.size, def.level, def.category, err)
		}
	}
	return nil
}

func seedBillboards(app *pocketbase.PocketBase) error {
	col, err := app.FindCollectionByNameOrId("billboards")
	if err != nil {
		return fmt.Errorf("seed: could not find billboards collection: %w", err)
	}
	existing, err := app.FindAllRecords(col)
	if err != nil {
		return fmt.Errorf("seed: could not query billboards: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	for _, def := range demoBillboards {
		rec := core.NewRecord(col)
		rec.Set("name", def.name)
		rec.Set("size", def.size)
		rec.Set("faces", def.faces)
		rec.Set("level", def.level)
		rec.Set("municipality", def.municipality)
		rec.Set("district", def.district)
		rec.Set("landmark", def.landmark)
		rec.Set("status", "available")
		if err := app.Save(rec); err != nil {
			return fmt.Errorf("seed: could not save billboard %q: %w", def.name, err)
		}
	}
	return nil
}

// seedSettings creates the single settings record. Company identity
// comes from the environment (.env) so deployments can brand the print
// documents without touching the database first.
func seedSettings(app *pocketbase.PocketBase) error {
	col, err := app.FindCollectionByNameOrId("settings")
	if err != nil {
		return fmt.Errorf("seed: could not find settings collection: %w", err)
	}
	existing, err := app.FindAllRecords(col)
	if err != nil {
		return fmt.Errorf("seed: could not query settings: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	rec := core.NewRecord(col)
	rec.Set("company_name", envOr("COMPANY_NAME", "شركة الإعلان الحديث"))
	rec.Set("company_sub", envOr("COMPANY_SUB", "للدعاية والإعلان"))
	rec.Set("company_phone", os.Getenv("COMPANY_PHONE"))
	rec.Set("company_address", os.Getenv("COMPANY_ADDRESS"))
	rec.Set("default_fee_rate", 3.0)
	rec.Set("default_currency", "دينار")
	rec.Set("print_price", 45.0)
	if err := app.Save(rec); err != nil {
		return fmt.Errorf("seed: could not save settings: %w", err)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
