package collections_test

import (
	"testing"

	"billboardadmin/collections"
	"billboardadmin/testhelpers"
)

func TestSeed_PopulatesPricingAndSettings(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := collections.Seed(app); err != nil {
		t.Fatalf("Seed() error: %v", err)
	}

	pricing, err := app.FindAllRecords("pricing")
	if err != nil {
		t.Fatalf("could not query pricing: %v", err)
	}
	if len(pricing) == 0 {
		t.Error("expected pricing rows after Seed()")
	}
	for _, rec := range pricing {
		if rec.GetString("size") == "" {
			t.Errorf("pricing row %s has empty size", rec.Id)
		}
		if rec.GetFloat("one_month") <= 0 {
			t.Errorf("pricing row %s has no monthly rate", rec.Id)
		}
	}

	settings, err := app.FindAllRecords("settings")
	if err != nil {
		t.Fatalf("could not query settings: %v", err)
	}
	if len(settings) != 1 {
		t.Fatalf("expected exactly 1 settings record, got %d", len(settings))
	}
	if settings[0].GetFloat("default_fee_rate") != 3.0 {
		t.Errorf("default fee rate = %v, want 3.0", settings[0].GetFloat("default_fee_rate"))
	}

	billboards, err := app.FindAllRecords("billboards")
	if err != nil {
		t.Fatalf("could not query billboards: %v", err)
	}
	if len(billboards) == 0 {
		t.Error("expected demo billboards after Seed()")
	}
}

func TestSeed_Idempotent(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := collections.Seed(app); err != nil {
		t.Fatalf("first Seed() error: %v", err)
	}
	first, _ := app.FindAllRecords("pricing")

	if err := collections.Seed(app); err != nil {
		t.Fatalf("second Seed() error: %v", err)
	}
	second, _ := app.FindAllRecords("pricing")

	if len(first) != len(second) {
		t.Errorf("pricing rows grew from %d to %d on second Seed()", len(first), len(second))
	}

	settings, _ := app.FindAllRecords("settings")
	if len(settings) != 1 {
		t.Errorf("expected 1 settings record after double seed, got %d", len(settings))
	}
}
