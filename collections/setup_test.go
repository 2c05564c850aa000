package collections_test

import (
	"testing"

	"github.com/pocketbase/pocketbase/core"

	"billboardadmin/collections"
	"billboardadmin/testhelpers"
)

// expectedCollections is the full list of collections that Setup() must create.
var expectedCollections = []string{
	"customers",
	"pricing",
	"contracts",
	"billboards",
	"payments",
	"printed_invoices",
	"settings",
}

func TestSetup_AllCollectionsExist(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	for _, name := range expectedCollections {
		col, err := app.FindCollectionByNameOrId(name)
		if err != nil {
			t.Errorf("collection %q not found after Setup(): %v", name, err)
			continue
		}
		if col.Name != name {
			t.Errorf("expected collection name %q, got %q", name, col.Name)
		}
	}
}

func TestSetup_Idempotent(t *testing.T) {
	app := testhelpers.NewTestApp(t) // Setup() already called once via NewTestApp

	ids := make(map[string]string)
	for _, name := range expectedCollections {
		col, _ := app.FindCollectionByNameOrId(name)
		ids[name] = col.Id
	}

	collections.Setup(app)

	for _, name := range expectedCollections {
		col, err := app.FindCollectionByNameOrId(name)
		if err != nil {
			t.Errorf("collection %q missing after second Setup(): %v", name, err)
			continue
		}
		if col.Id != ids[name] {
			t.Errorf("collection %q was recreated: id %q -> %q", name, ids[name], col.Id)
		}
	}
}

func TestSetup_ContractFields(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	col, err := app.FindCollectionByNameOrId("contracts")
	if err != nil {
		t.Fatalf("contracts collection not found: %v", err)
	}

	for _, field := range []string{
		"contract_number", "customer", "customer_name", "start_date",
		"duration_months", "discount", "discount_mode", "subtotal",
		"discount_amount", "total", "rental_only", "operating_fee",
		"currency_code", "exchange_rate", "installments", "price_snapshot",
	} {
		if col.Fields.GetByName(field) == nil {
			t.Errorf("contracts collection missing field %q", field)
		}
	}
}

func TestSetup_PaymentEntryTypes(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	customer := testhelpers.CreateTestCustomer(t, app, "عميل الاختبار")

	// Valid entry type saves.
	testhelpers.CreateTestPayment(t, app, customer.Id, "", "receipt", 100, "2026-01-01")

	// Invalid entry type is rejected by the select field.
	col, _ := app.FindCollectionByNameOrId("payments")
	rec := core.NewRecord(col)
	rec.Set("customer", customer.Id)
	rec.Set("entry_type", "refund")
	rec.Set("amount", 50)
	if err := app.Save(rec); err == nil {
		t.Error("expected save to fail for unknown entry_type")
	}
}
