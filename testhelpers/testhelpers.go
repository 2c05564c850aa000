// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"billboardadmin/collections"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// CreateTestCustomer creates a customer record with the given name and returns it.
func CreateTestCustomer(t *testing.T, app *pocketbase.PocketBase, name string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("customers")
	if err != nil {
		t.Fatalf("failed to find customers collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("phone", "0911111111")
	record.Set("category", "عادي")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test customer: %v", err)
	}

	return record
}

// CreateTestBillboard creates a billboard record and returns it.
func CreateTestBillboard(t *testing.T, app *pocketbase.PocketBase, name, size string, faces int) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("billboards")
	if err != nil {
		t.Fatalf("failed to find billboards collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("size", size)
	record.Set("faces", faces)
	record.Set("level", "A")
	record.Set("municipality", "طرابلس المركز")
	record.Set("status", "available")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test billboard: %v", err)
	}

	return record
}

// CreateTestContract creates a minimal contract record linked to a customer.
func CreateTestContract(t *testing.T, app *pocketbase.PocketBase, customerID, number string, total float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("contracts")
	if err != nil {
		t.Fatalf("failed to find contracts collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("contract_number", number)
	record.Set("customer", customerID)
	if c, err := app.FindRecordById("customers", customerID); err == nil {
		record.Set("customer_name", c.GetString("name"))
	}
	record.Set("subtotal", total)
	record.Set("total", total)
	record.Set("rental_only", total)
	record.Set("currency_code", "دينار")
	record.Set("start_date", "2026-01-01")
	record.Set("end_date", "2026-07-01")
	record.Set("duration_months", 6)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test contract: %v", err)
	}

	return record
}

// CreateTestPricingRow creates a pricing record for the given size.
func CreateTestPricingRow(t *testing.T, app *pocketbase.PocketBase, size, level, category string, oneMonth, installPrice float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("pricing")
	if err != nil {
		t.Fatalf("failed to find pricing collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("size", size)
	record.Set("billboard_level", level)
	record.Set("customer_category", category)
	record.Set("one_month", oneMonth)
	record.Set("three_months", oneMonth*3)
	record.Set("six_months", oneMonth*5)
	record.Set("full_year", oneMonth*10)
	record.Set("installation_price", installPrice)
	record.Set("print_price", 45)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test pricing row: %v", err)
	}

	return record
}

// CreateTestPayment creates a ledger entry for a customer.
func CreateTestPayment(t *testing.T, app *pocketbase.PocketBase, customerID, contractID, entryType string, amount float64, date string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("payments")
	if err != nil {
		t.Fatalf("failed to find payments collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("customer", customerID)
	if contractID != "" {
		record.Set("contract", contractID)
	}
	record.Set("entry_type", entryType)
	record.Set("amount", amount)
	record.Set("date", date)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test payment: %v", err)
	}

	return record
}

// AssertHTMLContains checks that body contains all specified fragments.
func AssertHTMLContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected HTML to contain %q, but it was not found\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

// AssertHXRedirect checks that the response has an HX-Redirect header with the expected URL.
func AssertHXRedirect(t *testing.T, headerVal, expectedURL string) {
	t.Helper()

	if headerVal != expectedURL {
		t.Errorf("expected HX-Redirect %q, got %q", expectedURL, headerVal)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
