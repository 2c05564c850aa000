package services_test

import (
	"testing"
	"time"

	"billboardadmin/services"
	"billboardadmin/testhelpers"
)

func TestFindCustomerByName(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	created := testhelpers.CreateTestCustomer(t, app, "شركة النور")

	rec, err := services.FindCustomerByName(app, "شركة النور")
	if err != nil {
		t.Fatalf("FindCustomerByName returned error: %v", err)
	}
	if rec == nil || rec.Id != created.Id {
		t.Fatal("exact name lookup did not return the customer")
	}

	// Surrounding whitespace is tolerated.
	rec, err = services.FindCustomerByName(app, "  شركة النور  ")
	if err != nil || rec == nil {
		t.Errorf("trimmed lookup failed: rec=%v err=%v", rec, err)
	}

	rec, err = services.FindCustomerByName(app, "عميل غير موجود")
	if err != nil {
		t.Fatalf("missing customer lookup errored: %v", err)
	}
	if rec != nil {
		t.Error("expected nil record for unknown name")
	}
}

func TestEnsureCustomer(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	first, err := services.EnsureCustomer(app, "عميل جديد", "شركة", "0911234567")
	if err != nil {
		t.Fatalf("EnsureCustomer returned error: %v", err)
	}
	if first.GetString("name") != "عميل جديد" {
		t.Errorf("name = %q", first.GetString("name"))
	}
	if first.GetString("category") != "عادي" {
		t.Errorf("new customer category = %q, want عادي", first.GetString("category"))
	}

	// Calling again with the same name reuses the record.
	second, err := services.EnsureCustomer(app, "عميل جديد", "", "")
	if err != nil {
		t.Fatalf("second EnsureCustomer returned error: %v", err)
	}
	if second.Id != first.Id {
		t.Error("EnsureCustomer created a duplicate customer")
	}

	customers, _ := app.FindAllRecords("customers")
	if len(customers) != 1 {
		t.Errorf("expected 1 customer, got %d", len(customers))
	}
}

func TestGenerateContractNumber(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	now := time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC)

	first, err := services.GenerateContractNumber(app, now)
	if err != nil {
		t.Fatalf("GenerateContractNumber returned error: %v", err)
	}
	if first != "CT-2026-0001" {
		t.Errorf("first number = %q, want CT-2026-0001", first)
	}

	customer := testhelpers.CreateTestCustomer(t, app, "عميل")
	testhelpers.CreateTestContract(t, app, customer.Id, first, 1000)

	second, err := services.GenerateContractNumber(app, now)
	if err != nil {
		t.Fatalf("second GenerateContractNumber returned error: %v", err)
	}
	if second != "CT-2026-0002" {
		t.Errorf("second number = %q, want CT-2026-0002", second)
	}

	// Numbers restart each year.
	nextYear, err := services.GenerateContractNumber(app, now.AddDate(1, 0, 0))
	if err != nil {
		t.Fatalf("next-year GenerateContractNumber returned error: %v", err)
	}
	if nextYear != "CT-2027-0001" {
		t.Errorf("next-year number = %q, want CT-2027-0001", nextYear)
	}
}
