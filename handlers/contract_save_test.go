package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"billboardadmin/services"
	"billboardadmin/testhelpers"
)

func postForm(t *testing.T, path string, form url.Values) (*http.Request, *httptest.ResponseRecorder) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")
	return req, httptest.NewRecorder()
}

func contractForm(boardIDs ...string) url.Values {
	form := url.Values{}
	form.Set("customer_name", "أحمد علي")
	form.Set("company", "شركة المستقبل")
	form.Set("phone", "0912345678")
	form.Set("category", "عادي")
	form.Set("ad_type", "مشروبات ومأكولات")
	form.Set("start_date", "2026-01-01")
	form.Set("duration_months", "6")
	form.Set("discount", "10")
	form.Set("discount_mode", "percent")
	form.Set("fee_rate", "3")
	form.Set("currency_code", "دينار")
	form.Set("installment_count", "2")
	form.Set("installment_spacing", "monthly")
	for _, id := range boardIDs {
		form.Add("billboards", id)
	}
	return form
}

func TestHandleContractSave_CreatesContractWithDerivedTotals(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestPricingRow(t, app, "4x12", "A", "عادي", 2200, 700)
	board := testhelpers.CreateTestBillboard(t, app, "لوحة طريق المطار", "4x12", 2)

	handler := HandleContractSave(app)
	req, rec := postForm(t, "/contracts", contractForm(board.Id))
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Header().Get("HX-Redirect") == "" {
		t.Fatalf("expected HX-Redirect, got status %d body %s", rec.Code, rec.Body.String())
	}

	contracts, err := app.FindAllRecords("contracts")
	if err != nil || len(contracts) != 1 {
		t.Fatalf("expected 1 contract, got %d (err %v)", len(contracts), err)
	}
	c := contracts[0]

	// 6 months of 4x12 at the seeded six_months rate plus installation.
	rent := 2200.0 * 5
	install := 700.0
	subtotal := rent + install
	if got := c.GetFloat("subtotal"); got != subtotal {
		t.Errorf("subtotal = %v, want %v", got, subtotal)
	}
	wantDiscount := subtotal * 0.10
	if got := c.GetFloat("discount_amount"); got != wantDiscount {
		t.Errorf("discount_amount = %v, want %v", got, wantDiscount)
	}
	if got := c.GetFloat("total"); got != subtotal-wantDiscount {
		t.Errorf("total = %v, want %v", got, subtotal-wantDiscount)
	}
	if c.GetString("contract_number") == "" {
		t.Error("expected a generated contract number")
	}
	if got := c.GetString("end_date"); got != "2026-07-01" {
		t.Errorf("end_date = %q, want 2026-07-01", got)
	}

	// Installments sum to the final total.
	installments := services.ParseInstallments(c.GetString("installments"))
	if len(installments) != 2 {
		t.Fatalf("expected 2 installments, got %d", len(installments))
	}
	if got := services.SumInstallments(installments); got != c.GetFloat("total") {
		t.Errorf("installment sum = %v, want %v", got, c.GetFloat("total"))
	}

	// Billboard is marked rented with mirrored dates.
	b, _ := app.FindRecordById("billboards", board.Id)
	if b.GetString("status") != "rented" {
		t.Errorf("billboard status = %q, want rented", b.GetString("status"))
	}
	if b.GetString("contract") != c.Id {
		t.Errorf("billboard contract = %q, want %q", b.GetString("contract"), c.Id)
	}
	if b.GetString("rent_end") != "2026-07-01" {
		t.Errorf("billboard rent_end = %q, want 2026-07-01", b.GetString("rent_end"))
	}

	// Customer was created on the fly.
	customers, _ := app.FindAllRecords("customers")
	if len(customers) != 1 || customers[0].GetString("name") != "أحمد علي" {
		t.Errorf("expected auto-created customer, got %d records", len(customers))
	}
}

func TestHandleContractSave_ValidationErrors(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	board := testhelpers.CreateTestBillboard(t, app, "لوحة", "3x4", 2)

	handler := HandleContractSave(app)

	form := contractForm(board.Id)
	form.Set("customer_name", "")
	req, rec := postForm(t, "/contracts", form)
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	testhelpers.AssertHTMLContains(t, rec.Body.String(), "اسم العميل مطلوب")

	contracts, _ := app.FindAllRecords("contracts")
	if len(contracts) != 0 {
		t.Errorf("expected no contract saved, got %d", len(contracts))
	}
}

func TestHandleContractSave_NoBillboards(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleContractSave(app)

	req, rec := postForm(t, "/contracts", contractForm())
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "اختر لوحة واحدة على الأقل")
}

func TestHandleContractSave_EditRepricesFromSnapshot(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestPricingRow(t, app, "4x12", "A", "عادي", 2200, 700)
	board := testhelpers.CreateTestBillboard(t, app, "لوحة", "4x12", 2)

	handler := HandleContractSave(app)
	req, rec := postForm(t, "/contracts", contractForm(board.Id))
	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	contracts, _ := app.FindAllRecords("contracts")
	contract := contracts[0]
	originalTotal := contract.GetFloat("total")

	// Reprice the table; editing must keep the snapshot price.
	pricing, _ := app.FindAllRecords("pricing")
	pricing[0].Set("six_months", 99999)
	if err := app.Save(pricing[0]); err != nil {
		t.Fatalf("could not reprice: %v", err)
	}

	req, rec = postForm(t, "/contracts/"+contract.Id+"/save", contractForm(board.Id))
	req.SetPathValue("id", contract.Id)
	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("edit failed: %v", err)
	}

	updated, _ := app.FindRecordById("contracts", contract.Id)
	if got := updated.GetFloat("total"); got != originalTotal {
		t.Errorf("edit repriced the contract: total %v -> %v", originalTotal, got)
	}
}

func TestHandleContractSave_EditReleasesDroppedBoards(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestPricingRow(t, app, "3x4", "A", "عادي", 900, 350)
	first := testhelpers.CreateTestBillboard(t, app, "لوحة 1", "3x4", 2)
	second := testhelpers.CreateTestBillboard(t, app, "لوحة 2", "3x4", 2)

	handler := HandleContractSave(app)
	req, rec := postForm(t, "/contracts", contractForm(first.Id, second.Id))
	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	contracts, _ := app.FindAllRecords("contracts")
	contract := contracts[0]

	req, rec = postForm(t, "/contracts/"+contract.Id+"/save", contractForm(first.Id))
	req.SetPathValue("id", contract.Id)
	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("edit failed: %v", err)
	}

	kept, _ := app.FindRecordById("billboards", first.Id)
	if kept.GetString("status") != "rented" {
		t.Errorf("kept board status = %q, want rented", kept.GetString("status"))
	}
	dropped, _ := app.FindRecordById("billboards", second.Id)
	if dropped.GetString("status") != "available" {
		t.Errorf("dropped board status = %q, want available", dropped.GetString("status"))
	}
	if dropped.GetString("contract") != "" {
		t.Errorf("dropped board still linked to contract %q", dropped.GetString("contract"))
	}
}
