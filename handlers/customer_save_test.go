package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"billboardadmin/testhelpers"
)

func TestHandleCustomerSave_Create(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleCustomerSave(app)

	form := url.Values{}
	form.Set("name", "شركة المستقبل")
	form.Set("company", "المستقبل للتجارة")
	form.Set("phone", "0912345678")
	form.Set("category", "شركات")

	req, rec := postForm(t, "/customers", form)
	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	testhelpers.AssertHXRedirect(t, rec.Header().Get("HX-Redirect"), "/customers")

	customers, _ := app.FindAllRecords("customers")
	if len(customers) != 1 {
		t.Fatalf("expected 1 customer, got %d", len(customers))
	}
	c := customers[0]
	if c.GetString("name") != "شركة المستقبل" {
		t.Errorf("name = %q", c.GetString("name"))
	}
	if c.GetString("category") != "شركات" {
		t.Errorf("category = %q, want شركات", c.GetString("category"))
	}
}

func TestHandleCustomerSave_RequiresName(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleCustomerSave(app)

	form := url.Values{}
	form.Set("phone", "0911111111")

	req, rec := postForm(t, "/customers", form)
	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "اسم العميل مطلوب")

	customers, _ := app.FindAllRecords("customers")
	if len(customers) != 0 {
		t.Errorf("expected no customer saved, got %d", len(customers))
	}
}

func TestHandleCustomerSave_UnknownCategoryFallsBack(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleCustomerSave(app)

	form := url.Values{}
	form.Set("name", "عميل")
	form.Set("category", "vip")

	req, rec := postForm(t, "/customers", form)
	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	customers, _ := app.FindAllRecords("customers")
	if len(customers) != 1 {
		t.Fatalf("expected 1 customer, got %d", len(customers))
	}
	if got := customers[0].GetString("category"); got != "عادي" {
		t.Errorf("category = %q, want fallback عادي", got)
	}
}

func TestHandleCustomerDelete_RefusesWithContracts(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	customer := testhelpers.CreateTestCustomer(t, app, "عميل بعقود")
	testhelpers.CreateTestContract(t, app, customer.Id, "CT-2026-0001", 5000)

	handler := HandleCustomerDelete(app)
	req := httptest.NewRequest(http.MethodDelete, "/customers/"+customer.Id, nil)
	req.Header.Set("HX-Request", "true")
	req.SetPathValue("id", customer.Id)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Errorf("expected 409 Conflict, got %d", rec.Code)
	}
	if _, err := app.FindRecordById("customers", customer.Id); err != nil {
		t.Error("customer should not have been deleted")
	}
}

func TestHandleCustomerDelete_RemovesUnusedCustomer(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	customer := testhelpers.CreateTestCustomer(t, app, "عميل بلا عقود")

	handler := HandleCustomerDelete(app)
	req := httptest.NewRequest(http.MethodDelete, "/customers/"+customer.Id, nil)
	req.Header.Set("HX-Request", "true")
	req.SetPathValue("id", customer.Id)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if _, err := app.FindRecordById("customers", customer.Id); err == nil {
		t.Error("customer should have been deleted")
	}
}
