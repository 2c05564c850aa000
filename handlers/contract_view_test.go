package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"billboardadmin/testhelpers"
)

func TestHandleContractView_ShowsPaidAndRemaining(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	customer := testhelpers.CreateTestCustomer(t, app, "عميل")
	contract := testhelpers.CreateTestContract(t, app, customer.Id, "CT-2026-0003", 9000)
	testhelpers.CreateTestPayment(t, app, customer.Id, contract.Id, "receipt", 4000, "2026-02-01")

	handler := HandleContractView(app)
	req, rec := getPage(t, "/contracts/"+contract.Id)
	req.SetPathValue("id", contract.Id)
	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	body := rec.Body.String()
	testhelpers.AssertHTMLContains(t, body,
		"CT-2026-0003",
		"9,000.00",
		"4,000.00", // paid
		"5,000.00", // remaining
	)
}

func TestHandleContractView_NotFound(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	handler := HandleContractView(app)
	req, rec := getPage(t, "/contracts/missing")
	req.Header.Set("HX-Request", "true")
	req.SetPathValue("id", "missing")
	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestHandleContractPrint_RendersDocument(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	customer := testhelpers.CreateTestCustomer(t, app, "محمد الصادق")
	contract := testhelpers.CreateTestContract(t, app, customer.Id, "CT-2026-0004", 7500)

	handler := HandleContractPrint(app)
	req, rec := getPage(t, "/contracts/"+contract.Id+"/print")
	req.SetPathValue("id", contract.Id)
	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	body := rec.Body.String()
	testhelpers.AssertHTMLContains(t, body, "CT-2026-0004", "محمد الصادق", "7,500.00")
	if !strings.Contains(body, "window.print()") {
		t.Error("print document should auto-open the print dialog")
	}
}

func TestHandleContractExportPDF_DownloadsFile(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	customer := testhelpers.CreateTestCustomer(t, app, "عميل")
	contract := testhelpers.CreateTestContract(t, app, customer.Id, "CT-2026-0005", 3000)

	handler := HandleContractExportPDF(app)
	req, rec := getPage(t, "/contracts/"+contract.Id+"/export/pdf")
	req.SetPathValue("id", contract.Id)
	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if got := rec.Header().Get("Content-Type"); got != "application/pdf" {
		t.Errorf("Content-Type = %q, want application/pdf", got)
	}
	if rec.Body.Len() == 0 {
		t.Error("expected non-empty PDF body")
	}
}

func TestHandleContractDelete_ReleasesBoards(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	customer := testhelpers.CreateTestCustomer(t, app, "عميل")
	contract := testhelpers.CreateTestContract(t, app, customer.Id, "CT-2026-0006", 2000)
	board := testhelpers.CreateTestBillboard(t, app, "لوحة", "4x12", 2)
	board.Set("contract", contract.Id)
	board.Set("status", "rented")
	board.Set("rent_start", "2026-01-01")
	board.Set("rent_end", "2026-07-01")
	if err := app.Save(board); err != nil {
		t.Fatal(err)
	}

	handler := HandleContractDelete(app)
	req := httptest.NewRequest(http.MethodDelete, "/contracts/"+contract.Id, nil)
	req.Header.Set("HX-Request", "true")
	req.SetPathValue("id", contract.Id)
	rec := httptest.NewRecorder()
	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if _, err := app.FindRecordById("contracts", contract.Id); err == nil {
		t.Error("contract should have been deleted")
	}
	freed, _ := app.FindRecordById("billboards", board.Id)
	if freed.GetString("status") != "available" {
		t.Errorf("board status = %q, want available", freed.GetString("status"))
	}
	if freed.GetString("contract") != "" {
		t.Errorf("board still linked to contract %q", freed.GetString("contract"))
	}
	if freed.GetString("rent_start") != "" || freed.GetString("rent_end") != "" {
		t.Error("rental dates should be cleared on release")
	}
}

func TestHandleContractList_FiltersNothingByDefault(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	customer := testhelpers.CreateTestCustomer(t, app, "عميل القائمة")
	testhelpers.CreateTestContract(t, app, customer.Id, "CT-2026-0001", 1000)
	testhelpers.CreateTestContract(t, app, customer.Id, "CT-2026-0002", 2000)

	handler := HandleContractList(app)
	req, rec := postForm(t, "/contracts", url.Values{})
	req.Method = http.MethodGet
	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "CT-2026-0001", "CT-2026-0002", "عميل القائمة")
}
