package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"billboardadmin/testhelpers"
)

func billboardForm(name, size string) url.Values {
	form := url.Values{}
	form.Set("name", name)
	form.Set("size", size)
	form.Set("faces", "2")
	form.Set("level", "A")
	form.Set("municipality", "طرابلس المركز")
	form.Set("district", "طريق المطار")
	return form
}

func TestHandleBillboardSave_CreateNormalizesSize(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleBillboardSave(app)

	req, rec := postForm(t, "/billboards", billboardForm("لوحة جديدة", "4 X 12"))
	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	testhelpers.AssertHXRedirect(t, rec.Header().Get("HX-Redirect"), "/billboards")

	boards, _ := app.FindAllRecords("billboards")
	if len(boards) != 1 {
		t.Fatalf("expected 1 billboard, got %d", len(boards))
	}
	if got := boards[0].GetString("size"); got != "4x12" {
		t.Errorf("size = %q, want normalized \"4x12\"", got)
	}
	if got := boards[0].GetString("status"); got != "available" {
		t.Errorf("status = %q, want available", got)
	}
}

func TestHandleBillboardSave_RejectsUnparsableSize(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleBillboardSave(app)

	req, rec := postForm(t, "/billboards", billboardForm("لوحة", "كبير جداً"))
	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "المقاس غير مقروء")

	boards, _ := app.FindAllRecords("billboards")
	if len(boards) != 0 {
		t.Errorf("expected no billboard saved, got %d", len(boards))
	}
}

func TestHandleBillboardDelete_RefusesLinkedBoard(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	customer := testhelpers.CreateTestCustomer(t, app, "عميل")
	contract := testhelpers.CreateTestContract(t, app, customer.Id, "CT-2026-0001", 1000)
	board := testhelpers.CreateTestBillboard(t, app, "لوحة", "3x4", 2)
	board.Set("contract", contract.Id)
	board.Set("status", "rented")
	if err := app.Save(board); err != nil {
		t.Fatalf("could not link board: %v", err)
	}

	handler := HandleBillboardDelete(app)
	req := httptest.NewRequest(http.MethodDelete, "/billboards/"+board.Id, nil)
	req.Header.Set("HX-Request", "true")
	req.SetPathValue("id", board.Id)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Errorf("expected status 409 Conflict, got %d", rec.Code)
	}
	if _, err := app.FindRecordById("billboards", board.Id); err != nil {
		t.Error("billboard should not have been deleted")
	}
}

func TestHandleBillboardCleanup_ReleasesExpiredOnly(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	customer := testhelpers.CreateTestCustomer(t, app, "عميل")
	contract := testhelpers.CreateTestContract(t, app, customer.Id, "CT-2020-0001", 500)

	expired := testhelpers.CreateTestBillboard(t, app, "منتهية", "3x4", 2)
	expired.Set("contract", contract.Id)
	expired.Set("status", "rented")
	expired.Set("rent_end", "2020-06-01")
	if err := app.Save(expired); err != nil {
		t.Fatal(err)
	}

	active := testhelpers.CreateTestBillboard(t, app, "سارية", "3x4", 2)
	active.Set("contract", contract.Id)
	active.Set("status", "rented")
	active.Set("rent_end", "2099-01-01")
	if err := app.Save(active); err != nil {
		t.Fatal(err)
	}

	handler := HandleBillboardCleanup(app)
	req, rec := postForm(t, "/billboards/cleanup", url.Values{})
	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	released, _ := app.FindRecordById("billboards", expired.Id)
	if released.GetString("status") != "available" || released.GetString("contract") != "" {
		t.Errorf("expired board not released: status=%q contract=%q",
			released.GetString("status"), released.GetString("contract"))
	}

	kept, _ := app.FindRecordById("billboards", active.Id)
	if kept.GetString("status") != "rented" {
		t.Errorf("active board was released")
	}
}
