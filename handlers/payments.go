package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"billboardadmin/services"
	"billboardadmin/templates"
)

var entryTypeLabels = map[string]string{
	string(services.EntryReceipt):        "إيصال قبض",
	string(services.EntryInvoice):        "فاتورة",
	string(services.EntryDebt):           "دين سابق",
	string(services.EntryAccountPayment): "دفعة على الحساب",
}

// HandlePaymentsPage renders a customer's ledger and the add-entry form.
// Route: GET /customers/{id}/payments
func HandlePaymentsPage(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		customerID := e.Request.PathValue("id")
		customerRec, err := app.FindRecordById("customers", customerID)
		if err != nil {
			log.Printf("payments: could not find customer %s: %v", customerID, err)
			return ErrorToast(e, http.StatusNotFound, "العميل غير موجود")
		}
		customer := services.CustomerFromRecord(customerRec)

		entries := customerLedger(app, customerID)

		// Contract numbers for the contract column and the add form.
		contractRecs, err := app.FindRecordsByFilter(
			"contracts",
			"customer = {:customer}",
			"-created", 0, 0,
			map[string]any{"customer": customerID},
		)
		if err != nil {
			log.Printf("payments: could not query contracts: %v", err)
		}
		numbers := make(map[string]string, len(contractRecs))
		var options []templates.ContractOption
		for _, c := range contractRecs {
			numbers[c.Id] = c.GetString("contract_number")
			options = append(options, templates.ContractOption{
				ID:     c.Id,
				Number: c.GetString("contract_number"),
				Total:  c.GetFloat("total"),
			})
		}

		var items []templates.PaymentListItem
		var balance float64
		for _, entry := range entries {
			if entry.Type.IsDebit() {
				balance += entry.Amount
			} else {
				balance -= entry.Amount
			}
			items = append(items, templates.PaymentListItem{
				ID:             entry.ID,
				Type:           string(entry.Type),
				TypeLabel:      entryTypeLabels[string(entry.Type)],
				Amount:         entry.Amount,
				Date:           entry.Date,
				Method:         entry.Method,
				Reference:      entry.Reference,
				Notes:          entry.Notes,
				ContractNumber: numbers[entry.ContractID],
			})
		}

		component := templates.PaymentsPage(customer, items, options, balance)
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandlePaymentAdd records a new ledger entry for a customer.
// Route: POST /customers/{id}/payments
func HandlePaymentAdd(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "تعذر قراءة النموذج")
		}

		customerID := e.Request.PathValue("id")
		if _, err := app.FindRecordById("customers", customerID); err != nil {
			return ErrorToast(e, http.StatusNotFound, "العميل غير موجود")
		}

		entryType := e.Request.FormValue("entry_type")
		if _, ok := entryTypeLabels[entryType]; !ok {
			return ErrorToast(e, http.StatusBadRequest, "نوع الحركة غير معروف")
		}

		amount := formFloat(e, "amount")
		if amount <= 0 {
			return ErrorToast(e, http.StatusBadRequest, "القيمة يجب أن تكون أكبر من صفر")
		}

		date := e.Request.FormValue("date")
		if date == "" {
			date = time.Now().Format("2006-01-02")
		}

		col, err := app.FindCollectionByNameOrId("payments")
		if err != nil {
			log.Printf("payments: could not find payments collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "حدث خطأ، حاول مرة أخرى")
		}

		record := core.NewRecord(col)
		record.Set("customer", customerID)
		record.Set("entry_type", entryType)
		record.Set("amount", amount)
		record.Set("date", date)
		record.Set("method", e.Request.FormValue("method"))
		record.Set("reference", e.Request.FormValue("reference"))
		record.Set("notes", e.Request.FormValue("notes"))
		if contractID := e.Request.FormValue("contract"); contractID != "" {
			record.Set("contract", contractID)
		}

		if err := app.Save(record); err != nil {
			log.Printf("payments: could not save entry: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "حدث خطأ، حاول مرة أخرى")
		}

		SetToast(e, "success", "تمت إضافة الحركة")
		return redirect(e, "/customers/"+customerID+"/payments")
	}
}

// HandlePaymentDelete removes a ledger entry.
// Route: POST /customers/{id}/payments/{paymentId}/delete
func HandlePaymentDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		customerID := e.Request.PathValue("id")
		paymentID := e.Request.PathValue("paymentId")

		record, err := app.FindRecordById("payments", paymentID)
		if err != nil {
			log.Printf("payments: could not find entry %s: %v", paymentID, err)
			return ErrorToast(e, http.StatusNotFound, "الحركة غير موجودة")
		}
		if record.GetString("customer") != customerID {
			return ErrorToast(e, http.StatusNotFound, "الحركة غير موجودة")
		}

		if err := app.Delete(record); err != nil {
			log.Printf("payments: failed to delete entry %s: %v", paymentID, err)
			return ErrorToast(e, http.StatusInternalServerError, "حدث خطأ، حاول مرة أخرى")
		}

		SetToast(e, "success", "تم حذف الحركة")
		return redirect(e, "/customers/"+customerID+"/payments")
	}
}

// customerLedger loads a customer's payments sorted by date.
func customerLedger(app *pocketbase.PocketBase, customerID string) []services.LedgerEntry {
	records, err := app.FindRecordsByFilter(
		"payments",
		"customer = {:customer}",
		"date", 0, 0,
		map[string]any{"customer": customerID},
	)
	if err != nil {
		log.Printf("payments: could not query ledger: %v", err)
		return nil
	}

	entries := make([]services.LedgerEntry, 0, len(records))
	for _, rec := range records {
		entries = append(entries, services.LedgerEntry{
			ID:         rec.Id,
			CustomerID: rec.GetString("customer"),
			ContractID: rec.GetString("contract"),
			Type:       services.EntryType(rec.GetString("entry_type")),
			Amount:     rec.GetFloat("amount"),
			Date:       rec.GetString("date"),
			Method:     rec.GetString("method"),
			Reference:  rec.GetString("reference"),
			Notes:      rec.GetString("notes"),
		})
	}
	return entries
}
