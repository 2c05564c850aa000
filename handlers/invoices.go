package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"billboardadmin/services"
	"billboardadmin/templates"
)

// HandleInvoiceList lists saved invoice snapshots.
// Route: GET /invoices
func HandleInvoiceList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, err := app.FindRecordsByFilter("printed_invoices", "1=1", "-created", 0, 0, nil)
		if err != nil {
			log.Printf("invoice_list: could not query invoices: %v", err)
			records = nil
		}

		var items []templates.SavedInvoiceItem
		for _, rec := range records {
			items = append(items, templates.SavedInvoiceItem{
				ID:           rec.Id,
				Number:       rec.GetString("number"),
				TypeLabel:    invoiceTypeLabel(rec.GetString("invoice_type")),
				CustomerName: rec.GetString("customer_name"),
				Total:        rec.GetFloat("total"),
				Date:         rec.GetString("date"),
			})
		}

		component := templates.InvoiceListPage(items)
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleInvoiceBuildPage renders the invoice builder.
// Route: GET /invoices/new
func HandleInvoiceBuildPage(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data := templates.InvoiceBuildData{
			InvoiceType: "receipt",
			Customers:   customerOptions(app),
			Errors:      make(map[string]string),
		}

		// ?name= preselects the customer and loads their contracts.
		if name := strings.TrimSpace(e.Request.URL.Query().Get("name")); name != "" {
			data.CustomerName = name
			if rec, err := services.FindCustomerByName(app, name); err == nil && rec != nil {
				data.CustomerName = rec.GetString("name")
				data.Contracts = customerContractOptions(app, rec.Id, e.Request.URL.Query().Get("contract"))
			}
		}

		component := templates.InvoiceBuildPage(data)
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleInvoiceBuild assembles the invoice, saves the snapshot and
// renders the print document.
// Route: POST /invoices/build
func HandleInvoiceBuild(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "تعذر قراءة النموذج")
		}

		name := strings.TrimSpace(e.Request.FormValue("customer_name"))
		invoiceType := formChoice(e, "invoice_type", "receipt", "proforma", "tax", "invoice")
		notes := strings.TrimSpace(e.Request.FormValue("notes"))
		contractIDs := e.Request.Form["contracts"]

		data := templates.InvoiceBuildData{
			CustomerName: name,
			InvoiceType:  invoiceType,
			Notes:        notes,
			Customers:    customerOptions(app),
			Errors:       make(map[string]string),
		}

		customerRec, err := services.FindCustomerByName(app, name)
		if name == "" {
			data.Errors["customer_name"] = "اسم العميل مطلوب"
		} else if err != nil || customerRec == nil {
			data.Errors["customer_name"] = "العميل غير موجود"
		}
		if len(contractIDs) == 0 {
			data.Errors["contracts"] = "اختر عقداً واحداً على الأقل"
		}

		if len(data.Errors) > 0 {
			SetToast(e, "warning", "يرجى تصحيح الأخطاء أدناه")
			if customerRec != nil {
				data.Contracts = customerContractOptions(app, customerRec.Id, "")
			}
			component := templates.InvoiceBuildPage(data)
			return component.Render(e.Request.Context(), e.Response)
		}

		customer := services.CustomerFromRecord(customerRec)
		var contracts []*core.Record
		for _, id := range contractIDs {
			rec, err := app.FindRecordById("contracts", id)
			if err != nil {
				log.Printf("invoice_build: contract %s not found: %v", id, err)
				return ErrorToast(e, http.StatusBadRequest, "أحد العقود المختارة غير موجود")
			}
			if rec.GetString("customer") != customerRec.Id {
				return ErrorToast(e, http.StatusBadRequest, "العقد لا يخص هذا العميل")
			}
			contracts = append(contracts, rec)
		}

		now := time.Now()
		invoice := services.BuildInvoiceFromContracts(customer, contracts, invoiceType, now)
		invoice.Notes = notes

		number, err := generateInvoiceNumber(app, now)
		if err != nil {
			log.Printf("invoice_build: could not generate number: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "تعذر توليد رقم الفاتورة")
		}
		invoice.Number = number

		col, err := app.FindCollectionByNameOrId("printed_invoices")
		if err != nil {
			log.Printf("invoice_build: could not find printed_invoices collection: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "حدث خطأ، حاول مرة أخرى")
		}
		snapshot := core.NewRecord(col)
		snapshot.Set("number", invoice.Number)
		snapshot.Set("invoice_type", invoice.InvoiceType)
		snapshot.Set("customer", customerRec.Id)
		snapshot.Set("customer_name", invoice.CustomerName)
		snapshot.Set("currency_code", invoice.CurrencyCode)
		snapshot.Set("total", invoice.Total)
		snapshot.Set("lines", services.EncodeInvoiceLines(invoice.Lines))
		snapshot.Set("notes", invoice.Notes)
		snapshot.Set("date", now.Format("2006-01-02"))
		if err := app.Save(snapshot); err != nil {
			log.Printf("invoice_build: could not save snapshot: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "تعذر حفظ الفاتورة")
		}

		company := GetCompany(e.Request)
		component := templates.InvoiceDocument(invoice, company.Name, company.Sub)
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleInvoicePrint re-prints a saved snapshot.
// Route: GET /invoices/{id}/print
func HandleInvoicePrint(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		rec, err := app.FindRecordById("printed_invoices", e.Request.PathValue("id"))
		if err != nil {
			return e.String(http.StatusNotFound, "الفاتورة غير موجودة")
		}

		currency := rec.GetString("currency_code")
		if currency == "" {
			currency = "دينار"
		}
		invoice := services.InvoiceData{
			Number:       rec.GetString("number"),
			InvoiceType:  rec.GetString("invoice_type"),
			Date:         services.FormatDateArabic(rec.GetString("date")),
			CustomerName: rec.GetString("customer_name"),
			CurrencyCode: currency,
			Lines:        services.ParseInvoiceLines(rec.GetString("lines")),
			Total:        rec.GetFloat("total"),
			TotalWords:   services.AmountToArabicWords(rec.GetFloat("total"), currency),
			Notes:        rec.GetString("notes"),
		}

		company := GetCompany(e.Request)
		component := templates.InvoiceDocument(invoice, company.Name, company.Sub)
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleInvoiceDelete removes a saved snapshot.
// Route: POST /invoices/{id}/delete
func HandleInvoiceDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		rec, err := app.FindRecordById("printed_invoices", e.Request.PathValue("id"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "الفاتورة غير موجودة")
		}
		if err := app.Delete(rec); err != nil {
			log.Printf("invoice_delete: failed to delete %s: %v", rec.Id, err)
			return ErrorToast(e, http.StatusInternalServerError, "حدث خطأ، حاول مرة أخرى")
		}
		SetToast(e, "success", "تم حذف الفاتورة")
		return redirect(e, "/invoices")
	}
}

func invoiceTypeLabel(invoiceType string) string {
	switch invoiceType {
	case "receipt":
		return "إيصال قبض"
	case "proforma":
		return "فاتورة مبدئية"
	case "tax":
		return "فاتورة ضريبية"
	}
	return "فاتورة"
}

// generateInvoiceNumber produces sequential numbers per year in the
// form INV-2026-0001.
func generateInvoiceNumber(app *pocketbase.PocketBase, now time.Time) (string, error) {
	prefix := fmt.Sprintf("INV-%d-", now.Year())
	existing, err := app.FindRecordsByFilter(
		"printed_invoices",
		"number ~ {:prefix}",
		"", 0, 0,
		map[string]any{"prefix": prefix},
	)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%04d", prefix, len(existing)+1), nil
}

func customerOptions(app *pocketbase.PocketBase) []templates.CustomerListItem {
	records, err := app.FindRecordsByFilter("customers", "1=1", "name", 0, 0, nil)
	if err != nil {
		log.Printf("invoices: could not query customers: %v", err)
		return nil
	}
	items := make([]templates.CustomerListItem, 0, len(records))
	for _, rec := range records {
		items = append(items, templates.CustomerListItem{
			ID:   rec.Id,
			Name: rec.GetString("name"),
		})
	}
	return items
}

func customerContractOptions(app *pocketbase.PocketBase, customerID, preselect string) []templates.ContractOption {
	records, err := app.FindRecordsByFilter(
		"contracts",
		"customer = {:customer}",
		"-created", 0, 0,
		map[string]any{"customer": customerID},
	)
	if err != nil {
		log.Printf("invoices: could not query contracts: %v", err)
		return nil
	}
	options := make([]templates.ContractOption, 0, len(records))
	for _, rec := range records {
		options = append(options, templates.ContractOption{
			ID:       rec.Id,
			Number:   rec.GetString("contract_number"),
			Total:    rec.GetFloat("total"),
			Selected: rec.Id == preselect,
		})
	}
	return options
}
