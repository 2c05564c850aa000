package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"billboardadmin/services"
	"billboardadmin/templates"
)

func HandleCustomerNew(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data := templates.CustomerFormData{
			Category: "عادي",
			Errors:   make(map[string]string),
		}
		component := templates.CustomerFormPage(data)
		return component.Render(e.Request.Context(), e.Response)
	}
}

func HandleCustomerEdit(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		rec, err := app.FindRecordById("customers", id)
		if err != nil {
			log.Printf("customer_edit: could not find customer %s: %v", id, err)
			return ErrorToast(e, http.StatusNotFound, "العميل غير موجود")
		}

		c := services.CustomerFromRecord(rec)
		data := templates.CustomerFormData{
			ID:       c.ID,
			Name:     c.Name,
			Company:  c.Company,
			Phone:    c.Phone,
			Category: c.Category,
			Errors:   make(map[string]string),
		}
		component := templates.CustomerFormPage(data)
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleCustomerSave handles both POST /customers (create) and
// POST /customers/{id}/save (update).
func HandleCustomerSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "تعذر قراءة النموذج")
		}

		id := e.Request.PathValue("id")
		data := templates.CustomerFormData{
			ID:       id,
			Name:     strings.TrimSpace(e.Request.FormValue("name")),
			Company:  strings.TrimSpace(e.Request.FormValue("company")),
			Phone:    strings.TrimSpace(e.Request.FormValue("phone")),
			Category: formChoice(e, "category", services.CategoryOptions...),
			Errors:   make(map[string]string),
		}

		if data.Name == "" {
			data.Errors["name"] = "اسم العميل مطلوب"
		}

		if len(data.Errors) > 0 {
			SetToast(e, "warning", "يرجى تصحيح الأخطاء أدناه")
			component := templates.CustomerFormPage(data)
			return component.Render(e.Request.Context(), e.Response)
		}

		var record *core.Record
		var err error
		if id != "" {
			record, err = app.FindRecordById("customers", id)
			if err != nil {
				log.Printf("customer_save: could not find customer %s: %v", id, err)
				return ErrorToast(e, http.StatusNotFound, "العميل غير موجود")
			}
		} else {
			col, err := app.FindCollectionByNameOrId("customers")
			if err != nil {
				log.Printf("customer_save: could not find customers collection: %v", err)
				return ErrorToast(e, http.StatusInternalServerError, "حدث خطأ، حاول مرة أخرى")
			}
			record = core.NewRecord(col)
		}

		record.Set("name", data.Name)
		record.Set("company", data.Company)
		record.Set("phone", data.Phone)
		record.Set("category", data.Category)

		if err := app.Save(record); err != nil {
			log.Printf("customer_save: could not save customer: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "حدث خطأ، حاول مرة أخرى")
		}

		SetToast(e, "success", "تم حفظ العميل")
		return redirect(e, "/customers")
	}
}

func HandleCustomerDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return ErrorToast(e, http.StatusBadRequest, "رقم العميل مفقود")
		}

		record, err := app.FindRecordById("customers", id)
		if err != nil {
			log.Printf("customer_delete: could not find customer %s: %v", id, err)
			return ErrorToast(e, http.StatusNotFound, "العميل غير موجود")
		}

		// Customers with contracts keep their history.
		contracts, err := app.FindRecordsByFilter(
			"contracts",
			"customer = {:customer}",
			"", 1, 0,
			map[string]any{"customer": id},
		)
		if err == nil && len(contracts) > 0 {
			return ErrorToast(e, http.StatusConflict, "لا يمكن حذف عميل لديه عقود")
		}

		if err := app.Delete(record); err != nil {
			log.Printf("customer_delete: failed to delete customer %s: %v", id, err)
			return ErrorToast(e, http.StatusInternalServerError, "حدث خطأ، حاول مرة أخرى")
		}

		SetToast(e, "success", "تم حذف العميل")
		return redirect(e, "/customers")
	}
}
