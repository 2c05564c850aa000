package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"billboardadmin/services"
	"billboardadmin/templates"
)

// HandleBillboardImportPage renders the Excel upload form.
// Route: GET /billboards/import
func HandleBillboardImportPage(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		component := templates.BillboardImportPage(nil)
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleBillboardImport receives the workbook upload, validates every
// row and commits in chunks. The result page lists per-row errors.
// Route: POST /billboards/import
func HandleBillboardImport(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		// Parse multipart form (max 10MB)
		if err := e.Request.ParseMultipartForm(10 << 20); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "الملف كبير جداً أو النموذج غير صالح")
		}

		file, _, err := e.Request.FormFile("file")
		if err != nil {
			return ErrorToast(e, http.StatusBadRequest, "اختر ملفاً أولاً")
		}
		defer file.Close()

		rows, err := services.ParseBillboardsWorkbook(file)
		if err != nil {
			log.Printf("billboard_import: could not parse workbook: %v", err)
			return ErrorToast(e, http.StatusBadRequest, "تعذر قراءة الملف، استخدم النموذج المعتمد")
		}
		if len(rows) == 0 {
			return ErrorToast(e, http.StatusBadRequest, "الملف لا يحتوي على صفوف")
		}

		result, err := services.CommitBillboardImport(app, rows)
		if err != nil {
			log.Printf("billboard_import: commit failed: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "حدث خطأ أثناء الاستيراد")
		}

		if result.Imported > 0 {
			SetToast(e, "success", fmt.Sprintf("تم استيراد %d لوحة", result.Imported))
		} else {
			SetToast(e, "warning", "لم يتم استيراد أي لوحة")
		}

		component := templates.BillboardImportPage(result)
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleBillboardTemplate downloads the import template workbook.
// Route: GET /billboards/import/template
func HandleBillboardTemplate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data, err := services.GenerateBillboardTemplate()
		if err != nil {
			log.Printf("billboard_template: could not generate template: %v", err)
			return e.String(http.StatusInternalServerError, "تعذر توليد النموذج")
		}

		e.Response.Header().Set("Content-Type",
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition",
			`attachment; filename="billboards_template.xlsx"`)
		e.Response.Write(data)
		return nil
	}
}
