package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"billboardadmin/services"
	"billboardadmin/templates"
)

// HandleStatementPrint opens the printable account statement.
// Route: GET /customers/{id}/statement
func HandleStatementPrint(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data, err := loadStatementData(app, e.Request.PathValue("id"))
		if err != nil {
			return e.String(http.StatusNotFound, "العميل غير موجود")
		}

		company := GetCompany(e.Request)
		component := templates.StatementDocument(data, company.Name, company.Sub)
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleStatementExcel downloads the statement as an Excel workbook.
// Route: GET /customers/{id}/statement/export/excel
func HandleStatementExcel(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data, err := loadStatementData(app, e.Request.PathValue("id"))
		if err != nil {
			return e.String(http.StatusNotFound, "العميل غير موجود")
		}

		fileBytes, err := services.GenerateStatementExcel(data)
		if err != nil {
			log.Printf("statement: could not generate Excel: %v", err)
			return e.String(http.StatusInternalServerError, "تعذر توليد الملف")
		}

		filename := fmt.Sprintf("statement_%s.xlsx", sanitizeFilename(data.CustomerName))
		e.Response.Header().Set("Content-Type",
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition",
			fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(fileBytes)
		return nil
	}
}

func loadStatementData(app *pocketbase.PocketBase, customerID string) (services.StatementData, error) {
	rec, err := app.FindRecordById("customers", customerID)
	if err != nil {
		log.Printf("statement: could not find customer %s: %v", customerID, err)
		return services.StatementData{}, err
	}
	customer := services.CustomerFromRecord(rec)
	entries := customerLedger(app, customerID)
	return services.BuildStatementData(customer, entries, time.Now()), nil
}
