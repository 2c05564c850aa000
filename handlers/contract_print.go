package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"billboardadmin/services"
	"billboardadmin/templates"
)

// HandleContractPrint opens the browser-printable contract document.
func HandleContractPrint(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data, _, err := loadContractData(app, e.Request.PathValue("id"))
		if err != nil {
			return e.String(http.StatusNotFound, "العقد غير موجود")
		}

		company := GetCompany(e.Request)
		component := templates.ContractDocument(data, company.Name, company.Sub)
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleContractExportPDF downloads the contract as a PDF file.
func HandleContractExportPDF(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data, _, err := loadContractData(app, e.Request.PathValue("id"))
		if err != nil {
			return e.String(http.StatusNotFound, "العقد غير موجود")
		}

		company := GetCompany(e.Request)
		pdfBytes, err := services.GenerateContractPDF(data, company.Name)
		if err != nil {
			log.Printf("contract_print: failed to generate PDF: %v", err)
			return e.String(http.StatusInternalServerError, "تعذر توليد ملف PDF")
		}

		filename := fmt.Sprintf("%s.pdf", sanitizeFilename(data.Number))
		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(pdfBytes)
		return nil
	}
}

// sanitizeFilename keeps download filenames header-safe.
func sanitizeFilename(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "document"
	}
	replacer := strings.NewReplacer("/", "-", "\\", "-", "\"", "", " ", "_")
	return replacer.Replace(name)
}
