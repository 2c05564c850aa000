package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"billboardadmin/templates"
)

// HandleSettingsPage renders the settings editor.
// Route: GET /settings
func HandleSettingsPage(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		company := GetCompany(e.Request)
		data := templates.SettingsFormData{
			CompanyName:     company.Name,
			CompanySub:      company.Sub,
			CompanyPhone:    company.Phone,
			CompanyAddress:  company.Address,
			DefaultFeeRate:  company.DefaultFeeRate,
			DefaultCurrency: company.DefaultCurrency,
			PrintPrice:      company.PrintPrice,
			Errors:          make(map[string]string),
		}
		component := templates.SettingsPage(data)
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleSettingsSave updates the single settings record.
// Route: POST /settings
func HandleSettingsSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "تعذر قراءة النموذج")
		}

		data := templates.SettingsFormData{
			CompanyName:     strings.TrimSpace(e.Request.FormValue("company_name")),
			CompanySub:      strings.TrimSpace(e.Request.FormValue("company_sub")),
			CompanyPhone:    strings.TrimSpace(e.Request.FormValue("company_phone")),
			CompanyAddress:  strings.TrimSpace(e.Request.FormValue("company_address")),
			DefaultFeeRate:  formFloat(e, "default_fee_rate"),
			DefaultCurrency: e.Request.FormValue("default_currency"),
			PrintPrice:      formFloat(e, "print_price"),
			Errors:          make(map[string]string),
		}

		if data.CompanyName == "" {
			data.Errors["company_name"] = "اسم الشركة مطلوب"
		}
		if data.DefaultFeeRate < 0 {
			data.Errors["default_fee_rate"] = "النسبة لا تكون سالبة"
		}
		if data.PrintPrice < 0 {
			data.Errors["print_price"] = "السعر لا يكون سالباً"
		}

		if len(data.Errors) > 0 {
			SetToast(e, "warning", "يرجى تصحيح الأخطاء أدناه")
			component := templates.SettingsPage(data)
			return component.Render(e.Request.Context(), e.Response)
		}

		var record *core.Record
		records, err := app.FindRecordsByFilter("settings", "1=1", "", 1, 0, nil)
		if err != nil {
			log.Printf("settings: could not load settings: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "حدث خطأ، حاول مرة أخرى")
		}
		if len(records) > 0 {
			record = records[0]
		} else {
			col, err := app.FindCollectionByNameOrId("settings")
			if err != nil {
				log.Printf("settings: could not find settings collection: %v", err)
				return ErrorToast(e, http.StatusInternalServerError, "حدث خطأ، حاول مرة أخرى")
			}
			record = core.NewRecord(col)
		}

		record.Set("company_name", data.CompanyName)
		record.Set("company_sub", data.CompanySub)
		record.Set("company_phone", data.CompanyPhone)
		record.Set("company_address", data.CompanyAddress)
		record.Set("default_fee_rate", data.DefaultFeeRate)
		record.Set("default_currency", data.DefaultCurrency)
		record.Set("print_price", data.PrintPrice)

		if err := app.Save(record); err != nil {
			log.Printf("settings: could not save settings: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "حدث خطأ، حاول مرة أخرى")
		}

		SetToast(e, "success", "تم حفظ الإعدادات")
		return redirect(e, "/settings")
	}
}
