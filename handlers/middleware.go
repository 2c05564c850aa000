package handlers

import (
	"context"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"billboardadmin/services"
)

type contextKey string

const CompanyKey contextKey = "company"

// Company carries the settings record values every page and print
// document needs: letterhead identity and calculation defaults.
type Company struct {
	SettingsID      string
	Name            string
	Sub             string
	Phone           string
	Address         string
	DefaultFeeRate  float64
	DefaultCurrency string
	PrintPrice      float64
}

// GetCompany extracts the company settings from the request context.
// Handlers always get a usable value; when the settings record is
// missing the calculation defaults still apply.
func GetCompany(r *http.Request) Company {
	if val, ok := r.Context().Value(CompanyKey).(Company); ok {
		return val
	}
	return defaultCompany()
}

func defaultCompany() Company {
	return Company{
		Name:            "شركة الإعلان الحديث",
		Sub:             "للدعاية والإعلان",
		DefaultFeeRate:  services.DefaultFeeRate,
		DefaultCurrency: "دينار",
	}
}

// CompanyMiddleware loads the single settings record and stores it in
// the request context so handlers and print documents can use it
// without re-querying.
func CompanyMiddleware(app *pocketbase.PocketBase) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		company := defaultCompany()

		records, err := app.FindRecordsByFilter("settings", "1=1", "", 1, 0, nil)
		if err != nil {
			log.Printf("middleware: could not load settings: %v", err)
		} else if len(records) > 0 {
			rec := records[0]
			company.SettingsID = rec.Id
			if v := rec.GetString("company_name"); v != "" {
				company.Name = v
			}
			company.Sub = rec.GetString("company_sub")
			company.Phone = rec.GetString("company_phone")
			company.Address = rec.GetString("company_address")
			if v := rec.GetFloat("default_fee_rate"); v > 0 {
				company.DefaultFeeRate = v
			}
			if v := rec.GetString("default_currency"); v != "" {
				company.DefaultCurrency = v
			}
			company.PrintPrice = rec.GetFloat("print_price")
		}

		ctx := context.WithValue(e.Request.Context(), CompanyKey, company)
		e.Request = e.Request.WithContext(ctx)

		return e.Next()
	}
}
