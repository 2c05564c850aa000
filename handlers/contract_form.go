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

func HandleContractNew(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		company := GetCompany(e.Request)

		data := templates.ContractFormData{
			Category:           "عادي",
			DurationMonths:     12,
			DiscountMode:       string(services.DiscountPercent),
			FeeRate:            company.DefaultFeeRate,
			CurrencyCode:       company.DefaultCurrency,
			PrintPricePerMeter: company.PrintPrice,
			InstallmentCount:   1,
			InstallmentSpacing: string(services.SpacingMonthly),
			Boards:             boardOptions(app, nil),
			Errors:             make(map[string]string),
		}

		// ?name= preselects the customer, e.g. from the customers page.
		if name := strings.TrimSpace(e.Request.URL.Query().Get("name")); name != "" {
			if rec, err := services.FindCustomerByName(app, name); err == nil && rec != nil {
				customer := services.CustomerFromRecord(rec)
				data.CustomerName = customer.Name
				data.Company = customer.Company
				data.Phone = customer.Phone
				data.Category = customer.Category
			} else {
				data.CustomerName = name
			}
		}

		component := templates.ContractFormPage(data)
		return component.Render(e.Request.Context(), e.Response)
	}
}

func HandleContractEdit(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		rec, err := app.FindRecordById("contracts", id)
		if err != nil {
			log.Printf("contract_edit: could not find contract %s: %v", id, err)
			return ErrorToast(e, http.StatusNotFound, "العقد غير موجود")
		}

		selected := make(map[string]bool)
		for _, b := range contractBoards(app, id) {
			selected[b.ID] = true
		}

		data := templates.ContractFormData{
			ID:                 rec.Id,
			Number:             rec.GetString("contract_number"),
			CustomerName:       rec.GetString("customer_name"),
			Company:            rec.GetString("company"),
			Phone:              rec.GetString("phone"),
			Category:           rec.GetString("customer_category"),
			AdType:             rec.GetString("ad_type"),
			StartDate:          rec.GetString("start_date"),
			DurationMonths:     rec.GetInt("duration_months"),
			Discount:           rec.GetFloat("discount"),
			DiscountMode:       rec.GetString("discount_mode"),
			PrintEnabled:       rec.GetBool("print_enabled"),
			PrintPricePerMeter: rec.GetFloat("print_price"),
			FeeRate:            rec.GetFloat("fee_rate"),
			CurrencyCode:       rec.GetString("currency_code"),
			ExchangeRate:       rec.GetFloat("exchange_rate"),
			InstallmentCount:   rec.GetInt("installment_count"),
			InstallmentSpacing: rec.GetString("installment_spacing"),
			Boards:             boardOptions(app, selected),
			Errors:             make(map[string]string),
		}

		component := templates.ContractFormPage(data)
		return component.Render(e.Request.Context(), e.Response)
	}
}

// boardOptions lists the billboards selectable on the contract form:
// every available board plus the ones already on this contract.
func boardOptions(app *pocketbase.PocketBase, selected map[string]bool) []templates.BoardOption {
	records, err := app.FindRecordsByFilter("billboards", "1=1", "name", 0, 0, nil)
	if err != nil {
		log.Printf("contract_form: could not query billboards: %v", err)
		return nil
	}

	var options []templates.BoardOption
	for _, rec := range records {
		b := services.BillboardFromRecord(rec)
		if b.ContractID != "" && !selected[b.ID] {
			continue // rented by another contract
		}
		options = append(options, templates.BoardOption{
			ID:           b.ID,
			Name:         b.Name,
			Size:         b.Size,
			Municipality: b.Municipality,
			Selected:     selected[b.ID],
		})
	}
	return options
}

// contractBoards resolves the billboards assigned to a contract.
func contractBoards(app *pocketbase.PocketBase, contractID string) []services.Billboard {
	records, err := app.FindRecordsByFilter(
		"billboards",
		"contract = {:contract}",
		"name", 0, 0,
		map[string]any{"contract": contractID},
	)
	if err != nil {
		log.Printf("contract_form: could not query contract billboards: %v", err)
		return nil
	}
	boards := make([]services.Billboard, 0, len(records))
	for _, rec := range records {
		boards = append(boards, services.BillboardFromRecord(rec))
	}
	return boards
}
