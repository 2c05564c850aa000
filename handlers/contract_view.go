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

func HandleContractView(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data, rec, err := loadContractData(app, e.Request.PathValue("id"))
		if err != nil {
			return ErrorToast(e, http.StatusNotFound, "العقد غير موجود")
		}

		rows, err := services.LoadPricingRows(app)
		if err != nil {
			log.Printf("contract_view: could not load pricing: %v", err)
		}
		install := services.CalcInstallation(rows, data.Boards)
		printCost := services.CalcPrintCost(data.Boards, rec.GetBool("print_enabled"), rec.GetFloat("print_price"))

		component := templates.ContractViewPage(data, install.Items, printCost.Items)
		return component.Render(e.Request.Context(), e.Response)
	}
}

// loadContractData assembles the full typed contract model: record
// figures, assigned billboards, paid total and the print pagination.
func loadContractData(app *pocketbase.PocketBase, id string) (services.ContractData, *core.Record, error) {
	if id == "" {
		return services.ContractData{}, nil, fmt.Errorf("missing contract id")
	}
	rec, err := app.FindRecordById("contracts", id)
	if err != nil {
		log.Printf("contract_view: could not find contract %s: %v", id, err)
		return services.ContractData{}, nil, err
	}

	boards := contractBoards(app, id)
	data := services.ContractFromRecord(rec, boards)

	paid, err := services.ContractPaidTotal(app, id)
	if err != nil {
		log.Printf("contract_view: could not compute paid total for %s: %v", id, err)
	}
	data.PaidTotal = paid
	data.Remaining = data.Totals.FinalTotal - paid

	return data, rec, nil
}
