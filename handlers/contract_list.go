package handlers

import (
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"billboardadmin/services"
	"billboardadmin/templates"
)

func HandleContractList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, err := app.FindRecordsByFilter("contracts", "1=1", "-created", 0, 0, nil)
		if err != nil {
			log.Printf("contract_list: could not query contracts: %v", err)
			records = nil
		}

		// One pass over billboards gives the per-contract board count.
		boardCounts := make(map[string]int)
		if boards, err := app.FindAllRecords("billboards"); err == nil {
			for _, b := range boards {
				if id := b.GetString("contract"); id != "" {
					boardCounts[id]++
				}
			}
		}

		var items []templates.ContractListItem
		for _, rec := range records {
			items = append(items, templates.ContractListItem{
				ID:           rec.Id,
				Number:       rec.GetString("contract_number"),
				CustomerName: rec.GetString("customer_name"),
				AdType:       rec.GetString("ad_type"),
				StartDate:    services.FormatDateArabic(rec.GetString("start_date")),
				EndDate:      services.FormatDateArabic(rec.GetString("end_date")),
				Total:        rec.GetFloat("total"),
				CurrencyCode: rec.GetString("currency_code"),
				BoardCount:   boardCounts[rec.Id],
			})
		}

		component := templates.ContractListPage(items)
		return component.Render(e.Request.Context(), e.Response)
	}
}
