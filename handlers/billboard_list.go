package handlers

import (
	"log"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"billboardadmin/services"
	"billboardadmin/templates"
)

func HandleBillboardList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		municipality := strings.TrimSpace(e.Request.URL.Query().Get("municipality"))
		status := strings.TrimSpace(e.Request.URL.Query().Get("status"))

		filter := "1=1"
		params := map[string]any{}
		if municipality != "" {
			filter += " && municipality = {:municipality}"
			params["municipality"] = municipality
		}
		if status != "" {
			filter += " && status = {:status}"
			params["status"] = status
		}

		records, err := app.FindRecordsByFilter("billboards", filter, "name", 0, 0, params)
		if err != nil {
			log.Printf("billboard_list: could not query billboards: %v", err)
			records = nil
		}

		// Resolve contract numbers for rented boards in one query.
		numbers := make(map[string]string)
		if contracts, err := app.FindAllRecords("contracts"); err == nil {
			for _, c := range contracts {
				numbers[c.Id] = c.GetString("contract_number")
			}
		}

		var items []templates.BillboardListItem
		for _, rec := range records {
			b := services.BillboardFromRecord(rec)
			items = append(items, templates.BillboardListItem{
				ID:             b.ID,
				Name:           b.Name,
				Size:           b.Size,
				Faces:          b.Faces,
				Level:          b.Level,
				Municipality:   b.Municipality,
				District:       b.District,
				Status:         b.Status,
				ContractNumber: numbers[b.ContractID],
			})
		}

		component := templates.BillboardListPage(items, municipality, status)
		return component.Render(e.Request.Context(), e.Response)
	}
}
