package handlers

import (
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"billboardadmin/services"
	"billboardadmin/templates"
)

func HandleCustomerList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, err := app.FindRecordsByFilter("customers", "1=1", "name", 0, 0, nil)
		if err != nil {
			log.Printf("customer_list: could not query customers: %v", err)
			records = nil
		}

		balances, err := services.CustomerBalances(app)
		if err != nil {
			log.Printf("customer_list: could not compute balances: %v", err)
		}

		var items []templates.CustomerListItem
		for _, rec := range records {
			c := services.CustomerFromRecord(rec)
			items = append(items, templates.CustomerListItem{
				ID:      c.ID,
				Name:    c.Name,
				Company: c.Company,
				Phone:   c.Phone,
				Balance: balances[c.ID],
			})
		}

		component := templates.CustomerListPage(items)
		return component.Render(e.Request.Context(), e.Response)
	}
}
