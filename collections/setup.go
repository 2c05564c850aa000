package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Setup programmatically creates/ensures the customers, pricing,
// contracts, billboards, payments, printed_invoices and settings
// collections exist.
func Setup(app *pocketbase.PocketBase) {
	customers := ensureCollection(app, "customers", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "company", Required: false})
		c.Fields.Add(&core.TextField{Name: "phone", Required: false})
		c.Fields.Add(&core.TextField{Name: "category", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "pricing", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "size", Required: true})
		c.Fields.Add(&core.TextField{Name: "billboard_level", Required: false})
		c.Fields.Add(&core.TextField{Name: "customer_category", Required: false})
		c.Fields.Add(&core.NumberField{Name: "one_day", Required: false})
		c.Fields.Add(&core.NumberField{Name: "one_month", Required: false})
		c.Fields.Add(&core.NumberField{Name: "two_months", Required: false})
		c.Fields.Add(&core.NumberField{Name: "three_months", Required: false})
		c.Fields.Add(&core.NumberField{Name: "six_months", Required: false})
		c.Fields.Add(&core.NumberField{Name: "full_year", Required: false})
		c.Fields.Add(&core.NumberField{Name: "installation_price", Required: false})
		c.Fields.Add(&core.NumberField{Name: "print_price", Required: false})
	})

	contracts := ensureCollection(app, "contracts", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "contract_number", Required: true})
		c.Fields.Add(&core.RelationField{
			Name:         "customer",
			Required:     false,
			CollectionId: customers.Id,
			MaxSelect:    1,
		})
		c.Fields.Add(&core.TextField{Name: "customer_name", Required: false})
		c.Fields.Add(&core.TextField{Name: "company", Required: false})
		c.Fields.Add(&core.TextField{Name: "phone", Required: false})
		c.Fields.Add(&core.TextField{Name: "customer_category", Required: false})
		c.Fields.Add(&core.TextField{Name: "ad_type", Required: false})
		c.Fields.Add(&core.TextField{Name: "start_date", Required: false})
		c.Fields.Add(&core.TextField{Name: "end_date", Required: false})
		c.Fields.Add(&core.NumberField{Name: "duration_months", Required: false})
		c.Fields.Add(&core.NumberField{Name: "discount", Required: false})
		c.Fields.Add(&core.SelectField{
			Name:      "discount_mode",
			Required:  false,
			Values:    []string{"percent", "fixed"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.NumberField{Name: "subtotal", Required: false})
		c.Fields.Add(&core.NumberField{Name: "discount_amount", Required: false})
		c.Fields.Add(&core.NumberField{Name: "total", Required: false})
		c.Fields.Add(&core.NumberField{Name: "rental_only", Required: false})
		c.Fields.Add(&core.NumberField{Name: "operating_fee", Required: false})
		c.Fields.Add(&core.NumberField{Name: "fee_rate", Required: false})
		c.Fields.Add(&core.TextField{Name: "currency_code", Required: false})
		c.Fields.Add(&core.NumberField{Name: "exchange_rate", Required: false})
		c.Fields.Add(&core.BoolField{Name: "print_enabled", Required: false})
		c.Fields.Add(&core.NumberField{Name: "print_price", Required: false})
		c.Fields.Add(&core.NumberField{Name: "installment_count", Required: false})
		c.Fields.Add(&core.SelectField{
			Name:      "installment_spacing",
			Required:  false,
			Values:    []string{"monthly", "weekly"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.TextField{Name: "installments", Required: false, Max: 100000})
		c.Fields.Add(&core.TextField{Name: "price_snapshot", Required: false, Max: 100000})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "billboards", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "size", Required: false})
		c.Fields.Add(&core.NumberField{Name: "faces", Required: false})
		c.Fields.Add(&core.TextField{Name: "level", Required: false})
		c.Fields.Add(&core.TextField{Name: "municipality", Required: false})
		c.Fields.Add(&core.TextField{Name: "district", Required: false})
		c.Fields.Add(&core.TextField{Name: "landmark", Required: false})
		c.Fields.Add(&core.NumberField{Name: "latitude", Required: false})
		c.Fields.Add(&core.NumberField{Name: "longitude", Required: false})
		c.Fields.Add(&core.SelectField{
			Name:      "status",
			Required:  false,
			Values:    []string{"available", "rented", "maintenance"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.RelationField{
			Name:         "contract",
			Required:     false,
			CollectionId: contracts.Id,
			MaxSelect:    1,
		})
		c.Fields.Add(&core.TextField{Name: "rent_start", Required: false})
		c.Fields.Add(&core.TextField{Name: "rent_end", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "payments", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "customer",
			Required:      true,
			CollectionId:  customers.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.RelationField{
			Name:         "contract",
			Required:     false,
			CollectionId: contracts.Id,
			MaxSelect:    1,
		})
		c.Fields.Add(&core.SelectField{
			Name:      "entry_type",
			Required:  true,
			Values:    []string{"receipt", "invoice", "debt", "account_payment"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.NumberField{Name: "amount", Required: true})
		c.Fields.Add(&core.TextField{Name: "date", Required: false})
		c.Fields.Add(&core.TextField{Name: "method", Required: false})
		c.Fields.Add(&core.TextField{Name: "reference", Required: false})
		c.Fields.Add(&core.TextField{Name: "notes", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
	})

	ensureCollection(app, "printed_invoices", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "number", Required: true})
		c.Fields.Add(&core.TextField{Name: "invoice_type", Required: false})
		c.Fields.Add(&core.RelationField{
			Name:         "customer",
			Required:     false,
			CollectionId: customers.Id,
			MaxSelect:    1,
		})
		c.Fields.Add(&core.TextField{Name: "customer_name", Required: false})
		c.Fields.Add(&core.TextField{Name: "currency_code", Required: false})
		c.Fields.Add(&core.NumberField{Name: "total", Required: false})
		c.Fields.Add(&core.TextField{Name: "lines", Required: false, Max: 100000})
		c.Fields.Add(&core.TextField{Name: "notes", Required: false})
		c.Fields.Add(&core.TextField{Name: "date", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
	})

	ensureCollection(app, "settings", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "company_name", Required: false})
		c.Fields.Add(&core.TextField{Name: "company_sub", Required: false})
		c.Fields.Add(&core.TextField{Name: "company_phone", Required: false})
		c.Fields.Add(&core.TextField{Name: "company_address", Required: false})
		c.Fields.Add(&core.NumberField{Name: "default_fee_rate", Required: false})
		c.Fields.Add(&core.TextField{Name: "default_currency", Required: false})
		c.Fields.Add(&core.NumberField{Name: "print_price", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})
}

// ensureCollection checks if a collection already exists by name. If it does,
// the existing collection is returned. Otherwise a new base collection is
// created, the addFields callback is invoked to populate its fields, and the
// collection is saved.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		log.Printf("Collection %q already exists, skipping creation.\n", name)
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		log.Fatalf("Failed to create collection %q: %v", name, err)
	}

	fmt.Printf("Created collection %q (id=%s)\n", name, collection.Id)
	return collection
}
