package services

import (
	"fmt"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Customer is the canonical in-memory shape of a customer record.
type Customer struct {
	ID       string
	Name     string
	Company  string
	Phone    string
	Category string
}

// CustomerFromRecord builds a Customer from a record, defaulting the
// pricing category when unset.
func CustomerFromRecord(rec *core.Record) Customer {
	category := rec.GetString("category")
	if category == "" {
		category = "عادي"
	}
	return Customer{
		ID:       rec.Id,
		Name:     rec.GetString("name"),
		Company:  rec.GetString("company"),
		Phone:    rec.GetString("phone"),
		Category: category,
	}
}

// FindCustomerByName looks a customer up by name: exact match first, then
// a case-insensitive contains match on either side. Returns nil when
// nothing matches.
func FindCustomerByName(app *pocketbase.PocketBase, name string) (*core.Record, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}

	records, err := app.FindRecordsByFilter(
		"customers",
		"name = {:name}",
		"", 1, 0,
		map[string]any{"name": name},
	)
	if err == nil && len(records) > 0 {
		return records[0], nil
	}

	all, err := app.FindAllRecords("customers")
	if err != nil {
		return nil, fmt.Errorf("find customer by name: %w", err)
	}
	target := strings.ToLower(name)
	for _, rec := range all {
		candidate := strings.ToLower(rec.GetString("name"))
		if strings.Contains(candidate, target) || strings.Contains(target, candidate) {
			return rec, nil
		}
	}
	return nil, nil
}

// EnsureCustomer returns the customer matching the given name, creating a
// new record on demand when no fuzzy match exists.
func EnsureCustomer(app *pocketbase.PocketBase, name, company, phone string) (*core.Record, error) {
	rec, err := FindCustomerByName(app, name)
	if err != nil {
		return nil, err
	}
	if rec != nil {
		return rec, nil
	}

	col, err := app.FindCollectionByNameOrId("customers")
	if err != nil {
		return nil, fmt.Errorf("customers collection not found: %w", err)
	}
	rec = core.NewRecord(col)
	rec.Set("name", strings.TrimSpace(name))
	rec.Set("company", strings.TrimSpace(company))
	rec.Set("phone", strings.TrimSpace(phone))
	rec.Set("category", "عادي")
	if err := app.Save(rec); err != nil {
		return nil, fmt.Errorf("create customer %q: %w", name, err)
	}
	return rec, nil
}
