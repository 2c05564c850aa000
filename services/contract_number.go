package services

import (
	"fmt"
	"time"

	"github.com/pocketbase/pocketbase"
)

// formatContractNumber constructs the contract number string.
// Uses "-" as separator so the number stays safe in URLs and filenames.
func formatContractNumber(year int, sequence int) string {
	return fmt.Sprintf("CT-%d-%04d", year, sequence)
}

// GenerateContractNumber creates the next contract number for the given
// calendar year. Format: CT-{year}-{sequence}, sequence 4-digit
// zero-padded and counted per year.
func GenerateContractNumber(app *pocketbase.PocketBase, now time.Time) (string, error) {
	year := now.Year()
	prefix := fmt.Sprintf("CT-%d-", year)

	existing, err := app.FindRecordsByFilter(
		"contracts",
		"contract_number ~ {:prefix}",
		"",
		0,
		0,
		map[string]any{"prefix": prefix + "%"},
	)
	if err != nil {
		// No collection or no records yet, start at 1.
		existing = nil
	}

	return formatContractNumber(year, len(existing)+1), nil
}
