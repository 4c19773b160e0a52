// Package seed loads optional sample expenses from a TOML file, the way a
// fresh install ships with a few rows already in the table.
package seed

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"expensetracker/internal/core"
	"expensetracker/internal/dates"
	applog "expensetracker/internal/log"
)

// File is the TOML shape:
//
//	[[expense]]
//	date = "01-05-2024"
//	amount = "25.50"
//	category = "Food"
//	description = "Lunch at Subway"
type File struct {
	Expense []Entry `toml:"expense"`
}

type Entry struct {
	Date        string `toml:"date"`
	Amount      string `toml:"amount"`
	Category    string `toml:"category"`
	Description string `toml:"description"`
}

// Load reads the seed file and returns the valid expenses in file order.
// Rows with a bad date or amount are skipped with a warning rather than
// failing the whole file; seed data is a convenience, not a contract.
func Load(path string, logger *applog.Logger) ([]core.Expense, error) {
	var f File
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("decode seed file: %w", err)
	}

	var out []core.Expense
	for i, entry := range f.Expense {
		if _, err := dates.Normalize(entry.Date); err != nil {
			logger.Warn("Skipping seed expense with invalid date",
				applog.FieldDate, entry.Date, "row", i+1)
			continue
		}
		cents, err := core.ParseDecimalToCents(entry.Amount)
		if err != nil {
			logger.Warn("Skipping seed expense with invalid amount",
				"amount", entry.Amount, "row", i+1)
			continue
		}
		out = append(out, core.Expense{
			Date:        entry.Date,
			Amount:      core.Money{Cents: cents},
			Category:    entry.Category,
			Description: entry.Description,
		})
	}
	return out, nil
}
