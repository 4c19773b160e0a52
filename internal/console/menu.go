// Package console is the interactive front-end: a numbered menu over the
// ledger's record, filter, and summarize operations. It reads from an
// io.Reader and writes to an io.Writer so a test can drive a whole session
// from a string.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"expensetracker/internal/core"
	"expensetracker/internal/dates"
	"expensetracker/internal/ledger"
	applog "expensetracker/internal/log"
)

// Archiver receives every expense the menu successfully appends. The SQLite
// repository implements it; the memory backend leaves it unset.
type Archiver interface {
	Archive(ctx context.Context, e core.Expense) (int64, error)
}

// Menu drives one console session over a single ledger.
type Menu struct {
	in      *bufio.Scanner
	out     io.Writer
	ledger  *ledger.Ledger
	logger  *applog.Logger
	archive Archiver
}

func NewMenu(in io.Reader, out io.Writer, l *ledger.Ledger, logger *applog.Logger) *Menu {
	return &Menu{
		in:     bufio.NewScanner(in),
		out:    out,
		ledger: l,
		logger: logger,
	}
}

// WithArchive attaches an archive that records every accepted expense.
func (m *Menu) WithArchive(a Archiver) *Menu {
	m.archive = a
	return m
}

// Run loops over the menu until the user exits or input ends.
func (m *Menu) Run(ctx context.Context) error {
	for {
		fmt.Fprintln(m.out)
		fmt.Fprintln(m.out, "--- Expense Tracker Menu ---")
		fmt.Fprintln(m.out, "1. Add Expense")
		fmt.Fprintln(m.out, "2. View All Expenses")
		fmt.Fprintln(m.out, "3. Filter Expenses by Date Range")
		fmt.Fprintln(m.out, "4. Filter Expenses by Category")
		fmt.Fprintln(m.out, "5. Show Summary")
		fmt.Fprintln(m.out, "6. Exit")

		choice, ok := m.readChoice()
		if !ok {
			return nil
		}

		switch choice {
		case 1:
			if err := m.addExpense(ctx); err != nil {
				return err
			}
		case 2:
			m.viewAll()
		case 3:
			m.filterByDate()
		case 4:
			m.filterByCategory()
		case 5:
			m.showSummary()
		case 6:
			fmt.Fprintln(m.out, "Exiting Expense Tracker. Goodbye!")
			return nil
		}
	}
}

// readChoice prompts until it gets a number between 1 and 6. The second
// return is false once input is exhausted.
func (m *Menu) readChoice() (int, bool) {
	fmt.Fprint(m.out, "Enter your choice: ")
	for {
		line, ok := m.readLine()
		if !ok {
			return 0, false
		}
		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil && choice >= 1 && choice <= 6 {
			return choice, true
		}
		fmt.Fprint(m.out, "Invalid choice. Please enter a number between 1 and 6: ")
	}
}

func (m *Menu) addExpense(ctx context.Context) error {
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, "--- Add New Expense ---")

	date, ok := m.readDate("Enter Date (MM-DD-YYYY): ")
	if !ok {
		return nil
	}

	amount, ok := m.readAmount()
	if !ok {
		return nil
	}

	fmt.Fprint(m.out, "Enter Category (e.g., Food, Transport, Rent): ")
	category, ok := m.readLine()
	if !ok {
		return nil
	}
	category = strings.TrimSpace(category)
	if category == "" {
		category = "Other"
	}

	fmt.Fprint(m.out, "Enter Description: ")
	description, ok := m.readLine()
	if !ok {
		return nil
	}

	e := core.Expense{
		Date:        date,
		Amount:      core.Money{Cents: amount},
		Category:    category,
		Description: strings.TrimSpace(description),
	}
	if err := m.ledger.Append(e); err != nil {
		// Unreachable after readAmount, but the ledger has the last word.
		fmt.Fprintln(m.out, "Could not add expense:", err)
		return nil
	}
	if m.archive != nil {
		if _, err := m.archive.Archive(ctx, e); err != nil {
			m.logger.Error("Failed to archive expense",
				applog.FieldError, err,
				applog.FieldDate, e.Date,
				applog.FieldAmountCents, e.Amount.Cents)
			fmt.Fprintln(m.out, "Warning: expense saved for this session but not archived.")
		}
	}
	m.logger.Debug("Expense added",
		applog.FieldOperation, applog.OpAppend,
		applog.FieldDate, e.Date,
		applog.FieldCategory, e.Category,
		applog.FieldAmountCents, e.Amount.Cents)
	fmt.Fprintln(m.out, "Expense added successfully!")
	return nil
}

// readDate prompts until the input is a valid MM-DD-YYYY date. Strict
// validation: a date like 02-30-2024 is re-prompted, never rolled over.
func (m *Menu) readDate(prompt string) (string, bool) {
	fmt.Fprint(m.out, prompt)
	for {
		line, ok := m.readLine()
		if !ok {
			return "", false
		}
		line = strings.TrimSpace(line)
		if _, err := dates.Normalize(line); err == nil {
			return line, true
		}
		fmt.Fprint(m.out, "Invalid date format or invalid date. Please use MM-DD-YYYY: ")
	}
}

func (m *Menu) readAmount() (int64, bool) {
	fmt.Fprint(m.out, "Enter Amount: $")
	for {
		line, ok := m.readLine()
		if !ok {
			return 0, false
		}
		cents, err := core.ParseDecimalToCents(line)
		if err == nil {
			return cents, true
		}
		fmt.Fprint(m.out, "Invalid amount. Please enter a positive number: $")
	}
}

func (m *Menu) viewAll() {
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, "--- All Expenses ---")
	all := m.ledger.All()
	if len(all) == 0 {
		fmt.Fprintln(m.out, "No expenses recorded yet.")
		return
	}
	for _, e := range all {
		m.printExpense(e)
	}
}

func (m *Menu) filterByDate() {
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, "--- Filter Expenses by Date Range ---")

	from, ok := m.readDate("Enter Start Date (MM-DD-YYYY): ")
	if !ok {
		return
	}
	to, ok := m.readDate("Enter End Date (MM-DD-YYYY): ")
	if !ok {
		return
	}

	filtered, err := m.ledger.FilterByDateRange(from, to)
	if err != nil {
		// Bounds were validated on entry, so only a programming error on
		// our side lands here.
		if errors.Is(err, core.ErrInvalidFormat) {
			fmt.Fprintln(m.out, "Invalid date format or invalid date.")
		}
		return
	}

	fmt.Fprintln(m.out)
	fmt.Fprintf(m.out, "Expenses from %s to %s:\n", from, to)
	if len(filtered) == 0 {
		fmt.Fprintln(m.out, "No expenses found in this date range.")
		return
	}
	for _, e := range filtered {
		m.printExpense(e)
	}
}

func (m *Menu) filterByCategory() {
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, "--- Filter Expenses by Category ---")
	fmt.Fprint(m.out, "Enter Category to filter by: ")
	category, ok := m.readLine()
	if !ok {
		return
	}
	category = strings.TrimSpace(category)

	fmt.Fprintln(m.out)
	fmt.Fprintf(m.out, "Expenses in category '%s':\n", category)
	filtered := m.ledger.FilterByCategory(category)
	if len(filtered) == 0 {
		fmt.Fprintf(m.out, "No expenses found for category '%s'.\n", category)
		return
	}
	for _, e := range filtered {
		m.printExpense(e)
	}
}

func (m *Menu) showSummary() {
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, "--- Expense Summary ---")
	if m.ledger.Len() == 0 {
		fmt.Fprintln(m.out, "No expenses recorded yet to summarize.")
		return
	}

	summary := ledger.Summarize(m.ledger.All())
	fmt.Fprintln(m.out, "Total Expenses by Category:")
	for _, ca := range summary.ByCategory {
		share := 0.0
		if summary.Total.Cents > 0 {
			share = float64(ca.Amount.Cents) / float64(summary.Total.Cents) * 100
		}
		fmt.Fprintf(m.out, "  %s: %s (%.1f%%)\n", ca.Name, ca.Amount, share)
	}
	fmt.Fprintln(m.out)
	fmt.Fprintf(m.out, "Overall Total Expenses: %s\n", summary.Total)
}

func (m *Menu) printExpense(e core.Expense) {
	fmt.Fprintf(m.out, "  Date: %s, Amount: %s, Category: %s, Description: %s\n",
		e.Date, e.Amount, e.Category, e.Description)
}

func (m *Menu) readLine() (string, bool) {
	if !m.in.Scan() {
		return "", false
	}
	return m.in.Text(), true
}
