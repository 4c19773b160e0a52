// Package ledger implements the in-memory expense ledger: an append-only
// ordered sequence of expenses with range and category filtering and
// category-total summarization.
//
// Every operation is a pure, synchronous computation. The ledger owns its
// records exclusively and assumes sequential access by a single front-end;
// a concurrent host must add its own mutual exclusion around it.
package ledger

import (
	"sort"
	"strings"

	"expensetracker/internal/core"
	"expensetracker/internal/dates"
)

// AllCategories is the sentinel category meaning "do not filter by
// category". It is what a GUI's category selector shows as the default.
const AllCategories = "All"

// Ledger is an ordered, append-only collection of expenses for one session.
// Records are never mutated or removed; state lives only for the process
// lifetime unless an external archive stores it.
type Ledger struct {
	items []core.Expense
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{}
}

// NewFromRecords builds a ledger preloaded with records, preserving their
// order. Records failing the amount invariant are dropped, so a restored
// archive can never smuggle in an expense Append would have rejected.
func NewFromRecords(records []core.Expense) *Ledger {
	l := New()
	for _, e := range records {
		if e.Validate() == nil {
			l.items = append(l.items, e)
		}
	}
	return l
}

// Append validates and stores an expense at the end of the sequence.
// A non-positive amount fails with core.ErrInvalidAmount and leaves the
// ledger unchanged. Category and date validation are the caller's job.
func (l *Ledger) Append(e core.Expense) error {
	if err := e.Validate(); err != nil {
		return err
	}
	l.items = append(l.items, e)
	return nil
}

// Len returns the number of stored expenses.
func (l *Ledger) Len() int {
	return len(l.items)
}

// All returns the expenses in insertion order. The slice is a copy; callers
// cannot alias the ledger's own storage.
func (l *Ledger) All() []core.Expense {
	out := make([]core.Expense, len(l.items))
	copy(out, l.items)
	return out
}

// AllNewestFirst returns the expenses in reverse insertion order, the
// presentation order of the table view.
func (l *Ledger) AllNewestFirst() []core.Expense {
	out := make([]core.Expense, len(l.items))
	for i, e := range l.items {
		out[len(l.items)-1-i] = e
	}
	return out
}

// FilterByDateRange returns, in insertion order, the expenses whose date
// lies within [from, to] inclusive.
//
// The bounds must normalize or the whole query fails with
// core.ErrInvalidFormat. A stored record whose own date text fails to
// normalize is silently excluded: it was already accepted into the ledger,
// so a range query is not the place to start raising errors about it.
func (l *Ledger) FilterByDateRange(from, to string) ([]core.Expense, error) {
	lo, err := dates.Normalize(from)
	if err != nil {
		return nil, err
	}
	hi, err := dates.Normalize(to)
	if err != nil {
		return nil, err
	}
	var out []core.Expense
	for _, e := range l.items {
		k, err := dates.Normalize(e.Date)
		if err != nil {
			continue
		}
		if k >= lo && k <= hi {
			out = append(out, e)
		}
	}
	return out, nil
}

// FilterByCategory returns, in insertion order, the expenses whose category
// equals label case-insensitively. Exact match only, no substring search.
func (l *Ledger) FilterByCategory(label string) []core.Expense {
	var out []core.Expense
	for _, e := range l.items {
		if strings.EqualFold(e.Category, label) {
			out = append(out, e)
		}
	}
	return out
}

// Filter intersects the date-range and category predicates. Passing
// AllCategories bypasses the category predicate entirely; this is the
// default query a GUI issues when its filter button is clicked.
func (l *Ledger) Filter(from, to, category string) ([]core.Expense, error) {
	byDate, err := l.FilterByDateRange(from, to)
	if err != nil {
		return nil, err
	}
	if category == AllCategories {
		return byDate, nil
	}
	var out []core.Expense
	for _, e := range byDate {
		if strings.EqualFold(e.Category, category) {
			out = append(out, e)
		}
	}
	return out, nil
}

// Summarize computes the overall total and per-category totals of a sequence
// in one pass. Categories are grouped case-insensitively, consistent with
// FilterByCategory; the label shown is the casing of the first record seen.
// Per-category entries come back sorted lexicographically by label. An empty
// sequence yields a zero total and no entries.
//
// The result is recomputed from scratch on every call and never cached, so
// summarizing the same unchanged sequence twice gives identical results.
func Summarize(seq []core.Expense) core.Summary {
	var s core.Summary
	totals := make(map[string]core.Money)
	labels := make(map[string]string)
	for _, e := range seq {
		key := strings.ToLower(e.Category)
		if _, ok := labels[key]; !ok {
			labels[key] = e.Category
		}
		totals[key] = totals[key].Add(e.Amount)
		s.Total = s.Total.Add(e.Amount)
	}
	for key, amount := range totals {
		s.ByCategory = append(s.ByCategory, core.CategoryAmount{
			Name:   labels[key],
			Amount: amount,
		})
	}
	sort.Slice(s.ByCategory, func(i, j int) bool {
		return s.ByCategory[i].Name < s.ByCategory[j].Name
	})
	return s
}
