package ledger

import (
	"errors"
	"reflect"
	"testing"

	"expensetracker/internal/core"
)

func expense(date string, cents int64, category, description string) core.Expense {
	return core.Expense{
		Date:        date,
		Amount:      core.Money{Cents: cents},
		Category:    category,
		Description: description,
	}
}

func mustAppend(t *testing.T, l *Ledger, e core.Expense) {
	t.Helper()
	if err := l.Append(e); err != nil {
		t.Fatalf("append %+v: %v", e, err)
	}
}

func TestAppendRejectsInvalidAmount(t *testing.T) {
	l := New()
	mustAppend(t, l, expense("01-05-2024", 2550, "Food", "Lunch"))

	err := l.Append(expense("01-06-2024", -500, "Food", "refund?"))
	if !errors.Is(err, core.ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
	if l.Len() != 1 {
		t.Fatalf("ledger length changed on rejected append: %d", l.Len())
	}

	if err := l.Append(expense("01-06-2024", 0, "Food", "")); !errors.Is(err, core.ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount for zero, got %v", err)
	}
}

func TestAllReturnsCopy(t *testing.T) {
	l := New()
	mustAppend(t, l, expense("01-05-2024", 2550, "Food", "Lunch"))

	all := l.All()
	all[0].Category = "Hacked"
	if l.All()[0].Category != "Food" {
		t.Fatalf("All leaked the ledger's own storage")
	}
}

func TestAllNewestFirst(t *testing.T) {
	l := New()
	mustAppend(t, l, expense("01-05-2024", 100, "Food", "first"))
	mustAppend(t, l, expense("02-10-2024", 200, "Transport", "second"))
	mustAppend(t, l, expense("03-15-2024", 300, "Rent", "third"))

	got := l.AllNewestFirst()
	want := []string{"third", "second", "first"}
	for i, desc := range want {
		if got[i].Description != desc {
			t.Fatalf("position %d expected %q, got %q", i, desc, got[i].Description)
		}
	}
}

func TestFilterByDateRange(t *testing.T) {
	l := New()
	mustAppend(t, l, expense("01-05-2024", 2550, "Food", "Lunch at Subway"))
	mustAppend(t, l, expense("03-15-2024", 80000, "Rent", "March rent"))

	got, err := l.FilterByDateRange("01-01-2024", "02-01-2024")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Category != "Food" {
		t.Fatalf("expected exactly the Food record, got %+v", got)
	}

	// Inclusive bounds on both ends.
	got, err = l.FilterByDateRange("01-05-2024", "03-15-2024")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected both records for inclusive bounds, got %d", len(got))
	}
}

func TestFilterByDateRangeInvalidBounds(t *testing.T) {
	l := New()
	mustAppend(t, l, expense("01-05-2024", 2550, "Food", ""))

	for _, bounds := range [][2]string{
		{"02-30-2024", "03-01-2024"},
		{"01-01-2024", "13-01-2024"},
		{"1-1-2024", "02-01-2024"},
	} {
		if _, err := l.FilterByDateRange(bounds[0], bounds[1]); !errors.Is(err, core.ErrInvalidFormat) {
			t.Fatalf("bounds %v expected ErrInvalidFormat, got %v", bounds, err)
		}
	}
}

func TestFilterByDateRangeExcludesUnparseableRecordDates(t *testing.T) {
	// A record with a date the normalizer rejects is silently left out of
	// range results; it never fails the query.
	l := NewFromRecords([]core.Expense{
		expense("01-05-2024", 2550, "Food", "valid"),
		expense("garbage", 100, "Food", "broken date"),
	})
	if l.Len() != 2 {
		t.Fatalf("expected both records stored, got %d", l.Len())
	}

	got, err := l.FilterByDateRange("01-01-2024", "12-31-2024")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Description != "valid" {
		t.Fatalf("expected only the valid record, got %+v", got)
	}
}

func TestFilterByCategory(t *testing.T) {
	l := New()
	mustAppend(t, l, expense("01-05-2024", 2550, "Food", "Lunch"))
	mustAppend(t, l, expense("02-10-2024", 6000, "Transport", "Metro"))
	mustAppend(t, l, expense("05-03-2024", 3025, "Food", "Groceries"))

	got := l.FilterByCategory("food")
	if len(got) != 2 {
		t.Fatalf("case-insensitive match expected 2 records, got %d", len(got))
	}
	if got[0].Description != "Lunch" || got[1].Description != "Groceries" {
		t.Fatalf("insertion order not preserved: %+v", got)
	}

	// Exact match only: no substring matching.
	if got := l.FilterByCategory("Foo"); len(got) != 0 {
		t.Fatalf("substring should not match, got %+v", got)
	}
}

func TestFilter(t *testing.T) {
	l := New()
	mustAppend(t, l, expense("01-05-2024", 2550, "Food", "Lunch"))
	mustAppend(t, l, expense("02-10-2024", 6000, "Transport", "Metro"))
	mustAppend(t, l, expense("03-15-2024", 80000, "Rent", "March rent"))
	mustAppend(t, l, expense("05-03-2024", 3025, "Food", "Groceries"))

	got, err := l.Filter("01-01-2024", "04-01-2024", "Food")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Description != "Lunch" {
		t.Fatalf("expected only January Food record, got %+v", got)
	}

	// The sentinel bypasses the category predicate entirely.
	got, err = l.Filter("01-01-2024", "04-01-2024", AllCategories)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("AllCategories expected 3 records, got %d", len(got))
	}

	if _, err := l.Filter("02-30-2024", "03-01-2024", AllCategories); !errors.Is(err, core.ErrInvalidFormat) {
		t.Fatalf("expected ErrInvalidFormat for bad bound, got %v", err)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s.Total.Cents != 0 || len(s.ByCategory) != 0 {
		t.Fatalf("empty input expected zero summary, got %+v", s)
	}
	if !s.IsEmpty() {
		t.Fatalf("expected IsEmpty for empty input")
	}
}

func TestSummarize(t *testing.T) {
	seq := []core.Expense{
		expense("01-05-2024", 10000, "Food", ""),
		expense("02-10-2024", 5000, "Food", ""),
		expense("03-15-2024", 2500, "Rent", ""),
	}
	s := Summarize(seq)
	if s.Total.Cents != 17500 {
		t.Fatalf("expected total 17500, got %d", s.Total.Cents)
	}
	want := []core.CategoryAmount{
		{Name: "Food", Amount: core.Money{Cents: 15000}},
		{Name: "Rent", Amount: core.Money{Cents: 2500}},
	}
	if !reflect.DeepEqual(s.ByCategory, want) {
		t.Fatalf("expected %+v, got %+v", want, s.ByCategory)
	}
}

func TestSummarizeGroupsCaseInsensitively(t *testing.T) {
	// Grouping follows the same policy as FilterByCategory; the label shown
	// is the casing of the first record seen.
	seq := []core.Expense{
		expense("01-05-2024", 100, "Food", ""),
		expense("01-06-2024", 200, "food", ""),
	}
	s := Summarize(seq)
	if len(s.ByCategory) != 1 {
		t.Fatalf("expected one merged category, got %+v", s.ByCategory)
	}
	if s.ByCategory[0].Name != "Food" || s.ByCategory[0].Amount.Cents != 300 {
		t.Fatalf("expected Food=300, got %+v", s.ByCategory[0])
	}
}

func TestSummarizeIdempotent(t *testing.T) {
	seq := []core.Expense{
		expense("01-05-2024", 10000, "Food", ""),
		expense("03-15-2024", 2500, "Rent", ""),
	}
	first := Summarize(seq)
	second := Summarize(seq)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("summarize not idempotent: %+v vs %+v", first, second)
	}
}

func TestNewFromRecordsDropsInvalidAmounts(t *testing.T) {
	l := NewFromRecords([]core.Expense{
		expense("01-05-2024", 100, "Food", "kept"),
		expense("01-06-2024", 0, "Food", "dropped"),
		expense("01-07-2024", -5, "Food", "dropped"),
	})
	if l.Len() != 1 {
		t.Fatalf("expected 1 record, got %d", l.Len())
	}
}
