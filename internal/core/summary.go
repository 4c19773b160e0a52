package core

// CategoryAmount is an amount aggregated under one category label.
type CategoryAmount struct {
	Name   string
	Amount Money
}

// Summary is the result of summarizing a sequence of expenses: the overall
// total plus per-category totals, ordered lexicographically by label. A pie
// chart consumes ByCategory directly as its label->value input.
type Summary struct {
	Total      Money
	ByCategory []CategoryAmount
}

// IsEmpty reports whether the summary was computed over zero records.
// Callers need this to tell "no expenses" apart from a total of zero.
func (s Summary) IsEmpty() bool {
	return len(s.ByCategory) == 0 && s.Total.Cents == 0
}
