package core

import "errors"

type (
	// Money is a currency amount held in integer cents to avoid
	// floating-point drift when summing.
	Money struct {
		Cents int64
	}

	// Expense is a single recorded expense. The date is carried as the raw
	// MM-DD-YYYY text the front-end collected; it is normalized lazily when
	// a date-range query needs to compare it. Description may be empty.
	// Expenses have no identity and are never deduplicated.
	Expense struct {
		Date        string
		Amount      Money
		Category    string
		Description string
	}
)

var (
	// ErrInvalidFormat reports a date string that is malformed or does not
	// denote a real calendar date.
	ErrInvalidFormat = errors.New("invalid date format or invalid date")

	// ErrInvalidAmount reports a non-positive or unparseable amount.
	ErrInvalidAmount = errors.New("invalid amount")
)

func (m Money) Validate() error {
	if m.Cents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

// Validate checks the creation invariant: the amount must be positive.
// Date and category validation belong to the calling front-end; a stored
// expense may carry any date text and any category label.
func (e Expense) Validate() error {
	return e.Amount.Validate()
}
