// Package model defines domain types for spendwise transactions and reports.
package model

import (
	"fmt"
	"time"
)

// Kind classifies a transaction as money in or money out.
type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

// Transaction is one dated, categorized money movement as loaded from CSV.
// Sign convention for this pipeline: expense amounts are negative,
// income amounts positive. The aggregation layer never enforces this;
// display layers take absolute values where it reads better.
type Transaction struct {
	Date        string // "YYYY-MM-DD"
	Description string
	Amount      float64
	Kind        Kind
	Category    string
}

// ParseError reports a record field that does not conform to the
// expected calendar-date format.
type ParseError struct {
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing date %q: %v", e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

const dateLayout = "2006-01-02"

// ParseDate validates a transaction date string.
func ParseDate(date string) (time.Time, error) {
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return time.Time{}, &ParseError{Value: date, Err: err}
	}
	return t, nil
}

// MonthKey derives the "YYYY-MM" bucket key from a transaction date.
// Month keys sort lexicographically in chronological order, which the
// trend and proration layers rely on.
func MonthKey(date string) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return t.Format("2006-01"), nil
}

// DayOfMonth extracts the day component from a transaction date.
func DayOfMonth(date string) (int, error) {
	t, err := ParseDate(date)
	if err != nil {
		return 0, err
	}
	return t.Day(), nil
}
