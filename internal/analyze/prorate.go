package analyze

import (
	"time"

	"spendwise/internal/model"
)

// DaysInMonth returns the number of calendar days in a "YYYY-MM"
// month, leap years included.
func DaysInMonth(monthKey string) (int, error) {
	t, err := time.Parse("2006-01", monthKey)
	if err != nil {
		return 0, &model.ParseError{Value: monthKey, Err: err}
	}
	// Day 0 of the next month is the last day of this one.
	last := time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, time.UTC)
	return last.Day(), nil
}

// Prorate computes the fractional-month cost of a fixed recurring
// charge that starts on startDay of the given month, inclusive of the
// start day. startDay must be in [1, daysInMonth]; values outside that
// range are the caller's responsibility.
func Prorate(monthKey string, startDay int, fullMonthAmount float64) (float64, error) {
	days, err := DaysInMonth(monthKey)
	if err != nil {
		return 0, err
	}
	daysCovered := days - startDay + 1
	dailyRate := fullMonthAmount / float64(days)
	return dailyRate * float64(daysCovered), nil
}
