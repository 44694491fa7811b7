package analyze

import "spendwise/internal/model"

// ProjectEndOfMonth extrapolates a full-month total for targetMonth
// from the average daily amount observed through the latest day with
// any activity. Returns nil when no record falls in the month.
//
// This is a deliberately simple linear run-rate model; its accuracy is
// meant to be measured with ProjectAtCutoff + EvaluateAccuracy rather
// than assumed.
func ProjectEndOfMonth(records []model.Transaction, targetMonth string) (*model.Projection, error) {
	var spentSoFar float64
	lastActiveDay := 0

	for _, r := range records {
		month, err := model.MonthKey(r.Date)
		if err != nil {
			return nil, err
		}
		if month != targetMonth {
			continue
		}
		day, err := model.DayOfMonth(r.Date)
		if err != nil {
			return nil, err
		}
		spentSoFar += r.Amount
		if day > lastActiveDay {
			lastActiveDay = day
		}
	}

	if lastActiveDay == 0 {
		return nil, nil
	}

	days, err := DaysInMonth(targetMonth)
	if err != nil {
		return nil, err
	}

	dailyRate := spentSoFar / float64(lastActiveDay)
	return &model.Projection{
		Month:          targetMonth,
		SpentSoFar:     spentSoFar,
		LastActiveDay:  lastActiveDay,
		DailyRate:      dailyRate,
		ProjectedTotal: dailyRate * float64(days),
	}, nil
}

// ProjectAtCutoff runs the same extrapolation restricted to records on
// or before cutoffDay, for retrospective accuracy simulation. Returns
// nil when the filtered sum is exactly zero — a zero-sum month with
// real records counts as no data, same as the absence of records.
func ProjectAtCutoff(records []model.Transaction, targetMonth string, cutoffDay int) (*float64, error) {
	var spentUntilCutoff float64

	for _, r := range records {
		month, err := model.MonthKey(r.Date)
		if err != nil {
			return nil, err
		}
		if month != targetMonth {
			continue
		}
		day, err := model.DayOfMonth(r.Date)
		if err != nil {
			return nil, err
		}
		if day <= cutoffDay {
			spentUntilCutoff += r.Amount
		}
	}

	if spentUntilCutoff == 0 {
		return nil, nil
	}

	days, err := DaysInMonth(targetMonth)
	if err != nil {
		return nil, err
	}

	projected := spentUntilCutoff / float64(cutoffDay) * float64(days)
	return &projected, nil
}

// EvaluateAccuracy compares a simulated prediction to the actual final
// total. PercentError substitutes 0 when actual is zero.
func EvaluateAccuracy(predicted, actual float64) model.PredictionAccuracy {
	errVal := predicted - actual
	pct := 0.0
	if actual != 0 {
		pct = errVal / actual * 100
	}
	return model.PredictionAccuracy{Error: errVal, PercentError: pct}
}
