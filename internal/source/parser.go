package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"spendwise/internal/model"
)

var errMissingColumns = errors.New("missing required columns (need date, amount, category)")

// ParseFile reads one CSV statement file into transactions.
//
// Expected header: date, description, amount, type, category (any
// order, case-insensitive). description and type are optional; rows
// from a file without a type column default to expense. Rows with a
// malformed date or amount, or an unrecognized type, are counted as
// row errors and skipped — one bad row never fails the file.
func ParseFile(df DiscoveredFile) ParseResult {
	f, err := os.Open(df.Path)
	if err != nil {
		return ParseResult{Err: err}
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		if err == io.EOF {
			return ParseResult{}
		}
		return ParseResult{Err: err}
	}

	cols := columnIndex(header)
	if cols.date < 0 || cols.amount < 0 || cols.category < 0 {
		return ParseResult{Err: fmt.Errorf("%s: %w", df.Name, errMissingColumns)}
	}

	var result ParseResult

	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			result.RowErrors++
			continue
		}

		tx, ok := parseRow(row, cols)
		if !ok {
			result.RowErrors++
			continue
		}
		result.Transactions = append(result.Transactions, tx)
	}

	return result
}

type columns struct {
	date, description, amount, kind, category int
}

func columnIndex(header []string) columns {
	c := columns{date: -1, description: -1, amount: -1, kind: -1, category: -1}
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "date":
			c.date = i
		case "description":
			c.description = i
		case "amount":
			c.amount = i
		case "type":
			c.kind = i
		case "category":
			c.category = i
		}
	}
	return c
}

func parseRow(row []string, cols columns) (model.Transaction, bool) {
	field := func(idx int) string {
		if idx < 0 || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	date := field(cols.date)
	if _, err := model.ParseDate(date); err != nil {
		return model.Transaction{}, false
	}

	amount, err := strconv.ParseFloat(field(cols.amount), 64)
	if err != nil {
		return model.Transaction{}, false
	}

	kind := model.KindExpense
	if cols.kind >= 0 {
		switch strings.ToLower(field(cols.kind)) {
		case "income":
			kind = model.KindIncome
		case "expense":
			kind = model.KindExpense
		default:
			return model.Transaction{}, false
		}
	}

	return model.Transaction{
		Date:        date,
		Description: field(cols.description),
		Amount:      amount,
		Kind:        kind,
		Category:    field(cols.category),
	}, true
}
