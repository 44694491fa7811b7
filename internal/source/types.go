package source

import "spendwise/internal/model"

// DiscoveredFile is a CSV statement file found during the scan.
type DiscoveredFile struct {
	Path string
	Name string
}

// ParseResult holds the output of parsing a single CSV file.
type ParseResult struct {
	Transactions []model.Transaction
	RowErrors    int
	Err          error
}
