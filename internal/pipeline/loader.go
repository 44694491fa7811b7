// Package pipeline orchestrates statement discovery, caching, and loading.
package pipeline

import (
	"fmt"
	"runtime"
	"sort"
	"sync"
	"sync/atomic"

	"spendwise/internal/model"
	"spendwise/internal/source"
)

// LoadResult holds the output of the full data loading pipeline.
type LoadResult struct {
	Transactions []model.Transaction
	TotalFiles   int
	ParsedFiles  int
	RowErrors    int
	FileErrors   int
}

// ProgressFunc is called during loading to report progress.
// current is the number of files processed so far, total is the total count.
type ProgressFunc func(current, total int)

// Load discovers and parses all CSV statement files from the data
// directory, using a bounded worker pool for parallel parsing.
func Load(dataDir string, progressFn ProgressFunc) (*LoadResult, error) {
	files, err := source.ScanDir(dataDir)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", dataDir, err)
	}

	result := &LoadResult{TotalFiles: len(files)}
	if len(files) == 0 {
		return result, nil
	}

	results := parseAll(files, 0, result.TotalFiles, progressFn)

	for _, pr := range results {
		if pr.Err != nil {
			result.FileErrors++
			continue
		}
		result.ParsedFiles++
		result.RowErrors += pr.RowErrors
		result.Transactions = append(result.Transactions, pr.Transactions...)
	}

	sortTransactions(result.Transactions)
	return result, nil
}

// parseAll runs ParseFile over files with a GOMAXPROCS-bounded pool.
// done/total parameterize progress reporting so cache-assisted loads
// can account for files they skipped.
func parseAll(files []source.DiscoveredFile, done, total int, progressFn ProgressFunc) []source.ParseResult {
	numWorkers := runtime.GOMAXPROCS(0)
	if numWorkers < 1 {
		numWorkers = 4
	}
	if numWorkers > len(files) {
		numWorkers = len(files)
	}

	work := make(chan int, len(files))
	results := make([]source.ParseResult, len(files))
	var wg sync.WaitGroup
	var processed atomic.Int64

	for i := range files {
		work <- i
	}
	close(work)

	wg.Add(numWorkers)
	for w := 0; w < numWorkers; w++ {
		go func() {
			defer wg.Done()
			for idx := range work {
				results[idx] = source.ParseFile(files[idx])
				n := processed.Add(1)
				if progressFn != nil {
					progressFn(int(n)+done, total)
				}
			}
		}()
	}

	wg.Wait()
	return results
}

// sortTransactions orders the merged result deterministically so a
// parallel parse never changes downstream output.
func sortTransactions(txs []model.Transaction) {
	sort.Slice(txs, func(i, j int) bool {
		if txs[i].Date != txs[j].Date {
			return txs[i].Date < txs[j].Date
		}
		if txs[i].Category != txs[j].Category {
			return txs[i].Category < txs[j].Category
		}
		return txs[i].Description < txs[j].Description
	})
}
