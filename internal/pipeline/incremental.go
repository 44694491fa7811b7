package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"spendwise/internal/source"
	"spendwise/internal/store"
)

// CachedLoadResult extends LoadResult with cache metadata.
type CachedLoadResult struct {
	LoadResult
	CacheHits int
	Reparsed  int
}

// LoadWithCache discovers statement files, diffs them against the
// cache by mtime and size, parses only the changed ones, and returns
// the combined result set.
func LoadWithCache(dataDir string, cache *store.Cache, progressFn ProgressFunc) (*CachedLoadResult, error) {
	files, err := source.ScanDir(dataDir)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", dataDir, err)
	}

	result := &CachedLoadResult{
		LoadResult: LoadResult{TotalFiles: len(files)},
	}
	if len(files) == 0 {
		return result, nil
	}

	tracked, err := cache.GetTrackedFiles()
	if err != nil {
		return nil, fmt.Errorf("reading cache: %w", err)
	}

	// Diff: partition into changed and unchanged.
	var toReparse []source.DiscoveredFile
	var unchanged []string

	for _, f := range files {
		info, err := os.Stat(f.Path)
		if err != nil {
			continue
		}

		cached, ok := tracked[f.Path]
		if ok && cached.MtimeNs == info.ModTime().UnixNano() && cached.SizeBytes == info.Size() {
			unchanged = append(unchanged, f.Path)
		} else {
			toReparse = append(toReparse, f)
		}
	}

	result.CacheHits = len(unchanged)
	result.Reparsed = len(toReparse)

	if len(unchanged) > 0 {
		cachedTxs, err := cache.LoadFiles(unchanged)
		if err != nil {
			return nil, fmt.Errorf("loading cached transactions: %w", err)
		}
		result.Transactions = append(result.Transactions, cachedTxs...)
		result.ParsedFiles += len(unchanged)
	}

	if len(toReparse) > 0 {
		results := parseAll(toReparse, result.CacheHits, result.TotalFiles, progressFn)

		for i, pr := range results {
			if pr.Err != nil {
				result.FileErrors++
				continue
			}
			result.ParsedFiles++
			result.RowErrors += pr.RowErrors
			result.Transactions = append(result.Transactions, pr.Transactions...)

			info, err := os.Stat(toReparse[i].Path)
			if err == nil {
				_ = cache.SaveFile(toReparse[i].Path, pr.Transactions, info.ModTime().UnixNano(), info.Size())
			}
		}
	}

	sortTransactions(result.Transactions)
	return result, nil
}

// CacheDir returns the platform-appropriate cache directory.
func CacheDir() string {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, "spendwise")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".cache", "spendwise")
}

// CachePath returns the full path to the cache database.
func CachePath() string {
	return filepath.Join(CacheDir(), "transactions.db")
}
