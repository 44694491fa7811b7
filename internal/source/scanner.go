// Package source discovers and parses CSV transaction statement files.
package source

import (
	"os"
	"path/filepath"
	"strings"
)

// ScanDir walks the data directory and discovers all CSV statement
// files. A missing directory yields no files rather than an error so a
// fresh install renders "no data yet" instead of failing.
func ScanDir(dataDir string) ([]DiscoveredFile, error) {
	info, err := os.Stat(dataDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	if !info.IsDir() {
		return nil, nil
	}

	var files []DiscoveredFile

	err = filepath.WalkDir(dataDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil //nolint:nilerr // intentionally skip unreadable entries
		}
		if d.IsDir() {
			return nil
		}
		name := d.Name()
		if !strings.EqualFold(filepath.Ext(name), ".csv") {
			return nil
		}
		files = append(files, DiscoveredFile{Path: path, Name: name})
		return nil
	})

	return files, err
}
