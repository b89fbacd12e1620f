package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"cartscope/internal/source"
	"cartscope/internal/store"
)

// CachedLoadResult extends LoadResult with cache metadata.
type CachedLoadResult struct {
	LoadResult
	CacheHits int
	Reparsed  int
}

// LoadWithCache discovers CSV files, diffs them against the SQLite
// cache by mtime and size, parses only what changed, and returns the
// combined transaction set.
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

	var toReparse []source.DiscoveredFile
	unchanged := make(map[string]struct{})

	for _, f := range files {
		info, err := os.Stat(f.Path)
		if err != nil {
			continue
		}
		cached, ok := tracked[f.Path]
		if ok && cached.MtimeNs == info.ModTime().UnixNano() && cached.SizeBytes == info.Size() {
			unchanged[f.Path] = struct{}{}
		} else {
			toReparse = append(toReparse, f)
		}
	}

	result.CacheHits = len(unchanged)
	result.Reparsed = len(toReparse)

	if len(unchanged) > 0 {
		byFile, err := cache.LoadTransactions()
		if err != nil {
			return nil, fmt.Errorf("loading cached transactions: %w", err)
		}
		for path := range unchanged {
			if records, ok := byFile[path]; ok {
				result.Transactions = append(result.Transactions, records...)
				result.ParsedFiles++
			}
		}
	}

	if len(toReparse) > 0 {
		results := parseFiles(toReparse, result.CacheHits, result.TotalFiles, progressFn)

		for i, pr := range results {
			if pr.Err != nil {
				result.FileErrors++
				if result.FirstErr == nil {
					result.FirstErr = pr.Err
				}
				continue
			}
			result.ParsedFiles++
			result.Transactions = append(result.Transactions, pr.Records...)

			info, err := os.Stat(toReparse[i].Path)
			if err == nil {
				_ = cache.SaveFile(toReparse[i].Path, info.ModTime().UnixNano(), info.Size(), pr.Records)
			}
		}
	}

	return result, nil
}

// CacheDir returns the platform-appropriate cache directory.
func CacheDir() string {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, "cartscope")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".cache", "cartscope")
}

// CachePath returns the full path to the cache database.
func CachePath() string {
	return filepath.Join(CacheDir(), "transactions.db")
}
