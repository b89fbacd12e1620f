// Package pipeline orchestrates transaction loading, caching, and the
// period metric calculators.
package pipeline

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"cartscope/internal/model"
	"cartscope/internal/source"
)

// LoadResult holds the output of the full data loading pipeline.
type LoadResult struct {
	Transactions []model.TransactionRecord
	TotalFiles   int
	ParsedFiles  int
	FileErrors   int
	FirstErr     error // first schema or I/O error, for diagnostics
}

// ProgressFunc is called during loading to report progress.
// current is the number of files processed so far, total is the total count.
type ProgressFunc func(current, total int)

// Load discovers and parses all transaction CSV files under dataDir,
// using a bounded worker pool for parallel parsing. Files that fail the
// schema check are counted and skipped; the first such error is kept so
// callers can surface it.
func Load(dataDir string, progressFn ProgressFunc) (*LoadResult, error) {
	files, err := source.ScanDir(dataDir)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", dataDir, err)
	}

	result := &LoadResult{TotalFiles: len(files)}
	if len(files) == 0 {
		return result, nil
	}

	results := parseFiles(files, 0, len(files), progressFn)

	for _, pr := range results {
		if pr.Err != nil {
			result.FileErrors++
			if result.FirstErr == nil {
				result.FirstErr = pr.Err
			}
			continue
		}
		result.ParsedFiles++
		result.Transactions = append(result.Transactions, pr.Records...)
	}

	return result, nil
}

// parseFiles runs the bounded worker pool over files. done and total
// seed the progress callback so cache-assisted loads report combined
// progress.
func parseFiles(files []source.DiscoveredFile, done, total int, progressFn ProgressFunc) []source.ParseResult {
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
