package source

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ScanDir discovers transaction CSV files under dataDir. Subdirectories
// are searched too, so a dataset split into monthly exports still loads
// as one table. A missing directory yields no files, not an error.
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
			return nil //nolint:nilerr // skip unreadable entries
		}
		if d.IsDir() {
			return nil
		}
		name := d.Name()
		if strings.ToLower(filepath.Ext(name)) != ".csv" {
			return nil
		}
		files = append(files, DiscoveredFile{
			Path:    path,
			Dataset: strings.TrimSuffix(name, filepath.Ext(name)),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Deterministic load order regardless of filesystem iteration.
	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })

	return files, nil
}
