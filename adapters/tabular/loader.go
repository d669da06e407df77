package tabular

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"htnscope/domain/cohort"
	"htnscope/domain/core"
)

// CachedLoader memoizes enriched tables keyed on (path, mtime). Loading is
// idempotent, so the cached table is shared read-only across sessions;
// concurrent first loads for the same file collapse into one read.
type CachedLoader struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	group   singleflight.Group
}

type cacheEntry struct {
	modTime time.Time
	table   *cohort.Table
	report  cohort.LoadReport
}

// NewCachedLoader creates an empty loader cache.
func NewCachedLoader() *CachedLoader {
	return &CachedLoader{entries: make(map[string]cacheEntry)}
}

// Load returns the enriched table for the file, reading and enriching it
// only when the cache has no entry for the file's current mtime.
func (l *CachedLoader) Load(ctx context.Context, path string) (*cohort.Table, cohort.LoadReport, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, cohort.LoadReport{}, core.NewDataLoadError(path, err)
	}
	modTime := info.ModTime()

	l.mu.RLock()
	entry, ok := l.entries[path]
	l.mu.RUnlock()
	if ok && entry.modTime.Equal(modTime) {
		return entry.table, entry.report, nil
	}

	key := fmt.Sprintf("%s@%d", path, modTime.UnixNano())
	v, err, _ := l.group.Do(key, func() (interface{}, error) {
		raw, err := NewDataReader(path).Read(ctx)
		if err != nil {
			return nil, err
		}
		table, report, err := cohort.Enrich(raw)
		if err != nil {
			return nil, err
		}
		if report.Dropped > 0 {
			log.Printf("[CachedLoader] dropped %d unparseable rows from %s", report.Dropped, path)
		}

		e := cacheEntry{modTime: modTime, table: table, report: report}
		l.mu.Lock()
		l.entries[path] = e
		l.mu.Unlock()
		return e, nil
	})
	if err != nil {
		return nil, cohort.LoadReport{}, err
	}

	e := v.(cacheEntry)
	return e.table, e.report, nil
}
