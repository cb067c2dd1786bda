// Package telemetry records engine operation usage: per-operation call
// counts, cumulative durations and error kinds, grouped by run session.
// It implements engine.Observer so the engine needs no knowledge of it,
// and persists as indented JSON with a debounced autosave.
package telemetry

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"qalc/internal/engine"
)

const (
	dataVersion       = "1.0"
	telemetryFileName = "telemetry.json"
	autoSaveDelay     = 2 * time.Second
)

var _ engine.Observer = (*Tracker)(nil)

// Tracker manages operation usage recording and persistence.
type Tracker struct {
	mu            sync.Mutex
	data          Data
	filePath      string
	sessionID     string
	dirty         bool
	autoSaveTimer *time.Timer
}

// NewTracker creates a tracker persisting under the given data
// directory. A fresh session ID is minted per tracker so stats can be
// split by run. Corrupt or missing files start an empty data set.
func NewTracker(dataDir string) (*Tracker, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	t := &Tracker{
		filePath:  filepath.Join(dataDir, telemetryFileName),
		sessionID: uuid.NewString(),
		data:      emptyData(),
	}
	if err := t.Load(); err != nil {
		// Corrupt file: keep going with empty data rather than losing
		// the session over stats.
		t.data = emptyData()
	}
	return t, nil
}

func emptyData() Data {
	return Data{
		Version: dataVersion,
		Aggregate: Aggregated{
			ByOperation: make(map[string]OpCounts),
			ByError:     make(map[string]int64),
			BySession:   make(map[string]OpCounts),
		},
	}
}

// SessionID returns the identifier minted for this run.
func (t *Tracker) SessionID() string { return t.sessionID }

// Load reads persisted data from disk. A missing file is not an error.
func (t *Tracker) Load() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	raw, err := os.ReadFile(t.filePath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, &t.data); err != nil {
		return err
	}

	// Ensure maps are initialized if the file was empty or partial.
	if t.data.Aggregate.ByOperation == nil {
		t.data.Aggregate.ByOperation = make(map[string]OpCounts)
	}
	if t.data.Aggregate.ByError == nil {
		t.data.Aggregate.ByError = make(map[string]int64)
	}
	if t.data.Aggregate.BySession == nil {
		t.data.Aggregate.BySession = make(map[string]OpCounts)
	}
	return nil
}

// Save writes the data to disk.
func (t *Tracker) Save() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.saveLocked()
}

func (t *Tracker) saveLocked() error {
	raw, err := json.MarshalIndent(t.data, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(t.filePath, raw, 0o644)
}

// ObserveOp implements engine.Observer.
func (t *Tracker) ObserveOp(name string, took time.Duration, opErr error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	failed := opErr != nil
	t.data.Aggregate.Total.Add(took, failed)
	addToMap(t.data.Aggregate.ByOperation, name, took, failed)
	addToMap(t.data.Aggregate.BySession, t.sessionID, took, failed)
	if failed {
		t.data.Aggregate.ByError[errorKind(opErr)]++
	}

	// Debounced auto-save.
	if !t.dirty {
		t.dirty = true
		t.autoSaveTimer = time.AfterFunc(autoSaveDelay, func() {
			_ = t.Save()
			t.mu.Lock()
			t.dirty = false
			t.mu.Unlock()
		})
	}
}

// Stats returns a copy of the aggregated counters.
func (t *Tracker) Stats() Aggregated {
	t.mu.Lock()
	defer t.mu.Unlock()

	stats := t.data.Aggregate
	stats.ByOperation = copyOpCountsMap(stats.ByOperation)
	stats.BySession = copyOpCountsMap(stats.BySession)
	byErr := make(map[string]int64, len(stats.ByError))
	for k, v := range stats.ByError {
		byErr[k] = v
	}
	stats.ByError = byErr
	return stats
}

// Close stops the autosave timer and flushes pending data.
func (t *Tracker) Close() error {
	t.mu.Lock()
	if t.autoSaveTimer != nil {
		t.autoSaveTimer.Stop()
		t.autoSaveTimer = nil
	}
	t.dirty = false
	err := t.saveLocked()
	t.mu.Unlock()
	return err
}

func copyOpCountsMap(src map[string]OpCounts) map[string]OpCounts {
	dst := make(map[string]OpCounts, len(src))
	for key, counts := range src {
		dst[key] = counts
	}
	return dst
}

func addToMap(m map[string]OpCounts, key string, took time.Duration, failed bool) {
	entry := m[key]
	entry.Add(took, failed)
	m[key] = entry
}

// errorKind maps engine errors to stable counter keys.
func errorKind(err error) string {
	switch {
	case errors.Is(err, engine.ErrInvalidDigit):
		return "invalid_digit"
	case errors.Is(err, engine.ErrDivisionByZero):
		return "division_by_zero"
	case errors.Is(err, engine.ErrDomain):
		return "domain"
	case errors.Is(err, engine.ErrOverflow):
		return "overflow"
	case errors.Is(err, engine.ErrInvalidNumber):
		return "invalid_number"
	default:
		return "other"
	}
}
