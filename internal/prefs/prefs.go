// Package prefs persists small per-user UI state (last base, last view
// mode, one-time tips) as a versioned JSON document, the local
// key-value storage surface of the application.
package prefs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Version is the current schema version for prefs.json.
const Version = "1.0"

const fileName = "prefs.json"

// Preferences is the persisted document.
type Preferences struct {
	// Version is the schema version for migration detection.
	Version string `json:"version"`

	// LastBase is the numeral base active when qalc last exited.
	LastBase string `json:"last_base,omitempty"`

	// LastMode is the calculator view mode when qalc last exited.
	LastMode string `json:"last_mode,omitempty"`

	// HelpShown records that the first-run help tip was displayed.
	HelpShown bool `json:"help_shown"`

	// UpdatedAt is the last save time.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// DefaultPreferences returns the first-run document.
func DefaultPreferences() *Preferences {
	return &Preferences{
		Version:  Version,
		LastBase: "dec",
		LastMode: "basic",
	}
}

// Manager handles loading and saving preferences.
type Manager struct {
	mu    sync.RWMutex
	path  string
	prefs *Preferences
}

// NewManager creates a preferences manager rooted at the data dir.
func NewManager(dataDir string) *Manager {
	return &Manager{path: filepath.Join(dataDir, fileName)}
}

// Load reads preferences from disk, creating defaults if missing. An
// unreadable or corrupt file also falls back to defaults; preferences
// are not worth failing startup over.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	raw, err := os.ReadFile(m.path)
	if err != nil {
		m.prefs = DefaultPreferences()
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read preferences: %w", err)
	}

	var p Preferences
	if err := json.Unmarshal(raw, &p); err != nil {
		m.prefs = DefaultPreferences()
		return nil
	}
	if p.Version == "" {
		p.Version = Version
	}
	m.prefs = &p
	return nil
}

// Save writes preferences to disk.
func (m *Manager) Save() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.prefs == nil {
		m.prefs = DefaultPreferences()
	}
	m.prefs.UpdatedAt = time.Now().UTC()

	raw, err := json.MarshalIndent(m.prefs, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal preferences: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(m.path), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}
	return os.WriteFile(m.path, raw, 0o644)
}

// Get returns a copy of the current preferences.
func (m *Manager) Get() Preferences {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.prefs == nil {
		return *DefaultPreferences()
	}
	return *m.prefs
}

// Update applies a mutation under the lock.
func (m *Manager) Update(fn func(*Preferences)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.prefs == nil {
		m.prefs = DefaultPreferences()
	}
	fn(m.prefs)
}
