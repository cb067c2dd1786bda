package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	m := NewManager(t.TempDir())
	require.NoError(t, m.Load())

	p := m.Get()
	assert.Equal(t, Version, p.Version)
	assert.Equal(t, "dec", p.LastBase)
	assert.Equal(t, "basic", p.LastMode)
	assert.False(t, p.HelpShown)
}

func TestUpdateSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()

	m := NewManager(dir)
	require.NoError(t, m.Load())
	m.Update(func(p *Preferences) {
		p.LastBase = "hex"
		p.LastMode = "programmer"
		p.HelpShown = true
	})
	require.NoError(t, m.Save())

	reloaded := NewManager(dir)
	require.NoError(t, reloaded.Load())
	p := reloaded.Get()
	assert.Equal(t, "hex", p.LastBase)
	assert.Equal(t, "programmer", p.LastMode)
	assert.True(t, p.HelpShown)
	assert.False(t, p.UpdatedAt.IsZero())
}

func TestLoadCorruptFileFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, fileName), []byte("{oops"), 0o644))

	m := NewManager(dir)
	require.NoError(t, m.Load())
	assert.Equal(t, "dec", m.Get().LastBase)
}
