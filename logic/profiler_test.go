package logic

import (
	"bluebot/shared"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func Test_Profiler_Disabled(t *testing.T) {
	prof := NewProfiler(&shared.Config{}, log.New(io.Discard))
	prof.Start()
	prof.Stop()
}

func Test_Profiler_Writes_And_Purges(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "profiles")
	require.Nil(t, os.MkdirAll(dir, 0755))
	old := filepath.Join(dir, "old.txt")
	require.Nil(t, os.WriteFile(old, []byte("x"), 0644))
	longAgo := time.Now().AddDate(0, 0, -10)
	require.Nil(t, os.Chtimes(old, longAgo, longAgo))

	cfg := &shared.Config{ProfileDir: dir, ProfileKeepDays: 3}
	prof := NewProfiler(cfg, log.New(io.Discard))
	prof.Start()
	require.Eventually(t, func() bool {
		entries, err := os.ReadDir(dir)
		return err == nil && len(entries) == 1 && entries[0].Name() != "old.txt"
	}, 5*time.Second, 20*time.Millisecond)
	prof.Stop()

	entries, err := os.ReadDir(dir)
	require.Nil(t, err)
	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.Nil(t, err)
	assert.Contains(t, string(data), "Goroutine count:")
}
