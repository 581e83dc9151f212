package streaming

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGUI(t *testing.T, throttle time.Duration) (*GUI, string, *time.Time) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gui.txt")
	gui, err := NewGUI(path, throttle)
	require.NoError(t, err)
	t.Cleanup(func() { gui.Close() })

	clock := time.Date(2026, 8, 29, 9, 30, 0, 0, time.UTC)
	gui.now = func() time.Time { return clock }
	return gui, path, &clock
}

func guiLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return strings.Split(strings.TrimSpace(string(data)), "\n")
}

func TestGUIWritesHeaderOnOpen(t *testing.T) {
	_, path, _ := newTestGUI(t, 300*time.Millisecond)
	lines := guiLines(t, path)
	require.Len(t, lines, 1)
	assert.Equal(t, "timestamp,CUSIP,mid,bidofferspread", lines[0])
}

func TestGUIThrottlesGlobally(t *testing.T) {
	gui, path, clock := newTestGUI(t, 300*time.Millisecond)

	p1 := price(t, "99-16+", "0-002")
	p2 := price(t, "100-000", "0-004")
	p2.Bond.CUSIP = "9128283L2"

	require.NoError(t, gui.ProcessAdd(p1))
	// A different bond inside the window is still suppressed.
	*clock = clock.Add(100 * time.Millisecond)
	require.NoError(t, gui.ProcessAdd(p2))

	lines := guiLines(t, path)
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "9128283H1,99-16+,0-002")
}

func TestGUIResumesAfterWindow(t *testing.T) {
	gui, path, clock := newTestGUI(t, 300*time.Millisecond)

	require.NoError(t, gui.ProcessAdd(price(t, "99-16+", "0-002")))
	*clock = clock.Add(301 * time.Millisecond)
	require.NoError(t, gui.ProcessAdd(price(t, "100-000", "0-004")))

	lines := guiLines(t, path)
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[1], "2026-08-29 09:30:00.000,"))
	assert.True(t, strings.HasPrefix(lines[2], "2026-08-29 09:30:00.301,"))
}

func TestGUITruncatesOnReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gui.txt")
	gui, err := NewGUI(path, 0)
	require.NoError(t, err)
	require.NoError(t, gui.ProcessAdd(price(t, "99-16+", "0-002")))
	require.NoError(t, gui.Close())

	gui, err = NewGUI(path, 0)
	require.NoError(t, err)
	defer gui.Close()

	lines := guiLines(t, path)
	require.Len(t, lines, 1, "reopen starts a fresh snapshot file")
}
