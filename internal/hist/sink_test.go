package hist

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDefaults(t *testing.T) {
	cfg := DefaultConfig("out")
	assert.Equal(t, "out", cfg.Dir)
	assert.Equal(t, "risk.txt", cfg.RiskFile)
	assert.Equal(t, "executions.txt", cfg.ExecutionsFile)
	assert.Equal(t, "streaming.txt", cfg.StreamingFile)
	assert.Equal(t, "allinquiries.txt", cfg.InquiriesFile)
	assert.NoError(t, cfg.Validate())
}

func TestConfigWithDefaultsFillsBlanks(t *testing.T) {
	cfg := Config{Dir: "x", RiskFile: "custom.txt"}.withDefaults()
	assert.Equal(t, "custom.txt", cfg.RiskFile)
	assert.Equal(t, "executions.txt", cfg.ExecutionsFile)
}

func TestConfigValidateRejectsEmptyDir(t *testing.T) {
	assert.Error(t, Config{}.withDefaults().Validate())
}

func TestSinkAppendsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "risk.txt")

	sink, err := NewSink(path)
	require.NoError(t, err)
	require.NoError(t, sink.WriteLine("first"))
	require.NoError(t, sink.Close())

	// Reopening must never truncate history.
	sink, err = NewSink(path)
	require.NoError(t, err)
	require.NoError(t, sink.WriteLine("second"))
	require.NoError(t, sink.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond\n", string(data))
}

func TestWriteLineAppendsNewline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s.txt")
	sink, err := NewSink(path)
	require.NoError(t, err)
	defer sink.Close()

	require.NoError(t, sink.WriteLine("a"))
	require.NoError(t, sink.WriteLine("b"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, strings.Split(strings.TrimSpace(string(data)), "\n"))
}
