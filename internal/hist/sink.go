// Package hist persists pipeline output to append-only historical logs.
//
// Each adapter subscribes to exactly one upstream service, re-stores the
// value under its product id, and forwards a formatted line to a sink.
// Sinks never truncate after process-start initialization; every write
// appends. This is the system's only durability mechanism.
package hist

import (
	"os"
	"path/filepath"

	"github.com/yanun0323/errors"
)

const (
	defaultRiskFile       = "risk.txt"
	defaultExecutionsFile = "executions.txt"
	defaultStreamingFile  = "streaming.txt"
	defaultInquiriesFile  = "allinquiries.txt"
)

// Config locates the historical output files.
type Config struct {
	Dir            string
	RiskFile       string
	ExecutionsFile string
	StreamingFile  string
	InquiriesFile  string
}

// DefaultConfig returns the standard file layout under dir.
func DefaultConfig(dir string) Config {
	return Config{
		Dir:            dir,
		RiskFile:       defaultRiskFile,
		ExecutionsFile: defaultExecutionsFile,
		StreamingFile:  defaultStreamingFile,
		InquiriesFile:  defaultInquiriesFile,
	}
}

func (c Config) withDefaults() Config {
	if c.RiskFile == "" {
		c.RiskFile = defaultRiskFile
	}
	if c.ExecutionsFile == "" {
		c.ExecutionsFile = defaultExecutionsFile
	}
	if c.StreamingFile == "" {
		c.StreamingFile = defaultStreamingFile
	}
	if c.InquiriesFile == "" {
		c.InquiriesFile = defaultInquiriesFile
	}
	return c
}

// Validate checks if the configuration is usable.
func (c Config) Validate() error {
	if c.Dir == "" {
		return errors.New("invalid hist config: Dir is empty")
	}
	return nil
}

// Sink is an append-only line writer.
type Sink struct {
	file *os.File
}

// NewSink opens path for appending, creating it if missing. An existing
// file is never truncated.
func NewSink(path string) (*Sink, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, errors.Wrapf(err, "open sink %s", path)
	}
	return &Sink{file: f}, nil
}

// WriteLine appends one line.
func (s *Sink) WriteLine(line string) error {
	if _, err := s.file.WriteString(line + "\n"); err != nil {
		return errors.Wrap(err, "append line")
	}
	return nil
}

// Close closes the underlying file.
func (s *Sink) Close() error {
	return s.file.Close()
}

func openSink(dir, name string) (*Sink, error) {
	return NewSink(filepath.Join(dir, name))
}
