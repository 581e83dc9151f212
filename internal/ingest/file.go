// Package ingest reads flat-file record batches into domain services.
//
// Every input file carries a single header line followed by headerless
// comma-separated records. Records are processed synchronously in file
// order; each record's full downstream cascade completes before the next
// record is read.
package ingest

import (
	"bufio"
	"os"
	"strings"

	"github.com/yanun0323/errors"
)

// ForEachRecord invokes fn once per data record with the 1-based line
// number and the comma-split fields. The first line is skipped as the
// header. A non-nil error from fn aborts the batch.
func ForEachRecord(path string, fn func(line int, fields []string) error) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		if line == 1 {
			continue
		}
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		if err := fn(line, strings.Split(text, ",")); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrapf(err, "read %s", path)
	}
	return nil
}
