package streaming

import (
	"fmt"
	"os"
	"time"

	"github.com/yanun0323/errors"

	"main/internal/codec"
	"main/internal/schema"
)

// DefaultGUIThrottle is the minimum gap between two GUI rows.
const DefaultGUIThrottle = 300 * time.Millisecond

// GUI writes throttled price snapshots to a file.
//
// The header row is written once with truncation at construction; every
// later write appends. The throttle is process-global, not per product:
// at most one row lands per throttle window regardless of bond.
type GUI struct {
	file     *os.File
	throttle time.Duration
	last     time.Time
	now      func() time.Time
}

// NewGUI opens (and truncates) the snapshot file and writes the header.
func NewGUI(path string, throttle time.Duration) (*GUI, error) {
	if throttle <= 0 {
		throttle = DefaultGUIThrottle
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, errors.Wrapf(err, "open gui file %s", path)
	}
	if _, err := f.WriteString("timestamp,CUSIP,mid,bidofferspread\n"); err != nil {
		f.Close()
		return nil, errors.Wrap(err, "write gui header")
	}
	return &GUI{file: f, throttle: throttle, now: time.Now}, nil
}

// ProcessAdd appends a timestamped row for the price unless a row was
// written within the throttle window.
func (g *GUI) ProcessAdd(p schema.Price) error {
	now := g.now()
	if !g.last.IsZero() && now.Sub(g.last) < g.throttle {
		return nil
	}
	line := fmt.Sprintf("%s,%s,%s,%s\n",
		now.Format("2006-01-02 15:04:05.000"),
		p.Bond.CUSIP,
		codec.Format(p.Mid),
		codec.Format(p.BidOfferSpread),
	)
	if _, err := g.file.WriteString(line); err != nil {
		return errors.Wrap(err, "write gui row")
	}
	g.last = now
	return nil
}

// Close flushes and closes the snapshot file.
func (g *GUI) Close() error {
	return g.file.Close()
}
