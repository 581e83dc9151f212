// Package position accumulates per-book bond positions from booked trades.
package position

import (
	"github.com/yanun0323/errors"
	"github.com/yanun0323/logs"

	"main/internal/bus"
	"main/internal/schema"
	"main/pkg/exception"
)

// Service holds the latest position per bond.
type Service struct {
	positions *bus.Service[schema.CUSIP, schema.Position]
}

// NewService creates an empty position service.
func NewService() *Service {
	return &Service{
		positions: bus.New("position", func(p schema.Position) schema.CUSIP {
			return p.Bond.CUSIP
		}),
	}
}

// Positions exposes the underlying keyed store for listener wiring.
func (s *Service) Positions() *bus.Service[schema.CUSIP, schema.Position] {
	return s.positions
}

// Get returns the latest position for a bond.
func (s *Service) Get(cusip schema.CUSIP) (schema.Position, error) {
	return s.positions.Get(cusip)
}

// AddTrade applies a booked trade: +quantity for BUY, -quantity for SELL,
// against the trade's book. A zero position is created the first time a
// bond is seen. The updated position fans out to listeners.
func (s *Service) AddTrade(t schema.Trade) error {
	signed := t.Quantity
	switch t.Side {
	case schema.SideBuy:
	case schema.SideSell:
		signed = -signed
	default:
		return errors.Errorf("trade %s has no side", t.TradeID)
	}

	pos, err := s.positions.Get(t.Bond.CUSIP)
	switch {
	case err == nil:
	case errors.Is(err, exception.ErrNotFound):
		pos = schema.NewPosition(t.Bond)
	default:
		return err
	}

	pos.Add(t.Book, signed)
	logs.Infof("position of %s updated to %d (book %s)", t.Bond.CUSIP, pos.Aggregate(), t.Book)
	return s.positions.OnMessage(pos)
}
