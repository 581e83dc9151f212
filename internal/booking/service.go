// Package booking books trades into the position pipeline.
package booking

import (
	"main/internal/bus"
	"main/internal/schema"
)

// Service stores the latest booked trade per bond and fans out.
//
// There is no duplicate-trade-id detection: a second trade stored under
// the same CUSIP simply replaces the previous one in the store, while
// both still flow through the listener graph.
type Service struct {
	trades *bus.Service[schema.CUSIP, schema.Trade]
}

// NewService creates an empty trade booking service.
func NewService() *Service {
	return &Service{
		trades: bus.New("trade booking", func(t schema.Trade) schema.CUSIP {
			return t.Bond.CUSIP
		}),
	}
}

// Trades exposes the underlying keyed store for listener wiring.
func (s *Service) Trades() *bus.Service[schema.CUSIP, schema.Trade] {
	return s.trades
}

// BookTrade stores the trade under its product id and fans out.
func (s *Service) BookTrade(t schema.Trade) error {
	return s.trades.OnMessage(t)
}

// Get returns the latest booked trade for a bond.
func (s *Service) Get(cusip schema.CUSIP) (schema.Trade, error) {
	return s.trades.Get(cusip)
}
