// Package pricing distributes mid/spread quotes, keyed by CUSIP.
package pricing

import (
	"main/internal/bus"
	"main/internal/schema"
)

// Service holds the latest mid/spread price per bond.
type Service struct {
	prices *bus.Service[schema.CUSIP, schema.Price]
}

// NewService creates an empty pricing service.
func NewService() *Service {
	return &Service{
		prices: bus.New("pricing", func(p schema.Price) schema.CUSIP {
			return p.Bond.CUSIP
		}),
	}
}

// Prices exposes the underlying keyed store for listener wiring.
func (s *Service) Prices() *bus.Service[schema.CUSIP, schema.Price] {
	return s.prices
}

// OnPrice stores the price and fans out to listeners.
func (s *Service) OnPrice(p schema.Price) error {
	return s.prices.OnMessage(p)
}

// Get returns the latest price for a bond.
func (s *Service) Get(cusip schema.CUSIP) (schema.Price, error) {
	return s.prices.Get(cusip)
}
