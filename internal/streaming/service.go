package streaming

import (
	"main/internal/bus"
	"main/internal/schema"
)

// Service publishes two-way streaming quotes, keyed by CUSIP.
type Service struct {
	streams *bus.Service[schema.CUSIP, schema.PriceStream]
}

// NewService creates an empty streaming service.
func NewService() *Service {
	return &Service{
		streams: bus.New("streaming", func(ps schema.PriceStream) schema.CUSIP {
			return ps.Bond.CUSIP
		}),
	}
}

// Streams exposes the underlying keyed store for listener wiring.
func (s *Service) Streams() *bus.Service[schema.CUSIP, schema.PriceStream] {
	return s.streams
}

// PublishPrice stores the latest stream for the bond and fans out.
func (s *Service) PublishPrice(ps schema.PriceStream) error {
	return s.streams.OnMessage(ps)
}

// Get returns the latest stream for a bond.
func (s *Service) Get(cusip schema.CUSIP) (schema.PriceStream, error) {
	return s.streams.Get(cusip)
}
