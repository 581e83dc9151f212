// Package streaming turns mid/spread prices into two-way streaming quotes
// and publishes them, with a throttled GUI snapshot on the side.
package streaming

import (
	"github.com/shopspring/decimal"

	"main/internal/schema"
)

// Fixed sizes quoted on both sides of every derived stream.
const (
	visibleSize = 1_000_000
	hiddenSize  = 2_000_000
)

var two = decimal.NewFromInt(2)

// DeriveStream builds a two-sided quote around a mid/spread price:
// bid = mid - spread/2, offer = mid + spread/2.
func DeriveStream(p schema.Price) schema.PriceStream {
	half := p.BidOfferSpread.Div(two)
	return schema.PriceStream{
		Bond: p.Bond,
		Bid: schema.PriceStreamOrder{
			Price:      p.Mid.Sub(half),
			VisibleQty: visibleSize,
			HiddenQty:  hiddenSize,
			Side:       schema.PricingSideBid,
		},
		Offer: schema.PriceStreamOrder{
			Price:      p.Mid.Add(half),
			VisibleQty: visibleSize,
			HiddenQty:  hiddenSize,
			Side:       schema.PricingSideOffer,
		},
	}
}

// Algo derives streams from price updates and fans them out to the
// streaming service via its listener graph.
type Algo struct {
	service *Service
}

// NewAlgo creates the algo streaming stage feeding service.
func NewAlgo(service *Service) *Algo {
	return &Algo{service: service}
}

// OnPrice derives a stream and publishes it downstream.
func (a *Algo) OnPrice(p schema.Price) error {
	return a.service.PublishPrice(DeriveStream(p))
}
