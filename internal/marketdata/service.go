// Package marketdata distributes order book updates, keyed by CUSIP.
package marketdata

import (
	"github.com/yanun0323/errors"

	"main/internal/bus"
	"main/internal/schema"
)

// Service holds the latest order book per bond.
type Service struct {
	books *bus.Service[schema.CUSIP, schema.OrderBook]
}

// NewService creates an empty market data service.
func NewService() *Service {
	return &Service{
		books: bus.New("marketdata", func(b schema.OrderBook) schema.CUSIP {
			return b.Bond.CUSIP
		}),
	}
}

// Books exposes the underlying keyed store for listener wiring.
func (s *Service) Books() *bus.Service[schema.CUSIP, schema.OrderBook] {
	return s.books
}

// OnBook stores the book and fans out to listeners.
func (s *Service) OnBook(book schema.OrderBook) error {
	return s.books.OnMessage(book)
}

// Get returns the latest order book for a bond.
func (s *Service) Get(cusip schema.CUSIP) (schema.OrderBook, error) {
	return s.books.Get(cusip)
}

// BestBidOffer returns the top of book for a bond.
func (s *Service) BestBidOffer(cusip schema.CUSIP) (schema.BidOffer, error) {
	book, err := s.books.Get(cusip)
	if err != nil {
		return schema.BidOffer{}, err
	}
	if len(book.Bids) == 0 || len(book.Offers) == 0 {
		return schema.BidOffer{}, errors.Errorf("order book %s has an empty side", cusip)
	}
	return schema.BidOffer{Bid: book.Bids[0], Offer: book.Offers[0]}, nil
}
