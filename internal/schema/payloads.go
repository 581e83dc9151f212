package schema

import (
	"github.com/shopspring/decimal"
	"github.com/yanun0323/errors"
)

// Side describes trade direction.
type Side uint16

const (
	SideUnknown Side = iota
	SideBuy
	SideSell
)

func (s Side) String() string {
	switch s {
	case SideBuy:
		return "BUY"
	case SideSell:
		return "SELL"
	default:
		return "UNKNOWN"
	}
}

// ParseSide parses the wire form of a trade side.
func ParseSide(s string) (Side, error) {
	switch s {
	case "BUY":
		return SideBuy, nil
	case "SELL":
		return SideSell, nil
	default:
		return SideUnknown, errors.Errorf("unknown side %q", s)
	}
}

// PricingSide describes which side of a two-way market an order sits on.
type PricingSide uint16

const (
	PricingSideUnknown PricingSide = iota
	PricingSideBid
	PricingSideOffer
)

func (s PricingSide) String() string {
	switch s {
	case PricingSideBid:
		return "BID"
	case PricingSideOffer:
		return "OFFER"
	default:
		return "UNKNOWN"
	}
}

// OrderType describes execution order type.
type OrderType uint16

const (
	OrderTypeUnknown OrderType = iota
	OrderTypeFOK
	OrderTypeIOC
	OrderTypeMarket
	OrderTypeLimit
	OrderTypeStop
)

func (t OrderType) String() string {
	switch t {
	case OrderTypeFOK:
		return "FOK"
	case OrderTypeIOC:
		return "IOC"
	case OrderTypeMarket:
		return "MARKET"
	case OrderTypeLimit:
		return "LIMIT"
	case OrderTypeStop:
		return "STOP"
	default:
		return "UNKNOWN"
	}
}

// Market is an execution venue.
type Market uint16

const (
	MarketUnknown Market = iota
	MarketBrokerTec
	MarketESpeed
	MarketCME
)

func (m Market) String() string {
	switch m {
	case MarketBrokerTec:
		return "BROKERTEC"
	case MarketESpeed:
		return "ESPEED"
	case MarketCME:
		return "CME"
	default:
		return "UNKNOWN"
	}
}

// Order is one level of an order book.
type Order struct {
	Price    decimal.Decimal
	Quantity int64
	Side     PricingSide
}

// BidOffer pairs the best bid and best offer of a book.
type BidOffer struct {
	Bid   Order
	Offer Order
}

// OrderBook holds the bid and offer stacks for a bond.
// The best order of each side sits at index 0.
type OrderBook struct {
	Bond   Bond
	Bids   []Order
	Offers []Order
}

// ExecutionOrder is a derived, executable order. It is never created
// directly by a user; the algo execution flow derives it from a book.
type ExecutionOrder struct {
	Bond          Bond
	Side          PricingSide
	OrderID       string
	Type          OrderType
	Price         decimal.Decimal
	VisibleQty    int64
	HiddenQty     int64
	ParentOrderID string
	IsChild       bool
}

// Trade is a booked trade in a particular book. The trade ID is immutable
// once booked.
type Trade struct {
	Bond     Bond
	TradeID  string
	Price    decimal.Decimal
	Book     string
	Quantity int64
	Side     Side
}

// Price is a mid/spread quote for a bond.
type Price struct {
	Bond           Bond
	Mid            decimal.Decimal
	BidOfferSpread decimal.Decimal
}

// PriceStreamOrder is one side of a two-way streaming quote.
type PriceStreamOrder struct {
	Price      decimal.Decimal
	VisibleQty int64
	HiddenQty  int64
	Side       PricingSide
}

// PriceStream is a two-way streaming quote for a bond.
type PriceStream struct {
	Bond  Bond
	Bid   PriceStreamOrder
	Offer PriceStreamOrder
}
