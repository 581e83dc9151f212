// Package execution derives executable orders from order book updates and
// turns them into market executions with simulated fills.
package execution

import (
	"strconv"

	"github.com/yanun0323/errors"

	"main/internal/bus"
	"main/internal/schema"
)

// Algo derives one candidate execution order per order book update.
//
// The derivation is deterministic in the update sequence: even sequence
// numbers quote the OFFER side referencing the top ask, odd numbers the
// BID side referencing the top bid, and the order type cycles through
// FOK, MARKET, LIMIT, STOP, IOC.
type Algo struct {
	orders *bus.Service[schema.CUSIP, schema.ExecutionOrder]
	seq    uint64
}

var orderTypeCycle = [5]schema.OrderType{
	schema.OrderTypeFOK,
	schema.OrderTypeMarket,
	schema.OrderTypeLimit,
	schema.OrderTypeStop,
	schema.OrderTypeIOC,
}

// NewAlgo creates an algo execution derivation with an empty store.
func NewAlgo() *Algo {
	return &Algo{
		orders: bus.New("algo execution", func(o schema.ExecutionOrder) schema.CUSIP {
			return o.Bond.CUSIP
		}),
	}
}

// Orders exposes the derived order store for listener wiring.
func (a *Algo) Orders() *bus.Service[schema.CUSIP, schema.ExecutionOrder] {
	return a.orders
}

// OnBook derives an execution order from the top of book and fans it out.
func (a *Algo) OnBook(book schema.OrderBook) error {
	if len(book.Bids) == 0 || len(book.Offers) == 0 {
		return errors.Errorf("order book %s has an empty side", book.Bond.CUSIP)
	}

	n := a.seq
	a.seq++

	orderID := "O" + strconv.FormatUint(n, 10)
	side := schema.PricingSideOffer
	reference := book.Offers[0]
	if n%2 == 1 {
		side = schema.PricingSideBid
		reference = book.Bids[0]
	}

	return a.orders.OnMessage(schema.ExecutionOrder{
		Bond:          book.Bond,
		Side:          side,
		OrderID:       orderID,
		Type:          orderTypeCycle[n%5],
		Price:         reference.Price,
		VisibleQty:    reference.Quantity,
		HiddenQty:     0,
		ParentOrderID: orderID + "P",
		IsChild:       false,
	})
}
