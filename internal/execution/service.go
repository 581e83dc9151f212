package execution

import (
	"math/rand"
	"strconv"

	"github.com/yanun0323/logs"

	"main/internal/bus"
	"main/internal/codec"
	"main/internal/schema"
)

const defaultFillsPerOrder = 10

// Service records the current execution per bond and synthesizes the
// resulting fills. This is the only place in the pipeline that
// manufactures trades from non-trade input; it stands in for a real
// matching engine.
type Service struct {
	orders         *bus.Service[schema.CUSIP, schema.ExecutionOrder]
	tradeListeners []bus.Listener[schema.Trade]
	rng            *rand.Rand
	fillsPerOrder  int
}

// NewService creates an execution service. The rand source drives fill
// synthesis; pass a seeded one for deterministic output.
func NewService(rng *rand.Rand, fillsPerOrder int) *Service {
	if fillsPerOrder <= 0 {
		fillsPerOrder = defaultFillsPerOrder
	}
	return &Service{
		orders: bus.New("execution", func(o schema.ExecutionOrder) schema.CUSIP {
			return o.Bond.CUSIP
		}),
		rng:           rng,
		fillsPerOrder: fillsPerOrder,
	}
}

// Orders exposes the execution order store for listener wiring.
func (s *Service) Orders() *bus.Service[schema.CUSIP, schema.ExecutionOrder] {
	return s.orders
}

// AddTradeListener registers a listener for synthesized fills.
func (s *Service) AddTradeListener(l bus.Listener[schema.Trade]) {
	s.tradeListeners = append(s.tradeListeners, l)
}

// Get returns the current execution for a bond.
func (s *Service) Get(cusip schema.CUSIP) (schema.ExecutionOrder, error) {
	return s.orders.Get(cusip)
}

// ExecuteOrder records the order as the current execution, fans out to
// execution listeners, then synthesizes the resulting fills with
// randomized price, book, quantity, and side, fanning each out to the
// trade listeners.
func (s *Service) ExecuteOrder(order schema.ExecutionOrder, market schema.Market) error {
	cusip := order.Bond.CUSIP
	logs.Infof("executing order %s of bond %s on %s", order.OrderID, cusip, market)

	if err := s.orders.OnMessage(order); err != nil {
		return err
	}

	for j := 1; j <= s.fillsPerOrder; j++ {
		trade := schema.Trade{
			Bond:     order.Bond,
			TradeID:  "T_" + string(cusip) + strconv.Itoa(j),
			Price:    codec.FromTicks(99, int64(s.rng.Intn(2*256+1))),
			Book:     "TRSY" + strconv.Itoa(1+s.rng.Intn(3)),
			Quantity: int64(1+s.rng.Intn(9)) * 1_000_000,
			Side:     schema.SideBuy,
		}
		if s.rng.Intn(2) == 0 {
			trade.Side = schema.SideSell
		}
		for _, l := range s.tradeListeners {
			if err := l.ProcessAdd(trade); err != nil {
				return err
			}
		}
	}
	return nil
}
