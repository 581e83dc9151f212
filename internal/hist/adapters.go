package hist

import (
	"fmt"
	"os"

	"main/internal/bus"
	"main/internal/codec"
	"main/internal/schema"
)

// Adapters bundles the four historical persistence adapters.
type Adapters struct {
	Risk       *RiskAdapter
	Executions *ExecutionAdapter
	Streaming  *StreamingAdapter
	Inquiries  *InquiryAdapter
}

// NewAdapters opens all four sinks under cfg.Dir.
func NewAdapters(cfg Config) (*Adapters, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, err
	}

	riskSink, err := openSink(cfg.Dir, cfg.RiskFile)
	if err != nil {
		return nil, err
	}
	execSink, err := openSink(cfg.Dir, cfg.ExecutionsFile)
	if err != nil {
		riskSink.Close()
		return nil, err
	}
	streamSink, err := openSink(cfg.Dir, cfg.StreamingFile)
	if err != nil {
		riskSink.Close()
		execSink.Close()
		return nil, err
	}
	inqSink, err := openSink(cfg.Dir, cfg.InquiriesFile)
	if err != nil {
		riskSink.Close()
		execSink.Close()
		streamSink.Close()
		return nil, err
	}

	return &Adapters{
		Risk:       NewRiskAdapter(riskSink),
		Executions: NewExecutionAdapter(execSink),
		Streaming:  NewStreamingAdapter(streamSink),
		Inquiries:  NewInquiryAdapter(inqSink),
	}, nil
}

// Close closes every sink, returning the first error.
func (a *Adapters) Close() error {
	var first error
	for _, c := range []interface{ Close() error }{
		a.Risk.sink, a.Executions.sink, a.Streaming.sink, a.Inquiries.sink,
	} {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// RiskAdapter persists PV01 updates.
type RiskAdapter struct {
	store *bus.Service[schema.CUSIP, schema.PV01]
	sink  *Sink
}

// NewRiskAdapter creates a risk history adapter over sink.
func NewRiskAdapter(sink *Sink) *RiskAdapter {
	return &RiskAdapter{
		store: bus.New("risk history", func(p schema.PV01) schema.CUSIP { return p.Bond.CUSIP }),
		sink:  sink,
	}
}

// Get returns the last persisted PV01 for a bond.
func (a *RiskAdapter) Get(cusip schema.CUSIP) (schema.PV01, error) {
	return a.store.Get(cusip)
}

func (a *RiskAdapter) ProcessAdd(p schema.PV01) error {
	a.store.Store(p)
	return a.sink.WriteLine(fmt.Sprintf("PV01 of %s is %s", p.Bond.CUSIP, p.Value))
}

// ExecutionAdapter persists execution order updates.
type ExecutionAdapter struct {
	store *bus.Service[schema.CUSIP, schema.ExecutionOrder]
	sink  *Sink
}

// NewExecutionAdapter creates an execution history adapter over sink.
func NewExecutionAdapter(sink *Sink) *ExecutionAdapter {
	return &ExecutionAdapter{
		store: bus.New("execution history", func(o schema.ExecutionOrder) schema.CUSIP { return o.Bond.CUSIP }),
		sink:  sink,
	}
}

// Get returns the last persisted execution order for a bond.
func (a *ExecutionAdapter) Get(cusip schema.CUSIP) (schema.ExecutionOrder, error) {
	return a.store.Get(cusip)
}

func (a *ExecutionAdapter) ProcessAdd(o schema.ExecutionOrder) error {
	a.store.Store(o)
	return a.sink.WriteLine(fmt.Sprintf("Executing the order of bond %s", o.Bond.CUSIP))
}

// StreamingAdapter persists two-way quote updates.
type StreamingAdapter struct {
	store *bus.Service[schema.CUSIP, schema.PriceStream]
	sink  *Sink
}

// NewStreamingAdapter creates a streaming history adapter over sink.
func NewStreamingAdapter(sink *Sink) *StreamingAdapter {
	return &StreamingAdapter{
		store: bus.New("streaming history", func(ps schema.PriceStream) schema.CUSIP { return ps.Bond.CUSIP }),
		sink:  sink,
	}
}

// Get returns the last persisted stream for a bond.
func (a *StreamingAdapter) Get(cusip schema.CUSIP) (schema.PriceStream, error) {
	return a.store.Get(cusip)
}

func (a *StreamingAdapter) ProcessAdd(ps schema.PriceStream) error {
	a.store.Store(ps)
	return a.sink.WriteLine(fmt.Sprintf("The bond %s has bid price %s and offer price %s",
		ps.Bond.CUSIP, codec.Format(ps.Bid.Price), codec.Format(ps.Offer.Price)))
}

// InquiryAdapter persists inquiry updates. Unlike the other adapters it
// stores by product id, so only the latest inquiry per bond is cached
// while every update still reaches the sink.
type InquiryAdapter struct {
	store *bus.Service[schema.CUSIP, schema.Inquiry]
	sink  *Sink
}

// NewInquiryAdapter creates an inquiry history adapter over sink.
func NewInquiryAdapter(sink *Sink) *InquiryAdapter {
	return &InquiryAdapter{
		store: bus.New("inquiry history", func(i schema.Inquiry) schema.CUSIP { return i.Bond.CUSIP }),
		sink:  sink,
	}
}

// Get returns the last persisted inquiry for a bond.
func (a *InquiryAdapter) Get(cusip schema.CUSIP) (schema.Inquiry, error) {
	return a.store.Get(cusip)
}

func (a *InquiryAdapter) ProcessAdd(i schema.Inquiry) error {
	a.store.Store(i)
	return a.sink.WriteLine(fmt.Sprintf("The inquiry ID is %s and %s side, the product is %s, the quantity is %d, the price is %s",
		i.ID, i.Side, i.Bond.CUSIP, i.Quantity, i.Price))
}
