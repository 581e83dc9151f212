// Package app wires the trading services together and drives a run.
package app

import (
	"math/rand"
	"path/filepath"

	"github.com/yanun0323/errors"
	"github.com/yanun0323/logs"

	"main/internal/booking"
	"main/internal/bus"
	"main/internal/execution"
	"main/internal/hist"
	"main/internal/inquiry"
	"main/internal/marketdata"
	"main/internal/ops"
	"main/internal/position"
	"main/internal/pricing"
	"main/internal/risk"
	"main/internal/schema"
	"main/internal/streaming"
)

// Pipeline holds every service of the trading system, fully wired.
// All processing is synchronous: records flow from the connectors
// through the listener graph to the historical sinks on the caller's
// goroutine.
type Pipeline struct {
	Registry *schema.BondRegistry

	MarketData *marketdata.Service
	Pricing    *pricing.Service
	Streaming  *streaming.Service
	Execution  *execution.Service
	Booking    *booking.Service
	Position   *position.Service
	Risk       *risk.Service
	Inquiry    *inquiry.Service

	gui      *streaming.GUI
	adapters *hist.Adapters
}

// New builds the full service graph from a resolved configuration.
func New(cfg ops.Loaded) (*Pipeline, error) {
	adapters, err := hist.NewAdapters(hist.DefaultConfig(cfg.OutDir))
	if err != nil {
		return nil, errors.Wrap(err, "open historical sinks")
	}
	gui, err := streaming.NewGUI(filepath.Join(cfg.OutDir, "gui.txt"), cfg.GUIThrottle)
	if err != nil {
		adapters.Close()
		return nil, errors.Wrap(err, "open gui output")
	}

	p := &Pipeline{
		Registry:   cfg.Registry,
		MarketData: marketdata.NewService(),
		Pricing:    pricing.NewService(),
		Streaming:  streaming.NewService(),
		Execution:  execution.NewService(rand.New(rand.NewSource(cfg.Seed)), cfg.FillsPerExecution),
		Booking:    booking.NewService(),
		Position:   position.NewService(),
		Risk:       risk.NewService(),
		Inquiry:    inquiry.NewService(),
		gui:        gui,
		adapters:   adapters,
	}
	p.wire()
	p.seedRisk(cfg)
	return p, nil
}

// wire connects every listener. Order matters on shared services: the
// historical adapters subscribe first so a sink line is written before
// downstream processing can fail the cascade.
func (p *Pipeline) wire() {
	p.Inquiry.Inquiries().AddListener(p.adapters.Inquiries)
	p.Streaming.Streams().AddListener(p.adapters.Streaming)
	p.Execution.Orders().AddListener(p.adapters.Executions)
	p.Risk.PV01s().AddListener(p.adapters.Risk)

	streamAlgo := streaming.NewAlgo(p.Streaming)
	p.Pricing.Prices().AddListener(bus.ListenerFunc[schema.Price](streamAlgo.OnPrice))
	p.Pricing.Prices().AddListener(p.gui)

	execAlgo := execution.NewAlgo()
	p.MarketData.Books().AddListener(bus.ListenerFunc[schema.OrderBook](execAlgo.OnBook))
	execAlgo.Orders().AddListener(bus.ListenerFunc[schema.ExecutionOrder](func(o schema.ExecutionOrder) error {
		return p.Execution.ExecuteOrder(o, schema.MarketCME)
	}))

	p.Execution.AddTradeListener(bus.ListenerFunc[schema.Trade](p.Booking.BookTrade))
	p.Booking.Trades().AddListener(bus.ListenerFunc[schema.Trade](p.Position.AddTrade))
	p.Position.Positions().AddListener(bus.ListenerFunc[schema.Position](p.Risk.AddPosition))
}

// seedRisk installs the initial PV01 per bond, valued at its yield, and
// registers the configured sectors. Seeding does not fan out.
func (p *Pipeline) seedRisk(cfg ops.Loaded) {
	for i := 0; i < cfg.Registry.Count(); i++ {
		bond, ok := cfg.Registry.At(i)
		if !ok {
			continue
		}
		p.Risk.Seed(schema.PV01{Bond: bond, Value: cfg.Yields[bond.CUSIP]})
	}
	for _, sector := range cfg.Sectors {
		p.Risk.AddSector(sector)
	}
}

// Run replays the four input files through the pipeline, one after the
// other. Any malformed record or listener failure aborts the run.
func (p *Pipeline) Run(dataDir string) error {
	stages := []struct {
		name      string
		subscribe func() error
	}{
		{"trades", booking.NewConnector(p.Registry, p.Booking, filepath.Join(dataDir, "trades.txt")).Subscribe},
		{"inquiries", inquiry.NewConnector(p.Registry, p.Inquiry, filepath.Join(dataDir, "inquiries.txt")).Subscribe},
		{"marketdata", marketdata.NewConnector(p.Registry, p.MarketData, filepath.Join(dataDir, "marketdata.txt")).Subscribe},
		{"prices", pricing.NewConnector(p.Registry, p.Pricing, filepath.Join(dataDir, "prices.txt")).Subscribe},
	}
	for _, stage := range stages {
		logs.Infof("replaying %s", stage.name)
		if err := stage.subscribe(); err != nil {
			return errors.Wrapf(err, "replay %s", stage.name)
		}
	}
	logs.Info("replay complete")
	return nil
}

// Close flushes and closes every output file.
func (p *Pipeline) Close() error {
	var first error
	if err := p.gui.Close(); err != nil {
		first = err
	}
	if err := p.adapters.Close(); err != nil && first == nil {
		first = err
	}
	return first
}
