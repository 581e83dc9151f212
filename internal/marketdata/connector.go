package marketdata

import (
	"strconv"

	"github.com/yanun0323/errors"
	"github.com/yanun0323/logs"

	"main/internal/codec"
	"main/internal/ingest"
	"main/internal/schema"
	"main/pkg/exception"
)

const depthLevels = 5

// Connector reads marketdata.txt order book snapshots into the service.
// Record layout: CUSIP, then five (price,quantity) bid levels best-first,
// then five (price,quantity) offer levels, prices in 32nds notation.
type Connector struct {
	registry *schema.BondRegistry
	service  *Service
	path     string
}

// NewConnector creates a file connector for order book records.
func NewConnector(registry *schema.BondRegistry, service *Service, path string) *Connector {
	return &Connector{registry: registry, service: service, path: path}
}

// Subscribe reads the whole file, pushing one book per record.
func (c *Connector) Subscribe() error {
	count := 0
	err := ingest.ForEachRecord(c.path, func(line int, fields []string) error {
		book, err := c.parse(fields)
		if err != nil {
			return errors.Wrapf(err, "marketdata line %d", line)
		}
		if err := c.service.OnBook(book); err != nil {
			return errors.Wrapf(err, "marketdata line %d", line)
		}
		count++
		return nil
	})
	if err != nil {
		return err
	}
	logs.Infof("marketdata subscription finished, %d books", count)
	return nil
}

// Publish is a no-op; market data flows inbound only.
func (c *Connector) Publish(schema.OrderBook) error {
	return nil
}

func (c *Connector) parse(fields []string) (schema.OrderBook, error) {
	if len(fields) < 1+depthLevels*4 {
		return schema.OrderBook{}, errors.Wrapf(exception.ErrMalformedRecord, "want %d fields, got %d", 1+depthLevels*4, len(fields))
	}

	bond, err := c.registry.Bond(schema.CUSIP(fields[0]))
	if err != nil {
		return schema.OrderBook{}, err
	}

	idx := 1
	parseStack := func(side schema.PricingSide) ([]schema.Order, error) {
		stack := make([]schema.Order, 0, depthLevels)
		for k := 0; k < depthLevels; k++ {
			price, err := codec.Parse(fields[idx])
			if err != nil {
				return nil, err
			}
			idx++
			qty, err := strconv.ParseInt(fields[idx], 10, 64)
			if err != nil {
				return nil, errors.Wrapf(exception.ErrMalformedRecord, "quantity %q", fields[idx])
			}
			idx++
			stack = append(stack, schema.Order{Price: price, Quantity: qty, Side: side})
		}
		return stack, nil
	}

	bids, err := parseStack(schema.PricingSideBid)
	if err != nil {
		return schema.OrderBook{}, err
	}
	offers, err := parseStack(schema.PricingSideOffer)
	if err != nil {
		return schema.OrderBook{}, err
	}

	return schema.OrderBook{Bond: bond, Bids: bids, Offers: offers}, nil
}
