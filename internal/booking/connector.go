package booking

import (
	"strconv"

	"github.com/yanun0323/errors"
	"github.com/yanun0323/logs"

	"main/internal/codec"
	"main/internal/ingest"
	"main/internal/schema"
	"main/pkg/exception"
)

// Connector reads trades.txt into the service.
// Record layout: CUSIP, TradeID, Book, Price (32nds), Quantity, Side.
type Connector struct {
	registry *schema.BondRegistry
	service  *Service
	path     string
}

// NewConnector creates a file connector for trade records.
func NewConnector(registry *schema.BondRegistry, service *Service, path string) *Connector {
	return &Connector{registry: registry, service: service, path: path}
}

// Subscribe reads the whole file, booking one trade per record.
func (c *Connector) Subscribe() error {
	count := 0
	err := ingest.ForEachRecord(c.path, func(line int, fields []string) error {
		if len(fields) < 6 {
			return errors.Wrapf(exception.ErrMalformedRecord, "trades line %d: want 6 fields, got %d", line, len(fields))
		}
		bond, err := c.registry.Bond(schema.CUSIP(fields[0]))
		if err != nil {
			return errors.Wrapf(err, "trades line %d", line)
		}
		price, err := codec.Parse(fields[3])
		if err != nil {
			return errors.Wrapf(err, "trades line %d", line)
		}
		qty, err := strconv.ParseInt(fields[4], 10, 64)
		if err != nil {
			return errors.Wrapf(exception.ErrMalformedRecord, "trades line %d: quantity %q", line, fields[4])
		}
		side, err := schema.ParseSide(fields[5])
		if err != nil {
			return errors.Wrapf(exception.ErrMalformedRecord, "trades line %d: %s", line, err)
		}
		trade := schema.Trade{
			Bond:     bond,
			TradeID:  fields[1],
			Price:    price,
			Book:     fields[2],
			Quantity: qty,
			Side:     side,
		}
		if err := c.service.BookTrade(trade); err != nil {
			return errors.Wrapf(err, "trades line %d", line)
		}
		count++
		return nil
	})
	if err != nil {
		return err
	}
	logs.Infof("trade subscription finished, %d trades", count)
	return nil
}

// Publish is a no-op; trades flow inbound only.
func (c *Connector) Publish(schema.Trade) error {
	return nil
}
