package pricing

import (
	"github.com/yanun0323/errors"
	"github.com/yanun0323/logs"

	"main/internal/codec"
	"main/internal/ingest"
	"main/internal/schema"
	"main/pkg/exception"
)

// Connector reads prices.txt into the service.
// Record layout: CUSIP, mid, bid/offer spread, both in 32nds notation.
type Connector struct {
	registry *schema.BondRegistry
	service  *Service
	path     string
}

// NewConnector creates a file connector for price records.
func NewConnector(registry *schema.BondRegistry, service *Service, path string) *Connector {
	return &Connector{registry: registry, service: service, path: path}
}

// Subscribe reads the whole file, pushing one price per record.
func (c *Connector) Subscribe() error {
	count := 0
	err := ingest.ForEachRecord(c.path, func(line int, fields []string) error {
		if len(fields) < 3 {
			return errors.Wrapf(exception.ErrMalformedRecord, "prices line %d: want 3 fields, got %d", line, len(fields))
		}
		bond, err := c.registry.Bond(schema.CUSIP(fields[0]))
		if err != nil {
			return errors.Wrapf(err, "prices line %d", line)
		}
		mid, err := codec.Parse(fields[1])
		if err != nil {
			return errors.Wrapf(err, "prices line %d", line)
		}
		spread, err := codec.Parse(fields[2])
		if err != nil {
			return errors.Wrapf(err, "prices line %d", line)
		}
		if err := c.service.OnPrice(schema.Price{Bond: bond, Mid: mid, BidOfferSpread: spread}); err != nil {
			return errors.Wrapf(err, "prices line %d", line)
		}
		count++
		return nil
	})
	if err != nil {
		return err
	}
	logs.Infof("pricing subscription finished, %d prices", count)
	return nil
}

// Publish is a no-op; prices flow inbound only.
func (c *Connector) Publish(schema.Price) error {
	return nil
}
