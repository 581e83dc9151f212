package inquiry

import (
	"strconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/yanun0323/errors"
	"github.com/yanun0323/logs"

	"main/internal/ingest"
	"main/internal/schema"
	"main/pkg/exception"
)

// Connector reads inquiries.txt into the service.
// Record layout: CUSIP, Side, Quantity, Price (plain decimal), State.
// State is always RECEIVED on ingest; anything else is malformed.
// Each record gets a fresh inquiry id on the way in.
type Connector struct {
	registry *schema.BondRegistry
	service  *Service
	path     string
}

// NewConnector creates a file connector for inquiry records.
func NewConnector(registry *schema.BondRegistry, service *Service, path string) *Connector {
	return &Connector{registry: registry, service: service, path: path}
}

// Subscribe reads the whole file, ingesting one inquiry per record.
func (c *Connector) Subscribe() error {
	count := 0
	err := ingest.ForEachRecord(c.path, func(line int, fields []string) error {
		if len(fields) < 5 {
			return errors.Wrapf(exception.ErrMalformedRecord, "inquiries line %d: want 5 fields, got %d", line, len(fields))
		}
		bond, err := c.registry.Bond(schema.CUSIP(fields[0]))
		if err != nil {
			return errors.Wrapf(err, "inquiries line %d", line)
		}
		side, err := schema.ParseSide(fields[1])
		if err != nil {
			return errors.Wrapf(exception.ErrMalformedRecord, "inquiries line %d: %s", line, err)
		}
		qty, err := strconv.ParseInt(fields[2], 10, 64)
		if err != nil {
			return errors.Wrapf(exception.ErrMalformedRecord, "inquiries line %d: quantity %q", line, fields[2])
		}
		price, err := decimal.NewFromString(fields[3])
		if err != nil {
			return errors.Wrapf(exception.ErrMalformedRecord, "inquiries line %d: price %q", line, fields[3])
		}
		state, err := schema.ParseInquiryState(fields[4])
		if err != nil {
			return errors.Wrapf(exception.ErrMalformedRecord, "inquiries line %d: %s", line, err)
		}
		inq := schema.Inquiry{
			ID:       uuid.NewString(),
			Bond:     bond,
			Side:     side,
			Quantity: qty,
			Price:    price,
			State:    state,
		}
		if err := c.service.OnInquiry(inq); err != nil {
			return errors.Wrapf(err, "inquiries line %d", line)
		}
		count++
		return nil
	})
	if err != nil {
		return err
	}
	logs.Infof("inquiry subscription finished, %d inquiries", count)
	return nil
}

// Publish is a no-op; inquiries flow inbound only.
func (c *Connector) Publish(schema.Inquiry) error {
	return nil
}
