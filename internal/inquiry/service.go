// Package inquiry tracks customer inquiries through their lifecycle.
package inquiry

import (
	"github.com/shopspring/decimal"
	"github.com/yanun0323/errors"
	"github.com/yanun0323/logs"

	"main/internal/bus"
	"main/internal/schema"
)

// Service stores inquiries keyed by inquiry id and drives their state
// machine: RECEIVED -> QUOTED -> DONE, with REJECTED and
// CUSTOMER_REJECTED reachable from RECEIVED or QUOTED.
//
// The ingestion path auto-quotes and completes every inquiry, fanning out
// at each stored state; QUOTED rests only when reached via SendQuote.
type Service struct {
	inquiries *bus.Service[string, schema.Inquiry]
}

// NewService creates an empty inquiry service.
func NewService() *Service {
	return &Service{
		inquiries: bus.New("inquiry", func(i schema.Inquiry) string {
			return i.ID
		}),
	}
}

// Inquiries exposes the underlying keyed store for listener wiring.
func (s *Service) Inquiries() *bus.Service[string, schema.Inquiry] {
	return s.inquiries
}

// Get returns the inquiry stored under id.
func (s *Service) Get(id string) (schema.Inquiry, error) {
	return s.inquiries.Get(id)
}

// OnInquiry ingests a new inquiry. It must arrive in RECEIVED state; the
// service then stores and fans out RECEIVED, QUOTED, and DONE in turn.
func (s *Service) OnInquiry(inq schema.Inquiry) error {
	if inq.State != schema.InquiryStateReceived {
		return errors.Wrapf(ErrInvalidInitialState, "inquiry %s arrived as %s", inq.ID, inq.State)
	}
	if err := s.inquiries.OnMessage(inq); err != nil {
		return err
	}

	inq.State = schema.InquiryStateQuoted
	if err := s.inquiries.OnMessage(inq); err != nil {
		return err
	}

	inq.State = schema.InquiryStateDone
	logs.Infof("inquiry %s for %s completed", inq.ID, inq.Bond.CUSIP)
	return s.inquiries.OnMessage(inq)
}

// SendQuote responds to a RECEIVED inquiry with a price, moving it to
// QUOTED. This is the only path that leaves an inquiry resting in QUOTED.
func (s *Service) SendQuote(id string, price decimal.Decimal) error {
	inq, err := s.inquiries.Get(id)
	if err != nil {
		return err
	}
	if inq.State != schema.InquiryStateReceived {
		return errors.Wrapf(ErrInvalidTransition, "quote inquiry %s in state %s", id, inq.State)
	}
	inq.Price = price
	inq.State = schema.InquiryStateQuoted
	return s.inquiries.OnMessage(inq)
}

// RejectInquiry moves a RECEIVED or QUOTED inquiry to REJECTED.
func (s *Service) RejectInquiry(id string) error {
	return s.transitionTerminal(id, schema.InquiryStateRejected)
}

// CustomerReject moves a RECEIVED or QUOTED inquiry to CUSTOMER_REJECTED
// on behalf of the client.
func (s *Service) CustomerReject(id string) error {
	return s.transitionTerminal(id, schema.InquiryStateCustomerRejected)
}

func (s *Service) transitionTerminal(id string, target schema.InquiryState) error {
	inq, err := s.inquiries.Get(id)
	if err != nil {
		return err
	}
	switch inq.State {
	case schema.InquiryStateReceived, schema.InquiryStateQuoted:
	default:
		return errors.Wrapf(ErrInvalidTransition, "inquiry %s in state %s cannot move to %s", id, inq.State, target)
	}
	inq.State = target
	return s.inquiries.OnMessage(inq)
}
