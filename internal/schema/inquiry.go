package schema

import (
	"github.com/shopspring/decimal"
	"github.com/yanun0323/errors"
)

// InquiryState tracks the lifecycle of a customer inquiry.
type InquiryState uint16

const (
	InquiryStateUnknown InquiryState = iota
	InquiryStateReceived
	InquiryStateQuoted
	InquiryStateDone
	InquiryStateRejected
	InquiryStateCustomerRejected
)

func (s InquiryState) String() string {
	switch s {
	case InquiryStateReceived:
		return "RECEIVED"
	case InquiryStateQuoted:
		return "QUOTED"
	case InquiryStateDone:
		return "DONE"
	case InquiryStateRejected:
		return "REJECTED"
	case InquiryStateCustomerRejected:
		return "CUSTOMER_REJECTED"
	default:
		return "UNKNOWN"
	}
}

// ParseInquiryState parses the wire form of an inquiry state.
func ParseInquiryState(s string) (InquiryState, error) {
	switch s {
	case "RECEIVED":
		return InquiryStateReceived, nil
	case "QUOTED":
		return InquiryStateQuoted, nil
	case "DONE":
		return InquiryStateDone, nil
	case "REJECTED":
		return InquiryStateRejected, nil
	case "CUSTOMER_REJECTED":
		return InquiryStateCustomerRejected, nil
	default:
		return InquiryStateUnknown, errors.Errorf("unknown inquiry state %q", s)
	}
}

// Terminal reports whether the state admits no further transitions.
func (s InquiryState) Terminal() bool {
	switch s {
	case InquiryStateDone, InquiryStateRejected, InquiryStateCustomerRejected:
		return true
	default:
		return false
	}
}

// Inquiry is a customer inquiry. The inquiry ID is unique and distinct
// from the product identifier.
type Inquiry struct {
	ID       string
	Bond     Bond
	Side     Side
	Quantity int64
	Price    decimal.Decimal
	State    InquiryState
}
