package schema

import (
	"time"

	"github.com/shopspring/decimal"
)

// CUSIP identifies a bond. It is the key for every downstream keyed store.
type CUSIP string

// Bond is an immutable product definition.
type Bond struct {
	CUSIP    CUSIP
	Ticker   string
	Coupon   decimal.Decimal
	Maturity time.Time
}
