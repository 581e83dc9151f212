// Package codec converts between the fractional 32nds bond price notation
// and decimal numbers.
//
// A quote reads `H-TTF`: H is the integer handle, TT a two-digit count of
// 32nds (00..31), and F eighths of a 32nd (0..7) with 4 written as `+`.
// One eighth of a 32nd is 1/256, so `99-16+` is 99 + (16*8+4)/256.
package codec

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/yanun0323/errors"

	"main/pkg/exception"
)

// oneTick is 1/256 expressed exactly in base ten.
var oneTick = decimal.New(390625, -8)

var ticksPerHandle = decimal.NewFromInt(256)

// Parse decodes `H-TTF` notation into a decimal price.
func Parse(s string) (decimal.Decimal, error) {
	idx := strings.IndexByte(s, '-')
	if idx <= 0 || len(s)-idx != 4 {
		return decimal.Zero, errors.Wrapf(exception.ErrMalformedRecord, "fractional price %q", s)
	}

	handle, err := strconv.ParseInt(s[:idx], 10, 64)
	if err != nil {
		return decimal.Zero, errors.Wrapf(exception.ErrMalformedRecord, "fractional price %q: bad handle", s)
	}

	frac := s[idx+1:]
	if frac[0] < '0' || frac[0] > '9' || frac[1] < '0' || frac[1] > '9' {
		return decimal.Zero, errors.Wrapf(exception.ErrMalformedRecord, "fractional price %q: bad 32nds", s)
	}
	thirtySeconds := int64(frac[0]-'0')*10 + int64(frac[1]-'0')
	if thirtySeconds > 31 {
		return decimal.Zero, errors.Wrapf(exception.ErrMalformedRecord, "fractional price %q: 32nds out of range", s)
	}

	var eighths int64
	switch c := frac[2]; {
	case c == '+':
		eighths = 4
	case c >= '0' && c <= '7':
		eighths = int64(c - '0')
	default:
		return decimal.Zero, errors.Wrapf(exception.ErrMalformedRecord, "fractional price %q: bad eighths", s)
	}

	ticks := thirtySeconds*8 + eighths
	return decimal.NewFromInt(handle).Add(oneTick.Mul(decimal.NewFromInt(ticks))), nil
}

// Format encodes a decimal price into `H-TTF` notation, flooring to the
// nearest 256th.
func Format(d decimal.Decimal) string {
	total := d.Mul(ticksPerHandle).Floor().IntPart()
	handle := total / 256
	rem := total % 256
	thirtySeconds := rem / 8
	eighths := rem % 8

	e := strconv.FormatInt(eighths, 10)
	if eighths == 4 {
		e = "+"
	}
	return fmt.Sprintf("%d-%02d%s", handle, thirtySeconds, e)
}

// FromTicks builds the decimal price handle + ticks/256.
func FromTicks(handle, ticks int64) decimal.Decimal {
	return decimal.NewFromInt(handle).Add(oneTick.Mul(decimal.NewFromInt(ticks)))
}
