package newbill

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// FormValues are the raw inputs of the new bill form.
type FormValues struct {
	Type       string
	Name       string
	Date       string
	Amount     string
	VAT        string
	Pct        string
	Commentary string
}

// FileInput is the receipt picked in the form.
type FileInput struct {
	Name        string `validate:"required,receipt_ext"`
	ContentType string
	Content     []byte
}

// Form numbers longer than maxNumberLen or with an exponent past
// maxExponent are treated as not a number.
const (
	maxNumberLen = 64
	maxExponent  = 64
)

// maxVAT is the first value that no longer fits the NUMERIC(12,2) column.
var maxVAT = decimal.New(1, 10)

func parseDecimal(raw string) (decimal.Decimal, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" || len(raw) > maxNumberLen {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, false
	}
	if exp := d.Exponent(); exp > maxExponent || exp < -maxExponent {
		return decimal.Zero, false
	}
	return d, true
}

// parseInt returns the integer part of raw when it lies in [lo, hi].
func parseInt(raw string, lo, hi int64) (int64, bool) {
	d, ok := parseDecimal(raw)
	if !ok {
		return 0, false
	}
	i := d.BigInt()
	if !i.IsInt64() {
		return 0, false
	}
	v := i.Int64()
	if v < lo || v > hi {
		return 0, false
	}
	return v, true
}

// ParseAmount reads the integer part of raw, or 0 when raw is not a number
// or does not fit an int64.
func ParseAmount(raw string) int64 {
	v, _ := parseInt(raw, math.MinInt64, math.MaxInt64)
	return v
}

// ParseVAT returns raw in canonical decimal form, or "" when it is not a
// number or too large to be stored.
func ParseVAT(raw string) string {
	d, ok := parseDecimal(raw)
	if !ok || d.Abs().GreaterThanOrEqual(maxVAT) {
		return ""
	}
	return d.String()
}

// ParsePct reads the integer part of raw, or 0 when raw is not a number or
// does not fit an int32.
func ParsePct(raw string) int32 {
	v, _ := parseInt(raw, math.MinInt32, math.MaxInt32)
	return int32(v)
}
