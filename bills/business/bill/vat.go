package bill

import (
	"strings"

	"github.com/shopspring/decimal"

	"encore.dev/beta/errs"
)

// parseVAT turns the wire representation of a VAT amount into a nullable
// decimal; an empty string means the bill has no VAT.
func parseVAT(raw string) (decimal.NullDecimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.NullDecimal{}, nil
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.NullDecimal{}, &errs.Error{Code: errs.InvalidArgument, Message: "invalid vat amount"}
	}
	return decimal.NewNullDecimal(d), nil
}

func formatVAT(vat decimal.NullDecimal) string {
	if !vat.Valid {
		return ""
	}
	return vat.Decimal.String()
}
