package http

import "github.com/shopspring/decimal"

// money renders amounts with exactly two fraction digits on the wire.
// decimal.Decimal's own MarshalJSON trims trailing zeros, which would
// turn 20.00 into "20".
type money struct {
	decimal.Decimal
}

func (m money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.StringFixed(2) + `"`), nil
}
