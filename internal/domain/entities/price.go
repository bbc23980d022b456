package entities

import "github.com/shopspring/decimal"

// Price is an immutable non-negative monetary amount.
type Price struct {
	amount decimal.Decimal
}

// ZeroPrice is the additive identity.
var ZeroPrice = Price{amount: decimal.Zero}

// NewPrice fails with InvalidInput when amount is negative.
func NewPrice(amount decimal.Decimal) (Price, error) {
	if amount.IsNegative() {
		return Price{}, NewInvalidInput("price must not be negative, got %s", amount.String())
	}
	return Price{amount: amount}, nil
}

func NewPriceFromFloat(amount float64) (Price, error) {
	return NewPrice(decimal.NewFromFloat(amount))
}

func NewPriceFromString(amount string) (Price, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Price{}, NewInvalidInput("invalid price %q", amount)
	}
	return NewPrice(d)
}

// MustPrice panics on invalid input. Intended for constants and tests.
func MustPrice(amount string) Price {
	p, err := NewPriceFromString(amount)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Price) Amount() decimal.Decimal {
	return p.amount
}

func (p Price) Add(other Price) Price {
	return Price{amount: p.amount.Add(other.amount)}
}

func (p Price) Mul(q Quantity) Price {
	return Price{amount: p.amount.Mul(decimal.NewFromInt(int64(q.Int())))}
}

func (p Price) Equal(other Price) bool {
	return p.amount.Equal(other.amount)
}

func (p Price) IsZero() bool {
	return p.amount.IsZero()
}

// Float64 is lossy; use it only at presentation boundaries.
func (p Price) Float64() float64 {
	f, _ := p.amount.Float64()
	return f
}

// String renders the amount with two decimal places.
func (p Price) String() string {
	return p.amount.StringFixed(2)
}
