package commission

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)
	maxRate = decimal.NewFromInt(10)
)

// ValidateRate checks that a commission rate is a percentage within [0, 10].
func ValidateRate(rate decimal.Decimal) error {
	if rate.IsNegative() {
		return fmt.Errorf("commission rate must not be negative, got %s", rate.String())
	}
	if rate.GreaterThan(maxRate) {
		return fmt.Errorf("commission rate must not exceed 10 percent, got %s", rate.String())
	}
	return nil
}

// Amount computes the commission charged on a transfer: amount * rate / 100.
// The rate is always an explicit caller decision; there is deliberately no
// overload that defaults an absent rate to zero.
func Amount(amount, rate decimal.Decimal) (decimal.Decimal, error) {
	if amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("transfer amount must not be negative, got %s", amount.String())
	}
	if err := ValidateRate(rate); err != nil {
		return decimal.Zero, err
	}
	if rate.IsZero() {
		// Identity case must be exact, not 0.00 times anything.
		return decimal.Zero, nil
	}
	return amount.Mul(rate).Div(hundred), nil
}

// ReceiverTotal computes the total shown to the receiving office. Commission
// is additive revenue to that office, not a deduction from the sender.
func ReceiverTotal(amount, rate decimal.Decimal) (decimal.Decimal, error) {
	fee, err := Amount(amount, rate)
	if err != nil {
		return decimal.Zero, err
	}
	return amount.Add(fee), nil
}
