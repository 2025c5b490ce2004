package kernel

import (
	"fmt"
	"math/big"

	"fulfillment/internal/pkg/errs"
)

// moneyLimit is 2^128, the exclusive upper bound for monetary amounts.
// All amounts are unsigned 128-bit values in the smallest monetary unit.
var moneyLimit = new(big.Int).Lsh(big.NewInt(1), 128)

// ErrMoneyIsNotConstructed indicates that a Money value was not created
// through NewMoney or NewMoneyFromString.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("Money must be created via NewMoney or NewMoneyFromString")

// Money is a value object for an unsigned 128-bit monetary amount expressed
// in the smallest monetary unit. All arithmetic is checked: operations never
// wrap and never produce a negative amount; out-of-range results are reported
// as errors so the triggering call can abort.
//
// Money is immutable: every operation returns a new value. The zero value is
// invalid and must be constructed via one of the factory functions.
type Money struct {
	amount *big.Int
}

// NewMoney creates a Money value from an unsigned integer amount.
func NewMoney(amount uint64) Money {
	return Money{amount: new(big.Int).SetUint64(amount)}
}

// NewMoneyFromString parses a Money value from its decimal string form.
// The string must be a base-10 non-negative integer below 2^128.
func NewMoneyFromString(s string) (Money, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"monetary amount",
			fmt.Errorf("%q is not a base-10 integer", s),
		)
	}
	if v.Sign() < 0 || v.Cmp(moneyLimit) >= 0 {
		return Money{}, errs.NewValueIsOutOfRangeError("monetary amount", s, 0, "2^128-1")
	}

	return Money{amount: v}, nil
}

// String returns the decimal string form of the amount.
// For a zero-value Money this returns "0".
func (m Money) String() string {
	if m.amount == nil {
		return "0"
	}
	return m.amount.String()
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount == nil || m.amount.Sign() == 0
}

// IsPositive reports whether the amount is greater than zero.
func (m Money) IsPositive() bool {
	return m.amount != nil && m.amount.Sign() > 0
}

// IsEqual compares two amounts for equality.
func (m Money) IsEqual(other Money) bool {
	return m.cmp(other) == 0
}

// GreaterOrEqual reports whether m >= other.
func (m Money) GreaterOrEqual(other Money) bool {
	return m.cmp(other) >= 0
}

// Add returns m + other with a checked 128-bit bound.
// The sum overflowing 2^128-1 is reported as an out-of-range error.
func (m Money) Add(other Money) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}
	if err := other.Validate(); err != nil {
		return Money{}, err
	}

	sum := new(big.Int).Add(m.amount, other.amount)
	if sum.Cmp(moneyLimit) >= 0 {
		return Money{}, errs.NewValueIsOutOfRangeError("monetary sum", sum.String(), 0, "2^128-1")
	}

	return Money{amount: sum}, nil
}

// Sub returns m - other with a checked non-negative result.
// A result below zero is reported as an out-of-range error; callers decide
// whether that means insufficient funds.
func (m Money) Sub(other Money) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}
	if err := other.Validate(); err != nil {
		return Money{}, err
	}

	diff := new(big.Int).Sub(m.amount, other.amount)
	if diff.Sign() < 0 {
		return Money{}, errs.NewValueIsOutOfRangeError("monetary difference", diff.String(), 0, "2^128-1")
	}

	return Money{amount: diff}, nil
}

// MulUint64 returns m * n with a checked 128-bit bound.
// The product overflowing 2^128-1 is reported as an out-of-range error.
func (m Money) MulUint64(n uint64) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}

	product := new(big.Int).Mul(m.amount, new(big.Int).SetUint64(n))
	if product.Cmp(moneyLimit) >= 0 {
		return Money{}, errs.NewValueIsOutOfRangeError("monetary product", product.String(), 0, "2^128-1")
	}

	return Money{amount: product}, nil
}

// Validate checks that the Money value was properly constructed.
func (m Money) Validate() error {
	if m.amount == nil {
		return ErrMoneyIsNotConstructed
	}
	return nil
}

func (m Money) cmp(other Money) int {
	a, b := m.amount, other.amount
	if a == nil {
		a = big.NewInt(0)
	}
	if b == nil {
		b = big.NewInt(0)
	}
	return a.Cmp(b)
}
