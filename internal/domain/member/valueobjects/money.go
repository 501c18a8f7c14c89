package valueobjects

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Money is an amount held in integer cents. Currency is implicit.
type Money struct {
	amountInCents int64
}

func NewMoney(amountInCents int64) Money {
	return Money{amountInCents: amountInCents}
}

// MoneyFromUnits builds a Money from a whole-unit amount, e.g. 6500 -> 6500.00.
func MoneyFromUnits(units int64) Money {
	return Money{amountInCents: units * 100}
}

// maxUnits bounds parsed amounts well inside int64 cents.
const maxUnits = 1e15

// ParseMoney accepts plain decimal text such as "6500", "6500.0" or "6500.00".
// Values are rounded to the nearest cent.
func ParseMoney(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Money{}, fmt.Errorf("amount cannot be empty")
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Money{}, fmt.Errorf("invalid amount %q", s)
	}
	if math.Abs(f) > maxUnits {
		return Money{}, fmt.Errorf("amount %q out of range", s)
	}
	return Money{amountInCents: int64(math.Round(f * 100))}, nil
}

func (m Money) AmountInCents() int64 {
	return m.amountInCents
}

func (m Money) Add(other Money) Money {
	return Money{amountInCents: m.amountInCents + other.amountInCents}
}

func (m Money) Sub(other Money) Money {
	return Money{amountInCents: m.amountInCents - other.amountInCents}
}

// MulRatio returns m * num / den, truncated toward zero.
func (m Money) MulRatio(num, den int64) Money {
	return Money{amountInCents: m.amountInCents * num / den}
}

func (m Money) GreaterThan(other Money) bool {
	return m.amountInCents > other.amountInCents
}

func (m Money) GreaterOrEqual(other Money) bool {
	return m.amountInCents >= other.amountInCents
}

func (m Money) IsPositive() bool {
	return m.amountInCents > 0
}

func (m Money) IsNegative() bool {
	return m.amountInCents < 0
}

func (m Money) IsZero() bool {
	return m.amountInCents == 0
}

// String renders the amount with two decimals, e.g. "6500.00".
func (m Money) String() string {
	sign := ""
	cents := m.amountInCents
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
