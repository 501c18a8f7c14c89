package member

import (
	"fmt"

	vo "github.com/orris-inc/gymdesk/internal/domain/member/valueobjects"
)

const (
	// PremiumLoyaltyPerVisit is credited on every attendance of a premium member.
	PremiumLoyaltyPerVisit = 10

	discountNumerator   = 1
	discountDenominator = 100
)

// PremiumCharge is the fixed total fee of a premium membership.
var PremiumCharge = vo.MoneyFromUnits(50000)

// PremiumDetails is the variant payload of a premium member. paidAmount is the
// cumulative payment tracker, distinct from the member's creation-time paid amount.
type PremiumDetails struct {
	personalTrainer string
	paidAmount      vo.Money
	isFullPayment   bool
	discountAmount  vo.Money
}

// PaymentResult describes an accepted payment.
type PaymentResult struct {
	Amount    vo.Money
	TotalPaid vo.Money
	Remaining vo.Money
	Completed bool
}

// DiscountResult describes a computed discount.
type DiscountResult struct {
	Discount vo.Money
	Fee      vo.Money
}

func newPremiumDetails(trainer string) *PremiumDetails {
	return &PremiumDetails{personalTrainer: trainer}
}

func (d *PremiumDetails) PersonalTrainer() string {
	return d.personalTrainer
}

func (d *PremiumDetails) PremiumCharge() vo.Money {
	return PremiumCharge
}

func (d *PremiumDetails) PaidAmount() vo.Money {
	return d.paidAmount
}

func (d *PremiumDetails) IsFullPayment() bool {
	return d.isFullPayment
}

func (d *PremiumDetails) DiscountAmount() vo.Money {
	return d.discountAmount
}

func (d *PremiumDetails) RemainingAmount() vo.Money {
	return PremiumCharge.Sub(d.paidAmount)
}

func (d *PremiumDetails) PaymentStatus() vo.PaymentStatus {
	switch {
	case d.isFullPayment:
		return vo.PaymentStatusFullyPaid
	case d.paidAmount.IsPositive():
		return vo.PaymentStatusPartiallyPaid
	default:
		return vo.PaymentStatusUnpaid
	}
}

// Fee is the premium charge less any discount.
func (d *PremiumDetails) Fee() vo.Money {
	return PremiumCharge.Sub(d.discountAmount)
}

// pay applies the whole amount or nothing.
func (d *PremiumDetails) pay(amount vo.Money) (*PaymentResult, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive, got %s", ErrInvalidAmount, amount)
	}

	if !d.PaymentStatus().CanAcceptPayment() {
		return nil, ErrAlreadyPaid
	}

	newTotal := d.paidAmount.Add(amount)
	if newTotal.GreaterThan(PremiumCharge) {
		return nil, &OverPaymentError{
			Attempted:     amount,
			MaxAcceptable: PremiumCharge.Sub(d.paidAmount),
		}
	}

	d.paidAmount = newTotal
	if d.paidAmount.GreaterOrEqual(PremiumCharge) {
		d.isFullPayment = true
	}

	return &PaymentResult{
		Amount:    amount,
		TotalPaid: d.paidAmount,
		Remaining: d.RemainingAmount(),
		Completed: d.isFullPayment,
	}, nil
}

// calculateDiscount grants 1% of the premium charge once fully paid.
func (d *PremiumDetails) calculateDiscount() (*DiscountResult, error) {
	if !d.isFullPayment {
		return nil, fmt.Errorf("%w: %s remaining", ErrPaymentIncomplete, d.RemainingAmount())
	}

	d.discountAmount = PremiumCharge.MulRatio(discountNumerator, discountDenominator)

	return &DiscountResult{
		Discount: d.discountAmount,
		Fee:      d.Fee(),
	}, nil
}

// DiscountPercent is the discount rate applied by CalculateDiscount, in percent.
func DiscountPercent() int {
	return discountNumerator * 100 / discountDenominator
}
