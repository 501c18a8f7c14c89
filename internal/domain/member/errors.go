package member

import (
	"errors"
	"fmt"

	vo "github.com/orris-inc/gymdesk/internal/domain/member/valueobjects"
)

var (
	ErrInvalidMember      = errors.New("invalid member")
	ErrMemberNotFound     = errors.New("member not found")
	ErrDuplicateID        = errors.New("member id already exists")
	ErrMemberTypeMismatch = errors.New("member type mismatch")
	ErrNotEligible        = errors.New("member is not eligible for plan upgrade")
	ErrSamePlan           = errors.New("member is already subscribed to plan")
	ErrInvalidPlan        = errors.New("invalid plan")
	ErrInvalidAmount      = errors.New("invalid payment amount")
	ErrAlreadyPaid        = errors.New("payment is already complete")
	ErrOverPayment        = errors.New("payment amount exceeds the premium charge")
	ErrPaymentIncomplete  = errors.New("full payment is required for a discount")
)

// OverPaymentError reports a rejected payment together with the largest
// amount that would have been accepted.
type OverPaymentError struct {
	Attempted     vo.Money
	MaxAcceptable vo.Money
}

func (e *OverPaymentError) Error() string {
	return fmt.Sprintf("%s: attempted %s, maximum amount %s", ErrOverPayment, e.Attempted, e.MaxAcceptable)
}

func (e *OverPaymentError) Unwrap() error {
	return ErrOverPayment
}

func errInvalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidMember, fmt.Sprintf(format, args...))
}

func errTypeMismatch(id string, want, got vo.MemberType) error {
	return fmt.Errorf("%w: member %s is %s, not %s", ErrMemberTypeMismatch, id, got.Label(), want.Label())
}
