package usecases

import (
	stderrors "errors"
	"fmt"

	"github.com/orris-inc/gymdesk/internal/domain/member"
	"github.com/orris-inc/gymdesk/internal/shared/errors"
)

// toAppError maps a domain failure onto the application error taxonomy.
func toAppError(err error) error {
	if err == nil || errors.IsAppError(err) {
		return err
	}

	var overPayment *member.OverPaymentError
	switch {
	case stderrors.As(err, &overPayment):
		return errors.NewRuleViolationError(
			"Payment exceeds the premium charge",
			fmt.Sprintf("maximum acceptable amount is %s", overPayment.MaxAcceptable),
		).WithCause(err)
	case stderrors.Is(err, member.ErrMemberNotFound):
		return errors.NewNotFoundError("Member not found").WithCause(err)
	case stderrors.Is(err, member.ErrDuplicateID):
		return errors.NewConflictError("Member ID already exists").WithCause(err)
	case stderrors.Is(err, member.ErrInvalidMember),
		stderrors.Is(err, member.ErrInvalidPlan),
		stderrors.Is(err, member.ErrInvalidAmount),
		stderrors.Is(err, member.ErrMemberTypeMismatch):
		return errors.NewValidationError("Invalid request").WithCause(err)
	case stderrors.Is(err, member.ErrNotEligible):
		return errors.NewRuleViolationError("Member is not eligible for an upgrade").WithCause(err)
	case stderrors.Is(err, member.ErrSamePlan):
		return errors.NewRuleViolationError("Member is already subscribed to this plan").WithCause(err)
	case stderrors.Is(err, member.ErrAlreadyPaid):
		return errors.NewRuleViolationError("Premium charge is already fully paid").WithCause(err)
	case stderrors.Is(err, member.ErrPaymentIncomplete):
		return errors.NewRuleViolationError("Discount requires full payment").WithCause(err)
	default:
		return errors.NewInternalError("Unexpected error").WithCause(err)
	}
}
