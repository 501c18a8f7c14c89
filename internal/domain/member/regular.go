package member

import (
	"fmt"
	"strings"

	vo "github.com/orris-inc/gymdesk/internal/domain/member/valueobjects"
)

const (
	// AttendanceLimit is the attendance a regular member needs before a plan upgrade.
	AttendanceLimit = 30
	// RegularLoyaltyPerVisit is credited on every attendance of a regular member.
	RegularLoyaltyPerVisit = 5
)

// RegularDetails is the variant payload of a regular member.
type RegularDetails struct {
	plan               vo.Plan
	price              vo.Money
	eligibleForUpgrade bool
}

// UpgradeResult describes a successful plan change.
type UpgradeResult struct {
	PreviousPlan vo.Plan
	Plan         vo.Plan
	Price        vo.Money
}

func newRegularDetails(plan vo.Plan) *RegularDetails {
	return &RegularDetails{
		plan:  plan,
		price: plan.Price(),
	}
}

func defaultRegularDetails() *RegularDetails {
	return newRegularDetails(vo.PlanBasic)
}

func (d *RegularDetails) Plan() vo.Plan {
	return d.plan
}

func (d *RegularDetails) Price() vo.Money {
	return d.price
}

func (d *RegularDetails) AttendanceLimit() int {
	return AttendanceLimit
}

func (d *RegularDetails) EligibleForUpgrade() bool {
	return d.eligibleForUpgrade
}

// checkEligibility latches eligibility once attendance reaches the limit.
func (d *RegularDetails) checkEligibility(attendance int) {
	if attendance >= AttendanceLimit {
		d.eligibleForUpgrade = true
	}
}

func (d *RegularDetails) upgrade(attendance int, newPlan string) (*UpgradeResult, error) {
	d.checkEligibility(attendance)

	if !d.eligibleForUpgrade {
		return nil, fmt.Errorf("%w: need at least %d attendances, have %d",
			ErrNotEligible, AttendanceLimit, attendance)
	}

	if strings.EqualFold(strings.TrimSpace(newPlan), string(d.plan)) {
		return nil, fmt.Errorf("%w: %s", ErrSamePlan, d.plan.DisplayName())
	}

	plan, err := vo.ParsePlan(newPlan)
	if err != nil {
		return nil, fmt.Errorf("%w: %q, available plans: %s", ErrInvalidPlan, newPlan, vo.PlanNames())
	}

	previous := d.plan
	d.plan = plan
	d.price = plan.Price()

	return &UpgradeResult{
		PreviousPlan: previous,
		Plan:         d.plan,
		Price:        d.price,
	}, nil
}
