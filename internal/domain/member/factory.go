package member

import (
	"strings"

	vo "github.com/orris-inc/gymdesk/internal/domain/member/valueobjects"
)

// Profile holds the identity and contact fields shared by both variants.
type Profile struct {
	ID                  string
	Name                string
	Location            string
	Phone               string
	Email               string
	Gender              vo.Gender
	DOB                 string
	MembershipStartDate string
	ReferralSource      string
	PaidAmount          vo.Money
}

type RegularParams struct {
	Profile
	// Plan defaults to basic when empty.
	Plan string
}

type PremiumParams struct {
	Profile
	PersonalTrainer string
}

// NewRegularMember creates an inactive regular member.
func NewRegularMember(p RegularParams) (*Member, error) {
	m, err := newMember(p.Profile, vo.MemberTypeRegular)
	if err != nil {
		return nil, err
	}

	plan := vo.PlanBasic
	if strings.TrimSpace(p.Plan) != "" {
		plan, err = vo.ParsePlan(p.Plan)
		if err != nil {
			return nil, errInvalid("plan must be one of %s", vo.PlanNames())
		}
	}

	m.regular = newRegularDetails(plan)
	return m, nil
}

// NewPremiumMember creates an inactive premium member. A positive paid amount
// is applied through the payment rule, so it cannot exceed the premium charge.
func NewPremiumMember(p PremiumParams) (*Member, error) {
	m, err := newMember(p.Profile, vo.MemberTypePremium)
	if err != nil {
		return nil, err
	}

	trainer := strings.TrimSpace(p.PersonalTrainer)
	if trainer == "" {
		return nil, errInvalid("personal trainer is required")
	}
	if err := checkRepresentable("personal trainer", trainer, ","); err != nil {
		return nil, err
	}

	m.premium = newPremiumDetails(trainer)
	if m.paidAmount.IsPositive() {
		if _, err := m.premium.pay(m.paidAmount); err != nil {
			return nil, errInvalid("initial paid amount: %v", err)
		}
	}
	return m, nil
}

func newMember(p Profile, memberType vo.MemberType) (*Member, error) {
	id := strings.TrimSpace(p.ID)
	if err := ValidateID(id); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(p.Name)
	if name == "" {
		return nil, errInvalid("name is required")
	}
	if !p.Gender.IsValid() {
		return nil, errInvalid("gender must be Male or Female")
	}
	if p.PaidAmount.IsNegative() {
		return nil, errInvalid("paid amount cannot be negative")
	}

	dob, err := vo.ParseCalendarDate(p.DOB)
	if err != nil {
		return nil, errInvalid("date of birth: %v", err)
	}
	start, err := vo.ParseCalendarDate(p.MembershipStartDate)
	if err != nil {
		return nil, errInvalid("membership start date: %v", err)
	}

	m := &Member{
		id:                  id,
		name:                name,
		location:            strings.TrimSpace(p.Location),
		phone:               strings.TrimSpace(p.Phone),
		email:               strings.TrimSpace(p.Email),
		gender:              p.Gender,
		dob:                 dob.String(),
		membershipStartDate: start.String(),
		referralSource:      strings.TrimSpace(p.ReferralSource),
		paidAmount:          p.PaidAmount,
		memberType:          memberType,
	}

	fields := map[string]string{
		"name":            m.name,
		"location":        m.location,
		"phone":           m.phone,
		"email":           m.email,
		"referral source": m.referralSource,
	}
	for field, value := range fields {
		if err := checkRepresentable(field, value); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// ValidateID checks that id is a non-empty string of decimal digits.
func ValidateID(id string) error {
	if id == "" {
		return errInvalid("member id is required")
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return errInvalid("member id must contain only numbers")
		}
	}
	return nil
}

// checkRepresentable rejects characters the member file uses as separators.
func checkRepresentable(field, value string, extra ...string) error {
	if strings.ContainsAny(value, "|\r\n") {
		return errInvalid("%s cannot contain '|' or line breaks", field)
	}
	for _, s := range extra {
		if strings.Contains(value, s) {
			return errInvalid("%s cannot contain %q", field, s)
		}
	}
	return nil
}

// ReconstructParams carries persisted member state.
type ReconstructParams struct {
	Type          vo.MemberType
	Profile       Profile
	Active        bool
	Attendance    int
	LoyaltyPoints int64

	// Regular
	Plan string

	// Premium. A nil CumulativePaid rebuilds the tracker by applying
	// Profile.PaidAmount through the payment rule. A nil IsFullPayment is
	// derived from the cumulative total.
	PersonalTrainer string
	CumulativePaid  *vo.Money
	IsFullPayment   *bool
	DiscountAmount  vo.Money
}

// ReconstructMember rebuilds a member from storage. Free-text fields are
// taken as stored; counters and variant state are checked against the
// member invariants.
func ReconstructMember(p ReconstructParams) (*Member, error) {
	if err := ValidateID(p.Profile.ID); err != nil {
		return nil, err
	}
	if p.Profile.Name == "" {
		return nil, errInvalid("name is required")
	}
	if p.Attendance < 0 {
		return nil, errInvalid("attendance cannot be negative")
	}
	if p.LoyaltyPoints < 0 {
		return nil, errInvalid("loyalty points cannot be negative")
	}
	if p.Profile.PaidAmount.IsNegative() {
		return nil, errInvalid("paid amount cannot be negative")
	}

	m := &Member{
		id:                  p.Profile.ID,
		name:                p.Profile.Name,
		location:            p.Profile.Location,
		phone:               p.Profile.Phone,
		email:               p.Profile.Email,
		gender:              p.Profile.Gender,
		dob:                 p.Profile.DOB,
		membershipStartDate: p.Profile.MembershipStartDate,
		referralSource:      p.Profile.ReferralSource,
		paidAmount:          p.Profile.PaidAmount,
		attendance:          p.Attendance,
		loyaltyPoints:       p.LoyaltyPoints,
		active:              p.Active,
		memberType:          p.Type,
	}

	switch p.Type {
	case vo.MemberTypeRegular:
		plan, err := vo.ParsePlan(p.Plan)
		if err != nil {
			return nil, errInvalid("%v", err)
		}
		m.regular = newRegularDetails(plan)
		m.regular.checkEligibility(m.attendance)
	case vo.MemberTypePremium:
		premium, err := reconstructPremium(p)
		if err != nil {
			return nil, err
		}
		m.premium = premium
	default:
		return nil, errInvalid("unknown member type %q", p.Type)
	}

	return m, nil
}

func reconstructPremium(p ReconstructParams) (*PremiumDetails, error) {
	if p.PersonalTrainer == "" {
		return nil, errInvalid("personal trainer is required")
	}

	d := newPremiumDetails(p.PersonalTrainer)
	if p.CumulativePaid != nil {
		if p.CumulativePaid.IsNegative() || p.CumulativePaid.GreaterThan(PremiumCharge) {
			return nil, errInvalid("cumulative paid amount %s outside 0..%s", *p.CumulativePaid, PremiumCharge)
		}
		d.paidAmount = *p.CumulativePaid
		d.isFullPayment = d.paidAmount.GreaterOrEqual(PremiumCharge)
	} else if p.Profile.PaidAmount.IsPositive() {
		if _, err := d.pay(p.Profile.PaidAmount); err != nil {
			return nil, errInvalid("paid amount: %v", err)
		}
	}

	if p.IsFullPayment != nil && *p.IsFullPayment != d.isFullPayment {
		return nil, errInvalid("full payment flag %t does not match paid amount %s", *p.IsFullPayment, d.paidAmount)
	}

	if p.DiscountAmount.IsNegative() {
		return nil, errInvalid("discount amount cannot be negative")
	}
	if !p.DiscountAmount.IsZero() && !d.isFullPayment {
		return nil, errInvalid("discount requires full payment")
	}
	if p.DiscountAmount.GreaterThan(PremiumCharge) {
		return nil, errInvalid("discount amount %s exceeds premium charge", p.DiscountAmount)
	}
	d.discountAmount = p.DiscountAmount

	return d, nil
}
