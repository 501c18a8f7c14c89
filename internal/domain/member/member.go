// Package member holds the gym member aggregate, its variant rule engines
// and the in-memory registry that owns a set of members.
package member

import (
	vo "github.com/orris-inc/gymdesk/internal/domain/member/valueobjects"
)

// Member is a tagged union over the regular and premium variants. Exactly one
// of regular and premium is set, selected by memberType.
type Member struct {
	id                  string
	name                string
	location            string
	phone               string
	email               string
	gender              vo.Gender
	dob                 string
	membershipStartDate string
	referralSource      string
	paidAmount          vo.Money
	attendance          int
	loyaltyPoints       int64
	active              bool
	removalReason       string

	memberType vo.MemberType
	regular    *RegularDetails
	premium    *PremiumDetails
}

func (m *Member) ID() string {
	return m.id
}

func (m *Member) Name() string {
	return m.name
}

func (m *Member) Location() string {
	return m.location
}

func (m *Member) Phone() string {
	return m.phone
}

func (m *Member) Email() string {
	return m.email
}

func (m *Member) Gender() vo.Gender {
	return m.gender
}

func (m *Member) DOB() string {
	return m.dob
}

func (m *Member) MembershipStartDate() string {
	return m.membershipStartDate
}

func (m *Member) ReferralSource() string {
	return m.referralSource
}

// PaidAmount is the amount recorded when the member was created.
func (m *Member) PaidAmount() vo.Money {
	return m.paidAmount
}

func (m *Member) Attendance() int {
	return m.attendance
}

func (m *Member) LoyaltyPoints() int64 {
	return m.loyaltyPoints
}

func (m *Member) IsActive() bool {
	return m.active
}

func (m *Member) RemovalReason() string {
	return m.removalReason
}

func (m *Member) Type() vo.MemberType {
	return m.memberType
}

// Regular returns the regular payload, or nil for a premium member.
func (m *Member) Regular() *RegularDetails {
	return m.regular
}

// Premium returns the premium payload, or nil for a regular member.
func (m *Member) Premium() *PremiumDetails {
	return m.premium
}

// Activate marks the membership active. It reports false when the member
// was already active.
func (m *Member) Activate() bool {
	if m.active {
		return false
	}
	m.active = true
	return true
}

// Deactivate marks the membership inactive. It reports false when the member
// was already inactive.
func (m *Member) Deactivate() bool {
	if !m.active {
		return false
	}
	m.active = false
	return true
}

// MarkAttendance records one visit and credits loyalty points at the
// variant's rate. Inactive members are left untouched and false is returned.
func (m *Member) MarkAttendance() bool {
	if !m.active {
		return false
	}

	m.attendance++
	switch m.memberType {
	case vo.MemberTypeRegular:
		m.loyaltyPoints += RegularLoyaltyPerVisit
		m.regular.checkEligibility(m.attendance)
	case vo.MemberTypePremium:
		m.loyaltyPoints += PremiumLoyaltyPerVisit
	}
	return true
}

// UpgradePlan moves a regular member to another plan.
func (m *Member) UpgradePlan(newPlan string) (*UpgradeResult, error) {
	if m.memberType != vo.MemberTypeRegular {
		return nil, errTypeMismatch(m.id, vo.MemberTypeRegular, m.memberType)
	}
	return m.regular.upgrade(m.attendance, newPlan)
}

// PayDueAmount adds a payment to a premium member's cumulative total. A
// payment that would exceed the premium charge is rejected as a whole.
func (m *Member) PayDueAmount(amount vo.Money) (*PaymentResult, error) {
	if m.memberType != vo.MemberTypePremium {
		return nil, errTypeMismatch(m.id, vo.MemberTypePremium, m.memberType)
	}
	return m.premium.pay(amount)
}

// CalculateDiscount sets the discount of a fully paid premium member.
func (m *Member) CalculateDiscount() (*DiscountResult, error) {
	if m.memberType != vo.MemberTypePremium {
		return nil, errTypeMismatch(m.id, vo.MemberTypePremium, m.memberType)
	}
	return m.premium.calculateDiscount()
}

// CalculateFee returns the plan price for regular members and the premium
// charge less discount for premium members.
func (m *Member) CalculateFee() vo.Money {
	switch m.memberType {
	case vo.MemberTypeRegular:
		return m.regular.price
	case vo.MemberTypePremium:
		return m.premium.Fee()
	default:
		return vo.Money{}
	}
}

// Reset clears activity state.
func (m *Member) Reset() {
	m.active = false
	m.attendance = 0
	m.loyaltyPoints = 0
}

// Revert resets the member, replaces the variant payload with its defaults
// and records why the member is being removed. Identity fields are kept.
func (m *Member) Revert(reason string) {
	m.Reset()
	switch m.memberType {
	case vo.MemberTypeRegular:
		m.regular = defaultRegularDetails()
	case vo.MemberTypePremium:
		m.premium = newPremiumDetails("")
	}
	m.removalReason = reason
}
