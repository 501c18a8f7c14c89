package dto

import (
	"github.com/orris-inc/gymdesk/internal/domain/member"
	"github.com/orris-inc/gymdesk/internal/shared/mapper"
)

type MemberDTO struct {
	ID                  string      `json:"id" yaml:"id"`
	Type                string      `json:"type" yaml:"type"`
	Name                string      `json:"name" yaml:"name"`
	Location            string      `json:"location" yaml:"location"`
	Phone               string      `json:"phone" yaml:"phone"`
	Email               string      `json:"email" yaml:"email"`
	Gender              string      `json:"gender" yaml:"gender"`
	DOB                 string      `json:"dob" yaml:"dob"`
	MembershipStartDate string      `json:"membership_start_date" yaml:"membership_start_date"`
	ReferralSource      string      `json:"referral_source" yaml:"referral_source"`
	PaidAmount          string      `json:"paid_amount" yaml:"paid_amount"`
	Active              bool        `json:"active" yaml:"active"`
	Attendance          int         `json:"attendance" yaml:"attendance"`
	LoyaltyPoints       int64       `json:"loyalty_points" yaml:"loyalty_points"`
	Fee                 string      `json:"fee" yaml:"fee"`
	RemovalReason       string      `json:"removal_reason,omitempty" yaml:"removal_reason,omitempty"`
	Regular             *RegularDTO `json:"regular,omitempty" yaml:"regular,omitempty"`
	Premium             *PremiumDTO `json:"premium,omitempty" yaml:"premium,omitempty"`
}

type RegularDTO struct {
	Plan               string `json:"plan" yaml:"plan"`
	Price              string `json:"price" yaml:"price"`
	AttendanceLimit    int    `json:"attendance_limit" yaml:"attendance_limit"`
	EligibleForUpgrade bool   `json:"eligible_for_upgrade" yaml:"eligible_for_upgrade"`
}

type PremiumDTO struct {
	PersonalTrainer string `json:"personal_trainer" yaml:"personal_trainer"`
	PremiumCharge   string `json:"premium_charge" yaml:"premium_charge"`
	PaidAmount      string `json:"paid_amount" yaml:"paid_amount"`
	RemainingAmount string `json:"remaining_amount" yaml:"remaining_amount"`
	PaymentStatus   string `json:"payment_status" yaml:"payment_status"`
	FullPayment     bool   `json:"full_payment" yaml:"full_payment"`
	// Set only once the charge is fully paid.
	DiscountAmount *string `json:"discount_amount,omitempty" yaml:"discount_amount,omitempty"`
}

type SkippedRecordDTO struct {
	Line   int    `json:"line" yaml:"line"`
	Reason string `json:"reason" yaml:"reason"`
}

func ToMemberDTO(m *member.Member) *MemberDTO {
	if m == nil {
		return nil
	}

	d := &MemberDTO{
		ID:                  m.ID(),
		Type:                m.Type().Label(),
		Name:                m.Name(),
		Location:            m.Location(),
		Phone:               m.Phone(),
		Email:               m.Email(),
		Gender:              m.Gender().String(),
		DOB:                 m.DOB(),
		MembershipStartDate: m.MembershipStartDate(),
		ReferralSource:      m.ReferralSource(),
		PaidAmount:          m.PaidAmount().String(),
		Active:              m.IsActive(),
		Attendance:          m.Attendance(),
		LoyaltyPoints:       m.LoyaltyPoints(),
		Fee:                 m.CalculateFee().String(),
		RemovalReason:       m.RemovalReason(),
	}

	if r := m.Regular(); r != nil {
		d.Regular = &RegularDTO{
			Plan:               r.Plan().DisplayName(),
			Price:              r.Price().String(),
			AttendanceLimit:    r.AttendanceLimit(),
			EligibleForUpgrade: r.EligibleForUpgrade(),
		}
	}

	if p := m.Premium(); p != nil {
		d.Premium = &PremiumDTO{
			PersonalTrainer: p.PersonalTrainer(),
			PremiumCharge:   p.PremiumCharge().String(),
			PaidAmount:      p.PaidAmount().String(),
			RemainingAmount: p.RemainingAmount().String(),
			PaymentStatus:   p.PaymentStatus().String(),
			FullPayment:     p.IsFullPayment(),
		}
		if p.IsFullPayment() {
			discount := p.DiscountAmount().String()
			d.Premium.DiscountAmount = &discount
		}
	}

	return d
}

func ToMemberDTOs(members []*member.Member) []*MemberDTO {
	return mapper.MapSlicePtr(members, ToMemberDTO)
}

func ToSkippedRecordDTOs(records []member.SkippedRecord) []SkippedRecordDTO {
	return mapper.MapSlice(records, func(r member.SkippedRecord) SkippedRecordDTO {
		return SkippedRecordDTO{Line: r.Line, Reason: r.Reason}
	})
}
