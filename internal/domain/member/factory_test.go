package member

import (
	"testing"

	vo "github.com/orris-inc/gymdesk/internal/domain/member/valueobjects"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func moneyPtr(m vo.Money) *vo.Money {
	return &m
}

func boolPtr(b bool) *bool {
	return &b
}

func TestReconstructMember_Regular(t *testing.T) {
	m, err := ReconstructMember(ReconstructParams{
		Type:          vo.MemberTypeRegular,
		Profile:       validProfile("4"),
		Active:        true,
		Attendance:    30,
		LoyaltyPoints: 150,
		Plan:          "Standard",
	})
	require.NoError(t, err)

	assert.True(t, m.IsActive())
	assert.Equal(t, 30, m.Attendance())
	assert.Equal(t, int64(150), m.LoyaltyPoints())
	assert.Equal(t, vo.PlanStandard, m.Regular().Plan())
	assert.Equal(t, vo.MoneyFromUnits(12500), m.Regular().Price())
	assert.True(t, m.Regular().EligibleForUpgrade(), "eligibility follows stored attendance")
}

func TestReconstructMember_PremiumWithTracker(t *testing.T) {
	p := validProfile("5")
	p.PaidAmount = vo.MoneyFromUnits(1000)

	m, err := ReconstructMember(ReconstructParams{
		Type:            vo.MemberTypePremium,
		Profile:         p,
		PersonalTrainer: "Alex",
		CumulativePaid:  moneyPtr(vo.MoneyFromUnits(50000)),
		IsFullPayment:   boolPtr(true),
		DiscountAmount:  vo.MoneyFromUnits(500),
	})
	require.NoError(t, err)

	assert.Equal(t, vo.MoneyFromUnits(1000), m.PaidAmount())
	assert.Equal(t, vo.MoneyFromUnits(50000), m.Premium().PaidAmount())
	assert.True(t, m.Premium().IsFullPayment())
	assert.Equal(t, vo.MoneyFromUnits(500), m.Premium().DiscountAmount())
}

func TestReconstructMember_PremiumLegacyDerivesTracker(t *testing.T) {
	p := validProfile("6")
	p.PaidAmount = vo.MoneyFromUnits(20000)

	m, err := ReconstructMember(ReconstructParams{
		Type:            vo.MemberTypePremium,
		Profile:         p,
		PersonalTrainer: "Alex",
	})
	require.NoError(t, err)

	assert.Equal(t, vo.MoneyFromUnits(20000), m.Premium().PaidAmount())
	assert.False(t, m.Premium().IsFullPayment())
	assert.True(t, m.Premium().DiscountAmount().IsZero())
}

func TestReconstructMember_InvariantViolations(t *testing.T) {
	tests := []struct {
		name   string
		params ReconstructParams
	}{
		{
			name:   "bad id",
			params: ReconstructParams{Type: vo.MemberTypeRegular, Profile: Profile{ID: "x1", Name: "A"}, Plan: "basic"},
		},
		{
			name:   "negative attendance",
			params: ReconstructParams{Type: vo.MemberTypeRegular, Profile: validProfile("1"), Attendance: -1, Plan: "basic"},
		},
		{
			name:   "unknown plan",
			params: ReconstructParams{Type: vo.MemberTypeRegular, Profile: validProfile("1"), Plan: "gold"},
		},
		{
			name:   "unknown type",
			params: ReconstructParams{Type: "VIP", Profile: validProfile("1")},
		},
		{
			name:   "missing trainer",
			params: ReconstructParams{Type: vo.MemberTypePremium, Profile: validProfile("1")},
		},
		{
			name: "tracker above charge",
			params: ReconstructParams{
				Type: vo.MemberTypePremium, Profile: validProfile("1"), PersonalTrainer: "Alex",
				CumulativePaid: moneyPtr(vo.MoneyFromUnits(50001)),
			},
		},
		{
			name: "full flag without full payment",
			params: ReconstructParams{
				Type: vo.MemberTypePremium, Profile: validProfile("1"), PersonalTrainer: "Alex",
				CumulativePaid: moneyPtr(vo.MoneyFromUnits(100)), IsFullPayment: boolPtr(true),
			},
		},
		{
			name: "discount without full payment",
			params: ReconstructParams{
				Type: vo.MemberTypePremium, Profile: validProfile("1"), PersonalTrainer: "Alex",
				DiscountAmount: vo.MoneyFromUnits(500),
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := ReconstructMember(tc.params)
			assert.Nil(t, m)
			assert.ErrorIs(t, err, ErrInvalidMember)
		})
	}
}
