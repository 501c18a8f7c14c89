package member

import (
	"errors"
	"testing"

	vo "github.com/orris-inc/gymdesk/internal/domain/member/valueobjects"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestNewPremiumMember_Defaults(t *testing.T) {
	m := newPremium(t, "2", vo.Money{})

	p := m.Premium()
	require.NotNil(t, p)
	assert.Nil(t, m.Regular())
	assert.Equal(t, "Alex", p.PersonalTrainer())
	assert.Equal(t, vo.MoneyFromUnits(50000), p.PremiumCharge())
	assert.True(t, p.PaidAmount().IsZero())
	assert.False(t, p.IsFullPayment())
	assert.True(t, p.DiscountAmount().IsZero())
	assert.Equal(t, vo.PaymentStatusUnpaid, p.PaymentStatus())
	assert.Equal(t, vo.MoneyFromUnits(50000), m.CalculateFee())
}

func TestNewPremiumMember_TrainerRequired(t *testing.T) {
	for _, trainer := range []string{"", "  ", "Alex,Jr"} {
		_, err := NewPremiumMember(PremiumParams{Profile: validProfile("2"), PersonalTrainer: trainer})
		assert.ErrorIs(t, err, ErrInvalidMember, "trainer %q", trainer)
	}
}

func TestNewPremiumMember_InitialPaymentApplied(t *testing.T) {
	m := newPremium(t, "2", vo.MoneyFromUnits(20000))

	assert.Equal(t, vo.MoneyFromUnits(20000), m.PaidAmount())
	assert.Equal(t, vo.MoneyFromUnits(20000), m.Premium().PaidAmount())
	assert.Equal(t, vo.MoneyFromUnits(30000), m.Premium().RemainingAmount())
	assert.Equal(t, vo.PaymentStatusPartiallyPaid, m.Premium().PaymentStatus())
}

func TestNewPremiumMember_InitialOverPaymentRejected(t *testing.T) {
	p := validProfile("2")
	p.PaidAmount = vo.MoneyFromUnits(50001)
	m, err := NewPremiumMember(PremiumParams{Profile: p, PersonalTrainer: "Alex"})
	assert.Nil(t, m)
	assert.ErrorIs(t, err, ErrInvalidMember)
}

// Scenario D and E
func TestPayDueAmount_OverPaymentThenFullPayment(t *testing.T) {
	m := newPremium(t, "2", vo.Money{})

	res, err := m.PayDueAmount(vo.MoneyFromUnits(60000))
	assert.Nil(t, res)
	require.ErrorIs(t, err, ErrOverPayment)
	var over *OverPaymentError
	require.True(t, errors.As(err, &over))
	assert.Equal(t, vo.MoneyFromUnits(50000), over.MaxAcceptable)
	assert.True(t, m.Premium().PaidAmount().IsZero(), "rejected payment is not applied")

	res, err = m.PayDueAmount(vo.MoneyFromUnits(50000))
	require.NoError(t, err)
	assert.True(t, res.Completed)
	assert.True(t, res.Remaining.IsZero())
	assert.True(t, m.Premium().IsFullPayment())

	disc, err := m.CalculateDiscount()
	require.NoError(t, err)
	assert.Equal(t, vo.MoneyFromUnits(500), disc.Discount)
	assert.Equal(t, vo.MoneyFromUnits(500), m.Premium().DiscountAmount())
	assert.Equal(t, vo.MoneyFromUnits(49500), m.CalculateFee())
}

func TestPayDueAmount_Progression(t *testing.T) {
	m := newPremium(t, "2", vo.Money{})

	res, err := m.PayDueAmount(vo.MoneyFromUnits(20000))
	require.NoError(t, err)
	assert.False(t, res.Completed)
	assert.Equal(t, vo.MoneyFromUnits(30000), res.Remaining)
	assert.Equal(t, vo.PaymentStatusPartiallyPaid, m.Premium().PaymentStatus())

	_, err = m.PayDueAmount(vo.MoneyFromUnits(30001))
	var over *OverPaymentError
	require.ErrorAs(t, err, &over)
	assert.Equal(t, vo.MoneyFromUnits(30000), over.MaxAcceptable)
	assert.Equal(t, vo.MoneyFromUnits(20000), m.Premium().PaidAmount())

	res, err = m.PayDueAmount(vo.MoneyFromUnits(30000))
	require.NoError(t, err)
	assert.True(t, res.Completed)
	assert.Equal(t, vo.PaymentStatusFullyPaid, m.Premium().PaymentStatus())
	assert.False(t, m.Premium().PaymentStatus().CanAcceptPayment())

	_, err = m.PayDueAmount(vo.MoneyFromUnits(1))
	assert.ErrorIs(t, err, ErrAlreadyPaid)
	assert.Equal(t, vo.MoneyFromUnits(50000), m.Premium().PaidAmount())
}

func TestPayDueAmount_RejectsNonPositive(t *testing.T) {
	m := newPremium(t, "2", vo.Money{})
	for _, amount := range []vo.Money{{}, vo.NewMoney(-100)} {
		_, err := m.PayDueAmount(amount)
		assert.ErrorIs(t, err, ErrInvalidAmount)
	}
	assert.True(t, m.Premium().PaidAmount().IsZero())
}

func TestPayDueAmount_RegularMemberRejected(t *testing.T) {
	m := newRegular(t, "1", "")
	_, err := m.PayDueAmount(vo.MoneyFromUnits(100))
	assert.ErrorIs(t, err, ErrMemberTypeMismatch)
	_, err = m.CalculateDiscount()
	assert.ErrorIs(t, err, ErrMemberTypeMismatch)
}

func TestCalculateDiscount_RequiresFullPayment(t *testing.T) {
	m := newPremium(t, "2", vo.MoneyFromUnits(49999))

	res, err := m.CalculateDiscount()
	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrPaymentIncomplete)
	assert.True(t, m.Premium().DiscountAmount().IsZero())
}

func TestDiscountPercent(t *testing.T) {
	assert.Equal(t, 1, DiscountPercent())
}

func TestPayDueAmount_NeverExceedsCharge(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		m, err := NewPremiumMember(PremiumParams{Profile: validProfile("2"), PersonalTrainer: "Alex"})
		require.NoError(rt, err)

		payments := rapid.SliceOfN(rapid.Int64Range(-100, 6_000_000), 1, 30).Draw(rt, "payments")
		for _, cents := range payments {
			before := m.Premium().PaidAmount()
			res, err := m.PayDueAmount(vo.NewMoney(cents))
			if err != nil {
				require.Equal(rt, before, m.Premium().PaidAmount(), "failed payment must not move the total")
				continue
			}
			require.Equal(rt, before.Add(vo.NewMoney(cents)), res.TotalPaid)
			require.False(rt, res.TotalPaid.GreaterThan(PremiumCharge))
			require.Equal(rt, res.TotalPaid == PremiumCharge, res.Completed)
		}
		require.Equal(rt, PremiumCharge.Sub(m.Premium().PaidAmount()), m.Premium().RemainingAmount())
	})
}
