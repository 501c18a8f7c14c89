package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/orris-inc/gymdesk/internal/domain/member"
	"github.com/orris-inc/gymdesk/internal/shared/logger"
)

type mockMemberRepository struct {
	SaveFunc func(ctx context.Context, registry *member.Registry) error
	LoadFunc func(ctx context.Context) (*member.Registry, *member.LoadReport, error)

	saves int
}

func (m *mockMemberRepository) Save(ctx context.Context, registry *member.Registry) error {
	m.saves++
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, registry)
	}
	return nil
}

func (m *mockMemberRepository) Load(ctx context.Context) (*member.Registry, *member.LoadReport, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc(ctx)
	}
	return member.NewRegistry(), &member.LoadReport{}, nil
}

func testProfile(id string) ProfileInput {
	return ProfileInput{
		ID:                  id,
		Name:                "Sita Sharma",
		Location:            "Kathmandu",
		Phone:               "9800000000",
		Email:               "sita@example.com",
		Gender:              "Female",
		DOB:                 "7-March-1999",
		MembershipStartDate: "1-January-2025",
		ReferralSource:      "friend",
	}
}

// fixture holds a registry shared by the use cases under test.
type fixture struct {
	registry *member.Registry
	repo     *mockMemberRepository
	log      logger.Interface
}

func newFixture() *fixture {
	return &fixture{
		registry: member.NewRegistry(),
		repo:     &mockMemberRepository{},
		log:      logger.NewNopLogger(),
	}
}

func (f *fixture) addRegular(t *testing.T, id, plan string) {
	t.Helper()
	_, err := NewCreateRegularMemberUseCase(f.registry, f.repo, f.log).Execute(context.Background(),
		CreateRegularMemberCommand{ProfileInput: testProfile(id), Plan: plan})
	require.NoError(t, err)
}

func (f *fixture) addPremium(t *testing.T, id, paid string) {
	t.Helper()
	profile := testProfile(id)
	profile.PaidAmount = paid
	_, err := NewCreatePremiumMemberUseCase(f.registry, f.repo, f.log).Execute(context.Background(),
		CreatePremiumMemberCommand{ProfileInput: profile, PersonalTrainer: "Alex"})
	require.NoError(t, err)
}

func (f *fixture) activate(t *testing.T, id string) {
	t.Helper()
	_, err := NewActivateMembershipUseCase(f.registry, f.repo, f.log).Execute(context.Background(),
		ActivateMembershipCommand{MemberID: id})
	require.NoError(t, err)
}

func (f *fixture) attend(t *testing.T, id string, times int) {
	t.Helper()
	uc := NewMarkAttendanceUseCase(f.registry, f.repo, f.log)
	for i := 0; i < times; i++ {
		result, err := uc.Execute(context.Background(), MarkAttendanceCommand{MemberID: id})
		require.NoError(t, err)
		require.True(t, result.Recorded)
	}
}
