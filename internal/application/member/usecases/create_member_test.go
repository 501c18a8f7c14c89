package usecases

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orris-inc/gymdesk/internal/domain/member"
	"github.com/orris-inc/gymdesk/internal/shared/errors"
)

func TestCreateRegularMemberUseCase_Execute_Success(t *testing.T) {
	f := newFixture()
	uc := NewCreateRegularMemberUseCase(f.registry, f.repo, f.log)

	result, err := uc.Execute(context.Background(), CreateRegularMemberCommand{ProfileInput: testProfile("1"), Plan: "Basic"})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "1", result.ID)
	assert.Equal(t, "Regular", result.Type)
	assert.False(t, result.Active)
	require.NotNil(t, result.Regular)
	assert.Equal(t, "Basic", result.Regular.Plan)
	assert.Equal(t, "6500.00", result.Regular.Price)
	assert.False(t, result.Regular.EligibleForUpgrade)
	assert.Nil(t, result.Premium)

	assert.Equal(t, 1, f.registry.Len())
	assert.Equal(t, 1, f.repo.saves)
}

func TestCreateRegularMemberUseCase_Execute_DefaultPlan(t *testing.T) {
	f := newFixture()
	uc := NewCreateRegularMemberUseCase(f.registry, f.repo, f.log)

	result, err := uc.Execute(context.Background(), CreateRegularMemberCommand{ProfileInput: testProfile("1")})

	require.NoError(t, err)
	assert.Equal(t, "Basic", result.Regular.Plan)
}

func TestCreateRegularMemberUseCase_Execute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		modify func(cmd *CreateRegularMemberCommand)
	}{
		{"missing id", func(cmd *CreateRegularMemberCommand) { cmd.ID = "" }},
		{"non-numeric id", func(cmd *CreateRegularMemberCommand) { cmd.ID = "A1" }},
		{"missing name", func(cmd *CreateRegularMemberCommand) { cmd.Name = "" }},
		{"name with delimiter", func(cmd *CreateRegularMemberCommand) { cmd.Name = "Sita|Sharma" }},
		{"location with line break", func(cmd *CreateRegularMemberCommand) { cmd.Location = "a\nb" }},
		{"unknown gender", func(cmd *CreateRegularMemberCommand) { cmd.Gender = "robot" }},
		{"negative paid amount", func(cmd *CreateRegularMemberCommand) { cmd.PaidAmount = "-5" }},
		{"non-numeric paid amount", func(cmd *CreateRegularMemberCommand) { cmd.PaidAmount = "lots" }},
		{"bad date of birth", func(cmd *CreateRegularMemberCommand) { cmd.DOB = "31-February-2000" }},
		{"unknown plan", func(cmd *CreateRegularMemberCommand) { cmd.Plan = "Platinum" }},
		{"plan with comma", func(cmd *CreateRegularMemberCommand) { cmd.Plan = "basic,1" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			uc := NewCreateRegularMemberUseCase(f.registry, f.repo, f.log)

			cmd := CreateRegularMemberCommand{ProfileInput: testProfile("1"), Plan: "Basic"}
			tt.modify(&cmd)

			result, err := uc.Execute(context.Background(), cmd)

			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, errors.IsValidationError(err), "got %v", err)
			assert.Equal(t, errors.ExitCodeValidation, errors.ExitCode(err))
			assert.Zero(t, f.registry.Len(), "nothing is added on validation failure")
			assert.Zero(t, f.repo.saves)
		})
	}
}

func TestCreateMember_DuplicateID(t *testing.T) {
	f := newFixture()
	f.addRegular(t, "1", "")

	profile := testProfile("1")
	profile.Name = "Someone Else"
	_, err := NewCreatePremiumMemberUseCase(f.registry, f.repo, f.log).Execute(context.Background(),
		CreatePremiumMemberCommand{ProfileInput: profile, PersonalTrainer: "Alex"})

	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
	assert.ErrorIs(t, err, member.ErrDuplicateID)

	m, findErr := f.registry.Find("1")
	require.NoError(t, findErr)
	assert.Equal(t, "Sita Sharma", m.Name(), "registry unchanged")
	assert.Equal(t, 1, f.repo.saves)
}

func TestCreatePremiumMemberUseCase_Execute(t *testing.T) {
	tests := []struct {
		name          string
		paid          string
		trainer       string
		wantErr       bool
		wantPaid      string
		wantRemaining string
		wantFull      bool
	}{
		{name: "no initial payment", trainer: "Alex", wantPaid: "0.00", wantRemaining: "50000.00"},
		{name: "partial initial payment", paid: "12000", trainer: "Alex", wantPaid: "12000.00", wantRemaining: "38000.00"},
		{name: "full initial payment", paid: "50000.00", trainer: "Alex", wantPaid: "50000.00", wantRemaining: "0.00", wantFull: true},
		{name: "initial payment above charge", paid: "50000.01", trainer: "Alex", wantErr: true},
		{name: "missing trainer", trainer: "", wantErr: true},
		{name: "trainer with comma", trainer: "Alex,Sam", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			uc := NewCreatePremiumMemberUseCase(f.registry, f.repo, f.log)

			profile := testProfile("2")
			profile.PaidAmount = tt.paid
			result, err := uc.Execute(context.Background(), CreatePremiumMemberCommand{ProfileInput: profile, PersonalTrainer: tt.trainer})

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsValidationError(err), "got %v", err)
				assert.Zero(t, f.registry.Len())
				return
			}

			require.NoError(t, err)
			require.NotNil(t, result.Premium)
			assert.Equal(t, "Premium", result.Type)
			assert.Equal(t, tt.wantPaid, result.Premium.PaidAmount)
			assert.Equal(t, tt.wantRemaining, result.Premium.RemainingAmount)
			assert.Equal(t, tt.wantFull, result.Premium.FullPayment)
			assert.Equal(t, "50000.00", result.Fee)
		})
	}
}

func TestCreateMember_SaveFailureKeepsMember(t *testing.T) {
	f := newFixture()
	f.repo.SaveFunc = func(ctx context.Context, registry *member.Registry) error {
		return stderrors.New("disk full")
	}

	_, err := NewCreateRegularMemberUseCase(f.registry, f.repo, f.log).Execute(context.Background(),
		CreateRegularMemberCommand{ProfileInput: testProfile("1")})

	require.Error(t, err)
	assert.Equal(t, errors.ExitCodeInternal, errors.ExitCode(err))
	assert.Contains(t, err.Error(), "disk full")
	assert.True(t, f.registry.Contains("1"))
}
