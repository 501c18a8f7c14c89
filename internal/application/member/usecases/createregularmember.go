package usecases

import (
	"context"

	"github.com/orris-inc/gymdesk/internal/application/member/dto"
	"github.com/orris-inc/gymdesk/internal/domain/member"
	vo "github.com/orris-inc/gymdesk/internal/domain/member/valueobjects"
	"github.com/orris-inc/gymdesk/internal/shared/errors"
	"github.com/orris-inc/gymdesk/internal/shared/logger"
	"github.com/orris-inc/gymdesk/internal/shared/utils"
)

// ProfileInput carries the fields common to both member variants.
type ProfileInput struct {
	ID                  string `json:"id" validate:"required,digits"`
	Name                string `json:"name" validate:"required,max=100,storable"`
	Location            string `json:"location" validate:"max=200,storable"`
	Phone               string `json:"phone" validate:"max=30,storable"`
	Email               string `json:"email" validate:"max=200,storable"`
	Gender              string `json:"gender" validate:"required"`
	DOB                 string `json:"dob" validate:"required"`
	MembershipStartDate string `json:"membership_start_date" validate:"required"`
	ReferralSource      string `json:"referral_source" validate:"max=200,storable"`
	PaidAmount          string `json:"paid_amount"`
}

func (in ProfileInput) toProfile() (member.Profile, error) {
	gender, err := vo.ParseGender(in.Gender)
	if err != nil {
		return member.Profile{}, errors.NewValidationError("gender must be Male or Female", in.Gender)
	}
	paid, err := parseAmount("paid_amount", in.PaidAmount)
	if err != nil {
		return member.Profile{}, err
	}

	return member.Profile{
		ID:                  in.ID,
		Name:                in.Name,
		Location:            in.Location,
		Phone:               in.Phone,
		Email:               in.Email,
		Gender:              gender,
		DOB:                 in.DOB,
		MembershipStartDate: in.MembershipStartDate,
		ReferralSource:      in.ReferralSource,
		PaidAmount:          paid,
	}, nil
}

type CreateRegularMemberCommand struct {
	ProfileInput
	Plan string `json:"plan" validate:"max=20,storable,excludes=0x2C"`
}

type CreateRegularMemberUseCase struct {
	registry   *member.Registry
	memberRepo member.Repository
	logger     logger.Interface
}

func NewCreateRegularMemberUseCase(
	registry *member.Registry,
	memberRepo member.Repository,
	logger logger.Interface,
) *CreateRegularMemberUseCase {
	return &CreateRegularMemberUseCase{
		registry:   registry,
		memberRepo: memberRepo,
		logger:     logger,
	}
}

func (uc *CreateRegularMemberUseCase) Execute(ctx context.Context, cmd CreateRegularMemberCommand) (*dto.MemberDTO, error) {
	uc.logger.Infow("executing create regular member use case", "member_id", cmd.ID, "plan", cmd.Plan,
		"email", utils.MaskEmail(cmd.Email), "phone", utils.MaskPhone(cmd.Phone))

	if err := utils.ValidateStruct(cmd); err != nil {
		uc.logger.Warnw("invalid create regular member command", "error", err)
		return nil, err
	}

	profile, err := cmd.toProfile()
	if err != nil {
		return nil, err
	}

	m, err := member.NewRegularMember(member.RegularParams{Profile: profile, Plan: cmd.Plan})
	if err != nil {
		uc.logger.Warnw("failed to create regular member", "member_id", cmd.ID, "error", err)
		return nil, toAppError(err)
	}

	if err := uc.registry.Add(m); err != nil {
		uc.logger.Warnw("failed to add regular member", "member_id", cmd.ID, "error", err)
		return nil, toAppError(err)
	}

	if err := saveRegistry(ctx, uc.memberRepo, uc.registry, uc.logger, m.ID()); err != nil {
		return nil, err
	}

	uc.logger.Infow("regular member created", "member_id", m.ID(), "plan", m.Regular().Plan())
	return dto.ToMemberDTO(m), nil
}
