package usecases

import (
	"context"

	"github.com/orris-inc/gymdesk/internal/application/member/dto"
	"github.com/orris-inc/gymdesk/internal/domain/member"
	"github.com/orris-inc/gymdesk/internal/shared/logger"
	"github.com/orris-inc/gymdesk/internal/shared/utils"
)

type CreatePremiumMemberCommand struct {
	ProfileInput
	PersonalTrainer string `json:"personal_trainer" validate:"required,max=100,storable,excludes=0x2C"`
}

type CreatePremiumMemberUseCase struct {
	registry   *member.Registry
	memberRepo member.Repository
	logger     logger.Interface
}

func NewCreatePremiumMemberUseCase(
	registry *member.Registry,
	memberRepo member.Repository,
	logger logger.Interface,
) *CreatePremiumMemberUseCase {
	return &CreatePremiumMemberUseCase{
		registry:   registry,
		memberRepo: memberRepo,
		logger:     logger,
	}
}

func (uc *CreatePremiumMemberUseCase) Execute(ctx context.Context, cmd CreatePremiumMemberCommand) (*dto.MemberDTO, error) {
	uc.logger.Infow("executing create premium member use case", "member_id", cmd.ID, "trainer", cmd.PersonalTrainer,
		"email", utils.MaskEmail(cmd.Email), "phone", utils.MaskPhone(cmd.Phone))

	if err := utils.ValidateStruct(cmd); err != nil {
		uc.logger.Warnw("invalid create premium member command", "error", err)
		return nil, err
	}

	profile, err := cmd.toProfile()
	if err != nil {
		return nil, err
	}

	m, err := member.NewPremiumMember(member.PremiumParams{Profile: profile, PersonalTrainer: cmd.PersonalTrainer})
	if err != nil {
		uc.logger.Warnw("failed to create premium member", "member_id", cmd.ID, "error", err)
		return nil, toAppError(err)
	}

	if err := uc.registry.Add(m); err != nil {
		uc.logger.Warnw("failed to add premium member", "member_id", cmd.ID, "error", err)
		return nil, toAppError(err)
	}

	if err := saveRegistry(ctx, uc.memberRepo, uc.registry, uc.logger, m.ID()); err != nil {
		return nil, err
	}

	uc.logger.Infow("premium member created",
		"member_id", m.ID(),
		"paid", m.Premium().PaidAmount(),
		"full_payment", m.Premium().IsFullPayment(),
	)
	return dto.ToMemberDTO(m), nil
}
