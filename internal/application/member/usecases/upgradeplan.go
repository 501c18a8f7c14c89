package usecases

import (
	"context"

	"github.com/orris-inc/gymdesk/internal/domain/member"
	"github.com/orris-inc/gymdesk/internal/shared/logger"
	"github.com/orris-inc/gymdesk/internal/shared/utils"
)

type UpgradePlanCommand struct {
	MemberID string `json:"member_id" validate:"required,digits"`
	Plan     string `json:"plan" validate:"required"`
}

type UpgradePlanResult struct {
	MemberID     string
	PreviousPlan string
	Plan         string
	Price        string
}

type UpgradePlanUseCase struct {
	registry   *member.Registry
	memberRepo member.Repository
	logger     logger.Interface
}

func NewUpgradePlanUseCase(
	registry *member.Registry,
	memberRepo member.Repository,
	logger logger.Interface,
) *UpgradePlanUseCase {
	return &UpgradePlanUseCase{
		registry:   registry,
		memberRepo: memberRepo,
		logger:     logger,
	}
}

func (uc *UpgradePlanUseCase) Execute(ctx context.Context, cmd UpgradePlanCommand) (*UpgradePlanResult, error) {
	uc.logger.Infow("executing upgrade plan use case", "member_id", cmd.MemberID, "plan", cmd.Plan)

	if err := utils.ValidateStruct(cmd); err != nil {
		return nil, err
	}

	m, err := findMember(uc.registry, cmd.MemberID)
	if err != nil {
		uc.logger.Warnw("member not found", "member_id", cmd.MemberID)
		return nil, err
	}

	upgrade, err := m.UpgradePlan(cmd.Plan)
	if err != nil {
		uc.logger.Warnw("plan upgrade rejected", "member_id", m.ID(), "plan", cmd.Plan, "error", err)
		return nil, toAppError(err)
	}

	if err := saveRegistry(ctx, uc.memberRepo, uc.registry, uc.logger, m.ID()); err != nil {
		return nil, err
	}

	uc.logger.Infow("plan upgraded",
		"member_id", m.ID(),
		"from", upgrade.PreviousPlan,
		"to", upgrade.Plan,
	)
	return &UpgradePlanResult{
		MemberID:     m.ID(),
		PreviousPlan: upgrade.PreviousPlan.DisplayName(),
		Plan:         upgrade.Plan.DisplayName(),
		Price:        upgrade.Price.String(),
	}, nil
}
