package usecases

import (
	"context"

	"github.com/orris-inc/gymdesk/internal/domain/member"
	"github.com/orris-inc/gymdesk/internal/shared/logger"
	"github.com/orris-inc/gymdesk/internal/shared/utils"
)

type DeactivateMembershipCommand struct {
	MemberID string
}

type DeactivateMembershipUseCase struct {
	registry   *member.Registry
	memberRepo member.Repository
	logger     logger.Interface
}

func NewDeactivateMembershipUseCase(
	registry *member.Registry,
	memberRepo member.Repository,
	logger logger.Interface,
) *DeactivateMembershipUseCase {
	return &DeactivateMembershipUseCase{
		registry:   registry,
		memberRepo: memberRepo,
		logger:     logger,
	}
}

func (uc *DeactivateMembershipUseCase) Execute(ctx context.Context, cmd DeactivateMembershipCommand) (*MembershipStatusResult, error) {
	uc.logger.Infow("executing deactivate membership use case", "member_id", cmd.MemberID)

	if err := utils.ValidateID(cmd.MemberID); err != nil {
		return nil, err
	}

	m, err := findMember(uc.registry, cmd.MemberID)
	if err != nil {
		uc.logger.Warnw("member not found", "member_id", cmd.MemberID)
		return nil, err
	}

	if !m.Deactivate() {
		uc.logger.Infow("membership already inactive", "member_id", m.ID())
		return &MembershipStatusResult{MemberID: m.ID()}, nil
	}

	if err := saveRegistry(ctx, uc.memberRepo, uc.registry, uc.logger, m.ID()); err != nil {
		return nil, err
	}

	uc.logger.Infow("membership deactivated", "member_id", m.ID())
	return &MembershipStatusResult{MemberID: m.ID(), Changed: true}, nil
}
