package usecases

import (
	"context"

	"github.com/orris-inc/gymdesk/internal/domain/member"
	"github.com/orris-inc/gymdesk/internal/shared/logger"
	"github.com/orris-inc/gymdesk/internal/shared/utils"
)

type ActivateMembershipCommand struct {
	MemberID string
}

// MembershipStatusResult reports the active flag after the call. Changed
// is false when the member was already in the requested state.
type MembershipStatusResult struct {
	MemberID string
	Active   bool
	Changed  bool
}

type ActivateMembershipUseCase struct {
	registry   *member.Registry
	memberRepo member.Repository
	logger     logger.Interface
}

func NewActivateMembershipUseCase(
	registry *member.Registry,
	memberRepo member.Repository,
	logger logger.Interface,
) *ActivateMembershipUseCase {
	return &ActivateMembershipUseCase{
		registry:   registry,
		memberRepo: memberRepo,
		logger:     logger,
	}
}

func (uc *ActivateMembershipUseCase) Execute(ctx context.Context, cmd ActivateMembershipCommand) (*MembershipStatusResult, error) {
	uc.logger.Infow("executing activate membership use case", "member_id", cmd.MemberID)

	if err := utils.ValidateID(cmd.MemberID); err != nil {
		return nil, err
	}

	m, err := findMember(uc.registry, cmd.MemberID)
	if err != nil {
		uc.logger.Warnw("member not found", "member_id", cmd.MemberID)
		return nil, err
	}

	if !m.Activate() {
		uc.logger.Infow("membership already active", "member_id", m.ID())
		return &MembershipStatusResult{MemberID: m.ID(), Active: true}, nil
	}

	if err := saveRegistry(ctx, uc.memberRepo, uc.registry, uc.logger, m.ID()); err != nil {
		return nil, err
	}

	uc.logger.Infow("membership activated", "member_id", m.ID())
	return &MembershipStatusResult{MemberID: m.ID(), Active: true, Changed: true}, nil
}
