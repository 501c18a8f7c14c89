package usecases

import (
	"context"

	"github.com/orris-inc/gymdesk/internal/domain/member"
	"github.com/orris-inc/gymdesk/internal/shared/logger"
	"github.com/orris-inc/gymdesk/internal/shared/utils"
)

type MarkAttendanceCommand struct {
	MemberID string
}

type MarkAttendanceResult struct {
	MemberID      string
	Recorded      bool
	Attendance    int
	LoyaltyPoints int64
	// Only meaningful for regular members.
	EligibleForUpgrade bool
}

type MarkAttendanceUseCase struct {
	registry   *member.Registry
	memberRepo member.Repository
	logger     logger.Interface
}

func NewMarkAttendanceUseCase(
	registry *member.Registry,
	memberRepo member.Repository,
	logger logger.Interface,
) *MarkAttendanceUseCase {
	return &MarkAttendanceUseCase{
		registry:   registry,
		memberRepo: memberRepo,
		logger:     logger,
	}
}

func (uc *MarkAttendanceUseCase) Execute(ctx context.Context, cmd MarkAttendanceCommand) (*MarkAttendanceResult, error) {
	uc.logger.Infow("executing mark attendance use case", "member_id", cmd.MemberID)

	if err := utils.ValidateID(cmd.MemberID); err != nil {
		return nil, err
	}

	m, err := findMember(uc.registry, cmd.MemberID)
	if err != nil {
		uc.logger.Warnw("member not found", "member_id", cmd.MemberID)
		return nil, err
	}

	recorded := m.MarkAttendance()
	result := &MarkAttendanceResult{
		MemberID:      m.ID(),
		Recorded:      recorded,
		Attendance:    m.Attendance(),
		LoyaltyPoints: m.LoyaltyPoints(),
	}
	if r := m.Regular(); r != nil {
		result.EligibleForUpgrade = r.EligibleForUpgrade()
	}

	if !recorded {
		uc.logger.Infow("attendance not recorded for inactive member", "member_id", m.ID())
		return result, nil
	}

	if err := saveRegistry(ctx, uc.memberRepo, uc.registry, uc.logger, m.ID()); err != nil {
		return nil, err
	}

	uc.logger.Infow("attendance recorded",
		"member_id", m.ID(),
		"attendance", m.Attendance(),
		"loyalty_points", m.LoyaltyPoints(),
	)
	return result, nil
}
