package usecases

import (
	"context"
	"fmt"

	"github.com/orris-inc/gymdesk/internal/application/member/dto"
	"github.com/orris-inc/gymdesk/internal/domain/member"
	vo "github.com/orris-inc/gymdesk/internal/domain/member/valueobjects"
	"github.com/orris-inc/gymdesk/internal/shared/errors"
	"github.com/orris-inc/gymdesk/internal/shared/logger"
	"github.com/orris-inc/gymdesk/internal/shared/utils"
)

// RevertMemberCommand removes a member of the given type. Type guards
// against reverting a premium member through the regular flow and back.
type RevertMemberCommand struct {
	MemberID string        `json:"member_id" validate:"required,digits"`
	Type     vo.MemberType `json:"type" validate:"required"`
	Reason   string        `json:"reason" validate:"required,max=500"`
}

type RevertMemberResult struct {
	// Member is the reset state at the time of removal.
	Member *dto.MemberDTO
	Reason string
}

type RevertMemberUseCase struct {
	registry   *member.Registry
	memberRepo member.Repository
	logger     logger.Interface
}

func NewRevertMemberUseCase(
	registry *member.Registry,
	memberRepo member.Repository,
	logger logger.Interface,
) *RevertMemberUseCase {
	return &RevertMemberUseCase{
		registry:   registry,
		memberRepo: memberRepo,
		logger:     logger,
	}
}

func (uc *RevertMemberUseCase) Execute(ctx context.Context, cmd RevertMemberCommand) (*RevertMemberResult, error) {
	uc.logger.Infow("executing revert member use case", "member_id", cmd.MemberID, "type", cmd.Type)

	if err := utils.ValidateStruct(cmd); err != nil {
		return nil, err
	}
	if !cmd.Type.IsValid() {
		return nil, errors.NewValidationError("invalid member type", cmd.Type.String())
	}

	m, err := findMember(uc.registry, cmd.MemberID)
	if err != nil {
		uc.logger.Warnw("member not found", "member_id", cmd.MemberID)
		return nil, err
	}
	if m.Type() != cmd.Type {
		return nil, toAppError(fmt.Errorf("%w: member %s is %s, not %s",
			member.ErrMemberTypeMismatch, m.ID(), m.Type().Label(), cmd.Type.Label()))
	}

	m.Revert(cmd.Reason)
	if _, err := uc.registry.Remove(m.ID()); err != nil {
		return nil, toAppError(err)
	}

	if err := saveRegistry(ctx, uc.memberRepo, uc.registry, uc.logger, m.ID()); err != nil {
		return nil, err
	}

	uc.logger.Infow("member reverted and removed", "member_id", m.ID(), "reason", cmd.Reason)
	return &RevertMemberResult{
		Member: dto.ToMemberDTO(m),
		Reason: cmd.Reason,
	}, nil
}
