package usecases

import (
	"context"

	"github.com/orris-inc/gymdesk/internal/application/member/dto"
	"github.com/orris-inc/gymdesk/internal/domain/member"
	"github.com/orris-inc/gymdesk/internal/shared/logger"
	"github.com/orris-inc/gymdesk/internal/shared/utils"
)

type GetMemberQuery struct {
	MemberID string
}

type GetMemberUseCase struct {
	registry *member.Registry
	logger   logger.Interface
}

func NewGetMemberUseCase(
	registry *member.Registry,
	logger logger.Interface,
) *GetMemberUseCase {
	return &GetMemberUseCase{
		registry: registry,
		logger:   logger,
	}
}

func (uc *GetMemberUseCase) Execute(ctx context.Context, query GetMemberQuery) (*dto.MemberDTO, error) {
	if err := utils.ValidateID(query.MemberID); err != nil {
		return nil, err
	}

	m, err := findMember(uc.registry, query.MemberID)
	if err != nil {
		uc.logger.Debugw("member not found", "member_id", query.MemberID)
		return nil, err
	}
	return dto.ToMemberDTO(m), nil
}
