package usecases

import (
	"context"

	"github.com/orris-inc/gymdesk/internal/domain/member"
	"github.com/orris-inc/gymdesk/internal/shared/logger"
	"github.com/orris-inc/gymdesk/internal/shared/utils"
)

type CalculateDiscountCommand struct {
	MemberID string
}

type CalculateDiscountResult struct {
	MemberID        string
	DiscountPercent int
	Discount        string
	Fee             string
}

type CalculateDiscountUseCase struct {
	registry   *member.Registry
	memberRepo member.Repository
	logger     logger.Interface
}

func NewCalculateDiscountUseCase(
	registry *member.Registry,
	memberRepo member.Repository,
	logger logger.Interface,
) *CalculateDiscountUseCase {
	return &CalculateDiscountUseCase{
		registry:   registry,
		memberRepo: memberRepo,
		logger:     logger,
	}
}

func (uc *CalculateDiscountUseCase) Execute(ctx context.Context, cmd CalculateDiscountCommand) (*CalculateDiscountResult, error) {
	uc.logger.Infow("executing calculate discount use case", "member_id", cmd.MemberID)

	if err := utils.ValidateID(cmd.MemberID); err != nil {
		return nil, err
	}

	m, err := findMember(uc.registry, cmd.MemberID)
	if err != nil {
		uc.logger.Warnw("member not found", "member_id", cmd.MemberID)
		return nil, err
	}

	discount, err := m.CalculateDiscount()
	if err != nil {
		uc.logger.Warnw("discount rejected", "member_id", m.ID(), "error", err)
		return nil, toAppError(err)
	}

	if err := saveRegistry(ctx, uc.memberRepo, uc.registry, uc.logger, m.ID()); err != nil {
		return nil, err
	}

	uc.logger.Infow("discount applied", "member_id", m.ID(), "discount", discount.Discount)
	return &CalculateDiscountResult{
		MemberID:        m.ID(),
		DiscountPercent: member.DiscountPercent(),
		Discount:        discount.Discount.String(),
		Fee:             discount.Fee.String(),
	}, nil
}
