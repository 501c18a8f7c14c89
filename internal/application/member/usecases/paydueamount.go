package usecases

import (
	"context"

	"github.com/orris-inc/gymdesk/internal/domain/member"
	"github.com/orris-inc/gymdesk/internal/shared/errors"
	"github.com/orris-inc/gymdesk/internal/shared/logger"
	"github.com/orris-inc/gymdesk/internal/shared/utils"
)

type PayDueAmountCommand struct {
	MemberID string `json:"member_id" validate:"required,digits"`
	Amount   string `json:"amount" validate:"required"`
}

type PayDueAmountResult struct {
	MemberID  string
	Amount    string
	TotalPaid string
	Remaining string
	Completed bool
}

type PayDueAmountUseCase struct {
	registry   *member.Registry
	memberRepo member.Repository
	logger     logger.Interface
}

func NewPayDueAmountUseCase(
	registry *member.Registry,
	memberRepo member.Repository,
	logger logger.Interface,
) *PayDueAmountUseCase {
	return &PayDueAmountUseCase{
		registry:   registry,
		memberRepo: memberRepo,
		logger:     logger,
	}
}

func (uc *PayDueAmountUseCase) Execute(ctx context.Context, cmd PayDueAmountCommand) (*PayDueAmountResult, error) {
	uc.logger.Infow("executing pay due amount use case", "member_id", cmd.MemberID, "amount", cmd.Amount)

	if err := utils.ValidateStruct(cmd); err != nil {
		return nil, err
	}

	amount, err := parseAmount("amount", cmd.Amount)
	if err != nil {
		return nil, err
	}
	if !amount.IsPositive() {
		return nil, errors.NewValidationError("amount must be greater than 0", cmd.Amount)
	}

	m, err := findMember(uc.registry, cmd.MemberID)
	if err != nil {
		uc.logger.Warnw("member not found", "member_id", cmd.MemberID)
		return nil, err
	}

	payment, err := m.PayDueAmount(amount)
	if err != nil {
		uc.logger.Warnw("payment rejected", "member_id", m.ID(), "amount", amount, "error", err)
		return nil, toAppError(err)
	}

	if err := saveRegistry(ctx, uc.memberRepo, uc.registry, uc.logger, m.ID()); err != nil {
		return nil, err
	}

	uc.logger.Infow("payment accepted",
		"member_id", m.ID(),
		"amount", payment.Amount,
		"total_paid", payment.TotalPaid,
		"completed", payment.Completed,
	)
	return &PayDueAmountResult{
		MemberID:  m.ID(),
		Amount:    payment.Amount.String(),
		TotalPaid: payment.TotalPaid.String(),
		Remaining: payment.Remaining.String(),
		Completed: payment.Completed,
	}, nil
}
