package usecases

import (
	"context"

	"github.com/orris-inc/gymdesk/internal/domain/member"
	vo "github.com/orris-inc/gymdesk/internal/domain/member/valueobjects"
	"github.com/orris-inc/gymdesk/internal/shared/errors"
	"github.com/orris-inc/gymdesk/internal/shared/logger"
)

// saveRegistry writes the registry after a successful mutation. The
// mutation is kept in memory when the write fails.
func saveRegistry(ctx context.Context, repo member.Repository, registry *member.Registry, log logger.Interface, memberID string) error {
	if err := repo.Save(ctx, registry); err != nil {
		log.Errorw("failed to save members", "member_id", memberID, "error", err)
		return errors.NewInternalError("Failed to save members").WithCause(err)
	}
	return nil
}

func findMember(registry *member.Registry, id string) (*member.Member, error) {
	m, err := registry.Find(id)
	if err != nil {
		return nil, toAppError(err)
	}
	return m, nil
}

// parseAmount reads an optional non-negative amount; empty means zero.
func parseAmount(field, value string) (vo.Money, error) {
	if value == "" {
		return vo.Money{}, nil
	}
	amount, err := vo.ParseMoney(value)
	if err != nil {
		return vo.Money{}, errors.NewValidationError(field+" must be a number", value)
	}
	if amount.IsNegative() {
		return vo.Money{}, errors.NewValidationError(field+" cannot be negative", value)
	}
	return amount, nil
}
