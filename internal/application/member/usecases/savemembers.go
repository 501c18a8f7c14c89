package usecases

import (
	"context"

	"github.com/orris-inc/gymdesk/internal/domain/member"
	"github.com/orris-inc/gymdesk/internal/shared/logger"
)

type SaveMembersResult struct {
	Saved int
}

// SaveMembersUseCase writes the registry as it stands, rewriting older
// record layouts into the current one.
type SaveMembersUseCase struct {
	registry   *member.Registry
	memberRepo member.Repository
	logger     logger.Interface
}

func NewSaveMembersUseCase(
	registry *member.Registry,
	memberRepo member.Repository,
	logger logger.Interface,
) *SaveMembersUseCase {
	return &SaveMembersUseCase{
		registry:   registry,
		memberRepo: memberRepo,
		logger:     logger,
	}
}

func (uc *SaveMembersUseCase) Execute(ctx context.Context) (*SaveMembersResult, error) {
	if err := saveRegistry(ctx, uc.memberRepo, uc.registry, uc.logger, ""); err != nil {
		return nil, err
	}

	uc.logger.Infow("members saved", "count", uc.registry.Len())
	return &SaveMembersResult{Saved: uc.registry.Len()}, nil
}
