package usecases

import (
	"context"

	"github.com/orris-inc/gymdesk/internal/application/member/dto"
	"github.com/orris-inc/gymdesk/internal/domain/member"
	"github.com/orris-inc/gymdesk/internal/shared/errors"
	"github.com/orris-inc/gymdesk/internal/shared/logger"
)

type LoadMembersResult struct {
	Source  string
	Loaded  int
	Skipped []dto.SkippedRecordDTO
}

// LoadMembersUseCase replaces the in-memory registry with the stored members.
// On failure the registry is left as it was.
type LoadMembersUseCase struct {
	registry   *member.Registry
	memberRepo member.Repository
	logger     logger.Interface
}

func NewLoadMembersUseCase(
	registry *member.Registry,
	memberRepo member.Repository,
	logger logger.Interface,
) *LoadMembersUseCase {
	return &LoadMembersUseCase{
		registry:   registry,
		memberRepo: memberRepo,
		logger:     logger,
	}
}

func (uc *LoadMembersUseCase) Execute(ctx context.Context) (*LoadMembersResult, error) {
	loaded, report, err := uc.memberRepo.Load(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load members", "error", err)
		return nil, errors.NewInternalError("Failed to load members").WithCause(err)
	}

	uc.registry.ReplaceWith(loaded)

	if len(report.Skipped) > 0 {
		uc.logger.Warnw("some member records were skipped",
			"source", report.Source,
			"skipped", len(report.Skipped),
		)
	}

	return &LoadMembersResult{
		Source:  report.Source,
		Loaded:  report.Loaded,
		Skipped: dto.ToSkippedRecordDTOs(report.Skipped),
	}, nil
}
