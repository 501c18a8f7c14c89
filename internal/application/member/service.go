// Package member wires the member use cases around one registry and its
// store.
package member

import (
	"context"

	"github.com/orris-inc/gymdesk/internal/application/member/usecases"
	"github.com/orris-inc/gymdesk/internal/domain/member"
	"github.com/orris-inc/gymdesk/internal/shared/logger"
)

// Service exposes every member operation over a shared registry. It is not
// safe for concurrent use.
type Service struct {
	registry *member.Registry
	logger   logger.Interface

	CreateRegular  usecases.CreateRegularMemberExecutor
	CreatePremium  usecases.CreatePremiumMemberExecutor
	Activate       usecases.ActivateMembershipExecutor
	Deactivate     usecases.DeactivateMembershipExecutor
	MarkAttendance usecases.MarkAttendanceExecutor
	UpgradePlan    usecases.UpgradePlanExecutor
	PayDueAmount   usecases.PayDueAmountExecutor
	Discount       usecases.CalculateDiscountExecutor
	Revert         usecases.RevertMemberExecutor
	List           usecases.ListMembersExecutor
	Get            usecases.GetMemberExecutor
	Load           usecases.LoadMembersExecutor
	Save           usecases.SaveMembersExecutor
}

// NewService creates a service over an empty registry. Call Open to read
// the store.
func NewService(memberRepo member.Repository, logger logger.Interface) *Service {
	registry := member.NewRegistry()

	return &Service{
		registry: registry,
		logger:   logger,

		CreateRegular:  usecases.NewCreateRegularMemberUseCase(registry, memberRepo, logger),
		CreatePremium:  usecases.NewCreatePremiumMemberUseCase(registry, memberRepo, logger),
		Activate:       usecases.NewActivateMembershipUseCase(registry, memberRepo, logger),
		Deactivate:     usecases.NewDeactivateMembershipUseCase(registry, memberRepo, logger),
		MarkAttendance: usecases.NewMarkAttendanceUseCase(registry, memberRepo, logger),
		UpgradePlan:    usecases.NewUpgradePlanUseCase(registry, memberRepo, logger),
		PayDueAmount:   usecases.NewPayDueAmountUseCase(registry, memberRepo, logger),
		Discount:       usecases.NewCalculateDiscountUseCase(registry, memberRepo, logger),
		Revert:         usecases.NewRevertMemberUseCase(registry, memberRepo, logger),
		List:           usecases.NewListMembersUseCase(registry, logger),
		Get:            usecases.NewGetMemberUseCase(registry, logger),
		Load:           usecases.NewLoadMembersUseCase(registry, memberRepo, logger),
		Save:           usecases.NewSaveMembersUseCase(registry, memberRepo, logger),
	}
}

// Open loads the store into the registry.
func (s *Service) Open(ctx context.Context) (*usecases.LoadMembersResult, error) {
	result, err := s.Load.Execute(ctx)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("member service ready", "source", result.Source, "members", s.registry.Len())
	return result, nil
}

// NextID suggests an unused member id.
func (s *Service) NextID() string {
	return s.registry.NextID()
}
