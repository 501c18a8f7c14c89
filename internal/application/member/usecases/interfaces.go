package usecases

import (
	"context"

	"github.com/orris-inc/gymdesk/internal/application/member/dto"
)

type CreateRegularMemberExecutor interface {
	Execute(ctx context.Context, cmd CreateRegularMemberCommand) (*dto.MemberDTO, error)
}

type CreatePremiumMemberExecutor interface {
	Execute(ctx context.Context, cmd CreatePremiumMemberCommand) (*dto.MemberDTO, error)
}

type ActivateMembershipExecutor interface {
	Execute(ctx context.Context, cmd ActivateMembershipCommand) (*MembershipStatusResult, error)
}

type DeactivateMembershipExecutor interface {
	Execute(ctx context.Context, cmd DeactivateMembershipCommand) (*MembershipStatusResult, error)
}

type MarkAttendanceExecutor interface {
	Execute(ctx context.Context, cmd MarkAttendanceCommand) (*MarkAttendanceResult, error)
}

type UpgradePlanExecutor interface {
	Execute(ctx context.Context, cmd UpgradePlanCommand) (*UpgradePlanResult, error)
}

type PayDueAmountExecutor interface {
	Execute(ctx context.Context, cmd PayDueAmountCommand) (*PayDueAmountResult, error)
}

type CalculateDiscountExecutor interface {
	Execute(ctx context.Context, cmd CalculateDiscountCommand) (*CalculateDiscountResult, error)
}

type RevertMemberExecutor interface {
	Execute(ctx context.Context, cmd RevertMemberCommand) (*RevertMemberResult, error)
}

type ListMembersExecutor interface {
	Execute(ctx context.Context, query ListMembersQuery) (*ListMembersResult, error)
}

type GetMemberExecutor interface {
	Execute(ctx context.Context, query GetMemberQuery) (*dto.MemberDTO, error)
}

type LoadMembersExecutor interface {
	Execute(ctx context.Context) (*LoadMembersResult, error)
}

type SaveMembersExecutor interface {
	Execute(ctx context.Context) (*SaveMembersResult, error)
}
