package usecases

import (
	"context"
	"strings"

	"github.com/orris-inc/gymdesk/internal/application/member/dto"
	"github.com/orris-inc/gymdesk/internal/domain/member"
	vo "github.com/orris-inc/gymdesk/internal/domain/member/valueobjects"
	"github.com/orris-inc/gymdesk/internal/shared/errors"
	"github.com/orris-inc/gymdesk/internal/shared/logger"
	"github.com/orris-inc/gymdesk/internal/shared/utils"
)

type ListMembersQuery struct {
	// Type filters by variant ("regular" or "premium"); empty lists all.
	Type       string
	ActiveOnly bool
	// Page and PageSize select a window of the filtered members. A zero
	// PageSize returns every member.
	Page     int
	PageSize int
}

type ListMembersResult struct {
	Members []*dto.MemberDTO
	// Total counts the members matching the filters, before paging.
	Total      int
	Page       int
	PageSize   int
	TotalPages int
}

type ListMembersUseCase struct {
	registry *member.Registry
	logger   logger.Interface
}

func NewListMembersUseCase(
	registry *member.Registry,
	logger logger.Interface,
) *ListMembersUseCase {
	return &ListMembersUseCase{
		registry: registry,
		logger:   logger,
	}
}

func (uc *ListMembersUseCase) Execute(ctx context.Context, query ListMembersQuery) (*ListMembersResult, error) {
	var memberType vo.MemberType
	if query.Type != "" {
		t, err := vo.ParseMemberType(strings.ToUpper(strings.TrimSpace(query.Type)))
		if err != nil {
			return nil, errors.NewValidationError("type must be regular or premium", query.Type)
		}
		memberType = t
	}

	members := make([]*member.Member, 0, uc.registry.Len())
	for _, m := range uc.registry.List() {
		if memberType != "" && m.Type() != memberType {
			continue
		}
		if query.ActiveOnly && !m.IsActive() {
			continue
		}
		members = append(members, m)
	}

	matched := len(members)
	paging := utils.ValidatePagination(query.Page, query.PageSize)
	start, end := paging.Bounds(matched)
	members = members[start:end]

	uc.logger.Debugw("members listed", "total", uc.registry.Len(), "matched", matched, "returned", len(members))
	return &ListMembersResult{
		Members:    dto.ToMemberDTOs(members),
		Total:      matched,
		Page:       paging.Page,
		PageSize:   paging.PageSize,
		TotalPages: utils.TotalPages(matched, paging.PageSize),
	}, nil
}
