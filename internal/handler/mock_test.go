package handler

import (
	"context"

	"github.com/google/uuid"

	"workspace-listing-api/internal/domain"
	"workspace-listing-api/internal/dto"
)

// mockEngagementService is a func-field mock of service.EngagementService
type mockEngagementService struct {
	toggleLikeFunc    func(ctx context.Context, subjectType domain.SubjectType, subjectID uuid.UUID, visitorID string) (*dto.EngagementStatusResponse, error)
	getLikeStatusFunc func(ctx context.Context, subjectType domain.SubjectType, subjectID uuid.UUID, visitorID string) (*dto.EngagementStatusResponse, error)
	createCommentFunc func(ctx context.Context, subjectType domain.SubjectType, subjectID uuid.UUID, visitorID string, req *dto.CreateCommentRequest) (*dto.CommentResponse, error)
	getCommentsFunc   func(ctx context.Context, subjectType domain.SubjectType, subjectID uuid.UUID) (*dto.CommentListResponse, error)
}

func (m *mockEngagementService) ToggleLike(ctx context.Context, subjectType domain.SubjectType, subjectID uuid.UUID, visitorID string) (*dto.EngagementStatusResponse, error) {
	if m.toggleLikeFunc != nil {
		return m.toggleLikeFunc(ctx, subjectType, subjectID, visitorID)
	}
	return &dto.EngagementStatusResponse{}, nil
}

func (m *mockEngagementService) GetLikeStatus(ctx context.Context, subjectType domain.SubjectType, subjectID uuid.UUID, visitorID string) (*dto.EngagementStatusResponse, error) {
	if m.getLikeStatusFunc != nil {
		return m.getLikeStatusFunc(ctx, subjectType, subjectID, visitorID)
	}
	return &dto.EngagementStatusResponse{}, nil
}

func (m *mockEngagementService) CreateComment(ctx context.Context, subjectType domain.SubjectType, subjectID uuid.UUID, visitorID string, req *dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	if m.createCommentFunc != nil {
		return m.createCommentFunc(ctx, subjectType, subjectID, visitorID, req)
	}
	return &dto.CommentResponse{}, nil
}

func (m *mockEngagementService) GetComments(ctx context.Context, subjectType domain.SubjectType, subjectID uuid.UUID) (*dto.CommentListResponse, error) {
	if m.getCommentsFunc != nil {
		return m.getCommentsFunc(ctx, subjectType, subjectID)
	}
	return &dto.CommentListResponse{}, nil
}

// mockListingService is a func-field mock of service.ListingService
type mockListingService struct {
	listWorkspacesFunc   func(ctx context.Context, locationID uuid.UUID, query *dto.WorkspaceListQuery) (*dto.WorkspaceListResponse, error)
	listStartupPostsFunc func(ctx context.Context, page, limit int, all bool) (*dto.StartupPostListResponse, error)
}

func (m *mockListingService) ListWorkspaces(ctx context.Context, locationID uuid.UUID, query *dto.WorkspaceListQuery) (*dto.WorkspaceListResponse, error) {
	if m.listWorkspacesFunc != nil {
		return m.listWorkspacesFunc(ctx, locationID, query)
	}
	return &dto.WorkspaceListResponse{}, nil
}

func (m *mockListingService) ListStartupPosts(ctx context.Context, page, limit int, all bool) (*dto.StartupPostListResponse, error) {
	if m.listStartupPostsFunc != nil {
		return m.listStartupPostsFunc(ctx, page, limit, all)
	}
	return &dto.StartupPostListResponse{}, nil
}
