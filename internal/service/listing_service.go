package service

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"workspace-listing-api/internal/domain"
	"workspace-listing-api/internal/dto"
	"workspace-listing-api/internal/repository"
	"workspace-listing-api/internal/response"
)

// ListingService defines the interface for ranked listing logic
type ListingService interface {
	ListWorkspaces(ctx context.Context, locationID uuid.UUID, query *dto.WorkspaceListQuery) (*dto.WorkspaceListResponse, error)
	ListStartupPosts(ctx context.Context, page, limit int, all bool) (*dto.StartupPostListResponse, error)
}

// listingServiceImpl is the implementation of ListingService
type listingServiceImpl struct {
	workspaceRepo   repository.WorkspaceRepository
	startupPostRepo repository.StartupPostRepository
	locationRepo    repository.LocationRepository
	engagementRepo  repository.EngagementRepository
	logger          *zap.Logger
}

// NewListingService creates a new instance of ListingService
func NewListingService(
	workspaceRepo repository.WorkspaceRepository,
	startupPostRepo repository.StartupPostRepository,
	locationRepo repository.LocationRepository,
	engagementRepo repository.EngagementRepository,
	logger *zap.Logger,
) ListingService {
	return &listingServiceImpl{
		workspaceRepo:   workspaceRepo,
		startupPostRepo: startupPostRepo,
		locationRepo:    locationRepo,
		engagementRepo:  engagementRepo,
		logger:          logger,
	}
}

// ListWorkspaces returns the filtered, ranked, paginated workspaces of a
// location. The stages run in order: compose filter → aggregate like counts
// → rank → paginate. Like counts are aggregated fresh on every request; two
// requests racing a toggle may observe different counts, which is accepted.
func (s *listingServiceImpl) ListWorkspaces(ctx context.Context, locationID uuid.UUID, query *dto.WorkspaceListQuery) (*dto.WorkspaceListResponse, error) {
	// Verify location exists
	if _, err := s.locationRepo.FindByID(ctx, locationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Location not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to verify location", err.Error())
	}

	workspaces, err := s.workspaceRepo.FindByLocationID(ctx, locationID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch workspaces", err.Error())
	}

	filter := ComposeWorkspaceFilter(query.Categories, query.DropIn, query.MultipleLocations)
	matched := filterWorkspaces(workspaces, filter)

	likeCounts, err := s.engagementRepo.CountLikesBySubjects(ctx, domain.SubjectTypeWorkspace, workspaceIDs(matched))
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to aggregate like counts", err.Error())
	}

	rankWorkspaces(matched, likeCounts)

	page, pagination := dto.Paginate(matched, query.Page, query.Limit, query.All)

	responses := make([]dto.WorkspaceResponse, len(page))
	for i, workspace := range page {
		responses[i] = s.toWorkspaceResponse(workspace, likeCounts[workspace.ID])
	}

	return &dto.WorkspaceListResponse{
		Workspaces: responses,
		Pagination: pagination,
	}, nil
}

// ListStartupPosts returns the startup-board feed, newest first, with
// per-post like counts and the same pagination contract as workspaces
func (s *listingServiceImpl) ListStartupPosts(ctx context.Context, page, limit int, all bool) (*dto.StartupPostListResponse, error) {
	posts, err := s.startupPostRepo.FindAll(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch startup posts", err.Error())
	}

	ids := make([]uuid.UUID, len(posts))
	for i, post := range posts {
		ids[i] = post.ID
	}

	likeCounts, err := s.engagementRepo.CountLikesBySubjects(ctx, domain.SubjectTypeStartupPost, ids)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to aggregate like counts", err.Error())
	}

	paged, pagination := dto.Paginate(posts, page, limit, all)

	responses := make([]dto.StartupPostResponse, len(paged))
	for i, post := range paged {
		responses[i] = dto.StartupPostResponse{
			ID:            post.ID,
			Title:         post.Title,
			Content:       post.Content,
			CompanyName:   post.CompanyName,
			IsRecommended: post.IsRecommended,
			LikeCount:     likeCounts[post.ID],
			CreatedAt:     post.CreatedAt,
		}
	}

	return &dto.StartupPostListResponse{
		Posts:      responses,
		Pagination: pagination,
	}, nil
}

// workspaceIDs extracts the IDs of a workspace slice
func workspaceIDs(workspaces []*domain.Workspace) []uuid.UUID {
	ids := make([]uuid.UUID, len(workspaces))
	for i, workspace := range workspaces {
		ids[i] = workspace.ID
	}
	return ids
}

// toWorkspaceResponse converts domain.Workspace to dto.WorkspaceResponse
func (s *listingServiceImpl) toWorkspaceResponse(workspace *domain.Workspace, likeCount int64) dto.WorkspaceResponse {
	var amenities map[string]interface{}
	if len(workspace.Amenities) > 0 {
		if err := json.Unmarshal(workspace.Amenities, &amenities); err != nil {
			s.logger.Warn("Failed to unmarshal workspace amenities",
				zap.String("workspace_id", workspace.ID.String()),
				zap.Error(err))
		}
	}

	return dto.WorkspaceResponse{
		ID:                   workspace.ID,
		LocationID:           workspace.LocationID,
		Name:                 workspace.Name,
		Description:          workspace.Description,
		Address:              workspace.Address,
		Categories:           categoriesOf(workspace),
		HasDropIn:            workspace.HasDropIn,
		HasMultipleLocations: workspace.HasMultipleLocations,
		IsRecommended:        workspace.IsRecommended,
		Amenities:            amenities,
		LikeCount:            likeCount,
		CreatedAt:            workspace.CreatedAt,
	}
}
