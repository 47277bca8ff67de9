package service

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"workspace-listing-api/internal/domain"
	"workspace-listing-api/internal/dto"
	"workspace-listing-api/internal/metrics"
	"workspace-listing-api/internal/repository"
	"workspace-listing-api/internal/response"
)

// maxCommentLength caps comment content, in characters
const maxCommentLength = 1000

// anonymousUserName is shown when a commenter leaves no display name
const anonymousUserName = "익명"

// EngagementService defines the interface for anonymous like/comment logic
type EngagementService interface {
	ToggleLike(ctx context.Context, subjectType domain.SubjectType, subjectID uuid.UUID, visitorID string) (*dto.EngagementStatusResponse, error)
	GetLikeStatus(ctx context.Context, subjectType domain.SubjectType, subjectID uuid.UUID, visitorID string) (*dto.EngagementStatusResponse, error)
	CreateComment(ctx context.Context, subjectType domain.SubjectType, subjectID uuid.UUID, visitorID string, req *dto.CreateCommentRequest) (*dto.CommentResponse, error)
	GetComments(ctx context.Context, subjectType domain.SubjectType, subjectID uuid.UUID) (*dto.CommentListResponse, error)
}

// engagementServiceImpl is the implementation of EngagementService
type engagementServiceImpl struct {
	engagementRepo  repository.EngagementRepository
	workspaceRepo   repository.WorkspaceRepository
	startupPostRepo repository.StartupPostRepository
	metrics         *metrics.Metrics
	logger          *zap.Logger
}

// NewEngagementService creates a new instance of EngagementService
func NewEngagementService(
	engagementRepo repository.EngagementRepository,
	workspaceRepo repository.WorkspaceRepository,
	startupPostRepo repository.StartupPostRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) EngagementService {
	return &engagementServiceImpl{
		engagementRepo:  engagementRepo,
		workspaceRepo:   workspaceRepo,
		startupPostRepo: startupPostRepo,
		metrics:         m,
		logger:          logger,
	}
}

// ToggleLike flips the like state for a (subject, visitor) pair and returns
// the resulting state. The operation is idempotent under concurrent
// double-submission: when a concurrent insert wins the race, the resulting
// unique-constraint violation is absorbed as "already liked" instead of
// surfacing as an error.
func (s *engagementServiceImpl) ToggleLike(ctx context.Context, subjectType domain.SubjectType, subjectID uuid.UUID, visitorID string) (*dto.EngagementStatusResponse, error) {
	if err := s.verifySubject(ctx, subjectType, subjectID); err != nil {
		return nil, err
	}

	_, err := s.engagementRepo.FindLike(ctx, subjectType, subjectID, visitorID)
	switch {
	case err == nil:
		// Row exists: this toggle is an unlike
		if err := s.engagementRepo.DeleteLike(ctx, subjectType, subjectID, visitorID); err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to remove like", err.Error())
		}
		if s.metrics != nil {
			s.metrics.IncrementLikeToggled()
		}
		return s.likeStatus(ctx, subjectType, subjectID, false)

	case errors.Is(err, gorm.ErrRecordNotFound):
		like := &domain.Like{
			SubjectType: subjectType,
			SubjectID:   subjectID,
			VisitorID:   visitorID,
		}
		if err := s.engagementRepo.CreateLike(ctx, like); err != nil {
			if !repository.IsDuplicateKey(err) {
				return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create like", err.Error())
			}
			// A concurrent toggle from the same visitor won the insert
			// race. The pair is in the liked state either way.
			s.logger.Debug("Concurrent like insert absorbed",
				zap.String("subject_id", subjectID.String()),
				zap.String("subject_type", string(subjectType)))
		}
		if s.metrics != nil {
			s.metrics.IncrementLikeToggled()
		}
		return s.likeStatus(ctx, subjectType, subjectID, true)

	default:
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to look up like", err.Error())
	}
}

// GetLikeStatus returns the like state for a (subject, visitor) pair without
// writing anything
func (s *engagementServiceImpl) GetLikeStatus(ctx context.Context, subjectType domain.SubjectType, subjectID uuid.UUID, visitorID string) (*dto.EngagementStatusResponse, error) {
	if err := s.verifySubject(ctx, subjectType, subjectID); err != nil {
		return nil, err
	}

	isLiked := true
	if _, err := s.engagementRepo.FindLike(ctx, subjectType, subjectID, visitorID); err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to look up like", err.Error())
		}
		isLiked = false
	}

	return s.likeStatus(ctx, subjectType, subjectID, isLiked)
}

// CreateComment validates and stores a comment on a subject
func (s *engagementServiceImpl) CreateComment(ctx context.Context, subjectType domain.SubjectType, subjectID uuid.UUID, visitorID string, req *dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	if err := s.verifySubject(ctx, subjectType, subjectID); err != nil {
		return nil, err
	}

	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, response.NewAppError(response.ErrCodeValidation, "Comment content is required", "content")
	}
	if utf8.RuneCountInString(content) > maxCommentLength {
		return nil, response.NewAppError(response.ErrCodeValidation, "Comment content must be at most 1000 characters", "content")
	}

	var userName *string
	if req.UserName != nil {
		if name := strings.TrimSpace(*req.UserName); name != "" {
			userName = &name
		}
	}

	comment := &domain.Comment{
		SubjectType: subjectType,
		SubjectID:   subjectID,
		VisitorID:   visitorID,
		UserName:    userName,
		Content:     content,
	}

	if err := s.engagementRepo.CreateComment(ctx, comment); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create comment", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementCommentCreated()
	}

	return toCommentResponse(comment), nil
}

// GetComments returns all comments for a subject, newest first
func (s *engagementServiceImpl) GetComments(ctx context.Context, subjectType domain.SubjectType, subjectID uuid.UUID) (*dto.CommentListResponse, error) {
	if err := s.verifySubject(ctx, subjectType, subjectID); err != nil {
		return nil, err
	}

	comments, err := s.engagementRepo.FindCommentsBySubject(ctx, subjectType, subjectID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch comments", err.Error())
	}

	responses := make([]dto.CommentResponse, len(comments))
	for i, comment := range comments {
		responses[i] = *toCommentResponse(comment)
	}

	return &dto.CommentListResponse{Comments: responses}, nil
}

// verifySubject checks that the engagement target exists
func (s *engagementServiceImpl) verifySubject(ctx context.Context, subjectType domain.SubjectType, subjectID uuid.UUID) error {
	var err error
	switch subjectType {
	case domain.SubjectTypeWorkspace:
		_, err = s.workspaceRepo.FindByID(ctx, subjectID)
	case domain.SubjectTypeStartupPost:
		_, err = s.startupPostRepo.FindByID(ctx, subjectID)
	default:
		return response.NewAppError(response.ErrCodeValidation, "Unknown subject type", string(subjectType))
	}

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewAppError(response.ErrCodeNotFound, "Subject not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to verify subject", err.Error())
	}
	return nil
}

// likeStatus re-counts likes and assembles the response shared by toggle and
// status reads. Counts are always recomputed from rows, never cached.
func (s *engagementServiceImpl) likeStatus(ctx context.Context, subjectType domain.SubjectType, subjectID uuid.UUID, isLiked bool) (*dto.EngagementStatusResponse, error) {
	count, err := s.engagementRepo.CountLikes(ctx, subjectType, subjectID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to count likes", err.Error())
	}
	return &dto.EngagementStatusResponse{
		LikeCount: count,
		IsLiked:   isLiked,
	}, nil
}

// toCommentResponse converts domain.Comment to dto.CommentResponse
func toCommentResponse(comment *domain.Comment) *dto.CommentResponse {
	userName := anonymousUserName
	if comment.UserName != nil {
		userName = *comment.UserName
	}
	return &dto.CommentResponse{
		ID:        comment.ID,
		UserName:  userName,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
	}
}
