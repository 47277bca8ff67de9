package service

import (
	"context"

	"github.com/google/uuid"

	"workspace-listing-api/internal/domain"
)

// MockEngagementRepository is a mock implementation of EngagementRepository
type MockEngagementRepository struct {
	FindLikeFunc              func(ctx context.Context, subjectType domain.SubjectType, subjectID uuid.UUID, visitorID string) (*domain.Like, error)
	CreateLikeFunc            func(ctx context.Context, like *domain.Like) error
	DeleteLikeFunc            func(ctx context.Context, subjectType domain.SubjectType, subjectID uuid.UUID, visitorID string) error
	CountLikesFunc            func(ctx context.Context, subjectType domain.SubjectType, subjectID uuid.UUID) (int64, error)
	CountLikesBySubjectsFunc  func(ctx context.Context, subjectType domain.SubjectType, subjectIDs []uuid.UUID) (map[uuid.UUID]int64, error)
	CountLikesTotalFunc       func(ctx context.Context) (int64, error)
	CreateCommentFunc         func(ctx context.Context, comment *domain.Comment) error
	FindCommentsBySubjectFunc func(ctx context.Context, subjectType domain.SubjectType, subjectID uuid.UUID) ([]*domain.Comment, error)
	CountCommentsTotalFunc    func(ctx context.Context) (int64, error)
}

func (m *MockEngagementRepository) FindLike(ctx context.Context, subjectType domain.SubjectType, subjectID uuid.UUID, visitorID string) (*domain.Like, error) {
	if m.FindLikeFunc != nil {
		return m.FindLikeFunc(ctx, subjectType, subjectID, visitorID)
	}
	return nil, nil
}

func (m *MockEngagementRepository) CreateLike(ctx context.Context, like *domain.Like) error {
	if m.CreateLikeFunc != nil {
		return m.CreateLikeFunc(ctx, like)
	}
	return nil
}

func (m *MockEngagementRepository) DeleteLike(ctx context.Context, subjectType domain.SubjectType, subjectID uuid.UUID, visitorID string) error {
	if m.DeleteLikeFunc != nil {
		return m.DeleteLikeFunc(ctx, subjectType, subjectID, visitorID)
	}
	return nil
}

func (m *MockEngagementRepository) CountLikes(ctx context.Context, subjectType domain.SubjectType, subjectID uuid.UUID) (int64, error) {
	if m.CountLikesFunc != nil {
		return m.CountLikesFunc(ctx, subjectType, subjectID)
	}
	return 0, nil
}

func (m *MockEngagementRepository) CountLikesBySubjects(ctx context.Context, subjectType domain.SubjectType, subjectIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	if m.CountLikesBySubjectsFunc != nil {
		return m.CountLikesBySubjectsFunc(ctx, subjectType, subjectIDs)
	}
	return map[uuid.UUID]int64{}, nil
}

func (m *MockEngagementRepository) CountLikesTotal(ctx context.Context) (int64, error) {
	if m.CountLikesTotalFunc != nil {
		return m.CountLikesTotalFunc(ctx)
	}
	return 0, nil
}

func (m *MockEngagementRepository) CreateComment(ctx context.Context, comment *domain.Comment) error {
	if m.CreateCommentFunc != nil {
		return m.CreateCommentFunc(ctx, comment)
	}
	return nil
}

func (m *MockEngagementRepository) FindCommentsBySubject(ctx context.Context, subjectType domain.SubjectType, subjectID uuid.UUID) ([]*domain.Comment, error) {
	if m.FindCommentsBySubjectFunc != nil {
		return m.FindCommentsBySubjectFunc(ctx, subjectType, subjectID)
	}
	return nil, nil
}

func (m *MockEngagementRepository) CountCommentsTotal(ctx context.Context) (int64, error) {
	if m.CountCommentsTotalFunc != nil {
		return m.CountCommentsTotalFunc(ctx)
	}
	return 0, nil
}

// MockWorkspaceRepository is a mock implementation of WorkspaceRepository
type MockWorkspaceRepository struct {
	FindByIDFunc         func(ctx context.Context, id uuid.UUID) (*domain.Workspace, error)
	FindByLocationIDFunc func(ctx context.Context, locationID uuid.UUID) ([]*domain.Workspace, error)
	CountFunc            func(ctx context.Context) (int64, error)
}

func (m *MockWorkspaceRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Workspace, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockWorkspaceRepository) FindByLocationID(ctx context.Context, locationID uuid.UUID) ([]*domain.Workspace, error) {
	if m.FindByLocationIDFunc != nil {
		return m.FindByLocationIDFunc(ctx, locationID)
	}
	return nil, nil
}

func (m *MockWorkspaceRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// MockStartupPostRepository is a mock implementation of StartupPostRepository
type MockStartupPostRepository struct {
	FindByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.StartupPost, error)
	FindAllFunc  func(ctx context.Context) ([]*domain.StartupPost, error)
}

func (m *MockStartupPostRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.StartupPost, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockStartupPostRepository) FindAll(ctx context.Context) ([]*domain.StartupPost, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

// MockLocationRepository is a mock implementation of LocationRepository
type MockLocationRepository struct {
	FindByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Location, error)
}

func (m *MockLocationRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Location, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}
