package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"workspace-listing-api/internal/domain"
)

// EngagementRepository defines the interface for like/comment data access
type EngagementRepository interface {
	FindLike(ctx context.Context, subjectType domain.SubjectType, subjectID uuid.UUID, visitorID string) (*domain.Like, error)
	CreateLike(ctx context.Context, like *domain.Like) error
	DeleteLike(ctx context.Context, subjectType domain.SubjectType, subjectID uuid.UUID, visitorID string) error
	CountLikes(ctx context.Context, subjectType domain.SubjectType, subjectID uuid.UUID) (int64, error)
	CountLikesBySubjects(ctx context.Context, subjectType domain.SubjectType, subjectIDs []uuid.UUID) (map[uuid.UUID]int64, error)
	CountLikesTotal(ctx context.Context) (int64, error)

	CreateComment(ctx context.Context, comment *domain.Comment) error
	FindCommentsBySubject(ctx context.Context, subjectType domain.SubjectType, subjectID uuid.UUID) ([]*domain.Comment, error)
	CountCommentsTotal(ctx context.Context) (int64, error)
}

// engagementRepositoryImpl is the GORM implementation of EngagementRepository
type engagementRepositoryImpl struct {
	db *gorm.DB
}

// NewEngagementRepository creates a new instance of EngagementRepository
func NewEngagementRepository(db *gorm.DB) EngagementRepository {
	return &engagementRepositoryImpl{db: db}
}

// FindLike finds the like row for a (subject, visitor) pair
func (r *engagementRepositoryImpl) FindLike(ctx context.Context, subjectType domain.SubjectType, subjectID uuid.UUID, visitorID string) (*domain.Like, error) {
	var like domain.Like
	if err := r.db.WithContext(ctx).
		Where("subject_type = ? AND subject_id = ? AND visitor_id = ?", subjectType, subjectID, visitorID).
		First(&like).Error; err != nil {
		return nil, err
	}
	return &like, nil
}

// CreateLike inserts a like row. The composite unique index on
// (subject_type, subject_id, visitor_id) rejects concurrent duplicates;
// callers detect that case with IsDuplicateKey.
func (r *engagementRepositoryImpl) CreateLike(ctx context.Context, like *domain.Like) error {
	if err := r.db.WithContext(ctx).Create(like).Error; err != nil {
		return err
	}
	return nil
}

// DeleteLike hard deletes the like row for a (subject, visitor) pair.
// Unlike is represented by row absence, so the soft-delete scope is bypassed.
func (r *engagementRepositoryImpl) DeleteLike(ctx context.Context, subjectType domain.SubjectType, subjectID uuid.UUID, visitorID string) error {
	if err := r.db.WithContext(ctx).Unscoped().
		Where("subject_type = ? AND subject_id = ? AND visitor_id = ?", subjectType, subjectID, visitorID).
		Delete(&domain.Like{}).Error; err != nil {
		return err
	}
	return nil
}

// CountLikes counts like rows for a single subject
func (r *engagementRepositoryImpl) CountLikes(ctx context.Context, subjectType domain.SubjectType, subjectID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Like{}).
		Where("subject_type = ? AND subject_id = ?", subjectType, subjectID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// subjectLikeCount is the scan target of the grouped aggregate below
type subjectLikeCount struct {
	SubjectID uuid.UUID
	Count     int64
}

// CountLikesBySubjects aggregates like counts for a batch of subjects with a
// single grouped query. Subjects with no likes are absent from the result.
func (r *engagementRepositoryImpl) CountLikesBySubjects(ctx context.Context, subjectType domain.SubjectType, subjectIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	counts := make(map[uuid.UUID]int64, len(subjectIDs))
	if len(subjectIDs) == 0 {
		return counts, nil
	}

	var rows []subjectLikeCount
	if err := r.db.WithContext(ctx).Model(&domain.Like{}).
		Select("subject_id, COUNT(*) as count").
		Where("subject_type = ? AND subject_id IN ?", subjectType, subjectIDs).
		Group("subject_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.SubjectID] = row.Count
	}
	return counts, nil
}

// CountLikesTotal counts all like rows across subjects
func (r *engagementRepositoryImpl) CountLikesTotal(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Like{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CreateComment inserts a comment row
func (r *engagementRepositoryImpl) CreateComment(ctx context.Context, comment *domain.Comment) error {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return err
	}
	return nil
}

// FindCommentsBySubject returns all comments for a subject, newest first
func (r *engagementRepositoryImpl) FindCommentsBySubject(ctx context.Context, subjectType domain.SubjectType, subjectID uuid.UUID) ([]*domain.Comment, error) {
	var comments []*domain.Comment
	if err := r.db.WithContext(ctx).
		Where("subject_type = ? AND subject_id = ?", subjectType, subjectID).
		Order("created_at DESC").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// CountCommentsTotal counts all comment rows across subjects
func (r *engagementRepositoryImpl) CountCommentsTotal(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Comment{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// IsDuplicateKey reports whether err is a unique-constraint violation.
// Postgres reports "duplicate key value violates unique constraint", sqlite
// "UNIQUE constraint failed"; newer GORM drivers also translate to
// gorm.ErrDuplicatedKey.
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique")
}
