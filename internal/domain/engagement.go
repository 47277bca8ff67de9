package domain

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubjectType identifies which kind of listing an engagement row belongs to.
// Engagement is polymorphic over subjects, so SubjectID carries no FK.
type SubjectType string

const (
	SubjectTypeWorkspace   SubjectType = "WORKSPACE"
	SubjectTypeStartupPost SubjectType = "STARTUP_POST"
)

// Like represents one anonymous visitor liking one subject. The composite
// unique index is the only synchronization primitive for concurrent toggles:
// a losing duplicate insert fails here instead of producing a second row.
type Like struct {
	BaseModel
	SubjectType SubjectType `gorm:"type:varchar(50);not null;index:idx_likes_subject,priority:1;uniqueIndex:uq_likes_subject_visitor,priority:1" json:"subject_type"`
	SubjectID   uuid.UUID   `gorm:"type:uuid;not null;index:idx_likes_subject,priority:2;uniqueIndex:uq_likes_subject_visitor,priority:2" json:"subject_id"`
	VisitorID   string      `gorm:"type:varchar(255);not null;uniqueIndex:uq_likes_subject_visitor,priority:3" json:"visitor_id"`
}

func (l *Like) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// TableName specifies the table name for Like
func (Like) TableName() string {
	return "likes"
}

// Comment represents an anonymous comment on a subject. Comments are
// insert-only; moderation belongs to the admin flows, not this service.
type Comment struct {
	BaseModel
	SubjectType SubjectType `gorm:"type:varchar(50);not null;index:idx_comments_subject,priority:1" json:"subject_type"`
	SubjectID   uuid.UUID   `gorm:"type:uuid;not null;index:idx_comments_subject,priority:2" json:"subject_id"`
	VisitorID   string      `gorm:"type:varchar(255);not null" json:"visitor_id"`
	UserName    *string     `gorm:"type:varchar(100)" json:"user_name"`
	Content     string      `gorm:"type:varchar(1000);not null" json:"content"`
}

func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName specifies the table name for Comment
func (Comment) TableName() string {
	return "comments"
}
