package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"workspace-listing-api/internal/domain"
)

func setupListingTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err, "failed to connect database")

	db.Exec(`CREATE TABLE locations (
		id TEXT PRIMARY KEY,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL,
		deleted_at DATETIME,
		name TEXT NOT NULL,
		slug TEXT NOT NULL UNIQUE
	)`)
	db.Exec(`CREATE TABLE workspaces (
		id TEXT PRIMARY KEY,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL,
		deleted_at DATETIME,
		location_id TEXT NOT NULL,
		name TEXT NOT NULL,
		description TEXT,
		address TEXT,
		category_work BOOLEAN NOT NULL DEFAULT 0,
		category_study BOOLEAN NOT NULL DEFAULT 0,
		category_meeting BOOLEAN NOT NULL DEFAULT 0,
		category_network BOOLEAN NOT NULL DEFAULT 0,
		has_drop_in BOOLEAN NOT NULL DEFAULT 0,
		has_multiple_locations BOOLEAN NOT NULL DEFAULT 0,
		is_recommended BOOLEAN NOT NULL DEFAULT 0,
		amenities TEXT
	)`)
	db.Exec(`CREATE TABLE startup_posts (
		id TEXT PRIMARY KEY,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL,
		deleted_at DATETIME,
		title TEXT NOT NULL,
		content TEXT,
		company_name TEXT,
		is_recommended BOOLEAN NOT NULL DEFAULT 0
	)`)

	return db
}

func seedLocation(t *testing.T, db *gorm.DB, slug string) *domain.Location {
	t.Helper()
	location := &domain.Location{
		BaseModel: domain.BaseModel{ID: uuid.New()},
		Name:      slug,
		Slug:      slug,
	}
	require.NoError(t, db.Create(location).Error)
	return location
}

// 테스트 스키마에는 컬럼 기본값이 없으므로 타임스탬프는 GORM이 채워야 한다
func TestCreate_TimestampsFilledByGORM(t *testing.T) {
	db := setupListingTestDB(t)

	location := seedLocation(t, db, "seongsu")
	assert.False(t, location.CreatedAt.IsZero(), "CreatedAt must be set on insert")
	assert.False(t, location.UpdatedAt.IsZero(), "UpdatedAt must be set on insert")

	var reloaded domain.Location
	require.NoError(t, db.First(&reloaded, "id = ?", location.ID).Error)
	assert.False(t, reloaded.CreatedAt.IsZero())
	assert.False(t, reloaded.UpdatedAt.IsZero())
}

func TestWorkspaceRepository_FindByLocationID(t *testing.T) {
	db := setupListingTestDB(t)
	repo := NewWorkspaceRepository(db)
	ctx := context.Background()

	gangnam := seedLocation(t, db, "gangnam")
	pangyo := seedLocation(t, db, "pangyo")

	base := time.Now().Add(-time.Hour)
	for i, loc := range []*domain.Location{gangnam, gangnam, pangyo} {
		workspace := &domain.Workspace{
			BaseModel: domain.BaseModel{
				ID:        uuid.New(),
				CreatedAt: base.Add(time.Duration(i) * time.Minute),
			},
			LocationID: loc.ID,
			Name:       loc.Slug,
		}
		require.NoError(t, db.Create(workspace).Error)
	}

	workspaces, err := repo.FindByLocationID(ctx, gangnam.ID)
	require.NoError(t, err)
	require.Len(t, workspaces, 2)
	// 최신 생성이 먼저
	assert.True(t, workspaces[0].CreatedAt.After(workspaces[1].CreatedAt))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestWorkspaceRepository_FindByID_NotFound(t *testing.T) {
	db := setupListingTestDB(t)
	repo := NewWorkspaceRepository(db)

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestLocationRepository_FindByID(t *testing.T) {
	db := setupListingTestDB(t)
	repo := NewLocationRepository(db)
	ctx := context.Background()

	seeded := seedLocation(t, db, "hongdae")

	found, err := repo.FindByID(ctx, seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, "hongdae", found.Slug)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestStartupPostRepository_FindAll_NewestFirst(t *testing.T) {
	db := setupListingTestDB(t)
	repo := NewStartupPostRepository(db)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	for i, title := range []string{"오래된 글", "중간 글", "최신 글"} {
		post := &domain.StartupPost{
			BaseModel: domain.BaseModel{
				ID:        uuid.New(),
				CreatedAt: base.Add(time.Duration(i) * time.Minute),
			},
			Title: title,
		}
		require.NoError(t, db.Create(post).Error)
	}

	posts, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, "최신 글", posts[0].Title)
	assert.Equal(t, "오래된 글", posts[2].Title)
}
