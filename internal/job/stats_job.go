package job

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"workspace-listing-api/internal/metrics"
	"workspace-listing-api/internal/repository"
)

// statsHashKey is the redis hash the ops dashboard reads. The request path
// never reads it; like counts served to clients are always aggregated fresh.
const statsHashKey = "listing:stats"

// StatsJob periodically snapshots engagement totals into the business
// gauges and the dashboard redis hash
type StatsJob struct {
	workspaceRepo  repository.WorkspaceRepository
	engagementRepo repository.EngagementRepository
	metrics        *metrics.Metrics
	redisClient    *redis.Client
	logger         *zap.Logger
}

// NewStatsJob creates a new StatsJob instance
func NewStatsJob(
	workspaceRepo repository.WorkspaceRepository,
	engagementRepo repository.EngagementRepository,
	m *metrics.Metrics,
	redisClient *redis.Client,
	logger *zap.Logger,
) *StatsJob {
	return &StatsJob{
		workspaceRepo:  workspaceRepo,
		engagementRepo: engagementRepo,
		metrics:        m,
		redisClient:    redisClient,
		logger:         logger,
	}
}

// Run executes one snapshot. It is registered with the cron scheduler and
// must never panic the process; failures are logged and the next tick retries.
func (j *StatsJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	j.logger.Debug("Starting engagement stats snapshot")

	workspaceCount, err := j.workspaceRepo.Count(ctx)
	if err != nil {
		j.logger.Error("Failed to count workspaces", zap.Error(err))
		return
	}

	likeCount, err := j.engagementRepo.CountLikesTotal(ctx)
	if err != nil {
		j.logger.Error("Failed to count likes", zap.Error(err))
		return
	}

	commentCount, err := j.engagementRepo.CountCommentsTotal(ctx)
	if err != nil {
		j.logger.Error("Failed to count comments", zap.Error(err))
		return
	}

	if j.metrics != nil {
		j.metrics.SetWorkspacesTotal(workspaceCount)
		j.metrics.SetLikesTotal(likeCount)
		j.metrics.SetCommentsTotal(commentCount)
	}

	// Redis 연결이 없어도 메트릭 갱신은 유지
	if j.redisClient != nil {
		err := j.redisClient.HSet(ctx, statsHashKey,
			"workspaces", workspaceCount,
			"likes", likeCount,
			"comments", commentCount,
			"updated_at", time.Now().UTC().Format(time.RFC3339),
		).Err()
		if err != nil {
			j.logger.Warn("Failed to write stats hash to redis", zap.Error(err))
		}
	}

	j.logger.Info("Engagement stats snapshot completed",
		zap.Int64("workspaces", workspaceCount),
		zap.Int64("likes", likeCount),
		zap.Int64("comments", commentCount),
	)
}
