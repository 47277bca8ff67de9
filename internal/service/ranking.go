package service

import (
	"bytes"
	"sort"

	"github.com/google/uuid"

	"workspace-listing-api/internal/domain"
)

// workspaceRankLess is the comparator behind ranked listings: recommended
// before everything else, then like count descending, then creation time
// descending. A final ID key settles full ties, so the order is a strict
// total order that never depends on the database's return order.
func workspaceRankLess(a, b *domain.Workspace, likeCounts map[uuid.UUID]int64) bool {
	if a.IsRecommended != b.IsRecommended {
		return a.IsRecommended
	}
	if likeCounts[a.ID] != likeCounts[b.ID] {
		return likeCounts[a.ID] > likeCounts[b.ID]
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return bytes.Compare(a.ID[:], b.ID[:]) < 0
}

// rankWorkspaces orders workspaces in place by the ranking comparator.
// Like counts come pre-aggregated so ranking stays a pure stage after
// filtering.
func rankWorkspaces(workspaces []*domain.Workspace, likeCounts map[uuid.UUID]int64) {
	sort.SliceStable(workspaces, func(i, j int) bool {
		return workspaceRankLess(workspaces[i], workspaces[j], likeCounts)
	})
}
