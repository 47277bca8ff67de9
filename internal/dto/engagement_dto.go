package dto

// EngagementStatusResponse is the shape of both the read and toggle
// engagement endpoints
type EngagementStatusResponse struct {
	LikeCount int64 `json:"likeCount"`
	IsLiked   bool  `json:"isLiked"`
}
