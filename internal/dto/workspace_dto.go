package dto

import (
	"time"

	"github.com/google/uuid"
)

// WorkspaceListQuery holds the parsed query parameters of the ranked listing
// endpoint. Boolean facets are tri-state: nil means no constraint.
type WorkspaceListQuery struct {
	Categories        []string
	DropIn            *bool
	MultipleLocations *bool
	Page              int
	Limit             int
	All               bool
}

// WorkspaceResponse represents one workspace in a listing
type WorkspaceResponse struct {
	ID                   uuid.UUID              `json:"id"`
	LocationID           uuid.UUID              `json:"locationId"`
	Name                 string                 `json:"name"`
	Description          string                 `json:"description"`
	Address              string                 `json:"address"`
	Categories           []string               `json:"categories"`
	HasDropIn            bool                   `json:"hasDropIn"`
	HasMultipleLocations bool                   `json:"hasMultipleLocations"`
	IsRecommended        bool                   `json:"isRecommended"`
	Amenities            map[string]interface{} `json:"amenities,omitempty"`
	LikeCount            int64                  `json:"likeCount"`
	CreatedAt            time.Time              `json:"createdAt"`
}

// WorkspaceListResponse is the ranked listing payload
type WorkspaceListResponse struct {
	Workspaces []WorkspaceResponse `json:"workspaces"`
	Pagination Pagination          `json:"pagination"`
}

// StartupPostResponse represents one startup-board entry in the feed
type StartupPostResponse struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	CompanyName   string    `json:"companyName"`
	IsRecommended bool      `json:"isRecommended"`
	LikeCount     int64     `json:"likeCount"`
	CreatedAt     time.Time `json:"createdAt"`
}

// StartupPostListResponse is the startup-board feed payload
type StartupPostListResponse struct {
	Posts      []StartupPostResponse `json:"posts"`
	Pagination Pagination            `json:"pagination"`
}
