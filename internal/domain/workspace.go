package domain

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Workspace represents a listed workspace. Rows are created and edited by the
// admin CRUD flows; the public API only ever reads them.
type Workspace struct {
	BaseModel
	LocationID  uuid.UUID `gorm:"type:uuid;not null;index:idx_workspaces_location_id" json:"location_id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Address     string    `gorm:"type:varchar(500)" json:"address"`

	// Category flags filtered with AND semantics on the listing endpoint
	CategoryWork    bool `gorm:"default:false;index:idx_workspaces_category_work" json:"category_work"`
	CategoryStudy   bool `gorm:"default:false;index:idx_workspaces_category_study" json:"category_study"`
	CategoryMeeting bool `gorm:"default:false" json:"category_meeting"`
	CategoryNetwork bool `gorm:"default:false" json:"category_network"`

	HasDropIn            bool `gorm:"default:false" json:"has_drop_in"`
	HasMultipleLocations bool `gorm:"default:false" json:"has_multiple_locations"`

	// IsRecommended pins the workspace to the front of ranked listings
	IsRecommended bool `gorm:"default:false;index:idx_workspaces_is_recommended" json:"is_recommended"`

	Amenities datatypes.JSON `gorm:"type:jsonb" json:"amenities"`

	Location Location `gorm:"foreignKey:LocationID;constraint:OnDelete:CASCADE" json:"location,omitempty"`
}

// TableName specifies the table name for Workspace
func (Workspace) TableName() string {
	return "workspaces"
}
