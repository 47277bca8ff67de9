package domain

// Location represents a city/district a workspace is listed under
type Location struct {
	BaseModel
	Name       string      `gorm:"type:varchar(100);not null" json:"name"`
	Slug       string      `gorm:"type:varchar(100);not null;uniqueIndex:uq_locations_slug" json:"slug"`
	Workspaces []Workspace `gorm:"foreignKey:LocationID;constraint:OnDelete:CASCADE" json:"workspaces,omitempty"`
}

// TableName specifies the table name for Location
func (Location) TableName() string {
	return "locations"
}
