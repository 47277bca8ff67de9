package domain

// StartupPost represents a startup-board entry. Like workspaces, posts are
// managed by the excluded admin flows and read-only for the public API.
type StartupPost struct {
	BaseModel
	Title         string `gorm:"type:varchar(255);not null" json:"title"`
	Content       string `gorm:"type:text" json:"content"`
	CompanyName   string `gorm:"type:varchar(255)" json:"company_name"`
	IsRecommended bool   `gorm:"default:false;index:idx_startup_posts_is_recommended" json:"is_recommended"`
}

// TableName specifies the table name for StartupPost
func (StartupPost) TableName() string {
	return "startup_posts"
}
