package db

// Project 是作品集条目，创建后立即公开，没有审核字段。
type Project struct {
	Record
	Title       string   `gorm:"size:200;not null" json:"title"`
	Description string   `gorm:"type:text;not null" json:"description"`
	Image       string   `gorm:"size:512;not null" json:"image"`
	TechStack   []string `gorm:"serializer:json;type:text;not null" json:"tech_stack"`
	GithubURL   *string  `gorm:"size:512" json:"github_url"`
	LiveURL     *string  `gorm:"size:512" json:"live_url"`
}

// TableName 返回项目表名。
func (Project) TableName() string {
	return "projects"
}
