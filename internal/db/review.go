package db

// Review 是客户评价，评分限定在 1 到 5 之间。
type Review struct {
	Record
	Name     string `gorm:"size:120;not null" json:"name"`
	Position string `gorm:"size:160;not null" json:"position"`
	Content  string `gorm:"type:text;not null" json:"content"`
	Rating   int    `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Image    string `gorm:"size:255" json:"image"`
	Approved bool   `gorm:"not null;default:false;index" json:"approved"`
}

// TableName 返回评价表名。
func (Review) TableName() string {
	return "client_reviews"
}

// Moderated marks the table as gated by the approved column.
func (Review) Moderated() bool {
	return true
}
