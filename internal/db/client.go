package db

// Client 是在前台“合作客户”轮播中展示的公司。
// Approved 为 false 时仅后台可见。
type Client struct {
	Record
	Name        string `gorm:"size:120;not null" json:"name"`
	Industry    string `gorm:"size:120;not null" json:"industry"`
	Description string `gorm:"type:text;not null" json:"description"`
	Logo        string `gorm:"size:255" json:"logo"`
	Approved    bool   `gorm:"not null;default:false;index" json:"approved"`
}

// TableName 返回客户表名。
func (Client) TableName() string {
	return "clients"
}

// Moderated marks the table as gated by the approved column.
func (Client) Moderated() bool {
	return true
}
