package db

// ContactMessage 保存前台联系表单提交的留言。
// 创建后除删除外不可修改，也没有审核字段。
type ContactMessage struct {
	Record
	Name    string `gorm:"size:120;not null" json:"name"`
	Email   string `gorm:"size:255;not null" json:"email"`
	Message string `gorm:"type:text;not null" json:"message"`
}

// TableName 返回联系留言表名。
func (ContactMessage) TableName() string {
	return "contact_messages"
}
