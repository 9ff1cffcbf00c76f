package db

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Record 是所有内容表共享的主键与创建时间。
// 删除均为物理删除，因此不嵌入 gorm.Model（它带有软删除的 DeletedAt）。
type Record struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time `gorm:"index;not null" json:"created_at"`
}

// BeforeCreate 在插入前补齐 UUID 主键。
func (r *Record) BeforeCreate(*gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// GetID returns the record's primary key.
func (r Record) GetID() string {
	return r.ID
}
