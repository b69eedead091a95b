package models

import "time"

// Base carries the audit columns shared by every table. Soft deletion
// is an explicit flag so removed rows stay readable and restorable;
// list queries must filter on is_deleted themselves.
type Base struct {
	ID         uint64    `gorm:"primarykey" json:"id"`
	CreateTime time.Time `gorm:"column:create_time;autoCreateTime" json:"create_time"`
	UpdateTime time.Time `gorm:"column:update_time;autoUpdateTime" json:"update_time"`
	IsDeleted  bool      `gorm:"column:is_deleted;not null;default:false" json:"-"`
}
