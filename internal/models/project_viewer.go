package models

import "time"

// ProjectViewer is one row of the project/viewer association. A
// (project_id, user_id) pair has at most one row; removal flips
// is_deleted and re-addition flips it back, keeping the original
// create_time for audit history. Rows are never hard-deleted.
type ProjectViewer struct {
	ID         uint64    `gorm:"primarykey" json:"id"`
	ProjectID  uint64    `gorm:"not null;uniqueIndex:uk_project_viewer" json:"project_id"`
	UserID     uint64    `gorm:"not null;uniqueIndex:uk_project_viewer" json:"user_id"`
	CreateTime time.Time `gorm:"column:create_time;autoCreateTime" json:"create_time"`
	UpdateTime time.Time `gorm:"column:update_time;autoUpdateTime" json:"update_time"`
	IsDeleted  bool      `gorm:"column:is_deleted;not null;default:false" json:"-"`
}

func (ProjectViewer) TableName() string { return "project_viewers" }
