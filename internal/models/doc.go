package models

type DocStatus int

const (
	DocStatusQueueing DocStatus = iota
	DocStatusReviewing
	DocStatusReviewed
	DocStatusFailed
)

type Doc struct {
	Base
	FileName  string    `gorm:"type:varchar(255);index" json:"file_name"`
	FileUUID  string    `gorm:"type:varchar(255);uniqueIndex" json:"file_uuid"`
	OwnerID   uint64    `gorm:"not null;index" json:"owner_id"`
	ProjectID uint64    `gorm:"not null;index" json:"project_id"`
	Status    DocStatus `gorm:"not null;default:0" json:"status"`

	// Relations
	Owner   User    `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Project Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
}

func (Doc) TableName() string { return "doc" }
