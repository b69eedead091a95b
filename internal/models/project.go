package models

type ProjectType int

const (
	ProjectTypePrivate ProjectType = 0
	ProjectTypePublic  ProjectType = 1
)

type Project struct {
	Base
	Name        string      `gorm:"type:varchar(255);not null;index" json:"name"`
	OwnerID     uint64      `gorm:"not null;index" json:"owner_id"`
	ProjectType ProjectType `gorm:"not null;default:1" json:"project_type"`

	// Relations
	Owner User  `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Docs  []Doc `gorm:"foreignKey:ProjectID" json:"docs,omitempty"`
}

func (Project) TableName() string { return "project" }
