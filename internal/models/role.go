package models

const DefaultRoleName = "member"

type Role struct {
	Base
	Name        string `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"`
	Description string `gorm:"type:varchar(255)" json:"description"`

	Users []User `gorm:"many2many:user_roles" json:"-"`
}

func (Role) TableName() string { return "role" }
