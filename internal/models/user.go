package models

type User struct {
	Base
	Username       string `gorm:"type:varchar(32);uniqueIndex;not null" json:"username"`
	Email          string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	HashedPassword string `gorm:"type:varchar(255);not null" json:"-"`
	Nickname       string `gorm:"type:varchar(50)" json:"nickname"`
	Avatar         string `gorm:"type:varchar(255)" json:"avatar"`
	IsSuperuser    bool   `gorm:"not null;default:false" json:"is_superuser"`

	// Relations
	OwnedProjects []Project `gorm:"foreignKey:OwnerID" json:"-"`
	Docs          []Doc     `gorm:"foreignKey:OwnerID" json:"-"`
	Roles         []Role    `gorm:"many2many:user_roles" json:"-"`
	Groups        []Group   `gorm:"many2many:user_groups" json:"-"`
}

func (User) TableName() string { return "user" }
