package user

import (
	"time"

	"github.com/gofrs/uuid"
)

type User struct {
	ID         uuid.UUID  `gorm:"primary_key;type:char(36)"`
	Name       string     `gorm:"not null"`
	Family     string     `gorm:"not null"`
	Username   string     `gorm:"unique;not null"`
	Mobile     string     `gorm:"unique;not null"`
	Password   string     `gorm:"not null"`
	AvatarPath string     `gorm:"type:varchar(512)"`
	CreatedAt  time.Time  `gorm:"autoCreateTime"`
	UpdatedAt  time.Time  `gorm:"autoUpdateTime"`
	DeletedAt  *time.Time `gorm:"index"`
}

// DisplayName is what feed bubbles are labeled with.
func (u *User) DisplayName() string {
	return u.Name + " " + u.Family
}
