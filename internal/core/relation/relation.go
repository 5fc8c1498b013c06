package relation

import (
	"time"

	"github.com/gofrs/uuid"
	"lahza/internal/core/user"
)

// Relation is one edge of the social graph: FollowerID follows/friends UserID.
// The resolver treats friend and follower edges the same way.
type Relation struct {
	ID         uuid.UUID  `gorm:"primary_key;type:char(36)"`
	UserID     uuid.UUID  `gorm:"type:char(36);not null;uniqueIndex:uniq_user_follower"`
	User       user.User  `gorm:"foreignkey:UserID"`
	FollowerID uuid.UUID  `gorm:"type:char(36);not null;uniqueIndex:uniq_user_follower"`
	Follower   user.User  `gorm:"foreignkey:FollowerID"`
	CreatedAt  time.Time  `gorm:"autoCreateTime"`
	DeletedAt  *time.Time `gorm:"index"`
}
