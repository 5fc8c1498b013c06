package view

import (
	"time"

	"github.com/gofrs/uuid"
	"lahza/internal/core/user"
)

// StatusView is the append-only fact "viewer saw status". The unique pair
// index is what makes concurrent mark-as-viewed calls collapse to one row.
type StatusView struct {
	ID       uuid.UUID `gorm:"primary_key;type:char(36)"`
	StatusID uuid.UUID `gorm:"type:char(36);not null;uniqueIndex:uniq_status_viewer"`
	ViewerID uuid.UUID `gorm:"type:char(36);not null;uniqueIndex:uniq_status_viewer"`
	Viewer   user.User `gorm:"foreignkey:ViewerID"`
	ViewedAt time.Time `gorm:"autoCreateTime"`
}
