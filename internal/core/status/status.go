package status

import (
	"errors"
	"time"

	"github.com/gofrs/uuid"
	"lahza/internal/core/user"
)

// TTL is fixed per item; expires_at is always created_at + TTL.
const TTL = 24 * time.Hour

type ContentType string

const (
	ContentTypeText  ContentType = "text"
	ContentTypeImage ContentType = "image"
	ContentTypeVideo ContentType = "video"
)

type PrivacyLevel string

const (
	PrivacyPublic    PrivacyLevel = "public"
	PrivacyFriends   PrivacyLevel = "friends"
	PrivacyFollowers PrivacyLevel = "followers"
	PrivacyOnlyMe    PrivacyLevel = "only_me"
	PrivacyCustom    PrivacyLevel = "custom"
)

type TextStyle string

const (
	StyleClassic    TextStyle = "classic"
	StyleNeon       TextStyle = "neon"
	StyleTypewriter TextStyle = "typewriter"
	StyleElegant    TextStyle = "elegant"
	StyleBold       TextStyle = "bold"
	StyleItalic     TextStyle = "italic"
)

type TextEffect string

const (
	EffectDefault      TextEffect = "default"
	EffectWhiteBG      TextEffect = "white-bg"
	EffectBlackBG      TextEffect = "black-bg"
	EffectOutlineWhite TextEffect = "outline-white"
	EffectOutlineBlack TextEffect = "outline-black"
	EffectGlow         TextEffect = "glow"
)

type TextAlign string

const (
	AlignLeft   TextAlign = "left"
	AlignCenter TextAlign = "center"
	AlignRight  TextAlign = "right"
)

var (
	ErrInvalidContent = errors.New("invalid status content")
	ErrUploadFailed   = errors.New("media upload failed")
	ErrNotFound       = errors.New("status not found")
)

type Status struct {
	ID          uuid.UUID   `gorm:"primary_key;type:char(36)"`
	UserID      uuid.UUID   `gorm:"type:char(36);not null;index"`
	User        user.User   `gorm:"foreignkey:UserID"`
	ContentType ContentType `gorm:"type:varchar(10);not null"`
	TextContent *string     `gorm:"type:text"`
	MediaPath   *string     `gorm:"type:varchar(512)"`

	// Text customization, meaningful only for text statuses.
	BackgroundColor     string     `gorm:"type:varchar(16)"`
	TextStyle           TextStyle  `gorm:"type:varchar(16)"`
	TextEffect          TextEffect `gorm:"type:varchar(16)"`
	TextAlign           TextAlign  `gorm:"type:varchar(8)"`
	BackgroundImagePath *string    `gorm:"type:varchar(512)"`

	PrivacyLevel PrivacyLevel `gorm:"type:varchar(12);not null"`
	CreatedAt    time.Time    `gorm:"autoCreateTime;index"`
	ExpiresAt    time.Time    `gorm:"not null;index"`
	Archived     bool         `gorm:"not null;default:false"`
	ArchivedAt   *time.Time
	DeletedAt    *time.Time `gorm:"index"`
}

// ActiveAt reports whether the status still participates in feeds.
func (s *Status) ActiveAt(now time.Time) bool {
	return !s.Archived && now.Before(s.ExpiresAt)
}

// Sticker is a decorative overlay; position is canvas-normalized in [0,1].
type Sticker struct {
	ID        uuid.UUID `gorm:"primary_key;type:char(36)"`
	StatusID  uuid.UUID `gorm:"type:char(36);not null;index"`
	StickerID string    `gorm:"type:varchar(64);not null"`
	ImagePath string    `gorm:"type:varchar(512);not null"`
	X         float64   `gorm:"not null"`
	Y         float64   `gorm:"not null"`
	Scale     float64   `gorm:"not null;default:1"`
	Rotation  float64   `gorm:"not null;default:0"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// Visibility is one row of the explicit allow-list used by custom privacy.
// No row for a viewer means not visible, with no owner/friend fallback.
type Visibility struct {
	ID            uuid.UUID `gorm:"primary_key;type:char(36)"`
	StatusID      uuid.UUID `gorm:"type:char(36);not null;uniqueIndex:uniq_status_allowed"`
	AllowedUserID uuid.UUID `gorm:"type:char(36);not null;uniqueIndex:uniq_status_allowed"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
}
