package status

import (
	"context"
	"time"

	"lahza/internal/core/status"
)

// StatusRepository is the outbound port for status rows. Active queries embed
// the activity predicate (not archived, not expired) and order newest first
// with id as the stable tie-break.
type StatusRepository interface {
	Create(ctx context.Context, st *status.Status) (*status.Status, error)
	FindByID(ctx context.Context, id string) (*status.Status, error)
	FindActive(ctx context.Context, now time.Time) ([]*status.Status, error)
	FindActiveByUserIDs(ctx context.Context, userIDs []string, now time.Time) ([]*status.Status, error)
	FindActiveByUserID(ctx context.Context, userID string, now time.Time) (*status.Status, error)
	FindAllByUserID(ctx context.Context, userID string, includingInactive bool, now time.Time) ([]*status.Status, error)
	Archive(ctx context.Context, id string, at time.Time) error
	Delete(ctx context.Context, id string) error
}

type StickerRepository interface {
	AddBatch(ctx context.Context, stickers []*status.Sticker) error
	FindByStatusID(ctx context.Context, statusID string) ([]*status.Sticker, error)
	DeleteByStatusID(ctx context.Context, statusID string) error
}

// VisibilityRepository stores the custom-privacy allow-list.
type VisibilityRepository interface {
	AddBatch(ctx context.Context, rows []*status.Visibility) error
	IsAllowed(ctx context.Context, statusID, viewerID string) (bool, error)
	DeleteByStatusID(ctx context.Context, statusID string) error
}

type StickerDTO struct {
	StickerID string  `json:"sticker_id"`
	ImagePath string  `json:"image_path"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Scale     float64 `json:"scale"`
	Rotation  float64 `json:"rotation"`
}

type CustomizationDTO struct {
	BackgroundColor     string `json:"background_color"`
	TextStyle           string `json:"text_style"`
	TextEffect          string `json:"text_effect"`
	TextAlign           string `json:"text_align"`
	BackgroundImage     []byte `json:"-"`
	BackgroundImageMime string `json:"-"`
}

// CreateInput carries everything a create call needs; media bytes are decoded
// by the controller before they reach the service.
type CreateInput struct {
	ContentType    string
	TextContent    string
	Media          []byte
	MediaMime      string
	Privacy        string
	AllowedUserIDs []string
	Customization  *CustomizationDTO
	Stickers       []StickerDTO
}

type StatusDTO struct {
	ID                  string       `json:"id"`
	UserID              string       `json:"user_id"`
	ContentType         string       `json:"content_type"`
	TextContent         *string      `json:"text_content,omitempty"`
	MediaPath           *string      `json:"media_path,omitempty"`
	BackgroundColor     string       `json:"background_color,omitempty"`
	TextStyle           string       `json:"text_style,omitempty"`
	TextEffect          string       `json:"text_effect,omitempty"`
	TextAlign           string       `json:"text_align,omitempty"`
	BackgroundImagePath *string      `json:"background_image_path,omitempty"`
	Privacy             string       `json:"privacy"`
	CreatedAt           time.Time    `json:"created_at"`
	ExpiresAt           time.Time    `json:"expires_at"`
	Archived            bool         `json:"archived"`
	Stickers            []StickerDTO `json:"stickers,omitempty"`
}
