package view

import (
	"context"
	"time"

	"lahza/internal/core/view"
	directoryPort "lahza/internal/ports/directory"
)

// ViewRepository persists view facts. MarkViewed must be a single atomic
// upsert on the (status_id, viewer_id) unique key; a duplicate is a no-op.
type ViewRepository interface {
	MarkViewed(ctx context.Context, statusID, viewerID string) error
	Exists(ctx context.Context, statusID, viewerID string) (bool, error)
	CountByStatusID(ctx context.Context, statusID string) (int64, error)
	ListByStatusID(ctx context.Context, statusID string) ([]*view.StatusView, error)
}

type ViewerDTO struct {
	ViewerID string                    `json:"viewer_id"`
	ViewedAt time.Time                 `json:"viewed_at"`
	Profile  *directoryPort.ProfileDTO `json:"profile,omitempty"`
}
