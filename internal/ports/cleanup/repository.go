package cleanup

import (
	"context"

	"github.com/gofrs/uuid"
	"lahza/internal/core/cleanup"
)

type CleanupRepository interface {
	Enqueue(ctx context.Context, task *cleanup.Task) (*cleanup.Task, error)
	GetPending(ctx context.Context, limit int64) ([]*cleanup.Task, error)
	BumpAttempts(ctx context.Context, id uuid.UUID) error
	MarkDone(ctx context.Context, id uuid.UUID) error
	MarkFailed(ctx context.Context, id uuid.UUID) error
}
