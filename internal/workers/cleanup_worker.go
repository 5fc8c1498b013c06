package workers

import (
	"context"
	"time"

	"go.uber.org/zap"

	"lahza/internal/core/cleanup"
	cleanupPort "lahza/internal/ports/cleanup"
	mediaPort "lahza/internal/ports/media"
)

// CleanupWorker drains the deferred blob-removal queue. Status row deletion
// already happened; this loop only retries the storage deletes that failed,
// so every outcome here is best-effort by definition.
type CleanupWorker struct {
	CleanupRepo cleanupPort.CleanupRepository
	Storage     mediaPort.ObjectStorage
	BatchSize   int
	Logger      *zap.Logger
}

func NewCleanupWorker(
	cleanupRepo cleanupPort.CleanupRepository,
	storage mediaPort.ObjectStorage,
	batchSize int,
	logger *zap.Logger,
) *CleanupWorker {
	return &CleanupWorker{
		CleanupRepo: cleanupRepo,
		Storage:     storage,
		BatchSize:   batchSize,
		Logger:      logger,
	}
}

// Run polls for pending tasks until the context is cancelled.
func (w *CleanupWorker) Run(ctx context.Context) {
	w.Logger.Info("🚀 CleanupWorker started")
	for {
		select {
		case <-ctx.Done():
			w.Logger.Info("🛑 Cleanup worker stopped")
			return
		default:
			pending, err := w.CleanupRepo.GetPending(ctx, int64(w.BatchSize))
			if err != nil {
				w.Logger.Error("❌ Error fetching pending cleanup tasks:", zap.Error(err))
				time.Sleep(time.Second)
				continue
			}

			for _, task := range pending {
				w.processTask(ctx, task)
			}

			time.Sleep(5 * time.Second)
		}
	}
}

func (w *CleanupWorker) processTask(ctx context.Context, task *cleanup.Task) {
	if task == nil {
		return
	}
	paths := task.PathList()
	if len(paths) == 0 {
		if err := w.CleanupRepo.MarkDone(ctx, task.ID); err != nil {
			w.Logger.Warn("⚠️ Could not mark empty cleanup task done:", zap.Error(err))
		}
		return
	}

	w.Logger.Info("➡ Processing cleanup task",
		zap.String("ID", task.ID.String()),
		zap.String("StatusID", task.StatusID.String()),
		zap.Int("Paths", len(paths)))

	if err := w.Storage.Remove(ctx, paths); err != nil {
		w.Logger.Warn("⚠️ Blob removal still failing:",
			zap.String("ID", task.ID.String()),
			zap.Int("Attempts", task.Attempts+1),
			zap.Error(err))
		if task.Attempts+1 >= cleanup.MaxAttempts {
			if err := w.CleanupRepo.MarkFailed(ctx, task.ID); err != nil {
				w.Logger.Warn("⚠️ Could not park cleanup task as failed:", zap.Error(err))
			}
			return
		}
		if err := w.CleanupRepo.BumpAttempts(ctx, task.ID); err != nil {
			w.Logger.Warn("⚠️ Could not bump cleanup attempts:", zap.Error(err))
		}
		return
	}

	if err := w.CleanupRepo.MarkDone(ctx, task.ID); err != nil {
		w.Logger.Warn("⚠️ Could not mark cleanup task done:", zap.Error(err))
	} else {
		w.Logger.Info("✅ Cleanup task done", zap.String("ID", task.ID.String()))
	}
}
