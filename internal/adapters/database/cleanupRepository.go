package database

import (
	"context"
	"time"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"

	"lahza/internal/config"
	cleanupEntity "lahza/internal/core/cleanup"
)

// CleanupRepositoryDatabase stores deferred blob removals for the worker.
type CleanupRepositoryDatabase struct{}

func NewCleanupRepositoryDatabase() *CleanupRepositoryDatabase {
	return &CleanupRepositoryDatabase{}
}

func (repo *CleanupRepositoryDatabase) Enqueue(ctx context.Context, task *cleanupEntity.Task) (*cleanupEntity.Task, error) {
	if err := config.DB.Create(task).Error; err != nil {
		return nil, err
	}
	return task, nil
}

func (repo *CleanupRepositoryDatabase) GetPending(ctx context.Context, limit int64) ([]*cleanupEntity.Task, error) {
	var tasks []*cleanupEntity.Task
	err := config.DB.
		Where("status = ?", cleanupEntity.StatusPending).
		Order("created_at ASC").
		Limit(int(limit)).
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

func (repo *CleanupRepositoryDatabase) BumpAttempts(ctx context.Context, id uuid.UUID) error {
	return config.DB.Model(&cleanupEntity.Task{}).
		Where("id = ?", id).
		UpdateColumn("attempts", gorm.Expr("attempts + ?", 1)).Error
}

func (repo *CleanupRepositoryDatabase) MarkDone(ctx context.Context, id uuid.UUID) error {
	now := time.Now()
	return config.DB.Model(&cleanupEntity.Task{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"status": cleanupEntity.StatusDone, "processed_at": now}).Error
}

func (repo *CleanupRepositoryDatabase) MarkFailed(ctx context.Context, id uuid.UUID) error {
	now := time.Now()
	return config.DB.Model(&cleanupEntity.Task{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"status": cleanupEntity.StatusFailed, "processed_at": now}).Error
}
