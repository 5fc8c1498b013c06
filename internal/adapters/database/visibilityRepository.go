package database

import (
	"context"

	"lahza/internal/config"
	statusEntity "lahza/internal/core/status"
)

// VisibilityRepositoryDatabase stores the custom-privacy allow-list rows.
type VisibilityRepositoryDatabase struct{}

func NewVisibilityRepositoryDatabase() *VisibilityRepositoryDatabase {
	return &VisibilityRepositoryDatabase{}
}

func (repo *VisibilityRepositoryDatabase) AddBatch(ctx context.Context, rows []*statusEntity.Visibility) error {
	if len(rows) == 0 {
		return nil
	}
	return config.DB.CreateInBatches(&rows, len(rows)).Error
}

func (repo *VisibilityRepositoryDatabase) IsAllowed(ctx context.Context, statusID, viewerID string) (bool, error) {
	var count int64
	err := config.DB.Model(&statusEntity.Visibility{}).
		Where("status_id = ? AND allowed_user_id = ?", statusID, viewerID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (repo *VisibilityRepositoryDatabase) DeleteByStatusID(ctx context.Context, statusID string) error {
	return config.DB.Where("status_id = ?", statusID).Delete(&statusEntity.Visibility{}).Error
}
