package database

import (
	"context"

	"github.com/gofrs/uuid"
	"gorm.io/gorm/clause"

	"lahza/internal/config"
	viewEntity "lahza/internal/core/view"
)

// ViewRepositoryDatabase persists view facts. The insert goes through a
// single ON CONFLICT DO NOTHING on the (status_id, viewer_id) unique key,
// so two near-simultaneous views race safely without a check-then-insert.
type ViewRepositoryDatabase struct{}

func NewViewRepositoryDatabase() *ViewRepositoryDatabase {
	return &ViewRepositoryDatabase{}
}

func (repo *ViewRepositoryDatabase) MarkViewed(ctx context.Context, statusID, viewerID string) error {
	row := &viewEntity.StatusView{
		ID:       uuid.Must(uuid.NewV4()),
		StatusID: uuid.FromStringOrNil(statusID),
		ViewerID: uuid.FromStringOrNil(viewerID),
	}
	return config.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(row).Error
}

func (repo *ViewRepositoryDatabase) Exists(ctx context.Context, statusID, viewerID string) (bool, error) {
	var count int64
	err := config.DB.Model(&viewEntity.StatusView{}).
		Where("status_id = ? AND viewer_id = ?", statusID, viewerID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (repo *ViewRepositoryDatabase) CountByStatusID(ctx context.Context, statusID string) (int64, error) {
	var count int64
	err := config.DB.Model(&viewEntity.StatusView{}).
		Where("status_id = ?", statusID).
		Count(&count).Error
	return count, err
}

func (repo *ViewRepositoryDatabase) ListByStatusID(ctx context.Context, statusID string) ([]*viewEntity.StatusView, error) {
	var views []*viewEntity.StatusView
	err := config.DB.Preload("Viewer").
		Where("status_id = ?", statusID).
		Order("viewed_at ASC").
		Find(&views).Error
	if err != nil {
		return nil, err
	}
	return views, nil
}
