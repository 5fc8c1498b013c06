package database

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"lahza/internal/config"
	statusEntity "lahza/internal/core/status"
)

// StatusRepositoryDatabase implements the status port over MySQL. The
// activity predicate lives in the queries: expiration is never a write.
type StatusRepositoryDatabase struct{}

func NewStatusRepositoryDatabase() *StatusRepositoryDatabase {
	return &StatusRepositoryDatabase{}
}

const activeClause = "archived = ? AND expires_at > ?"

func (repo *StatusRepositoryDatabase) Create(ctx context.Context, st *statusEntity.Status) (*statusEntity.Status, error) {
	if err := config.DB.Create(st).Error; err != nil {
		return nil, err
	}
	return st, nil
}

// FindByID returns (nil, nil) when no row matches; callers collapse absence
// and forbidden into the same outcome.
func (repo *StatusRepositoryDatabase) FindByID(ctx context.Context, id string) (*statusEntity.Status, error) {
	var st statusEntity.Status
	if err := config.DB.Where("id = ?", id).First(&st).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &st, nil
}

func (repo *StatusRepositoryDatabase) FindActive(ctx context.Context, now time.Time) ([]*statusEntity.Status, error) {
	var statuses []*statusEntity.Status
	err := config.DB.
		Where(activeClause, false, now).
		Order("created_at DESC, id ASC").
		Find(&statuses).Error
	if err != nil {
		return nil, err
	}
	return statuses, nil
}

func (repo *StatusRepositoryDatabase) FindActiveByUserIDs(ctx context.Context, userIDs []string, now time.Time) ([]*statusEntity.Status, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	var statuses []*statusEntity.Status
	err := config.DB.
		Where("user_id IN ?", userIDs).
		Where(activeClause, false, now).
		Order("created_at DESC, id ASC").
		Find(&statuses).Error
	if err != nil {
		return nil, err
	}
	return statuses, nil
}

func (repo *StatusRepositoryDatabase) FindActiveByUserID(ctx context.Context, userID string, now time.Time) (*statusEntity.Status, error) {
	var st statusEntity.Status
	err := config.DB.
		Where("user_id = ?", userID).
		Where(activeClause, false, now).
		Order("created_at DESC, id ASC").
		First(&st).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &st, nil
}

func (repo *StatusRepositoryDatabase) FindAllByUserID(ctx context.Context, userID string, includingInactive bool, now time.Time) ([]*statusEntity.Status, error) {
	q := config.DB.Where("user_id = ?", userID)
	if !includingInactive {
		q = q.Where(activeClause, false, now)
	}
	var statuses []*statusEntity.Status
	if err := q.Order("created_at DESC, id ASC").Find(&statuses).Error; err != nil {
		return nil, err
	}
	return statuses, nil
}

func (repo *StatusRepositoryDatabase) Archive(ctx context.Context, id string, at time.Time) error {
	return config.DB.Model(&statusEntity.Status{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"archived": true, "archived_at": at}).Error
}

func (repo *StatusRepositoryDatabase) Delete(ctx context.Context, id string) error {
	return config.DB.Where("id = ?", id).Delete(&statusEntity.Status{}).Error
}
