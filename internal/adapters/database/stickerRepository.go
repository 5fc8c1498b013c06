package database

import (
	"context"

	"lahza/internal/config"
	statusEntity "lahza/internal/core/status"
)

type StickerRepositoryDatabase struct{}

func NewStickerRepositoryDatabase() *StickerRepositoryDatabase {
	return &StickerRepositoryDatabase{}
}

func (repo *StickerRepositoryDatabase) AddBatch(ctx context.Context, stickers []*statusEntity.Sticker) error {
	if len(stickers) == 0 {
		return nil
	}
	return config.DB.CreateInBatches(&stickers, len(stickers)).Error
}

func (repo *StickerRepositoryDatabase) FindByStatusID(ctx context.Context, statusID string) ([]*statusEntity.Sticker, error) {
	var stickers []*statusEntity.Sticker
	if err := config.DB.Where("status_id = ?", statusID).Find(&stickers).Error; err != nil {
		return nil, err
	}
	return stickers, nil
}

func (repo *StickerRepositoryDatabase) DeleteByStatusID(ctx context.Context, statusID string) error {
	return config.DB.Where("status_id = ?", statusID).Delete(&statusEntity.Sticker{}).Error
}
