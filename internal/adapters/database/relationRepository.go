package database

import (
	"context"

	"lahza/internal/config"
	relationEntity "lahza/internal/core/relation"
)

// RelationRepositoryDatabase implements the social-graph port.
type RelationRepositoryDatabase struct{}

func NewRelationRepositoryDatabase() *RelationRepositoryDatabase {
	return &RelationRepositoryDatabase{}
}

func (repo *RelationRepositoryDatabase) Follow(ctx context.Context, rel *relationEntity.Relation) (*relationEntity.Relation, error) {
	if err := config.DB.Create(rel).Error; err != nil {
		return nil, err
	}
	return rel, nil
}

func (repo *RelationRepositoryDatabase) Unfollow(ctx context.Context, followerID, userID string) error {
	return config.DB.
		Where("follower_id = ? AND user_id = ?", followerID, userID).
		Delete(&relationEntity.Relation{}).Error
}

// IsFriendOrFollower: viewer follows owner. Friend and follower edges live
// in the same table so one predicate answers both privacy levels.
func (repo *RelationRepositoryDatabase) IsFriendOrFollower(ctx context.Context, viewerID, ownerID string) (bool, error) {
	var count int64
	err := config.DB.Model(&relationEntity.Relation{}).
		Where("follower_id = ? AND user_id = ?", viewerID, ownerID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// FriendsOf returns the ids the user follows.
func (repo *RelationRepositoryDatabase) FriendsOf(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	err := config.DB.Model(&relationEntity.Relation{}).
		Where("follower_id = ?", userID).
		Pluck("user_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (repo *RelationRepositoryDatabase) GetFollowersByUserID(ctx context.Context, userID string) ([]*relationEntity.Relation, error) {
	var followers []*relationEntity.Relation
	if err := config.DB.Where("user_id = ?", userID).Find(&followers).Error; err != nil {
		return nil, err
	}
	return followers, nil
}

func (repo *RelationRepositoryDatabase) GetFollowingByUserID(ctx context.Context, followerID string) ([]*relationEntity.Relation, error) {
	var following []*relationEntity.Relation
	if err := config.DB.Where("follower_id = ?", followerID).Find(&following).Error; err != nil {
		return nil, err
	}
	return following, nil
}
