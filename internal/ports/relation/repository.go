package relation

import (
	"context"

	"lahza/internal/core/relation"
)

// RelationRepository is the social-graph port. FriendsOf returns the ids the
// user follows; IsFriendOrFollower is the single predicate the visibility
// resolver consumes for both the friends and followers privacy levels.
type RelationRepository interface {
	Follow(ctx context.Context, rel *relation.Relation) (*relation.Relation, error)
	Unfollow(ctx context.Context, followerID, userID string) error
	IsFriendOrFollower(ctx context.Context, viewerID, ownerID string) (bool, error)
	FriendsOf(ctx context.Context, userID string) ([]string, error)
	GetFollowersByUserID(ctx context.Context, userID string) ([]*relation.Relation, error)
	GetFollowingByUserID(ctx context.Context, followerID string) ([]*relation.Relation, error)
}

type RelationDTO struct {
	ID         string `json:"id"`
	UserID     string `json:"userId"`
	FollowerID string `json:"followerId"`
}
