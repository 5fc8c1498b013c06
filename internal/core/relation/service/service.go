package relationapp

import (
	"context"
	"errors"

	"github.com/gofrs/uuid"
	"go.uber.org/zap"

	"lahza/internal/config"
	relationEntity "lahza/internal/core/relation"
	relationPort "lahza/internal/ports/relation"
)

type RelationService struct {
	RelationRepository relationPort.RelationRepository
}

func NewRelationService(repo relationPort.RelationRepository) *RelationService {
	return &RelationService{
		RelationRepository: repo,
	}
}

func (s *RelationService) FollowUser(ctx context.Context, followerID, followeeID string) error {
	if followerID == followeeID {
		config.Logger.Warn("⚠️ Cannot follow yourself", zap.String("userID", followerID))
		return errors.New("cannot follow yourself")
	}

	rel := &relationEntity.Relation{
		ID:         uuid.Must(uuid.NewV4()),
		UserID:     uuid.FromStringOrNil(followeeID),
		FollowerID: uuid.FromStringOrNil(followerID),
	}

	_, err := s.RelationRepository.Follow(ctx, rel)
	return err
}

func (s *RelationService) UnfollowUser(ctx context.Context, followerID, followeeID string) error {
	return s.RelationRepository.Unfollow(ctx, followerID, followeeID)
}

// IsFriendOrFollower is the predicate the visibility matrix consumes for the
// friends and followers privacy levels.
func (s *RelationService) IsFriendOrFollower(ctx context.Context, viewerID, ownerID string) (bool, error) {
	return s.RelationRepository.IsFriendOrFollower(ctx, viewerID, ownerID)
}

func (s *RelationService) GetFollowersByUserID(ctx context.Context, userID string) ([]*relationPort.RelationDTO, error) {
	followers, err := s.RelationRepository.GetFollowersByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toDTOs(followers), nil
}

func (s *RelationService) GetFollowingByUserID(ctx context.Context, userID string) ([]*relationPort.RelationDTO, error) {
	following, err := s.RelationRepository.GetFollowingByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toDTOs(following), nil
}

func toDTOs(rels []*relationEntity.Relation) []*relationPort.RelationDTO {
	dtos := make([]*relationPort.RelationDTO, 0, len(rels))
	for _, r := range rels {
		dtos = append(dtos, &relationPort.RelationDTO{
			ID:         r.ID.String(),
			UserID:     r.UserID.String(),
			FollowerID: r.FollowerID.String(),
		})
	}
	return dtos
}
