package httpapi

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"lahza/internal/adapters/httpapi/middleware"
	feedPort "lahza/internal/ports/feed"
	relationPort "lahza/internal/ports/relation"
	statusPort "lahza/internal/ports/status"
	userPort "lahza/internal/ports/user"
	viewPort "lahza/internal/ports/view"
)

// Inbound ports: what the controllers need from the use cases.

type UserUseCase interface {
	LoginUser(ctx context.Context, username, password string) (*userPort.LoginResponse, error)
	RegisterUser(ctx context.Context, name, family, username, mobile, password string) (*userPort.UserDTO, error)
}

type StatusUseCase interface {
	Create(ctx context.Context, ownerID string, in *statusPort.CreateInput) (*statusPort.StatusDTO, error)
	Delete(ctx context.Context, ownerID, statusID string) (bool, error)
	Archive(ctx context.Context, ownerID, statusID string) (bool, error)
	GetActive(ctx context.Context, ownerID string) (*statusPort.StatusDTO, error)
	GetAll(ctx context.Context, ownerID string, includingInactive bool) ([]*statusPort.StatusDTO, error)
}

type FeedUseCase interface {
	ComposeFeed(ctx context.Context, viewerID string) ([]*feedPort.BubbleDTO, error)
	ComposeFeedForConversations(ctx context.Context, viewerID string) ([]*feedPort.BubbleDTO, error)
}

type ViewUseCase interface {
	MarkViewed(ctx context.Context, viewerID, statusID string) (bool, error)
	ViewerCount(ctx context.Context, callerID, statusID string) (int64, error)
	Viewers(ctx context.Context, callerID, statusID string) ([]*viewPort.ViewerDTO, error)
}

type RelationUseCase interface {
	FollowUser(ctx context.Context, followerID, followeeID string) error
	UnfollowUser(ctx context.Context, followerID, followeeID string) error
	IsFriendOrFollower(ctx context.Context, viewerID, ownerID string) (bool, error)
	GetFollowersByUserID(ctx context.Context, userID string) ([]*relationPort.RelationDTO, error)
	GetFollowingByUserID(ctx context.Context, userID string) ([]*relationPort.RelationDTO, error)
}

type MediaUseCase interface {
	SignedURL(ctx context.Context, path string, ttl time.Duration) (string, error)
}

// SetupRoutes wires the controllers; use cases come from outside.
func SetupRoutes(
	userUC UserUseCase,
	statusUC StatusUseCase,
	feedUC FeedUseCase,
	viewUC ViewUseCase,
	relationUC RelationUseCase,
	mediaUC MediaUseCase,
) *gin.Engine {
	r := gin.Default()
	uc := NewUserController(userUC)
	sc := NewStatusController(statusUC)
	fc := NewFeedController(feedUC)
	vc := NewViewController(viewUC)
	rc := NewRelationController(relationUC)
	mc := NewMediaController(mediaUC)

	r.POST("/register", uc.RegisterUser)
	r.POST("/login", uc.LoginUser)

	auth := middleware.JWTAuthMiddleware()

	r.POST("/status", auth, sc.CreateStatus)
	r.GET("/status", auth, sc.GetOwnStatuses)
	r.GET("/status/active", auth, sc.GetActiveStatus)
	r.DELETE("/status/:id", auth, sc.DeleteStatus)
	r.POST("/status/:id/archive", auth, sc.ArchiveStatus)

	r.POST("/status/:id/view", auth, vc.MarkViewed)
	r.GET("/status/:id/viewers", auth, vc.Viewers)

	r.GET("/feed", auth, fc.GetFeed)
	r.GET("/feed/conversations", auth, fc.GetConversationFeed)

	r.GET("/media/url", auth, mc.SignedURL)

	r.POST("/follow", auth, rc.FollowUser)
	r.POST("/unfollow", auth, rc.UnfollowUser)
	r.GET("/followers", auth, rc.GetFollowersByUserID)
	r.GET("/following", auth, rc.GetFollowingByUserID)

	return r
}
