package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
)

type RelationController struct{ rc RelationUseCase }

func NewRelationController(rc RelationUseCase) *RelationController {
	return &RelationController{rc: rc}
}

func (ctl *RelationController) FollowUser(c *gin.Context) {
	var req struct {
		FolloweeID string `json:"followee_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	if userID.(string) == req.FolloweeID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot follow yourself"})
		return
	}
	if _, err := uuid.FromString(req.FolloweeID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid followee_id"})
		return
	}

	isFollowing, err := ctl.rc.IsFriendOrFollower(c.Request.Context(), userID.(string), req.FolloweeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not check follow status"})
		return
	}
	if isFollowing {
		c.JSON(http.StatusConflict, gin.H{"error": "already following this user"})
		return
	}

	if err := ctl.rc.FollowUser(c.Request.Context(), userID.(string), req.FolloweeID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not follow user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "successfully followed user"})
}

func (ctl *RelationController) UnfollowUser(c *gin.Context) {
	var req struct {
		FolloweeID string `json:"followee_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	if userID.(string) == req.FolloweeID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot unfollow yourself"})
		return
	}
	if _, err := uuid.FromString(req.FolloweeID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid followee_id"})
		return
	}

	isFollowing, err := ctl.rc.IsFriendOrFollower(c.Request.Context(), userID.(string), req.FolloweeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not check follow status"})
		return
	}
	if !isFollowing {
		c.JSON(http.StatusConflict, gin.H{"error": "you are not following this user"})
		return
	}

	if err := ctl.rc.UnfollowUser(c.Request.Context(), userID.(string), req.FolloweeID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not unfollow user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "successfully unfollowed user"})
}

func (ctl *RelationController) GetFollowersByUserID(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}
	followers, err := ctl.rc.GetFollowersByUserID(c.Request.Context(), userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not get followers"})
		return
	}
	c.JSON(http.StatusOK, followers)
}

func (ctl *RelationController) GetFollowingByUserID(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}
	following, err := ctl.rc.GetFollowingByUserID(c.Request.Context(), userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not get following"})
		return
	}
	c.JSON(http.StatusOK, following)
}
