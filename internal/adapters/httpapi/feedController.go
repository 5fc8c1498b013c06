package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lahza/internal/config"
	feedPort "lahza/internal/ports/feed"
)

type FeedController struct{ fc FeedUseCase }

func NewFeedController(fc FeedUseCase) *FeedController { return &FeedController{fc: fc} }

// GetFeed returns the general-feed bubbles. A story bar is non-critical UI:
// composition failures degrade to an empty feed instead of an error screen.
func (ctl *FeedController) GetFeed(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	bubbles, err := ctl.fc.ComposeFeed(c.Request.Context(), userID.(string))
	if err != nil {
		config.Logger.Warn("⚠️ Feed composition failed", zap.String("viewerID", userID.(string)), zap.Error(err))
		bubbles = []*feedPort.BubbleDTO{}
	}
	c.JSON(http.StatusOK, gin.H{"feed": bubbles})
}

func (ctl *FeedController) GetConversationFeed(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	bubbles, err := ctl.fc.ComposeFeedForConversations(c.Request.Context(), userID.(string))
	if err != nil {
		config.Logger.Warn("⚠️ Conversation feed composition failed", zap.String("viewerID", userID.(string)), zap.Error(err))
		bubbles = []*feedPort.BubbleDTO{}
	}
	c.JSON(http.StatusOK, gin.H{"feed": bubbles})
}
