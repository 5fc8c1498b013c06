package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	mediaapp "lahza/internal/core/media/service"
)

type MediaController struct{ mc MediaUseCase }

func NewMediaController(mc MediaUseCase) *MediaController { return &MediaController{mc: mc} }

// SignedURL exchanges a stored object path for a short-lived accessible URL.
// The optional ttl query parameter is in seconds.
func (ctl *MediaController) SignedURL(c *gin.Context) {
	_, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	path := c.Query("path")
	if path == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "path is required"})
		return
	}

	ttl := mediaapp.DefaultSignedURLTTL
	if raw := c.Query("ttl"); raw != "" {
		secs, err := strconv.Atoi(raw)
		if err != nil || secs <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ttl"})
			return
		}
		ttl = time.Duration(secs) * time.Second
	}

	url, err := ctl.mc.SignedURL(c.Request.Context(), path, ttl)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "could not sign url"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url, "expires_in": int(ttl.Seconds())})
}
