package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type ViewController struct{ vc ViewUseCase }

func NewViewController(vc ViewUseCase) *ViewController { return &ViewController{vc: vc} }

func (ctl *ViewController) MarkViewed(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	ok, err := ctl.vc.MarkViewed(c.Request.Context(), userID.(string), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not record view"})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "status not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"viewed": true})
}

// Viewers is owner-only; other callers get an empty list, not a 403.
func (ctl *ViewController) Viewers(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	statusID := c.Param("id")
	viewers, err := ctl.vc.Viewers(c.Request.Context(), userID.(string), statusID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list viewers"})
		return
	}
	count, err := ctl.vc.ViewerCount(c.Request.Context(), userID.(string), statusID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not count viewers"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count, "viewers": viewers})
}
