package httpapi

import (
	"encoding/base64"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	statusEntity "lahza/internal/core/status"
	statusPort "lahza/internal/ports/status"
)

type StatusController struct{ sc StatusUseCase }

func NewStatusController(sc StatusUseCase) *StatusController { return &StatusController{sc: sc} }

type customizationInput struct {
	BackgroundColor     string `json:"background_color"`
	TextStyle           string `json:"text_style"`
	TextEffect          string `json:"text_effect"`
	TextAlign           string `json:"text_align"`
	BackgroundImage     string `json:"background_image"`
	BackgroundImageMime string `json:"background_image_mime"`
}

func (ctl *StatusController) CreateStatus(c *gin.Context) {
	var req struct {
		ContentType    string                  `json:"content_type" binding:"required"`
		TextContent    string                  `json:"text_content"`
		Media          string                  `json:"media"`
		MediaMime      string                  `json:"media_mime"`
		Privacy        string                  `json:"privacy"`
		AllowedUserIDs []string                `json:"allowed_user_ids"`
		Customization  *customizationInput     `json:"customization"`
		Stickers       []statusPort.StickerDTO `json:"stickers"`
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

	in := &statusPort.CreateInput{
		ContentType:    req.ContentType,
		TextContent:    req.TextContent,
		Media:          decodeBase64(req.Media),
		MediaMime:      req.MediaMime,
		Privacy:        req.Privacy,
		AllowedUserIDs: req.AllowedUserIDs,
		Stickers:       req.Stickers,
	}
	if req.Customization != nil {
		in.Customization = &statusPort.CustomizationDTO{
			BackgroundColor:     req.Customization.BackgroundColor,
			TextStyle:           req.Customization.TextStyle,
			TextEffect:          req.Customization.TextEffect,
			TextAlign:           req.Customization.TextAlign,
			BackgroundImage:     decodeBase64(req.Customization.BackgroundImage),
			BackgroundImageMime: req.Customization.BackgroundImageMime,
		}
	}

	res, err := ctl.sc.Create(c.Request.Context(), userID.(string), in)
	if err != nil {
		switch {
		case errors.Is(err, statusEntity.ErrInvalidContent):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, statusEntity.ErrUploadFailed):
			c.JSON(http.StatusBadGateway, gin.H{"error": "media upload failed"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create status"})
		}
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (ctl *StatusController) GetOwnStatuses(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}
	includingInactive := c.DefaultQuery("include_inactive", "false") == "true"

	statuses, err := ctl.sc.GetAll(c.Request.Context(), userID.(string), includingInactive)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list statuses"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"statuses": statuses})
}

func (ctl *StatusController) GetActiveStatus(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	st, err := ctl.sc.GetActive(c.Request.Context(), userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load active status"})
		return
	}
	if st == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no active status"})
		return
	}
	c.JSON(http.StatusOK, st)
}

func (ctl *StatusController) DeleteStatus(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	ok, err := ctl.sc.Delete(c.Request.Context(), userID.(string), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete status"})
		return
	}
	if !ok {
		// absent and not-owned look the same from outside
		c.JSON(http.StatusNotFound, gin.H{"error": "status not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

func (ctl *StatusController) ArchiveStatus(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	ok, err := ctl.sc.Archive(c.Request.Context(), userID.(string), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not archive status"})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "status not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"archived": true})
}

// decodeBase64 accepts both raw base64 and data-URL payloads.
func decodeBase64(s string) []byte {
	if s == "" {
		return nil
	}
	if i := strings.Index(s, ","); i != -1 {
		s = s[i+1:]
	}
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil
	}
	return data
}
