package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"github.com/carnage89/AlexeyR/internal/platform/apperr"
	"github.com/carnage89/AlexeyR/internal/services"
)

type ContentHandler struct {
	contentService services.ContentService
}

func NewContentHandler(contentService services.ContentService) *ContentHandler {
	return &ContentHandler{contentService: contentService}
}

func (ch *ContentHandler) GetAll(c *gin.Context) {
	blocks, err := ch.contentService.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "content_fetch_failed", errors.New("failed to fetch content"))
		return
	}
	c.JSON(http.StatusOK, blocks)
}

func (ch *ContentHandler) GetBySection(c *gin.Context) {
	block, err := ch.contentService.GetBySection(c.Request.Context(), c.Param("section"))
	if errors.Is(err, apperr.ErrNotFound) {
		respondError(c, http.StatusNotFound, "content_not_found", errors.New("content not found"))
		return
	}
	if err != nil {
		respondError(c, http.StatusInternalServerError, "content_fetch_failed", errors.New("failed to fetch content"))
		return
	}
	c.JSON(http.StatusOK, block)
}

func (ch *ContentHandler) Update(c *gin.Context) {
	var req struct {
		Content map[string]interface{} `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalid(c, "invalid_content_data", err)
		return
	}
	block, err := ch.contentService.Upsert(c.Request.Context(), c.Param("section"), datatypes.JSONMap(req.Content))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "content_update_failed", errors.New("failed to update content"))
		return
	}
	c.JSON(http.StatusOK, block)
}
