package handlers

import (
	"strconv"

	"catalog-api/helper"
	"catalog-api/models"
	"catalog-api/services"

	"github.com/gin-gonic/gin"
)

type LikeHandler struct {
	likeService services.LikeService
	Helper      *helper.HTTPHelper
}

func NewLikeHandler(likeService services.LikeService) *LikeHandler {
	return &LikeHandler{likeService: likeService}
}

func (h *LikeHandler) ToggleLike(c *gin.Context) {
	userID := userIDFromContext(c)

	var req models.ToggleLikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	liked, err := h.likeService.ToggleLike(userID, req)
	if err != nil {
		sendServiceError(h.Helper, c, err)
		return
	}

	h.Helper.SendSuccess(c, "Like toggled", gin.H{"liked": liked})
}

// GetLikeCount returns the like count for one target, selected by the
// model_id or content_id query parameter.
func (h *LikeHandler) GetLikeCount(c *gin.Context) {
	if raw := c.Query("model_id"); raw != "" {
		modelID, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			h.Helper.SendBadRequest(c, "Invalid model ID", h.Helper.EmptyJsonMap())
			return
		}

		count, err := h.likeService.CountForModel(uint(modelID))
		if err != nil {
			sendServiceError(h.Helper, c, err)
			return
		}

		h.Helper.SendSuccess(c, "Like count loaded", gin.H{"count": count})
		return
	}

	if raw := c.Query("content_id"); raw != "" {
		contentID, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			h.Helper.SendBadRequest(c, "Invalid content ID", h.Helper.EmptyJsonMap())
			return
		}

		count, err := h.likeService.CountForContent(uint(contentID))
		if err != nil {
			sendServiceError(h.Helper, c, err)
			return
		}

		h.Helper.SendSuccess(c, "Like count loaded", gin.H{"count": count})
		return
	}

	h.Helper.SendBadRequest(c, "model_id or content_id is required", h.Helper.EmptyJsonMap())
}
