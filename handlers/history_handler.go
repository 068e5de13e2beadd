package handlers

import (
	"catalog-api/helper"
	"catalog-api/models"
	"catalog-api/services"

	"github.com/gin-gonic/gin"
)

type HistoryHandler struct {
	historyService services.HistoryService
	Helper         *helper.HTTPHelper
}

func NewHistoryHandler(historyService services.HistoryService) *HistoryHandler {
	return &HistoryHandler{historyService: historyService}
}

func (h *HistoryHandler) GetHistory(c *gin.Context) {
	userID := userIDFromContext(c)
	if userID == 0 {
		h.Helper.SendUnauthorizedError(c, "User not found in context", h.Helper.EmptyJsonMap())
		return
	}

	params := models.ParseHistoryListParams(c.Request.URL.Query())

	response, err := h.historyService.GetHistory(userID, params)
	if err != nil {
		sendServiceError(h.Helper, c, err)
		return
	}

	h.Helper.SendSuccess(c, "History loaded", response)
}
