package handlers

import (
	"strconv"

	"catalog-api/helper"
	"catalog-api/models"
	"catalog-api/services"

	"github.com/gin-gonic/gin"
)

type ModelHandler struct {
	modelService   services.ModelService
	commentService services.CommentService
	Helper         *helper.HTTPHelper
}

func NewModelHandler(modelService services.ModelService, commentService services.CommentService) *ModelHandler {
	return &ModelHandler{
		modelService:   modelService,
		commentService: commentService,
	}
}

// GetModels lists active models with filtering, sorting and pagination.
// Malformed or missing query parameters fall back to defaults.
func (h *ModelHandler) GetModels(c *gin.Context) {
	params := models.ParseModelListParams(c.Request.URL.Query())

	response, err := h.modelService.GetModels(params)
	if err != nil {
		sendServiceError(h.Helper, c, err)
		return
	}

	h.Helper.SendSuccess(c, "Models loaded", response)
}

// GetModel resolves a detail lookup by slug. The view counter moves on
// every successful call; logged-in viewers also get a history record.
func (h *ModelHandler) GetModel(c *gin.Context) {
	viewerID := userIDFromContext(c)

	model, err := h.modelService.GetModelBySlug(c.Param("slug"), viewerID)
	if err != nil {
		sendServiceError(h.Helper, c, err)
		return
	}

	h.Helper.SendSuccess(c, "Model loaded", model)
}

func (h *ModelHandler) GetModelComments(c *gin.Context) {
	params := models.ParseCommentListParams(c.Request.URL.Query())

	response, err := h.commentService.GetCommentsForModel(c.Param("slug"), params)
	if err != nil {
		sendServiceError(h.Helper, c, err)
		return
	}

	h.Helper.SendSuccess(c, "Comments loaded", response)
}

func (h *ModelHandler) CreateModel(c *gin.Context) {
	var req models.CreateModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	model, err := h.modelService.CreateModel(req)
	if err != nil {
		sendServiceError(h.Helper, c, err)
		return
	}

	h.Helper.SendCreated(c, "Model created successfully", model)
}

func (h *ModelHandler) UpdateModel(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid model ID", h.Helper.EmptyJsonMap())
		return
	}

	var req models.UpdateModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	model, err := h.modelService.UpdateModel(uint(id), req)
	if err != nil {
		sendServiceError(h.Helper, c, err)
		return
	}

	h.Helper.SendSuccess(c, "Model updated successfully", model)
}

func (h *ModelHandler) DeleteModel(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid model ID", h.Helper.EmptyJsonMap())
		return
	}

	if err := h.modelService.DeleteModel(uint(id)); err != nil {
		sendServiceError(h.Helper, c, err)
		return
	}

	h.Helper.SendSuccess(c, "Model deleted successfully", h.Helper.EmptyJsonMap())
}
