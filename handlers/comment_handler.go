package handlers

import (
	"strconv"

	"catalog-api/helper"
	"catalog-api/models"
	"catalog-api/services"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentService services.CommentService
	Helper         *helper.HTTPHelper
}

func NewCommentHandler(commentService services.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

func (h *CommentHandler) CreateComment(c *gin.Context) {
	userID := userIDFromContext(c)

	var req models.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	comment, err := h.commentService.CreateComment(userID, req)
	if err != nil {
		sendServiceError(h.Helper, c, err)
		return
	}

	h.Helper.SendCreated(c, "Comment created successfully", comment)
}

func (h *CommentHandler) GetContentComments(c *gin.Context) {
	contentID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid content ID", h.Helper.EmptyJsonMap())
		return
	}

	params := models.ParseCommentListParams(c.Request.URL.Query())

	response, err := h.commentService.GetCommentsForContent(uint(contentID), params)
	if err != nil {
		sendServiceError(h.Helper, c, err)
		return
	}

	h.Helper.SendSuccess(c, "Comments loaded", response)
}

func (h *CommentHandler) DeleteComment(c *gin.Context) {
	userID := userIDFromContext(c)
	isAdmin := isAdminFromContext(c)

	commentID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid comment ID", h.Helper.EmptyJsonMap())
		return
	}

	if err := h.commentService.DeleteComment(userID, isAdmin, uint(commentID)); err != nil {
		sendServiceError(h.Helper, c, err)
		return
	}

	h.Helper.SendSuccess(c, "Comment deleted successfully", h.Helper.EmptyJsonMap())
}

func (h *CommentHandler) ToggleCommentLike(c *gin.Context) {
	userID := userIDFromContext(c)

	commentID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid comment ID", h.Helper.EmptyJsonMap())
		return
	}

	liked, err := h.commentService.ToggleCommentLike(userID, uint(commentID))
	if err != nil {
		sendServiceError(h.Helper, c, err)
		return
	}

	h.Helper.SendSuccess(c, "Comment like toggled", gin.H{"liked": liked})
}
