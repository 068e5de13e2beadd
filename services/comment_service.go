package services

import (
	"errors"

	"catalog-api/models"
	"catalog-api/repositories"

	"gorm.io/gorm"
)

type CommentService interface {
	CreateComment(userID uint, req models.CreateCommentRequest) (*models.Comment, error)
	GetCommentsForModel(slug string, params models.CommentListParams) (*models.CommentListResponse, error)
	GetCommentsForContent(contentID uint, params models.CommentListParams) (*models.CommentListResponse, error)
	DeleteComment(userID uint, isAdmin bool, commentID uint) error
	ToggleCommentLike(userID, commentID uint) (bool, error)
}

type commentService struct {
	commentRepo repositories.CommentRepository
	modelRepo   repositories.ModelRepository
	contentRepo repositories.ContentRepository
}

func NewCommentService(commentRepo repositories.CommentRepository, modelRepo repositories.ModelRepository, contentRepo repositories.ContentRepository) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		modelRepo:   modelRepo,
		contentRepo: contentRepo,
	}
}

func (s *commentService) CreateComment(userID uint, req models.CreateCommentRequest) (*models.Comment, error) {
	// A comment targets exactly one of model or content.
	if (req.ModelID == nil) == (req.ContentID == nil) {
		return nil, models.ErrorBadRequest{Message: "exactly one of model_id or content_id is required"}
	}

	if req.ModelID != nil {
		if _, err := s.modelRepo.GetByID(*req.ModelID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, models.ErrorNotFound{Message: "model not found"}
			}
			return nil, models.ErrorInternalServer{Message: "failed to load model"}
		}
	}

	if req.ContentID != nil {
		if _, err := s.contentRepo.GetByID(*req.ContentID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, models.ErrorNotFound{Message: "content not found"}
			}
			return nil, models.ErrorInternalServer{Message: "failed to load content"}
		}
	}

	comment := &models.Comment{
		UserID:    userID,
		ModelID:   req.ModelID,
		ContentID: req.ContentID,
		Text:      req.Text,
		IsActive:  true,
	}

	if err := s.commentRepo.Create(comment); err != nil {
		return nil, models.ErrorInternalServer{Message: "failed to create comment"}
	}

	return comment, nil
}

func (s *commentService) GetCommentsForModel(slug string, params models.CommentListParams) (*models.CommentListResponse, error) {
	model, err := s.modelRepo.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "model not found"}
		}
		return nil, models.ErrorInternalServer{Message: "failed to load model"}
	}

	comments, total, err := s.commentRepo.GetListByModel(model.ID, params)
	if err != nil {
		return nil, models.ErrorInternalServer{Message: "failed to list comments"}
	}

	return newCommentListResponse(comments, params, total), nil
}

func (s *commentService) GetCommentsForContent(contentID uint, params models.CommentListParams) (*models.CommentListResponse, error) {
	if _, err := s.contentRepo.GetByID(contentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "content not found"}
		}
		return nil, models.ErrorInternalServer{Message: "failed to load content"}
	}

	comments, total, err := s.commentRepo.GetListByContent(contentID, params)
	if err != nil {
		return nil, models.ErrorInternalServer{Message: "failed to list comments"}
	}

	return newCommentListResponse(comments, params, total), nil
}

func (s *commentService) DeleteComment(userID uint, isAdmin bool, commentID uint) error {
	comment, err := s.commentRepo.GetByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrorNotFound{Message: "comment not found"}
		}
		return models.ErrorInternalServer{Message: "failed to load comment"}
	}

	if comment.UserID != userID && !isAdmin {
		return models.ErrorForbidden{Message: "not allowed to delete this comment"}
	}

	if err := s.commentRepo.SoftDelete(commentID); err != nil {
		return models.ErrorInternalServer{Message: "failed to delete comment"}
	}

	return nil
}

func (s *commentService) ToggleCommentLike(userID, commentID uint) (bool, error) {
	if _, err := s.commentRepo.GetByID(commentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, models.ErrorNotFound{Message: "comment not found"}
		}
		return false, models.ErrorInternalServer{Message: "failed to load comment"}
	}

	liked, err := s.commentRepo.ToggleLike(userID, commentID)
	if err != nil {
		return false, models.ErrorInternalServer{Message: "failed to toggle comment like"}
	}

	return liked, nil
}

func newCommentListResponse(comments []models.Comment, params models.CommentListParams, total int64) *models.CommentListResponse {
	if comments == nil {
		comments = []models.Comment{}
	}

	return &models.CommentListResponse{
		Comments:   comments,
		Pagination: models.NewPagination(params.Page, params.Limit, total),
	}
}
