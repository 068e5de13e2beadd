package services

import (
	"errors"

	"catalog-api/models"
	"catalog-api/repositories"

	"gorm.io/gorm"
)

type LikeService interface {
	ToggleLike(userID uint, req models.ToggleLikeRequest) (bool, error)
	CountForModel(modelID uint) (int64, error)
	CountForContent(contentID uint) (int64, error)
}

type likeService struct {
	likeRepo       repositories.LikeRepository
	modelRepo      repositories.ModelRepository
	contentRepo    repositories.ContentRepository
	historyService HistoryService
}

func NewLikeService(likeRepo repositories.LikeRepository, modelRepo repositories.ModelRepository, contentRepo repositories.ContentRepository, historyService HistoryService) LikeService {
	return &likeService{
		likeRepo:       likeRepo,
		modelRepo:      modelRepo,
		contentRepo:    contentRepo,
		historyService: historyService,
	}
}

// ToggleLike flips the caller's like on a model or a content item and
// reports the resulting state. A fresh like is also recorded in the
// caller's history (best-effort).
func (s *likeService) ToggleLike(userID uint, req models.ToggleLikeRequest) (bool, error) {
	historyModelID, err := s.validateTarget(req)
	if err != nil {
		return false, err
	}

	existing, err := s.likeRepo.GetByTarget(userID, req)
	if err == nil {
		if err := s.likeRepo.Delete(existing); err != nil {
			return false, models.ErrorInternalServer{Message: "failed to remove like"}
		}
		return false, nil
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, models.ErrorInternalServer{Message: "failed to load like"}
	}

	like := &models.Like{
		UserID:    userID,
		ModelID:   req.ModelID,
		ContentID: req.ContentID,
		Type:      req.Type,
	}

	if err := s.likeRepo.Create(like); err != nil {
		return false, models.ErrorInternalServer{Message: "failed to create like"}
	}

	s.historyService.Record(models.UserHistory{
		UserID:    userID,
		ModelID:   historyModelID,
		ContentID: req.ContentID,
		Action:    models.ActionLike,
	})

	return true, nil
}

func (s *likeService) CountForModel(modelID uint) (int64, error) {
	count, err := s.likeRepo.CountByModel(modelID)
	if err != nil {
		return 0, models.ErrorInternalServer{Message: "failed to count likes"}
	}
	return count, nil
}

func (s *likeService) CountForContent(contentID uint) (int64, error) {
	count, err := s.likeRepo.CountByContent(contentID)
	if err != nil {
		return 0, models.ErrorInternalServer{Message: "failed to count likes"}
	}
	return count, nil
}

// validateTarget checks the request names exactly one active target that
// matches its declared type, and returns the model id owning the target
// for history purposes.
func (s *likeService) validateTarget(req models.ToggleLikeRequest) (uint, error) {
	if (req.ModelID == nil) == (req.ContentID == nil) {
		return 0, models.ErrorBadRequest{Message: "exactly one of model_id or content_id is required"}
	}

	if req.Type == models.LikeTypeModel {
		if req.ModelID == nil {
			return 0, models.ErrorBadRequest{Message: "model_id is required for a model like"}
		}
		if _, err := s.modelRepo.GetByID(*req.ModelID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return 0, models.ErrorNotFound{Message: "model not found"}
			}
			return 0, models.ErrorInternalServer{Message: "failed to load model"}
		}
		return *req.ModelID, nil
	}

	if req.ContentID == nil {
		return 0, models.ErrorBadRequest{Message: "content_id is required for a content like"}
	}
	content, err := s.contentRepo.GetByID(*req.ContentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, models.ErrorNotFound{Message: "content not found"}
		}
		return 0, models.ErrorInternalServer{Message: "failed to load content"}
	}
	return content.ModelID, nil
}
