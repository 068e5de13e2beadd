package repositories

import (
	"catalog-api/models"

	"gorm.io/gorm"
)

type LikeRepository interface {
	GetByTarget(userID uint, req models.ToggleLikeRequest) (*models.Like, error)
	Create(like *models.Like) error
	Delete(like *models.Like) error
	CountByModel(modelID uint) (int64, error)
	CountByContent(contentID uint) (int64, error)
}

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) GetByTarget(userID uint, req models.ToggleLikeRequest) (*models.Like, error) {
	var like models.Like
	query := r.db.Where("user_id = ? AND type = ?", userID, req.Type)

	if req.ModelID != nil {
		query = query.Where("model_id = ?", *req.ModelID)
	}
	if req.ContentID != nil {
		query = query.Where("content_id = ?", *req.ContentID)
	}

	err := query.First(&like).Error
	return &like, err
}

func (r *likeRepository) Create(like *models.Like) error {
	return r.db.Create(like).Error
}

func (r *likeRepository) Delete(like *models.Like) error {
	return r.db.Delete(like).Error
}

func (r *likeRepository) CountByModel(modelID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Like{}).
		Where("model_id = ? AND type = ?", modelID, models.LikeTypeModel).
		Count(&count).Error
	return count, err
}

func (r *likeRepository) CountByContent(contentID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Like{}).
		Where("content_id = ? AND type = ?", contentID, models.LikeTypeContent).
		Count(&count).Error
	return count, err
}
