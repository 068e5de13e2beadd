package repositories

import (
	"errors"

	"catalog-api/models"

	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(comment *models.Comment) error
	GetByID(id uint) (*models.Comment, error)
	GetListByModel(modelID uint, params models.CommentListParams) ([]models.Comment, int64, error)
	GetListByContent(contentID uint, params models.CommentListParams) ([]models.Comment, int64, error)
	SoftDelete(id uint) error
	ToggleLike(userID, commentID uint) (bool, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

func (r *commentRepository) GetByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.Where("id = ? AND is_active = ?", id, true).First(&comment).Error
	return &comment, err
}

func (r *commentRepository) GetListByModel(modelID uint, params models.CommentListParams) ([]models.Comment, int64, error) {
	return r.getList(r.db.Where("model_id = ?", modelID), params)
}

func (r *commentRepository) GetListByContent(contentID uint, params models.CommentListParams) ([]models.Comment, int64, error) {
	return r.getList(r.db.Where("content_id = ?", contentID), params)
}

func (r *commentRepository) getList(tx *gorm.DB, params models.CommentListParams) ([]models.Comment, int64, error) {
	var comments []models.Comment
	var total int64

	query := tx.Model(&models.Comment{}).Where("is_active = ?", true)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC, id DESC").
		Offset(params.Offset()).Limit(params.Limit).
		Preload("User").
		Find(&comments).Error

	return comments, total, err
}

func (r *commentRepository) SoftDelete(id uint) error {
	return r.db.Model(&models.Comment{}).Where("id = ?", id).
		Update("is_active", false).Error
}

// ToggleLike flips the caller's like on a comment. The likes counter
// moves with an atomic expression inside the same transaction, so
// concurrent toggles never lose updates.
func (r *commentRepository) ToggleLike(userID, commentID uint) (bool, error) {
	var liked bool

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.CommentLike
		err := tx.Where("user_id = ? AND comment_id = ?", userID, commentID).
			First(&existing).Error

		if err == nil {
			if err := tx.Delete(&existing).Error; err != nil {
				return err
			}
			liked = false
			return tx.Model(&models.Comment{}).Where("id = ?", commentID).
				UpdateColumn("likes", gorm.Expr("GREATEST(likes - 1, 0)")).Error
		}

		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		like := models.CommentLike{UserID: userID, CommentID: commentID}
		if err := tx.Create(&like).Error; err != nil {
			return err
		}
		liked = true
		return tx.Model(&models.Comment{}).Where("id = ?", commentID).
			UpdateColumn("likes", gorm.Expr("likes + ?", 1)).Error
	})

	return liked, err
}
