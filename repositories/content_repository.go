package repositories

import (
	"catalog-api/models"

	"gorm.io/gorm"
)

type ContentRepository interface {
	Create(content *models.Content) error
	GetByID(id uint) (*models.Content, error)
	GetActiveByModelID(modelID uint) ([]models.Content, error)
	Update(content *models.Content) error
	SoftDelete(id uint) error
	IncrementViews(id uint) error
}

type contentRepository struct {
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) ContentRepository {
	return &contentRepository{db: db}
}

func (r *contentRepository) Create(content *models.Content) error {
	return r.db.Create(content).Error
}

func (r *contentRepository) GetByID(id uint) (*models.Content, error) {
	var content models.Content
	err := r.db.Where("id = ? AND is_active = ?", id, true).First(&content).Error
	return &content, err
}

func (r *contentRepository) GetActiveByModelID(modelID uint) ([]models.Content, error) {
	var contents []models.Content
	err := r.db.Where("model_id = ? AND is_active = ?", modelID, true).
		Order("created_at DESC").
		Find(&contents).Error
	return contents, err
}

func (r *contentRepository) Update(content *models.Content) error {
	return r.db.Save(content).Error
}

func (r *contentRepository) SoftDelete(id uint) error {
	return r.db.Model(&models.Content{}).Where("id = ?", id).
		Update("is_active", false).Error
}

func (r *contentRepository) IncrementViews(id uint) error {
	return r.db.Model(&models.Content{}).Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1)).Error
}
