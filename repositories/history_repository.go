package repositories

import (
	"catalog-api/models"

	"gorm.io/gorm"
)

type HistoryRepository interface {
	Create(record *models.UserHistory) error
	GetListByUser(userID uint, params models.HistoryListParams) ([]models.UserHistory, int64, error)
}

type historyRepository struct {
	db *gorm.DB
}

func NewHistoryRepository(db *gorm.DB) HistoryRepository {
	return &historyRepository{db: db}
}

func (r *historyRepository) Create(record *models.UserHistory) error {
	return r.db.Create(record).Error
}

func (r *historyRepository) GetListByUser(userID uint, params models.HistoryListParams) ([]models.UserHistory, int64, error) {
	var records []models.UserHistory
	var total int64

	query := r.db.Model(&models.UserHistory{}).Where("user_id = ?", userID)

	if params.Action != "" {
		query = query.Where("action = ?", params.Action)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC, id DESC").
		Offset(params.Offset()).Limit(params.Limit).
		Preload("Model").
		Preload("Content").
		Find(&records).Error

	return records, total, err
}
