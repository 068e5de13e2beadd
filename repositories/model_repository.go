package repositories

import (
	"catalog-api/models"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type ModelRepository interface {
	Create(model *models.Model) error
	GetByID(id uint) (*models.Model, error)
	GetBySlug(slug string) (*models.Model, error)
	GetList(params models.ModelListParams) ([]models.Model, int64, error)
	Update(model *models.Model) error
	SoftDelete(id uint) error
	IncrementViews(id uint) error
}

type modelRepository struct {
	db *gorm.DB
}

func NewModelRepository(db *gorm.DB) ModelRepository {
	return &modelRepository{db: db}
}

func (r *modelRepository) Create(model *models.Model) error {
	return r.db.Create(model).Error
}

func (r *modelRepository) GetByID(id uint) (*models.Model, error) {
	var model models.Model
	err := r.db.Where("id = ? AND is_active = ?", id, true).
		Preload("Contents", activeContentsNewestFirst).
		First(&model).Error
	return &model, err
}

func (r *modelRepository) GetBySlug(slug string) (*models.Model, error) {
	var model models.Model
	err := r.db.Where("slug = ? AND is_active = ?", slug, true).
		Preload("Contents", activeContentsNewestFirst).
		First(&model).Error
	return &model, err
}

func (r *modelRepository) GetList(params models.ModelListParams) ([]models.Model, int64, error) {
	var items []models.Model
	var total int64

	query := r.db.Model(&models.Model{}).Where("is_active = ?", true)

	// Filters compose with AND; an absent filter imposes no constraint.
	if params.Ethnicity != "" {
		query = query.Where("ethnicity = ?", params.Ethnicity)
	}

	if params.HairColor != "" {
		query = query.Where("hair_color = ?", params.HairColor)
	}

	if params.EyeColor != "" {
		query = query.Where("eye_color = ?", params.EyeColor)
	}

	if params.BodyType != "" {
		query = query.Where("body_type = ?", params.BodyType)
	}

	if params.Search != "" {
		query = query.Where("name ILIKE ?", "%"+params.Search+"%")
	}

	if params.MinAge != nil {
		query = query.Where("age >= ?", *params.MinAge)
	}

	if params.MaxAge != nil {
		query = query.Where("age <= ?", *params.MaxAge)
	}

	if len(params.Tags) > 0 {
		query = query.Where("tags && ?", pq.Array(params.Tags))
	}

	// Count over the filtered set before pagination
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Deterministic sorts break ties by id so pagination is stable.
	switch params.SortBy {
	case models.SortPopular:
		query = query.Order("views DESC, id DESC")
	case models.SortOldest:
		query = query.Order("created_at ASC, id ASC")
	case models.SortRandom:
		query = query.Order("RANDOM()")
	default:
		query = query.Order("created_at DESC, id DESC")
	}

	err := query.Offset(params.Offset()).Limit(params.Limit).
		Preload("Contents", activeContentsNewestFirst).
		Find(&items).Error

	return items, total, err
}

// Update never writes the server-owned columns, so a concurrent view
// increment between load and save is not clobbered.
func (r *modelRepository) Update(model *models.Model) error {
	return r.db.Omit("views", "slug", "created_at").Save(model).Error
}

func (r *modelRepository) SoftDelete(id uint) error {
	return r.db.Model(&models.Model{}).Where("id = ?", id).
		Update("is_active", false).Error
}

// IncrementViews issues a single atomic UPDATE so concurrent detail
// requests never lose updates.
func (r *modelRepository) IncrementViews(id uint) error {
	return r.db.Model(&models.Model{}).Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1)).Error
}

func activeContentsNewestFirst(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true).Order("created_at DESC")
}
