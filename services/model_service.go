package services

import (
	"errors"

	"catalog-api/helper"
	"catalog-api/models"
	"catalog-api/repositories"

	"gorm.io/gorm"
)

type ModelService interface {
	CreateModel(req models.CreateModelRequest) (*models.Model, error)
	GetModels(params models.ModelListParams) (*models.ModelListResponse, error)
	GetModelBySlug(slug string, viewerID uint) (*models.Model, error)
	GetModelByID(id uint) (*models.Model, error)
	UpdateModel(id uint, req models.UpdateModelRequest) (*models.Model, error)
	DeleteModel(id uint) error
}

type modelService struct {
	modelRepo      repositories.ModelRepository
	historyService HistoryService
}

func NewModelService(modelRepo repositories.ModelRepository, historyService HistoryService) ModelService {
	return &modelService{
		modelRepo:      modelRepo,
		historyService: historyService,
	}
}

func (s *modelService) CreateModel(req models.CreateModelRequest) (*models.Model, error) {
	model := &models.Model{
		Name:        req.Name,
		Slug:        helper.GenerateReadableSlug(req.Name),
		Description: req.Description,
		PhotoURL:    req.PhotoURL,
		Ethnicity:   req.Ethnicity,
		HairColor:   req.HairColor,
		EyeColor:    req.EyeColor,
		BodyType:    req.BodyType,
		Age:         req.Age,
		Tags:        req.Tags,
		IsActive:    true,
	}

	if err := s.modelRepo.Create(model); err != nil {
		return nil, models.ErrorInternalServer{Message: "failed to create model"}
	}

	return model, nil
}

func (s *modelService) GetModels(params models.ModelListParams) (*models.ModelListResponse, error) {
	items, total, err := s.modelRepo.GetList(params)
	if err != nil {
		return nil, models.ErrorInternalServer{Message: "failed to list models"}
	}

	if items == nil {
		items = []models.Model{}
	}

	return &models.ModelListResponse{
		Models:     items,
		Pagination: models.NewPagination(params.Page, params.Limit, total),
	}, nil
}

// GetModelBySlug resolves a public detail lookup. Inactive and missing
// records are indistinguishable to the caller. A successful lookup bumps
// the view counter and, when the viewer is known, records history.
func (s *modelService) GetModelBySlug(slug string, viewerID uint) (*models.Model, error) {
	model, err := s.modelRepo.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "model not found"}
		}
		return nil, models.ErrorInternalServer{Message: "failed to load model"}
	}

	if err := s.modelRepo.IncrementViews(model.ID); err != nil {
		return nil, models.ErrorInternalServer{Message: "failed to load model"}
	}
	model.Views++

	if viewerID > 0 {
		s.historyService.Record(models.UserHistory{
			UserID:  viewerID,
			ModelID: model.ID,
			Action:  models.ActionView,
		})
	}

	return model, nil
}

func (s *modelService) GetModelByID(id uint) (*models.Model, error) {
	model, err := s.modelRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "model not found"}
		}
		return nil, models.ErrorInternalServer{Message: "failed to load model"}
	}

	return model, nil
}

func (s *modelService) UpdateModel(id uint, req models.UpdateModelRequest) (*models.Model, error) {
	model, err := s.modelRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "model not found"}
		}
		return nil, models.ErrorInternalServer{Message: "failed to load model"}
	}

	// Slug, views and timestamps stay server-owned.
	if req.Name != nil {
		model.Name = *req.Name
	}
	if req.Description != nil {
		model.Description = *req.Description
	}
	if req.PhotoURL != nil {
		model.PhotoURL = *req.PhotoURL
	}
	if req.Ethnicity != nil {
		model.Ethnicity = *req.Ethnicity
	}
	if req.HairColor != nil {
		model.HairColor = *req.HairColor
	}
	if req.EyeColor != nil {
		model.EyeColor = *req.EyeColor
	}
	if req.BodyType != nil {
		model.BodyType = *req.BodyType
	}
	if req.Age != nil {
		model.Age = req.Age
	}
	if req.Tags != nil {
		model.Tags = *req.Tags
	}

	if err := s.modelRepo.Update(model); err != nil {
		return nil, models.ErrorInternalServer{Message: "failed to update model"}
	}

	return model, nil
}

func (s *modelService) DeleteModel(id uint) error {
	if _, err := s.modelRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrorNotFound{Message: "model not found"}
		}
		return models.ErrorInternalServer{Message: "failed to load model"}
	}

	if err := s.modelRepo.SoftDelete(id); err != nil {
		return models.ErrorInternalServer{Message: "failed to delete model"}
	}

	return nil
}
