package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/acaizen-vn/acaizen-smart-hub-pos/internal/dto"
	"github.com/acaizen-vn/acaizen-smart-hub-pos/internal/model"
	"github.com/acaizen-vn/acaizen-smart-hub-pos/internal/repository"
)

type CategoryService interface {
	Create(ctx context.Context, req dto.CreateCategoryRequest) (*dto.CategoryResponse, error)
	List(ctx context.Context, includeInactive bool) ([]dto.CategoryResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateCategoryRequest) (*dto.CategoryResponse, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type categoryService struct {
	repo repository.CategoryRepository
}

func NewCategoryService(repo repository.CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

func (s *categoryService) Create(ctx context.Context, req dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	c := &model.Category{Name: req.Name, Description: req.Description, Active: true}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return toCategoryResponse(c), nil
}

func (s *categoryService) List(ctx context.Context, includeInactive bool) ([]dto.CategoryResponse, error) {
	categories, err := s.repo.List(ctx, includeInactive)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(categories))
	for i := range categories {
		out = append(out, *toCategoryResponse(&categories[i]))
	}
	return out, nil
}

func (s *categoryService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Description != nil {
		c.Description = req.Description
	}
	if req.Active != nil {
		c.Active = *req.Active
	}
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return toCategoryResponse(c), nil
}

func (s *categoryService) Deactivate(ctx context.Context, id uuid.UUID) error {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ErrNotFound
	}
	c.Active = false
	return s.repo.Update(ctx, c)
}

func toCategoryResponse(c *model.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		ID:          c.ID.String(),
		Name:        c.Name,
		Description: c.Description,
		Active:      c.Active,
		CreatedAt:   c.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
