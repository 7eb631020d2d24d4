package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/acaizen-vn/acaizen-smart-hub-pos/internal/dto"
	"github.com/acaizen-vn/acaizen-smart-hub-pos/internal/model"
	"github.com/acaizen-vn/acaizen-smart-hub-pos/internal/repository"
)

// AddOnService manages both generic and açaí-specific customizations.
// Açaí add-ons carry a display category (caldas/complementos/adicionais) the
// PDV uses to group the selection grid; pricing ignores it.
type AddOnService interface {
	Create(ctx context.Context, req dto.CreateAddOnRequest) (*dto.AddOnResponse, error)
	List(ctx context.Context, includeInactive bool) ([]dto.AddOnResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateAddOnRequest) (*dto.AddOnResponse, error)
	Deactivate(ctx context.Context, id uuid.UUID) error

	CreateAcai(ctx context.Context, req dto.CreateAddOnRequest) (*dto.AddOnResponse, error)
	ListAcai(ctx context.Context, categoryType string, includeInactive bool) ([]dto.AddOnResponse, error)
	UpdateAcai(ctx context.Context, id uuid.UUID, req dto.UpdateAddOnRequest) (*dto.AddOnResponse, error)
	DeactivateAcai(ctx context.Context, id uuid.UUID) error
}

type addOnService struct {
	repo repository.AddOnRepository
}

func NewAddOnService(repo repository.AddOnRepository) AddOnService {
	return &addOnService{repo: repo}
}

func (s *addOnService) Create(ctx context.Context, req dto.CreateAddOnRequest) (*dto.AddOnResponse, error) {
	a := &model.AddOn{Name: req.Name, Price: req.Price, Active: true}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return &dto.AddOnResponse{ID: a.ID.String(), Name: a.Name, Price: a.Price, Active: a.Active}, nil
}

func (s *addOnService) List(ctx context.Context, includeInactive bool) ([]dto.AddOnResponse, error) {
	addOns, err := s.repo.List(ctx, includeInactive)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AddOnResponse, 0, len(addOns))
	for _, a := range addOns {
		out = append(out, dto.AddOnResponse{ID: a.ID.String(), Name: a.Name, Price: a.Price, Active: a.Active})
	}
	return out, nil
}

func (s *addOnService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateAddOnRequest) (*dto.AddOnResponse, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	if req.Name != nil {
		a.Name = *req.Name
	}
	if req.Price != nil {
		a.Price = *req.Price
	}
	if req.Active != nil {
		a.Active = *req.Active
	}
	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return &dto.AddOnResponse{ID: a.ID.String(), Name: a.Name, Price: a.Price, Active: a.Active}, nil
}

func (s *addOnService) Deactivate(ctx context.Context, id uuid.UUID) error {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ErrNotFound
	}
	a.Active = false
	return s.repo.Update(ctx, a)
}

func (s *addOnService) CreateAcai(ctx context.Context, req dto.CreateAddOnRequest) (*dto.AddOnResponse, error) {
	if req.CategoryType == "" {
		return nil, errors.New("category_type é obrigatório para adicionais de açaí")
	}
	a := &model.AcaiAddOn{Name: req.Name, Price: req.Price, CategoryType: req.CategoryType, Active: true}
	if err := s.repo.CreateAcai(ctx, a); err != nil {
		return nil, err
	}
	return toAcaiAddOnResponse(a), nil
}

func (s *addOnService) ListAcai(ctx context.Context, categoryType string, includeInactive bool) ([]dto.AddOnResponse, error) {
	addOns, err := s.repo.ListAcai(ctx, categoryType, includeInactive)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AddOnResponse, 0, len(addOns))
	for i := range addOns {
		out = append(out, *toAcaiAddOnResponse(&addOns[i]))
	}
	return out, nil
}

func (s *addOnService) UpdateAcai(ctx context.Context, id uuid.UUID, req dto.UpdateAddOnRequest) (*dto.AddOnResponse, error) {
	a, err := s.repo.FindAcaiByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	if req.Name != nil {
		a.Name = *req.Name
	}
	if req.Price != nil {
		a.Price = *req.Price
	}
	if req.CategoryType != nil {
		a.CategoryType = *req.CategoryType
	}
	if req.Active != nil {
		a.Active = *req.Active
	}
	if err := s.repo.UpdateAcai(ctx, a); err != nil {
		return nil, err
	}
	return toAcaiAddOnResponse(a), nil
}

func (s *addOnService) DeactivateAcai(ctx context.Context, id uuid.UUID) error {
	a, err := s.repo.FindAcaiByID(ctx, id)
	if err != nil {
		return ErrNotFound
	}
	a.Active = false
	return s.repo.UpdateAcai(ctx, a)
}

func toAcaiAddOnResponse(a *model.AcaiAddOn) *dto.AddOnResponse {
	return &dto.AddOnResponse{
		ID:           a.ID.String(),
		Name:         a.Name,
		Price:        a.Price,
		CategoryType: a.CategoryType,
		Active:       a.Active,
	}
}
