package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/acaizen-vn/acaizen-smart-hub-pos/internal/dto"
	"github.com/acaizen-vn/acaizen-smart-hub-pos/internal/model"
	"github.com/acaizen-vn/acaizen-smart-hub-pos/internal/repository"
)

const (
	productCacheKey = "catalog:products"
	productCacheTTL = 5 * time.Minute
)

// ProductService is form-over-storage catalog CRUD. The active product list
// is what the PDV screen polls, so it is cached in Redis and invalidated on
// every write.
type ProductService interface {
	Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error)
	List(ctx context.Context, categoryID *uuid.UUID, includeInactive bool) ([]dto.ProductResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateProductRequest) (*dto.ProductResponse, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type productService struct {
	repo repository.ProductRepository
	rdb  *redis.Client // nil disables caching
}

func NewProductService(repo repository.ProductRepository, rdb *redis.Client) ProductService {
	return &productService{repo: repo, rdb: rdb}
}

func (s *productService) Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, err
	}
	p := &model.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		CategoryID:  categoryID,
		ImageURL:    req.ImageURL,
		Active:      true,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	s.invalidateCache(ctx)
	return toProductResponse(p), nil
}

func (s *productService) GetByID(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	return toProductResponse(p), nil
}

func (s *productService) List(ctx context.Context, categoryID *uuid.UUID, includeInactive bool) ([]dto.ProductResponse, error) {
	// Only the unfiltered active list is cached since it is the PDV hot path.
	cacheable := categoryID == nil && !includeInactive

	if cacheable && s.rdb != nil {
		if raw, err := s.rdb.Get(ctx, productCacheKey).Bytes(); err == nil {
			var cached []dto.ProductResponse
			if json.Unmarshal(raw, &cached) == nil {
				return cached, nil
			}
		}
	}

	products, err := s.repo.List(ctx, categoryID, includeInactive)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, *toProductResponse(&products[i]))
	}

	if cacheable && s.rdb != nil {
		if raw, err := json.Marshal(out); err == nil {
			if err := s.rdb.Set(ctx, productCacheKey, raw, productCacheTTL).Err(); err != nil {
				log.Warn().Err(err).Msg("product cache write failed")
			}
		}
	}
	return out, nil
}

func (s *productService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Description != nil {
		p.Description = req.Description
	}
	if req.Price != nil {
		p.Price = *req.Price
	}
	if req.CategoryID != nil {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			return nil, err
		}
		p.CategoryID = categoryID
	}
	if req.ImageURL != nil {
		p.ImageURL = req.ImageURL
	}
	if req.Active != nil {
		p.Active = *req.Active
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	s.invalidateCache(ctx)
	return toProductResponse(p), nil
}

// Deactivate soft-deletes: carts and sales referencing the product keep their
// snapshots, so nothing is ever hard-deleted from the catalog.
func (s *productService) Deactivate(ctx context.Context, id uuid.UUID) error {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ErrNotFound
	}
	p.Active = false
	if err := s.repo.Update(ctx, p); err != nil {
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

func (s *productService) invalidateCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, productCacheKey).Err(); err != nil {
		log.Warn().Err(err).Msg("product cache invalidation failed")
	}
}

func toProductResponse(p *model.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		CategoryID:  p.CategoryID.String(),
		ImageURL:    p.ImageURL,
		Active:      p.Active,
		CreatedAt:   p.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
