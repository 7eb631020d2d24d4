package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/acaizen-vn/acaizen-smart-hub-pos/internal/model"
)

type ProductRepository interface {
	Create(ctx context.Context, p *model.Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Product, error)
	List(ctx context.Context, categoryID *uuid.UUID, includeInactive bool) ([]model.Product, error)
	Update(ctx context.Context, p *model.Product) error
}

type productRepo struct{ db *gorm.DB }

func NewProductRepository(db *gorm.DB) ProductRepository { return &productRepo{db: db} }

func (r *productRepo) Create(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).Preload("Category").First(&p, id).Error
	return &p, err
}

func (r *productRepo) List(ctx context.Context, categoryID *uuid.UUID, includeInactive bool) ([]model.Product, error) {
	var products []model.Product
	q := r.db.WithContext(ctx).Order("name ASC")
	if categoryID != nil {
		q = q.Where("category_id = ?", *categoryID)
	}
	if !includeInactive {
		q = q.Where("active = true")
	}
	err := q.Find(&products).Error
	return products, err
}

func (r *productRepo) Update(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Save(p).Error
}
