package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/acaizen-vn/acaizen-smart-hub-pos/internal/model"
)

type CategoryRepository interface {
	Create(ctx context.Context, c *model.Category) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Category, error)
	List(ctx context.Context, includeInactive bool) ([]model.Category, error)
	Update(ctx context.Context, c *model.Category) error
}

type categoryRepo struct{ db *gorm.DB }

func NewCategoryRepository(db *gorm.DB) CategoryRepository { return &categoryRepo{db: db} }

func (r *categoryRepo) Create(ctx context.Context, c *model.Category) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *categoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Category, error) {
	var c model.Category
	err := r.db.WithContext(ctx).First(&c, id).Error
	return &c, err
}

func (r *categoryRepo) List(ctx context.Context, includeInactive bool) ([]model.Category, error) {
	var categories []model.Category
	q := r.db.WithContext(ctx).Order("name ASC")
	if !includeInactive {
		q = q.Where("active = true")
	}
	err := q.Find(&categories).Error
	return categories, err
}

func (r *categoryRepo) Update(ctx context.Context, c *model.Category) error {
	return r.db.WithContext(ctx).Save(c).Error
}
