package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/acaizen-vn/acaizen-smart-hub-pos/internal/model"
)

// AddOnRepository covers both generic add-ons and the açaí-specific ones
// with category tags; they live in separate tables but share CRUD shape.
type AddOnRepository interface {
	Create(ctx context.Context, a *model.AddOn) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.AddOn, error)
	List(ctx context.Context, includeInactive bool) ([]model.AddOn, error)
	Update(ctx context.Context, a *model.AddOn) error

	CreateAcai(ctx context.Context, a *model.AcaiAddOn) error
	FindAcaiByID(ctx context.Context, id uuid.UUID) (*model.AcaiAddOn, error)
	ListAcai(ctx context.Context, categoryType string, includeInactive bool) ([]model.AcaiAddOn, error)
	UpdateAcai(ctx context.Context, a *model.AcaiAddOn) error
}

type addOnRepo struct{ db *gorm.DB }

func NewAddOnRepository(db *gorm.DB) AddOnRepository { return &addOnRepo{db: db} }

func (r *addOnRepo) Create(ctx context.Context, a *model.AddOn) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *addOnRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.AddOn, error) {
	var a model.AddOn
	err := r.db.WithContext(ctx).First(&a, id).Error
	return &a, err
}

func (r *addOnRepo) List(ctx context.Context, includeInactive bool) ([]model.AddOn, error) {
	var addOns []model.AddOn
	q := r.db.WithContext(ctx).Order("name ASC")
	if !includeInactive {
		q = q.Where("active = true")
	}
	err := q.Find(&addOns).Error
	return addOns, err
}

func (r *addOnRepo) Update(ctx context.Context, a *model.AddOn) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *addOnRepo) CreateAcai(ctx context.Context, a *model.AcaiAddOn) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *addOnRepo) FindAcaiByID(ctx context.Context, id uuid.UUID) (*model.AcaiAddOn, error) {
	var a model.AcaiAddOn
	err := r.db.WithContext(ctx).First(&a, id).Error
	return &a, err
}

func (r *addOnRepo) ListAcai(ctx context.Context, categoryType string, includeInactive bool) ([]model.AcaiAddOn, error) {
	var addOns []model.AcaiAddOn
	q := r.db.WithContext(ctx).Order("name ASC")
	if categoryType != "" {
		q = q.Where("category_type = ?", categoryType)
	}
	if !includeInactive {
		q = q.Where("active = true")
	}
	err := q.Find(&addOns).Error
	return addOns, err
}

func (r *addOnRepo) UpdateAcai(ctx context.Context, a *model.AcaiAddOn) error {
	return r.db.WithContext(ctx).Save(a).Error
}
