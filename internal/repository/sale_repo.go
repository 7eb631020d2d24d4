package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/acaizen-vn/acaizen-smart-hub-pos/internal/model"
)

// SaleFilter narrows the sale history listing.
type SaleFilter struct {
	From  *time.Time
	To    *time.Time
	Page  int
	Limit int
}

// SaleRepository is append-only: sales are created once at finalization and
// never updated or deleted through any path.
type SaleRepository interface {
	Create(ctx context.Context, s *model.Sale) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Sale, error)
	List(ctx context.Context, filter SaleFilter) ([]model.Sale, int64, error)
}

type saleRepo struct{ db *gorm.DB }

func NewSaleRepository(db *gorm.DB) SaleRepository { return &saleRepo{db: db} }

func (r *saleRepo) Create(ctx context.Context, s *model.Sale) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *saleRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Sale, error) {
	var s model.Sale
	err := r.db.WithContext(ctx).First(&s, id).Error
	return &s, err
}

func (r *saleRepo) List(ctx context.Context, filter SaleFilter) ([]model.Sale, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Sale{})
	if filter.From != nil {
		q = q.Where("created_at >= ?", *filter.From)
	}
	if filter.To != nil {
		q = q.Where("created_at < ?", *filter.To)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var sales []model.Sale
	err := q.Order("created_at DESC").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&sales).Error
	return sales, total, err
}
