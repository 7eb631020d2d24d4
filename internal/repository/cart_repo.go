package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/acaizen-vn/acaizen-smart-hub-pos/internal/model"
)

// CartRepository persists the single active cart per operator. The row is
// overwritten whole on every mutation; the cart is a snapshot, not a ledger.
type CartRepository interface {
	Get(ctx context.Context, operatorID uuid.UUID) (*model.Cart, error)
	Save(ctx context.Context, cart *model.Cart) error
	Delete(ctx context.Context, operatorID uuid.UUID) error
}

type cartRepo struct{ db *gorm.DB }

func NewCartRepository(db *gorm.DB) CartRepository { return &cartRepo{db: db} }

func (r *cartRepo) Get(ctx context.Context, operatorID uuid.UUID) (*model.Cart, error) {
	var c model.Cart
	err := r.db.WithContext(ctx).Where("operator_id = ?", operatorID).First(&c).Error
	return &c, err
}

func (r *cartRepo) Save(ctx context.Context, cart *model.Cart) error {
	return r.db.WithContext(ctx).Save(cart).Error
}

func (r *cartRepo) Delete(ctx context.Context, operatorID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Cart{}, "operator_id = ?", operatorID).Error
}
