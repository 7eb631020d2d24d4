package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/acaizen-vn/acaizen-smart-hub-pos/internal/model"
)

type RegisterRepository interface {
	Create(ctx context.Context, r *model.CashRegister) error
	FindOpen(ctx context.Context) (*model.CashRegister, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.CashRegister, error)
	Update(ctx context.Context, r *model.CashRegister) error
	ListClosed(ctx context.Context, page, limit int) ([]model.CashRegister, int64, error)

	CreateMovement(ctx context.Context, m *model.CashMovement) error
	ListMovements(ctx context.Context, registerID uuid.UUID) ([]model.CashMovement, error)
}

type registerRepo struct{ db *gorm.DB }

func NewRegisterRepository(db *gorm.DB) RegisterRepository { return &registerRepo{db: db} }

func (r *registerRepo) Create(ctx context.Context, reg *model.CashRegister) error {
	return r.db.WithContext(ctx).Create(reg).Error
}

func (r *registerRepo) FindOpen(ctx context.Context) (*model.CashRegister, error) {
	var reg model.CashRegister
	err := r.db.WithContext(ctx).Where("is_open = true").First(&reg).Error
	return &reg, err
}

func (r *registerRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.CashRegister, error) {
	var reg model.CashRegister
	err := r.db.WithContext(ctx).First(&reg, id).Error
	return &reg, err
}

func (r *registerRepo) Update(ctx context.Context, reg *model.CashRegister) error {
	return r.db.WithContext(ctx).Save(reg).Error
}

func (r *registerRepo) ListClosed(ctx context.Context, page, limit int) ([]model.CashRegister, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.CashRegister{}).Where("is_open = false")

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var registers []model.CashRegister
	err := q.Order("opened_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&registers).Error
	return registers, total, err
}

func (r *registerRepo) CreateMovement(ctx context.Context, m *model.CashMovement) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *registerRepo) ListMovements(ctx context.Context, registerID uuid.UUID) ([]model.CashMovement, error) {
	var movements []model.CashMovement
	err := r.db.WithContext(ctx).
		Where("cash_register_id = ?", registerID).
		Order("created_at ASC").
		Find(&movements).Error
	return movements, err
}
