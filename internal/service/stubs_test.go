package service

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/acaizen-vn/acaizen-smart-hub-pos/internal/model"
	"github.com/acaizen-vn/acaizen-smart-hub-pos/internal/repository"
)

// In-memory repository stubs. They mimic the one gorm behavior the services
// depend on: a missing row surfaces as gorm.ErrRecordNotFound.

var (
	_ repository.CartRepository     = (*memCartRepo)(nil)
	_ repository.ProductRepository  = (*memProductRepo)(nil)
	_ repository.AddOnRepository    = (*memAddOnRepo)(nil)
	_ repository.SaleRepository     = (*memSaleRepo)(nil)
	_ repository.RegisterRepository = (*memRegisterRepo)(nil)
)

type memCartRepo struct {
	mu    sync.Mutex
	carts map[uuid.UUID]*model.Cart
}

func newMemCartRepo() *memCartRepo {
	return &memCartRepo{carts: make(map[uuid.UUID]*model.Cart)}
}

func (r *memCartRepo) Get(_ context.Context, operatorID uuid.UUID) (*model.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cart, ok := r.carts[operatorID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *cart
	cp.Items = append([]model.CartItem(nil), cart.Items...)
	return &cp, nil
}

func (r *memCartRepo) Save(_ context.Context, cart *model.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *cart
	cp.Items = append([]model.CartItem(nil), cart.Items...)
	r.carts[cart.OperatorID] = &cp
	return nil
}

func (r *memCartRepo) Delete(_ context.Context, operatorID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, operatorID)
	return nil
}

type memProductRepo struct {
	products map[uuid.UUID]*model.Product
}

func newMemProductRepo(products ...*model.Product) *memProductRepo {
	m := &memProductRepo{products: make(map[uuid.UUID]*model.Product)}
	for _, p := range products {
		m.products[p.ID] = p
	}
	return m
}

func (r *memProductRepo) Create(_ context.Context, p *model.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *memProductRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *memProductRepo) List(_ context.Context, _ *uuid.UUID, _ bool) ([]model.Product, error) {
	out := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, *p)
	}
	return out, nil
}

func (r *memProductRepo) Update(_ context.Context, p *model.Product) error {
	r.products[p.ID] = p
	return nil
}

type memAddOnRepo struct {
	addOns     map[uuid.UUID]*model.AddOn
	acaiAddOns map[uuid.UUID]*model.AcaiAddOn
}

func newMemAddOnRepo() *memAddOnRepo {
	return &memAddOnRepo{
		addOns:     make(map[uuid.UUID]*model.AddOn),
		acaiAddOns: make(map[uuid.UUID]*model.AcaiAddOn),
	}
}

func (r *memAddOnRepo) Create(_ context.Context, a *model.AddOn) error {
	r.addOns[a.ID] = a
	return nil
}

func (r *memAddOnRepo) FindByID(_ context.Context, id uuid.UUID) (*model.AddOn, error) {
	a, ok := r.addOns[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return a, nil
}

func (r *memAddOnRepo) List(_ context.Context, _ bool) ([]model.AddOn, error) {
	out := make([]model.AddOn, 0, len(r.addOns))
	for _, a := range r.addOns {
		out = append(out, *a)
	}
	return out, nil
}

func (r *memAddOnRepo) Update(_ context.Context, a *model.AddOn) error {
	r.addOns[a.ID] = a
	return nil
}

func (r *memAddOnRepo) CreateAcai(_ context.Context, a *model.AcaiAddOn) error {
	r.acaiAddOns[a.ID] = a
	return nil
}

func (r *memAddOnRepo) FindAcaiByID(_ context.Context, id uuid.UUID) (*model.AcaiAddOn, error) {
	a, ok := r.acaiAddOns[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return a, nil
}

func (r *memAddOnRepo) UpdateAcai(_ context.Context, a *model.AcaiAddOn) error {
	r.acaiAddOns[a.ID] = a
	return nil
}

func (r *memAddOnRepo) ListAcai(_ context.Context, _ string, _ bool) ([]model.AcaiAddOn, error) {
	out := make([]model.AcaiAddOn, 0, len(r.acaiAddOns))
	for _, a := range r.acaiAddOns {
		out = append(out, *a)
	}
	return out, nil
}

type memSaleRepo struct {
	mu    sync.Mutex
	sales []*model.Sale
}

func newMemSaleRepo() *memSaleRepo { return &memSaleRepo{} }

func (r *memSaleRepo) Create(_ context.Context, s *model.Sale) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sales = append(r.sales, s)
	return nil
}

func (r *memSaleRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Sale, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.sales {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memSaleRepo) List(_ context.Context, filter repository.SaleFilter) ([]model.Sale, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Sale, 0, len(r.sales))
	for _, s := range r.sales {
		out = append(out, *s)
	}
	return out, int64(len(out)), nil
}

type memRegisterRepo struct {
	mu        sync.Mutex
	registers map[uuid.UUID]*model.CashRegister
	movements []*model.CashMovement
}

func newMemRegisterRepo() *memRegisterRepo {
	return &memRegisterRepo{registers: make(map[uuid.UUID]*model.CashRegister)}
}

func (r *memRegisterRepo) Create(_ context.Context, reg *model.CashRegister) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if reg.ID == uuid.Nil {
		reg.ID = uuid.New()
	}
	cp := *reg
	r.registers[reg.ID] = &cp
	return nil
}

func (r *memRegisterRepo) FindOpen(_ context.Context) (*model.CashRegister, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, reg := range r.registers {
		if reg.IsOpen {
			cp := *reg
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memRegisterRepo) FindByID(_ context.Context, id uuid.UUID) (*model.CashRegister, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	reg, ok := r.registers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *reg
	return &cp, nil
}

func (r *memRegisterRepo) Update(_ context.Context, reg *model.CashRegister) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *reg
	r.registers[reg.ID] = &cp
	return nil
}

func (r *memRegisterRepo) ListClosed(_ context.Context, page, limit int) ([]model.CashRegister, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.CashRegister
	for _, reg := range r.registers {
		if !reg.IsOpen {
			out = append(out, *reg)
		}
	}
	return out, int64(len(out)), nil
}

func (r *memRegisterRepo) CreateMovement(_ context.Context, m *model.CashMovement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	cp := *m
	r.movements = append(r.movements, &cp)
	return nil
}

func (r *memRegisterRepo) ListMovements(_ context.Context, registerID uuid.UUID) ([]model.CashMovement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.CashMovement
	for _, m := range r.movements {
		if m.CashRegisterID == registerID {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (r *memRegisterRepo) movementsOfType(t string) []*model.CashMovement {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*model.CashMovement
	for _, m := range r.movements {
		if m.Type == t {
			out = append(out, m)
		}
	}
	return out
}
