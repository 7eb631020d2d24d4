package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/acaizen-vn/acaizen-smart-hub-pos/internal/dto"
	"github.com/acaizen-vn/acaizen-smart-hub-pos/internal/model"
	"github.com/acaizen-vn/acaizen-smart-hub-pos/internal/notify"
	"github.com/acaizen-vn/acaizen-smart-hub-pos/internal/pricing"
	"github.com/acaizen-vn/acaizen-smart-hub-pos/internal/repository"
)

// CartService owns the active cart for each operator. Every mutation either
// fully applies (cart updated, persisted, notifier told) or rejects with the
// cart untouched; there are no partial states. A single mutex serializes all
// mutations so aggregates can never race.
type CartService interface {
	Get(ctx context.Context, operatorID uuid.UUID) (*dto.CartResponse, error)
	AddItem(ctx context.Context, operatorID uuid.UUID, req dto.AddItemRequest) (*dto.CartResponse, error)
	RemoveItem(ctx context.Context, operatorID, itemID uuid.UUID) (*dto.CartResponse, error)
	UpdateQuantity(ctx context.Context, operatorID, itemID uuid.UUID, quantity int) (*dto.CartResponse, error)
	Clear(ctx context.Context, operatorID uuid.UUID) error

	// Checkout hands the current cart to fn while holding the mutation lock
	// and clears it when fn succeeds. Used by the sale finalizer: nothing can
	// append a line between the cart fn sees and the clear, a concurrent
	// AddItem waits and lands in the next, empty cart instead.
	Checkout(ctx context.Context, operatorID uuid.UUID, fn func(cart *model.Cart) error) error
}

type cartService struct {
	mu       sync.Mutex
	repo     repository.CartRepository
	products repository.ProductRepository
	addOns   repository.AddOnRepository
	notifier notify.Notifier
}

func NewCartService(repo repository.CartRepository, products repository.ProductRepository, addOns repository.AddOnRepository, notifier notify.Notifier) CartService {
	return &cartService{repo: repo, products: products, addOns: addOns, notifier: notifier}
}

// load returns the operator's cart, creating an empty one in memory when no
// row exists yet.
func (s *cartService) load(ctx context.Context, operatorID uuid.UUID) (*model.Cart, error) {
	cart, err := s.repo.Get(ctx, operatorID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &model.Cart{OperatorID: operatorID}, nil
	}
	if err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *cartService) Get(ctx context.Context, operatorID uuid.UUID) (*dto.CartResponse, error) {
	cart, err := s.load(ctx, operatorID)
	if err != nil {
		return nil, err
	}
	return dto.ToCartResponse(cart), nil
}

func (s *cartService) Checkout(ctx context.Context, operatorID uuid.UUID, fn func(cart *model.Cart) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.load(ctx, operatorID)
	if err != nil {
		return err
	}
	if err := fn(cart); err != nil {
		return err
	}
	if err := s.clearLocked(ctx, operatorID); err != nil {
		// fn already persisted its result; an uncleared cart is recoverable by
		// the operator, losing that result would not be.
		log.Error().Err(err).Str("operator_id", operatorID.String()).Msg("failed to clear cart after checkout")
	}
	return nil
}

func (s *cartService) AddItem(ctx context.Context, operatorID uuid.UUID, req dto.AddItemRequest) (*dto.CartResponse, error) {
	if req.Quantity <= 0 {
		s.notifier.Error("Quantidade inválida", "A quantidade deve ser maior que zero")
		return nil, ErrInvalidQuantity
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return nil, fmt.Errorf("product_id inválido: %w", err)
	}
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("produto %s: %w", req.ProductID, ErrNotFound)
	}
	if !product.Active {
		return nil, fmt.Errorf("produto %s está inativo e não pode ser vendido", product.Name)
	}

	// Snapshot the chosen customizations from the catalog. Prices come from
	// the server, never from the request.
	selected, acaiSelected, err := s.resolveAddOns(ctx, req.AddOnIDs, req.AcaiAddOnIDs)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.load(ctx, operatorID)
	if err != nil {
		return nil, err
	}

	item := model.CartItem{
		ID:          uuid.New(),
		ProductID:   product.ID,
		ProductName: product.Name,
		UnitPrice:   product.Price,
		Quantity:    req.Quantity,
		AddOns:      selected,
		AcaiAddOns:  acaiSelected,
		Observation: req.Observation,
		Subtotal:    pricing.ItemSubtotal(product.Price, req.Quantity, selected, acaiSelected),
	}

	// Same product added twice stays two distinct lines; the PDV never
	// merges lines, each is removable on its own.
	cart.Items = append(cart.Items, item)
	cart.TotalItems += item.Quantity
	cart.Subtotal = cart.Subtotal.Add(item.Subtotal)
	cart.UpdatedAt = time.Now()

	if err := s.repo.Save(ctx, cart); err != nil {
		return nil, err
	}
	s.notifier.Success("Produto adicionado", fmt.Sprintf("%s foi adicionado ao carrinho", product.Name))
	return dto.ToCartResponse(cart), nil
}

func (s *cartService) RemoveItem(ctx context.Context, operatorID, itemID uuid.UUID) (*dto.CartResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.load(ctx, operatorID)
	if err != nil {
		return nil, err
	}

	idx := cart.FindItem(itemID)
	if idx < 0 {
		// Removal of an unknown line is a no-op, not an error.
		return dto.ToCartResponse(cart), nil
	}

	removed := cart.Items[idx]
	cart.Items = append(cart.Items[:idx], cart.Items[idx+1:]...)
	cart.TotalItems -= removed.Quantity
	cart.Subtotal = cart.Subtotal.Sub(removed.Subtotal)
	cart.UpdatedAt = time.Now()

	if err := s.repo.Save(ctx, cart); err != nil {
		return nil, err
	}
	s.notifier.Success("Produto removido", fmt.Sprintf("%s foi removido do carrinho", removed.ProductName))
	return dto.ToCartResponse(cart), nil
}

func (s *cartService) UpdateQuantity(ctx context.Context, operatorID, itemID uuid.UUID, quantity int) (*dto.CartResponse, error) {
	// Quantity dropping to zero or below means removal, not a zero line.
	if quantity <= 0 {
		return s.RemoveItem(ctx, operatorID, itemID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.load(ctx, operatorID)
	if err != nil {
		return nil, err
	}

	idx := cart.FindItem(itemID)
	if idx < 0 {
		return nil, ErrNotFound
	}

	item := &cart.Items[idx]
	oldQuantity := item.Quantity
	oldSubtotal := item.Subtotal

	// Recompute from the snapshotted unit price and add-ons, then adjust the
	// aggregates by the exact delta so they can never drift from the items.
	item.Quantity = quantity
	item.Subtotal = pricing.ItemSubtotal(item.UnitPrice, quantity, item.AddOns, item.AcaiAddOns)

	cart.TotalItems += quantity - oldQuantity
	cart.Subtotal = cart.Subtotal.Sub(oldSubtotal).Add(item.Subtotal)
	cart.UpdatedAt = time.Now()

	if err := s.repo.Save(ctx, cart); err != nil {
		return nil, err
	}
	return dto.ToCartResponse(cart), nil
}

func (s *cartService) Clear(ctx context.Context, operatorID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clearLocked(ctx, operatorID)
}

func (s *cartService) clearLocked(ctx context.Context, operatorID uuid.UUID) error {
	cart := &model.Cart{OperatorID: operatorID, UpdatedAt: time.Now()}
	return s.repo.Save(ctx, cart)
}

func (s *cartService) resolveAddOns(ctx context.Context, addOnIDs, acaiAddOnIDs []string) ([]model.SelectedAddOn, []model.SelectedAcaiAddOn, error) {
	var selected []model.SelectedAddOn
	for _, raw := range addOnIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, nil, fmt.Errorf("addon_id inválido: %w", err)
		}
		a, err := s.addOns.FindByID(ctx, id)
		if err != nil {
			return nil, nil, fmt.Errorf("adicional %s: %w", raw, ErrNotFound)
		}
		selected = append(selected, model.SelectedAddOn{ID: a.ID, Name: a.Name, Price: a.Price})
	}

	var acaiSelected []model.SelectedAcaiAddOn
	for _, raw := range acaiAddOnIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, nil, fmt.Errorf("acai_addon_id inválido: %w", err)
		}
		a, err := s.addOns.FindAcaiByID(ctx, id)
		if err != nil {
			return nil, nil, fmt.Errorf("adicional de açaí %s: %w", raw, ErrNotFound)
		}
		acaiSelected = append(acaiSelected, model.SelectedAcaiAddOn{
			ID:           a.ID,
			Name:         a.Name,
			Price:        a.Price,
			CategoryType: a.CategoryType,
		})
	}
	return selected, acaiSelected, nil
}
