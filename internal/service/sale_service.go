package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/acaizen-vn/acaizen-smart-hub-pos/internal/dto"
	"github.com/acaizen-vn/acaizen-smart-hub-pos/internal/infra"
	"github.com/acaizen-vn/acaizen-smart-hub-pos/internal/model"
	"github.com/acaizen-vn/acaizen-smart-hub-pos/internal/notify"
	"github.com/acaizen-vn/acaizen-smart-hub-pos/internal/repository"
)

// CheckoutPolicy is the configurable customer-name rule. One revision of the
// PDV required a name, another substituted a constant; both behaviors exist
// in the field, so the choice lives in configuration.
type CheckoutPolicy struct {
	RequireCustomerName bool
	DefaultCustomerName string
}

// SaleService turns the current cart into an immutable Sale. Preconditions
// are checked in a fixed order and the first failure wins; on any failure the
// cart is left exactly as it was.
type SaleService interface {
	Finalize(ctx context.Context, operatorID uuid.UUID, req dto.FinalizeSaleRequest) (*dto.SaleResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.SaleResponse, error)
	List(ctx context.Context, filter repository.SaleFilter) (*dto.SaleListResponse, error)
	PixQR(ctx context.Context, id uuid.UUID) ([]byte, error)
}

type saleService struct {
	repo      repository.SaleRepository
	carts     CartService
	registers RegisterService
	notifier  notify.Notifier
	policy    CheckoutPolicy
	pix       *infra.Pix
}

func NewSaleService(repo repository.SaleRepository, carts CartService, registers RegisterService, notifier notify.Notifier, policy CheckoutPolicy, pix *infra.Pix) SaleService {
	return &saleService{repo: repo, carts: carts, registers: registers, notifier: notifier, policy: policy, pix: pix}
}

// Precondition order: non-empty cart, customer identification, sufficient
// cash. Then: build the payment variant, snapshot the cart into a Sale,
// persist it (append-only), clear the cart, and report to the register.
// The whole sequence runs under the cart lock via Checkout, so a line added
// concurrently can never fall between the snapshot and the clear.

func (s *saleService) Finalize(ctx context.Context, operatorID uuid.UUID, req dto.FinalizeSaleRequest) (*dto.SaleResponse, error) {
	var sale *model.Sale
	err := s.carts.Checkout(ctx, operatorID, func(cart *model.Cart) error {
		// 1. Non-empty cart
		if cart.Empty() {
			s.notifier.Error("Carrinho vazio", "Adicione produtos ao carrinho antes de finalizar a venda")
			return ErrEmptyCart
		}

		// 2. Customer identification, per policy
		customer := req.CustomerName
		if customer == "" {
			if s.policy.RequireCustomerName {
				s.notifier.Error("Nome do cliente obrigatório", "Informe o nome do cliente para finalizar a venda")
				return ErrMissingCustomer
			}
			customer = s.policy.DefaultCustomerName
		}

		// 3. Payment variant + cash sufficiency
		saleID := uuid.New()
		payment, err := s.buildPayment(req, saleID, cart)
		if err != nil {
			return err
		}

		sale = &model.Sale{
			ID:            saleID,
			Items:         append([]model.CartItem(nil), cart.Items...),
			CustomerName:  customer,
			PaymentMethod: payment.Method,
			Subtotal:      cart.Subtotal,
			PixReference:  payment.PixReference,
			CreatedBy:     operatorID,
		}
		if payment.CashTendered != nil {
			change := payment.CashTendered.Sub(cart.Subtotal)
			sale.CashAmount = payment.CashTendered
			sale.Change = &change
		}

		return s.repo.Create(ctx, sale)
	})
	if err != nil {
		return nil, err
	}

	if err := s.registers.RecordSale(ctx, sale); err != nil {
		log.Error().Err(err).Str("sale_id", sale.ID.String()).Msg("failed to update register aggregates")
	}

	s.notifier.Success("Venda finalizada", fmt.Sprintf("Venda finalizada com sucesso para %s", sale.CustomerName))
	return dto.ToSaleResponse(sale), nil
}

// buildPayment maps the request onto a PaymentDetails variant, rejecting
// insufficient cash before any state changes.
func (s *saleService) buildPayment(req dto.FinalizeSaleRequest, saleID uuid.UUID, cart *model.Cart) (model.PaymentDetails, error) {
	method := model.PaymentMethod(req.PaymentMethod)

	var payment model.PaymentDetails
	switch {
	case method == model.PaymentCash && req.CashAmount != nil:
		if req.CashAmount.LessThan(cart.Subtotal) {
			s.notifier.Error("Valor insuficiente", "O valor recebido é menor que o valor total da venda")
			return model.PaymentDetails{}, ErrInsufficientPayment
		}
		payment = model.CashPayment(*req.CashAmount)
	case method == model.PaymentCash:
		payment = model.CashPaymentExact()
	case method == model.PaymentPix:
		payment = model.PixPayment(s.pix.Payload(saleID, cart.Subtotal))
	default:
		payment = model.CardPayment(method)
	}

	if err := payment.Validate(); err != nil {
		return model.PaymentDetails{}, err
	}
	return payment, nil
}

func (s *saleService) Get(ctx context.Context, id uuid.UUID) (*dto.SaleResponse, error) {
	sale, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	return dto.ToSaleResponse(sale), nil
}

func (s *saleService) List(ctx context.Context, filter repository.SaleFilter) (*dto.SaleListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 50
	}
	sales, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.SaleResponse, 0, len(sales))
	for i := range sales {
		data = append(data, *dto.ToSaleResponse(&sales[i]))
	}
	return &dto.SaleListResponse{Data: data, Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

// PixQR renders the QR image for a pix sale's copy-and-paste payload.
func (s *saleService) PixQR(ctx context.Context, id uuid.UUID) ([]byte, error) {
	sale, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotFound
	}
	if sale.PaymentMethod != model.PaymentPix || sale.PixReference == nil {
		return nil, fmt.Errorf("venda %s não é uma venda pix", id)
	}
	return infra.PixQRCode(*sale.PixReference)
}
