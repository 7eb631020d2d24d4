package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/acaizen-vn/acaizen-smart-hub-pos/internal/model"
)

type FinalizeSaleRequest struct {
	CustomerName  string           `json:"customer_name"`
	PaymentMethod string           `json:"payment_method" validate:"required,oneof=cash credit debit pix"`
	CashAmount    *decimal.Decimal `json:"cash_amount"    validate:"omitempty,min=0"`
}

type SaleResponse struct {
	ID            string             `json:"id"`
	Items         []CartItemResponse `json:"items"`
	CustomerName  string             `json:"customer_name"`
	PaymentMethod string             `json:"payment_method"`
	Subtotal      decimal.Decimal    `json:"subtotal"`
	CashAmount    *decimal.Decimal   `json:"cash_amount,omitempty"`
	Change        *decimal.Decimal   `json:"change,omitempty"`
	PixReference  *string            `json:"pix_reference,omitempty"`
	CreatedBy     string             `json:"created_by"`
	CreatedAt     string             `json:"created_at"`
}

type SaleListResponse struct {
	Data  []SaleResponse `json:"data"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}

// ToSaleResponse maps a persisted sale to its API shape.
func ToSaleResponse(s *model.Sale) *SaleResponse {
	items := make([]CartItemResponse, 0, len(s.Items))
	for _, item := range s.Items {
		items = append(items, CartItemResponse{
			ID:          item.ID.String(),
			ProductID:   item.ProductID.String(),
			ProductName: item.ProductName,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
			AddOns:      item.AddOns,
			AcaiAddOns:  item.AcaiAddOns,
			Observation: item.Observation,
			Subtotal:    item.Subtotal,
		})
	}
	return &SaleResponse{
		ID:            s.ID.String(),
		Items:         items,
		CustomerName:  s.CustomerName,
		PaymentMethod: string(s.PaymentMethod),
		Subtotal:      s.Subtotal,
		CashAmount:    s.CashAmount,
		Change:        s.Change,
		PixReference:  s.PixReference,
		CreatedBy:     s.CreatedBy.String(),
		CreatedAt:     s.CreatedAt.UTC().Format(time.RFC3339),
	}
}
