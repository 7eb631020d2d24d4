package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/acaizen-vn/acaizen-smart-hub-pos/internal/model"
)

type OpenRegisterRequest struct {
	InitialAmount decimal.Decimal `json:"initial_amount" validate:"min=0"`
	Notes         *string         `json:"notes"`
}

type CloseRegisterRequest struct {
	FinalAmount decimal.Decimal `json:"final_amount" validate:"min=0"`
	Notes       *string         `json:"notes"`
}

type ManualMovementRequest struct {
	Type        string          `json:"type"        validate:"required,oneof=withdrawal deposit"`
	Amount      decimal.Decimal `json:"amount"      validate:"required,gt=0"`
	Description string          `json:"description" validate:"required,min=3"`
}

type RegisterResponse struct {
	ID            string           `json:"id"`
	OpenedBy      string           `json:"opened_by"`
	OpenedAt      string           `json:"opened_at"`
	ClosedBy      *string          `json:"closed_by,omitempty"`
	ClosedAt      *string          `json:"closed_at,omitempty"`
	InitialAmount decimal.Decimal  `json:"initial_amount"`
	FinalAmount   *decimal.Decimal `json:"final_amount,omitempty"`

	TotalSales     decimal.Decimal `json:"total_sales"`
	TotalCashSales decimal.Decimal `json:"total_cash_sales"`
	TotalCardSales decimal.Decimal `json:"total_card_sales"`
	TotalPixSales  decimal.Decimal `json:"total_pix_sales"`
	SalesCount     int             `json:"sales_count"`

	// ExpectedCash = initial float + cash sales. Variance (counted − expected)
	// is present only on closed registers; both are derived, never stored.
	ExpectedCash decimal.Decimal  `json:"expected_cash"`
	Variance     *decimal.Decimal `json:"variance,omitempty"`

	IsOpen bool    `json:"is_open"`
	Notes  *string `json:"notes,omitempty"`
}

type RegisterListResponse struct {
	Data  []RegisterResponse `json:"data"`
	Total int64              `json:"total"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
}

type MovementResponse struct {
	ID            string          `json:"id"`
	Type          string          `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	PaymentMethod *string         `json:"payment_method,omitempty"`
	SaleID        *string         `json:"sale_id,omitempty"`
	CreatedBy     string          `json:"created_by"`
	CreatedAt     string          `json:"created_at"`
}

// ToRegisterResponse maps a register to its API shape, deriving ExpectedCash
// and, for closed registers, the variance.
func ToRegisterResponse(r *model.CashRegister) *RegisterResponse {
	resp := &RegisterResponse{
		ID:             r.ID.String(),
		OpenedBy:       r.OpenedBy.String(),
		OpenedAt:       r.OpenedAt.UTC().Format(time.RFC3339),
		InitialAmount:  r.InitialAmount,
		FinalAmount:    r.FinalAmount,
		TotalSales:     r.TotalSales,
		TotalCashSales: r.TotalCashSales,
		TotalCardSales: r.TotalCardSales,
		TotalPixSales:  r.TotalPixSales,
		SalesCount:     r.SalesCount,
		ExpectedCash:   r.ExpectedCash(),
		IsOpen:         r.IsOpen,
		Notes:          r.Notes,
	}
	if r.ClosedBy != nil {
		s := r.ClosedBy.String()
		resp.ClosedBy = &s
	}
	if r.ClosedAt != nil {
		t := r.ClosedAt.UTC().Format(time.RFC3339)
		resp.ClosedAt = &t
	}
	if r.FinalAmount != nil {
		v := r.FinalAmount.Sub(r.ExpectedCash())
		resp.Variance = &v
	}
	return resp
}

// ToMovementResponse maps a cash movement to its API shape.
func ToMovementResponse(m *model.CashMovement) *MovementResponse {
	resp := &MovementResponse{
		ID:          m.ID.String(),
		Type:        m.Type,
		Amount:      m.Amount,
		Description: m.Description,
		CreatedBy:   m.CreatedBy.String(),
		CreatedAt:   m.CreatedAt.UTC().Format(time.RFC3339),
	}
	if m.PaymentMethod != nil {
		s := string(*m.PaymentMethod)
		resp.PaymentMethod = &s
	}
	if m.SaleID != nil {
		s := m.SaleID.String()
		resp.SaleID = &s
	}
	return resp
}
