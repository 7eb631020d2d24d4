package dto

import (
	"github.com/shopspring/decimal"

	"github.com/acaizen-vn/acaizen-smart-hub-pos/internal/model"
)

type AddItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity"` // validated in the service: must be ≥ 1
	// Catalog ids of the chosen customizations; names and prices are
	// snapshotted server-side so the client cannot invent prices.
	AddOnIDs     []string `json:"addon_ids"      validate:"omitempty,dive,uuid"`
	AcaiAddOnIDs []string `json:"acai_addon_ids" validate:"omitempty,dive,uuid"`
	Observation  string   `json:"observation"`
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type CartItemResponse struct {
	ID          string                    `json:"id"`
	ProductID   string                    `json:"product_id"`
	ProductName string                    `json:"product_name"`
	UnitPrice   decimal.Decimal           `json:"unit_price"`
	Quantity    int                       `json:"quantity"`
	AddOns      []model.SelectedAddOn     `json:"addons"`
	AcaiAddOns  []model.SelectedAcaiAddOn `json:"acai_addons,omitempty"`
	Observation string                    `json:"observation"`
	Subtotal    decimal.Decimal           `json:"subtotal"`
}

type CartResponse struct {
	Items      []CartItemResponse `json:"items"`
	TotalItems int                `json:"total_items"`
	Subtotal   decimal.Decimal    `json:"subtotal"`
}

// ToCartResponse maps the persisted cart to its API shape.
func ToCartResponse(c *model.Cart) *CartResponse {
	items := make([]CartItemResponse, 0, len(c.Items))
	for _, item := range c.Items {
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
	return &CartResponse{
		Items:      items,
		TotalItems: c.TotalItems,
		Subtotal:   c.Subtotal,
	}
}
