package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SelectedAddOn is a customization chosen for one cart line. Name and Price
// are snapshotted from the catalog at add time.
type SelectedAddOn struct {
	ID    uuid.UUID       `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// SelectedAcaiAddOn additionally carries the display category
// (caldas | complementos | adicionais). The tag never affects pricing.
type SelectedAcaiAddOn struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	CategoryType string          `json:"categoryType"`
}

// CartItem is one priced line in a cart. ProductName and UnitPrice are
// denormalized at add time, insulating the cart from later catalog edits.
// Subtotal is always (UnitPrice + sum of add-on prices) * Quantity, recomputed
// on every quantity change, never edited independently.
type CartItem struct {
	ID          uuid.UUID           `json:"id"`
	ProductID   uuid.UUID           `json:"productId"`
	ProductName string              `json:"productName"`
	UnitPrice   decimal.Decimal     `json:"unitPrice"`
	Quantity    int                 `json:"quantity"`
	AddOns      []SelectedAddOn     `json:"addOns"`
	AcaiAddOns  []SelectedAcaiAddOn `json:"acaiAddOns,omitempty"`
	Observation string              `json:"observation"`
	Subtotal    decimal.Decimal     `json:"subtotal"`
}

// Cart is the active order for one operator, persisted as a single row that
// is overwritten on every mutation. TotalItems and Subtotal must always equal
// the fold over Items; every mutation path maintains this exactly.
type Cart struct {
	OperatorID uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Items      []CartItem      `gorm:"serializer:json"`
	TotalItems int             `gorm:"not null;default:0"`
	Subtotal   decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	UpdatedAt  time.Time
}

// TableName: one row per operator, so singular reads better than GORM's "carts".
func (Cart) TableName() string { return "active_carts" }

// Empty reports whether the cart has no line items.
func (c *Cart) Empty() bool { return len(c.Items) == 0 }

// FindItem returns the index of the line with the given id, or -1.
func (c *Cart) FindItem(itemID uuid.UUID) int {
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			return i
		}
	}
	return -1
}
