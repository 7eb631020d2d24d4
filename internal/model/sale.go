package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sale is the immutable record of a completed transaction. It is created
// exactly once at finalization and appended to history; sales are NEVER
// updated or deleted. Items is a snapshot of the cart lines at finalize time.
// CashAmount and Change are set only for cash payments; PixReference only for
// pix (enforced by PaymentDetails before the Sale is built).
type Sale struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Items         []CartItem      `gorm:"serializer:json"`
	CustomerName  string          `gorm:"not null"`
	PaymentMethod PaymentMethod   `gorm:"type:varchar(10);not null;index"`
	Subtotal      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CashAmount    *decimal.Decimal `gorm:"type:decimal(12,2)"`
	Change        *decimal.Decimal `gorm:"type:decimal(12,2)"`
	PixReference  *string
	CreatedBy     uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt     time.Time `gorm:"index"`
}
