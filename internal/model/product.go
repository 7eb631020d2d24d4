package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a catalog entry. Cart items snapshot Name and Price at add time,
// so editing a product never changes lines already in a cart or a closed sale.
type Product struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"index;not null"`
	Description *string
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CategoryID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	ImageURL    *string
	Active      bool `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Category *Category `gorm:"foreignKey:CategoryID"`
}
