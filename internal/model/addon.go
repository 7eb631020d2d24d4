package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Açaí add-on category tags. Used only for display grouping on the PDV
// screen; pricing treats every add-on the same way.
const (
	AcaiCategoryCaldas       = "caldas"
	AcaiCategoryComplementos = "complementos"
	AcaiCategoryAdicionais   = "adicionais"
)

// AddOn is a generic product customization (e.g. extra shot, larger cup).
// Price may be zero for free customizations.
type AddOn struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string          `gorm:"not null"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Active    bool            `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AcaiAddOn is an açaí-specific customization carrying a display category.
type AcaiAddOn struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name         string          `gorm:"not null"`
	Price        decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CategoryType string          `gorm:"type:varchar(20);not null"`
	Active       bool            `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName overrides GORM's default pluralization (acai_add_ons, not acai_addons).
func (AcaiAddOn) TableName() string { return "acai_add_ons" }
