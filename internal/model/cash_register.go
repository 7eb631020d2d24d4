package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CashRegister represents one open-to-close session of the till.
// Invariant: at most one row with IsOpen = true exists at any time, enforced
// in RegisterService and backed by a partial unique index (see infra.NewDatabase).
// Closed registers are retained as history, never deleted.
type CashRegister struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OpenedBy      uuid.UUID  `gorm:"type:uuid;not null"`
	OpenedAt      time.Time  `gorm:"not null"`
	ClosedBy      *uuid.UUID `gorm:"type:uuid"`
	ClosedAt      *time.Time
	InitialAmount decimal.Decimal  `gorm:"type:decimal(12,2);not null"`
	FinalAmount   *decimal.Decimal `gorm:"type:decimal(12,2)"`

	// Running aggregates, incremented on each finalized sale.
	TotalSales     decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	TotalCashSales decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	TotalCardSales decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	TotalPixSales  decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	SalesCount     int             `gorm:"not null;default:0"`

	IsOpen bool `gorm:"not null;index"`
	Notes  *string
}

// ExpectedCash is the derived drawer expectation at close:
// opening float plus cash sales. The variance against the counted amount is
// a display value and is never stored.
func (r *CashRegister) ExpectedCash() decimal.Decimal {
	return r.InitialAmount.Add(r.TotalCashSales)
}

// Cash movement types. One "opening" and one "closing" entry exist per
// register at minimum; every finalized sale adds a "sale" entry.
const (
	MovementOpening    = "opening"
	MovementSale       = "sale"
	MovementWithdrawal = "withdrawal"
	MovementDeposit    = "deposit"
	MovementClosing    = "closing"
)

// CashMovement is an immutable audit-trail entry tied to a register.
// Movements are NEVER modified or deleted.
type CashMovement struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CashRegisterID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Type           string          `gorm:"type:varchar(20);not null"`
	Amount         decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Description    string          `gorm:"not null"`
	PaymentMethod  *PaymentMethod  `gorm:"type:varchar(10)"`
	SaleID         *uuid.UUID      `gorm:"type:uuid"`
	CreatedBy      uuid.UUID       `gorm:"type:uuid;not null"`
	CreatedAt      time.Time
}
