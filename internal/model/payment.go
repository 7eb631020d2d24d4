package model

import (
	"errors"

	"github.com/shopspring/decimal"
)

// PaymentMethod is the tender type bucket used for register aggregates.
type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "cash"
	PaymentCredit PaymentMethod = "credit"
	PaymentDebit  PaymentMethod = "debit"
	PaymentPix    PaymentMethod = "pix"
)

// Valid reports whether m is one of the four known tender types.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentCredit, PaymentDebit, PaymentPix:
		return true
	}
	return false
}

// Card reports whether m counts toward the card bucket on the register.
func (m PaymentMethod) Card() bool { return m == PaymentCredit || m == PaymentDebit }

// PaymentDetails is a tagged payment variant. Only the fields matching Method
// may be set: CashTendered for cash, PixReference for pix. Use the
// constructors; Validate rejects any other combination so that, e.g., change
// for a card payment can never be materialized.
type PaymentDetails struct {
	Method       PaymentMethod
	CashTendered *decimal.Decimal
	PixReference *string
}

func CashPayment(tendered decimal.Decimal) PaymentDetails {
	return PaymentDetails{Method: PaymentCash, CashTendered: &tendered}
}

// CashPaymentExact represents a cash payment with no tendered amount declared
// (exact-amount handover, no change computed).
func CashPaymentExact() PaymentDetails {
	return PaymentDetails{Method: PaymentCash}
}

func CardPayment(method PaymentMethod) PaymentDetails {
	return PaymentDetails{Method: method}
}

func PixPayment(reference string) PaymentDetails {
	return PaymentDetails{Method: PaymentPix, PixReference: &reference}
}

// Validate checks the variant invariants.
func (p PaymentDetails) Validate() error {
	if !p.Method.Valid() {
		return errors.New("unknown payment method")
	}
	if p.CashTendered != nil && p.Method != PaymentCash {
		return errors.New("cash tendered only applies to cash payments")
	}
	if p.PixReference != nil && p.Method != PaymentPix {
		return errors.New("pix reference only applies to pix payments")
	}
	return nil
}
