package dto

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acaizen-vn/acaizen-smart-hub-pos/internal/model"
)

// Timestamps cross the API in UTC RFC3339 regardless of the server zone; a
// register opened at 09:00 BRT must not come back labeled 09:00 Z.
func TestRegisterResponseTimestampsAreUTC(t *testing.T) {
	brt := time.FixedZone("BRT", -3*60*60)
	openedAt := time.Date(2026, 3, 10, 9, 0, 0, 0, brt)
	closedAt := openedAt.Add(8 * time.Hour)
	finalAmount := decimal.RequireFromString("137.80")
	closedBy := uuid.New()

	reg := &model.CashRegister{
		ID:            uuid.New(),
		OpenedBy:      uuid.New(),
		OpenedAt:      openedAt,
		ClosedBy:      &closedBy,
		ClosedAt:      &closedAt,
		InitialAmount: decimal.RequireFromString("100.00"),
		FinalAmount:   &finalAmount,
	}

	resp := ToRegisterResponse(reg)

	assert.Equal(t, "2026-03-10T12:00:00Z", resp.OpenedAt)
	require.NotNil(t, resp.ClosedAt)
	assert.Equal(t, "2026-03-10T20:00:00Z", *resp.ClosedAt)

	// The stamp round-trips to the same instant.
	parsed, err := time.Parse(time.RFC3339, resp.OpenedAt)
	require.NoError(t, err)
	assert.True(t, parsed.Equal(openedAt))
}

func TestMovementResponseTimestampIsUTC(t *testing.T) {
	brt := time.FixedZone("BRT", -3*60*60)
	mov := &model.CashMovement{
		ID:          uuid.New(),
		Type:        model.MovementDeposit,
		Amount:      decimal.RequireFromString("15.00"),
		Description: "Troco extra",
		CreatedBy:   uuid.New(),
		CreatedAt:   time.Date(2026, 3, 10, 14, 30, 0, 0, brt),
	}

	resp := ToMovementResponse(mov)
	assert.Equal(t, "2026-03-10T17:30:00Z", resp.CreatedAt)
}
