package pricing

import (
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acaizen-vn/acaizen-smart-hub-pos/internal/model"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestItemSubtotal_BaseOnly(t *testing.T) {
	got := ItemSubtotal(dec("15.90"), 2, nil, nil)
	assert.True(t, got.Equal(dec("31.80")), "got %s", got)
}

func TestItemSubtotal_WithAddOns(t *testing.T) {
	addOns := []model.SelectedAddOn{
		{ID: uuid.New(), Name: "Granola", Price: dec("3.00")},
		{ID: uuid.New(), Name: "Leite em pó", Price: dec("0.00")},
	}
	acai := []model.SelectedAcaiAddOn{
		{ID: uuid.New(), Name: "Calda de morango", Price: dec("1.50"), CategoryType: model.AcaiCategoryCaldas},
	}
	// (15.90 + 3.00 + 0.00 + 1.50) * 3 = 61.20
	got := ItemSubtotal(dec("15.90"), 3, addOns, acai)
	assert.True(t, got.Equal(dec("61.20")), "got %s", got)
}

// Ten 0.10 add-ons must sum to exactly 1.00, the classic binary-float trap.
func TestItemSubtotal_NoFloatDrift(t *testing.T) {
	var addOns []model.SelectedAddOn
	for i := 0; i < 10; i++ {
		addOns = append(addOns, model.SelectedAddOn{ID: uuid.New(), Price: dec("0.10")})
	}
	got := ItemSubtotal(decimal.Zero, 1, addOns, nil)
	require.True(t, got.Equal(dec("1.00")), "got %s", got)
}

// The subtotal formula must hold exactly over large random add-on sets.
func TestItemSubtotal_RandomizedExactness(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for run := 0; run < 20; run++ {
		n := 1000
		addOns := make([]model.SelectedAddOn, 0, n)
		sum := decimal.Zero
		for i := 0; i < n; i++ {
			// prices in cents: 0.00 .. 9.99, many non-terminating in binary
			p := decimal.New(int64(rng.Intn(1000)), -2)
			addOns = append(addOns, model.SelectedAddOn{Price: p})
			sum = sum.Add(p)
		}
		qty := 1 + rng.Intn(9)
		unit := decimal.New(int64(rng.Intn(10000)), -2)

		want := unit.Add(sum).Mul(decimal.NewFromInt(int64(qty)))
		got := ItemSubtotal(unit, qty, addOns, nil)
		require.True(t, got.Equal(want), "run %d: got %s want %s", run, got, want)
	}
}
