package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acaizen-vn/acaizen-smart-hub-pos/internal/dto"
	"github.com/acaizen-vn/acaizen-smart-hub-pos/internal/model"
	"github.com/acaizen-vn/acaizen-smart-hub-pos/internal/notify"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

type cartFixture struct {
	svc      CartService
	cartRepo *memCartRepo
	addOns   *memAddOnRepo
	acai500  *model.Product
	agua     *model.Product
	granola  *model.AcaiAddOn
	leite    *model.AcaiAddOn
	morango  *model.AcaiAddOn
	operator uuid.UUID
}

func newCartFixture(t *testing.T) *cartFixture {
	t.Helper()

	f := &cartFixture{
		cartRepo: newMemCartRepo(),
		addOns:   newMemAddOnRepo(),
		operator: uuid.New(),
	}

	f.acai500 = &model.Product{ID: uuid.New(), Name: "Açaí 500ml", Price: dec("18.90"), Active: true}
	f.agua = &model.Product{ID: uuid.New(), Name: "Água Mineral", Price: dec("3.50"), Active: true}
	products := newMemProductRepo(f.acai500, f.agua)

	f.granola = &model.AcaiAddOn{ID: uuid.New(), Name: "Granola", Price: dec("3.00"), CategoryType: model.AcaiCategoryComplementos, Active: true}
	f.leite = &model.AcaiAddOn{ID: uuid.New(), Name: "Leite em Pó", Price: dec("2.50"), CategoryType: model.AcaiCategoryComplementos, Active: true}
	f.morango = &model.AcaiAddOn{ID: uuid.New(), Name: "Morango", Price: dec("4.50"), CategoryType: model.AcaiCategoryAdicionais, Active: true}
	f.addOns.acaiAddOns[f.granola.ID] = f.granola
	f.addOns.acaiAddOns[f.leite.ID] = f.leite
	f.addOns.acaiAddOns[f.morango.ID] = f.morango

	f.svc = NewCartService(f.cartRepo, products, f.addOns, notify.Nop{})
	return f
}

func TestAddItemComputesLineSubtotal(t *testing.T) {
	f := newCartFixture(t)
	ctx := context.Background()

	// 18.90 + 3.00 + 2.50 = 24.40 per unit, times 1
	cart, err := f.svc.AddItem(ctx, f.operator, dto.AddItemRequest{
		ProductID:    f.acai500.ID.String(),
		Quantity:     1,
		AcaiAddOnIDs: []string{f.granola.ID.String(), f.leite.ID.String()},
	})
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.True(t, cart.Items[0].Subtotal.Equal(dec("24.40")), "got %s", cart.Items[0].Subtotal)
	assert.True(t, cart.Subtotal.Equal(dec("24.40")))
	assert.Equal(t, 1, cart.TotalItems)
}

func TestAddItemMultipliesAddOnsByQuantity(t *testing.T) {
	f := newCartFixture(t)

	// (18.90 + 4.50) * 3 = 70.20
	cart, err := f.svc.AddItem(context.Background(), f.operator, dto.AddItemRequest{
		ProductID:    f.acai500.ID.String(),
		Quantity:     3,
		AcaiAddOnIDs: []string{f.morango.ID.String()},
	})
	require.NoError(t, err)
	assert.True(t, cart.Subtotal.Equal(dec("70.20")), "got %s", cart.Subtotal)
	assert.Equal(t, 3, cart.TotalItems)
}

func TestAddItemSameProductKeepsDistinctLines(t *testing.T) {
	f := newCartFixture(t)
	ctx := context.Background()

	_, err := f.svc.AddItem(ctx, f.operator, dto.AddItemRequest{ProductID: f.agua.ID.String(), Quantity: 1})
	require.NoError(t, err)
	cart, err := f.svc.AddItem(ctx, f.operator, dto.AddItemRequest{ProductID: f.agua.ID.String(), Quantity: 2})
	require.NoError(t, err)

	require.Len(t, cart.Items, 2)
	assert.NotEqual(t, cart.Items[0].ID, cart.Items[1].ID)
	assert.Equal(t, 3, cart.TotalItems)
	assert.True(t, cart.Subtotal.Equal(dec("10.50")))
}

func TestAddItemRejectsNonPositiveQuantity(t *testing.T) {
	f := newCartFixture(t)
	ctx := context.Background()

	for _, qty := range []int{0, -1, -50} {
		_, err := f.svc.AddItem(ctx, f.operator, dto.AddItemRequest{ProductID: f.agua.ID.String(), Quantity: qty})
		assert.ErrorIs(t, err, ErrInvalidQuantity, "quantity %d", qty)
	}

	cart, err := f.svc.Get(ctx, f.operator)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestAddItemUnknownProduct(t *testing.T) {
	f := newCartFixture(t)
	_, err := f.svc.AddItem(context.Background(), f.operator, dto.AddItemRequest{ProductID: uuid.NewString(), Quantity: 1})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRemoveItemAdjustsAggregates(t *testing.T) {
	f := newCartFixture(t)
	ctx := context.Background()

	cart, err := f.svc.AddItem(ctx, f.operator, dto.AddItemRequest{ProductID: f.acai500.ID.String(), Quantity: 2})
	require.NoError(t, err)
	_, err = f.svc.AddItem(ctx, f.operator, dto.AddItemRequest{ProductID: f.agua.ID.String(), Quantity: 1})
	require.NoError(t, err)

	itemID := uuid.MustParse(cart.Items[0].ID)
	after, err := f.svc.RemoveItem(ctx, f.operator, itemID)
	require.NoError(t, err)

	require.Len(t, after.Items, 1)
	assert.Equal(t, 1, after.TotalItems)
	assert.True(t, after.Subtotal.Equal(dec("3.50")))
}

func TestRemoveUnknownItemIsNoop(t *testing.T) {
	f := newCartFixture(t)
	ctx := context.Background()

	before, err := f.svc.AddItem(ctx, f.operator, dto.AddItemRequest{ProductID: f.agua.ID.String(), Quantity: 1})
	require.NoError(t, err)

	after, err := f.svc.RemoveItem(ctx, f.operator, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, before.TotalItems, after.TotalItems)
	assert.True(t, before.Subtotal.Equal(after.Subtotal))
	assert.Len(t, after.Items, 1)
}

func TestUpdateQuantityRecomputesFromSnapshot(t *testing.T) {
	f := newCartFixture(t)
	ctx := context.Background()

	cart, err := f.svc.AddItem(ctx, f.operator, dto.AddItemRequest{
		ProductID:    f.acai500.ID.String(),
		Quantity:     1,
		AcaiAddOnIDs: []string{f.granola.ID.String()},
	})
	require.NoError(t, err)
	itemID := uuid.MustParse(cart.Items[0].ID)

	// (18.90 + 3.00) * 4 = 87.60
	after, err := f.svc.UpdateQuantity(ctx, f.operator, itemID, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, after.TotalItems)
	assert.True(t, after.Subtotal.Equal(dec("87.60")), "got %s", after.Subtotal)
}

func TestUpdateQuantityZeroRemovesLine(t *testing.T) {
	f := newCartFixture(t)
	ctx := context.Background()

	cart, err := f.svc.AddItem(ctx, f.operator, dto.AddItemRequest{ProductID: f.agua.ID.String(), Quantity: 2})
	require.NoError(t, err)
	itemID := uuid.MustParse(cart.Items[0].ID)

	after, err := f.svc.UpdateQuantity(ctx, f.operator, itemID, 0)
	require.NoError(t, err)
	assert.Empty(t, after.Items)
	assert.Equal(t, 0, after.TotalItems)
	assert.True(t, after.Subtotal.IsZero())

	// Negative goes the same way and an already-removed line is a no-op.
	again, err := f.svc.UpdateQuantity(ctx, f.operator, itemID, -3)
	require.NoError(t, err)
	assert.Empty(t, again.Items)
}

func TestUpdateQuantityUnknownItem(t *testing.T) {
	f := newCartFixture(t)
	_, err := f.svc.UpdateQuantity(context.Background(), f.operator, uuid.New(), 2)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAggregatesStayConsistentAcrossMutations(t *testing.T) {
	f := newCartFixture(t)
	ctx := context.Background()

	var lineID uuid.UUID
	cart, err := f.svc.AddItem(ctx, f.operator, dto.AddItemRequest{
		ProductID:    f.acai500.ID.String(),
		Quantity:     2,
		AcaiAddOnIDs: []string{f.granola.ID.String(), f.morango.ID.String()},
	})
	require.NoError(t, err)
	lineID = uuid.MustParse(cart.Items[0].ID)

	_, err = f.svc.AddItem(ctx, f.operator, dto.AddItemRequest{ProductID: f.agua.ID.String(), Quantity: 5})
	require.NoError(t, err)
	_, err = f.svc.UpdateQuantity(ctx, f.operator, lineID, 3)
	require.NoError(t, err)
	final, err := f.svc.RemoveItem(ctx, f.operator, uuid.New()) // no-op
	require.NoError(t, err)

	wantItems := 0
	wantSubtotal := decimal.Zero
	for _, item := range final.Items {
		wantItems += item.Quantity
		wantSubtotal = wantSubtotal.Add(item.Subtotal)
	}
	assert.Equal(t, wantItems, final.TotalItems)
	assert.True(t, wantSubtotal.Equal(final.Subtotal), "want %s got %s", wantSubtotal, final.Subtotal)
}

func TestClearEmptiesCart(t *testing.T) {
	f := newCartFixture(t)
	ctx := context.Background()

	_, err := f.svc.AddItem(ctx, f.operator, dto.AddItemRequest{ProductID: f.agua.ID.String(), Quantity: 2})
	require.NoError(t, err)

	require.NoError(t, f.svc.Clear(ctx, f.operator))

	cart, err := f.svc.Get(ctx, f.operator)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Equal(t, 0, cart.TotalItems)
	assert.True(t, cart.Subtotal.IsZero())
}

func TestCartsAreScopedPerOperator(t *testing.T) {
	f := newCartFixture(t)
	ctx := context.Background()
	other := uuid.New()

	_, err := f.svc.AddItem(ctx, f.operator, dto.AddItemRequest{ProductID: f.agua.ID.String(), Quantity: 1})
	require.NoError(t, err)

	cart, err := f.svc.Get(ctx, other)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}
