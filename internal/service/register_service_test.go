package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acaizen-vn/acaizen-smart-hub-pos/internal/dto"
	"github.com/acaizen-vn/acaizen-smart-hub-pos/internal/model"
	"github.com/acaizen-vn/acaizen-smart-hub-pos/internal/notify"
)

func newRegisterFixture(t *testing.T) (RegisterService, *memRegisterRepo, uuid.UUID) {
	t.Helper()
	repo := newMemRegisterRepo()
	return NewRegisterService(repo, notify.Nop{}, nil), repo, uuid.New()
}

func cashSale(amount string, operator uuid.UUID) *model.Sale {
	return &model.Sale{
		ID:            uuid.New(),
		CustomerName:  "Maria",
		PaymentMethod: model.PaymentCash,
		Subtotal:      dec(amount),
		CreatedBy:     operator,
	}
}

func TestOpenCreatesRegisterAndOpeningMovement(t *testing.T) {
	svc, repo, operator := newRegisterFixture(t)

	reg, err := svc.Open(context.Background(), operator, dto.OpenRegisterRequest{InitialAmount: dec("150.00")})
	require.NoError(t, err)

	assert.True(t, reg.IsOpen)
	assert.True(t, reg.InitialAmount.Equal(dec("150.00")))
	assert.True(t, reg.ExpectedCash.Equal(dec("150.00")))
	assert.Nil(t, reg.Variance)

	openings := repo.movementsOfType(model.MovementOpening)
	require.Len(t, openings, 1)
	assert.True(t, openings[0].Amount.Equal(dec("150.00")))
}

func TestOpenRejectsSecondRegister(t *testing.T) {
	svc, _, operator := newRegisterFixture(t)
	ctx := context.Background()

	_, err := svc.Open(ctx, operator, dto.OpenRegisterRequest{InitialAmount: dec("50.00")})
	require.NoError(t, err)

	_, err = svc.Open(ctx, uuid.New(), dto.OpenRegisterRequest{InitialAmount: dec("80.00")})
	assert.ErrorIs(t, err, ErrRegisterAlreadyOpen)
}

func TestReopenAfterCloseIsAllowed(t *testing.T) {
	svc, _, operator := newRegisterFixture(t)
	ctx := context.Background()

	_, err := svc.Open(ctx, operator, dto.OpenRegisterRequest{InitialAmount: dec("50.00")})
	require.NoError(t, err)
	_, err = svc.Close(ctx, operator, dto.CloseRegisterRequest{FinalAmount: dec("50.00")})
	require.NoError(t, err)

	_, err = svc.Open(ctx, operator, dto.OpenRegisterRequest{InitialAmount: dec("70.00")})
	assert.NoError(t, err)
}

func TestCloseWithoutOpenRegister(t *testing.T) {
	svc, _, operator := newRegisterFixture(t)
	_, err := svc.Close(context.Background(), operator, dto.CloseRegisterRequest{FinalAmount: dec("10.00")})
	assert.ErrorIs(t, err, ErrNoOpenRegister)
}

func TestCurrentReturnsNilWhenClosed(t *testing.T) {
	svc, _, _ := newRegisterFixture(t)
	current, err := svc.Current(context.Background())
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestRecordSaleUpdatesTenderBuckets(t *testing.T) {
	svc, repo, operator := newRegisterFixture(t)
	ctx := context.Background()

	_, err := svc.Open(ctx, operator, dto.OpenRegisterRequest{InitialAmount: dec("100.00")})
	require.NoError(t, err)

	require.NoError(t, svc.RecordSale(ctx, cashSale("30.00", operator)))
	require.NoError(t, svc.RecordSale(ctx, &model.Sale{
		ID: uuid.New(), CustomerName: "João", PaymentMethod: model.PaymentCredit,
		Subtotal: dec("20.00"), CreatedBy: operator,
	}))
	require.NoError(t, svc.RecordSale(ctx, &model.Sale{
		ID: uuid.New(), CustomerName: "Ana", PaymentMethod: model.PaymentDebit,
		Subtotal: dec("15.00"), CreatedBy: operator,
	}))
	require.NoError(t, svc.RecordSale(ctx, &model.Sale{
		ID: uuid.New(), CustomerName: "Rui", PaymentMethod: model.PaymentPix,
		Subtotal: dec("10.00"), CreatedBy: operator,
	}))

	current, err := svc.Current(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, 4, current.SalesCount)
	assert.True(t, current.TotalSales.Equal(dec("75.00")))
	assert.True(t, current.TotalCashSales.Equal(dec("30.00")))
	assert.True(t, current.TotalCardSales.Equal(dec("35.00")), "credit and debit share the card bucket")
	assert.True(t, current.TotalPixSales.Equal(dec("10.00")))
	// Only cash affects the drawer expectation.
	assert.True(t, current.ExpectedCash.Equal(dec("130.00")))

	assert.Len(t, repo.movementsOfType(model.MovementSale), 4)
}

func TestRecordSaleWithoutOpenRegisterIsTolerated(t *testing.T) {
	svc, repo, operator := newRegisterFixture(t)

	err := svc.RecordSale(context.Background(), cashSale("25.00", operator))
	assert.NoError(t, err)
	assert.Empty(t, repo.movements)
}

func TestCloseStampsFieldsAndVariance(t *testing.T) {
	svc, repo, operator := newRegisterFixture(t)
	ctx := context.Background()

	_, err := svc.Open(ctx, operator, dto.OpenRegisterRequest{InitialAmount: dec("100.00")})
	require.NoError(t, err)
	require.NoError(t, svc.RecordSale(ctx, cashSale("37.80", operator)))

	closer := uuid.New()
	closed, err := svc.Close(ctx, closer, dto.CloseRegisterRequest{FinalAmount: dec("137.80")})
	require.NoError(t, err)

	assert.False(t, closed.IsOpen)
	require.NotNil(t, closed.ClosedBy)
	assert.Equal(t, closer.String(), *closed.ClosedBy)
	require.NotNil(t, closed.FinalAmount)
	assert.True(t, closed.ExpectedCash.Equal(dec("137.80")))
	require.NotNil(t, closed.Variance)
	assert.True(t, closed.Variance.IsZero(), "counted equals expected, variance must be 0")

	closings := repo.movementsOfType(model.MovementClosing)
	require.Len(t, closings, 1)
}

func TestCloseReportsShortDrawer(t *testing.T) {
	svc, _, operator := newRegisterFixture(t)
	ctx := context.Background()

	_, err := svc.Open(ctx, operator, dto.OpenRegisterRequest{InitialAmount: dec("100.00")})
	require.NoError(t, err)
	require.NoError(t, svc.RecordSale(ctx, cashSale("50.00", operator)))

	closed, err := svc.Close(ctx, operator, dto.CloseRegisterRequest{FinalAmount: dec("140.00")})
	require.NoError(t, err)
	require.NotNil(t, closed.Variance)
	assert.True(t, closed.Variance.Equal(dec("-10.00")), "got %s", closed.Variance)
}

func TestManualMovements(t *testing.T) {
	svc, repo, operator := newRegisterFixture(t)
	ctx := context.Background()

	_, err := svc.Open(ctx, operator, dto.OpenRegisterRequest{InitialAmount: dec("100.00")})
	require.NoError(t, err)

	require.NoError(t, svc.RecordManualMovement(ctx, operator, dto.ManualMovementRequest{
		Type: model.MovementWithdrawal, Amount: dec("40.00"), Description: "Sangria para o cofre",
	}))
	require.NoError(t, svc.RecordManualMovement(ctx, operator, dto.ManualMovementRequest{
		Type: model.MovementDeposit, Amount: dec("15.00"), Description: "Troco adicional",
	}))

	withdrawals := repo.movementsOfType(model.MovementWithdrawal)
	require.Len(t, withdrawals, 1)
	assert.True(t, withdrawals[0].Amount.Equal(dec("-40.00")), "withdrawals are stored negative")

	deposits := repo.movementsOfType(model.MovementDeposit)
	require.Len(t, deposits, 1)
	assert.True(t, deposits[0].Amount.Equal(dec("15.00")))
}

func TestManualMovementRequiresOpenRegister(t *testing.T) {
	svc, _, operator := newRegisterFixture(t)
	err := svc.RecordManualMovement(context.Background(), operator, dto.ManualMovementRequest{
		Type: model.MovementDeposit, Amount: dec("10.00"), Description: "Troco",
	})
	assert.ErrorIs(t, err, ErrNoOpenRegister)
}

func TestHistoryListsOnlyClosedRegisters(t *testing.T) {
	svc, _, operator := newRegisterFixture(t)
	ctx := context.Background()

	_, err := svc.Open(ctx, operator, dto.OpenRegisterRequest{InitialAmount: dec("10.00")})
	require.NoError(t, err)
	_, err = svc.Close(ctx, operator, dto.CloseRegisterRequest{FinalAmount: dec("10.00")})
	require.NoError(t, err)
	_, err = svc.Open(ctx, operator, dto.OpenRegisterRequest{InitialAmount: dec("20.00")})
	require.NoError(t, err)

	history, err := svc.History(ctx, 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(1), history.Total)
	require.Len(t, history.Data, 1)
	assert.False(t, history.Data[0].IsOpen)
}

func TestSubscribeReceivesLifecycleEvents(t *testing.T) {
	svc, _, operator := newRegisterFixture(t)
	ctx := context.Background()

	var events []*model.CashRegister
	unsubscribe := svc.Subscribe(func(reg *model.CashRegister) {
		events = append(events, reg)
	})

	_, err := svc.Open(ctx, operator, dto.OpenRegisterRequest{InitialAmount: dec("100.00")})
	require.NoError(t, err)
	require.NoError(t, svc.RecordSale(ctx, cashSale("10.00", operator)))
	_, err = svc.Close(ctx, operator, dto.CloseRegisterRequest{FinalAmount: dec("110.00")})
	require.NoError(t, err)

	// open -> state, sale -> state, close -> nil
	require.Len(t, events, 3)
	require.NotNil(t, events[0])
	assert.True(t, events[0].IsOpen)
	require.NotNil(t, events[1])
	assert.Equal(t, 1, events[1].SalesCount)
	assert.Nil(t, events[2])

	// After unsubscribe no further events arrive.
	unsubscribe()
	_, err = svc.Open(ctx, operator, dto.OpenRegisterRequest{InitialAmount: dec("5.00")})
	require.NoError(t, err)
	assert.Len(t, events, 3)
}

func TestListenersRunInRegistrationOrder(t *testing.T) {
	svc, _, operator := newRegisterFixture(t)

	var order []string
	svc.Subscribe(func(*model.CashRegister) { order = append(order, "first") })
	svc.Subscribe(func(*model.CashRegister) { order = append(order, "second") })

	_, err := svc.Open(context.Background(), operator, dto.OpenRegisterRequest{InitialAmount: dec("1.00")})
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestPanickingListenerDoesNotStarveOthers(t *testing.T) {
	svc, _, operator := newRegisterFixture(t)

	called := false
	svc.Subscribe(func(*model.CashRegister) { panic("listener bug") })
	svc.Subscribe(func(*model.CashRegister) { called = true })

	_, err := svc.Open(context.Background(), operator, dto.OpenRegisterRequest{InitialAmount: dec("1.00")})
	require.NoError(t, err)
	assert.True(t, called)
}

func TestStateIsPersistedBeforeListenersRun(t *testing.T) {
	svc, repo, operator := newRegisterFixture(t)

	var movementsAtBroadcast int
	svc.Subscribe(func(*model.CashRegister) {
		movementsAtBroadcast = len(repo.movementsOfType(model.MovementOpening))
	})

	_, err := svc.Open(context.Background(), operator, dto.OpenRegisterRequest{InitialAmount: dec("1.00")})
	require.NoError(t, err)
	assert.Equal(t, 1, movementsAtBroadcast, "opening movement must be on disk before listeners fire")
}

func TestMovementsRequiresExistingRegister(t *testing.T) {
	svc, _, _ := newRegisterFixture(t)
	_, err := svc.Movements(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}
