package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/acaizen-vn/acaizen-smart-hub-pos/internal/dto"
	"github.com/acaizen-vn/acaizen-smart-hub-pos/internal/model"
	"github.com/acaizen-vn/acaizen-smart-hub-pos/internal/notify"
	"github.com/acaizen-vn/acaizen-smart-hub-pos/internal/repository"
	"github.com/acaizen-vn/acaizen-smart-hub-pos/internal/worker"
)

// RegisterListener is invoked synchronously whenever the open register
// changes: on open, on every recorded sale, and on close (with nil).
type RegisterListener func(register *model.CashRegister)

// RegisterService manages the cash register session lifecycle: at most one
// register is open at a time, every state change is persisted before any
// listener hears about it, and closed registers are kept as history forever.
// The subscriber list belongs to the service instance, so tests can build
// isolated instances instead of sharing ambient global state.
type RegisterService interface {
	Open(ctx context.Context, operatorID uuid.UUID, req dto.OpenRegisterRequest) (*dto.RegisterResponse, error)
	Close(ctx context.Context, operatorID uuid.UUID, req dto.CloseRegisterRequest) (*dto.RegisterResponse, error)
	Current(ctx context.Context) (*dto.RegisterResponse, error)
	RecordSale(ctx context.Context, sale *model.Sale) error
	RecordManualMovement(ctx context.Context, operatorID uuid.UUID, req dto.ManualMovementRequest) error
	History(ctx context.Context, page, limit int) (*dto.RegisterListResponse, error)
	Movements(ctx context.Context, registerID uuid.UUID) ([]dto.MovementResponse, error)

	// Subscribe registers a listener and returns its unsubscribe function.
	Subscribe(l RegisterListener) (unsubscribe func())
}

type registerService struct {
	mu         sync.Mutex // serializes every register mutation
	repo       repository.RegisterRepository
	notifier   notify.Notifier
	dispatcher *worker.Dispatcher // nil in tests: no closing report enqueued

	listenersMu sync.Mutex
	listeners   []registeredListener
	listenerSeq int
}

type registeredListener struct {
	id int
	fn RegisterListener
}

func NewRegisterService(repo repository.RegisterRepository, notifier notify.Notifier, dispatcher *worker.Dispatcher) RegisterService {
	return &registerService{repo: repo, notifier: notifier, dispatcher: dispatcher}
}

func (s *registerService) Open(ctx context.Context, operatorID uuid.UUID, req dto.OpenRegisterRequest) (*dto.RegisterResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.repo.FindOpen(ctx); err == nil {
		s.notifier.Error("Caixa já aberto", "Feche o caixa atual antes de abrir outro")
		return nil, ErrRegisterAlreadyOpen
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	reg := &model.CashRegister{
		OpenedBy:      operatorID,
		OpenedAt:      time.Now(),
		InitialAmount: req.InitialAmount,
		IsOpen:        true,
		Notes:         req.Notes,
	}
	if err := s.repo.Create(ctx, reg); err != nil {
		return nil, err
	}

	if err := s.repo.CreateMovement(ctx, &model.CashMovement{
		CashRegisterID: reg.ID,
		Type:           model.MovementOpening,
		Amount:         req.InitialAmount,
		Description:    movementDescription("Abertura de caixa", req.Notes),
		CreatedBy:      operatorID,
	}); err != nil {
		return nil, err
	}

	s.broadcast(reg)
	s.notifier.Success("Caixa Aberto", fmt.Sprintf("Caixa aberto com valor inicial de R$ %s", req.InitialAmount.StringFixed(2)))
	return dto.ToRegisterResponse(reg), nil
}

func (s *registerService) Close(ctx context.Context, operatorID uuid.UUID, req dto.CloseRegisterRequest) (*dto.RegisterResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reg, err := s.repo.FindOpen(ctx)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoOpenRegister
	}
	if err != nil {
		return nil, err
	}

	now := time.Now()
	reg.ClosedBy = &operatorID
	reg.ClosedAt = &now
	reg.FinalAmount = &req.FinalAmount
	reg.IsOpen = false
	if req.Notes != nil {
		reg.Notes = req.Notes
	}

	if err := s.repo.Update(ctx, reg); err != nil {
		return nil, err
	}

	if err := s.repo.CreateMovement(ctx, &model.CashMovement{
		CashRegisterID: reg.ID,
		Type:           model.MovementClosing,
		Amount:         req.FinalAmount,
		Description:    movementDescription("Fechamento de caixa", req.Notes),
		CreatedBy:      operatorID,
	}); err != nil {
		return nil, err
	}

	s.broadcast(nil)
	s.notifier.Success("Caixa Fechado", fmt.Sprintf("Caixa fechado com valor final de R$ %s", req.FinalAmount.StringFixed(2)))

	// Closing report is best effort; a queue hiccup never undoes the close.
	if s.dispatcher != nil {
		if err := s.dispatcher.EnqueueClosingReport(ctx, worker.ClosingReportPayload{RegisterID: reg.ID.String()}); err != nil {
			log.Warn().Err(err).Str("register_id", reg.ID.String()).Msg("failed to enqueue closing report")
		}
	}

	return dto.ToRegisterResponse(reg), nil
}

// Current returns the open register, or (nil, nil) when the till is closed.
func (s *registerService) Current(ctx context.Context) (*dto.RegisterResponse, error) {
	reg, err := s.repo.FindOpen(ctx)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return dto.ToRegisterResponse(reg), nil
}

// RecordSale adds a finalized sale to the open register's running aggregates
// and appends a "sale" movement to the ledger. When no register is open it
// logs and returns nil: the PDV blocks sales while the till is closed, so
// reaching this without one is a defect upstream, not a reason to lose the
// already-persisted sale.
func (s *registerService) RecordSale(ctx context.Context, sale *model.Sale) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	reg, err := s.repo.FindOpen(ctx)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		log.Warn().
			Str("sale_id", sale.ID.String()).
			Str("payment_method", string(sale.PaymentMethod)).
			Msg("sale finalized with no open register, aggregates not updated")
		return nil
	}
	if err != nil {
		return err
	}

	reg.TotalSales = reg.TotalSales.Add(sale.Subtotal)
	reg.SalesCount++
	switch {
	case sale.PaymentMethod == model.PaymentCash:
		reg.TotalCashSales = reg.TotalCashSales.Add(sale.Subtotal)
	case sale.PaymentMethod.Card():
		reg.TotalCardSales = reg.TotalCardSales.Add(sale.Subtotal)
	case sale.PaymentMethod == model.PaymentPix:
		reg.TotalPixSales = reg.TotalPixSales.Add(sale.Subtotal)
	}

	if err := s.repo.Update(ctx, reg); err != nil {
		return err
	}

	method := sale.PaymentMethod
	saleID := sale.ID
	if err := s.repo.CreateMovement(ctx, &model.CashMovement{
		CashRegisterID: reg.ID,
		Type:           model.MovementSale,
		Amount:         sale.Subtotal,
		Description:    fmt.Sprintf("Venda para %s", sale.CustomerName),
		PaymentMethod:  &method,
		SaleID:         &saleID,
		CreatedBy:      sale.CreatedBy,
	}); err != nil {
		return err
	}

	s.broadcast(reg)
	return nil
}

// RecordManualMovement appends a withdrawal or deposit entry to the open
// register's ledger. Withdrawals are stored negative; the ledger is
// append-only either way.
func (s *registerService) RecordManualMovement(ctx context.Context, operatorID uuid.UUID, req dto.ManualMovementRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	reg, err := s.repo.FindOpen(ctx)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNoOpenRegister
	}
	if err != nil {
		return err
	}

	amount := req.Amount
	if req.Type == model.MovementWithdrawal {
		amount = amount.Neg()
	}
	return s.repo.CreateMovement(ctx, &model.CashMovement{
		CashRegisterID: reg.ID,
		Type:           req.Type,
		Amount:         amount,
		Description:    req.Description,
		CreatedBy:      operatorID,
	})
}

func (s *registerService) History(ctx context.Context, page, limit int) (*dto.RegisterListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	registers, total, err := s.repo.ListClosed(ctx, page, limit)
	if err != nil {
		return nil, err
	}
	data := make([]dto.RegisterResponse, 0, len(registers))
	for i := range registers {
		data = append(data, *dto.ToRegisterResponse(&registers[i]))
	}
	return &dto.RegisterListResponse{Data: data, Total: total, Page: page, Limit: limit}, nil
}

func (s *registerService) Movements(ctx context.Context, registerID uuid.UUID) ([]dto.MovementResponse, error) {
	if _, err := s.repo.FindByID(ctx, registerID); err != nil {
		return nil, ErrNotFound
	}
	movements, err := s.repo.ListMovements(ctx, registerID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(movements))
	for i := range movements {
		out = append(out, *dto.ToMovementResponse(&movements[i]))
	}
	return out, nil
}

func (s *registerService) Subscribe(l RegisterListener) func() {
	s.listenersMu.Lock()
	defer s.listenersMu.Unlock()

	s.listenerSeq++
	id := s.listenerSeq
	s.listeners = append(s.listeners, registeredListener{id: id, fn: l})

	return func() {
		s.listenersMu.Lock()
		defer s.listenersMu.Unlock()
		for i := range s.listeners {
			if s.listeners[i].id == id {
				s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

// broadcast invokes every listener in registration order, after persistence.
// A panicking listener is logged and skipped so it can never undo state that
// is already on disk, nor starve the listeners behind it.
func (s *registerService) broadcast(reg *model.CashRegister) {
	s.listenersMu.Lock()
	snapshot := make([]registeredListener, len(s.listeners))
	copy(snapshot, s.listeners)
	s.listenersMu.Unlock()

	for _, l := range snapshot {
		func() {
			defer func() {
				if r := recover(); r != nil {
					log.Error().Interface("panic", r).Int("listener", l.id).Msg("register listener panicked")
				}
			}()
			l.fn(reg)
		}()
	}
}

func movementDescription(prefix string, notes *string) string {
	if notes != nil && *notes != "" {
		return fmt.Sprintf("%s - %s", prefix, *notes)
	}
	return prefix + " - Sem observações"
}
