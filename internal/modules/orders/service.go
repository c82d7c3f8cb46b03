package orders

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/designerprogramming-cyber/Designs4U/internal/modules/catalog"
	"github.com/designerprogramming-cyber/Designs4U/internal/storage"
)

// Service owns every order's status transitions and the simulated
// external effects: instant bank confirmation and the delayed wallet
// approval.
type Service struct {
	approvalDelay time.Duration
	store         storage.Storage
	log           *slog.Logger

	mu     sync.Mutex
	orders map[string]*Order
	timers map[string]*time.Timer
}

func NewService(approvalDelay time.Duration, store storage.Storage, log *slog.Logger) *Service {
	return &Service{
		approvalDelay: approvalDelay,
		store:         store,
		log:           log,
		orders:        make(map[string]*Order),
		timers:        make(map[string]*time.Timer),
	}
}

// PlaceOrder creates an order in pending_payment with deep-copied
// product/variant snapshots.
func (s *Service) PlaceOrder(ctx context.Context, product catalog.Product, variant catalog.Variant, method PaymentMethod) (Order, error) {
	_ = ctx
	o := &Order{
		ID:            uuid.NewString(),
		Product:       product.Clone(),
		Variant:       variant,
		PaymentMethod: method,
		Status:        StatusPendingPayment,
		CreatedAt:     time.Now(),
	}

	s.mu.Lock()
	s.orders[o.ID] = o
	s.mu.Unlock()

	s.log.Info("order_placed",
		slog.String("order_id", o.ID),
		slog.String("product_id", o.Product.ID),
		slog.String("variant_id", o.Variant.ID),
		slog.String("method", string(method)))
	return *o, nil
}

func (s *Service) Get(ctx context.Context, id string) (Order, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return Order{}, ErrNotFound
	}
	return *o, nil
}

// CompleteBankPayment models an instantly confirmed bank transfer.
func (s *Service) CompleteBankPayment(ctx context.Context, id string) (Order, error) {
	_ = ctx
	return s.transition(id, StatusCompleted)
}

// SubmitWalletProof attaches the uploaded screenshot, moves the order
// to pending_approval and schedules the simulated approval. The timer
// belongs to this specific order and is cancelled if the order is
// discarded before it fires.
func (s *Service) SubmitWalletProof(ctx context.Context, id string, proof io.Reader, filename, contentType string) (Order, error) {
	if proof == nil {
		return Order{}, ErrMissingProof
	}
	put, err := s.store.Put(ctx, proof, storage.PutInput{Filename: filename, ContentType: contentType})
	if err != nil {
		return Order{}, err
	}

	s.mu.Lock()
	o, ok := s.orders[id]
	if !ok {
		s.mu.Unlock()
		return Order{}, ErrNotFound
	}
	if !o.Status.CanTransition(StatusPendingApproval) {
		s.mu.Unlock()
		return Order{}, ErrInvalidTransition
	}
	o.Status = StatusPendingApproval
	o.ScreenshotKey = put.Key

	s.timers[id] = time.AfterFunc(s.approvalDelay, func() { s.approve(id) })
	snapshot := *o
	s.mu.Unlock()

	s.log.Info("order_pending_approval",
		slog.String("order_id", id),
		slog.String("screenshot_key", put.Key),
		slog.Duration("approval_delay", s.approvalDelay))
	return snapshot, nil
}

// FailOrder rejects a wallet order awaiting approval.
func (s *Service) FailOrder(ctx context.Context, id string) (Order, error) {
	_ = ctx
	s.mu.Lock()
	if t, ok := s.timers[id]; ok {
		t.Stop()
		delete(s.timers, id)
	}
	s.mu.Unlock()
	return s.transition(id, StatusFailed)
}

// Discard drops the order and cancels any pending approval timer so a
// torn-down checkout cannot mutate stale state later.
func (s *Service) Discard(ctx context.Context, id string) {
	s.mu.Lock()
	if t, ok := s.timers[id]; ok {
		t.Stop()
		delete(s.timers, id)
	}
	o, ok := s.orders[id]
	delete(s.orders, id)
	s.mu.Unlock()

	if ok && o.ScreenshotKey != "" {
		_ = s.store.Delete(ctx, o.ScreenshotKey)
	}
}

// Proof returns the stored wallet screenshot for an order.
func (s *Service) Proof(ctx context.Context, id string) (storage.Object, error) {
	o, err := s.Get(ctx, id)
	if err != nil {
		return storage.Object{}, err
	}
	if o.ScreenshotKey == "" {
		return storage.Object{}, ErrMissingProof
	}
	obj, ok, err := s.store.Get(ctx, o.ScreenshotKey)
	if err != nil {
		return storage.Object{}, err
	}
	if !ok {
		return storage.Object{}, ErrNotFound
	}
	return obj, nil
}

func (s *Service) approve(id string) {
	s.mu.Lock()
	delete(s.timers, id)
	o, ok := s.orders[id]
	if !ok || !o.Status.CanTransition(StatusCompleted) {
		s.mu.Unlock()
		return
	}
	o.Status = StatusCompleted
	s.mu.Unlock()

	s.log.Info("order_approved", slog.String("order_id", id))
}

func (s *Service) transition(id string, next Status) (Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return Order{}, ErrNotFound
	}
	if !o.Status.CanTransition(next) {
		return Order{}, ErrInvalidTransition
	}
	o.Status = next
	s.log.Info("order_status_changed",
		slog.String("order_id", id),
		slog.String("status", string(next)))
	return *o, nil
}
