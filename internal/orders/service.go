package orders

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"groove/internal/catalog"
	"groove/internal/logging"
)

// Service implements order fulfillment on top of the order and record stores.
type Service struct {
	store   *Store
	catalog *catalog.Store
	logger  *slog.Logger
}

// NewService constructs an order service.
func NewService(store *Store, catalogStore *catalog.Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Service{
		store:   store,
		catalog: catalogStore,
		logger:  logger.With(logging.String("component", "orders")),
	}
}

// Create fulfills an order: it verifies the record exists and has enough
// stock, prices the order at the current unit price, and persists it
// together with the stock decrement. The pre-checks exist for clean errors;
// the transactional conditional decrement is the authoritative guard.
func (s *Service) Create(ctx context.Context, input CreateInput) (*Order, error) {
	record, err := s.catalog.GetByID(ctx, input.RecordID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, &RecordNotFoundError{RecordID: input.RecordID}
	}
	if record.Quantity < input.Quantity {
		return nil, ErrInsufficientStock
	}

	order := &Order{
		ID:              uuid.NewString(),
		RecordID:        record.ID,
		Quantity:        input.Quantity,
		TotalCents:      record.PriceCents * input.Quantity,
		CustomerName:    input.CustomerName,
		CustomerEmail:   input.CustomerEmail,
		ShippingAddress: input.ShippingAddress,
		CreatedAt:       time.Now().UTC(),
	}

	if err := s.store.Create(ctx, order); err != nil {
		return nil, err
	}

	s.logger.Info("order created",
		logging.String("order_id", order.ID),
		logging.String("record_id", order.RecordID),
		logging.Int64("quantity", order.Quantity),
		logging.Int64("total_cents", order.TotalCents))
	return order, nil
}

// GetByID fetches an order, failing with ErrNotFound when absent.
func (s *Service) GetByID(ctx context.Context, id string) (*Order, error) {
	order, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrNotFound
	}
	return order, nil
}

// List returns a page of orders, newest first by default.
func (s *Service) List(ctx context.Context, query ListQuery) (ListResult, error) {
	return s.store.List(ctx, query)
}
