package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/farmops/farm-api/internal/core/domain"
	"github.com/farmops/farm-api/internal/core/ports"
)

type orderEventService struct {
	events ports.OrderEventRepository
	log    zerolog.Logger
}

// NewOrderEventService returns the OrderEventService used by the queue
// workers to persist the order audit trail.
func NewOrderEventService(events ports.OrderEventRepository, log zerolog.Logger) ports.OrderEventService {
	return &orderEventService{events: events, log: log}
}

// Process writes one audit entry for a placed order. Failures are returned to
// the dispatcher for logging; they never reach the customer request, which
// completed when the order document was persisted.
func (s *orderEventService) Process(ctx context.Context, in ports.OrderPlacedInput) error {
	event := &domain.OrderEvent{
		OrderID:     in.OrderID,
		Status:      in.Status,
		TotalAmount: in.TotalAmount,
		ItemCount:   in.ItemCount,
		Timestamp:   in.Timestamp,
	}

	if err := s.events.Insert(ctx, event); err != nil {
		return fmt.Errorf("order event: %w", err)
	}

	s.log.Debug().Str("order_id", in.OrderID).Msg("order event recorded")
	return nil
}
