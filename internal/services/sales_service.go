// Package services orchestrates ledger mutations with optional event
// publishing for the export worker.
package services

import (
	"context"
	"fmt"
	"log/slog"

	"vendas/internal/amqp"
	"vendas/internal/core"
	"vendas/internal/ledger"
)

// EventPublisher publishes sale events to the export queue.
type EventPublisher interface {
	PublishSaleEvent(ctx context.Context, event *amqp.SaleEvent) error
	Close() error
}

// SalesService records and deletes sales through the ledger and mirrors
// each mutation onto the event queue. Publishing is best effort: the ledger
// write already succeeded, so a broker hiccup never fails the request.
type SalesService struct {
	ledger    *ledger.Ledger
	publisher EventPublisher
}

// NewSalesService creates a service. A nil publisher disables events.
func NewSalesService(l *ledger.Ledger, publisher EventPublisher) *SalesService {
	return &SalesService{
		ledger:    l,
		publisher: publisher,
	}
}

// RecordSale validates and persists a new sale, then publishes a recorded
// event carrying its id.
func (s *SalesService) RecordSale(ctx context.Context, in ledger.AddSale) (core.Sale, error) {
	sale, err := s.ledger.Add(ctx, in)
	if err != nil {
		return core.Sale{}, fmt.Errorf("record sale: %w", err)
	}

	if err := s.publish(ctx, amqp.NewSaleRecorded(sale.ID)); err != nil {
		slog.ErrorContext(ctx, "Failed to publish sale recorded event",
			"sale_id", sale.ID, "error", err)
		// Sale is persisted locally; the worker's startup pass catches up.
	}

	return sale, nil
}

// DeleteSale removes a sale by id (no-op if absent) and publishes a deleted
// event carrying the removed fields.
func (s *SalesService) DeleteSale(ctx context.Context, id string) error {
	sale, found := s.ledger.Get(id)

	if err := s.ledger.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	if !found {
		return nil
	}

	event := amqp.NewSaleDeleted(sale.ID, sale.Value.Cents,
		string(sale.Source), sale.Date.String(), sale.Description)
	if err := s.publish(ctx, event); err != nil {
		slog.ErrorContext(ctx, "Failed to publish sale deleted event",
			"sale_id", id, "error", err)
	}

	return nil
}

func (s *SalesService) publish(ctx context.Context, event *amqp.SaleEvent) error {
	if s.publisher == nil {
		return nil
	}
	return s.publisher.PublishSaleEvent(ctx, event)
}

// Close releases the publisher connection, if any.
func (s *SalesService) Close() error {
	if s.publisher != nil {
		if err := s.publisher.Close(); err != nil {
			return fmt.Errorf("close publisher: %w", err)
		}
	}
	return nil
}
