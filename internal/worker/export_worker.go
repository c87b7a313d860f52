// Package worker exports recorded sales to the configured spreadsheet,
// driven by sale events from the queue plus a periodic reconcile pass.
package worker

import (
	"context"
	"fmt"
	"log/slog"

	"vendas/internal/amqp"
	"vendas/internal/ledger"
	"vendas/internal/sheets"
)

// ExportWorker mirrors the ledger onto a sheet. It reads the same snapshot
// store the server writes, so every event handling starts with a fresh
// ledger load.
type ExportWorker struct {
	ledger   *ledger.Ledger
	appender sheets.SaleAppender
	deleter  sheets.SaleDeleter
	lister   sheets.SaleIDLister
}

func NewExportWorker(l *ledger.Ledger, appender sheets.SaleAppender, deleter sheets.SaleDeleter, lister sheets.SaleIDLister) *ExportWorker {
	return &ExportWorker{
		ledger:   l,
		appender: appender,
		deleter:  deleter,
		lister:   lister,
	}
}

// HandleEvent processes one sale event from the queue.
func (w *ExportWorker) HandleEvent(ctx context.Context, event *amqp.SaleEvent) error {
	switch event.Type {
	case amqp.EventSaleRecorded:
		return w.handleRecorded(ctx, event.ID)
	case amqp.EventSaleDeleted:
		return w.handleDeleted(ctx, event.ID)
	default:
		slog.WarnContext(ctx, "Unknown sale event type, dropping",
			"type", event.Type, "sale_id", event.ID)
		return nil
	}
}

func (w *ExportWorker) handleRecorded(ctx context.Context, id string) error {
	if err := w.ledger.Load(ctx); err != nil {
		return fmt.Errorf("reload ledger: %w", err)
	}

	sale, found := w.ledger.Get(id)
	if !found {
		// Deleted between publish and consume; nothing to export.
		slog.WarnContext(ctx, "Sale no longer in ledger, skipping export", "sale_id", id)
		return nil
	}

	ref, err := w.appender.AppendSale(ctx, sale)
	if err != nil {
		return fmt.Errorf("append sale to sheet: %w", err)
	}

	slog.InfoContext(ctx, "Sale exported",
		"sale_id", id, "row_ref", ref, "value_cents", sale.Value.Cents)
	return nil
}

func (w *ExportWorker) handleDeleted(ctx context.Context, id string) error {
	if w.deleter == nil {
		slog.WarnContext(ctx, "No sheet deleter configured, skipping", "sale_id", id)
		return nil
	}
	if err := w.deleter.DeleteSale(ctx, id); err != nil {
		return fmt.Errorf("delete sale from sheet: %w", err)
	}
	return nil
}

// Reconcile appends every ledger sale missing from the sheet, oldest first.
// It runs at startup and on a timer, catching records whose events were
// lost while the worker or broker was down.
func (w *ExportWorker) Reconcile(ctx context.Context) error {
	if err := w.ledger.Load(ctx); err != nil {
		return fmt.Errorf("reload ledger: %w", err)
	}

	exported, err := w.lister.ListSaleIDs(ctx)
	if err != nil {
		return fmt.Errorf("list exported sale ids: %w", err)
	}
	have := make(map[string]struct{}, len(exported))
	for _, id := range exported {
		have[id] = struct{}{}
	}

	sales := w.ledger.Sales()
	missing := 0
	// Sequence is newest first; walk backwards to append in recorded order.
	for i := len(sales) - 1; i >= 0; i-- {
		sale := sales[i]
		if _, ok := have[sale.ID]; ok {
			continue
		}
		if _, err := w.appender.AppendSale(ctx, sale); err != nil {
			return fmt.Errorf("append missing sale %s: %w", sale.ID, err)
		}
		missing++
	}

	if missing > 0 {
		slog.InfoContext(ctx, "Reconcile exported missing sales", "count", missing)
	}
	return nil
}
