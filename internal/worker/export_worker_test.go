package worker

import (
	"context"
	"testing"
	"time"

	"vendas/internal/amqp"
	"vendas/internal/core"
	"vendas/internal/ledger"
	"vendas/internal/sheets/memory"
	"vendas/internal/storage"
)

func fixedClock() time.Time {
	return time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
}

// newWorkerFixture gives the server and the worker their own Ledger over a
// shared store, mirroring the two-process setup.
func newWorkerFixture(t *testing.T) (*ledger.Ledger, *ExportWorker, *memory.Sheet) {
	t.Helper()
	store := storage.NewMemoryStore()

	server := ledger.New(store, ledger.WithClock(fixedClock))
	if err := server.Load(context.Background()); err != nil {
		t.Fatalf("load server ledger: %v", err)
	}

	workerLedger := ledger.New(store, ledger.WithClock(fixedClock))
	sheet := memory.New()
	w := NewExportWorker(workerLedger, sheet, sheet, sheet)
	return server, w, sheet
}

func mustRecord(t *testing.T, led *ledger.Ledger, cents int64, date core.Date) core.Sale {
	t.Helper()
	sale, err := led.Add(context.Background(), ledger.AddSale{
		Value:  core.Money{Cents: cents},
		Source: core.SourceCourse,
		Date:   date,
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	return sale
}

func TestHandleEventRecordedExportsSale(t *testing.T) {
	server, w, sheet := newWorkerFixture(t)
	sale := mustRecord(t, server, 15000, core.NewDate(2024, 3, 15))

	event := amqp.NewSaleRecorded(sale.ID)
	if err := w.HandleEvent(context.Background(), event); err != nil {
		t.Fatalf("handle: %v", err)
	}

	rows := sheet.Rows()
	if len(rows) != 1 {
		t.Fatalf("expected 1 exported row, got %d", len(rows))
	}
	if rows[0].ID != sale.ID || rows[0].Value.Cents != 15000 {
		t.Fatalf("exported row differs: %+v", rows[0])
	}
}

func TestHandleEventRecordedSkipsVanishedSale(t *testing.T) {
	server, w, sheet := newWorkerFixture(t)
	sale := mustRecord(t, server, 100, core.NewDate(2024, 3, 15))
	if err := server.Delete(context.Background(), sale.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	// Event consumed after the sale was already deleted from the ledger.
	if err := w.HandleEvent(context.Background(), amqp.NewSaleRecorded(sale.ID)); err != nil {
		t.Fatalf("handle: %v", err)
	}
	if got := len(sheet.Rows()); got != 0 {
		t.Fatalf("vanished sale exported %d rows", got)
	}
}

func TestHandleEventDeletedRemovesRow(t *testing.T) {
	server, w, sheet := newWorkerFixture(t)
	sale := mustRecord(t, server, 100, core.NewDate(2024, 3, 15))

	if err := w.HandleEvent(context.Background(), amqp.NewSaleRecorded(sale.ID)); err != nil {
		t.Fatalf("export: %v", err)
	}
	if err := w.HandleEvent(context.Background(), amqp.NewSaleDeleted(sale.ID, 100, "curso", "2024-03-15", "")); err != nil {
		t.Fatalf("delete event: %v", err)
	}

	if got := len(sheet.Rows()); got != 0 {
		t.Fatalf("expected empty sheet, got %d rows", got)
	}
}

func TestHandleEventUnknownTypeDropped(t *testing.T) {
	_, w, sheet := newWorkerFixture(t)

	event := &amqp.SaleEvent{Type: "sale.updated", ID: "x"}
	if err := w.HandleEvent(context.Background(), event); err != nil {
		t.Fatalf("unknown type must not error: %v", err)
	}
	if got := len(sheet.Rows()); got != 0 {
		t.Fatalf("unknown type exported %d rows", got)
	}
}

func TestReconcileExportsMissingOldestFirst(t *testing.T) {
	server, w, sheet := newWorkerFixture(t)

	a := mustRecord(t, server, 100, core.NewDate(2024, 3, 1))
	b := mustRecord(t, server, 200, core.NewDate(2024, 3, 2))
	c := mustRecord(t, server, 300, core.NewDate(2024, 3, 3))

	// b already made it to the sheet through an event.
	if err := w.HandleEvent(context.Background(), amqp.NewSaleRecorded(b.ID)); err != nil {
		t.Fatalf("export b: %v", err)
	}

	if err := w.Reconcile(context.Background()); err != nil {
		t.Fatalf("reconcile: %v", err)
	}

	rows := sheet.Rows()
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows after reconcile, got %d", len(rows))
	}
	// b first (exported earlier), then the missing two in recorded order.
	if rows[0].ID != b.ID || rows[1].ID != a.ID || rows[2].ID != c.ID {
		t.Fatalf("unexpected row order: %s %s %s", rows[0].ID, rows[1].ID, rows[2].ID)
	}
}

func TestReconcileIdempotent(t *testing.T) {
	server, w, sheet := newWorkerFixture(t)
	mustRecord(t, server, 100, core.NewDate(2024, 3, 1))

	for i := 0; i < 2; i++ {
		if err := w.Reconcile(context.Background()); err != nil {
			t.Fatalf("reconcile %d: %v", i, err)
		}
	}
	if got := len(sheet.Rows()); got != 1 {
		t.Fatalf("repeated reconcile duplicated rows: %d", got)
	}
}
