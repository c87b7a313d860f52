package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"vendas/internal/amqp"
	"vendas/internal/core"
	"vendas/internal/ledger"
	"vendas/internal/storage"
)

type fakePublisher struct {
	events     []*amqp.SaleEvent
	publishErr error
	closed     bool
}

func (f *fakePublisher) PublishSaleEvent(_ context.Context, event *amqp.SaleEvent) error {
	if f.publishErr != nil {
		return f.publishErr
	}
	f.events = append(f.events, event)
	return nil
}

func (f *fakePublisher) Close() error {
	f.closed = true
	return nil
}

func newTestService(t *testing.T, pub EventPublisher) *SalesService {
	t.Helper()
	led := ledger.New(storage.NewMemoryStore(), ledger.WithClock(func() time.Time {
		return time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	}))
	if err := led.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	return NewSalesService(led, pub)
}

func TestRecordSalePublishesEvent(t *testing.T) {
	pub := &fakePublisher{}
	svc := newTestService(t, pub)

	sale, err := svc.RecordSale(context.Background(), ledger.AddSale{
		Value:  core.Money{Cents: 15000},
		Source: core.SourceCourse,
	})
	if err != nil {
		t.Fatalf("record: %v", err)
	}

	if len(pub.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(pub.events))
	}
	ev := pub.events[0]
	if ev.Type != amqp.EventSaleRecorded || ev.ID != sale.ID {
		t.Fatalf("unexpected event: %+v", ev)
	}
}

func TestRecordSaleSurvivesPublishFailure(t *testing.T) {
	pub := &fakePublisher{publishErr: errors.New("broker down")}
	svc := newTestService(t, pub)

	sale, err := svc.RecordSale(context.Background(), ledger.AddSale{
		Value:  core.Money{Cents: 100},
		Source: core.SourceOther,
	})
	if err != nil {
		t.Fatalf("publish failure must not fail the request: %v", err)
	}
	if sale.ID == "" {
		t.Fatal("sale not recorded")
	}
}

func TestRecordSaleRejectsInvalidInput(t *testing.T) {
	pub := &fakePublisher{}
	svc := newTestService(t, pub)

	_, err := svc.RecordSale(context.Background(), ledger.AddSale{
		Value:  core.Money{Cents: 0},
		Source: core.SourceCourse,
	})
	if !errors.Is(err, core.ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
	if len(pub.events) != 0 {
		t.Fatal("rejected sale must not publish")
	}
}

func TestDeleteSalePublishesSnapshotFields(t *testing.T) {
	pub := &fakePublisher{}
	svc := newTestService(t, pub)

	sale, err := svc.RecordSale(context.Background(), ledger.AddSale{
		Value:       core.Money{Cents: 2500},
		Source:      core.SourceEbook,
		Description: "guia",
		Date:        core.NewDate(2024, 3, 10),
	})
	if err != nil {
		t.Fatalf("record: %v", err)
	}

	if err := svc.DeleteSale(context.Background(), sale.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if len(pub.events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(pub.events))
	}
	ev := pub.events[1]
	if ev.Type != amqp.EventSaleDeleted || ev.ID != sale.ID {
		t.Fatalf("unexpected event: %+v", ev)
	}
	if ev.ValueCents != 2500 || ev.Source != "ebook" || ev.Date != "2024-03-10" || ev.Description != "guia" {
		t.Fatalf("deleted event missing fields: %+v", ev)
	}
}

func TestDeleteSaleAbsentIDDoesNotPublish(t *testing.T) {
	pub := &fakePublisher{}
	svc := newTestService(t, pub)

	if err := svc.DeleteSale(context.Background(), "missing"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(pub.events) != 0 {
		t.Fatal("absent id must not publish")
	}
}

func TestCloseWithNilPublisher(t *testing.T) {
	svc := newTestService(t, nil)
	if err := svc.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestClosePropagatesToPublisher(t *testing.T) {
	pub := &fakePublisher{}
	svc := newTestService(t, pub)
	if err := svc.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if !pub.closed {
		t.Fatal("publisher not closed")
	}
}
