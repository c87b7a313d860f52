package memory

import (
	"context"
	"testing"
	"time"

	"vendas/internal/core"
)

func sampleSale(id string) core.Sale {
	return core.Sale{
		ID:        id,
		Value:     core.Money{Cents: 100},
		Source:    core.SourceCourse,
		Date:      core.NewDate(2024, 3, 15),
		CreatedAt: time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC),
	}
}

func TestSheetAppendListDelete(t *testing.T) {
	sheet := New()
	ctx := context.Background()

	ref, err := sheet.AppendSale(ctx, sampleSale("a"))
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if ref != "mem:1" {
		t.Fatalf("ref = %q, want mem:1", ref)
	}
	if _, err := sheet.AppendSale(ctx, sampleSale("b")); err != nil {
		t.Fatalf("append: %v", err)
	}

	ids, err := sheet.ListSaleIDs(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(ids) != 2 || ids[0] != "a" || ids[1] != "b" {
		t.Fatalf("unexpected ids: %v", ids)
	}

	if err := sheet.DeleteSale(ctx, "a"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := sheet.DeleteSale(ctx, "missing"); err != nil {
		t.Fatalf("absent delete: %v", err)
	}

	rows := sheet.Rows()
	if len(rows) != 1 || rows[0].ID != "b" {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}

func TestSheetRejectsInvalidSale(t *testing.T) {
	sheet := New()
	bad := sampleSale("x")
	bad.Value.Cents = 0
	if _, err := sheet.AppendSale(context.Background(), bad); err == nil {
		t.Fatal("expected validation error")
	}
}
