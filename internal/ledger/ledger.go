// Package ledger implements the sales ledger: the authoritative sequence of
// sale records with durable snapshot persistence and the time-windowed
// aggregate queries the dashboard renders.
package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"vendas/internal/core"
	"vendas/internal/storage"
)

// SnapshotKey is the single store key holding the full ledger snapshot.
// It matches the original dashboard's storage key.
const SnapshotKey = "dashboard-sales"

// Ledger owns the in-memory sequence of sales (newest first) and keeps the
// persisted snapshot in lockstep with it: every successful mutation writes
// the complete sequence, and a failed write rolls the mutation back.
type Ledger struct {
	mu    sync.Mutex
	store storage.Store
	key   string
	sales []core.Sale
	now   func() time.Time
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithClock overrides the time source used for createdAt stamps, default
// dates and all "current day/month" query windows. Tests pin it to a fixed
// instant to make aggregations deterministic.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

// WithKey overrides the snapshot store key.
func WithKey(key string) Option {
	return func(l *Ledger) { l.key = key }
}

func New(store storage.Store, opts ...Option) *Ledger {
	l := &Ledger{
		store: store,
		key:   SnapshotKey,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load restores the sequence from the persisted snapshot. A missing snapshot
// starts an empty ledger; a corrupt one is logged and treated as empty
// rather than taking the dashboard down. Only store read errors propagate.
func (l *Ledger) Load(ctx context.Context) error {
	payload, ok, err := l.store.Read(ctx, l.key)
	if err != nil {
		return fmt.Errorf("load ledger: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if !ok {
		l.sales = nil
		return nil
	}

	sales, err := decodeSnapshot(payload)
	if err != nil {
		slog.WarnContext(ctx, "Snapshot unreadable, starting with empty ledger",
			"key", l.key, "error", err)
		l.sales = nil
		return nil
	}

	l.sales = sales
	slog.InfoContext(ctx, "Ledger loaded", "key", l.key, "sales", len(sales))
	return nil
}

// AddSale carries the caller-supplied fields of a new sale. Date may be the
// zero value, in which case the sale is dated on the current calendar day.
type AddSale struct {
	Value       core.Money
	Source      core.Source
	Description string
	Date        core.Date
}

// Add validates the input, stamps id and createdAt, prepends the sale and
// persists the full sequence. On a persistence failure the in-memory
// sequence is rolled back so memory and disk never diverge.
func (l *Ledger) Add(ctx context.Context, in AddSale) (core.Sale, error) {
	if err := in.Value.Validate(); err != nil {
		return core.Sale{}, err
	}
	if err := in.Source.Validate(); err != nil {
		return core.Sale{}, err
	}

	now := l.now()
	date := in.Date
	if date.IsZero() {
		date = core.DateOf(now)
	}

	sale := core.Sale{
		ID:          uuid.NewString(),
		Value:       in.Value,
		Source:      in.Source,
		Description: in.Description,
		Date:        date,
		CreatedAt:   now,
	}
	if err := sale.Validate(); err != nil {
		return core.Sale{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	prev := l.sales
	l.sales = append([]core.Sale{sale}, l.sales...)
	if err := l.persistLocked(ctx); err != nil {
		l.sales = prev
		return core.Sale{}, err
	}

	slog.InfoContext(ctx, "Sale recorded",
		"sale_id", sale.ID,
		"value_cents", sale.Value.Cents,
		"source", string(sale.Source),
		"date", sale.Date.String())
	return sale, nil
}

// Delete removes the sale with the given id and persists the resulting
// sequence. An absent id is a no-op, not an error, and writes nothing.
func (l *Ledger) Delete(ctx context.Context, id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := -1
	for i, s := range l.sales {
		if s.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	prev := l.sales
	next := make([]core.Sale, 0, len(prev)-1)
	next = append(next, prev[:idx]...)
	next = append(next, prev[idx+1:]...)
	l.sales = next

	if err := l.persistLocked(ctx); err != nil {
		l.sales = prev
		return err
	}

	slog.InfoContext(ctx, "Sale deleted", "sale_id", id)
	return nil
}

// Get returns the sale with the given id, if present.
func (l *Ledger) Get(id string) (core.Sale, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, s := range l.sales {
		if s.ID == id {
			return s, true
		}
	}
	return core.Sale{}, false
}

// Sales returns a copy of the full sequence, newest first.
func (l *Ledger) Sales() []core.Sale {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]core.Sale(nil), l.sales...)
}

// DailyTotal sums all sales dated on the current calendar day.
func (l *Ledger) DailyTotal() core.Money {
	l.mu.Lock()
	defer l.mu.Unlock()

	today := core.DateOf(l.now())
	var cents int64
	for _, s := range l.sales {
		if s.Date.SameDay(today) {
			cents += s.Value.Cents
		}
	}
	return core.Money{Cents: cents}
}

// MonthlyTotal sums all sales dated within the current calendar month.
func (l *Ledger) MonthlyTotal() core.Money {
	l.mu.Lock()
	defer l.mu.Unlock()

	today := core.DateOf(l.now())
	var cents int64
	for _, s := range l.sales {
		if s.Date.SameMonth(today) {
			cents += s.Value.Cents
		}
	}
	return core.Money{Cents: cents}
}

// PeriodTotal sums all sales dated on or after the period start: the first
// day of the month monthsBack-1 months before the current one. monthsBack=1
// means the current month only. The window has no upper bound, so
// future-dated sales count too.
func (l *Ledger) PeriodTotal(monthsBack int) core.Money {
	l.mu.Lock()
	defer l.mu.Unlock()

	start := l.periodStart(monthsBack)
	var cents int64
	for _, s := range l.sales {
		if !s.Date.Before(start.Time) {
			cents += s.Value.Cents
		}
	}
	return core.Money{Cents: cents}
}

// SalesInPeriod returns the sales matching the PeriodTotal predicate, in
// sequence order.
func (l *Ledger) SalesInPeriod(monthsBack int) []core.Sale {
	l.mu.Lock()
	defer l.mu.Unlock()

	start := l.periodStart(monthsBack)
	var out []core.Sale
	for _, s := range l.sales {
		if !s.Date.Before(start.Time) {
			out = append(out, s)
		}
	}
	return out
}

// MonthlyBuckets returns exactly monthsCount buckets, one per calendar month
// ending at the current month, ordered oldest first. Months with no sales
// report a zero total.
func (l *Ledger) MonthlyBuckets(monthsCount int) []core.MonthBucket {
	l.mu.Lock()
	defer l.mu.Unlock()

	if monthsCount < 1 {
		monthsCount = 1
	}

	now := l.now()
	buckets := make([]core.MonthBucket, monthsCount)
	index := make(map[int]int, monthsCount)
	for i := 0; i < monthsCount; i++ {
		// i months before the current one, oldest first
		m := time.Date(now.Year(), now.Month()-time.Month(monthsCount-1-i), 1, 0, 0, 0, 0, time.UTC)
		buckets[i] = core.MonthBucket{Year: m.Year(), Month: int(m.Month())}
		index[m.Year()*12+int(m.Month())] = i
	}

	for _, s := range l.sales {
		if i, ok := index[s.Date.Year()*12+int(s.Date.Month())]; ok {
			buckets[i].Total.Cents += s.Value.Cents
		}
	}
	return buckets
}

// periodStart computes the inclusive lower bound of a monthsBack window:
// the first day of the month monthsBack-1 months before the current one.
func (l *Ledger) periodStart(monthsBack int) core.Date {
	if monthsBack < 1 {
		monthsBack = 1
	}
	now := l.now()
	start := time.Date(now.Year(), now.Month()-time.Month(monthsBack-1), 1, 0, 0, 0, 0, time.UTC)
	return core.Date{Time: start}
}

func (l *Ledger) persistLocked(ctx context.Context) error {
	payload, err := encodeSnapshot(l.sales)
	if err != nil {
		return err
	}
	if err := l.store.Write(ctx, l.key, payload); err != nil {
		return fmt.Errorf("persist snapshot: %w", err)
	}
	return nil
}
