// Package memory provides an in-memory sheet used by tests and by runs
// without Google credentials.
package memory

import (
	"context"
	"fmt"
	"sync"

	"vendas/internal/core"
)

type Sheet struct {
	mu   sync.Mutex
	rows []core.Sale
}

func New() *Sheet {
	return &Sheet{}
}

// AppendSale stores the sale and returns a synthetic row reference.
func (s *Sheet) AppendSale(_ context.Context, sale core.Sale) (string, error) {
	if err := sale.Validate(); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = append(s.rows, sale)
	return fmt.Sprintf("mem:%d", len(s.rows)), nil
}

// DeleteSale removes the row with the given id; absent ids are a no-op.
func (s *Sheet) DeleteSale(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.rows {
		if r.ID == id {
			s.rows = append(s.rows[:i], s.rows[i+1:]...)
			return nil
		}
	}
	return nil
}

// ListSaleIDs returns the ids of all stored rows.
func (s *Sheet) ListSaleIDs(_ context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, len(s.rows))
	for i, r := range s.rows {
		ids[i] = r.ID
	}
	return ids, nil
}

// Rows returns a copy of the stored rows, oldest first.
func (s *Sheet) Rows() []core.Sale {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Sale(nil), s.rows...)
}
