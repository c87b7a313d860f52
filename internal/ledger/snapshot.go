package ledger

import (
	"encoding/json"
	"fmt"
	"time"

	"vendas/internal/core"
)

// saleRecord is the persisted shape of one sale. Field names follow the
// snapshot schema (id, value, source, description, date, createdAt); the
// value codec also reads bare JSON numbers so snapshots written by older
// clients keep loading.
type saleRecord struct {
	ID          string      `json:"id"`
	Value       core.Money  `json:"value"`
	Source      core.Source `json:"source"`
	Description string      `json:"description,omitempty"`
	Date        core.Date   `json:"date"`
	CreatedAt   time.Time   `json:"createdAt"`
}

func encodeSnapshot(sales []core.Sale) ([]byte, error) {
	records := make([]saleRecord, len(sales))
	for i, s := range sales {
		records[i] = saleRecord{
			ID:          s.ID,
			Value:       s.Value,
			Source:      s.Source,
			Description: s.Description,
			Date:        s.Date,
			CreatedAt:   s.CreatedAt,
		}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, nil
}

func decodeSnapshot(data []byte) ([]core.Sale, error) {
	var records []saleRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	sales := make([]core.Sale, len(records))
	for i, r := range records {
		sales[i] = core.Sale{
			ID:          r.ID,
			Value:       r.Value,
			Source:      r.Source,
			Description: r.Description,
			Date:        r.Date,
			CreatedAt:   r.CreatedAt,
		}
	}
	return sales, nil
}
