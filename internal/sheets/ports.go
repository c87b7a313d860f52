// Package sheets defines the outbound ports for mirroring sales to an
// external spreadsheet.
package sheets

import (
	"context"

	"vendas/internal/core"
)

type (
	// SaleAppender appends one sale as a spreadsheet row and returns a
	// row reference.
	SaleAppender interface {
		AppendSale(ctx context.Context, sale core.Sale) (rowRef string, err error)
	}

	// SaleDeleter removes the row for a previously appended sale id.
	SaleDeleter interface {
		DeleteSale(ctx context.Context, id string) error
	}

	// SaleIDLister returns the sale ids currently present in the sheet,
	// used by the worker's startup pass to find records never exported.
	SaleIDLister interface {
		ListSaleIDs(ctx context.Context) ([]string, error)
	}
)
