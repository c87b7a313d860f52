// Package google implements the sheets ports against the Google Sheets API
// using service-account credentials.
package google

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"

	"vendas/internal/core"
	ports "vendas/internal/sheets"
)

// Client mirrors sales onto one sheet of a spreadsheet. Row layout:
// id | date | value | source | description | createdAt.
type Client struct {
	svc           *gsheet.Service
	spreadsheetID string
	sheetName     string
}

var (
	_ ports.SaleAppender = (*Client)(nil)
	_ ports.SaleDeleter  = (*Client)(nil)
	_ ports.SaleIDLister = (*Client)(nil)
)

// NewFromEnv creates a Sheets client from environment variables.
// Required: GOOGLE_SPREADSHEET_ID.
// Credentials: GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE or
// GOOGLE_APPLICATION_CREDENTIALS.
// Optional: GOOGLE_SHEET_NAME (default "Vendas").
func NewFromEnv(ctx context.Context) (*Client, error) {
	spreadsheetID := strings.TrimSpace(os.Getenv("GOOGLE_SPREADSHEET_ID"))
	if spreadsheetID == "" {
		return nil, errors.New("missing GOOGLE_SPREADSHEET_ID")
	}

	sheetName := strings.TrimSpace(os.Getenv("GOOGLE_SHEET_NAME"))
	if sheetName == "" {
		sheetName = "Vendas"
	}

	svc, err := newSheetsService(ctx)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}

	return &Client{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		sheetName:     sheetName,
	}, nil
}

// newSheetsService initializes a Sheets Service using Service Account
// credentials from the environment.
func newSheetsService(ctx context.Context) (*gsheet.Service, error) {
	serviceAccountJSON := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON"))
	serviceAccountFile := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_FILE"))
	if serviceAccountJSON == "" && serviceAccountFile == "" {
		serviceAccountFile = strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))
	}

	var credentialsJSON []byte
	var err error
	switch {
	case serviceAccountJSON != "":
		credentialsJSON = []byte(serviceAccountJSON)
	case serviceAccountFile != "":
		credentialsJSON, err = os.ReadFile(serviceAccountFile)
		if err != nil {
			return nil, fmt.Errorf("read service account file: %w", err)
		}
	default:
		return nil, errors.New("missing service account credentials (set GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE, or GOOGLE_APPLICATION_CREDENTIALS)")
	}

	service, err := gsheet.NewService(ctx,
		goption.WithCredentialsJSON(credentialsJSON),
		goption.WithScopes(gsheet.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return service, nil
}

// AppendSale appends one row for the sale and returns the updated range as
// the row reference.
func (c *Client) AppendSale(ctx context.Context, sale core.Sale) (string, error) {
	if err := sale.Validate(); err != nil {
		return "", fmt.Errorf("validation failed: %w", err)
	}

	row := []interface{}{
		sale.ID,
		sale.Date.String(),
		sale.Value.String(),
		sale.Source.Label(),
		sale.Description,
		sale.CreatedAt.Format("2006-01-02 15:04:05"),
	}

	resp, err := c.svc.Spreadsheets.Values.
		Append(c.spreadsheetID, c.sheetName+"!A:F", &gsheet.ValueRange{
			Values: [][]interface{}{row},
		}).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("append row: %w", err)
	}

	ref := ""
	if resp.Updates != nil {
		ref = resp.Updates.UpdatedRange
	}
	slog.InfoContext(ctx, "Sale appended to sheet",
		"sale_id", sale.ID, "sheet", c.sheetName, "range", ref)
	return ref, nil
}

// ListSaleIDs reads the id column (skipping the header row).
func (c *Client) ListSaleIDs(ctx context.Context) ([]string, error) {
	resp, err := c.svc.Spreadsheets.Values.
		Get(c.spreadsheetID, c.sheetName+"!A2:A").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("read id column: %w", err)
	}

	ids := make([]string, 0, len(resp.Values))
	for _, row := range resp.Values {
		if len(row) == 0 {
			continue
		}
		if id, ok := row[0].(string); ok && id != "" {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// DeleteSale removes the first row whose id column matches. A missing id is
// a no-op, matching the ledger's delete semantics.
func (c *Client) DeleteSale(ctx context.Context, id string) error {
	ids, err := c.ListSaleIDs(ctx)
	if err != nil {
		return fmt.Errorf("locate row: %w", err)
	}

	rowIdx := -1
	for i, have := range ids {
		if have == id {
			rowIdx = i + 1 // +1 for the header row
			break
		}
	}
	if rowIdx < 0 {
		slog.WarnContext(ctx, "Sale not found in sheet, nothing to delete",
			"sale_id", id, "sheet", c.sheetName)
		return nil
	}

	sheetID, err := c.numericSheetID(ctx)
	if err != nil {
		return err
	}

	_, err = c.svc.Spreadsheets.BatchUpdate(c.spreadsheetID, &gsheet.BatchUpdateSpreadsheetRequest{
		Requests: []*gsheet.Request{{
			DeleteDimension: &gsheet.DeleteDimensionRequest{
				Range: &gsheet.DimensionRange{
					SheetId:    sheetID,
					Dimension:  "ROWS",
					StartIndex: int64(rowIdx),
					EndIndex:   int64(rowIdx + 1),
				},
			},
		}},
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("delete row: %w", err)
	}

	slog.InfoContext(ctx, "Sale row deleted from sheet",
		"sale_id", id, "sheet", c.sheetName, "row", rowIdx)
	return nil
}

// numericSheetID resolves the sheet title to the numeric id the batch
// update API requires.
func (c *Client) numericSheetID(ctx context.Context) (int64, error) {
	meta, err := c.svc.Spreadsheets.Get(c.spreadsheetID).
		Fields("sheets.properties").
		Context(ctx).
		Do()
	if err != nil {
		return 0, fmt.Errorf("read spreadsheet metadata: %w", err)
	}
	for _, sh := range meta.Sheets {
		if sh.Properties != nil && sh.Properties.Title == c.sheetName {
			return sh.Properties.SheetId, nil
		}
	}
	return 0, fmt.Errorf("sheet %q not found in spreadsheet", c.sheetName)
}
