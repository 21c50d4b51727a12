package services

import "context"

// LedgerExporterSvc exports a cashbook's ledger to an external spreadsheet.
type LedgerExporterSvc interface {
	// ExportCashbook appends the cashbook's transactions and totals to the
	// configured spreadsheet and returns the number of rows written.
	ExportCashbook(ctx context.Context, cashbookID string) (int, error)
}
