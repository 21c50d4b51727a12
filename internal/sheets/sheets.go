package sheets

import (
	"context"
	"errors"
	"fmt"
	"os"

	portssvc "github.com/campusfunds/event_funds_app/internal/core/ports/services"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"
)

// Exporter appends a cashbook's ledger to a Google spreadsheet. Treasurers
// keep their own sheet copies; the export is additive, never destructive.
type Exporter struct {
	svc           *gsheets.Service
	spreadsheetID string
	sheetName     string
	fundSvc       portssvc.FundSvcFacade
}

// Ensure interface conformance
var _ portssvc.LedgerExporterSvc = (*Exporter)(nil)

// NewExporter creates an Exporter from a service-account credentials file.
func NewExporter(ctx context.Context, credentialsFile, spreadsheetID, sheetName string, fundSvc portssvc.FundSvcFacade) (*Exporter, error) {
	if spreadsheetID == "" {
		return nil, errors.New("missing spreadsheet id")
	}

	credentialsJSON, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("read service account file: %w", err)
	}

	jwtConfig, err := google.JWTConfigFromJSON(credentialsJSON, gsheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("parse service account credentials: %w", err)
	}

	svc, err := gsheets.NewService(ctx, option.WithHTTPClient(jwtConfig.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	return &Exporter{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		sheetName:     sheetName,
		fundSvc:       fundSvc,
	}, nil
}

// ExportCashbook appends a header, the cashbook's transactions and a totals
// row to the configured sheet. Returns the number of rows written.
func (e *Exporter) ExportCashbook(ctx context.Context, cashbookID string) (int, error) {
	fd, err := e.fundSvc.GetFundData(ctx, cashbookID)
	if err != nil {
		return 0, fmt.Errorf("load fund data for export: %w", err)
	}

	rows := make([][]any, 0, len(fd.Transactions)+2)
	rows = append(rows, []any{"Cashbook", cashbookID, "", "", "", ""})
	for _, txn := range fd.Transactions {
		rows = append(rows, []any{
			txn.TransactionID,
			txn.Date.Format("2006-01-02"),
			txn.Description,
			string(txn.Type),
			txn.Amount.String(),
			txn.Category,
		})
	}
	rows = append(rows, []any{
		"Totals", "",
		fmt.Sprintf("raised %s", fd.FundsRaised.String()),
		fmt.Sprintf("spent %s", fd.Expenses.String()),
		fmt.Sprintf("balance %s", fd.RemainingBalance.String()),
		"",
	})

	rng := fmt.Sprintf("%s!A:F", e.sheetName)
	vr := &gsheets.ValueRange{Values: rows}
	_, err = e.svc.Spreadsheets.Values.Append(e.spreadsheetID, rng, vr).
		ValueInputOption("USER_ENTERED").Context(ctx).Do()
	if err != nil {
		return 0, fmt.Errorf("append ledger rows for %s: %w", cashbookID, err)
	}

	return len(rows), nil
}
