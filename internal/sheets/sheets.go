// Package sheets appends result rows to an externally hosted spreadsheet.
package sheets

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"

	"github.com/jmanning1991/reddit-stock-sentiment-bot/internal/config"
	boterrors "github.com/jmanning1991/reddit-stock-sentiment-bot/internal/errors"
	"github.com/jmanning1991/reddit-stock-sentiment-bot/internal/models"
)

// Log is an append-only result log backed by a Google Sheet. The Sheets
// API serializes concurrent appends, so one Log is safe to share across
// workers.
type Log struct {
	svc           *gsheets.Service
	spreadsheetID string
	sheetName     string
	logger        zerolog.Logger
}

// New authenticates a service account and opens the configured sheet.
// Credentials come either inline (GOOGLE_CREDS_JSON) or from a key file.
func New(ctx context.Context, cfg config.SheetsConfig, creds config.Credentials, logger zerolog.Logger) (*Log, error) {
	var keyJSON []byte
	if creds.GoogleCredsJSON != "" {
		keyJSON = []byte(creds.GoogleCredsJSON)
	} else {
		b, err := os.ReadFile(creds.GoogleCredsPath)
		if err != nil {
			return nil, fmt.Errorf("reading service account key %s: %w", creds.GoogleCredsPath, err)
		}
		keyJSON = b
	}

	jwt, err := google.JWTConfigFromJSON(keyJSON, gsheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("parsing service account key: %w", err)
	}

	svc, err := gsheets.NewService(ctx, option.WithHTTPClient(jwt.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("creating sheets service: %w", err)
	}

	return &Log{
		svc:           svc,
		spreadsheetID: cfg.SpreadsheetID,
		sheetName:     cfg.SheetName,
		logger:        logger,
	}, nil
}

// Append appends one row to the sheet. Ordering across concurrent workers
// follows append order, not event time.
func (l *Log) Append(ctx context.Context, row models.LogRow) error {
	vr := &gsheets.ValueRange{Values: [][]interface{}{row.Cells()}}

	_, err := l.svc.Spreadsheets.Values.
		Append(l.spreadsheetID, l.sheetName+"!A1", vr).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return boterrors.NewDeliveryError("sheets", err)
	}

	l.logger.Debug().Str("ticker", row.Ticker).Msg("Row appended to sheet")
	return nil
}

// EnsureHeader writes the fixed 9-column header when the sheet is empty.
// Called once at startup; also serves as a reachability check so an
// unreachable spreadsheet fails the process before any worker starts.
func (l *Log) EnsureHeader(ctx context.Context) error {
	rng := fmt.Sprintf("%s!A1:I1", l.sheetName)

	resp, err := l.svc.Spreadsheets.Values.Get(l.spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("reading sheet header: %w", err)
	}
	if len(resp.Values) > 0 {
		return nil
	}

	header := make([]interface{}, len(models.RowHeader))
	for i, h := range models.RowHeader {
		header[i] = h
	}
	_, err = l.svc.Spreadsheets.Values.
		Update(l.spreadsheetID, rng, &gsheets.ValueRange{Values: [][]interface{}{header}}).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("writing sheet header: %w", err)
	}

	l.logger.Info().Str("sheet", l.sheetName).Msg("Header row written")
	return nil
}
