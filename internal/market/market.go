// Package market provides live market data lookups for watched tickers.
package market

import (
	"context"
	"time"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"github.com/piquette/finance-go/equity"
	"github.com/rs/zerolog"

	boterrors "github.com/jmanning1991/reddit-stock-sentiment-bot/internal/errors"
	"github.com/jmanning1991/reddit-stock-sentiment-bot/internal/models"
)

// Provider returns a fresh market snapshot for a ticker. Snapshots are
// computed per matched post and never cached.
type Provider interface {
	Snapshot(ctx context.Context, ticker string) (models.MarketSnapshot, error)
}

// YahooProvider implements Provider against Yahoo Finance.
type YahooProvider struct {
	logger zerolog.Logger
	// historyWindow is how far back to request daily bars when deriving
	// the previous session's close.
	historyWindow time.Duration
}

// NewYahooProvider creates a new Yahoo Finance provider.
func NewYahooProvider(logger zerolog.Logger) *YahooProvider {
	return &YahooProvider{
		logger:        logger,
		historyWindow: 7 * 24 * time.Hour,
	}
}

// Snapshot fetches the live quote and recent daily closes for ticker.
// The previous close requires at least two sessions of history; with less,
// the field is absent rather than an error. A failed quote or history
// fetch is returned to the caller together with a symbol-only snapshot so
// the pipeline can continue with absent values.
func (p *YahooProvider) Snapshot(ctx context.Context, ticker string) (models.MarketSnapshot, error) {
	q, err := equity.Get(ticker)
	if err != nil {
		return models.MarketSnapshot{Company: ticker}, boterrors.NewDataError(ticker, "quote fetch failed", err)
	}
	if q == nil {
		return models.MarketSnapshot{Company: ticker}, boterrors.NewDataError(ticker, "quote fetch failed", boterrors.ErrNoQuote)
	}

	closes, err := p.recentCloses(ticker)
	if err != nil {
		return models.MarketSnapshot{Company: companyName(ticker, q.LongName, q.ShortName)},
			boterrors.NewDataError(ticker, "history fetch failed", err)
	}

	return BuildSnapshot(ticker, q.LongName, q.ShortName, q.RegularMarketPrice, closes), nil
}

// recentCloses returns the daily closing prices within the history window,
// oldest first.
func (p *YahooProvider) recentCloses(ticker string) ([]float64, error) {
	end := time.Now()
	start := end.Add(-p.historyWindow)

	iter := chart.Get(&chart.Params{
		Symbol:   ticker,
		Start:    datetime.New(&start),
		End:      datetime.New(&end),
		Interval: datetime.OneDay,
	})

	var closes []float64
	for iter.Next() {
		c, _ := iter.Bar().Close.Float64()
		closes = append(closes, c)
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return closes, nil
}

// BuildSnapshot assembles a MarketSnapshot from raw quote data. A live
// price of zero counts as absent; the previous close is the second most
// recent daily close, present only when two or more sessions exist.
func BuildSnapshot(ticker, longName, shortName string, livePrice float64, closes []float64) models.MarketSnapshot {
	snap := models.MarketSnapshot{Company: companyName(ticker, longName, shortName)}

	if livePrice > 0 {
		snap.CurrentPrice = models.Float64Ptr(livePrice)
	}
	if len(closes) >= 2 {
		snap.PreviousClose = models.Float64Ptr(closes[len(closes)-2])
	}
	snap.PercentChange = models.ComputePercentChange(snap.PreviousClose, snap.CurrentPrice)
	return snap
}

func companyName(ticker, longName, shortName string) string {
	if longName != "" {
		return longName
	}
	if shortName != "" {
		return shortName
	}
	return ticker
}
