// Package monitor implements the per-source filter-and-dispatch pipeline.
package monitor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	boterrors "github.com/jmanning1991/reddit-stock-sentiment-bot/internal/errors"
	"github.com/jmanning1991/reddit-stock-sentiment-bot/internal/logging"
	"github.com/jmanning1991/reddit-stock-sentiment-bot/internal/market"
	"github.com/jmanning1991/reddit-stock-sentiment-bot/internal/models"
	"github.com/jmanning1991/reddit-stock-sentiment-bot/internal/notify"
	"github.com/jmanning1991/reddit-stock-sentiment-bot/internal/sentiment"
	"github.com/jmanning1991/reddit-stock-sentiment-bot/pkg/utils"
)

// ResultLog appends one qualifying event. Implementations must be safe
// for concurrent use by workers.
type ResultLog interface {
	Append(ctx context.Context, row models.LogRow) error
}

// MultiLog fans one row out to several sinks. Each sink failure is
// collected independently so one broken sink never blocks another.
type MultiLog struct {
	sinks []ResultLog
}

// NewMultiLog creates a MultiLog over the given sinks.
func NewMultiLog(sinks ...ResultLog) *MultiLog {
	return &MultiLog{sinks: sinks}
}

// Append appends the row to every sink.
func (ml *MultiLog) Append(ctx context.Context, row models.LogRow) error {
	var errs []string
	for _, sink := range ml.sinks {
		if err := sink.Append(ctx, row); err != nil {
			errs = append(errs, err.Error())
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("result log errors: %s", strings.Join(errs, "; "))
	}
	return nil
}

// Monitor consumes one source's submission stream. It has two states:
// listening (blocked on the next post) and processing (handling one
// matched post); processing always returns to listening, whatever
// happened, and only a stream-level failure terminates the monitor.
type Monitor struct {
	source     string
	watchlist  models.Watchlist
	market     market.Provider
	classifier sentiment.Classifier
	log        ResultLog
	notifier   notify.Notifier
	logger     zerolog.Logger
	now        func() time.Time
}

// New creates a Monitor for one source.
func New(
	source string,
	watchlist models.Watchlist,
	provider market.Provider,
	classifier sentiment.Classifier,
	log ResultLog,
	notifier notify.Notifier,
	logger zerolog.Logger,
) *Monitor {
	return &Monitor{
		source:     source,
		watchlist:  watchlist,
		market:     provider,
		classifier: classifier,
		log:        log,
		notifier:   notifier,
		logger:     logger,
		now:        time.Now,
	}
}

// Run blocks on the stream until it ends, fails, or ctx is cancelled.
// A stream error is fatal to this monitor only.
func (m *Monitor) Run(ctx context.Context, posts <-chan models.Post, errs <-chan error) error {
	m.logger.Info().Msg("Monitor listening")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-errs:
			return boterrors.NewStreamError(m.source, err)
		case post, ok := <-posts:
			if !ok {
				return boterrors.NewStreamError(m.source, boterrors.ErrStreamClosed)
			}
			m.Process(ctx, post)
		}
	}
}

// Process handles one post end to end. Nothing raised here propagates:
// market data failures degrade to absent values, classification failures
// degrade to Unknown (which suppresses the event), and delivery failures
// are logged and dropped.
func (m *Monitor) Process(ctx context.Context, post models.Post) {
	ticker, ok := m.watchlist.Match(post.Title)
	if !ok {
		return
	}
	logging.LogMatch(m.logger, ticker, post.Title, post.Source)

	snap, err := m.market.Snapshot(ctx, ticker)
	if err != nil {
		m.logger.Warn().Err(err).Msg("Market data unavailable; continuing with absent values")
	}
	if snap.Company == "" {
		snap.Company = ticker
	}

	label := m.classifier.Classify(ctx, post.Title, post.Body)
	logging.LogSentiment(m.logger, ticker, label)

	if !label.Actionable() {
		return
	}

	row := models.LogRow{
		Timestamp:     m.now().Format(models.RowTimeFormat),
		Ticker:        ticker,
		Company:       snap.Company,
		Title:         post.Title,
		Sentiment:     label,
		PreviousClose: snap.PreviousClose,
		CurrentPrice:  snap.CurrentPrice,
		PercentChange: snap.PercentChange,
		URL:           post.URL,
	}
	if err := m.log.Append(ctx, row); err != nil {
		m.logger.Error().Err(err).Msg("Result log append failed")
	}

	subject, body := ComposeAlert(post, ticker, label, snap)
	if err := m.notifier.Send(ctx, subject, body); err != nil {
		m.logger.Error().Err(err).Msg("Alert email failed")
	} else {
		logging.LogAlert(m.logger, ticker, subject, len(m.notifier.Recipients()))
	}
}

// ComposeAlert builds the alert email for a qualifying event. Prices
// format with two decimals; absent values render as n/a so a missing
// quote can never break message assembly.
func ComposeAlert(post models.Post, ticker string, label models.SentimentLabel, snap models.MarketSnapshot) (subject, body string) {
	subject = fmt.Sprintf("[%s] %s mentioned in %s", label, ticker, post.Source)
	body = fmt.Sprintf(
		"Title: %s\nTicker: %s\nSentiment: %s\nPrice: %s (Prev Close: %s, Δ: %s)\n\nLink: %s",
		post.Title,
		ticker,
		label,
		utils.FormatPrice(snap.CurrentPrice),
		utils.FormatPrice(snap.PreviousClose),
		utils.FormatPercent(snap.PercentChange),
		post.URL,
	)
	return subject, body
}
