package monitor

import (
	"context"
	"errors"
	"runtime/debug"
	"sync"

	"github.com/rs/zerolog"

	"github.com/jmanning1991/reddit-stock-sentiment-bot/internal/logging"
	"github.com/jmanning1991/reddit-stock-sentiment-bot/internal/market"
	"github.com/jmanning1991/reddit-stock-sentiment-bot/internal/models"
	"github.com/jmanning1991/reddit-stock-sentiment-bot/internal/notify"
	"github.com/jmanning1991/reddit-stock-sentiment-bot/internal/sentiment"
)

// Source opens a live submission stream for one named source.
type Source interface {
	Subscribe(ctx context.Context, name string) (<-chan models.Post, <-chan error)
}

// Orchestrator owns worker lifetime: one goroutine per configured source,
// joined before Run returns. Workers share the result log and notifier,
// both safe for concurrent use; there is no other shared state and no
// coordination between workers.
type Orchestrator struct {
	sources    []string
	stream     Source
	watchlist  models.Watchlist
	market     market.Provider
	classifier sentiment.Classifier
	log        ResultLog
	notifier   notify.Notifier
	logger     zerolog.Logger
}

// NewOrchestrator wires the pipeline dependencies for all workers.
func NewOrchestrator(
	sources []string,
	stream Source,
	watchlist models.Watchlist,
	provider market.Provider,
	classifier sentiment.Classifier,
	log ResultLog,
	notifier notify.Notifier,
	logger zerolog.Logger,
) *Orchestrator {
	return &Orchestrator{
		sources:    sources,
		stream:     stream,
		watchlist:  watchlist,
		market:     provider,
		classifier: classifier,
		log:        log,
		notifier:   notifier,
		logger:     logger,
	}
}

// Run starts one worker per source and blocks until all of them exit.
func (o *Orchestrator) Run(ctx context.Context) {
	o.logger.Info().Int("sources", len(o.sources)).Msg("Starting bot")

	var wg sync.WaitGroup
	for _, src := range o.sources {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			o.runWorker(ctx, name)
		}(src)
	}
	wg.Wait()

	o.logger.Info().Msg("All workers exited")
}

// runWorker runs one source monitor to completion. Failures here,
// including panics, are fatal to this worker only; the remaining workers
// keep running.
func (o *Orchestrator) runWorker(ctx context.Context, name string) {
	source := "r/" + name
	logger := logging.WithSource(o.logger, source)

	defer func() {
		if r := recover(); r != nil {
			logger.Error().
				Interface("panic", r).
				Bytes("stack", debug.Stack()).
				Msg("Worker panicked; monitor stopped")
		}
	}()

	posts, errs := o.stream.Subscribe(ctx, name)
	mon := New(source, o.watchlist, o.market, o.classifier, o.log, o.notifier, logger)

	logger.Info().Msg("Worker started")
	if err := mon.Run(ctx, posts, errs); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error().Err(err).Msg("Monitor terminated")
	}
}
