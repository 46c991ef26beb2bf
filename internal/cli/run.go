package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmanning1991/reddit-stock-sentiment-bot/internal/config"
	"github.com/jmanning1991/reddit-stock-sentiment-bot/internal/logging"
	"github.com/jmanning1991/reddit-stock-sentiment-bot/internal/market"
	"github.com/jmanning1991/reddit-stock-sentiment-bot/internal/monitor"
	"github.com/jmanning1991/reddit-stock-sentiment-bot/internal/notify"
	"github.com/jmanning1991/reddit-stock-sentiment-bot/internal/reddit"
	"github.com/jmanning1991/reddit-stock-sentiment-bot/internal/sentiment"
	"github.com/jmanning1991/reddit-stock-sentiment-bot/internal/server"
	"github.com/jmanning1991/reddit-stock-sentiment-bot/internal/sheets"
	"github.com/jmanning1991/reddit-stock-sentiment-bot/internal/store"
)

func newRunCmd(configDir *string, debug *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Start monitoring the configured sources",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Configuration errors are fatal to the whole process; there
			// is no partial startup.
			cfg, err := config.Load(*configDir)
			if err != nil {
				return err
			}

			logCfg := logging.DefaultLogConfig()
			logCfg.Level = cfg.Logging.Level
			if cfg.Logging.FilePath != "" {
				logCfg.FilePath = cfg.Logging.FilePath
			}
			if *debug {
				logCfg.Level = "debug"
			}
			logger := logging.NewLoggerWithConfig(logCfg)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			stream, err := reddit.NewStream(cfg.Credentials, cfg.Stream.PollInterval, logger)
			if err != nil {
				return fmt.Errorf("initializing reddit client: %w", err)
			}

			classifier := sentiment.NewOpenAIClassifier(cfg.Credentials.OpenAIAPIKey, cfg.OpenAI.Model, logger)
			provider := market.NewYahooProvider(logger)

			sheetLog, err := sheets.New(ctx, cfg.Sheets, cfg.Credentials, logger)
			if err != nil {
				return fmt.Errorf("initializing sheets client: %w", err)
			}
			if err := sheetLog.EnsureHeader(ctx); err != nil {
				return fmt.Errorf("checking result sheet: %w", err)
			}

			sinks := []monitor.ResultLog{sheetLog}
			if cfg.Journal.Enabled {
				journal, err := store.NewJournal(cfg.Journal.Path)
				if err != nil {
					return fmt.Errorf("initializing journal: %w", err)
				}
				defer journal.Close()
				sinks = append(sinks, journal)
			}

			notifier := notify.NewEmailNotifier(cfg.Email, cfg.Credentials.EmailAppPassword)

			srv := server.New(cfg.Server.Addr, logger)
			go func() {
				if err := srv.Start(); err != nil {
					logger.Error().Err(err).Msg("Liveness server failed")
				}
			}()

			orch := monitor.NewOrchestrator(
				cfg.Sources,
				stream,
				cfg.Watchlist(),
				provider,
				classifier,
				monitor.NewMultiLog(sinks...),
				notifier,
				logger,
			)
			orch.Run(ctx)

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}
}
