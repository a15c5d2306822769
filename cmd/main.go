package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/luca-patrignani/bridge/application"
	"github.com/luca-patrignani/bridge/config"
	"github.com/luca-patrignani/bridge/domain/bridge"
	"github.com/luca-patrignani/bridge/domain/deck"
	"github.com/luca-patrignani/bridge/domain/strategy"
	"github.com/luca-patrignani/bridge/ledger"
	"github.com/luca-patrignani/bridge/metrics"
)

func main() {
	cfg, err := parseOptions(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		pterm.Error.Println(err)
		os.Exit(2)
	}

	logger := newLogger(cfg.LogLevel)

	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("B", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("ridge", pterm.FgDarkGray.ToStyle()),
	).Render()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("run failed", "error", err)
		os.Exit(1)
	}
}

// parseOptions loads the configuration file named by -config, if any, and
// applies the flags that were set on the command line on top of it.
func parseOptions(args []string) (config.Config, error) {
	fs := flag.NewFlagSet("bridge", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to a YAML configuration file")
	fs.Int("deals", 1, "number of boards to deal and bid")
	fs.Uint64("seed", 0, "dealer seed, 0 for a random one")
	fs.Int("workers", 4, "number of auctions bid at once")
	fs.Bool("hands", true, "print the hands of each board")
	fs.String("dealer", "N", "seat that calls first (N, E, S or W)")
	if err := fs.Parse(args); err != nil {
		return config.Config{}, err
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	var err error
	fs.Visit(func(f *flag.Flag) {
		v := f.Value.(flag.Getter).Get()
		switch f.Name {
		case "deals":
			cfg.Deals = v.(int)
		case "seed":
			cfg.Seed = v.(uint64)
		case "workers":
			cfg.Workers = v.(int)
		case "hands":
			cfg.ShowHands = v.(bool)
		case "dealer":
			var seat bridge.Seat
			if seat, err = bridge.ParseSeat(v.(string)); err == nil {
				cfg.Dealer = seat
			}
		}
	})
	if err != nil {
		return config.Config{}, err
	}
	return cfg, cfg.Validate()
}

func newLogger(level slog.Level) *slog.Logger {
	// Create a new slog handler with the default PTerm logger
	handler := pterm.NewSlogHandler(pterm.DefaultLogger.WithLevel(logLevel(level)))
	return slog.New(handler)
}

func logLevel(level slog.Level) pterm.LogLevel {
	switch {
	case level < slog.LevelInfo:
		return pterm.LogLevelDebug
	case level < slog.LevelWarn:
		return pterm.LogLevelInfo
	case level < slog.LevelError:
		return pterm.LogLevelWarn
	default:
		return pterm.LogLevelError
	}
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	dealer := deck.NewDealer(cfg.Seed)
	logger.Info("dealing boards", "deals", cfg.Deals, "seed", dealer.Seed(), "dealer", cfg.Dealer.String())

	boards, err := dealer.DealN(cfg.Deals)
	if err != nil {
		return fmt.Errorf("failed to deal: %w", err)
	}

	reg := prometheus.NewRegistry()
	collector := metrics.NewCollector(reg)

	s, err := strategy.New(
		strategy.WithCache(cfg.CacheSize),
		strategy.WithLogger(logger),
		strategy.WithMetrics(collector),
	)
	if err != nil {
		return err
	}
	keyring := ledger.NewKeyring()
	orchestrator := application.NewOrchestrator(
		application.WithBidder(s),
		application.WithLogger(logger),
		application.WithMetrics(collector),
		application.WithDealer(cfg.Dealer),
		application.WithWorkers(cfg.Workers),
		application.WithInterpretation(cfg.Interpret),
		application.WithKeyring(keyring),
	)

	spinner, _ := pterm.DefaultSpinner.Start(fmt.Sprintf("Bidding %d boards ...", len(boards)))
	results, err := orchestrator.RunBatch(ctx, boards)
	if err != nil {
		spinner.Fail()
		return err
	}
	spinner.Success()

	for i, res := range results {
		if err := res.Transcript.VerifySignatures(keyring); err != nil {
			logger.Warn("transcript rejected", "auction", res.AuctionID, "error", err)
		}
		printResult(i+1, res, cfg)
	}

	summary, err := metrics.Summarize(reg)
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	printSummary(summary)
	return nil
}
