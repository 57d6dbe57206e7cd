package main

import (
	"context"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/mediscan/mediscan/internal/adapters/catalog"
	"github.com/mediscan/mediscan/internal/adapters/localstore"
	"github.com/mediscan/mediscan/internal/adapters/scanner"
	"github.com/mediscan/mediscan/internal/adapters/storage"
	"github.com/mediscan/mediscan/internal/application/services"
	"github.com/mediscan/mediscan/internal/domain/entities"
	"github.com/mediscan/mediscan/internal/domain/providers"
	redisclient "github.com/mediscan/mediscan/internal/infrastructure/clients/redis"
	"github.com/mediscan/mediscan/internal/infrastructure/observability"
	"github.com/mediscan/mediscan/pkg/config"
	"github.com/mediscan/mediscan/pkg/retry"
)

func main() {
	// Load .env if present
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatalf("Failed to load configuration: %v", err)
	}

	observability.InitLogger(cfg.App.ServiceName, cfg.App.Env)
	logger := observability.GetLogger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, closeStore, err := buildStorage(ctx, cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize storage")
	}
	if closeStore != nil {
		defer closeStore()
	}

	meds := catalog.NewStaticCatalog()
	feedbackRepo := localstore.NewFeedbackAdapter(store)
	historyRepo := localstore.NewHistoryAdapter(store)

	a := &app{
		ctx:         ctx,
		out:         os.Stdout,
		medications: services.NewMedicationService(meds),
		pricing:     services.NewPricingService(),
		feedback:    services.NewFeedbackService(feedbackRepo, nil),
		history:     services.NewHistoryService(historyRepo, meds),
		session:     services.NewResolutionService(meds, historyRepo, feedbackRepo).NewSession(),
	}

	provider := scanner.NewReaderProvider(os.Stdin)
	a.stop = func() {
		a.session.Stop()
		_ = provider.Stop()
		cancel()
	}

	a.printf("MediScan — scan a medication code, or type 'help' for commands.\n")
	a.session.Begin()

	err = provider.Start(ctx, a.handleLine, func(message string) {
		logger.Error().Str("reason", message).Msg("scanner error")
		a.printf("Scanner error: %s. You can try again.\n", message)
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to start scanner")
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case <-provider.Done():
	case <-sigCh:
		a.stop()
	}
}

type app struct {
	ctx  context.Context
	out  io.Writer
	stop func()

	medications *services.MedicationService
	pricing     *services.PricingService
	feedback    *services.FeedbackService
	history     *services.HistoryService
	session     *services.ScanSession
}

func (a *app) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *app) handleLine(line string) {
	fields := strings.Fields(line)
	switch fields[0] {
	case "help":
		a.printHelp()
	case "history":
		a.printHistory()
	case "clear":
		a.clearHistory()
	case "feedback":
		a.submitFeedback(fields[1:])
	case "quit", "exit":
		a.stop()
	default:
		a.resolve(line)
	}
}

func (a *app) printHelp() {
	a.printf(`Commands:
  <code>                          resolve a medication code (e.g. MED001)
  history                         show recent scans
  clear                           clear scan history
  feedback <code> <1-5> [text]    leave a rating for a medication
  quit                            exit
`)
}

func (a *app) resolve(code string) {
	result := a.session.HandleDecoded(a.ctx, code)
	// Re-arm for the next scan regardless of outcome.
	defer a.session.Begin()

	if result == nil {
		return
	}
	if result.State == services.StateNotFound {
		a.printf("%s\n", result.Message)
		return
	}

	rec := result.Record
	a.printf("\n%s (%s)\n", rec.Name, rec.Code)
	a.printf("  %s\n", rec.Description)
	a.printf("  Dosage: %s\n", rec.Dosage)
	a.printf("  Side effects: %s\n", strings.Join(rec.SideEffects, ", "))
	if a.medications.IsExpired(rec.ExpiryDate, time.Now()) {
		a.printf("  EXPIRED on %s — do not use\n", rec.ExpiryDate.Format("2006-01-02"))
	} else {
		a.printf("  Expires: %s\n", rec.ExpiryDate.Format("2006-01-02"))
	}

	a.printPrices(rec.Prices)
	a.printFeedback(result.Feedback)
	a.printf("\n")
}

func (a *app) printPrices(prices []entities.PriceQuote) {
	if len(prices) == 0 {
		a.printf("  No price data available.\n")
		return
	}

	comparison, err := a.pricing.Compare(prices)
	if err != nil {
		a.printf("  No price data available.\n")
		return
	}

	a.printf("  Prices:\n")
	if comparison.Savings > 0 {
		a.printf("    Potential savings up to $%.2f\n", comparison.Savings)
	}
	for i, quote := range comparison.Sorted {
		badge := ""
		if i == 0 && comparison.Best != nil {
			badge = "  [Best Price]"
		}
		location := ""
		if quote.Location != "" {
			location = " (" + quote.Location + ")"
		}
		a.printf("    %-14s $%.2f%s%s\n", quote.Pharmacy, quote.Price, location, badge)
	}
}

func (a *app) printFeedback(entries []entities.FeedbackEntry) {
	if len(entries) == 0 {
		return
	}
	a.printf("  Feedback:\n")
	for _, entry := range entries {
		a.printf("    %d/5", entry.Rating)
		if entry.Comment != "" {
			a.printf(" — %s", entry.Comment)
		}
		if entry.PriceInfo != nil {
			a.printf(" (paid $%.2f at %s)", entry.PriceInfo.Price, entry.PriceInfo.Pharmacy)
		}
		a.printf("\n")
	}
}

func (a *app) printHistory() {
	items, err := a.history.Recent(a.ctx)
	if err != nil {
		a.printf("Could not load scan history.\n")
		return
	}
	if len(items) == 0 {
		a.printf("No scans yet.\n")
		return
	}
	for _, item := range items {
		if item.Record != nil {
			a.printf("  %s  %s\n", item.Code, item.Record.Name)
		} else {
			a.printf("  %s  (unknown)\n", item.Code)
		}
	}
}

func (a *app) clearHistory() {
	if err := a.history.Clear(a.ctx); err != nil {
		a.printf("Could not clear scan history.\n")
		return
	}
	a.printf("Scan history cleared.\n")
}

func (a *app) submitFeedback(args []string) {
	if len(args) < 2 {
		a.printf("Usage: feedback <code> <1-5> [comment]\n")
		return
	}
	rating, err := strconv.Atoi(args[1])
	if err != nil {
		a.printf("Rating must be a number between 1 and 5.\n")
		return
	}

	entry := &entities.FeedbackEntry{
		DrugID:  args[0],
		Rating:  rating,
		Comment: strings.Join(args[2:], " "),
	}
	created, err := a.feedback.Add(a.ctx, entry)
	if err != nil {
		a.printf("Could not save feedback: %v\n", err)
		return
	}
	a.printf("Thanks! Feedback %s recorded for %s.\n", created.ID, created.DrugID)
}

// buildStorage selects the key-value store backing the feedback and scan
// history blobs. The returned closer is nil for backends with nothing to
// release.
func buildStorage(ctx context.Context, cfg *config.Config, logger *zerolog.Logger) (providers.StorageProvider, func() error, error) {
	switch cfg.Storage.Backend {
	case config.StorageBackendMemory:
		return storage.NewMemoryStore(), nil, nil

	case config.StorageBackendFile:
		store, err := storage.NewFileStore(cfg.Storage.Dir)
		return store, nil, err

	case config.StorageBackendRedis:
		var client *redisclient.Client
		retryCfg := retry.DefaultConfig()
		retryCfg.OnRetry = func(attempt int, err error, nextDelay time.Duration) {
			logger.Warn().Err(err).Int("attempt", attempt).Dur("next_delay", nextDelay).
				Msg("redis connection failed, retrying")
		}
		err := retry.Do(ctx, retryCfg, func() error {
			var connErr error
			client, connErr = redisclient.NewClient(ctx, &cfg.Redis)
			return connErr
		})
		if err != nil {
			return nil, nil, err
		}
		return storage.NewRedisStore(client), client.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage backend: %q", cfg.Storage.Backend)
	}
}
