package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/alexanderramin/joyshift/internal/cli"
	"github.com/alexanderramin/joyshift/internal/config"
	"github.com/alexanderramin/joyshift/internal/intelligence"
	"github.com/alexanderramin/joyshift/internal/kvstore"
	"github.com/alexanderramin/joyshift/internal/llm"
	"github.com/alexanderramin/joyshift/internal/logging"
	"github.com/alexanderramin/joyshift/internal/repository"
	"github.com/alexanderramin/joyshift/internal/service"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	// Open the store
	backend, closeStore, err := kvstore.Open(cfg.Store.Kind, cfg.Store.Path, logger.Named("store"))
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer func() {
		if err := closeStore(); err != nil {
			logger.Warn("store_close_failed", zap.Error(err))
		}
	}()
	logger.Debug("store_opened",
		zap.String("kind", cfg.Store.Kind),
		zap.String("path", cfg.Store.Path),
		zap.String("config", cfg.Source),
	)

	// Wire repositories
	shiftRepo := repository.NewKVShiftRepo(backend, logger)
	userRepo := repository.NewKVUserRepo(backend, logger)
	prefsRepo := repository.NewKVPreferencesRepo(backend)

	// Wire services
	observer := service.NewLogUseCaseObserver(logger)
	prefs := service.NewPreferencesService(prefsRepo, backend)
	if err := prefs.SeedTheme(ctx, cfg.Theme); err != nil {
		return fmt.Errorf("seeding theme: %w", err)
	}

	app := &cli.App{
		Shifts: service.NewShiftService(shiftRepo, backend,
			service.WithLogger(logger), service.WithObserver(observer)),
		Roster: service.NewRosterService(userRepo, backend,
			service.WithLogger(logger), service.WithObserver(observer)),
		Admin: service.NewAdminService(shiftRepo, userRepo,
			service.WithLogger(logger), service.WithObserver(observer)),
		Prefs:  prefs,
		Report: intelligence.NewReportService(newLLMClient(ctx, cfg, logger), intelligence.WithReportLogger(logger)),
		Logger: logger,
	}

	// Detect interactive terminal for the TUI entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}

// newLLMClient returns nil when reports should fall back to the
// missing-key message.
func newLLMClient(ctx context.Context, cfg *config.Config, logger *zap.Logger) llm.LLMClient {
	llmCfg := cfg.LLMConfig()
	if !llmCfg.Enabled {
		return nil
	}

	var observer llm.Observer = llm.NoopObserver{}
	if llmCfg.LogCalls {
		observer = llm.NewLogObserver(logger)
	}

	client, err := llm.NewClient(ctx, llmCfg, observer)
	if err != nil {
		if !errors.Is(err, llm.ErrMissingCredential) {
			logger.Warn("llm_client_unavailable", zap.String("provider", llmCfg.Provider), zap.Error(err))
		}
		return nil
	}
	return client
}
