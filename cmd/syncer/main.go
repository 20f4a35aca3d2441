package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"schoolsync/internal/config"
	"schoolsync/internal/domain"
	"schoolsync/internal/publisher"
	"schoolsync/internal/scheduler"
	"schoolsync/internal/service"
	"schoolsync/internal/source/airtable"
	"schoolsync/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	dataset := flag.String("dataset", "", "dataset to sync: schools, youth, sessions, literacy_sessions, numeracy_sessions")
	full := flag.Bool("full", false, "force a full sync instead of incremental")
	limit := flag.Int("limit", 0, "limit the number of records to process (for testing)")
	snapshot := flag.String("snapshot", "", "read records from a local snapshot file instead of the API")
	linkExisting := flag.Bool("link-existing", false, "schools: link same-named local rows without an external id instead of creating duplicates")
	updateExisting := flag.Bool("update-existing", false, "youth: overwrite rows already matched by employee number")
	verbose := flag.Bool("verbose", false, "log every skipped record with its reason")
	watch := flag.Duration("watch", 0, "re-run the sync on this interval instead of exiting")
	checkDuplicates := flag.Bool("check-duplicates", false, "report local schools that would duplicate remote ones, then exit")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger = setupLogger(cfg.LogLevel)

	if *dataset == "" {
		logger.Error("missing required -dataset flag")
		os.Exit(1)
	}

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	// Initialize stores
	schools := postgres.NewSchoolStore(db)
	youth := postgres.NewYouthStore(db)
	children := postgres.NewChildStore(db)
	mentors := postgres.NewMentorStore(db)
	sessions := postgres.NewSessionStore(db)
	runs := postgres.NewSyncRunStore(db)
	txManager := postgres.NewTransactionManager(db)

	fetcher, err := buildFetcher(cfg, *dataset, *snapshot, logger)
	if err != nil {
		logger.Error("failed to set up record source", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	if *checkDuplicates {
		runDuplicateReport(ctx, fetcher, schools, logger)
		return
	}

	var pub service.Publisher
	if cfg.RabbitMQ.Enabled {
		rabbit, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			logger.Error("failed to connect to rabbitmq", "error", err)
			os.Exit(1)
		}
		defer rabbit.Close()
		pub = rabbit
	}

	opts := service.Options{
		Full:    *full,
		Limit:   *limit,
		Verbose: *verbose,
	}

	// Processors hold per-run state (batch dedup), so each invocation
	// builds a fresh engine.
	newEngine := func() (*service.Engine, error) {
		resolver := service.NewResolver(schools, youth, children, mentors, logger)
		proc, err := buildProcessor(*dataset, *linkExisting, *updateExisting, schools, youth, sessions, resolver, logger)
		if err != nil {
			return nil, err
		}
		return service.NewEngine(fetcher, proc, runs, txManager, pub, logger, opts), nil
	}

	syncer := syncFunc(func(ctx context.Context) (*domain.SyncRun, error) {
		engine, err := newEngine()
		if err != nil {
			return nil, err
		}
		return engine.Sync(ctx)
	})

	if *watch > 0 {
		logger.Info("starting sync watcher", "dataset", *dataset, "interval", *watch)
		sched := scheduler.NewScheduler(syncer, *watch, logger)
		if err := sched.Start(ctx); err != nil && err != context.Canceled {
			logger.Error("scheduler error", "error", err)
			os.Exit(1)
		}
		return
	}

	run, err := syncer.Sync(ctx)
	if err != nil {
		logger.Error("sync failed", "error", err)
		os.Exit(1)
	}
	logger.Info("done",
		"run_id", run.ID,
		"created", run.Created,
		"updated", run.Updated,
		"skipped", run.Skipped,
	)
}

type syncFunc func(ctx context.Context) (*domain.SyncRun, error)

func (f syncFunc) Sync(ctx context.Context) (*domain.SyncRun, error) { return f(ctx) }

func buildFetcher(cfg *config.Config, dataset, snapshot string, logger *slog.Logger) (service.Fetcher, error) {
	if snapshot != "" {
		logger.Info("using snapshot file", "path", snapshot)
		return airtable.Snapshot{Path: snapshot}, nil
	}

	ds, err := cfg.Dataset(dataset)
	if err != nil {
		return nil, err
	}
	if cfg.Airtable.APIKey == "" {
		return nil, fmt.Errorf("airtable api key not configured")
	}
	return airtable.New(airtable.Config{
		BaseURL:   cfg.Airtable.BaseURL,
		APIKey:    cfg.Airtable.APIKey,
		BaseID:    ds.BaseID,
		TableID:   ds.TableID,
		PageSize:  cfg.Airtable.PageSize,
		PageDelay: cfg.Airtable.PageDelay,
		Timeout:   cfg.Airtable.Timeout,
	}, logger), nil
}

func buildProcessor(
	dataset string,
	linkExisting, updateExisting bool,
	schools service.SchoolStore,
	youth service.YouthStore,
	sessions service.SessionStore,
	resolver *service.Resolver,
	logger *slog.Logger,
) (service.Processor, error) {
	switch dataset {
	case domain.SyncTypeSchools:
		return service.NewSchoolsProcessor(schools, linkExisting, logger), nil
	case domain.SyncTypeYouth:
		return service.NewYouthProcessor(youth, resolver, updateExisting, logger), nil
	case domain.SyncTypeSessions, domain.SyncTypeLiteracySessions:
		return service.NewSessionsProcessor(dataset, service.SessionFields(), sessions, resolver, logger), nil
	case domain.SyncTypeNumeracySessions:
		return service.NewSessionsProcessor(dataset, service.NumeracySessionFields(), sessions, resolver, logger), nil
	default:
		return nil, fmt.Errorf("unknown dataset %q", dataset)
	}
}

func runDuplicateReport(ctx context.Context, fetcher service.Fetcher, schools *postgres.SchoolStore, logger *slog.Logger) {
	dups, err := service.CheckSchoolDuplicates(ctx, fetcher, schools)
	if err != nil {
		logger.Error("duplicate check failed", "error", err)
		os.Exit(1)
	}
	if len(dups) == 0 {
		fmt.Println("No potential duplicates found.")
		return
	}
	fmt.Printf("Found %d potential duplicates:\n", len(dups))
	for _, d := range dups {
		fmt.Printf("  local #%d %q <-> remote %s %q\n", d.LocalID, d.LocalName, d.RemoteID, d.RemoteName)
	}
	fmt.Println("Re-run the schools sync with -link-existing to adopt these rows.")
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
