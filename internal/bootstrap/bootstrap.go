package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	mcpadapter "github.com/kirillkom/document-analyzer/internal/adapters/mcp"
	"github.com/kirillkom/document-analyzer/internal/config"
	"github.com/kirillkom/document-analyzer/internal/core/ports"
	"github.com/kirillkom/document-analyzer/internal/core/usecase"
	"github.com/kirillkom/document-analyzer/internal/infrastructure/extractor"
	"github.com/kirillkom/document-analyzer/internal/infrastructure/queue/nats"
	"github.com/kirillkom/document-analyzer/internal/infrastructure/repository/memory"
	"github.com/kirillkom/document-analyzer/internal/infrastructure/resilience"
	"github.com/kirillkom/document-analyzer/internal/infrastructure/seed"
	"github.com/kirillkom/document-analyzer/internal/infrastructure/storage/localfs"
	"github.com/kirillkom/document-analyzer/internal/observability/metrics"
)

type App struct {
	Config config.Config
	Logger *slog.Logger

	Store    *memory.DocumentStore
	Catalog  *usecase.DocumentUseCase
	Analyzer *usecase.AnalysisUseCase
	Metrics  *metrics.ServerMetrics
	MCP      *mcpadapter.Server

	// Queue is nil when NATS_URL is empty.
	Queue *nats.Queue

	closeFn func()
}

// Corpus is the seeded and imported document set with its use cases.
type Corpus struct {
	Store    *memory.DocumentStore
	Catalog  *usecase.DocumentUseCase
	Analyzer *usecase.AnalysisUseCase
}

// NewCorpus loads the documents without announcing them, for offline commands
// such as the report.
func NewCorpus(ctx context.Context, cfg config.Config, logger *slog.Logger) (*Corpus, error) {
	if logger == nil {
		logger = slog.Default()
	}
	return loadCorpus(ctx, cfg, nil, logger)
}

func New(ctx context.Context, cfg config.Config, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var (
		queue     *nats.Queue
		publisher ports.EventPublisher
		err       error
	)
	if cfg.NATSURL != "" {
		queue, err = ConnectQueue(cfg, logger)
		if err != nil {
			return nil, err
		}
		publisher = queue
	}
	closeFn := func() {
		if queue != nil {
			queue.Close()
		}
	}

	corpus, err := loadCorpus(ctx, cfg, publisher, logger)
	if err != nil {
		closeFn()
		return nil, err
	}
	serverMetrics := metrics.NewServerMetrics(cfg.ServiceName, corpus.Store.Len)

	mcpServer := mcpadapter.NewServer(corpus.Catalog, corpus.Analyzer, mcpadapter.Options{
		Name:          cfg.ServiceName,
		Logger:        logger,
		Recorder:      serverMetrics,
		KeywordLimit:  cfg.KeywordLimit,
		SnippetLength: cfg.SnippetLength,
	})

	return &App{
		Config: cfg,
		Logger: logger,

		Store:    corpus.Store,
		Catalog:  corpus.Catalog,
		Analyzer: corpus.Analyzer,
		Metrics:  serverMetrics,
		MCP:      mcpServer,
		Queue:    queue,

		closeFn: closeFn,
	}, nil
}

func loadCorpus(ctx context.Context, cfg config.Config, publisher ports.EventPublisher, logger *slog.Logger) (*Corpus, error) {
	store := memory.NewDocumentStore()
	seeded, err := seed.Load(ctx, store)
	if err != nil {
		return nil, fmt.Errorf("seed documents: %w", err)
	}
	logger.Info("documents_seeded", "count", seeded)

	catalog := usecase.NewDocumentUseCase(store, publisher, logger)
	if cfg.ImportDir != "" {
		if err := importDir(ctx, cfg.ImportDir, catalog, logger); err != nil {
			return nil, err
		}
	}

	return &Corpus{
		Store:    store,
		Catalog:  catalog,
		Analyzer: usecase.NewAnalysisUseCase(store, cfg.KeywordLimit),
	}, nil
}

// ConnectQueue opens the document event queue with publishing guarded by the
// resilience executor.
func ConnectQueue(cfg config.Config, logger *slog.Logger) (*nats.Queue, error) {
	queue, err := nats.Connect(cfg.NATSURL, cfg.NATSSubject, nats.Options{
		ClientName:         cfg.ServiceName,
		ResilienceExecutor: resilience.NewExecutor(resilience.DefaultConfig(), resilience.WithLogger(logger)),
		Logger:             logger,
	})
	if err != nil {
		return nil, fmt.Errorf("init message queue: %w", err)
	}
	return queue, nil
}

func importDir(ctx context.Context, dir string, catalog ports.DocumentCatalog, logger *slog.Logger) error {
	sources, err := localfs.New(dir)
	if err != nil {
		return fmt.Errorf("init import source: %w", err)
	}

	importer := usecase.NewImportUseCase(sources, extractor.NewDefaultRegistry(), catalog, logger)
	report, err := importer.ImportAll(ctx)
	if err != nil {
		return fmt.Errorf("import documents: %w", err)
	}
	logger.Info("documents_import_finished",
		"dir", dir,
		"imported", len(report.Imported),
		"skipped", len(report.Skipped),
		"failed", len(report.Failed),
	)
	return nil
}

func (a *App) Close() {
	if a.closeFn != nil {
		a.closeFn()
	}
}
