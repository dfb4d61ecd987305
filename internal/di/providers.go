package di

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"time"

	domrepo "InsightFlow/internal/domain/repository"
	"InsightFlow/internal/handler/api"
	"InsightFlow/internal/handler/ws"
	mid "InsightFlow/internal/middleware"
	"InsightFlow/internal/mockdata"
	internalrepo "InsightFlow/internal/repository"
	svccache "InsightFlow/internal/service/cache"
	"InsightFlow/internal/service/ratelimit"
	"InsightFlow/internal/upstream"
	"InsightFlow/internal/usecase"
	pkgcache "InsightFlow/pkg/cache"
	pkgch "InsightFlow/pkg/clickhouse"
	"InsightFlow/pkg/config"
	pkgkafka "InsightFlow/pkg/kafka"
	applogger "InsightFlow/pkg/logger"
	"InsightFlow/pkg/metrics"
	"InsightFlow/pkg/queue"
	"InsightFlow/pkg/server"
)

// ProvideLogger creates the application logger. Production runs JSON,
// anything else runs console at debug.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	lc := &applogger.Config{Level: "debug", Format: "console", Output: "stdout"}
	if cfg.Environment == "production" {
		lc = &applogger.Config{Level: "info", Format: "json", Output: "stdout"}
	}
	return applogger.New(lc)
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() domrepo.Metrics {
	return metrics.New()
}

// ProvideSnapshotAudit creates the ClickHouse refresh trail, or a no-op
// when ClickHouse is disabled.
func ProvideSnapshotAudit(cfg *config.Config, log *applogger.Logger) (domrepo.SnapshotAudit, error) {
	if !cfg.ClickHouse.Enabled {
		return internalrepo.NoopAudit{}, nil
	}

	client, err := pkgch.NewClient(
		pkgch.WithHost(cfg.ClickHouse.Host),
		pkgch.WithPort(cfg.ClickHouse.Port),
		pkgch.WithDatabase(cfg.ClickHouse.Database),
		pkgch.WithCredentials(cfg.ClickHouse.User, cfg.ClickHouse.Password),
		pkgch.WithMaxConnections(10, 5),
		pkgch.WithHTTP(cfg.ClickHouse.UseHTTP),
		pkgch.WithAsyncInsert(cfg.ClickHouse.AsyncInsert, cfg.ClickHouse.WaitForAsync),
		pkgch.WithTimeouts(cfg.ClickHouse.DialTimeout, cfg.ClickHouse.ReadTimeout, cfg.ClickHouse.WriteTimeout),
		pkgch.WithMaxExecutionTime(cfg.ClickHouse.MaxExecutionTime),
	)
	if err != nil {
		return nil, fmt.Errorf("clickhouse client: %w", err)
	}

	audit := internalrepo.NewCHSnapshotAudit(client)
	audit.SetLogger(log)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := audit.InitSchema(ctx); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("clickhouse schema: %w", err)
	}
	return audit, nil
}

// ProvideEventPublisher creates the Kafka lifecycle event publisher, or
// a no-op when Kafka is disabled.
func ProvideEventPublisher(cfg *config.Config) (domrepo.EventPublisher, error) {
	if !cfg.Kafka.Enabled {
		return internalrepo.NoopPublisher{}, nil
	}

	producer, err := pkgkafka.NewProducer(
		pkgkafka.WithBrokers(cfg.Kafka.Brokers),
		pkgkafka.WithCompression(cfg.Kafka.Compression),
		pkgkafka.WithRequiredAcks(cfg.Kafka.RequiredAcks),
		pkgkafka.WithBatchSize(cfg.Kafka.Producer.BatchSize),
		pkgkafka.WithBatchBytes(cfg.Kafka.Producer.BatchBytes),
		pkgkafka.WithBatchTimeout(cfg.Kafka.Producer.Linger),
		pkgkafka.WithTimeouts(cfg.Kafka.Producer.WriteTimeout, cfg.Kafka.Producer.ReadTimeout),
		pkgkafka.WithMaxAttempts(cfg.Kafka.Producer.MaxAttempts),
		pkgkafka.WithAsync(cfg.Kafka.Producer.Async),
		pkgkafka.WithHashByKey(true),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	return internalrepo.NewKafkaPublisher(producer, cfg.RefreshesTopic(), cfg.AnalysesTopic()), nil
}

// ProvideRedisCache connects the shared Redis client. Returns nil when
// Redis is disabled; downstream providers fall back to memory.
func ProvideRedisCache(cfg *config.Config) (*pkgcache.RedisCache, error) {
	if !cfg.Cache.Redis.Enabled {
		return nil, nil
	}
	host, port, err := splitAddr(cfg.Cache.Redis.Addr)
	if err != nil {
		return nil, fmt.Errorf("redis addr: %w", err)
	}
	return pkgcache.NewRedisCache(
		pkgcache.WithRedisHost(host),
		pkgcache.WithRedisPort(port),
		pkgcache.WithRedisPassword(cfg.Cache.Redis.Password),
		pkgcache.WithRedisDB(cfg.Cache.Redis.DB),
	)
}

// ProvideRadarCache serves the whale radar TTL cache: Redis-backed with
// a memory layer when available, plain memory otherwise.
func ProvideRadarCache(rc *pkgcache.RedisCache) pkgcache.Service {
	if rc == nil {
		return pkgcache.NewMemoryCache()
	}
	return pkgcache.NewLayeredCache(rc)
}

// ProvideAnalysisStore backs the daily analysis cache.
func ProvideAnalysisStore(cfg *config.Config) svccache.BytesCache {
	if !cfg.Cache.Redis.Enabled {
		return svccache.NewMemoryBytes()
	}
	return svccache.NewRedisCache(svccache.RedisConfig{
		Addr:     cfg.Cache.Redis.Addr,
		Password: cfg.Cache.Redis.Password,
		DB:       cfg.Cache.Redis.DB,
	})
}

// ProvideAnalysisCache wraps the byte store with the analysis codec.
func ProvideAnalysisCache(store svccache.BytesCache) domrepo.AnalysisCache {
	return internalrepo.NewAnalysisCache(store)
}

// ProvideUpstreamClient creates the dashboard backend client.
func ProvideUpstreamClient(cfg *config.Config) *upstream.Client {
	return upstream.NewClient(cfg.Upstream.BaseURL, upstream.WithTimeout(cfg.Upstream.Timeout))
}

// ProvideGate creates the shared analysis cache gate.
func ProvideGate(
	client *upstream.Client,
	analysisCache domrepo.AnalysisCache,
	m domrepo.Metrics,
	publisher domrepo.EventPublisher,
	log *applogger.Logger,
	cfg *config.Config,
) *usecase.Gate {
	return usecase.NewGate(client, analysisCache, m, publisher, log,
		usecase.WithAgentInterval(cfg.Board.AgentInterval))
}

// ProvideHub creates the board WebSocket hub.
func ProvideHub(log *applogger.Logger) *ws.Hub {
	return ws.NewHub(log)
}

// ProvideEventPipeline buffers status events between stores and the hub.
func ProvideEventPipeline(hub *ws.Hub, m domrepo.Metrics) *mid.EventPipeline {
	return mid.NewEventPipeline(hub, m,
		mid.WithMaxRPS(20),
		mid.WithBufferSize(1000),
	)
}

// ProvideStatusBridge adapts store status callbacks onto the pipeline.
func ProvideStatusBridge(pipe *mid.EventPipeline) *mid.StatusBridge {
	return mid.NewStatusBridge(pipe)
}

// ProvideMockSource creates the fallback snapshot generator.
func ProvideMockSource() usecase.MockSource {
	return mockdata.New()
}

// ProvideRegistry wires the nine domain stores.
func ProvideRegistry(
	client *upstream.Client,
	mocks usecase.MockSource,
	gate *usecase.Gate,
	log *applogger.Logger,
	m domrepo.Metrics,
	audit domrepo.SnapshotAudit,
	publisher domrepo.EventPublisher,
	radar pkgcache.Service,
	bridge *mid.StatusBridge,
	cfg *config.Config,
) *usecase.Registry {
	deps := usecase.StoreDeps{Log: log, Metrics: m, Audit: audit, Events: publisher}
	return usecase.NewRegistry(client, mocks, gate, deps, radar, usecase.RegistryConfig{
		DefaultCountry: cfg.Country.Default,
		WhaleSymbols:   cfg.Whale.Symbols,
		RadarCacheTTL:  cfg.Cache.RadarTTL,
	}, bridge)
}

// ProvideRefresher creates the periodic refresh loop.
func ProvideRefresher(registry *usecase.Registry, log *applogger.Logger, cfg *config.Config) *usecase.Refresher {
	return usecase.NewRefresher(registry, log,
		usecase.WithInterval(cfg.Refresh.Interval),
		usecase.WithWorkers(cfg.Refresh.Workers),
		usecase.WithRefreshOnStart(cfg.Refresh.OnStart),
	)
}

// ProvideLimiter creates the analyze endpoint rate limiter.
func ProvideLimiter() *ratelimit.Limiter {
	return ratelimit.New()
}

// ProvideRefreshQueue creates the Redis-backed refresh worker queue, or
// nil when Redis is disabled (refreshes then run inline).
func ProvideRefreshQueue(
	cfg *config.Config,
	log *applogger.Logger,
	rc *pkgcache.RedisCache,
	registry *usecase.Registry,
) *queue.RedisQueue {
	if rc == nil {
		return nil
	}
	qc := &queue.QueueConfig{
		Workers:    cfg.Refresh.Workers,
		RetryLimit: 3,
		RetryDelay: 5 * time.Second,
	}
	jobs := []queue.Job{usecase.NewRefreshJob(registry, log)}
	q := queue.NewRedisConsumer(log, qc, rc.Client(), jobs)

	// Aggregate repeated error logs onto the queue instead of flooding it.
	log.AddCollector(&applogger.CollectionConfig{
		TimeInterval:   30 * time.Second,
		CountThreshold: 100,
		Topic:          "log.errors",
		Publisher:      q,
	})
	return q
}

// ProvideHandler creates the HTTP handler for the store endpoints.
func ProvideHandler(
	log *applogger.Logger,
	registry *usecase.Registry,
	audit domrepo.SnapshotAudit,
	limiter *ratelimit.Limiter,
	jobs *queue.RedisQueue,
) *api.StoresEchoHandler {
	h := api.NewStoresEchoHandler(log, registry, audit, limiter)
	if jobs != nil {
		h.SetJobQueue(jobs)
	}
	return h
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	log *applogger.Logger,
	registry *usecase.Registry,
	refresher *usecase.Refresher,
	pipeline *mid.EventPipeline,
	hub *ws.Hub,
	handler *api.StoresEchoHandler,
	jobs *queue.RedisQueue,
	audit domrepo.SnapshotAudit,
	publisher domrepo.EventPublisher,
) *server.App {
	return server.New(cfg, log, registry, refresher, pipeline, hub, handler, jobs, audit, publisher)
}

func splitAddr(addr string) (string, int, error) {
	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return "", 0, err
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return "", 0, err
	}
	return host, port, nil
}
