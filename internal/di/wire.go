//go:build wireinject
// +build wireinject

package di

import (
	"InsightFlow/pkg/config"
	"InsightFlow/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,

		// Infrastructure
		ProvideSnapshotAudit,
		ProvideEventPublisher,
		ProvideRedisCache,
		ProvideRadarCache,
		ProvideAnalysisStore,
		ProvideAnalysisCache,
		ProvideUpstreamClient,

		// Board stream
		ProvideHub,
		ProvideEventPipeline,
		ProvideStatusBridge,

		// Use cases
		ProvideMockSource,
		ProvideGate,
		ProvideRegistry,
		ProvideRefresher,
		ProvideRefreshQueue,
		ProvideLimiter,

		// HTTP
		ProvideHandler,
		ProvideApp,
	)
	return &server.App{}, nil
}
