//go:build wireinject
// +build wireinject

package di

import (
	"rugcheck/internal/usecase"
	"rugcheck/pkg/config"
	"rugcheck/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		// Ambient
		ProvideLogger,
		ProvideMetrics,
		ProvideHTTPClient,

		// Upstream clients
		ProvideRPCClient,
		ProvideExplorerClient,
		ProvideGoPlusClient,
		ProvideDexScreenerClient,
		ProvidePriceCache,

		// Probes
		ProvideTokenInfoProbe,
		ProvideFunctionScanProbe,
		ProvideLiquidityProbe,
		ProvideHolderProbe,
		ProvideHoneypotProbe,
		ProvideSentimentProbe,

		// Use cases
		ProvideScanner,
		ProvideScanJob,

		// Infrastructure
		ProvideRedisClient,
		ProvideCacheService,
		ProvideReportCache,
		ProvideReportPublisher,
		ProvideAsyncQueue,

		// HTTP surface
		ProvideHandler,
		ProvideApp,
	)
	return &server.App{}, nil
}

// InitializeScanner builds a standalone scanner for one-shot CLI scans,
// without the HTTP server or queue.
func InitializeScanner(cfg *config.Config) (*usecase.Scanner, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,
		ProvideHTTPClient,
		ProvideRPCClient,
		ProvideExplorerClient,
		ProvideGoPlusClient,
		ProvideDexScreenerClient,
		ProvidePriceCache,
		ProvideTokenInfoProbe,
		ProvideFunctionScanProbe,
		ProvideLiquidityProbe,
		ProvideHolderProbe,
		ProvideHoneypotProbe,
		ProvideSentimentProbe,
		ProvideScanner,
	)
	return &usecase.Scanner{}, nil
}
