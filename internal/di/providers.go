// Package di wires the application together. Providers are consumed by
// wire; conditional infrastructure (redis, kafka) is resolved from config
// inside the providers so the injector stays linear.
package di

import (
	"fmt"
	"net"
	"strconv"

	"github.com/redis/go-redis/v9"

	"rugcheck/internal/domain/repository"
	"rugcheck/internal/handler/api"
	internalrepo "rugcheck/internal/repository"
	icache "rugcheck/internal/service/cache"
	"rugcheck/internal/services/probes"
	"rugcheck/internal/usecase"
	pkgcache "rugcheck/pkg/cache"
	"rugcheck/pkg/config"
	xhttp "rugcheck/pkg/http"
	pkgkafka "rugcheck/pkg/kafka"
	"rugcheck/pkg/logger"
	"rugcheck/pkg/metrics"
	"rugcheck/pkg/queue"
	"rugcheck/pkg/server"
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*logger.Logger, error) {
	format := "json"
	if cfg.Environment == "development" {
		format = "console"
	}
	return logger.New(&logger.Config{Level: "info", Format: format, Output: "stdout"})
}

// ProvideHTTPClient creates the shared outbound HTTP client.
func ProvideHTTPClient(cfg *config.Config) *xhttp.Client {
	return xhttp.NewClient(xhttp.WithTimeout(cfg.Scan.ProbeTimeout))
}

// ProvideMetrics creates the Prometheus recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.NewRecorder()
}

// ProvideRPCClient creates the JSON-RPC client used by on-chain probes.
func ProvideRPCClient(client *xhttp.Client) *probes.RPCClient {
	return probes.NewRPCClient(client)
}

// ProvideExplorerClient creates the block explorer client.
func ProvideExplorerClient(client *xhttp.Client, cfg *config.Config) *probes.ExplorerClient {
	return probes.NewExplorerClient(client, cfg.Providers.Etherscan.APIKeys)
}

// ProvideGoPlusClient creates the GoPlus security API client.
func ProvideGoPlusClient(client *xhttp.Client, cfg *config.Config) *probes.GoPlusClient {
	return probes.NewGoPlusClient(client, cfg.Providers.GoPlus.BaseURL, cfg.Scan.SourceTTL)
}

// ProvideDexScreenerClient creates the DexScreener client.
func ProvideDexScreenerClient(client *xhttp.Client, cfg *config.Config) *probes.DexScreenerClient {
	return probes.NewDexScreenerClient(client, cfg.Providers.DexScreener.BaseURL)
}

// ProvidePriceCache creates the short-lived token price cache.
func ProvidePriceCache(cfg *config.Config) *icache.PriceCache {
	return icache.NewPriceCache(cfg.Scan.PriceTTL)
}

// ProvideTokenInfoProbe creates the on-chain metadata probe.
func ProvideTokenInfoProbe(rpc *probes.RPCClient, explorer *probes.ExplorerClient, log *logger.Logger) repository.TokenInfoProbe {
	return probes.NewTokenInfo(rpc, explorer, log)
}

// ProvideFunctionScanProbe creates the contract source scanner.
func ProvideFunctionScanProbe(explorer *probes.ExplorerClient, cfg *config.Config, log *logger.Logger) repository.FunctionScanProbe {
	return probes.NewFunctionScan(explorer, cfg.Scan.SourceTTL, log)
}

// ProvideLiquidityProbe creates the liquidity probe.
func ProvideLiquidityProbe(
	dex *probes.DexScreenerClient,
	goplus *probes.GoPlusClient,
	client *xhttp.Client,
	cfg *config.Config,
	prices *icache.PriceCache,
	log *logger.Logger,
) repository.LiquidityProbe {
	return probes.NewLiquidity(dex, goplus, client, cfg.Providers.CoinGecko.BaseURL, prices, log)
}

// ProvideHolderProbe creates the holder concentration probe.
func ProvideHolderProbe(client *xhttp.Client, goplus *probes.GoPlusClient, cfg *config.Config, log *logger.Logger) repository.HolderProbe {
	return probes.NewHolders(client, goplus, cfg.Providers.Moralis.BaseURL, cfg.Providers.Moralis.APIKey, log)
}

// ProvideHoneypotProbe creates the honeypot probe.
func ProvideHoneypotProbe(goplus *probes.GoPlusClient) repository.HoneypotProbe {
	return probes.NewHoneypot(goplus)
}

// ProvideSentimentProbe creates the market sentiment probe.
func ProvideSentimentProbe(dex *probes.DexScreenerClient) repository.SentimentProbe {
	return probes.NewSentiment(dex)
}

// ProvideScanner creates the scan use case.
func ProvideScanner(
	tokenInfo repository.TokenInfoProbe,
	functions repository.FunctionScanProbe,
	liquidity repository.LiquidityProbe,
	holders repository.HolderProbe,
	honeypot repository.HoneypotProbe,
	sentiment repository.SentimentProbe,
	m repository.Metrics,
	log *logger.Logger,
	cfg *config.Config,
) *usecase.Scanner {
	return usecase.NewScanner(tokenInfo, functions, liquidity, holders, honeypot, sentiment, m, log, cfg.Scan.ProbeTimeout)
}

// ProvideRedisClient creates a redis client, or nil when redis is disabled.
func ProvideRedisClient(cfg *config.Config) *redis.Client {
	if !cfg.Redis.Enabled {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
}

// ProvideCacheService creates the report cache backend: layered over redis
// when available, in-process memory otherwise.
func ProvideCacheService(cfg *config.Config, client *redis.Client) (pkgcache.Service, error) {
	if client == nil {
		return pkgcache.NewMemoryCache(), nil
	}
	host, port := splitAddr(cfg.Redis.Addr)
	redisCache, err := pkgcache.NewRedisCache(
		pkgcache.WithRedisHost(host),
		pkgcache.WithRedisPort(port),
		pkgcache.WithRedisPassword(cfg.Redis.Password),
		pkgcache.WithRedisDB(cfg.Redis.DB),
	)
	if err != nil {
		return nil, fmt.Errorf("redis cache: %w", err)
	}
	return pkgcache.NewLayeredCache(redisCache), nil
}

func splitAddr(addr string) (string, int) {
	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return addr, 6379
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return host, 6379
	}
	return host, port
}

// ProvideReportCache creates the TTL report store.
func ProvideReportCache(c pkgcache.Service, cfg *config.Config) repository.ReportCache {
	return internalrepo.NewCachedReports(c, cfg.Scan.ReportTTL)
}

// ProvideReportPublisher creates the Kafka publisher, or a no-op one when
// Kafka is disabled.
func ProvideReportPublisher(cfg *config.Config, log *logger.Logger) (repository.ReportPublisher, error) {
	if !cfg.Kafka.Enabled {
		return internalrepo.NopReportPublisher{}, nil
	}
	producer, err := pkgkafka.NewProducer(
		pkgkafka.WithBrokers(cfg.Kafka.Brokers),
		pkgkafka.WithCompression(cfg.Kafka.Compression),
		pkgkafka.WithRequiredAcks(cfg.Kafka.RequiredAcks),
		pkgkafka.WithMaxAttempts(cfg.Kafka.MaxAttempts),
		pkgkafka.WithAsync(cfg.Kafka.Async),
		pkgkafka.WithHashByKey(true),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	return internalrepo.NewKafkaReportPublisher(producer, cfg.Kafka.Topic, log), nil
}

// ProvideScanJob creates the queued scan handler.
func ProvideScanJob(scanner *usecase.Scanner, reports repository.ReportCache, publisher repository.ReportPublisher, log *logger.Logger) *usecase.ScanJob {
	return usecase.NewScanJob(scanner, reports, publisher, log)
}

// AsyncQueue bundles the queue publisher and consumer. Both are nil when
// redis is unavailable, which disables async scans.
type AsyncQueue struct {
	Publisher queue.QueueService
	Consumer  *queue.RedisQueue
}

// ProvideAsyncQueue creates the redis-backed scan queue.
func ProvideAsyncQueue(cfg *config.Config, log *logger.Logger, client *redis.Client, job *usecase.ScanJob) *AsyncQueue {
	if client == nil {
		return &AsyncQueue{}
	}
	consumer := queue.NewRedisConsumer(log, &queue.QueueConfig{
		Workers:    cfg.Queue.Workers,
		RetryLimit: cfg.Queue.RetryLimit,
		RetryDelay: cfg.Queue.RetryDelay,
	}, client, []queue.Job{job})
	publisher := queue.NewRedisPublisher(log, client)
	return &AsyncQueue{Publisher: publisher, Consumer: consumer}
}

// ProvideHandler creates the HTTP handler.
func ProvideHandler(
	scanner *usecase.Scanner,
	reports repository.ReportCache,
	publisher repository.ReportPublisher,
	aq *AsyncQueue,
	log *logger.Logger,
) xhttp.Handler {
	return api.NewScanHandler(scanner, reports, publisher, aq.Publisher, log)
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	log *logger.Logger,
	handler xhttp.Handler,
	aq *AsyncQueue,
	publisher repository.ReportPublisher,
) *server.App {
	return server.New(cfg, log, handler, aq.Consumer, publisher)
}
