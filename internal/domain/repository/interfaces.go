package repository

import (
	"context"

	"rugcheck/internal/domain/models"
)

// Probes never return errors: transport and parse failures are absorbed into
// a SignalResult with Success=false and Risk=UNKNOWN. The aggregator must
// never receive an unhandled failure.

type TokenInfoProbe interface {
	Fetch(ctx context.Context, chain *models.ChainProfile, address string) models.SignalResult[models.TokenInfo]
}

type FunctionScanProbe interface {
	Fetch(ctx context.Context, chain *models.ChainProfile, address string) models.SignalResult[models.FunctionFindings]
}

// LiquidityProbe additionally receives the circulating supply from the token
// info probe to compute market cap; zero means unknown.
type LiquidityProbe interface {
	Fetch(ctx context.Context, chain *models.ChainProfile, address string, circulatingSupply float64) models.SignalResult[models.Liquidity]
}

type HolderProbe interface {
	Fetch(ctx context.Context, chain *models.ChainProfile, address string) models.SignalResult[models.Holders]
}

type HoneypotProbe interface {
	Fetch(ctx context.Context, chain *models.ChainProfile, address string) models.SignalResult[models.Honeypot]
}

type SentimentProbe interface {
	Fetch(ctx context.Context, chain *models.ChainProfile, address string) models.SignalResult[models.Sentiment]
}

type Metrics interface {
	RecordScan(chain, verdict string)
	RecordProbeError(probe string)
	RecordProbeDuration(probe string, seconds float64)
	RecordScore(chain string, points int)
}

// ReportPublisher pushes finished reports to downstream consumers.
type ReportPublisher interface {
	Publish(ctx context.Context, r *models.ScanReport) error
	Close() error
}

// ReportCache is the short-lived TTL store for finished reports.
type ReportCache interface {
	Put(ctx context.Context, r *models.ScanReport) error
	Get(ctx context.Context, chain, address string) (*models.ScanReport, error)
}
