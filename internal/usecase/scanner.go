// Package usecase wires the six signal probes into a scan and hands the
// collected signals to the risk aggregator.
package usecase

import (
	"context"
	"sync"
	"time"

	"rugcheck/internal/domain/models"
	"rugcheck/internal/domain/repository"
	"rugcheck/internal/service/chains"
	"rugcheck/internal/services/probes"
	"rugcheck/internal/services/risk"
	"rugcheck/pkg/logger"
)

// ProgressFunc is invoked as each probe finishes, in completion order.
// Stream handlers use it to push per-signal frames before the full report.
type ProgressFunc func(probe string, success bool)

// Scanner fans out to all six probes concurrently and aggregates their
// signals into a scored report. Probes are independent except for one edge:
// the liquidity probe waits for the token info probe's circulating supply.
type Scanner struct {
	tokenInfo repository.TokenInfoProbe
	functions repository.FunctionScanProbe
	liquidity repository.LiquidityProbe
	holders   repository.HolderProbe
	honeypot  repository.HoneypotProbe
	sentiment repository.SentimentProbe

	metrics      repository.Metrics
	log          *logger.Logger
	probeTimeout time.Duration
}

func NewScanner(
	tokenInfo repository.TokenInfoProbe,
	functions repository.FunctionScanProbe,
	liquidity repository.LiquidityProbe,
	holders repository.HolderProbe,
	honeypot repository.HoneypotProbe,
	sentiment repository.SentimentProbe,
	metrics repository.Metrics,
	log *logger.Logger,
	probeTimeout time.Duration,
) *Scanner {
	if probeTimeout <= 0 {
		probeTimeout = 15 * time.Second
	}
	return &Scanner{
		tokenInfo:    tokenInfo,
		functions:    functions,
		liquidity:    liquidity,
		holders:      holders,
		honeypot:     honeypot,
		sentiment:    sentiment,
		metrics:      metrics,
		log:          log,
		probeTimeout: probeTimeout,
	}
}

// Scan runs a full scan. The only errors it returns are input errors; a
// token where every upstream source failed still yields a report.
func (s *Scanner) Scan(ctx context.Context, chainID, address string) (*models.ScanReport, error) {
	return s.ScanStream(ctx, chainID, address, nil)
}

// ScanStream is Scan with a per-probe completion callback.
func (s *Scanner) ScanStream(ctx context.Context, chainID, address string, onProbe ProgressFunc) (*models.ScanReport, error) {
	chain, err := chains.Lookup(chainID)
	if err != nil {
		return nil, err
	}
	addr, err := chains.NormalizeAddress(address)
	if err != nil {
		return nil, err
	}

	started := time.Now()
	s.log.Info("scan started",
		logger.String("chain", chain.ID),
		logger.String("address", addr))

	var signals models.Signals

	// The token info probe publishes circulating supply exactly once, even
	// on failure, so the liquidity probe can never block forever.
	supplyCh := make(chan float64, 1)

	var wg sync.WaitGroup
	wg.Add(6)

	go func() {
		defer wg.Done()
		signals.TokenInfo = runProbe(ctx, s, probes.NameTokenInfo, onProbe,
			func(ctx context.Context) models.SignalResult[models.TokenInfo] {
				return s.tokenInfo.Fetch(ctx, chain, addr)
			})
		supplyCh <- signals.TokenInfo.Data.CirculatingSupply
	}()
	go func() {
		defer wg.Done()
		signals.Functions = runProbe(ctx, s, probes.NameFunctions, onProbe,
			func(ctx context.Context) models.SignalResult[models.FunctionFindings] {
				return s.functions.Fetch(ctx, chain, addr)
			})
	}()
	go func() {
		defer wg.Done()
		supply := <-supplyCh
		signals.Liquidity = runProbe(ctx, s, probes.NameLiquidity, onProbe,
			func(ctx context.Context) models.SignalResult[models.Liquidity] {
				return s.liquidity.Fetch(ctx, chain, addr, supply)
			})
	}()
	go func() {
		defer wg.Done()
		signals.Holders = runProbe(ctx, s, probes.NameHolders, onProbe,
			func(ctx context.Context) models.SignalResult[models.Holders] {
				return s.holders.Fetch(ctx, chain, addr)
			})
	}()
	go func() {
		defer wg.Done()
		signals.Honeypot = runProbe(ctx, s, probes.NameHoneypot, onProbe,
			func(ctx context.Context) models.SignalResult[models.Honeypot] {
				return s.honeypot.Fetch(ctx, chain, addr)
			})
	}()
	go func() {
		defer wg.Done()
		signals.Sentiment = runProbe(ctx, s, probes.NameSentiment, onProbe,
			func(ctx context.Context) models.SignalResult[models.Sentiment] {
				return s.sentiment.Fetch(ctx, chain, addr)
			})
	}()

	wg.Wait()

	score := risk.Aggregate(signals)
	report := &models.ScanReport{
		Chain:     chain.ID,
		Address:   addr,
		TokenName: signals.TokenInfo.Data.Name,
		Signals:   signals,
		Score:     score,
		ScannedAt: time.Now().UTC(),
	}

	s.metrics.RecordScan(chain.ID, string(score.Verdict))
	s.metrics.RecordScore(chain.ID, score.Points)
	s.log.Info("scan finished",
		logger.String("chain", chain.ID),
		logger.String("address", addr),
		logger.Int("points", score.Points),
		logger.String("verdict", string(score.Verdict)),
		logger.Duration("took", time.Since(started)))

	return report, nil
}

// runProbe applies the per-probe timeout, records metrics and reports
// progress. Each probe gets its own deadline; one slow source never
// cancels the others.
func runProbe[T any](ctx context.Context, s *Scanner, name string, onProbe ProgressFunc, fetch func(context.Context) models.SignalResult[T]) models.SignalResult[T] {
	probeCtx, cancel := context.WithTimeout(ctx, s.probeTimeout)
	defer cancel()

	started := time.Now()
	result := fetch(probeCtx)
	s.metrics.RecordProbeDuration(name, time.Since(started).Seconds())

	if !result.Success {
		s.metrics.RecordProbeError(name)
		s.log.Warn("probe failed",
			logger.String("probe", name),
			logger.String("reason", result.Error))
	}
	if onProbe != nil {
		onProbe(name, result.Success)
	}
	return result
}
