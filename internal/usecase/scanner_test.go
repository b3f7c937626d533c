package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"rugcheck/internal/domain/models"
	"rugcheck/internal/service/chains"
	"rugcheck/pkg/logger"
)

const testAddress = "0xdac17f958d2ee523a2206206994597c13d831ec7"

type stubTokenInfo struct {
	delay time.Duration
	data  models.TokenInfo
	fail  bool
}

func (s stubTokenInfo) Fetch(ctx context.Context, chain *models.ChainProfile, address string) models.SignalResult[models.TokenInfo] {
	time.Sleep(s.delay)
	if s.fail {
		return models.SignalResult[models.TokenInfo]{Risk: models.RiskUnknown, Error: "rpc down"}
	}
	return models.SignalResult[models.TokenInfo]{Success: true, Risk: models.RiskLow, Data: s.data}
}

type stubFunctions struct{}

func (stubFunctions) Fetch(ctx context.Context, chain *models.ChainProfile, address string) models.SignalResult[models.FunctionFindings] {
	return models.SignalResult[models.FunctionFindings]{Success: true, Risk: models.RiskLow}
}

type stubLiquidity struct {
	mu        sync.Mutex
	gotSupply float64
}

func (s *stubLiquidity) Fetch(ctx context.Context, chain *models.ChainProfile, address string, circulatingSupply float64) models.SignalResult[models.Liquidity] {
	s.mu.Lock()
	s.gotSupply = circulatingSupply
	s.mu.Unlock()
	return models.SignalResult[models.Liquidity]{
		Success: true,
		Risk:    models.RiskLow,
		Data:    models.Liquidity{LiquidityUSD: 100_000, SafePercent: 90},
	}
}

type stubHolders struct{}

func (stubHolders) Fetch(ctx context.Context, chain *models.ChainProfile, address string) models.SignalResult[models.Holders] {
	return models.SignalResult[models.Holders]{Success: true, Risk: models.RiskLow}
}

type stubHoneypot struct{}

func (stubHoneypot) Fetch(ctx context.Context, chain *models.ChainProfile, address string) models.SignalResult[models.Honeypot] {
	return models.SignalResult[models.Honeypot]{Success: true, Risk: models.RiskLow}
}

type stubSentiment struct{}

func (stubSentiment) Fetch(ctx context.Context, chain *models.ChainProfile, address string) models.SignalResult[models.Sentiment] {
	return models.SignalResult[models.Sentiment]{Success: true, Risk: models.RiskLow, Data: models.Sentiment{Score: 50}}
}

type stubMetrics struct {
	mu     sync.Mutex
	scans  int
	errors int
}

func (m *stubMetrics) RecordScan(chain, verdict string) {
	m.mu.Lock()
	m.scans++
	m.mu.Unlock()
}

func (m *stubMetrics) RecordProbeError(probe string) {
	m.mu.Lock()
	m.errors++
	m.mu.Unlock()
}

func (m *stubMetrics) RecordProbeDuration(string, float64) {}
func (m *stubMetrics) RecordScore(string, int)             {}

func newTestScanner(ti stubTokenInfo, liq *stubLiquidity, m *stubMetrics) *Scanner {
	return NewScanner(ti, stubFunctions{}, liq, stubHolders{}, stubHoneypot{}, stubSentiment{}, m, logger.Nop(), 5*time.Second)
}

func TestScanProducesReport(t *testing.T) {
	liq := &stubLiquidity{}
	m := &stubMetrics{}
	s := newTestScanner(stubTokenInfo{data: models.TokenInfo{Name: "Tether USD", CirculatingSupply: 1000}}, liq, m)

	report, err := s.Scan(context.Background(), "eth", testAddress)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Chain != "eth" || report.Address != testAddress {
		t.Fatalf("report identity wrong: %s %s", report.Chain, report.Address)
	}
	if report.TokenName != "Tether USD" {
		t.Fatalf("expected token name from token info, got %q", report.TokenName)
	}
	if report.Score.Verdict != models.VerdictLow {
		t.Fatalf("clean stubs must yield LOW, got %s", report.Score.Verdict)
	}
	if m.scans != 1 {
		t.Fatalf("expected 1 recorded scan, got %d", m.scans)
	}
}

func TestScanPassesSupplyToLiquidity(t *testing.T) {
	liq := &stubLiquidity{}
	s := newTestScanner(stubTokenInfo{
		delay: 50 * time.Millisecond,
		data:  models.TokenInfo{CirculatingSupply: 123456},
	}, liq, &stubMetrics{})

	if _, err := s.Scan(context.Background(), "eth", testAddress); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if liq.gotSupply != 123456 {
		t.Fatalf("liquidity probe must receive circulating supply, got %f", liq.gotSupply)
	}
}

func TestScanTokenInfoFailureUnblocksLiquidity(t *testing.T) {
	liq := &stubLiquidity{gotSupply: -1}
	s := newTestScanner(stubTokenInfo{fail: true}, liq, &stubMetrics{})

	report, err := s.Scan(context.Background(), "eth", testAddress)
	if err != nil {
		t.Fatalf("scan must not fail when a probe fails: %v", err)
	}
	if liq.gotSupply != 0 {
		t.Fatalf("failed token info must hand zero supply, got %f", liq.gotSupply)
	}
	if report.Signals.TokenInfo.Success {
		t.Fatal("token info signal should be failed")
	}
	if report.Score.Points == 0 {
		t.Fatal("failed token info must contribute penalty points")
	}
}

func TestScanRejectsBadInput(t *testing.T) {
	s := newTestScanner(stubTokenInfo{}, &stubLiquidity{}, &stubMetrics{})

	if _, err := s.Scan(context.Background(), "solana", testAddress); err == nil {
		t.Fatal("unknown chain must be rejected")
	}
	if _, err := s.Scan(context.Background(), "eth", "0x123"); err == nil {
		t.Fatal("malformed address must be rejected")
	}
	_, err := s.Scan(context.Background(), "eth", "not-an-address")
	if !errors.Is(err, chains.ErrInvalidAddress) {
		t.Fatalf("expected ErrInvalidAddress, got %v", err)
	}
}

func TestScanStreamReportsProgress(t *testing.T) {
	s := newTestScanner(stubTokenInfo{}, &stubLiquidity{}, &stubMetrics{})

	var mu sync.Mutex
	seen := make(map[string]bool)
	_, err := s.ScanStream(context.Background(), "eth", testAddress, func(probe string, success bool) {
		mu.Lock()
		seen[probe] = success
		mu.Unlock()
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(seen) != 6 {
		t.Fatalf("expected 6 progress callbacks, got %d", len(seen))
	}
}
