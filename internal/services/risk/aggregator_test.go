package risk

import (
	"testing"

	"rugcheck/internal/domain/models"
)

func ok[T any](data T) models.SignalResult[T] {
	return models.SignalResult[T]{Success: true, Risk: models.RiskLow, Data: data}
}

func failed[T any](reason string) models.SignalResult[T] {
	return models.SignalResult[T]{Success: false, Risk: models.RiskUnknown, Error: reason}
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func cleanSignals() models.Signals {
	return models.Signals{
		TokenInfo: ok(models.TokenInfo{
			OwnerStatus:     models.OwnerRenounced,
			ContractAgeDays: intPtr(400),
		}),
		Functions: ok(models.FunctionFindings{}),
		Liquidity: ok(models.Liquidity{LiquidityUSD: 200_000, SafePercent: 95}),
		Holders:   ok(models.Holders{Top1Percent: 5, Top10Percent: 20}),
		Honeypot: ok(models.Honeypot{
			BuyTax:  floatPtr(2),
			SellTax: floatPtr(2),
		}),
		Sentiment: ok(models.Sentiment{Score: 60}),
	}
}

func TestAggregateCleanTokenScoresZero(t *testing.T) {
	got := Aggregate(cleanSignals())
	if got.Points != 0 {
		t.Fatalf("expected 0 points, got %d", got.Points)
	}
	if got.Verdict != models.VerdictLow {
		t.Fatalf("expected LOW, got %s", got.Verdict)
	}
}

func TestAggregateAdverseTokenScoresCritical(t *testing.T) {
	s := models.Signals{
		TokenInfo: ok(models.TokenInfo{
			OwnerStatus:     models.OwnerActive, // +15
			ContractAgeDays: intPtr(3),          // +10
		}),
		Functions: ok(models.FunctionFindings{Critical: 1}),                 // +10
		Liquidity: ok(models.Liquidity{LiquidityUSD: 500, SafePercent: 10}), // +15 +10
		Holders:   ok(models.Holders{Top1Percent: 40, Top10Percent: 80}),    // +15 +10
		Honeypot:  ok(models.Honeypot{SellTax: floatPtr(5)}),                // +0
		Sentiment: ok(models.Sentiment{Score: 50}),
	}
	got := Aggregate(s)
	if got.Points != 85 {
		t.Fatalf("expected 85 points, got %d", got.Points)
	}
	if got.Verdict != models.VerdictCritical {
		t.Fatalf("expected CRITICAL, got %s", got.Verdict)
	}
}

func TestAggregateHoneypotDominates(t *testing.T) {
	s := cleanSignals()
	hp := s.Honeypot.Data
	hp.IsHoneypot = true
	s.Honeypot = ok(hp)

	got := Aggregate(s)
	if got.Points < 50 {
		t.Fatalf("honeypot alone must score at least 50, got %d", got.Points)
	}
	if got.Verdict != models.VerdictHigh && got.Verdict != models.VerdictCritical {
		t.Fatalf("honeypot verdict must be HIGH or CRITICAL, got %s", got.Verdict)
	}

	// Any additional adverse signal pushes a honeypot into CRITICAL.
	s.Liquidity = ok(models.Liquidity{LiquidityUSD: 500, SafePercent: 10})
	got = Aggregate(s)
	if got.Verdict != models.VerdictCritical {
		t.Fatalf("honeypot plus thin liquidity must be CRITICAL, got %s", got.Verdict)
	}
}

func TestAggregateAllSignalsFailedIsNonZero(t *testing.T) {
	s := models.Signals{
		TokenInfo: failed[models.TokenInfo]("rpc timeout"),
		Functions: failed[models.FunctionFindings]("contract source not verified"),
		Liquidity: failed[models.Liquidity]("no liquidity pool found"),
		Holders:   failed[models.Holders]("holders unavailable"),
		Honeypot:  failed[models.Honeypot]("security api down"),
		Sentiment: failed[models.Sentiment]("market data unavailable"),
	}
	got := Aggregate(s)
	want := 10 + 15 + 20 + 10 + 15
	if got.Points != want {
		t.Fatalf("expected %d points for all-failed scan, got %d", want, got.Points)
	}
	if got.Verdict != models.VerdictHigh {
		t.Fatalf("expected HIGH for all-failed scan, got %s", got.Verdict)
	}
}

func TestAggregateClampsAt100(t *testing.T) {
	s := models.Signals{
		TokenInfo: ok(models.TokenInfo{OwnerStatus: models.OwnerActive, ContractAgeDays: intPtr(1)}),
		Functions: ok(models.FunctionFindings{Critical: 10, High: 10, Medium: 10}),
		Liquidity: ok(models.Liquidity{LiquidityUSD: 10, SafePercent: 0}),
		Holders:   ok(models.Holders{Top1Percent: 90, Top10Percent: 99}),
		Honeypot: ok(models.Honeypot{
			IsHoneypot:            true,
			CannotBuy:             true,
			CannotSellAll:         true,
			OwnerCanChangeBalance: true,
			HiddenOwner:           true,
			CanTakeBackOwnership:  true,
			SellTax:               floatPtr(99),
		}),
		Sentiment: ok(models.Sentiment{}),
	}
	got := Aggregate(s)
	if got.Points != 100 {
		t.Fatalf("expected clamp at 100, got %d", got.Points)
	}
	if got.Verdict != models.VerdictCritical {
		t.Fatalf("expected CRITICAL, got %s", got.Verdict)
	}
}

func TestAggregateMonotonicity(t *testing.T) {
	base := cleanSignals()
	prev := Aggregate(base).Points

	steps := []func(*models.Signals){
		func(s *models.Signals) {
			d := s.TokenInfo.Data
			d.OwnerStatus = models.OwnerActive
			s.TokenInfo = ok(d)
		},
		func(s *models.Signals) {
			d := s.TokenInfo.Data
			d.ContractAgeDays = intPtr(3)
			s.TokenInfo = ok(d)
		},
		func(s *models.Signals) { s.Functions = ok(models.FunctionFindings{Critical: 1, High: 2}) },
		func(s *models.Signals) { s.Liquidity = ok(models.Liquidity{LiquidityUSD: 5_000, SafePercent: 40}) },
		func(s *models.Signals) { s.Holders = ok(models.Holders{Top1Percent: 35, Top10Percent: 75}) },
		func(s *models.Signals) {
			d := s.Honeypot.Data
			d.SellTax = floatPtr(30)
			d.HiddenOwner = true
			s.Honeypot = ok(d)
		},
	}
	for i, step := range steps {
		step(&base)
		got := Aggregate(base).Points
		if got < prev {
			t.Fatalf("step %d: score decreased from %d to %d after adding an adverse finding", i, prev, got)
		}
		prev = got
	}
}

func TestAggregateIdempotent(t *testing.T) {
	s := cleanSignals()
	s.Holders = ok(models.Holders{Top1Percent: 25, Top10Percent: 60})
	a := Aggregate(s)
	b := Aggregate(s)
	if a != b {
		t.Fatalf("aggregate not idempotent: %+v vs %+v", a, b)
	}
}

func TestVerdictThresholdBoundaries(t *testing.T) {
	cases := []struct {
		points int
		want   models.Verdict
	}{
		{0, models.VerdictLow},
		{24, models.VerdictLow},
		{25, models.VerdictMedium},
		{49, models.VerdictMedium},
		{50, models.VerdictHigh},
		{74, models.VerdictHigh},
		{75, models.VerdictCritical},
		{100, models.VerdictCritical},
	}
	for _, c := range cases {
		if got := VerdictFor(c.points); got != c.want {
			t.Errorf("VerdictFor(%d) = %s, want %s", c.points, got, c.want)
		}
	}
}

func TestNilTaxesAreNeutral(t *testing.T) {
	s := cleanSignals()
	s.Honeypot = ok(models.Honeypot{}) // taxes unknown
	got := Aggregate(s)
	if got.Points != 0 {
		t.Fatalf("nil taxes should not add points, got %d", got.Points)
	}
}

func TestUnknownAgeAddsNothing(t *testing.T) {
	s := cleanSignals()
	d := s.TokenInfo.Data
	d.ContractAgeDays = nil
	s.TokenInfo = ok(d)
	if got := Aggregate(s); got.Points != 0 {
		t.Fatalf("unknown age should be neutral, got %d points", got.Points)
	}
}
