package reporter

import (
	"strings"
	"testing"
	"time"

	"rugcheck/internal/domain/models"
)

func sampleReport() *models.ScanReport {
	age := 3
	sellTax := 12.0
	buyTax := 1.0
	return &models.ScanReport{
		Chain:     "eth",
		Address:   "0xdac17f958d2ee523a2206206994597c13d831ec7",
		TokenName: "Sample Token",
		Signals: models.Signals{
			TokenInfo: models.SignalResult[models.TokenInfo]{
				Success: true, Risk: models.RiskHigh,
				Data: models.TokenInfo{OwnerStatus: models.OwnerActive, ContractAgeDays: &age},
			},
			Functions: models.SignalResult[models.FunctionFindings]{
				Success: true, Risk: models.RiskMedium,
				Data: models.FunctionFindings{High: 1, Matches: []string{"setfee"}},
			},
			Liquidity: models.SignalResult[models.Liquidity]{
				Success: true, Risk: models.RiskMedium,
				Data: models.Liquidity{LiquidityUSD: 8_000, SafePercent: 60, MarketCap: 1_500_000},
			},
			Holders: models.SignalResult[models.Holders]{
				Risk: models.RiskUnknown, Error: "holder data unavailable",
			},
			Honeypot: models.SignalResult[models.Honeypot]{
				Success: true, Risk: models.RiskMedium,
				Data: models.Honeypot{BuyTax: &buyTax, SellTax: &sellTax, HiddenOwner: true},
			},
			Sentiment: models.SignalResult[models.Sentiment]{
				Success: true, Risk: models.RiskLow,
				Data: models.Sentiment{Score: 62, PriceChange24h: -4.2, Buys24h: 120, Sells24h: 80},
			},
		},
		Score:     models.RiskScore{Points: 55, Verdict: models.VerdictHigh},
		ScannedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestConsoleReport(t *testing.T) {
	out := Console(sampleReport())

	for _, want := range []string{
		"Sample Token",
		"Risk: 55/100 HIGH",
		"owner active",
		"3d old",
		"holder data unavailable",
		"hidden owner",
		"sell simulation passes",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("console report missing %q:\n%s", want, out)
		}
	}
}

func TestMarkdownReportEscapes(t *testing.T) {
	r := sampleReport()
	r.TokenName = "Weird.Token!"
	out := Markdown(r)

	if !strings.Contains(out, `Weird\.Token\!`) {
		t.Fatalf("token name not escaped:\n%s", out)
	}
	if !strings.Contains(out, "`0xdac17f958d2ee523a2206206994597c13d831ec7`") {
		t.Fatalf("address must stay unescaped inside code span:\n%s", out)
	}
}

func TestEscapeMarkdown(t *testing.T) {
	got := EscapeMarkdown("a_b*c[d]e.f")
	want := `a\_b\*c\[d\]e\.f`
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}
