package risk

import (
	"testing"

	"rugcheck/internal/domain/models"
)

func TestLabelLiquidityLadder(t *testing.T) {
	cases := []struct {
		usd  float64
		safe float64
		want models.Risk
	}{
		{5_000, 30, models.RiskCritical},
		{100_000, 30, models.RiskHigh},
		{30_000, 90, models.RiskMedium},
		{100_000, 70, models.RiskMedium},
		{100_000, 95, models.RiskLow},
	}
	for _, c := range cases {
		got := LabelLiquidity(models.Liquidity{LiquidityUSD: c.usd, SafePercent: c.safe})
		if got != c.want {
			t.Errorf("LabelLiquidity(usd=%.0f safe=%.0f) = %s, want %s", c.usd, c.safe, got, c.want)
		}
	}
}

func TestLabelHoneypot(t *testing.T) {
	if got := LabelHoneypot(models.Honeypot{IsHoneypot: true}); got != models.RiskCritical {
		t.Fatalf("honeypot must label CRITICAL, got %s", got)
	}
	tax := 25.0
	if got := LabelHoneypot(models.Honeypot{SellTax: &tax}); got != models.RiskHigh {
		t.Fatalf("25%% sell tax must label HIGH, got %s", got)
	}
	if got := LabelHoneypot(models.Honeypot{}); got != models.RiskLow {
		t.Fatalf("clean token must label LOW, got %s", got)
	}
}

func TestLabelHolders(t *testing.T) {
	if got := LabelHolders(models.Holders{Top1Percent: 45}); got != models.RiskCritical {
		t.Fatalf("top1=45 must label CRITICAL, got %s", got)
	}
	if got := LabelHolders(models.Holders{Top1Percent: 8, Top10Percent: 55}); got != models.RiskMedium {
		t.Fatalf("top10=55 must label MEDIUM, got %s", got)
	}
	if got := LabelHolders(models.Holders{Top1Percent: 3, Top10Percent: 15}); got != models.RiskLow {
		t.Fatalf("dispersed holders must label LOW, got %s", got)
	}
}

func TestLabelTokenInfo(t *testing.T) {
	age := 2
	got := LabelTokenInfo(models.TokenInfo{OwnerStatus: models.OwnerActive, ContractAgeDays: &age})
	if got != models.RiskHigh {
		t.Fatalf("fresh contract with active owner must label HIGH, got %s", got)
	}
	if got := LabelTokenInfo(models.TokenInfo{OwnerStatus: models.OwnerRenounced}); got != models.RiskLow {
		t.Fatalf("renounced owner must label LOW, got %s", got)
	}
}

func TestLabelFunctions(t *testing.T) {
	if got := LabelFunctions(models.FunctionFindings{Critical: 1}); got != models.RiskCritical {
		t.Fatalf("critical finding must label CRITICAL, got %s", got)
	}
	if got := LabelFunctions(models.FunctionFindings{Medium: 3}); got != models.RiskMedium {
		t.Fatalf("medium findings must label MEDIUM, got %s", got)
	}
	if got := LabelFunctions(models.FunctionFindings{}); got != models.RiskLow {
		t.Fatalf("no findings must label LOW, got %s", got)
	}
}
