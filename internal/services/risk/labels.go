package risk

import "rugcheck/internal/domain/models"

// Per-signal categorical labels for the report table. These ladders are kept
// deliberately separate from the point aggregator: they rate one signal in
// isolation and are never summed into the numeric score.

func LabelTokenInfo(t models.TokenInfo) models.Risk {
	young := t.ContractAgeDays != nil && *t.ContractAgeDays < 7
	switch {
	case t.OwnerStatus == models.OwnerActive && young:
		return models.RiskHigh
	case t.OwnerStatus == models.OwnerActive || young:
		return models.RiskMedium
	default:
		return models.RiskLow
	}
}

func LabelFunctions(f models.FunctionFindings) models.Risk {
	switch {
	case f.Critical > 0:
		return models.RiskCritical
	case f.High > 0:
		return models.RiskHigh
	case f.Medium > 0:
		return models.RiskMedium
	default:
		return models.RiskLow
	}
}

func LabelLiquidity(l models.Liquidity) models.Risk {
	switch {
	case l.LiquidityUSD < 10_000 && l.SafePercent < 50:
		return models.RiskCritical
	case l.SafePercent < 50:
		return models.RiskHigh
	case l.LiquidityUSD < 50_000 || l.SafePercent < 80:
		return models.RiskMedium
	default:
		return models.RiskLow
	}
}

func LabelHolders(h models.Holders) models.Risk {
	switch {
	case h.Top1Percent > 30:
		return models.RiskCritical
	case h.Top1Percent > 20 || h.Top10Percent > 70:
		return models.RiskHigh
	case h.Top1Percent > 10 || h.Top10Percent > 50:
		return models.RiskMedium
	default:
		return models.RiskLow
	}
}

func LabelHoneypot(h models.Honeypot) models.Risk {
	sellTax := 0.0
	if h.SellTax != nil {
		sellTax = *h.SellTax
	}
	switch {
	case h.IsHoneypot || h.CannotBuy || h.CannotSellAll:
		return models.RiskCritical
	case h.OwnerCanChangeBalance || h.HiddenOwner || h.CanTakeBackOwnership || sellTax > 20:
		return models.RiskHigh
	case sellTax > 10:
		return models.RiskMedium
	default:
		return models.RiskLow
	}
}

func LabelSentiment(s models.Sentiment) models.Risk {
	switch {
	case s.Score < 20:
		return models.RiskHigh
	case s.Score < 40:
		return models.RiskMedium
	default:
		return models.RiskLow
	}
}
