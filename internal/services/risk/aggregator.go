// Package risk folds the six probe signals into one bounded score and
// verdict. Everything here is pure: no I/O, no clock, no logging.
package risk

import "rugcheck/internal/domain/models"

// Verdict thresholds over the clamped 0-100 score.
const (
	ThresholdCritical = 75
	ThresholdHigh     = 50
	ThresholdMedium   = 25
)

// Penalty points per adverse condition. Contributions are summed, never
// weighted, so a score can be recomputed signal by signal. The honeypot flag
// alone clears ThresholdHigh: honeypot detection dominates the score.
const (
	pointsActiveOwner = 15
	pointsAgeUnder7d  = 10
	pointsAgeUnder30d = 5

	pointsPerCriticalFn = 10
	pointsPerHighFn     = 5
	pointsPerMediumFn   = 2

	pointsLiquidityUnder1k  = 15
	pointsLiquidityUnder10k = 10
	pointsLiquidityUnder50k = 5
	pointsSafeUnder20       = 10
	pointsSafeUnder50       = 7
	pointsSafeUnder80       = 3

	pointsTop1Over30  = 15
	pointsTop1Over20  = 10
	pointsTop1Over10  = 5
	pointsTop10Over70 = 10
	pointsTop10Over50 = 5

	pointsHoneypot        = 50
	pointsCannotBuy       = 20
	pointsCannotSellAll   = 20
	pointsOwnerChangesBal = 15
	pointsHiddenOwner     = 10
	pointsTakeBackOwner   = 10
	pointsSellTaxOver50   = 25
	pointsSellTaxOver20   = 10
	pointsSellTaxOver10   = 5
)

// Flat penalties applied when a signal failed to fetch. Absence of verifiable
// safety data is itself a risk signal, not neutral: an all-failed scan still
// lands well above zero.
const (
	pointsTokenInfoUnknown = 10
	pointsFunctionsUnknown = 15
	pointsLiquidityUnknown = 20
	pointsHoldersUnknown   = 10
	pointsHoneypotUnknown  = 15
)

// Aggregate converts the collected signals into a RiskScore. It accepts any
// combination of failed and successful signals and cannot fail itself.
func Aggregate(s models.Signals) models.RiskScore {
	points := ownershipPoints(s.TokenInfo) +
		functionPoints(s.Functions) +
		liquidityPoints(s.Liquidity) +
		holderPoints(s.Holders) +
		honeypotPoints(s.Honeypot)
	// Sentiment is presentation data only; it contributes no points.

	if points > 100 {
		points = 100
	}
	return models.RiskScore{Points: points, Verdict: VerdictFor(points)}
}

// VerdictFor maps a clamped score to its categorical verdict.
func VerdictFor(points int) models.Verdict {
	switch {
	case points >= ThresholdCritical:
		return models.VerdictCritical
	case points >= ThresholdHigh:
		return models.VerdictHigh
	case points >= ThresholdMedium:
		return models.VerdictMedium
	default:
		return models.VerdictLow
	}
}

func ownershipPoints(r models.SignalResult[models.TokenInfo]) int {
	if !r.Success {
		return pointsTokenInfoUnknown
	}
	p := 0
	if r.Data.OwnerStatus == models.OwnerActive {
		p += pointsActiveOwner
	}
	if r.Data.ContractAgeDays != nil {
		switch age := *r.Data.ContractAgeDays; {
		case age < 7:
			p += pointsAgeUnder7d
		case age < 30:
			p += pointsAgeUnder30d
		}
	}
	return p
}

func functionPoints(r models.SignalResult[models.FunctionFindings]) int {
	if !r.Success {
		// Unverified or unreachable source: penalize the opacity itself.
		return pointsFunctionsUnknown
	}
	return r.Data.Critical*pointsPerCriticalFn +
		r.Data.High*pointsPerHighFn +
		r.Data.Medium*pointsPerMediumFn
}

func liquidityPoints(r models.SignalResult[models.Liquidity]) int {
	if !r.Success {
		return pointsLiquidityUnknown
	}
	p := 0
	switch {
	case r.Data.LiquidityUSD < 1_000:
		p += pointsLiquidityUnder1k
	case r.Data.LiquidityUSD < 10_000:
		p += pointsLiquidityUnder10k
	case r.Data.LiquidityUSD < 50_000:
		p += pointsLiquidityUnder50k
	}
	switch {
	case r.Data.SafePercent < 20:
		p += pointsSafeUnder20
	case r.Data.SafePercent < 50:
		p += pointsSafeUnder50
	case r.Data.SafePercent < 80:
		p += pointsSafeUnder80
	}
	return p
}

func holderPoints(r models.SignalResult[models.Holders]) int {
	if !r.Success {
		return pointsHoldersUnknown
	}
	p := 0
	switch {
	case r.Data.Top1Percent > 30:
		p += pointsTop1Over30
	case r.Data.Top1Percent > 20:
		p += pointsTop1Over20
	case r.Data.Top1Percent > 10:
		p += pointsTop1Over10
	}
	switch {
	case r.Data.Top10Percent > 70:
		p += pointsTop10Over70
	case r.Data.Top10Percent > 50:
		p += pointsTop10Over50
	}
	return p
}

func honeypotPoints(r models.SignalResult[models.Honeypot]) int {
	if !r.Success {
		return pointsHoneypotUnknown
	}
	p := 0
	if r.Data.IsHoneypot {
		p += pointsHoneypot
	}
	if r.Data.CannotBuy {
		p += pointsCannotBuy
	}
	if r.Data.CannotSellAll {
		p += pointsCannotSellAll
	}
	if r.Data.OwnerCanChangeBalance {
		p += pointsOwnerChangesBal
	}
	if r.Data.HiddenOwner {
		p += pointsHiddenOwner
	}
	if r.Data.CanTakeBackOwnership {
		p += pointsTakeBackOwner
	}
	if r.Data.SellTax != nil {
		switch tax := *r.Data.SellTax; {
		case tax > 50:
			p += pointsSellTaxOver50
		case tax > 20:
			p += pointsSellTaxOver20
		case tax > 10:
			p += pointsSellTaxOver10
		}
	}
	return p
}
