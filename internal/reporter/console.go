// Package reporter renders scan reports for terminals and chat clients.
package reporter

import (
	"fmt"
	"strings"

	"rugcheck/internal/domain/models"
	"rugcheck/pkg/util"
)

var verdictBadges = map[models.Verdict]string{
	models.VerdictLow:      "🟢",
	models.VerdictMedium:   "🟡",
	models.VerdictHigh:     "🟠",
	models.VerdictCritical: "🔴",
}

// Console renders a plain-text report for terminal output.
func Console(r *models.ScanReport) string {
	var b strings.Builder

	name := r.TokenName
	if name == "" {
		name = util.ShortenAddress(r.Address)
	}
	fmt.Fprintf(&b, "%s %s (%s on %s)\n", verdictBadges[r.Score.Verdict], name, util.ShortenAddress(r.Address), r.Chain)
	fmt.Fprintf(&b, "Risk: %d/100 %s\n\n", r.Score.Points, r.Score.Verdict)

	writeSignal(&b, "Token", r.Signals.TokenInfo.Risk, r.Signals.TokenInfo.Error, tokenLine(r.Signals.TokenInfo))
	writeSignal(&b, "Functions", r.Signals.Functions.Risk, r.Signals.Functions.Error, functionsLine(r.Signals.Functions))
	writeSignal(&b, "Liquidity", r.Signals.Liquidity.Risk, r.Signals.Liquidity.Error, liquidityLine(r.Signals.Liquidity))
	writeSignal(&b, "Holders", r.Signals.Holders.Risk, r.Signals.Holders.Error, holdersLine(r.Signals.Holders))
	writeSignal(&b, "Honeypot", r.Signals.Honeypot.Risk, r.Signals.Honeypot.Error, honeypotLine(r.Signals.Honeypot))
	writeSignal(&b, "Sentiment", r.Signals.Sentiment.Risk, r.Signals.Sentiment.Error, sentimentLine(r.Signals.Sentiment))

	if good := goodSigns(r); len(good) > 0 {
		b.WriteString("\nGood signs:\n")
		for _, g := range good {
			fmt.Fprintf(&b, "  + %s\n", g)
		}
	}

	fmt.Fprintf(&b, "\nScanned at %s\n", r.ScannedAt.Format("2006-01-02 15:04:05 MST"))
	return b.String()
}

// goodSigns collects the positive findings worth calling out explicitly.
func goodSigns(r *models.ScanReport) []string {
	var good []string
	if t := r.Signals.TokenInfo; t.Success {
		if t.Data.OwnerStatus == models.OwnerRenounced {
			good = append(good, "ownership renounced")
		}
		if t.Data.ContractAgeDays != nil && *t.Data.ContractAgeDays >= 365 {
			good = append(good, "contract older than a year")
		}
		if t.Data.BurnedPercent >= 50 {
			good = append(good, fmt.Sprintf("%s of supply burned", util.FormatPercent(t.Data.BurnedPercent)))
		}
	}
	if f := r.Signals.Functions; f.Success && f.Data.Total() == 0 {
		good = append(good, "no dangerous functions in verified source")
	}
	if l := r.Signals.Liquidity; l.Success && l.Data.SafePercent >= 80 {
		good = append(good, fmt.Sprintf("%s of LP burned or locked", util.FormatPercent(l.Data.SafePercent)))
	}
	if h := r.Signals.Honeypot; h.Success && !h.Data.IsHoneypot && !h.Data.CannotSellAll {
		good = append(good, "sell simulation passes")
	}
	return good
}

func writeSignal(b *strings.Builder, label string, risk models.Risk, errMsg, line string) {
	if errMsg != "" {
		fmt.Fprintf(b, "  %-10s [%s] unavailable: %s\n", label, risk, errMsg)
		return
	}
	fmt.Fprintf(b, "  %-10s [%s] %s\n", label, risk, line)
}

func tokenLine(s models.SignalResult[models.TokenInfo]) string {
	t := s.Data
	age := "age unknown"
	if t.ContractAgeDays != nil {
		age = fmt.Sprintf("%dd old", *t.ContractAgeDays)
	}
	return fmt.Sprintf("owner %s, %s, %s burned", t.OwnerStatus, age, util.FormatPercent(t.BurnedPercent))
}

func functionsLine(s models.SignalResult[models.FunctionFindings]) string {
	f := s.Data
	if f.Total() == 0 {
		return "no dangerous functions"
	}
	return fmt.Sprintf("%d critical, %d high, %d medium (%s)", f.Critical, f.High, f.Medium, strings.Join(f.Matches, ", "))
}

func liquidityLine(s models.SignalResult[models.Liquidity]) string {
	l := s.Data
	line := fmt.Sprintf("%s pooled, %s of LP safe", util.FormatUSD(l.LiquidityUSD), util.FormatPercent(l.SafePercent))
	if l.MarketCap > 0 {
		line += fmt.Sprintf(", mcap %s", util.FormatUSD(l.MarketCap))
	}
	return line
}

func holdersLine(s models.SignalResult[models.Holders]) string {
	h := s.Data
	return fmt.Sprintf("top1 %s, top10 %s", util.FormatPercent(h.Top1Percent), util.FormatPercent(h.Top10Percent))
}

func honeypotLine(s models.SignalResult[models.Honeypot]) string {
	h := s.Data
	if h.IsHoneypot {
		return "HONEYPOT, do not buy"
	}
	var flags []string
	if h.CannotBuy {
		flags = append(flags, "cannot buy")
	}
	if h.CannotSellAll {
		flags = append(flags, "cannot sell all")
	}
	if h.OwnerCanChangeBalance {
		flags = append(flags, "owner edits balances")
	}
	if h.HiddenOwner {
		flags = append(flags, "hidden owner")
	}
	if h.CanTakeBackOwnership {
		flags = append(flags, "reclaimable ownership")
	}
	taxes := "taxes unknown"
	if h.BuyTax != nil && h.SellTax != nil {
		taxes = fmt.Sprintf("tax %s/%s", util.FormatPercent(*h.BuyTax), util.FormatPercent(*h.SellTax))
	}
	if len(flags) == 0 {
		return "sellable, " + taxes
	}
	return strings.Join(flags, ", ") + ", " + taxes
}

func sentimentLine(s models.SignalResult[models.Sentiment]) string {
	d := s.Data
	return fmt.Sprintf("mood %.0f/100, 24h %+.1f%%, %d buys / %d sells", d.Score, d.PriceChange24h, d.Buys24h, d.Sells24h)
}
