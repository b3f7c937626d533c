package probes

import (
	"context"

	"rugcheck/internal/domain/models"
	"rugcheck/internal/services/risk"
)

// Sentiment derives a 0..100 market-mood score from DexScreener trade
// counts and price momentum. It is informational only and never moves the
// risk score.
type Sentiment struct {
	dex *DexScreenerClient
}

func NewSentiment(dex *DexScreenerClient) *Sentiment {
	return &Sentiment{dex: dex}
}

func (p *Sentiment) Fetch(ctx context.Context, chain *models.ChainProfile, address string) models.SignalResult[models.Sentiment] {
	pair, err := p.dex.BestPair(ctx, chain, address)
	if err != nil {
		return failure[models.Sentiment]("market data unavailable: " + err.Error())
	}

	s := models.Sentiment{
		PriceChange1h:  pair.PriceChange.H1,
		PriceChange24h: pair.PriceChange.H24,
		Buys24h:        pair.Txns.H24.Buys,
		Sells24h:       pair.Txns.H24.Sells,
	}
	s.Score = SentimentScore(s.Buys24h, s.Sells24h, s.PriceChange24h)

	return success(s, risk.LabelSentiment(s))
}

// SentimentScore blends the 24h buy ratio with price momentum. The buy
// ratio contributes up to 70 points, momentum the remaining 30, with
// momentum saturating at a 50 percent daily move.
func SentimentScore(buys, sells int, change24h float64) float64 {
	score := 35.0 // neutral buy-side baseline when there are no trades
	if total := buys + sells; total > 0 {
		score = float64(buys) / float64(total) * 70
	}

	momentum := change24h / 50
	if momentum > 1 {
		momentum = 1
	}
	if momentum < -1 {
		momentum = -1
	}
	score += 15 + momentum*15

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}
