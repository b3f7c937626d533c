package probes

import "testing"

func TestSentimentScoreBuyHeavyMarket(t *testing.T) {
	bullish := SentimentScore(900, 100, 20)
	bearish := SentimentScore(100, 900, -20)
	if bullish <= bearish {
		t.Fatalf("buy-heavy market must score higher: %f vs %f", bullish, bearish)
	}
	if bullish > 100 || bearish < 0 {
		t.Fatalf("score out of range: %f, %f", bullish, bearish)
	}
}

func TestSentimentScoreNoTradesIsNeutral(t *testing.T) {
	got := SentimentScore(0, 0, 0)
	if got != 50 {
		t.Fatalf("no trades and flat price must be neutral 50, got %f", got)
	}
}

func TestSentimentScoreMomentumSaturates(t *testing.T) {
	capped := SentimentScore(500, 500, 50)
	beyond := SentimentScore(500, 500, 500)
	if capped != beyond {
		t.Fatalf("momentum must saturate at 50%%: %f vs %f", capped, beyond)
	}
}

func TestSentimentScoreBounds(t *testing.T) {
	if got := SentimentScore(0, 1000, -500); got < 0 {
		t.Fatalf("score must not go below 0, got %f", got)
	}
	if got := SentimentScore(1000, 0, 500); got > 100 {
		t.Fatalf("score must not exceed 100, got %f", got)
	}
}
