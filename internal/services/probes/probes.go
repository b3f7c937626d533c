package probes

import (
	"rugcheck/internal/domain/models"
)

// Probe names used for metrics labels and progress frames.
const (
	NameTokenInfo = "tokeninfo"
	NameFunctions = "functions"
	NameLiquidity = "liquidity"
	NameHolders   = "holders"
	NameHoneypot  = "honeypot"
	NameSentiment = "sentiment"
)

func success[T any](data T, risk models.Risk) models.SignalResult[T] {
	return models.SignalResult[T]{Success: true, Risk: risk, Data: data}
}

func failure[T any](reason string) models.SignalResult[T] {
	return models.SignalResult[T]{Success: false, Risk: models.RiskUnknown, Error: reason}
}
