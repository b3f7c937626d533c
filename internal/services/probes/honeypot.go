package probes

import (
	"context"

	"rugcheck/internal/domain/models"
	"rugcheck/internal/services/risk"
)

// Honeypot reads sellability and tax flags from the GoPlus report. GoPlus
// expresses taxes as fractions, so 0.05 becomes 5 percent here; a missing
// tax stays nil and scores nothing.
type Honeypot struct {
	goplus *GoPlusClient
}

func NewHoneypot(goplus *GoPlusClient) *Honeypot {
	return &Honeypot{goplus: goplus}
}

func (p *Honeypot) Fetch(ctx context.Context, chain *models.ChainProfile, address string) models.SignalResult[models.Honeypot] {
	token, err := p.goplus.TokenSecurity(ctx, chain, address)
	if err != nil {
		return failure[models.Honeypot]("security report unavailable: " + err.Error())
	}

	hp := models.Honeypot{
		IsHoneypot:            gpBool(token.IsHoneypot),
		CannotBuy:             gpBool(token.CannotBuy),
		CannotSellAll:         gpBool(token.CannotSellAll),
		OwnerCanChangeBalance: gpBool(token.OwnerChangeBalance),
		HiddenOwner:           gpBool(token.HiddenOwner),
		CanTakeBackOwnership:  gpBool(token.CanTakeBackOwnership),
	}
	if tax, ok := gpFloat(token.BuyTax); ok {
		pct := tax * 100
		hp.BuyTax = &pct
	}
	if tax, ok := gpFloat(token.SellTax); ok {
		pct := tax * 100
		hp.SellTax = &pct
	}

	return success(hp, risk.LabelHoneypot(hp))
}
