package probes

import (
	"context"
	"fmt"
	"strings"

	"rugcheck/internal/domain/models"
	icache "rugcheck/internal/service/cache"
	"rugcheck/internal/services/risk"
	xhttp "rugcheck/pkg/http"
	"rugcheck/pkg/logger"
)

// CoinGecko platform identifiers per chain, used by the token price
// fallback when DexScreener has a pool but no USD price.
var geckoPlatforms = map[string]string{
	"eth":     "ethereum",
	"bsc":     "binance-smart-chain",
	"polygon": "polygon-pos",
	"base":    "base",
}

// Liquidity measures the token's deepest pool and how much of the LP
// supply is burned or locked. Market cap is derived from the circulating
// supply handed over by the token info probe.
type Liquidity struct {
	dex       *DexScreenerClient
	goplus    *GoPlusClient
	http      *xhttp.Client
	geckoBase string
	prices    *icache.PriceCache
	log       *logger.Logger
}

func NewLiquidity(dex *DexScreenerClient, goplus *GoPlusClient, http *xhttp.Client, geckoBase string, prices *icache.PriceCache, log *logger.Logger) *Liquidity {
	return &Liquidity{
		dex:       dex,
		goplus:    goplus,
		http:      http,
		geckoBase: strings.TrimRight(geckoBase, "/"),
		prices:    prices,
		log:       log,
	}
}

func (p *Liquidity) Fetch(ctx context.Context, chain *models.ChainProfile, address string, circulatingSupply float64) models.SignalResult[models.Liquidity] {
	pair, err := p.dex.BestPair(ctx, chain, address)
	if err != nil {
		return failure[models.Liquidity](err.Error())
	}

	liq := models.Liquidity{
		LiquidityUSD: pair.Liquidity.USD,
		PairAddress:  pair.PairAddress,
		Dex:          pair.DexID,
	}

	if price, ok := pair.priceUSD(); ok {
		liq.PriceUSD = price
	} else if price, ok := p.tokenPrice(ctx, chain, address); ok {
		liq.PriceUSD = price
	}
	if circulatingSupply > 0 && liq.PriceUSD > 0 {
		liq.MarketCap = liq.PriceUSD * circulatingSupply
	}

	liq.SafePercent = p.safePercent(ctx, chain, address)

	return success(liq, risk.LabelLiquidity(liq))
}

// safePercent sums the LP share held by burn addresses, known lockers and
// holders GoPlus flags as locked. Unknown LP data degrades to zero, which
// the score treats as fully unsafe.
func (p *Liquidity) safePercent(ctx context.Context, chain *models.ChainProfile, address string) float64 {
	token, err := p.goplus.TokenSecurity(ctx, chain, address)
	if err != nil {
		p.log.Debug("lp holders unavailable",
			logger.String("chain", chain.ID),
			logger.String("address", address),
			logger.Error(err))
		return 0
	}

	var safe float64
	for _, h := range token.LPHolders {
		share, ok := gpFloat(h.Percent)
		if !ok {
			continue
		}
		if h.IsLocked == 1 || chain.IsBurnAddress(h.Address) || chain.IsLockerAddress(h.Address) {
			safe += share * 100
		}
	}
	if safe > 100 {
		safe = 100
	}
	return safe
}

type geckoTokenPrice map[string]struct {
	USD float64 `json:"usd"`
}

// tokenPrice is the CoinGecko fallback, cached per chain and token for a
// short window.
func (p *Liquidity) tokenPrice(ctx context.Context, chain *models.ChainProfile, address string) (float64, bool) {
	platform, ok := geckoPlatforms[chain.ID]
	if !ok {
		return 0, false
	}
	key := chain.ID + ":" + address
	if price, ok := p.prices.Get(key); ok {
		return price, true
	}

	url := fmt.Sprintf("%s/simple/token_price/%s", p.geckoBase, platform)
	var resp geckoTokenPrice
	err := p.http.GetJSON(ctx, url, map[string][]string{
		"contract_addresses": {address},
		"vs_currencies":      {"usd"},
	}, nil, &resp)
	if err != nil {
		p.log.Debug("coingecko price unavailable",
			logger.String("chain", chain.ID),
			logger.Error(err))
		return 0, false
	}
	entry, ok := resp[strings.ToLower(address)]
	if !ok || entry.USD == 0 {
		return 0, false
	}
	p.prices.Set(key, entry.USD)
	return entry.USD, true
}
