package probes

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"rugcheck/internal/domain/models"
	xhttp "rugcheck/pkg/http"
)

type dexPair struct {
	ChainID     string `json:"chainId"`
	DexID       string `json:"dexId"`
	PairAddress string `json:"pairAddress"`
	PriceUSD    string `json:"priceUsd"`
	Liquidity   struct {
		USD float64 `json:"usd"`
	} `json:"liquidity"`
	Txns struct {
		H24 struct {
			Buys  int `json:"buys"`
			Sells int `json:"sells"`
		} `json:"h24"`
	} `json:"txns"`
	PriceChange struct {
		H1  float64 `json:"h1"`
		H24 float64 `json:"h24"`
	} `json:"priceChange"`
}

type dexScreenerResponse struct {
	Pairs []dexPair `json:"pairs"`
}

// DexScreenerClient finds the token's trading pairs across DEXes.
type DexScreenerClient struct {
	http    *xhttp.Client
	baseURL string
}

func NewDexScreenerClient(http *xhttp.Client, baseURL string) *DexScreenerClient {
	return &DexScreenerClient{http: http, baseURL: strings.TrimRight(baseURL, "/")}
}

// BestPair returns the token's deepest pool on the given chain.
func (d *DexScreenerClient) BestPair(ctx context.Context, chain *models.ChainProfile, address string) (*dexPair, error) {
	url := fmt.Sprintf("%s/latest/dex/tokens/%s", d.baseURL, address)
	var resp dexScreenerResponse
	if err := d.http.GetJSON(ctx, url, nil, nil, &resp); err != nil {
		return nil, fmt.Errorf("dexscreener request: %w", err)
	}

	var best *dexPair
	for i := range resp.Pairs {
		p := &resp.Pairs[i]
		if p.ChainID != chain.DexScreenerID {
			continue
		}
		if best == nil || p.Liquidity.USD > best.Liquidity.USD {
			best = p
		}
	}
	if best == nil {
		return nil, fmt.Errorf("no liquidity pool found")
	}
	return best, nil
}

func (p *dexPair) priceUSD() (float64, bool) {
	return gpFloatFromDex(p.PriceUSD)
}

func gpFloatFromDex(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
