package probes

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"rugcheck/internal/domain/models"
	icache "rugcheck/internal/service/cache"
	xhttp "rugcheck/pkg/http"
)

// goPlusToken is the slice of the token_security payload the probes read.
// GoPlus encodes booleans as the strings "0" and "1" and numbers as
// decimal strings, hence the helpers below.
type goPlusToken struct {
	OwnerAddress         string         `json:"owner_address"`
	CreatorAddress       string         `json:"creator_address"`
	IsOpenSource         string         `json:"is_open_source"`
	IsHoneypot           string         `json:"is_honeypot"`
	CannotBuy            string         `json:"cannot_buy"`
	CannotSellAll        string         `json:"cannot_sell_all"`
	OwnerChangeBalance   string         `json:"owner_change_balance"`
	HiddenOwner          string         `json:"hidden_owner"`
	CanTakeBackOwnership string         `json:"can_take_back_ownership"`
	BuyTax               string         `json:"buy_tax"`
	SellTax              string         `json:"sell_tax"`
	HolderCount          string         `json:"holder_count"`
	TotalSupply          string         `json:"total_supply"`
	Holders              []goPlusHolder `json:"holders"`
	LPHolders            []goPlusHolder `json:"lp_holders"`
}

type goPlusHolder struct {
	Address  string `json:"address"`
	Percent  string `json:"percent"`
	IsLocked int    `json:"is_locked"`
	Tag      string `json:"tag"`
}

type goPlusResponse struct {
	Code    int                    `json:"code"`
	Message string                 `json:"message"`
	Result  map[string]goPlusToken `json:"result"`
}

// GoPlusClient fetches token_security reports. Responses are cached for a
// short window because three probes read the same payload per scan.
type GoPlusClient struct {
	http    *xhttp.Client
	baseURL string
	cache   *icache.TTLCache
	ttl     time.Duration
}

func NewGoPlusClient(http *xhttp.Client, baseURL string, ttl time.Duration) *GoPlusClient {
	return &GoPlusClient{
		http:    http,
		baseURL: strings.TrimRight(baseURL, "/"),
		cache:   icache.NewTTLCache(),
		ttl:     ttl,
	}
}

// TokenSecurity returns the GoPlus report for a token, from cache when fresh.
func (g *GoPlusClient) TokenSecurity(ctx context.Context, chain *models.ChainProfile, address string) (*goPlusToken, error) {
	key := chain.GoPlusChainID + ":" + address
	if hit, ok := icache.GetTyped[*goPlusToken](g.cache, key); ok {
		return hit, nil
	}

	url := fmt.Sprintf("%s/token_security/%s", g.baseURL, chain.GoPlusChainID)
	var resp goPlusResponse
	err := g.http.GetJSON(ctx, url, map[string][]string{
		"contract_addresses": {address},
	}, nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("goplus request: %w", err)
	}
	if resp.Code != 1 {
		return nil, fmt.Errorf("goplus code %d: %s", resp.Code, resp.Message)
	}

	token, ok := resp.Result[strings.ToLower(address)]
	if !ok {
		return nil, fmt.Errorf("goplus has no data for %s", address)
	}
	g.cache.Set(key, &token, g.ttl)
	return &token, nil
}

// gpBool reads a GoPlus "0"/"1" string field. Anything else is false.
func gpBool(s string) bool {
	return s == "1"
}

// gpFloat reads a GoPlus decimal string. The second return is false when
// the field is absent or unparseable.
func gpFloat(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
