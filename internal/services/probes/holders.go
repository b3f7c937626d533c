package probes

import (
	"context"
	"fmt"
	"strings"

	"rugcheck/internal/domain/models"
	"rugcheck/internal/services/risk"
	xhttp "rugcheck/pkg/http"
	"rugcheck/pkg/logger"
)

type moralisOwner struct {
	OwnerAddress string  `json:"owner_address"`
	Percentage   float64 `json:"percentage_relative_to_total_supply"`
}

type moralisOwnersResponse struct {
	Result []moralisOwner `json:"result"`
}

// Holders measures top-holder concentration. Moralis is the primary source;
// when it is unavailable or unconfigured the probe degrades to the holder
// list in the GoPlus report.
type Holders struct {
	http    *xhttp.Client
	goplus  *GoPlusClient
	baseURL string
	apiKey  string
	log     *logger.Logger
}

func NewHolders(http *xhttp.Client, goplus *GoPlusClient, baseURL, apiKey string, log *logger.Logger) *Holders {
	return &Holders{
		http:    http,
		goplus:  goplus,
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		log:     log,
	}
}

func (p *Holders) Fetch(ctx context.Context, chain *models.ChainProfile, address string) models.SignalResult[models.Holders] {
	if p.apiKey != "" {
		if h, err := p.fromMoralis(ctx, chain, address); err == nil {
			return success(h, risk.LabelHolders(h))
		} else {
			p.log.Warn("moralis holders failed, trying goplus",
				logger.String("chain", chain.ID),
				logger.String("address", address),
				logger.Error(err))
		}
	}

	h, err := p.fromGoPlus(ctx, chain, address)
	if err != nil {
		return failure[models.Holders]("holder data unavailable: " + err.Error())
	}
	return success(h, risk.LabelHolders(h))
}

func (p *Holders) fromMoralis(ctx context.Context, chain *models.ChainProfile, address string) (models.Holders, error) {
	url := fmt.Sprintf("%s/erc20/%s/owners", p.baseURL, address)
	var resp moralisOwnersResponse
	err := p.http.GetJSON(ctx, url, map[string][]string{
		"chain": {chain.ID},
		"order": {"DESC"},
		"limit": {"10"},
	}, map[string]string{"X-API-Key": p.apiKey}, &resp)
	if err != nil {
		return models.Holders{}, err
	}
	if len(resp.Result) == 0 {
		return models.Holders{}, fmt.Errorf("moralis returned no holders")
	}

	h := models.Holders{Source: "moralis"}
	for i, owner := range resp.Result {
		// Burn addresses don't count toward concentration.
		if chain.IsBurnAddress(owner.OwnerAddress) {
			continue
		}
		if h.Top1Percent == 0 {
			h.Top1Percent = owner.Percentage
		}
		if i < 10 {
			h.Top10Percent += owner.Percentage
		}
	}
	return h, nil
}

func (p *Holders) fromGoPlus(ctx context.Context, chain *models.ChainProfile, address string) (models.Holders, error) {
	token, err := p.goplus.TokenSecurity(ctx, chain, address)
	if err != nil {
		return models.Holders{}, err
	}
	if len(token.Holders) == 0 {
		return models.Holders{}, fmt.Errorf("goplus report has no holder list")
	}

	h := models.Holders{Source: "goplus"}
	if count, ok := gpFloat(token.HolderCount); ok {
		h.HolderCount = int(count)
	}
	rank := 0
	for _, holder := range token.Holders {
		if chain.IsBurnAddress(holder.Address) {
			continue
		}
		share, ok := gpFloat(holder.Percent)
		if !ok {
			continue
		}
		pct := share * 100
		if rank == 0 {
			h.Top1Percent = pct
		}
		if rank < 10 {
			h.Top10Percent += pct
		}
		rank++
	}
	return h, nil
}
