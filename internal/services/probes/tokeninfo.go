package probes

import (
	"context"
	"math/big"
	"strings"
	"time"

	"rugcheck/internal/domain/models"
	"rugcheck/internal/services/risk"
	"rugcheck/pkg/logger"
)

const zeroAddress = "0x0000000000000000000000000000000000000000"

// TokenInfo reads on-chain metadata: name, symbol, supply, ownership state
// and the burned share of supply. Contract age comes from the explorer's
// transaction history and is optional.
type TokenInfo struct {
	rpc      *RPCClient
	explorer *ExplorerClient
	log      *logger.Logger
	now      func() time.Time
}

func NewTokenInfo(rpc *RPCClient, explorer *ExplorerClient, log *logger.Logger) *TokenInfo {
	return &TokenInfo{rpc: rpc, explorer: explorer, log: log, now: time.Now}
}

func (p *TokenInfo) Fetch(ctx context.Context, chain *models.ChainProfile, address string) models.SignalResult[models.TokenInfo] {
	hasCode, err := p.rpc.HasCode(ctx, chain, address)
	if err != nil {
		return failure[models.TokenInfo]("code check failed: " + err.Error())
	}
	if !hasCode {
		return failure[models.TokenInfo]("address is not a contract")
	}

	totalRaw, err := p.rpc.CallUint(ctx, chain, address, selTotalSupply)
	if err != nil {
		return failure[models.TokenInfo]("totalSupply call failed: " + err.Error())
	}

	info := models.TokenInfo{Decimals: 18}
	if d, err := p.rpc.CallUint(ctx, chain, address, selDecimals); err == nil && d.IsInt64() {
		info.Decimals = int(d.Int64())
	}
	if name, err := p.rpc.CallString(ctx, chain, address, selName); err == nil {
		info.Name = name
	}
	if symbol, err := p.rpc.CallString(ctx, chain, address, selSymbol); err == nil {
		info.Symbol = symbol
	}
	info.TotalSupply = tokensFromRaw(totalRaw, info.Decimals)

	info.OwnerStatus, info.OwnerAddress = p.ownerStatus(ctx, chain, address)

	burned := p.burnedSupply(ctx, chain, address)
	info.CirculatingSupply = info.TotalSupply - tokensFromRaw(burned, info.Decimals)
	if info.CirculatingSupply < 0 {
		info.CirculatingSupply = 0
	}
	if info.TotalSupply > 0 {
		info.BurnedPercent = tokensFromRaw(burned, info.Decimals) / info.TotalSupply * 100
	}

	if first, err := p.explorer.FirstTxTime(ctx, chain, address); err == nil {
		days := int(p.now().Sub(first).Hours() / 24)
		info.ContractAgeDays = &days
	} else {
		p.log.Debug("contract age unavailable",
			logger.String("chain", chain.ID),
			logger.String("address", address),
			logger.Error(err))
	}

	return success(info, risk.LabelTokenInfo(info))
}

// ownerStatus probes owner() and the BEP-20 getOwner() variant. A contract
// with neither is treated as having no owner function at all.
func (p *TokenInfo) ownerStatus(ctx context.Context, chain *models.ChainProfile, address string) (models.OwnerStatus, string) {
	for _, sel := range []string{selOwner, selGetOwner} {
		owner, err := p.rpc.CallAddress(ctx, chain, address, sel)
		if err != nil {
			continue
		}
		if strings.EqualFold(owner, zeroAddress) || chain.IsBurnAddress(owner) {
			return models.OwnerRenounced, ""
		}
		return models.OwnerActive, owner
	}
	return models.OwnerNone, ""
}

func (p *TokenInfo) burnedSupply(ctx context.Context, chain *models.ChainProfile, address string) *big.Int {
	total := new(big.Int)
	for _, burn := range chain.BurnAddresses {
		bal, err := p.rpc.BalanceOf(ctx, chain, address, burn)
		if err != nil {
			continue
		}
		total.Add(total, bal)
	}
	return total
}
