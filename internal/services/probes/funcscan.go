package probes

import (
	"context"
	"strings"
	"time"

	"rugcheck/internal/domain/models"
	icache "rugcheck/internal/service/cache"
	"rugcheck/internal/services/risk"
	"rugcheck/pkg/logger"
)

// Dangerous function names grouped by severity. Matching is a plain
// case-insensitive substring search over verified source, so names are
// chosen to be distinctive enough to avoid false hits on common words.
var (
	criticalFunctions = []string{
		"setbalance",
		"editbalance",
		"updatebalance",
		"destroysmartcontract",
		"blacklistaddress",
		"setblacklist",
		"addbotwallet",
		"setmaxtxamount",
		"disabletrading",
		"enabletrading",
	}
	highFunctions = []string{
		"setfee",
		"settax",
		"updatefee",
		"updatetax",
		"setsellfee",
		"setbuyfee",
		"excludefromfee",
		"setswapandliquifyenabled",
		"setcooldown",
	}
	mediumFunctions = []string{
		"pause",
		"unpause",
		"setrouter",
		"setpair",
		"setmarketingwallet",
		"setdevwallet",
	}
)

// FunctionScan pulls the verified source from the block explorer and counts
// dangerous function names per severity. An unverified contract is a failed
// signal, not a clean one.
type FunctionScan struct {
	explorer *ExplorerClient
	cache    *icache.TTLCache
	ttl      time.Duration
	log      *logger.Logger
}

func NewFunctionScan(explorer *ExplorerClient, ttl time.Duration, log *logger.Logger) *FunctionScan {
	return &FunctionScan{explorer: explorer, cache: icache.NewTTLCache(), ttl: ttl, log: log}
}

func (p *FunctionScan) Fetch(ctx context.Context, chain *models.ChainProfile, address string) models.SignalResult[models.FunctionFindings] {
	key := chain.ID + ":" + address
	if hit, ok := icache.GetTyped[models.SignalResult[models.FunctionFindings]](p.cache, key); ok {
		return hit
	}

	result := p.fetch(ctx, chain, address)
	p.cache.Set(key, result, p.ttl)
	return result
}

func (p *FunctionScan) fetch(ctx context.Context, chain *models.ChainProfile, address string) models.SignalResult[models.FunctionFindings] {
	entry, err := p.explorer.ContractSource(ctx, chain, address)
	if err != nil {
		return failure[models.FunctionFindings]("source fetch failed: " + err.Error())
	}
	if strings.TrimSpace(entry.SourceCode) == "" {
		return failure[models.FunctionFindings]("contract source not verified")
	}

	findings := ClassifySource(entry.SourceCode)
	p.log.Debug("function scan complete",
		logger.String("chain", chain.ID),
		logger.String("address", address),
		logger.Int("findings", findings.Total()))
	return success(findings, risk.LabelFunctions(findings))
}

// ClassifySource counts dangerous function names in contract source.
func ClassifySource(source string) models.FunctionFindings {
	lower := strings.ToLower(source)
	var f models.FunctionFindings
	for _, name := range criticalFunctions {
		if strings.Contains(lower, name) {
			f.Critical++
			f.Matches = append(f.Matches, name)
		}
	}
	for _, name := range highFunctions {
		if strings.Contains(lower, name) {
			f.High++
			f.Matches = append(f.Matches, name)
		}
	}
	for _, name := range mediumFunctions {
		if strings.Contains(lower, name) {
			f.Medium++
			f.Matches = append(f.Matches, name)
		}
	}
	return f
}
