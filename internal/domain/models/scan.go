package models

import "time"

// Risk is the coarse categorical rating a single signal carries on its own,
// independent of the aggregated score.
type Risk string

const (
	RiskLow      Risk = "LOW"
	RiskMedium   Risk = "MEDIUM"
	RiskHigh     Risk = "HIGH"
	RiskCritical Risk = "CRITICAL"
	RiskUnknown  Risk = "UNKNOWN"
)

// Verdict is the final categorical rating for a whole scan, derived from the
// aggregated point score by fixed thresholds.
type Verdict string

const (
	VerdictLow      Verdict = "LOW"
	VerdictMedium   Verdict = "MEDIUM"
	VerdictHigh     Verdict = "HIGH"
	VerdictCritical Verdict = "CRITICAL"
)

// OwnerStatus describes the ownership state of a token contract.
type OwnerStatus string

const (
	OwnerRenounced OwnerStatus = "renounced"
	OwnerActive    OwnerStatus = "active"
	OwnerNone      OwnerStatus = "no-owner-function"
)

// SignalResult is the unit exchanged between a probe and the aggregator:
// either populated data with a non-UNKNOWN risk, or a failure with an error
// reason and risk UNKNOWN. Probes never surface errors any other way.
type SignalResult[T any] struct {
	Success bool   `json:"success"`
	Risk    Risk   `json:"risk"`
	Data    T      `json:"data"`
	Error   string `json:"error,omitempty"`
}

// TokenInfo holds on-chain token metadata and ownership state.
type TokenInfo struct {
	Name              string      `json:"name"`
	Symbol            string      `json:"symbol"`
	Decimals          int         `json:"decimals"`
	TotalSupply       float64     `json:"total_supply"`
	CirculatingSupply float64     `json:"circulating_supply"`
	OwnerStatus       OwnerStatus `json:"owner_status"`
	OwnerAddress      string      `json:"owner_address,omitempty"`
	ContractAgeDays   *int        `json:"contract_age_days,omitempty"`
	BurnedPercent     float64     `json:"burned_percent"`
}

// FunctionFindings counts dangerous function-name matches in verified source.
type FunctionFindings struct {
	Critical int      `json:"critical"`
	High     int      `json:"high"`
	Medium   int      `json:"medium"`
	Matches  []string `json:"matches,omitempty"`
}

// Total returns the number of findings across all severities.
func (f FunctionFindings) Total() int {
	return f.Critical + f.High + f.Medium
}

// Liquidity describes the token's deepest DEX pool and LP distribution.
type Liquidity struct {
	LiquidityUSD float64 `json:"liquidity_usd"`
	SafePercent  float64 `json:"safe_percent"` // burned + locked share of LP supply, 0..100
	MarketCap    float64 `json:"market_cap"`
	PriceUSD     float64 `json:"price_usd"`
	PairAddress  string  `json:"pair_address,omitempty"`
	Dex          string  `json:"dex,omitempty"`
}

// Holders describes top-holder concentration.
type Holders struct {
	Top1Percent  float64 `json:"top1_percent"`
	Top10Percent float64 `json:"top10_percent"`
	HolderCount  int     `json:"holder_count,omitempty"`
	Source       string  `json:"source,omitempty"`
}

// Honeypot carries sellability and tax flags. Nil taxes mean the upstream
// source could not simulate a trade; treated as neutral, not adverse.
type Honeypot struct {
	IsHoneypot            bool     `json:"is_honeypot"`
	CannotBuy             bool     `json:"cannot_buy"`
	CannotSellAll         bool     `json:"cannot_sell_all"`
	BuyTax                *float64 `json:"buy_tax,omitempty"`
	SellTax               *float64 `json:"sell_tax,omitempty"`
	OwnerCanChangeBalance bool     `json:"owner_can_change_balance"`
	HiddenOwner           bool     `json:"hidden_owner"`
	CanTakeBackOwnership  bool     `json:"can_take_back_ownership"`
}

// Sentiment is market-mood data surfaced in the report. It never contributes
// points to the aggregate score.
type Sentiment struct {
	Score          float64 `json:"score"` // 0..100
	PriceChange1h  float64 `json:"price_change_1h"`
	PriceChange24h float64 `json:"price_change_24h"`
	Buys24h        int     `json:"buys_24h"`
	Sells24h       int     `json:"sells_24h"`
}

// Signals groups the results of all six probes for one scan.
type Signals struct {
	TokenInfo SignalResult[TokenInfo]        `json:"token_info"`
	Functions SignalResult[FunctionFindings] `json:"functions"`
	Liquidity SignalResult[Liquidity]        `json:"liquidity"`
	Holders   SignalResult[Holders]          `json:"holders"`
	Honeypot  SignalResult[Honeypot]         `json:"honeypot"`
	Sentiment SignalResult[Sentiment]        `json:"sentiment"`
}

// RiskScore is the aggregator output: a clamped point total and its verdict.
type RiskScore struct {
	Points  int     `json:"points"` // 0..100
	Verdict Verdict `json:"verdict"`
}

// ScanReport is the full structured result of one scan invocation.
type ScanReport struct {
	Chain     string    `json:"chain"`
	Address   string    `json:"address"`
	TokenName string    `json:"token_name,omitempty"`
	Signals   Signals   `json:"signals"`
	Score     RiskScore `json:"score"`
	ScannedAt time.Time `json:"scanned_at"`
}

// ChainProfile holds the static per-chain constants probes need. The
// aggregator itself is chain-agnostic.
type ChainProfile struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	NativeSymbol    string   `json:"native_symbol"`
	NativeGeckoID   string   `json:"-"`
	RPCEndpoints    []string `json:"-"`
	ExplorerAPI     string   `json:"-"`
	GoPlusChainID   string   `json:"-"`
	DexScreenerID   string   `json:"-"`
	BurnAddresses   []string `json:"-"`
	LockerAddresses []string `json:"-"`
}

// IsBurnAddress reports whether addr is a known burn address on this chain.
func (p *ChainProfile) IsBurnAddress(addr string) bool {
	for _, b := range p.BurnAddresses {
		if equalAddress(b, addr) {
			return true
		}
	}
	return false
}

// IsLockerAddress reports whether addr is a known LP locker on this chain.
func (p *ChainProfile) IsLockerAddress(addr string) bool {
	for _, l := range p.LockerAddresses {
		if equalAddress(l, addr) {
			return true
		}
	}
	return false
}

func equalAddress(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if 'A' <= ca && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if 'A' <= cb && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}
