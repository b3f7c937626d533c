package probes

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"rugcheck/internal/domain/models"
	"rugcheck/internal/service/ratelimit"
	xhttp "rugcheck/pkg/http"
)

// ExplorerClient talks to the Etherscan-family block explorer API of a
// chain. Every supported chain exposes the same module/action scheme.
type ExplorerClient struct {
	http *xhttp.Client
	// keys maps chain id to explorer API key; a missing key still works at
	// the anonymous rate limit.
	keys    map[string]string
	limiter *ratelimit.Limiter
}

func NewExplorerClient(http *xhttp.Client, keys map[string]string) *ExplorerClient {
	return &ExplorerClient{http: http, keys: keys, limiter: ratelimit.New()}
}

// Free-tier explorer limits. Anonymous access allows one call per five
// seconds, a key raises that to five per second.
const (
	keyedRatePerSec = 5.0
	anonRatePerSec  = 0.2
)

type explorerResponse struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`
}

func (e *ExplorerClient) call(ctx context.Context, chain *models.ChainProfile, params map[string][]string, dest interface{}) error {
	rate := anonRatePerSec
	if key := e.keys[chain.ID]; key != "" {
		params["apikey"] = []string{key}
		rate = keyedRatePerSec
	}
	if err := e.limiter.Wait(ctx, chain.ID, 1, rate); err != nil {
		return err
	}

	var resp explorerResponse
	if err := e.http.GetJSON(ctx, chain.ExplorerAPI, params, nil, &resp); err != nil {
		return fmt.Errorf("explorer request: %w", err)
	}
	// status "0" with "No transactions found" style messages still carries
	// an empty result array; surface the message for everything else.
	if resp.Status != "1" && resp.Message != "No transactions found" {
		return fmt.Errorf("explorer: %s", resp.Message)
	}
	if err := json.Unmarshal(resp.Result, dest); err != nil {
		return fmt.Errorf("decode explorer result: %w", err)
	}
	return nil
}

type sourceCodeEntry struct {
	SourceCode   string `json:"SourceCode"`
	ContractName string `json:"ContractName"`
	ABI          string `json:"ABI"`
}

// ContractSource fetches verified source code. Unverified contracts come
// back with an empty SourceCode body.
func (e *ExplorerClient) ContractSource(ctx context.Context, chain *models.ChainProfile, address string) (*sourceCodeEntry, error) {
	var entries []sourceCodeEntry
	err := e.call(ctx, chain, map[string][]string{
		"module":  {"contract"},
		"action":  {"getsourcecode"},
		"address": {address},
	}, &entries)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("explorer returned no contract entry")
	}
	return &entries[0], nil
}

type txEntry struct {
	TimeStamp string `json:"timeStamp"`
}

// FirstTxTime returns the timestamp of the contract's earliest transaction,
// which approximates its deployment time.
func (e *ExplorerClient) FirstTxTime(ctx context.Context, chain *models.ChainProfile, address string) (time.Time, error) {
	var txs []txEntry
	err := e.call(ctx, chain, map[string][]string{
		"module":  {"account"},
		"action":  {"txlist"},
		"address": {address},
		"page":    {"1"},
		"offset":  {"1"},
		"sort":    {"asc"},
	}, &txs)
	if err != nil {
		return time.Time{}, err
	}
	if len(txs) == 0 {
		return time.Time{}, fmt.Errorf("no transactions for contract")
	}
	ts, err := strconv.ParseInt(txs[0].TimeStamp, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("malformed timestamp %q", txs[0].TimeStamp)
	}
	return time.Unix(ts, 0), nil
}
