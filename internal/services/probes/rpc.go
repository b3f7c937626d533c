// Package probes implements the six signal fetchers a scan fans out to.
// Every probe absorbs its own failures: a broken upstream becomes a
// failed SignalResult, never an error on the scan path.
package probes

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"strings"

	"rugcheck/internal/domain/models"
	xhttp "rugcheck/pkg/http"
)

// Function selectors for the eth_call probes.
const (
	selName        = "0x06fdde03" // name()
	selSymbol      = "0x95d89b41" // symbol()
	selDecimals    = "0x313ce567" // decimals()
	selTotalSupply = "0x18160ddd" // totalSupply()
	selOwner       = "0x8da5cb5b" // owner()
	selGetOwner    = "0x893d20e8" // getOwner(), used by BEP-20
	selBalanceOf   = "0x70a08231" // balanceOf(address)
)

type rpcRequest struct {
	JSONRPC string        `json:"jsonrpc"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
	ID      int           `json:"id"`
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *rpcError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

// RPCClient issues eth_call requests against a chain's JSON-RPC endpoints,
// falling over to the next endpoint when one fails.
type RPCClient struct {
	http *xhttp.Client
}

func NewRPCClient(http *xhttp.Client) *RPCClient {
	return &RPCClient{http: http}
}

// EthCall calls a contract view function and returns the raw hex result.
// Endpoints are tried in profile order; the first usable answer wins.
func (c *RPCClient) EthCall(ctx context.Context, chain *models.ChainProfile, to, data string) (string, error) {
	req := rpcRequest{
		JSONRPC: "2.0",
		Method:  "eth_call",
		Params: []interface{}{
			map[string]string{"to": to, "data": data},
			"latest",
		},
		ID: 1,
	}

	var lastErr error
	for _, endpoint := range chain.RPCEndpoints {
		var resp rpcResponse
		if err := c.http.PostJSON(ctx, endpoint, req, &resp); err != nil {
			lastErr = err
			continue
		}
		if resp.Error != nil {
			// Reverts are an answer, not an endpoint failure.
			return "", resp.Error
		}
		var result string
		if err := json.Unmarshal(resp.Result, &result); err != nil {
			lastErr = fmt.Errorf("decode rpc result: %w", err)
			continue
		}
		return result, nil
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("no rpc endpoints configured for chain %s", chain.ID)
	}
	return "", lastErr
}

// HasCode reports whether the address carries contract bytecode.
func (c *RPCClient) HasCode(ctx context.Context, chain *models.ChainProfile, address string) (bool, error) {
	req := rpcRequest{
		JSONRPC: "2.0",
		Method:  "eth_getCode",
		Params:  []interface{}{address, "latest"},
		ID:      1,
	}

	var lastErr error
	for _, endpoint := range chain.RPCEndpoints {
		var resp rpcResponse
		if err := c.http.PostJSON(ctx, endpoint, req, &resp); err != nil {
			lastErr = err
			continue
		}
		if resp.Error != nil {
			lastErr = resp.Error
			continue
		}
		var code string
		if err := json.Unmarshal(resp.Result, &code); err != nil {
			lastErr = fmt.Errorf("decode rpc result: %w", err)
			continue
		}
		return code != "" && code != "0x", nil
	}
	return false, lastErr
}

// CallString calls a view returning an ABI-encoded string.
func (c *RPCClient) CallString(ctx context.Context, chain *models.ChainProfile, to, selector string) (string, error) {
	raw, err := c.EthCall(ctx, chain, to, selector)
	if err != nil {
		return "", err
	}
	return decodeABIString(raw)
}

// CallUint calls a view returning a uint256.
func (c *RPCClient) CallUint(ctx context.Context, chain *models.ChainProfile, to, selector string) (*big.Int, error) {
	raw, err := c.EthCall(ctx, chain, to, selector)
	if err != nil {
		return nil, err
	}
	return decodeABIUint(raw)
}

// CallAddress calls a view returning an address.
func (c *RPCClient) CallAddress(ctx context.Context, chain *models.ChainProfile, to, selector string) (string, error) {
	raw, err := c.EthCall(ctx, chain, to, selector)
	if err != nil {
		return "", err
	}
	return decodeABIAddress(raw)
}

// BalanceOf returns the token balance of holder as a uint256.
func (c *RPCClient) BalanceOf(ctx context.Context, chain *models.ChainProfile, token, holder string) (*big.Int, error) {
	data := selBalanceOf + padAddress(holder)
	raw, err := c.EthCall(ctx, chain, token, data)
	if err != nil {
		return nil, err
	}
	return decodeABIUint(raw)
}

// padAddress left-pads a 0x address into a 32-byte ABI argument.
func padAddress(addr string) string {
	hex := strings.TrimPrefix(strings.ToLower(addr), "0x")
	return strings.Repeat("0", 64-len(hex)) + hex
}

func decodeABIUint(raw string) (*big.Int, error) {
	hex := strings.TrimPrefix(raw, "0x")
	if hex == "" {
		return nil, fmt.Errorf("empty result")
	}
	n, ok := new(big.Int).SetString(hex, 16)
	if !ok {
		return nil, fmt.Errorf("malformed uint result %q", raw)
	}
	return n, nil
}

func decodeABIAddress(raw string) (string, error) {
	hex := strings.TrimPrefix(raw, "0x")
	if len(hex) < 64 {
		return "", fmt.Errorf("short address result %q", raw)
	}
	return "0x" + hex[len(hex)-40:], nil
}

// decodeABIString handles both dynamic ABI strings and the bytes32
// encoding some older tokens use for name and symbol.
func decodeABIString(raw string) (string, error) {
	hex := strings.TrimPrefix(raw, "0x")
	if hex == "" {
		return "", fmt.Errorf("empty result")
	}
	b, err := hexBytes(hex)
	if err != nil {
		return "", err
	}
	if len(b) == 32 {
		// bytes32: trim trailing zero padding.
		return string(trimRightZeros(b)), nil
	}
	if len(b) < 64 {
		return "", fmt.Errorf("short string result")
	}
	// offset at word 0, length at the offset word
	offset := new(big.Int).SetBytes(b[:32])
	if !offset.IsInt64() || offset.Int64()+32 > int64(len(b)) {
		return "", fmt.Errorf("malformed string offset")
	}
	o := int(offset.Int64())
	length := new(big.Int).SetBytes(b[o : o+32])
	if !length.IsInt64() || int64(o)+32+length.Int64() > int64(len(b)) {
		return "", fmt.Errorf("malformed string length")
	}
	return string(b[o+32 : o+32+int(length.Int64())]), nil
}

func hexBytes(hex string) ([]byte, error) {
	if len(hex)%2 != 0 {
		return nil, fmt.Errorf("odd-length hex")
	}
	out := make([]byte, len(hex)/2)
	for i := 0; i < len(out); i++ {
		hi, err1 := hexNibble(hex[2*i])
		lo, err2 := hexNibble(hex[2*i+1])
		if err1 != nil || err2 != nil {
			return nil, fmt.Errorf("invalid hex %q", hex[2*i:2*i+2])
		}
		out[i] = hi<<4 | lo
	}
	return out, nil
}

func hexNibble(c byte) (byte, error) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', nil
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, nil
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, nil
	}
	return 0, fmt.Errorf("not hex: %c", c)
}

func trimRightZeros(b []byte) []byte {
	end := len(b)
	for end > 0 && b[end-1] == 0 {
		end--
	}
	return b[:end]
}

// tokensFromRaw converts a raw uint256 amount to a float using the token's
// decimals. Precision loss past float64 is acceptable for scoring.
func tokensFromRaw(raw *big.Int, decimals int) float64 {
	if raw == nil {
		return 0
	}
	f, _ := new(big.Float).SetInt(raw).Float64()
	return f / math.Pow10(decimals)
}
