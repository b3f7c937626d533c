// Package chains holds the static per-chain profiles and token address
// validation. Profiles are read-only input to the probes.
package chains

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"rugcheck/internal/domain/models"
)

var (
	ErrInvalidAddress = errors.New("invalid token address")
	ErrUnknownChain   = errors.New("unknown chain")
)

var addressRe = regexp.MustCompile(`^0x[a-fA-F0-9]{40}$`)

// NormalizeAddress validates a 20-byte hex address and returns it lowercased.
// This is the only input validation a scan performs; everything after it
// produces a verdict rather than an error.
func NormalizeAddress(s string) (string, error) {
	addr := strings.TrimSpace(s)
	if !addressRe.MatchString(addr) {
		return "", fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}
	return strings.ToLower(addr), nil
}

const (
	burnDead = "0x000000000000000000000000000000000000dead"
	burnZero = "0x0000000000000000000000000000000000000000"
)

var profiles = map[string]*models.ChainProfile{
	"eth": {
		ID:            "eth",
		Name:          "Ethereum",
		NativeSymbol:  "ETH",
		NativeGeckoID: "ethereum",
		RPCEndpoints: []string{
			"https://eth.llamarpc.com",
			"https://rpc.ankr.com/eth",
		},
		ExplorerAPI:   "https://api.etherscan.io/api",
		GoPlusChainID: "1",
		DexScreenerID: "ethereum",
		BurnAddresses: []string{burnDead, burnZero},
		LockerAddresses: []string{
			"0x663a5c229c09b049e36dcc11a9b0d4a8eb9db214", // UNCX
			"0xe2fe530c047f2d85298b07d9333c05737f1435fb", // Team Finance
		},
	},
	"bsc": {
		ID:            "bsc",
		Name:          "BNB Smart Chain",
		NativeSymbol:  "BNB",
		NativeGeckoID: "binancecoin",
		RPCEndpoints: []string{
			"https://bsc-dataseed.binance.org",
			"https://rpc.ankr.com/bsc",
		},
		ExplorerAPI:   "https://api.bscscan.com/api",
		GoPlusChainID: "56",
		DexScreenerID: "bsc",
		BurnAddresses: []string{burnDead, burnZero},
		LockerAddresses: []string{
			"0xc765bddb93b0d1c1a88282ba0fa6b2d00e3e0c83", // UNCX
			"0x0c89c0407775dd89b12918b9c0aa42bf96518820", // Pinksale
		},
	},
	"polygon": {
		ID:            "polygon",
		Name:          "Polygon",
		NativeSymbol:  "POL",
		NativeGeckoID: "matic-network",
		RPCEndpoints: []string{
			"https://polygon-rpc.com",
			"https://rpc.ankr.com/polygon",
		},
		ExplorerAPI:   "https://api.polygonscan.com/api",
		GoPlusChainID: "137",
		DexScreenerID: "polygon",
		BurnAddresses: []string{burnDead, burnZero},
		LockerAddresses: []string{
			"0xadb2437e6f65682b85f814fbc12fec0508a7b1d0", // UNCX
		},
	},
	"base": {
		ID:            "base",
		Name:          "Base",
		NativeSymbol:  "ETH",
		NativeGeckoID: "ethereum",
		RPCEndpoints: []string{
			"https://mainnet.base.org",
			"https://base.llamarpc.com",
		},
		ExplorerAPI:   "https://api.basescan.org/api",
		GoPlusChainID: "8453",
		DexScreenerID: "base",
		BurnAddresses: []string{burnDead, burnZero},
		LockerAddresses: []string{
			"0xc4e637d37113192f4f1f060daebd7758de7f4131", // UNCX
		},
	},
}

// Lookup returns the profile for a chain identifier.
func Lookup(id string) (*models.ChainProfile, error) {
	p, ok := profiles[strings.ToLower(strings.TrimSpace(id))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownChain, id)
	}
	return p, nil
}

// All returns every supported profile, sorted by id.
func All() []*models.ChainProfile {
	out := make([]*models.ChainProfile, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
