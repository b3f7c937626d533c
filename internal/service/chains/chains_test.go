package chains

import (
	"errors"
	"testing"
)

func TestNormalizeAddress(t *testing.T) {
	got, err := NormalizeAddress("  0xDAC17F958D2ee523a2206206994597C13D831ec7 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "0xdac17f958d2ee523a2206206994597c13d831ec7" {
		t.Fatalf("expected lowercased address, got %s", got)
	}
}

func TestNormalizeAddressRejectsMalformed(t *testing.T) {
	bad := []string{
		"",
		"0x123",
		"dac17f958d2ee523a2206206994597c13d831ec7",
		"0xZZC17F958D2ee523a2206206994597C13D831ec7",
		"0xdac17f958d2ee523a2206206994597c13d831ec70", // 41 hex chars
	}
	for _, s := range bad {
		if _, err := NormalizeAddress(s); !errors.Is(err, ErrInvalidAddress) {
			t.Errorf("NormalizeAddress(%q): expected ErrInvalidAddress, got %v", s, err)
		}
	}
}

func TestLookup(t *testing.T) {
	p, err := Lookup("ETH")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.GoPlusChainID != "1" {
		t.Fatalf("expected goplus chain id 1, got %s", p.GoPlusChainID)
	}
	if _, err := Lookup("solana"); !errors.Is(err, ErrUnknownChain) {
		t.Fatalf("expected ErrUnknownChain, got %v", err)
	}
}

func TestBurnAddressMatchIsCaseInsensitive(t *testing.T) {
	p, _ := Lookup("eth")
	if !p.IsBurnAddress("0x000000000000000000000000000000000000dEaD") {
		t.Fatalf("expected dead address to match case-insensitively")
	}
	if p.IsBurnAddress("0x663a5c229c09b049e36dcc11a9b0d4a8eb9db214") {
		t.Fatalf("locker address must not be a burn address")
	}
}

func TestAllSorted(t *testing.T) {
	all := All()
	if len(all) == 0 {
		t.Fatal("expected at least one chain profile")
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].ID >= all[i].ID {
			t.Fatalf("profiles not sorted: %s before %s", all[i-1].ID, all[i].ID)
		}
	}
}
